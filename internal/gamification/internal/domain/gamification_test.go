// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Rank(t *testing.T) {
	testCases := []struct {
		level int64
		want  string
	}{
		{level: 1, want: "Beginner"},
		{level: 9, want: "Beginner"},
		{level: 10, want: "Gita Sadhak"},
		{level: 20, want: "Karma Yogi"},
		{level: 35, want: "Wisdom Master"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, Metrics{WisdomLevel: tc.level}.Rank())
	}
}

func TestWisdomLevelOf(t *testing.T) {
	assert.Equal(t, int64(1), WisdomLevelOf(0))
	assert.Equal(t, int64(1), WisdomLevelOf(999))
	assert.Equal(t, int64(2), WisdomLevelOf(1000))
	assert.Equal(t, int64(10), WisdomLevelOf(9500))
	assert.Equal(t, int64(3000), Metrics{WisdomLevel: 3}.NextLevelXp())
}

func TestMetrics_EligibleBadges(t *testing.T) {
	zero := Metrics{WisdomLevel: 1}
	assert.Nil(t, Metrics{WisdomLevel: 1}.EligibleBadges(zero))
	assert.Equal(t, []string{BadgeFirstLesson}, Metrics{WisdomLevel: 1, TotalLessonsCompleted: 1}.EligibleBadges(zero))
	// 一次同步多节课，也是第一次跨过 0
	assert.Equal(t, []string{BadgeFirstLesson}, Metrics{WisdomLevel: 1, TotalLessonsCompleted: 3}.EligibleBadges(zero))
	// 之前已经完成过课时，不再补发
	assert.Nil(t, Metrics{WisdomLevel: 2, TotalLessonsCompleted: 5}.
		EligibleBadges(Metrics{WisdomLevel: 1, TotalLessonsCompleted: 4}))
	assert.Equal(t, []string{BadgeGitaSadhak},
		Metrics{WisdomLevel: 10, TotalLessonsCompleted: 40}.EligibleBadges(Metrics{WisdomLevel: 9, TotalLessonsCompleted: 39}))
	assert.Equal(t, []string{BadgeFirstLesson, BadgeGitaSadhak},
		Metrics{WisdomLevel: 10, TotalLessonsCompleted: 1}.EligibleBadges(zero))
}

func TestReward_Transactions(t *testing.T) {
	r := Reward{Xp: 50, Source: "quiz", SourceId: 3}
	txs := r.Transactions(1)
	assert.Len(t, txs, 1)
	assert.Equal(t, TxTypeXp, txs[0].Type)
	assert.False(t, r.UpdatesStreak())

	r = Reward{Xp: 40, Karma: 5, LessonsCompleted: 1}
	assert.Len(t, r.Transactions(1), 2)
	assert.True(t, r.UpdatesStreak())
}

func TestReward_TransactionsWithEntries(t *testing.T) {
	r := Reward{
		Xp:     90,
		Karma:  10,
		Source: "lesson",
		Entries: []RewardEntry{
			{Xp: 50, Karma: 5, SourceId: 1, Description: "Synced completion: A"},
			{Xp: 40, Karma: 5, SourceId: 2, Description: "Synced completion: B"},
		},
	}
	txs := r.Transactions(1)
	assert.Len(t, txs, 4)
	assert.Equal(t, int64(2), txs[3].SourceId)
	assert.Equal(t, TxTypeKarma, txs[3].Type)
	assert.Equal(t, "lesson", txs[3].Source)
}
