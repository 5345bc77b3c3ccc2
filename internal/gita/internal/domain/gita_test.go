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

func TestShlokaProgress_Apply(t *testing.T) {
	yes, no := true, false
	sh := Shloka{Id: 1, XpReward: 2}
	testCases := []struct {
		name   string
		before ShlokaProgress
		update ProgressUpdate
		want   ShlokaProgress
	}{
		{
			name:   "第一次上报，没有状态",
			before: ShlokaProgress{Uid: 123, ShlokaId: 1},
			update: ProgressUpdate{ShlokaId: 1, HasListenedSanskrit: &yes, TimeSpentSeconds: 30},
			want: ShlokaProgress{Uid: 123, ShlokaId: 1, Status: StatusNotStarted,
				HasListenedSanskrit: true, TimeSpentSeconds: 30, LastAccessedAt: 100},
		},
		{
			name: "完成",
			before: ShlokaProgress{Uid: 123, ShlokaId: 1, Status: StatusInProgress,
				HasListenedSanskrit: true, TimeSpentSeconds: 30, Reflection: "old"},
			update: ProgressUpdate{ShlokaId: 1, Status: StatusCompleted, HasListenedSanskrit: &no,
				HasReadExplanation: &yes},
			want: ShlokaProgress{Uid: 123, ShlokaId: 1, Status: StatusCompleted,
				HasReadExplanation: true, TimeSpentSeconds: 30, Reflection: "old",
				XpEarned: 2, CompletedAt: 100, LastAccessedAt: 100},
		},
		{
			name: "重复完成保留第一次完成的时间",
			before: ShlokaProgress{Uid: 123, ShlokaId: 1, Status: StatusCompleted,
				XpEarned: 2, CompletedAt: 50, LastAccessedAt: 50},
			update: ProgressUpdate{ShlokaId: 1, Status: StatusCompleted, Reflection: "new"},
			want: ShlokaProgress{Uid: 123, ShlokaId: 1, Status: StatusCompleted, Reflection: "new",
				XpEarned: 2, CompletedAt: 50, LastAccessedAt: 100},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.before.Apply(tc.update, sh, 100))
		})
	}
}

func TestNewProgressStats(t *testing.T) {
	stats := NewProgressStats([]ShlokaProgress{
		{Status: StatusCompleted, XpEarned: 2},
		{Status: StatusCompleted, XpEarned: 3},
		{Status: StatusInProgress},
		{Status: StatusNotStarted},
	})
	assert.Equal(t, ProgressStats{
		TotalShlokas:  700,
		Completed:     2,
		InProgress:    1,
		NotStarted:    696,
		TotalXpEarned: 5,
	}, stats)
}

func TestLevel(t *testing.T) {
	assert.True(t, ValidLevel(1))
	assert.True(t, ValidLevel(5))
	assert.False(t, ValidLevel(0))
	assert.False(t, ValidLevel(6))
	l := LevelOf(2)
	l.Chapters = []Chapter{{TotalShlokas: 43}, {TotalShlokas: 42}}
	assert.Equal(t, 85, l.TotalShlokas())
	assert.Equal(t, "karma-yogi", l.BadgeSlug)
	assert.Equal(t, "Earned by completing Level 2: KARMA YOGA", l.BadgeDescription())
	assert.Len(t, Levels(), MaxLevel)
}

func TestShloka_Ref(t *testing.T) {
	assert.Equal(t, "2.47", Shloka{Number: 47, Chapter: Chapter{Number: 2}}.Ref())
}
