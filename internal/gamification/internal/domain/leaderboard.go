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

const (
	LeaderboardXp     = "xp"
	LeaderboardKarma  = "karma"
	LeaderboardStreak = "streak"

	MaxLeaderboardSize = 100
)

func LeaderboardTypeValid(typ string) bool {
	switch typ {
	case LeaderboardXp, LeaderboardKarma, LeaderboardStreak:
		return true
	default:
		return false
	}
}

func LeaderboardTypes() []string {
	return []string{LeaderboardXp, LeaderboardKarma, LeaderboardStreak}
}

// Score 按照排行榜类型取分数
func (m Metrics) Score(typ string) int64 {
	switch typ {
	case LeaderboardKarma:
		return m.TotalKarma
	case LeaderboardStreak:
		return m.CurrentStreak
	default:
		return m.TotalXp
	}
}

type LeaderboardEntry struct {
	Rank        int
	Uid         int64
	Name        string
	Avatar      string
	Score       int64
	WisdomLevel int64
	BadgeCount  int64
}

type Leaderboard struct {
	Type    string
	Entries []LeaderboardEntry
	MyRank  int64
	MyScore int64
}
