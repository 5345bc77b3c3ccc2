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

package web

import (
	"github.com/ecodeclub/hug/internal/gamification/internal/domain"
)

type Metrics struct {
	Uid                   int64  `json:"user_id"`
	TotalXp               int64  `json:"total_xp"`
	TotalKarma            int64  `json:"total_karma"`
	WisdomLevel           int64  `json:"wisdom_level"`
	NextLevelXp           int64  `json:"next_level_xp"`
	Rank                  string `json:"rank"`
	CurrentStreak         int64  `json:"current_streak"`
	LongestStreak         int64  `json:"longest_streak"`
	TotalLessonsCompleted int64  `json:"total_lessons_completed"`
	TotalCoursesCompleted int64  `json:"total_courses_completed"`
	TotalTimeSpentMinutes int64  `json:"total_time_spent_minutes"`
	LastActivityAt        int64  `json:"last_activity_at"`
}

func newMetrics(m domain.Metrics) Metrics {
	return Metrics{
		Uid:                   m.Uid,
		TotalXp:               m.TotalXp,
		TotalKarma:            m.TotalKarma,
		WisdomLevel:           m.WisdomLevel,
		NextLevelXp:           m.NextLevelXp(),
		Rank:                  m.Rank(),
		CurrentStreak:         m.CurrentStreak,
		LongestStreak:         m.LongestStreak,
		TotalLessonsCompleted: m.TotalLessonsCompleted,
		TotalCoursesCompleted: m.TotalCoursesCompleted,
		TotalTimeSpentMinutes: m.TotalTimeSpentMinutes,
		LastActivityAt:        m.LastActivityAt,
	}
}

type Badge struct {
	Id          int64  `json:"badge_id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IconUrl     string `json:"icon_url"`
	Category    string `json:"category"`
	XpReward    int64  `json:"xp_reward"`
	KarmaReward int64  `json:"karma_reward"`
	EarnedAt    int64  `json:"earned_at,omitempty"`
}

func newBadge(b domain.Badge) Badge {
	return Badge{
		Id:          b.Id,
		Slug:        b.Slug,
		Name:        b.Name,
		Description: b.Description,
		IconUrl:     b.IconUrl,
		Category:    b.Category,
		XpReward:    b.XpReward,
		KarmaReward: b.KarmaReward,
	}
}

type BadgeList struct {
	Earned    []Badge `json:"earned"`
	Available []Badge `json:"available"`
}

type LeaderboardReq struct {
	Type  string `json:"type"`
	Limit int    `json:"limit"`
}

type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	Uid         int64  `json:"user_id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	Score       int64  `json:"score"`
	WisdomLevel int64  `json:"wisdom_level"`
	BadgeCount  int64  `json:"badge_count"`
}

type Leaderboard struct {
	Type    string             `json:"type"`
	Entries []LeaderboardEntry `json:"entries"`
	MyRank  int64              `json:"my_rank"`
	MyScore int64              `json:"my_score"`
}
