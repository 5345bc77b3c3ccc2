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
	"math"

	"github.com/ecodeclub/hug/internal/gamification"
)

const (
	PaceFast     = "fast"
	PaceModerate = "moderate"
	PaceSlow     = "slow"

	EngagementHigh   = "high"
	EngagementMedium = "medium"
	EngagementLow    = "low"

	// InsightDays 统计最近 7 天的学习情况
	InsightDays = 7
	// targetLessons 预计完成天数按照 100 个课时来估算
	targetLessons = 100
	streakGoal    = 7
)

type Event struct {
	Id        int64
	EventId   string
	Uid       int64
	EventType string
	EventData map[string]any
	Ctime     int64
}

type Insights struct {
	LearningPace            string
	AvgDailyLessons         float64
	EstimatedCompletionDays int64
	ConsistencyScore        int64
	EngagementLevel         string
	// LessonsCompleted7d 最近 7 天真正完成的课时，按照课时进度统计
	LessonsCompleted7d int64
	Recommendations    []string
}

// NewInsights days 是最近 7 天的每日学习记录，没有学习的日子不会出现在里面
func NewInsights(m gamification.Metrics, days []gamification.StreakDay) Insights {
	var lessons int64
	for _, d := range days {
		lessons += d.LessonsCompleted
	}
	avg := float64(lessons) / InsightDays
	remaining := math.Max(float64(targetLessons-m.TotalLessonsCompleted), 0)
	res := Insights{
		LearningPace:            paceOf(avg),
		AvgDailyLessons:         math.Round(avg*10) / 10,
		EstimatedCompletionDays: int64(math.Ceil(remaining / math.Max(avg, 1))),
		ConsistencyScore:        m.CurrentStreak,
		EngagementLevel:         engagementOf(m.TotalXp),
		Recommendations:         []string{},
	}
	if avg < 1 {
		res.Recommendations = append(res.Recommendations, "Try to complete at least 1 lesson per day")
	}
	if m.CurrentStreak < streakGoal {
		res.Recommendations = append(res.Recommendations, "Build a 7-day streak for consistency")
	}
	return res
}

func paceOf(avg float64) string {
	switch {
	case avg > 1:
		return PaceFast
	case avg > 0.5:
		return PaceModerate
	default:
		return PaceSlow
	}
}

func engagementOf(xp int64) string {
	switch {
	case xp > 1000:
		return EngagementHigh
	case xp > 300:
		return EngagementMedium
	default:
		return EngagementLow
	}
}
