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

import "github.com/ecodeclub/hug/internal/analytics/internal/domain"

type TrackReq struct {
	EventType string         `json:"event_type"`
	EventData map[string]any `json:"event_data,omitempty"`
}

type TrackResp struct {
	Tracked bool   `json:"tracked"`
	EventId string `json:"event_id"`
}

type Insights struct {
	LearningPace            string  `json:"learning_pace"`
	AvgDailyLessons         float64 `json:"avg_daily_lessons"`
	EstimatedCompletionDays int64   `json:"estimated_completion_days"`
	ConsistencyScore        int64   `json:"consistency_score"`
	EngagementLevel         string  `json:"engagement_level"`
	LessonsCompleted7d      int64   `json:"lessons_completed_7d"`
}

type InsightsResp struct {
	Insights        Insights `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

func newInsightsResp(in domain.Insights) InsightsResp {
	return InsightsResp{
		Insights: Insights{
			LearningPace:            in.LearningPace,
			AvgDailyLessons:         in.AvgDailyLessons,
			EstimatedCompletionDays: in.EstimatedCompletionDays,
			ConsistencyScore:        in.ConsistencyScore,
			EngagementLevel:         in.EngagementLevel,
			LessonsCompleted7d:      in.LessonsCompleted7d,
		},
		Recommendations: in.Recommendations,
	}
}
