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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hug/internal/search/internal/domain"
)

type SearchReq struct {
	Q     string `json:"q"`
	Type  string `json:"type,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

type Item struct {
	Type            string `json:"type"`
	Id              int64  `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DifficultyLevel string `json:"difficulty_level,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	LessonType      string `json:"lesson_type,omitempty"`
	Summary         string `json:"summary,omitempty"`
}

type Results struct {
	Courses []Item `json:"courses"`
	Lessons []Item `json:"lessons"`
	Schools []Item `json:"schools"`
}

type SearchResult struct {
	Query        string  `json:"query"`
	TotalResults int     `json:"total_results"`
	Results      Results `json:"results"`
}

func newSearchResult(q string, res domain.SearchResult) SearchResult {
	return SearchResult{
		Query:        q,
		TotalResults: res.Total(),
		Results: Results{
			Courses: slice.Map(res.Courses, func(idx int, src domain.Course) Item {
				return Item{
					Type:            "course",
					Id:              src.Id,
					Title:           src.Name,
					Description:     src.ShortDescription,
					DifficultyLevel: src.DifficultyLevel,
				}
			}),
			Lessons: slice.Map(res.Lessons, func(idx int, src domain.Lesson) Item {
				return Item{
					Type:            "lesson",
					Id:              src.Id,
					Title:           src.Name,
					Description:     src.Location(),
					DurationMinutes: src.DurationMinutes,
					LessonType:      src.LessonType,
					Summary:         src.Summary,
				}
			}),
			Schools: slice.Map(res.Schools, func(idx int, src domain.School) Item {
				return Item{
					Type:        "school",
					Id:          src.Id,
					Title:       src.Name,
					Description: src.Description,
				}
			}),
		},
	}
}
