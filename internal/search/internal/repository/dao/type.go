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

package dao

import (
	"context"
)

const (
	SchoolIndexName = "school_index"
	CourseIndexName = "course_index"
	LessonIndexName = "lesson_index"
)

type CourseDAO interface {
	SearchCourse(ctx context.Context, keyword string, limit int) ([]Course, error)
}

type LessonDAO interface {
	SearchLesson(ctx context.Context, keyword string, limit int) ([]Lesson, error)
}

type SchoolDAO interface {
	SearchSchool(ctx context.Context, keyword string, limit int) ([]School, error)
}

// DocumentDAO 按照 id 覆盖写入一个 JSON 文档
type DocumentDAO interface {
	Upsert(ctx context.Context, index string, id string, data string) error
}

type Course struct {
	Id               int64  `json:"id"`
	SchoolId         int64  `json:"school_id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
	DifficultyLevel  string `json:"difficulty_level"`
}

type Lesson struct {
	Id              int64  `json:"id"`
	ModuleId        int64  `json:"module_id"`
	ModuleName      string `json:"module_name"`
	CourseId        int64  `json:"course_id"`
	CourseName      string `json:"course_name"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	LessonType      string `json:"lesson_type"`
	DurationMinutes int    `json:"duration_minutes"`
	Summary         string `json:"summary"`
}

type School struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
