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

package repository

import (
	"context"

	"github.com/ecodeclub/hug/internal/search/internal/domain"
)

//go:generate mockgen -source=./type.go -package=repomocks -destination=./mocks/search.mock.go CourseRepo LessonRepo SchoolRepo DocumentRepo
type CourseRepo interface {
	SearchCourse(ctx context.Context, keyword string, limit int) ([]domain.Course, error)
}

type LessonRepo interface {
	SearchLesson(ctx context.Context, keyword string, limit int) ([]domain.Lesson, error)
}

type SchoolRepo interface {
	SearchSchool(ctx context.Context, keyword string, limit int) ([]domain.School, error)
}

type DocumentRepo interface {
	Save(ctx context.Context, doc domain.Document) error
}
