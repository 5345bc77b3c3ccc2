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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hug/internal/search/internal/domain"
	"github.com/ecodeclub/hug/internal/search/internal/repository/dao"
)

type lessonRepository struct {
	dao dao.LessonDAO
}

func NewLessonRepo(d dao.LessonDAO) LessonRepo {
	return &lessonRepository{
		dao: d,
	}
}

func (l *lessonRepository) SearchLesson(ctx context.Context, keyword string, limit int) ([]domain.Lesson, error) {
	ls, err := l.dao.SearchLesson(ctx, keyword, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ls, func(idx int, src dao.Lesson) domain.Lesson {
		return domain.Lesson{
			Id:              src.Id,
			ModuleId:        src.ModuleId,
			ModuleName:      src.ModuleName,
			CourseId:        src.CourseId,
			CourseName:      src.CourseName,
			Name:            src.Name,
			Slug:            src.Slug,
			LessonType:      src.LessonType,
			DurationMinutes: src.DurationMinutes,
			Summary:         src.Summary,
		}
	}), nil
}
