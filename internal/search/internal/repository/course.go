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

type courseRepository struct {
	dao dao.CourseDAO
}

func NewCourseRepo(d dao.CourseDAO) CourseRepo {
	return &courseRepository{
		dao: d,
	}
}

func (c *courseRepository) SearchCourse(ctx context.Context, keyword string, limit int) ([]domain.Course, error) {
	cs, err := c.dao.SearchCourse(ctx, keyword, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Course) domain.Course {
		return domain.Course{
			Id:               src.Id,
			SchoolId:         src.SchoolId,
			Name:             src.Name,
			Slug:             src.Slug,
			ShortDescription: src.ShortDescription,
			Description:      src.Description,
			DifficultyLevel:  src.DifficultyLevel,
		}
	}), nil
}
