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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/hug/internal/search/internal/domain"
	"github.com/ecodeclub/hug/internal/search/internal/repository"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidQuery = errors.New("搜索参数错误")

type SearchService interface {
	// Search 在课程、课时和学院中做不区分大小写的包含匹配
	Search(ctx context.Context, q domain.Query) (domain.SearchResult, error)
}

type searchSvc struct {
	courseRepo repository.CourseRepo
	lessonRepo repository.LessonRepo
	schoolRepo repository.SchoolRepo
}

func NewSearchSvc(
	courseRepo repository.CourseRepo,
	lessonRepo repository.LessonRepo,
	schoolRepo repository.SchoolRepo,
) SearchService {
	return &searchSvc{
		courseRepo: courseRepo,
		lessonRepo: lessonRepo,
		schoolRepo: schoolRepo,
	}
}

func (s *searchSvc) Search(ctx context.Context, q domain.Query) (domain.SearchResult, error) {
	q = q.Normalize()
	if q.Keyword == "" || !q.ValidType() {
		return domain.SearchResult{}, ErrInvalidQuery
	}
	var (
		eg  errgroup.Group
		res domain.SearchResult
	)
	// 每个 goroutine 只写自己的字段
	if q.Includes(domain.TypeCourses) {
		eg.Go(func() error {
			var err error
			res.Courses, err = s.courseRepo.SearchCourse(ctx, q.Keyword, q.Limit)
			return err
		})
	}
	if q.Includes(domain.TypeLessons) {
		eg.Go(func() error {
			var err error
			res.Lessons, err = s.lessonRepo.SearchLesson(ctx, q.Keyword, q.Limit)
			return err
		})
	}
	if q.Includes(domain.TypeSchools) {
		eg.Go(func() error {
			var err error
			res.Schools, err = s.schoolRepo.SearchSchool(ctx, q.Keyword, q.Limit)
			return err
		})
	}
	return res, eg.Wait()
}
