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
	"testing"

	"github.com/ecodeclub/hug/internal/search/internal/domain"
	repomocks "github.com/ecodeclub/hug/internal/search/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSearchSvc_Search(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) SearchService
		q       domain.Query
		wantRes domain.SearchResult
		wantErr error
	}{
		{
			name: "全部类型，默认数量",
			mock: func(ctrl *gomock.Controller) SearchService {
				courseRepo := repomocks.NewMockCourseRepo(ctrl)
				lessonRepo := repomocks.NewMockLessonRepo(ctrl)
				schoolRepo := repomocks.NewMockSchoolRepo(ctrl)
				courseRepo.EXPECT().SearchCourse(gomock.Any(), "gita", domain.DefaultLimit).
					Return([]domain.Course{{Id: 1, Name: "Gita"}}, nil)
				lessonRepo.EXPECT().SearchLesson(gomock.Any(), "gita", domain.DefaultLimit).
					Return([]domain.Lesson{{Id: 2, Name: "Gita intro"}}, nil)
				schoolRepo.EXPECT().SearchSchool(gomock.Any(), "gita", domain.DefaultLimit).
					Return([]domain.School{}, nil)
				return NewSearchSvc(courseRepo, lessonRepo, schoolRepo)
			},
			q: domain.Query{Keyword: " gita "},
			wantRes: domain.SearchResult{
				Courses: []domain.Course{{Id: 1, Name: "Gita"}},
				Lessons: []domain.Lesson{{Id: 2, Name: "Gita intro"}},
				Schools: []domain.School{},
			},
		},
		{
			name: "只搜索课时，数量最多 50",
			mock: func(ctrl *gomock.Controller) SearchService {
				lessonRepo := repomocks.NewMockLessonRepo(ctrl)
				lessonRepo.EXPECT().SearchLesson(gomock.Any(), "karma", domain.MaxLimit).
					Return([]domain.Lesson{{Id: 3}}, nil)
				return NewSearchSvc(repomocks.NewMockCourseRepo(ctrl), lessonRepo, repomocks.NewMockSchoolRepo(ctrl))
			},
			q: domain.Query{Keyword: "karma", Type: "Lessons", Limit: 200},
			wantRes: domain.SearchResult{
				Lessons: []domain.Lesson{{Id: 3}},
			},
		},
		{
			name: "关键字为空",
			mock: func(ctrl *gomock.Controller) SearchService {
				return NewSearchSvc(repomocks.NewMockCourseRepo(ctrl),
					repomocks.NewMockLessonRepo(ctrl), repomocks.NewMockSchoolRepo(ctrl))
			},
			q:       domain.Query{Keyword: "   "},
			wantErr: ErrInvalidQuery,
		},
		{
			name: "类型不支持",
			mock: func(ctrl *gomock.Controller) SearchService {
				return NewSearchSvc(repomocks.NewMockCourseRepo(ctrl),
					repomocks.NewMockLessonRepo(ctrl), repomocks.NewMockSchoolRepo(ctrl))
			},
			q:       domain.Query{Keyword: "gita", Type: "videos"},
			wantErr: ErrInvalidQuery,
		},
		{
			name: "搜索引擎出错",
			mock: func(ctrl *gomock.Controller) SearchService {
				schoolRepo := repomocks.NewMockSchoolRepo(ctrl)
				schoolRepo.EXPECT().SearchSchool(gomock.Any(), "seva", domain.DefaultLimit).
					Return(nil, errors.New("mock error"))
				return NewSearchSvc(repomocks.NewMockCourseRepo(ctrl), repomocks.NewMockLessonRepo(ctrl), schoolRepo)
			},
			q:       domain.Query{Keyword: "seva", Type: "schools"},
			wantErr: errors.New("mock error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			res, err := tc.mock(ctrl).Search(context.Background(), tc.q)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes, res)
		})
	}
}
