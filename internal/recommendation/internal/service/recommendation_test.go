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
	"testing"
	"time"

	"github.com/ecodeclub/hug/internal/course"
	coursemocks "github.com/ecodeclub/hug/internal/course/mocks"
	"github.com/ecodeclub/hug/internal/gamification"
	gamificationmocks "github.com/ecodeclub/hug/internal/gamification/mocks"
	"github.com/ecodeclub/hug/internal/progress"
	progressmocks "github.com/ecodeclub/hug/internal/progress/mocks"
	"github.com/ecodeclub/hug/internal/recommendation/internal/domain"
	repomocks "github.com/ecodeclub/hug/internal/recommendation/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRecommendationService_Recommendations(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (*repomocks.MockRecommendationRepository,
			*coursemocks.MockService, *progressmocks.MockService, *gamificationmocks.MockService)

		wantRecs []domain.Recommendation
	}{
		{
			name: "已有推荐",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockRecommendationRepository,
				*coursemocks.MockService, *progressmocks.MockService, *gamificationmocks.MockService) {
				repo := repomocks.NewMockRecommendationRepository(ctrl)
				repo.EXPECT().Active(gomock.Any(), int64(3), now.UnixMilli(), 5).
					Return([]domain.Recommendation{{Id: 1, Priority: 90}, {Id: 2, Priority: 70}}, nil)
				repo.EXPECT().MarkShown(gomock.Any(), []int64{1, 2}).Return(nil)
				return repo, coursemocks.NewMockService(ctrl),
					progressmocks.NewMockService(ctrl), gamificationmocks.NewMockService(ctrl)
			},
			wantRecs: []domain.Recommendation{{Id: 1, Priority: 90}, {Id: 2, Priority: 70}},
		},
		{
			name: "生成下一门课程和连续学习推荐",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockRecommendationRepository,
				*coursemocks.MockService, *progressmocks.MockService, *gamificationmocks.MockService) {
				repo := repomocks.NewMockRecommendationRepository(ctrl)
				courseSvc := coursemocks.NewMockService(ctrl)
				progSvc := progressmocks.NewMockService(ctrl)
				gameSvc := gamificationmocks.NewMockService(ctrl)
				repo.EXPECT().Active(gomock.Any(), int64(3), now.UnixMilli(), 5).Return(nil, nil)
				gameSvc.EXPECT().Metrics(gomock.Any(), int64(3)).
					Return(gamification.Metrics{Uid: 3, CurrentStreak: 2}, false, nil)
				progSvc.EXPECT().LatestCompletedEnrollment(gomock.Any(), int64(3)).
					Return(progress.Enrollment{CourseId: 1}, nil)
				courseSvc.EXPECT().Course(gomock.Any(), int64(1)).
					Return(course.Course{Id: 1, Name: "Gita"}, nil)
				courseSvc.EXPECT().NextCourse(gomock.Any(), int64(1)).
					Return(course.Course{Id: 4}, nil)
				next := domain.NewNextCourse(3, 1, "Gita", 4, now)
				streak, _ := domain.NewStreak(3, 2, now)
				repo.EXPECT().Create(gomock.Any(), []domain.Recommendation{next, streak}).
					DoAndReturn(func(ctx context.Context, recs []domain.Recommendation) ([]domain.Recommendation, error) {
						recs[0].Id, recs[1].Id = 10, 11
						return recs, nil
					})
				repo.EXPECT().MarkShown(gomock.Any(), []int64{10, 11}).Return(nil)
				return repo, courseSvc, progSvc, gameSvc
			},
			wantRecs: func() []domain.Recommendation {
				next := domain.NewNextCourse(3, 1, "Gita", 4, now)
				next.Id = 10
				streak, _ := domain.NewStreak(3, 2, now)
				streak.Id = 11
				return []domain.Recommendation{next, streak}
			}(),
		},
		{
			name: "没有完成的课程也没有连续学习",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockRecommendationRepository,
				*coursemocks.MockService, *progressmocks.MockService, *gamificationmocks.MockService) {
				repo := repomocks.NewMockRecommendationRepository(ctrl)
				progSvc := progressmocks.NewMockService(ctrl)
				gameSvc := gamificationmocks.NewMockService(ctrl)
				repo.EXPECT().Active(gomock.Any(), int64(3), now.UnixMilli(), 5).Return(nil, nil)
				gameSvc.EXPECT().Metrics(gomock.Any(), int64(3)).
					Return(gamification.Metrics{Uid: 3, CurrentStreak: 9}, false, nil)
				progSvc.EXPECT().LatestCompletedEnrollment(gomock.Any(), int64(3)).
					Return(progress.Enrollment{}, progress.ErrRecordNotFound)
				return repo, coursemocks.NewMockService(ctrl), progSvc, gameSvc
			},
			wantRecs: []domain.Recommendation{},
		},
		{
			name: "新用户",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockRecommendationRepository,
				*coursemocks.MockService, *progressmocks.MockService, *gamificationmocks.MockService) {
				repo := repomocks.NewMockRecommendationRepository(ctrl)
				gameSvc := gamificationmocks.NewMockService(ctrl)
				repo.EXPECT().Active(gomock.Any(), int64(3), now.UnixMilli(), 5).Return(nil, nil)
				gameSvc.EXPECT().Metrics(gomock.Any(), int64(3)).
					Return(gamification.Metrics{Uid: 3}, true, nil)
				return repo, coursemocks.NewMockService(ctrl), progressmocks.NewMockService(ctrl), gameSvc
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, courseSvc, progSvc, gameSvc := tc.mock(ctrl)
			svc := NewService(repo, courseSvc, progSvc, gameSvc).(*recommendationService)
			svc.now = func() time.Time { return now }
			recs, err := svc.Recommendations(context.Background(), 3)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRecs, recs)
		})
	}
}

func TestRecommendationService_Act(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockRecommendationRepository(ctrl)
	repo.EXPECT().MarkActed(gomock.Any(), int64(3), int64(10)).Return(true, nil)
	repo.EXPECT().MarkActed(gomock.Any(), int64(3), int64(11)).Return(false, nil)
	svc := NewService(repo, coursemocks.NewMockService(ctrl),
		progressmocks.NewMockService(ctrl), gamificationmocks.NewMockService(ctrl))
	assert.NoError(t, svc.Act(context.Background(), 3, 10))
	assert.ErrorIs(t, svc.Act(context.Background(), 3, 11), ErrRecommendationNotFound)
}
