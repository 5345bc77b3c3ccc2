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

	"github.com/ecodeclub/hug/internal/course"
	coursemocks "github.com/ecodeclub/hug/internal/course/mocks"
	"github.com/ecodeclub/hug/internal/gamification"
	gamificationmocks "github.com/ecodeclub/hug/internal/gamification/mocks"
	"github.com/ecodeclub/hug/internal/progress/internal/domain"
	"github.com/ecodeclub/hug/internal/progress/internal/repository"
	repomocks "github.com/ecodeclub/hug/internal/progress/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func gitaOutline() course.Course {
	return course.Course{
		Id:   1,
		Name: "Bhagavad Gita",
		Tracks: []course.Track{
			{
				Id: 11,
				Modules: []course.LearningModule{
					{Id: 101, Lessons: []course.Lesson{{Id: 1001}, {Id: 1002}}},
				},
			},
		},
	}
}

func TestProgressService_Enroll(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.ProgressRepository, course.Service, gamification.Service)

		wantEnrollment domain.Enrollment
		wantErr        error
	}{
		{
			name: "报名成功",
			mock: func(ctrl *gomock.Controller) (repository.ProgressRepository, course.Service, gamification.Service) {
				repo := repomocks.NewMockProgressRepository(ctrl)
				courseSvc := coursemocks.NewMockService(ctrl)
				gameSvc := gamificationmocks.NewMockService(ctrl)
				courseSvc.EXPECT().CourseOutline(gomock.Any(), int64(1)).Return(gitaOutline(), nil)
				repo.EXPECT().CreateEnrollment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, e domain.Enrollment) (int64, error) {
						assert.Equal(t, domain.StatusNotStarted, e.Status)
						assert.Equal(t, int64(11), e.CurrentTrackId)
						assert.Equal(t, int64(1001), e.CurrentLessonId)
						return 7, nil
					})
				gameSvc.EXPECT().Metrics(gomock.Any(), int64(3)).Return(gamification.Metrics{Uid: 3}, true, nil)
				return repo, courseSvc, gameSvc
			},
			wantEnrollment: domain.Enrollment{
				Id:              7,
				Uid:             3,
				CourseId:        1,
				Status:          domain.StatusNotStarted,
				CurrentTrackId:  11,
				CurrentLessonId: 1001,
			},
		},
		{
			name: "课程不存在",
			mock: func(ctrl *gomock.Controller) (repository.ProgressRepository, course.Service, gamification.Service) {
				courseSvc := coursemocks.NewMockService(ctrl)
				courseSvc.EXPECT().CourseOutline(gomock.Any(), int64(1)).
					Return(course.Course{}, course.ErrRecordNotFound)
				return repomocks.NewMockProgressRepository(ctrl), courseSvc, gamificationmocks.NewMockService(ctrl)
			},
			wantErr: ErrCourseNotFound,
		},
		{
			name: "重复报名",
			mock: func(ctrl *gomock.Controller) (repository.ProgressRepository, course.Service, gamification.Service) {
				repo := repomocks.NewMockProgressRepository(ctrl)
				courseSvc := coursemocks.NewMockService(ctrl)
				courseSvc.EXPECT().CourseOutline(gomock.Any(), int64(1)).Return(gitaOutline(), nil)
				repo.EXPECT().CreateEnrollment(gomock.Any(), gomock.Any()).Return(int64(0), repository.ErrDuplicate)
				return repo, courseSvc, gamificationmocks.NewMockService(ctrl)
			},
			wantErr: ErrAlreadyEnrolled,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			e, err := svc.Enroll(context.Background(), 3, 1)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.True(t, e.LastAccessedAt > 0)
			e.LastAccessedAt = 0
			e.Course = course.Course{}
			assert.Equal(t, tc.wantEnrollment, e)
		})
	}
}

var errMockDB = errors.New("mock db error")

func TestProgressService_UpdateProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockProgressRepository(ctrl)
	courseSvc := coursemocks.NewMockService(ctrl)
	// 没有设置任何期望，调用 Reward 会直接失败
	gameSvc := gamificationmocks.NewMockService(ctrl)

	enrollment := domain.Enrollment{Id: 7, Uid: 3, CourseId: 1, Status: domain.StatusNotStarted}
	courseSvc.EXPECT().LessonLocation(gomock.Any(), int64(1001)).Return(course.LessonLocation{
		Lesson: course.Lesson{Id: 1001, Name: "Introduction", DurationMinutes: 5}, TrackId: 11, CourseId: 1,
	}, nil)
	repo.EXPECT().Enrollment(gomock.Any(), int64(3), int64(1)).Return(enrollment, nil)
	repo.EXPECT().Progress(gomock.Any(), int64(3), int64(1001)).
		Return(domain.LessonProgress{}, repository.ErrRecordNotFound)
	repo.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p domain.LessonProgress) (domain.LessonProgress, error) {
			assert.Equal(t, domain.StatusCompleted, p.Status)
			assert.Equal(t, int64(50), p.XpEarned)
			assert.True(t, p.CompletedAt > 0)
			return p, nil
		})
	courseSvc.EXPECT().CourseOutline(gomock.Any(), int64(1)).Return(gitaOutline(), nil)
	repo.EXPECT().CountCompleted(gomock.Any(), int64(3), []int64{1001, 1002}).Return(int64(1), nil)
	repo.EXPECT().UpdateEnrollment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e domain.Enrollment) error {
			assert.Equal(t, domain.StatusInProgress, e.Status)
			assert.Equal(t, float64(50), e.CompletionPercentage)
			assert.Equal(t, int64(1001), e.CurrentLessonId)
			return nil
		})

	svc := NewService(repo, courseSvc, gameSvc)
	res, err := svc.UpdateProgress(context.Background(), domain.LessonProgress{
		Uid: 3, LessonId: 1001, ProgressPercentage: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, res.Status)
	assert.Equal(t, "Introduction", res.Lesson.Name)
}

func TestProgressService_CompleteLesson(t *testing.T) {
	loc := course.LessonLocation{
		Lesson:   course.Lesson{Id: 1002, Name: "Understanding Dharma", DurationMinutes: 4},
		ModuleId: 101,
		TrackId:  11,
		CourseId: 1,
	}
	enrollment := domain.Enrollment{Id: 7, Uid: 3, CourseId: 1, Status: domain.StatusInProgress}
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.ProgressRepository, course.Service, gamification.Service)

		wantXp     int64
		wantBadges []string
		wantErr    error
	}{
		{
			name: "完成最后一个课时，课程完成",
			mock: func(ctrl *gomock.Controller) (repository.ProgressRepository, course.Service, gamification.Service) {
				repo := repomocks.NewMockProgressRepository(ctrl)
				courseSvc := coursemocks.NewMockService(ctrl)
				gameSvc := gamificationmocks.NewMockService(ctrl)
				courseSvc.EXPECT().LessonLocation(gomock.Any(), int64(1002)).Return(loc, nil)
				repo.EXPECT().Enrollment(gomock.Any(), int64(3), int64(1)).Return(enrollment, nil)
				repo.EXPECT().Progress(gomock.Any(), int64(3), int64(1002)).
					Return(domain.LessonProgress{}, repository.ErrRecordNotFound)
				repo.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p domain.LessonProgress) (domain.LessonProgress, error) {
						assert.Equal(t, domain.StatusCompleted, p.Status)
						assert.Equal(t, int64(40), p.XpEarned)
						p.Id = 1
						return p, nil
					})
				repo.EXPECT().ClaimReward(gomock.Any(), int64(3), int64(1002)).Return(true, nil)
				gameSvc.EXPECT().Reward(gomock.Any(), int64(3), gomock.Any()).
					DoAndReturn(func(ctx context.Context, uid int64, r gamification.Reward) (gamification.RewardResult, error) {
						assert.Equal(t, "Completed lesson: Understanding Dharma", r.Description)
						assert.Equal(t, int64(5), r.Karma)
						assert.Equal(t, int64(4), r.Minutes)
						return gamification.RewardResult{Xp: r.Xp, Karma: r.Karma, Badges: []string{"first-lesson"}}, nil
					})
				courseSvc.EXPECT().CourseOutline(gomock.Any(), int64(1)).Return(gitaOutline(), nil)
				repo.EXPECT().CountCompleted(gomock.Any(), int64(3), []int64{1001, 1002}).Return(int64(2), nil)
				repo.EXPECT().UpdateEnrollment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, e domain.Enrollment) error {
						assert.Equal(t, domain.StatusCompleted, e.Status)
						assert.Equal(t, float64(100), e.CompletionPercentage)
						assert.True(t, e.CompletedAt > 0)
						return nil
					})
				gameSvc.EXPECT().Reward(gomock.Any(), int64(3), gomock.Any()).
					DoAndReturn(func(ctx context.Context, uid int64, r gamification.Reward) (gamification.RewardResult, error) {
						assert.Equal(t, int64(1), r.CoursesCompleted)
						assert.Equal(t, int64(0), r.Xp)
						return gamification.RewardResult{}, nil
					})
				return repo, courseSvc, gameSvc
			},
			wantXp:     40,
			wantBadges: []string{"first-lesson"},
		},
		{
			name: "重复完成不发奖励",
			mock: func(ctrl *gomock.Controller) (repository.ProgressRepository, course.Service, gamification.Service) {
				repo := repomocks.NewMockProgressRepository(ctrl)
				courseSvc := coursemocks.NewMockService(ctrl)
				courseSvc.EXPECT().LessonLocation(gomock.Any(), int64(1002)).Return(loc, nil)
				repo.EXPECT().Enrollment(gomock.Any(), int64(3), int64(1)).Return(enrollment, nil)
				repo.EXPECT().Progress(gomock.Any(), int64(3), int64(1002)).
					Return(domain.LessonProgress{Status: domain.StatusCompleted, CompletedAt: 123}, nil)
				repo.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p domain.LessonProgress) (domain.LessonProgress, error) {
						assert.Equal(t, int64(123), p.CompletedAt)
						return p, nil
					})
				repo.EXPECT().ClaimReward(gomock.Any(), int64(3), int64(1002)).Return(false, nil)
				courseSvc.EXPECT().CourseOutline(gomock.Any(), int64(1)).Return(gitaOutline(), nil)
				repo.EXPECT().CountCompleted(gomock.Any(), int64(3), gomock.Any()).Return(int64(1), nil)
				repo.EXPECT().UpdateEnrollment(gomock.Any(), gomock.Any()).Return(nil)
				return repo, courseSvc, gamificationmocks.NewMockService(ctrl)
			},
		},
		{
			// 进度上报到 100 的时候状态已经是完成，但是奖励还没有领取
			name: "进度上报完成之后再完成课时，发放奖励",
			mock: func(ctrl *gomock.Controller) (repository.ProgressRepository, course.Service, gamification.Service) {
				repo := repomocks.NewMockProgressRepository(ctrl)
				courseSvc := coursemocks.NewMockService(ctrl)
				gameSvc := gamificationmocks.NewMockService(ctrl)
				courseSvc.EXPECT().LessonLocation(gomock.Any(), int64(1002)).Return(loc, nil)
				repo.EXPECT().Enrollment(gomock.Any(), int64(3), int64(1)).Return(enrollment, nil)
				repo.EXPECT().Progress(gomock.Any(), int64(3), int64(1002)).
					Return(domain.LessonProgress{Status: domain.StatusCompleted,
						ProgressPercentage: 100, XpEarned: 50, CompletedAt: 123}, nil)
				repo.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p domain.LessonProgress) (domain.LessonProgress, error) {
						assert.Equal(t, int64(123), p.CompletedAt)
						return p, nil
					})
				repo.EXPECT().ClaimReward(gomock.Any(), int64(3), int64(1002)).Return(true, nil)
				gameSvc.EXPECT().Reward(gomock.Any(), int64(3), gomock.Any()).
					DoAndReturn(func(ctx context.Context, uid int64, r gamification.Reward) (gamification.RewardResult, error) {
						assert.Equal(t, int64(40), r.Xp)
						assert.Equal(t, int64(5), r.Karma)
						assert.Equal(t, int64(1), r.LessonsCompleted)
						return gamification.RewardResult{Xp: r.Xp, Karma: r.Karma, Badges: []string{"first-lesson"}}, nil
					})
				courseSvc.EXPECT().CourseOutline(gomock.Any(), int64(1)).Return(gitaOutline(), nil)
				repo.EXPECT().CountCompleted(gomock.Any(), int64(3), gomock.Any()).Return(int64(1), nil)
				repo.EXPECT().UpdateEnrollment(gomock.Any(), gomock.Any()).Return(nil)
				return repo, courseSvc, gameSvc
			},
			wantXp:     40,
			wantBadges: []string{"first-lesson"},
		},
		{
			name: "发放奖励失败，归还领取标记",
			mock: func(ctrl *gomock.Controller) (repository.ProgressRepository, course.Service, gamification.Service) {
				repo := repomocks.NewMockProgressRepository(ctrl)
				courseSvc := coursemocks.NewMockService(ctrl)
				gameSvc := gamificationmocks.NewMockService(ctrl)
				courseSvc.EXPECT().LessonLocation(gomock.Any(), int64(1002)).Return(loc, nil)
				repo.EXPECT().Enrollment(gomock.Any(), int64(3), int64(1)).Return(enrollment, nil)
				repo.EXPECT().Progress(gomock.Any(), int64(3), int64(1002)).
					Return(domain.LessonProgress{}, repository.ErrRecordNotFound)
				repo.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p domain.LessonProgress) (domain.LessonProgress, error) {
						return p, nil
					})
				repo.EXPECT().ClaimReward(gomock.Any(), int64(3), int64(1002)).Return(true, nil)
				gameSvc.EXPECT().Reward(gomock.Any(), int64(3), gomock.Any()).
					Return(gamification.RewardResult{}, errMockDB)
				repo.EXPECT().ReleaseReward(gomock.Any(), int64(3), int64(1002)).Return(nil)
				return repo, courseSvc, gameSvc
			},
			wantErr: errMockDB,
		},
		{
			name: "没有报名",
			mock: func(ctrl *gomock.Controller) (repository.ProgressRepository, course.Service, gamification.Service) {
				repo := repomocks.NewMockProgressRepository(ctrl)
				courseSvc := coursemocks.NewMockService(ctrl)
				courseSvc.EXPECT().LessonLocation(gomock.Any(), int64(1002)).Return(loc, nil)
				repo.EXPECT().Enrollment(gomock.Any(), int64(3), int64(1)).
					Return(domain.Enrollment{}, repository.ErrRecordNotFound)
				return repo, courseSvc, gamificationmocks.NewMockService(ctrl)
			},
			wantErr: ErrNotEnrolled,
		},
		{
			name: "课时不存在",
			mock: func(ctrl *gomock.Controller) (repository.ProgressRepository, course.Service, gamification.Service) {
				courseSvc := coursemocks.NewMockService(ctrl)
				courseSvc.EXPECT().LessonLocation(gomock.Any(), int64(1002)).
					Return(course.LessonLocation{}, course.ErrRecordNotFound)
				return repomocks.NewMockProgressRepository(ctrl), courseSvc, gamificationmocks.NewMockService(ctrl)
			},
			wantErr: ErrLessonNotFound,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			res, err := svc.CompleteLesson(context.Background(), 3, 1002)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantXp, res.Xp)
			assert.Equal(t, tc.wantBadges, res.Badges)
		})
	}
}

func TestProgressService_Sync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockProgressRepository(ctrl)
	courseSvc := coursemocks.NewMockService(ctrl)
	gameSvc := gamificationmocks.NewMockService(ctrl)

	enrollment := domain.Enrollment{Id: 7, Uid: 3, CourseId: 1, Status: domain.StatusInProgress}
	courseSvc.EXPECT().LessonLocation(gomock.Any(), int64(1001)).Return(course.LessonLocation{
		Lesson: course.Lesson{Id: 1001, Name: "Introduction", DurationMinutes: 5}, CourseId: 1,
	}, nil)
	courseSvc.EXPECT().LessonLocation(gomock.Any(), int64(1002)).Return(course.LessonLocation{
		Lesson: course.Lesson{Id: 1002, Name: "Dharma", DurationMinutes: 4}, CourseId: 1,
	}, nil)
	courseSvc.EXPECT().LessonLocation(gomock.Any(), int64(9999)).
		Return(course.LessonLocation{}, course.ErrRecordNotFound)
	repo.EXPECT().Enrollment(gomock.Any(), int64(3), int64(1)).Return(enrollment, nil).Times(2)
	repo.EXPECT().Progress(gomock.Any(), int64(3), gomock.Any()).
		Return(domain.LessonProgress{}, repository.ErrRecordNotFound).Times(2)
	repo.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p domain.LessonProgress) (domain.LessonProgress, error) {
			return p, nil
		}).Times(2)
	repo.EXPECT().ClaimReward(gomock.Any(), int64(3), int64(1001)).Return(true, nil)
	gameSvc.EXPECT().Reward(gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(ctx context.Context, uid int64, r gamification.Reward) (gamification.RewardResult, error) {
			require.Len(t, r.Entries, 1)
			assert.Equal(t, "Synced completion: Introduction", r.Entries[0].Description)
			assert.Equal(t, int64(1), r.LessonsCompleted)
			return gamification.RewardResult{Xp: r.Xp, Karma: r.Karma}, nil
		})
	courseSvc.EXPECT().CourseOutline(gomock.Any(), int64(1)).Return(gitaOutline(), nil)
	repo.EXPECT().CountCompleted(gomock.Any(), int64(3), gomock.Any()).Return(int64(1), nil)
	repo.EXPECT().UpdateEnrollment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e domain.Enrollment) error {
			assert.Equal(t, float64(50), e.CompletionPercentage)
			return nil
		})

	svc := NewService(repo, courseSvc, gameSvc)
	res, err := svc.Sync(context.Background(), 3, []domain.SyncItem{
		{LessonId: 1001, ProgressPercentage: 100, IsCompleted: true},
		{LessonId: 1002, ProgressPercentage: 30},
		{LessonId: 9999, IsCompleted: true},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SyncResult{Synced: 2, Failed: 1, Xp: 50, Karma: 5}, res)
}

// 课时已经通过进度上报完成，离线同步的时候补发奖励
func TestProgressService_SyncUnrewardedCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockProgressRepository(ctrl)
	courseSvc := coursemocks.NewMockService(ctrl)
	gameSvc := gamificationmocks.NewMockService(ctrl)

	enrollment := domain.Enrollment{Id: 7, Uid: 3, CourseId: 1, Status: domain.StatusInProgress}
	courseSvc.EXPECT().LessonLocation(gomock.Any(), int64(1001)).Return(course.LessonLocation{
		Lesson: course.Lesson{Id: 1001, Name: "Introduction", DurationMinutes: 5}, CourseId: 1,
	}, nil).Times(2)
	repo.EXPECT().Enrollment(gomock.Any(), int64(3), int64(1)).Return(enrollment, nil).Times(2)
	repo.EXPECT().Progress(gomock.Any(), int64(3), int64(1001)).
		Return(domain.LessonProgress{Status: domain.StatusCompleted, ProgressPercentage: 100, CompletedAt: 123}, nil).
		Times(2)
	repo.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p domain.LessonProgress) (domain.LessonProgress, error) {
			assert.Equal(t, domain.StatusCompleted, p.Status)
			assert.Equal(t, int64(123), p.CompletedAt)
			return p, nil
		}).Times(2)
	// 同一个课时重复出现，只有第一次能够领取
	gomock.InOrder(
		repo.EXPECT().ClaimReward(gomock.Any(), int64(3), int64(1001)).Return(true, nil),
		repo.EXPECT().ClaimReward(gomock.Any(), int64(3), int64(1001)).Return(false, nil),
	)
	gameSvc.EXPECT().Reward(gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(ctx context.Context, uid int64, r gamification.Reward) (gamification.RewardResult, error) {
			require.Len(t, r.Entries, 1)
			assert.Equal(t, int64(50), r.Xp)
			assert.Equal(t, int64(1), r.LessonsCompleted)
			return gamification.RewardResult{Xp: r.Xp, Karma: r.Karma}, nil
		})
	courseSvc.EXPECT().CourseOutline(gomock.Any(), int64(1)).Return(gitaOutline(), nil)
	repo.EXPECT().CountCompleted(gomock.Any(), int64(3), gomock.Any()).Return(int64(1), nil)
	repo.EXPECT().UpdateEnrollment(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewService(repo, courseSvc, gameSvc)
	res, err := svc.Sync(context.Background(), 3, []domain.SyncItem{
		{LessonId: 1001, ProgressPercentage: 100},
		{LessonId: 1001, ProgressPercentage: 100, IsCompleted: true},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SyncResult{Synced: 2, Xp: 50, Karma: 5}, res)
}
