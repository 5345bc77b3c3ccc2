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
	"time"

	"github.com/ecodeclub/hug/internal/gamification/internal/domain"
	"github.com/ecodeclub/hug/internal/gamification/internal/event"
	evtmocks "github.com/ecodeclub/hug/internal/gamification/internal/event/mocks"
	"github.com/ecodeclub/hug/internal/gamification/internal/repository"
	repomocks "github.com/ecodeclub/hug/internal/gamification/internal/repository/mocks"
	"github.com/ecodeclub/hug/internal/user"
	usermocks "github.com/ecodeclub/hug/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGamificationService_Reward(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.GamificationRepository, event.NotificationEventProducer)

		wantBadges  []string
		wantLevelUp bool
		wantErr     error
	}{
		{
			name: "第一节课",
			mock: func(ctrl *gomock.Controller) (repository.GamificationRepository, event.NotificationEventProducer) {
				repo := repomocks.NewMockGamificationRepository(ctrl)
				producer := evtmocks.NewMockNotificationEventProducer(ctrl)
				repo.EXPECT().ApplyReward(gomock.Any(), int64(1), gomock.Any(), "2024-03-01", "2024-02-29").
					Return(domain.Metrics{Uid: 1, WisdomLevel: 1},
						domain.Metrics{Uid: 1, WisdomLevel: 1, TotalXp: 50, TotalLessonsCompleted: 1}, nil)
				repo.EXPECT().AwardBadges(gomock.Any(), int64(1), []string{domain.BadgeFirstLesson}).
					Return([]domain.Badge{{Id: 1, Slug: domain.BadgeFirstLesson, Name: "First Step"}}, nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.NotificationEvent) error {
						assert.Equal(t, event.TypeBadgeEarned, evt.Type)
						assert.Equal(t, int64(1), evt.BizId)
						return nil
					})
				return repo, producer
			},
			wantBadges: []string{domain.BadgeFirstLesson},
		},
		{
			name: "升级并且通知失败",
			mock: func(ctrl *gomock.Controller) (repository.GamificationRepository, event.NotificationEventProducer) {
				repo := repomocks.NewMockGamificationRepository(ctrl)
				producer := evtmocks.NewMockNotificationEventProducer(ctrl)
				repo.EXPECT().ApplyReward(gomock.Any(), int64(1), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Metrics{Uid: 1, WisdomLevel: 1, TotalXp: 990, TotalLessonsCompleted: 4},
						domain.Metrics{Uid: 1, WisdomLevel: 2, TotalXp: 1090, TotalLessonsCompleted: 5}, nil)
				// 之前已经完成过课时，不再尝试首课徽章
				repo.EXPECT().AwardBadges(gomock.Any(), int64(1), []string(nil)).Return(nil, nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock mq error"))
				return repo, producer
			},
			wantLevelUp: true,
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) (repository.GamificationRepository, event.NotificationEventProducer) {
				repo := repomocks.NewMockGamificationRepository(ctrl)
				repo.EXPECT().ApplyReward(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Metrics{}, domain.Metrics{}, errors.New("mock db error"))
				return repo, evtmocks.NewMockNotificationEventProducer(ctrl)
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, producer := tc.mock(ctrl)
			svc := NewService(repo, nil, producer).(*gamificationService)
			svc.now = func() time.Time { return now }
			res, err := svc.Reward(context.Background(), 1, domain.Reward{
				Xp:               100,
				Karma:            5,
				Source:           "lesson",
				LessonsCompleted: 1,
			})
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantBadges, res.Badges)
			assert.Equal(t, tc.wantLevelUp, res.LevelUp())
			assert.Equal(t, int64(100), res.Xp)
		})
	}
}

func TestGamificationService_Badges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockGamificationRepository(ctrl)
	repo.EXPECT().UserBadges(gomock.Any(), int64(1), 0).Return([]domain.UserBadge{
		{Badge: domain.Badge{Id: 1, Slug: domain.BadgeFirstLesson}, EarnedAt: 123},
	}, nil)
	repo.EXPECT().Badges(gomock.Any()).Return([]domain.Badge{
		{Id: 1, Slug: domain.BadgeFirstLesson},
		{Id: 2, Slug: domain.BadgeGitaSadhak},
	}, nil)
	svc := NewService(repo, nil, nil)
	earned, available, err := svc.Badges(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, earned, 1)
	assert.Equal(t, []domain.Badge{{Id: 2, Slug: domain.BadgeGitaSadhak}}, available)
}

func TestGamificationService_Leaderboard(t *testing.T) {
	testCases := []struct {
		name  string
		mock  func(ctrl *gomock.Controller) (repository.GamificationRepository, user.UserService)
		typ   string
		limit int

		wantEntries []domain.LeaderboardEntry
		wantRank    int64
		wantScore   int64
	}{
		{
			name: "缓存命中",
			mock: func(ctrl *gomock.Controller) (repository.GamificationRepository, user.UserService) {
				repo := repomocks.NewMockGamificationRepository(ctrl)
				repo.EXPECT().CachedLeaderboard(gomock.Any(), domain.LeaderboardXp).Return([]domain.LeaderboardEntry{
					{Rank: 1, Uid: 2, Name: "Arjuna", Score: 3000},
					{Rank: 2, Uid: 1, Name: "Krishna", Score: 2000},
				}, nil)
				repo.EXPECT().Metrics(gomock.Any(), int64(1)).Return(domain.Metrics{Uid: 1, TotalXp: 2000}, nil)
				repo.EXPECT().CountHigher(gomock.Any(), domain.LeaderboardXp, int64(2000)).Return(int64(1), nil)
				return repo, usermocks.NewMockUserService(ctrl)
			},
			typ:   domain.LeaderboardXp,
			limit: 1,
			wantEntries: []domain.LeaderboardEntry{
				{Rank: 1, Uid: 2, Name: "Arjuna", Score: 3000},
			},
			wantRank:  2,
			wantScore: 2000,
		},
		{
			name: "缓存未命中",
			mock: func(ctrl *gomock.Controller) (repository.GamificationRepository, user.UserService) {
				repo := repomocks.NewMockGamificationRepository(ctrl)
				userSvc := usermocks.NewMockUserService(ctrl)
				repo.EXPECT().CachedLeaderboard(gomock.Any(), domain.LeaderboardKarma).
					Return(nil, errors.New("key not found"))
				repo.EXPECT().TopMetrics(gomock.Any(), domain.LeaderboardKarma, domain.MaxLeaderboardSize).
					Return([]domain.Metrics{
						{Uid: 1234567890, TotalKarma: 30, WisdomLevel: 2},
						{Uid: 7, TotalKarma: 20, WisdomLevel: 1},
					}, nil)
				userSvc.EXPECT().BatchProfile(gomock.Any(), []int64{1234567890, 7}).
					Return([]user.User{{Id: 7, Name: "Arjuna"}}, nil)
				repo.EXPECT().CountBadges(gomock.Any(), []int64{1234567890, 7}).
					Return(map[int64]int64{7: 2}, nil)
				repo.EXPECT().CacheLeaderboard(gomock.Any(), domain.LeaderboardKarma, gomock.Any()).Return(nil)
				// 自己还没有学习数据
				repo.EXPECT().Metrics(gomock.Any(), int64(1)).Return(domain.Metrics{}, repository.ErrRecordNotFound)
				repo.EXPECT().CountHigher(gomock.Any(), domain.LeaderboardKarma, int64(0)).Return(int64(2), nil)
				return repo, userSvc
			},
			typ:   domain.LeaderboardKarma,
			limit: 0,
			wantEntries: []domain.LeaderboardEntry{
				{Rank: 1, Uid: 1234567890, Name: "User 12345678", Score: 30, WisdomLevel: 2},
				{Rank: 2, Uid: 7, Name: "Arjuna", Score: 20, WisdomLevel: 1, BadgeCount: 2},
			},
			wantRank: 3,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, userSvc := tc.mock(ctrl)
			svc := NewService(repo, userSvc, nil)
			lb, err := svc.Leaderboard(context.Background(), 1, tc.typ, tc.limit)
			require.NoError(t, err)
			assert.Equal(t, tc.wantEntries, lb.Entries)
			assert.Equal(t, tc.wantRank, lb.MyRank)
			assert.Equal(t, tc.wantScore, lb.MyScore)
		})
	}
}

func TestDefaultDisplayName(t *testing.T) {
	assert.Equal(t, "User 12", defaultDisplayName(12))
	assert.Equal(t, "User 98765432", defaultDisplayName(9876543210))
}
