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

	"github.com/ecodeclub/hug/internal/gamification"
	gamificationmocks "github.com/ecodeclub/hug/internal/gamification/mocks"
	"github.com/ecodeclub/hug/internal/gita/internal/domain"
	"github.com/ecodeclub/hug/internal/gita/internal/repository"
	repomocks "github.com/ecodeclub/hug/internal/gita/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func firstShloka() domain.Shloka {
	return domain.Shloka{
		Id:       11,
		Number:   1,
		XpReward: 2,
		Chapter:  domain.Chapter{Id: 1, Number: 1, Level: 1},
	}
}

func TestGitaService_UpdateProgress(t *testing.T) {
	yes := true
	testCases := []struct {
		name   string
		mock   func(ctrl *gomock.Controller) (repository.GitaRepository, gamification.Service)
		update domain.ProgressUpdate

		wantRewarded bool
		wantBadges   []string
		wantXp       int64
		wantErr      error
	}{
		{
			name:   "第一次完成，获得经验和等级徽章",
			update: domain.ProgressUpdate{ShlokaId: 11, Status: domain.StatusCompleted, HasReadExplanation: &yes},
			mock: func(ctrl *gomock.Controller) (repository.GitaRepository, gamification.Service) {
				repo := repomocks.NewMockGitaRepository(ctrl)
				gameSvc := gamificationmocks.NewMockService(ctrl)
				repo.EXPECT().Shloka(gomock.Any(), int64(11), domain.DefaultLanguage).Return(firstShloka(), nil)
				repo.EXPECT().FindProgress(gomock.Any(), int64(3), int64(11)).
					Return(domain.ShlokaProgress{}, repository.ErrRecordNotFound)
				repo.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p domain.ShlokaProgress) (domain.ShlokaProgress, bool, error) {
						assert.Equal(t, int64(3), p.Uid)
						assert.Equal(t, domain.StatusCompleted, p.Status)
						assert.True(t, p.HasReadExplanation)
						assert.True(t, p.CompletedAt > 0)
						return p, true, nil
					})
				gameSvc.EXPECT().Reward(gomock.Any(), int64(3), gomock.Any()).
					DoAndReturn(func(ctx context.Context, uid int64, r gamification.Reward) (gamification.RewardResult, error) {
						assert.Equal(t, int64(2), r.Xp)
						assert.Equal(t, domain.RewardSource, r.Source)
						assert.Equal(t, int64(11), r.SourceId)
						assert.Equal(t, "Completed shloka 1.1", r.Description)
						return gamification.RewardResult{Xp: 2}, nil
					})
				repo.EXPECT().ChaptersByLevel(gomock.Any(), 1).
					Return([]domain.Chapter{{Id: 1, TotalShlokas: 1}, {Id: 2, TotalShlokas: 1}}, nil)
				repo.EXPECT().CountCompletedByLevel(gomock.Any(), int64(3), 1).Return(int64(2), nil)
				repo.EXPECT().CountCompleted(gomock.Any(), int64(3)).Return(int64(2), nil)
				gameSvc.EXPECT().AwardBadges(gomock.Any(), int64(3), []string{"gita-initiate"}).
					Return([]gamification.Badge{{Slug: "gita-initiate"}}, nil)
				return repo, gameSvc
			},
			wantRewarded: true,
			wantBadges:   []string{"gita-initiate"},
			wantXp:       2,
		},
		{
			name:   "重复完成不再奖励",
			update: domain.ProgressUpdate{ShlokaId: 11, Status: domain.StatusCompleted},
			mock: func(ctrl *gomock.Controller) (repository.GitaRepository, gamification.Service) {
				repo := repomocks.NewMockGitaRepository(ctrl)
				repo.EXPECT().Shloka(gomock.Any(), int64(11), domain.DefaultLanguage).Return(firstShloka(), nil)
				repo.EXPECT().FindProgress(gomock.Any(), int64(3), int64(11)).
					Return(domain.ShlokaProgress{Id: 1, Uid: 3, ShlokaId: 11,
						Status: domain.StatusCompleted, XpEarned: 2, CompletedAt: 100}, nil)
				repo.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p domain.ShlokaProgress) (domain.ShlokaProgress, bool, error) {
						assert.Equal(t, int64(100), p.CompletedAt)
						return p, false, nil
					})
				return repo, gamificationmocks.NewMockService(ctrl)
			},
			wantXp: 2,
		},
		{
			name:   "记录学习时间",
			update: domain.ProgressUpdate{ShlokaId: 11, Status: domain.StatusInProgress, TimeSpentSeconds: 30},
			mock: func(ctrl *gomock.Controller) (repository.GitaRepository, gamification.Service) {
				repo := repomocks.NewMockGitaRepository(ctrl)
				repo.EXPECT().Shloka(gomock.Any(), int64(11), domain.DefaultLanguage).Return(firstShloka(), nil)
				repo.EXPECT().FindProgress(gomock.Any(), int64(3), int64(11)).
					Return(domain.ShlokaProgress{}, repository.ErrRecordNotFound)
				repo.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p domain.ShlokaProgress) (domain.ShlokaProgress, bool, error) {
						assert.Equal(t, int64(30), p.TimeSpentSeconds)
						assert.Equal(t, int64(0), p.CompletedAt)
						return p, false, nil
					})
				return repo, gamificationmocks.NewMockService(ctrl)
			},
		},
		{
			name:   "偈颂不存在",
			update: domain.ProgressUpdate{ShlokaId: 99, Status: domain.StatusCompleted},
			mock: func(ctrl *gomock.Controller) (repository.GitaRepository, gamification.Service) {
				repo := repomocks.NewMockGitaRepository(ctrl)
				repo.EXPECT().Shloka(gomock.Any(), int64(99), domain.DefaultLanguage).
					Return(domain.Shloka{}, repository.ErrRecordNotFound)
				return repo, gamificationmocks.NewMockService(ctrl)
			},
			wantErr: ErrShlokaNotFound,
		},
		{
			name:   "非法的状态",
			update: domain.ProgressUpdate{ShlokaId: 11, Status: "done"},
			mock: func(ctrl *gomock.Controller) (repository.GitaRepository, gamification.Service) {
				return repomocks.NewMockGitaRepository(ctrl), gamificationmocks.NewMockService(ctrl)
			},
			wantErr: ErrInvalidProgress,
		},
		{
			name:   "奖励失败",
			update: domain.ProgressUpdate{ShlokaId: 11, Status: domain.StatusCompleted},
			mock: func(ctrl *gomock.Controller) (repository.GitaRepository, gamification.Service) {
				repo := repomocks.NewMockGitaRepository(ctrl)
				gameSvc := gamificationmocks.NewMockService(ctrl)
				repo.EXPECT().Shloka(gomock.Any(), int64(11), domain.DefaultLanguage).Return(firstShloka(), nil)
				repo.EXPECT().FindProgress(gomock.Any(), int64(3), int64(11)).
					Return(domain.ShlokaProgress{}, repository.ErrRecordNotFound)
				repo.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p domain.ShlokaProgress) (domain.ShlokaProgress, bool, error) {
						return p, true, nil
					})
				gameSvc.EXPECT().Reward(gomock.Any(), int64(3), gomock.Any()).
					Return(gamification.RewardResult{}, errors.New("mock db error"))
				return repo, gameSvc
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			res, err := svc.UpdateProgress(context.Background(), 3, tc.update)
			if tc.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tc.wantErr, ErrShlokaNotFound) || errors.Is(tc.wantErr, ErrInvalidProgress) {
					assert.ErrorIs(t, err, tc.wantErr)
				} else {
					assert.Equal(t, tc.wantErr.Error(), err.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRewarded, res.Rewarded)
			assert.Equal(t, tc.wantBadges, res.Badges)
			assert.Equal(t, tc.wantXp, res.Progress.XpEarned)
			assert.True(t, res.Progress.LastAccessedAt > 0)
		})
	}
}

func TestGitaService_Levels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockGitaRepository(ctrl)
	repo.EXPECT().ChaptersByLevel(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, level int) ([]domain.Chapter, error) {
			return []domain.Chapter{{Number: level, Level: level, TotalShlokas: 10 * level}}, nil
		}).Times(domain.MaxLevel)
	svc := NewService(repo, gamificationmocks.NewMockService(ctrl))
	levels, err := svc.Levels(context.Background())
	require.NoError(t, err)
	require.Len(t, levels, domain.MaxLevel)
	for i, l := range levels {
		assert.Equal(t, i+1, l.Number)
		assert.Equal(t, 10*(i+1), l.TotalShlokas())
		assert.Len(t, l.Chapters, 1)
	}
}

func TestGitaService_Level(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockGitaRepository(ctrl)
	repo.EXPECT().ChaptersByLevel(gomock.Any(), 5).
		Return([]domain.Chapter{{Id: 16, Number: 16}, {Id: 17, Number: 17}}, nil)
	repo.EXPECT().ShlokasByChapters(gomock.Any(), []int64{16, 17}).
		Return(map[int64][]domain.Shloka{16: {{Id: 1}, {Id: 2}}}, nil)
	svc := NewService(repo, gamificationmocks.NewMockService(ctrl))

	l, err := svc.Level(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "gita-warrior", l.BadgeSlug)
	assert.Len(t, l.Chapters[0].Shlokas, 2)
	assert.Len(t, l.Chapters[1].Shlokas, 0)

	_, err = svc.Level(context.Background(), 6)
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestGitaService_Seed(t *testing.T) {
	t.Run("已经有数据", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockGitaRepository(ctrl)
		repo.EXPECT().IsEmpty(gomock.Any()).Return(false, nil)
		seeded, err := NewService(repo, gamificationmocks.NewMockService(ctrl)).Seed(context.Background())
		require.NoError(t, err)
		assert.False(t, seeded)
	})
	t.Run("写入初始数据", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockGitaRepository(ctrl)
		gameSvc := gamificationmocks.NewMockService(ctrl)
		repo.EXPECT().IsEmpty(gomock.Any()).Return(true, nil)
		gameSvc.EXPECT().EnsureBadges(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, badges []gamification.Badge) error {
				assert.Len(t, badges, domain.MaxLevel+1)
				assert.Equal(t, domain.BadgeMaster, badges[domain.MaxLevel].Slug)
				return nil
			})
		repo.EXPECT().Seed(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, chapters []domain.Chapter) error {
				assert.Len(t, chapters, 18)
				total := 0
				for _, c := range chapters {
					total += c.TotalShlokas
				}
				assert.Equal(t, domain.TotalShlokas, total)
				assert.Len(t, chapters[0].Shlokas, 2)
				return nil
			})
		seeded, err := NewService(repo, gameSvc).Seed(context.Background())
		require.NoError(t, err)
		assert.True(t, seeded)
	})
}
