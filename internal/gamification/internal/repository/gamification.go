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
	"github.com/ecodeclub/hug/internal/gamification/internal/domain"
	"github.com/ecodeclub/hug/internal/gamification/internal/repository/cache"
	"github.com/ecodeclub/hug/internal/gamification/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./gamification.go -package=repomocks -destination=./mocks/gamification.mock.go GamificationRepository
type GamificationRepository interface {
	Metrics(ctx context.Context, uid int64) (domain.Metrics, error)
	EnsureMetrics(ctx context.Context, uid int64) (domain.Metrics, bool, error)
	// ApplyReward today 和 yesterday 的格式是 2006-01-02
	ApplyReward(ctx context.Context, uid int64, r domain.Reward, today, yesterday string) (domain.Metrics, domain.Metrics, error)

	TopMetrics(ctx context.Context, typ string, limit int) ([]domain.Metrics, error)
	CountHigher(ctx context.Context, typ string, score int64) (int64, error)
	CachedLeaderboard(ctx context.Context, typ string) ([]domain.LeaderboardEntry, error)
	CacheLeaderboard(ctx context.Context, typ string, entries []domain.LeaderboardEntry) error

	UpsertBadges(ctx context.Context, badges []domain.Badge) error
	Badges(ctx context.Context) ([]domain.Badge, error)
	AwardBadges(ctx context.Context, uid int64, slugs []string) ([]domain.Badge, error)
	UserBadges(ctx context.Context, uid int64, limit int) ([]domain.UserBadge, error)
	CountBadges(ctx context.Context, uids []int64) (map[int64]int64, error)

	StreakDays(ctx context.Context, uid int64, from, to string) ([]domain.StreakDay, error)
}

type gamificationRepository struct {
	dao   dao.GamificationDAO
	cache cache.LeaderboardCache
}

func NewGamificationRepository(d dao.GamificationDAO, c cache.LeaderboardCache) GamificationRepository {
	return &gamificationRepository{
		dao:   d,
		cache: c,
	}
}

func (repo *gamificationRepository) Metrics(ctx context.Context, uid int64) (domain.Metrics, error) {
	m, err := repo.dao.FindMetrics(ctx, uid)
	return repo.toMetrics(m), err
}

func (repo *gamificationRepository) EnsureMetrics(ctx context.Context, uid int64) (domain.Metrics, bool, error) {
	m, created, err := repo.dao.EnsureMetrics(ctx, uid)
	return repo.toMetrics(m), created, err
}

func (repo *gamificationRepository) ApplyReward(ctx context.Context, uid int64,
	r domain.Reward, today, yesterday string) (domain.Metrics, domain.Metrics, error) {
	before, after, err := repo.dao.ApplyReward(ctx, dao.RewardRecord{
		Uid:     uid,
		Xp:      r.Xp,
		Karma:   r.Karma,
		Lessons: r.LessonsCompleted,
		Courses: r.CoursesCompleted,
		Minutes: r.Minutes,
		Txs: slice.Map(r.Transactions(uid), func(idx int, src domain.Transaction) dao.Transaction {
			return dao.Transaction{
				Uid:         src.Uid,
				Type:        src.Type,
				Amount:      src.Amount,
				Source:      src.Source,
				SourceId:    src.SourceId,
				Description: src.Description,
			}
		}),
		UpdateStreak:  r.UpdatesStreak(),
		Today:         today,
		Yesterday:     yesterday,
		StreakLessons: domain.StreakLessonsStep,
		StreakXp:      domain.StreakXpStep,
		WisdomLevel:   domain.WisdomLevelOf,
	})
	return repo.toMetrics(before), repo.toMetrics(after), err
}

func (repo *gamificationRepository) TopMetrics(ctx context.Context, typ string, limit int) ([]domain.Metrics, error) {
	ms, err := repo.dao.TopMetrics(ctx, repo.column(typ), limit)
	return slice.Map(ms, func(idx int, src dao.Metrics) domain.Metrics {
		return repo.toMetrics(src)
	}), err
}

func (repo *gamificationRepository) CountHigher(ctx context.Context, typ string, score int64) (int64, error) {
	return repo.dao.CountHigher(ctx, repo.column(typ), score)
}

func (repo *gamificationRepository) CachedLeaderboard(ctx context.Context, typ string) ([]domain.LeaderboardEntry, error) {
	return repo.cache.Get(ctx, typ)
}

func (repo *gamificationRepository) CacheLeaderboard(ctx context.Context, typ string, entries []domain.LeaderboardEntry) error {
	return repo.cache.Set(ctx, typ, entries)
}

func (repo *gamificationRepository) UpsertBadges(ctx context.Context, badges []domain.Badge) error {
	return repo.dao.UpsertBadges(ctx, slice.Map(badges, func(idx int, src domain.Badge) dao.Badge {
		return dao.Badge{
			Slug:        src.Slug,
			Name:        src.Name,
			Description: src.Description,
			IconUrl:     src.IconUrl,
			Category:    src.Category,
			XpReward:    src.XpReward,
			KarmaReward: src.KarmaReward,
		}
	}))
}

func (repo *gamificationRepository) Badges(ctx context.Context) ([]domain.Badge, error) {
	bs, err := repo.dao.ListBadges(ctx)
	return slice.Map(bs, func(idx int, src dao.Badge) domain.Badge {
		return repo.toBadge(src)
	}), err
}

func (repo *gamificationRepository) AwardBadges(ctx context.Context, uid int64, slugs []string) ([]domain.Badge, error) {
	bs, err := repo.dao.AwardBadges(ctx, uid, slugs)
	return slice.Map(bs, func(idx int, src dao.Badge) domain.Badge {
		return repo.toBadge(src)
	}), err
}

func (repo *gamificationRepository) UserBadges(ctx context.Context, uid int64, limit int) ([]domain.UserBadge, error) {
	ubs, err := repo.dao.UserBadges(ctx, uid, limit)
	if err != nil || len(ubs) == 0 {
		return nil, err
	}
	ids := slice.Map(ubs, func(idx int, src dao.UserBadge) int64 {
		return src.BadgeId
	})
	bs, err := repo.dao.FindBadgesByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	badges := make(map[int64]dao.Badge, len(bs))
	for _, b := range bs {
		badges[b.Id] = b
	}
	return slice.Map(ubs, func(idx int, src dao.UserBadge) domain.UserBadge {
		return domain.UserBadge{
			Badge:    repo.toBadge(badges[src.BadgeId]),
			EarnedAt: src.Ctime,
		}
	}), nil
}

func (repo *gamificationRepository) CountBadges(ctx context.Context, uids []int64) (map[int64]int64, error) {
	if len(uids) == 0 {
		return map[int64]int64{}, nil
	}
	return repo.dao.CountBadgesByUids(ctx, uids)
}

func (repo *gamificationRepository) StreakDays(ctx context.Context, uid int64, from, to string) ([]domain.StreakDay, error) {
	ds, err := repo.dao.StreakDays(ctx, uid, from, to)
	return slice.Map(ds, func(idx int, src dao.StreakDay) domain.StreakDay {
		return domain.StreakDay{
			Uid:              src.Uid,
			Date:             src.Date,
			LessonsCompleted: src.LessonsCompleted,
			XpEarned:         src.XpEarned,
			TimeSpentMinutes: src.TimeSpentMinutes,
		}
	}), err
}

func (repo *gamificationRepository) column(typ string) string {
	switch typ {
	case domain.LeaderboardKarma:
		return "total_karma"
	case domain.LeaderboardStreak:
		return "current_streak"
	default:
		return "total_xp"
	}
}

func (repo *gamificationRepository) toMetrics(m dao.Metrics) domain.Metrics {
	return domain.Metrics{
		Uid:                   m.Uid,
		TotalXp:               m.TotalXp,
		TotalKarma:            m.TotalKarma,
		WisdomLevel:           m.WisdomLevel,
		CurrentStreak:         m.CurrentStreak,
		LongestStreak:         m.LongestStreak,
		TotalLessonsCompleted: m.TotalLessonsCompleted,
		TotalCoursesCompleted: m.TotalCoursesCompleted,
		TotalTimeSpentMinutes: m.TotalTimeSpentMinutes,
		LastActivityAt:        m.LastActivityAt,
		Ctime:                 m.Ctime,
	}
}

func (repo *gamificationRepository) toBadge(b dao.Badge) domain.Badge {
	return domain.Badge{
		Id:          b.Id,
		Slug:        b.Slug,
		Name:        b.Name,
		Description: b.Description,
		IconUrl:     b.IconUrl,
		Category:    b.Category,
		XpReward:    b.XpReward,
		KarmaReward: b.KarmaReward,
	}
}
