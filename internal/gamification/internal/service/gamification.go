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
	"fmt"
	"strconv"
	"time"

	"github.com/ecodeclub/hug/internal/gamification/internal/domain"
	"github.com/ecodeclub/hug/internal/gamification/internal/event"
	"github.com/ecodeclub/hug/internal/gamification/internal/repository"
	"github.com/ecodeclub/hug/internal/user"
	"github.com/gotomicro/ego/core/elog"
)

var ErrRecordNotFound = repository.ErrRecordNotFound

//go:generate mockgen -source=./gamification.go -package=gamificationmocks -destination=../../mocks/gamification.mock.go Service
type Service interface {
	// Reward 发放一次奖励，返回新获得的徽章和奖励之后的数据
	Reward(ctx context.Context, uid int64, r domain.Reward) (domain.RewardResult, error)
	// Metrics 没有就创建，第二个返回值表示是否是新用户
	Metrics(ctx context.Context, uid int64) (domain.Metrics, bool, error)
	Badges(ctx context.Context, uid int64) ([]domain.UserBadge, []domain.Badge, error)
	RecentBadges(ctx context.Context, uid int64, limit int) ([]domain.UserBadge, error)
	Leaderboard(ctx context.Context, uid int64, typ string, limit int) (domain.Leaderboard, error)
	WarmLeaderboards(ctx context.Context) error
	// StreakDays from 和 to 都是 2006-01-02 格式，包含两端
	StreakDays(ctx context.Context, uid int64, from, to string) ([]domain.StreakDay, error)
	Today(ctx context.Context, uid int64) (domain.StreakDay, error)
	EnsureBadges(ctx context.Context, badges []domain.Badge) error
	AwardBadges(ctx context.Context, uid int64, slugs []string) ([]domain.Badge, error)
}

type gamificationService struct {
	repo     repository.GamificationRepository
	userSvc  user.UserService
	producer event.NotificationEventProducer
	now      func() time.Time
	logger   *elog.Component
}

func NewService(repo repository.GamificationRepository,
	userSvc user.UserService,
	producer event.NotificationEventProducer) Service {
	return &gamificationService{
		repo:     repo,
		userSvc:  userSvc,
		producer: producer,
		now:      time.Now,
		logger:   elog.DefaultLogger,
	}
}

func (s *gamificationService) Reward(ctx context.Context, uid int64, r domain.Reward) (domain.RewardResult, error) {
	now := s.now()
	today := now.Format(time.DateOnly)
	yesterday := now.AddDate(0, 0, -1).Format(time.DateOnly)
	before, after, err := s.repo.ApplyReward(ctx, uid, r, today, yesterday)
	if err != nil {
		return domain.RewardResult{}, fmt.Errorf("发放奖励失败 uid=%d: %w", uid, err)
	}
	badges, err := s.repo.AwardBadges(ctx, uid, after.EligibleBadges(before))
	if err != nil {
		return domain.RewardResult{}, fmt.Errorf("发放徽章失败 uid=%d: %w", uid, err)
	}
	res := domain.RewardResult{
		Xp:          r.Xp,
		Karma:       r.Karma,
		LevelBefore: before.WisdomLevel,
		Metrics:     after,
	}
	for _, b := range badges {
		res.Badges = append(res.Badges, b.Slug)
		s.notify(ctx, event.NewBadgeEarnedEvent(uid, b.Id, b.Name, b.Description))
	}
	if res.LevelUp() {
		s.notify(ctx, event.NewLevelUpEvent(uid, after.WisdomLevel))
	}
	return res, nil
}

// notify 通知失败不影响奖励
func (s *gamificationService) notify(ctx context.Context, evt event.NotificationEvent) {
	if s.producer == nil {
		return
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送通知事件失败",
			elog.FieldErr(err),
			elog.Int64("uid", evt.Uid),
			elog.String("type", evt.Type))
	}
}

func (s *gamificationService) Metrics(ctx context.Context, uid int64) (domain.Metrics, bool, error) {
	return s.repo.EnsureMetrics(ctx, uid)
}

func (s *gamificationService) Badges(ctx context.Context, uid int64) ([]domain.UserBadge, []domain.Badge, error) {
	earned, err := s.repo.UserBadges(ctx, uid, 0)
	if err != nil {
		return nil, nil, err
	}
	all, err := s.repo.Badges(ctx)
	if err != nil {
		return nil, nil, err
	}
	got := make(map[int64]struct{}, len(earned))
	for _, ub := range earned {
		got[ub.Badge.Id] = struct{}{}
	}
	available := make([]domain.Badge, 0, len(all))
	for _, b := range all {
		if _, ok := got[b.Id]; !ok {
			available = append(available, b)
		}
	}
	return earned, available, nil
}

func (s *gamificationService) RecentBadges(ctx context.Context, uid int64, limit int) ([]domain.UserBadge, error) {
	return s.repo.UserBadges(ctx, uid, limit)
}

func (s *gamificationService) Leaderboard(ctx context.Context, uid int64, typ string, limit int) (domain.Leaderboard, error) {
	if limit <= 0 || limit > domain.MaxLeaderboardSize {
		limit = domain.MaxLeaderboardSize
	}
	entries, err := s.repo.CachedLeaderboard(ctx, typ)
	if err != nil {
		entries, err = s.refreshLeaderboard(ctx, typ)
		if err != nil {
			return domain.Leaderboard{}, err
		}
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	res := domain.Leaderboard{Type: typ, Entries: entries}
	m, err := s.repo.Metrics(ctx, uid)
	if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Leaderboard{}, err
	}
	res.MyScore = m.Score(typ)
	higher, err := s.repo.CountHigher(ctx, typ, res.MyScore)
	if err != nil {
		return domain.Leaderboard{}, err
	}
	res.MyRank = higher + 1
	return res, nil
}

func (s *gamificationService) WarmLeaderboards(ctx context.Context) error {
	for _, typ := range domain.LeaderboardTypes() {
		if _, err := s.refreshLeaderboard(ctx, typ); err != nil {
			return fmt.Errorf("刷新排行榜失败 type=%s: %w", typ, err)
		}
	}
	return nil
}

// refreshLeaderboard 从数据库里面查前 100 名并写入缓存
func (s *gamificationService) refreshLeaderboard(ctx context.Context, typ string) ([]domain.LeaderboardEntry, error) {
	ms, err := s.repo.TopMetrics(ctx, typ, domain.MaxLeaderboardSize)
	if err != nil {
		return nil, err
	}
	uids := make([]int64, 0, len(ms))
	for _, m := range ms {
		uids = append(uids, m.Uid)
	}
	users := make(map[int64]user.User, len(uids))
	if len(uids) > 0 {
		us, err := s.userSvc.BatchProfile(ctx, uids)
		if err != nil {
			return nil, err
		}
		for _, u := range us {
			users[u.Id] = u
		}
	}
	badgeCnt, err := s.repo.CountBadges(ctx, uids)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.LeaderboardEntry, 0, len(ms))
	for i, m := range ms {
		u := users[m.Uid]
		name := u.Name
		if name == "" {
			name = defaultDisplayName(m.Uid)
		}
		entries = append(entries, domain.LeaderboardEntry{
			Rank:        i + 1,
			Uid:         m.Uid,
			Name:        name,
			Avatar:      u.Avatar,
			Score:       m.Score(typ),
			WisdomLevel: m.WisdomLevel,
			BadgeCount:  badgeCnt[m.Uid],
		})
	}
	if err = s.repo.CacheLeaderboard(ctx, typ, entries); err != nil {
		s.logger.Error("缓存排行榜失败", elog.FieldErr(err), elog.String("type", typ))
	}
	return entries, nil
}

func defaultDisplayName(uid int64) string {
	id := strconv.FormatInt(uid, 10)
	if len(id) > 8 {
		id = id[:8]
	}
	return "User " + id
}

func (s *gamificationService) StreakDays(ctx context.Context, uid int64, from, to string) ([]domain.StreakDay, error) {
	return s.repo.StreakDays(ctx, uid, from, to)
}

// Today 今天没有学习记录的时候返回零值
func (s *gamificationService) Today(ctx context.Context, uid int64) (domain.StreakDay, error) {
	today := s.now().Format(time.DateOnly)
	ds, err := s.repo.StreakDays(ctx, uid, today, today)
	if err != nil || len(ds) == 0 {
		return domain.StreakDay{Uid: uid, Date: today}, err
	}
	return ds[0], nil
}

func (s *gamificationService) EnsureBadges(ctx context.Context, badges []domain.Badge) error {
	return s.repo.UpsertBadges(ctx, badges)
}

func (s *gamificationService) AwardBadges(ctx context.Context, uid int64, slugs []string) ([]domain.Badge, error) {
	badges, err := s.repo.AwardBadges(ctx, uid, slugs)
	if err != nil {
		return nil, err
	}
	for _, b := range badges {
		s.notify(ctx, event.NewBadgeEarnedEvent(uid, b.Id, b.Name, b.Description))
	}
	return badges, nil
}
