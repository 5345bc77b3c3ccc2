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
	"time"

	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/gita/internal/domain"
	"github.com/ecodeclub/hug/internal/gita/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrRecordNotFound  = repository.ErrRecordNotFound
	ErrChapterNotFound = errors.New("章节不存在")
	ErrShlokaNotFound  = errors.New("偈颂不存在")
	ErrInvalidLevel    = errors.New("等级不存在")
	ErrInvalidProgress = errors.New("非法的学习进度")
)

//go:generate mockgen -source=./gita.go -package=gitamocks -destination=../../mocks/gita.mock.go Service
type Service interface {
	Chapters(ctx context.Context) ([]domain.Chapter, error)
	Chapter(ctx context.Context, number int) (domain.Chapter, error)
	// Shloka language 为空的时候使用英文
	Shloka(ctx context.Context, id int64, language string) (domain.Shloka, error)
	// Levels 1 到 5 级，带上各自的章节
	Levels(ctx context.Context) ([]domain.Level, error)
	// Level 章节带上偈颂
	Level(ctx context.Context, number int) (domain.Level, error)

	Progress(ctx context.Context, uid int64) (domain.ProgressStats, []domain.ShlokaProgress, error)
	UpdateProgress(ctx context.Context, uid int64, u domain.ProgressUpdate) (domain.ProgressResult, error)

	// Seed 没有数据的时候写入初始数据
	Seed(ctx context.Context) (bool, error)
}

type gitaService struct {
	repo    repository.GitaRepository
	gameSvc gamification.Service
	logger  *elog.Component
}

func NewService(repo repository.GitaRepository, gameSvc gamification.Service) Service {
	return &gitaService{
		repo:    repo,
		gameSvc: gameSvc,
		logger:  elog.DefaultLogger,
	}
}

func (s *gitaService) Chapters(ctx context.Context) ([]domain.Chapter, error) {
	return s.repo.Chapters(ctx)
}

func (s *gitaService) Chapter(ctx context.Context, number int) (domain.Chapter, error) {
	c, err := s.repo.Chapter(ctx, number)
	if errors.Is(err, ErrRecordNotFound) {
		return domain.Chapter{}, fmt.Errorf("%w, number %d", ErrChapterNotFound, number)
	}
	return c, err
}

func (s *gitaService) Shloka(ctx context.Context, id int64, language string) (domain.Shloka, error) {
	if language == "" {
		language = domain.DefaultLanguage
	}
	sh, err := s.repo.Shloka(ctx, id, language)
	if errors.Is(err, ErrRecordNotFound) {
		return domain.Shloka{}, fmt.Errorf("%w, id %d", ErrShlokaNotFound, id)
	}
	return sh, err
}

func (s *gitaService) Levels(ctx context.Context) ([]domain.Level, error) {
	levels := domain.Levels()
	var eg errgroup.Group
	for i := range levels {
		i := i
		eg.Go(func() error {
			cs, err := s.repo.ChaptersByLevel(ctx, levels[i].Number)
			levels[i].Chapters = cs
			return err
		})
	}
	return levels, eg.Wait()
}

func (s *gitaService) Level(ctx context.Context, number int) (domain.Level, error) {
	if !domain.ValidLevel(number) {
		return domain.Level{}, fmt.Errorf("%w, level %d", ErrInvalidLevel, number)
	}
	l := domain.LevelOf(number)
	cs, err := s.repo.ChaptersByLevel(ctx, number)
	if err != nil {
		return domain.Level{}, err
	}
	ids := make([]int64, 0, len(cs))
	for _, c := range cs {
		ids = append(ids, c.Id)
	}
	shlokas, err := s.repo.ShlokasByChapters(ctx, ids)
	if err != nil {
		return domain.Level{}, err
	}
	for i := range cs {
		cs[i].Shlokas = shlokas[cs[i].Id]
	}
	l.Chapters = cs
	return l, nil
}

func (s *gitaService) Progress(ctx context.Context, uid int64) (domain.ProgressStats, []domain.ShlokaProgress, error) {
	ps, err := s.repo.Progress(ctx, uid)
	if err != nil {
		return domain.ProgressStats{}, nil, err
	}
	return domain.NewProgressStats(ps), ps, nil
}

func (s *gitaService) UpdateProgress(ctx context.Context, uid int64, u domain.ProgressUpdate) (domain.ProgressResult, error) {
	if u.ShlokaId <= 0 || !domain.ValidStatus(u.Status) || u.TimeSpentSeconds < 0 {
		return domain.ProgressResult{}, fmt.Errorf("%w, shloka %d, status %s", ErrInvalidProgress, u.ShlokaId, u.Status)
	}
	sh, err := s.Shloka(ctx, u.ShlokaId, domain.DefaultLanguage)
	if err != nil {
		return domain.ProgressResult{}, err
	}
	prev, err := s.repo.FindProgress(ctx, uid, u.ShlokaId)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		prev = domain.ShlokaProgress{Uid: uid, ShlokaId: u.ShlokaId}
	case err != nil:
		return domain.ProgressResult{}, err
	}
	p := prev.Apply(u, sh, time.Now().UnixMilli())
	saved, first, err := s.repo.SaveProgress(ctx, p)
	if err != nil {
		return domain.ProgressResult{}, err
	}
	saved.Shloka = sh
	res := domain.ProgressResult{Progress: saved}
	if !first {
		return res, nil
	}
	// 每一颂只奖励一次
	reward, err := s.gameSvc.Reward(ctx, uid, gamification.Reward{
		Xp:          sh.XpReward,
		Source:      domain.RewardSource,
		SourceId:    sh.Id,
		Description: fmt.Sprintf("Completed shloka %s", sh.Ref()),
	})
	if err != nil {
		return domain.ProgressResult{}, err
	}
	res.Rewarded = true
	res.Badges = append(res.Badges, reward.Badges...)
	badges, err := s.levelBadges(ctx, uid, sh.Chapter.Level)
	if err != nil {
		// 徽章下次完成的时候还会再检查
		s.logger.Error("发放 Gita 徽章失败", elog.FieldErr(err), elog.Int64("uid", uid))
		return res, nil
	}
	res.Badges = append(res.Badges, badges...)
	return res, nil
}

// levelBadges 完成一个等级的全部偈颂获得等级徽章，全部 700 颂完成之后获得最终徽章
func (s *gitaService) levelBadges(ctx context.Context, uid int64, level int) ([]string, error) {
	var slugs []string
	if domain.ValidLevel(level) {
		cs, err := s.repo.ChaptersByLevel(ctx, level)
		if err != nil {
			return nil, err
		}
		l := domain.LevelOf(level)
		l.Chapters = cs
		cnt, err := s.repo.CountCompletedByLevel(ctx, uid, level)
		if err != nil {
			return nil, err
		}
		if total := l.TotalShlokas(); total > 0 && cnt >= int64(total) {
			slugs = append(slugs, l.BadgeSlug)
		}
	}
	total, err := s.repo.CountCompleted(ctx, uid)
	if err != nil {
		return nil, err
	}
	if total >= domain.TotalShlokas {
		slugs = append(slugs, domain.BadgeMaster)
	}
	if len(slugs) == 0 {
		return nil, nil
	}
	awarded, err := s.gameSvc.AwardBadges(ctx, uid, slugs)
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(awarded))
	for _, b := range awarded {
		res = append(res, b.Slug)
	}
	return res, nil
}

func (s *gitaService) Seed(ctx context.Context) (bool, error) {
	empty, err := s.repo.IsEmpty(ctx)
	if err != nil || !empty {
		return false, err
	}
	if err = s.gameSvc.EnsureBadges(ctx, defaultBadges()); err != nil {
		return false, err
	}
	return true, s.repo.Seed(ctx, defaultChapters())
}
