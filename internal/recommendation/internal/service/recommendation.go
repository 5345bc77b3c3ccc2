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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hug/internal/course"
	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/progress"
	"github.com/ecodeclub/hug/internal/recommendation/internal/domain"
	"github.com/ecodeclub/hug/internal/recommendation/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var ErrRecommendationNotFound = errors.New("推荐不存在")

type Service interface {
	// Recommendations 返回的推荐会被标记为已展示，没有可用推荐的时候根据学习情况生成
	Recommendations(ctx context.Context, uid int64) ([]domain.Recommendation, error)
	Act(ctx context.Context, uid, id int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type recommendationService struct {
	repo        repository.RecommendationRepository
	courseSvc   course.Service
	progressSvc progress.Service
	gameSvc     gamification.Service
	now         func() time.Time
	logger      *elog.Component
}

func NewService(repo repository.RecommendationRepository,
	courseSvc course.Service,
	progressSvc progress.Service,
	gameSvc gamification.Service) Service {
	return &recommendationService{
		repo:        repo,
		courseSvc:   courseSvc,
		progressSvc: progressSvc,
		gameSvc:     gameSvc,
		now:         time.Now,
		logger:      elog.DefaultLogger,
	}
}

func (s *recommendationService) Recommendations(ctx context.Context, uid int64) ([]domain.Recommendation, error) {
	now := s.now()
	recs, err := s.repo.Active(ctx, uid, now.UnixMilli(), domain.ListLimit)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		recs, err = s.generate(ctx, uid, now)
		if err != nil {
			return nil, err
		}
	}
	if len(recs) == 0 {
		return recs, nil
	}
	err = s.repo.MarkShown(ctx, slice.Map(recs, func(idx int, src domain.Recommendation) int64 {
		return src.Id
	}))
	return recs, err
}

func (s *recommendationService) generate(ctx context.Context, uid int64, now time.Time) ([]domain.Recommendation, error) {
	m, created, err := s.gameSvc.Metrics(ctx, uid)
	if err != nil {
		return nil, err
	}
	// 新用户没有任何学习记录
	if created {
		return nil, nil
	}
	recs := make([]domain.Recommendation, 0, 2)
	next, ok, err := s.nextCourse(ctx, uid, now)
	if err != nil {
		return nil, err
	}
	if ok {
		recs = append(recs, next)
	}
	if streak, ok := domain.NewStreak(uid, m.CurrentStreak, now); ok {
		recs = append(recs, streak)
	}
	if len(recs) == 0 {
		return recs, nil
	}
	return s.repo.Create(ctx, recs)
}

func (s *recommendationService) nextCourse(ctx context.Context, uid int64, now time.Time) (domain.Recommendation, bool, error) {
	e, err := s.progressSvc.LatestCompletedEnrollment(ctx, uid)
	if errors.Is(err, progress.ErrRecordNotFound) {
		return domain.Recommendation{}, false, nil
	}
	if err != nil {
		return domain.Recommendation{}, false, err
	}
	completed, err := s.courseSvc.Course(ctx, e.CourseId)
	if err != nil {
		return domain.Recommendation{}, false, err
	}
	next, err := s.courseSvc.NextCourse(ctx, e.CourseId)
	if errors.Is(err, course.ErrRecordNotFound) {
		return domain.Recommendation{}, false, nil
	}
	if err != nil {
		return domain.Recommendation{}, false, err
	}
	return domain.NewNextCourse(uid, completed.Id, completed.Name, next.Id, now), true, nil
}

func (s *recommendationService) Act(ctx context.Context, uid, id int64) error {
	ok, err := s.repo.MarkActed(ctx, uid, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRecommendationNotFound
	}
	return nil
}

func (s *recommendationService) DeleteExpired(ctx context.Context) (int64, error) {
	cnt, err := s.repo.DeleteExpired(ctx, s.now().UnixMilli())
	if err != nil {
		return 0, err
	}
	if cnt > 0 {
		s.logger.Info("删除过期推荐", elog.Int64("count", cnt))
	}
	return cnt, nil
}
