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
	"strings"
	"time"

	"github.com/ecodeclub/hug/internal/analytics/internal/domain"
	"github.com/ecodeclub/hug/internal/analytics/internal/event"
	"github.com/ecodeclub/hug/internal/analytics/internal/event/producer"
	"github.com/ecodeclub/hug/internal/analytics/internal/repository"
	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/pkg/sequencenumber"
	"github.com/ecodeclub/hug/internal/pkg/snowflake"
	"github.com/ecodeclub/hug/internal/progress"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// AppAnalytics 分析事件在 snowflake 里面的 appid
const AppAnalytics uint = 0

var ErrInvalidEvent = errors.New("事件类型不能为空")

type Service interface {
	// Track 分配事件 id 并且异步投递，投递失败只记录日志
	Track(ctx context.Context, uid int64, typ string, data map[string]any) (string, error)
	// Save 消费者落库
	Save(ctx context.Context, evt event.AnalyticsEvent) error
	Events(ctx context.Context, uid int64, limit int) ([]domain.Event, error)
	Insights(ctx context.Context, uid int64) (domain.Insights, error)
}

type analyticsService struct {
	repo        repository.AnalyticsRepository
	gameSvc     gamification.Service
	progressSvc progress.Service
	producer    producer.AnalyticsEventProducer
	sn          *sequencenumber.Generator
	ids         snowflake.SnowFlake
	now         func() time.Time
	logger      *elog.Component
}

func NewService(repo repository.AnalyticsRepository,
	gameSvc gamification.Service,
	progressSvc progress.Service,
	p producer.AnalyticsEventProducer,
	ids snowflake.SnowFlake) Service {
	return &analyticsService{
		repo:        repo,
		gameSvc:     gameSvc,
		progressSvc: progressSvc,
		producer:    p,
		sn:          sequencenumber.NewGenerator(),
		ids:         ids,
		now:         time.Now,
		logger:      elog.DefaultLogger,
	}
}

func (s *analyticsService) Track(ctx context.Context, uid int64, typ string, data map[string]any) (string, error) {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return "", ErrInvalidEvent
	}
	eventId, err := s.sn.Generate(uid)
	if err != nil {
		return "", err
	}
	err = s.producer.Produce(ctx, event.AnalyticsEvent{
		EventId:    eventId,
		Uid:        uid,
		EventType:  typ,
		EventData:  data,
		OccurredAt: s.now().UnixMilli(),
	})
	if err != nil {
		s.logger.Error("发送分析事件失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid),
			elog.String("eventId", eventId))
	}
	return eventId, nil
}

func (s *analyticsService) Save(ctx context.Context, evt event.AnalyticsEvent) error {
	id, err := s.ids.Generate(AppAnalytics)
	if err != nil {
		return err
	}
	return s.repo.Save(ctx, domain.Event{
		Id:        id.Int64(),
		EventId:   evt.EventId,
		Uid:       evt.Uid,
		EventType: evt.EventType,
		EventData: evt.EventData,
		Ctime:     evt.OccurredAt,
	})
}

func (s *analyticsService) Events(ctx context.Context, uid int64, limit int) ([]domain.Event, error) {
	return s.repo.Events(ctx, uid, limit)
}

func (s *analyticsService) Insights(ctx context.Context, uid int64) (domain.Insights, error) {
	now := s.now()
	start := now.AddDate(0, 0, 1-domain.InsightDays)
	from := start.Format(time.DateOnly)
	to := now.Format(time.DateOnly)
	var (
		eg        errgroup.Group
		metrics   gamification.Metrics
		days      []gamification.StreakDay
		completed int64
	)
	eg.Go(func() error {
		var err error
		metrics, _, err = s.gameSvc.Metrics(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		days, err = s.gameSvc.StreakDays(ctx, uid, from, to)
		return err
	})
	eg.Go(func() error {
		var err error
		since := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		completed, err = s.progressSvc.CompletedLessonCount(ctx, uid, since.UnixMilli())
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Insights{}, err
	}
	res := domain.NewInsights(metrics, days)
	res.LessonsCompleted7d = completed
	return res, nil
}
