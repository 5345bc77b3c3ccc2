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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hug/internal/analytics/internal/domain"
	"github.com/ecodeclub/hug/internal/analytics/internal/repository/dao"
)

//go:generate mockgen -source=./analytics.go -package=repomocks -destination=./mocks/analytics.mock.go AnalyticsRepository
type AnalyticsRepository interface {
	Save(ctx context.Context, evt domain.Event) error
	Events(ctx context.Context, uid int64, limit int) ([]domain.Event, error)
}

type analyticsRepository struct {
	dao dao.AnalyticsDAO
}

func NewAnalyticsRepository(d dao.AnalyticsDAO) AnalyticsRepository {
	return &analyticsRepository{dao: d}
}

func (repo *analyticsRepository) Save(ctx context.Context, evt domain.Event) error {
	return repo.dao.Insert(ctx, dao.AnalyticsEvent{
		Id:        evt.Id,
		EventId:   evt.EventId,
		Uid:       evt.Uid,
		EventType: evt.EventType,
		EventData: sqlx.JsonColumn[map[string]any]{
			Val:   evt.EventData,
			Valid: evt.EventData != nil,
		},
		Ctime: evt.Ctime,
	})
}

func (repo *analyticsRepository) Events(ctx context.Context, uid int64, limit int) ([]domain.Event, error) {
	evts, err := repo.dao.FindByUid(ctx, uid, limit)
	return slice.Map(evts, func(idx int, src dao.AnalyticsEvent) domain.Event {
		return domain.Event{
			Id:        src.Id,
			EventId:   src.EventId,
			Uid:       src.Uid,
			EventType: src.EventType,
			EventData: src.EventData.Val,
			Ctime:     src.Ctime,
		}
	}), err
}
