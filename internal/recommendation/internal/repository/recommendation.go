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
	"github.com/ecodeclub/hug/internal/recommendation/internal/domain"
	"github.com/ecodeclub/hug/internal/recommendation/internal/repository/dao"
)

//go:generate mockgen -source=./recommendation.go -package=repomocks -destination=./mocks/recommendation.mock.go RecommendationRepository
type RecommendationRepository interface {
	Active(ctx context.Context, uid int64, now int64, limit int) ([]domain.Recommendation, error)
	Create(ctx context.Context, recs []domain.Recommendation) ([]domain.Recommendation, error)
	MarkShown(ctx context.Context, ids []int64) error
	MarkActed(ctx context.Context, uid, id int64) (bool, error)
	DeleteExpired(ctx context.Context, now int64) (int64, error)
}

type recommendationRepository struct {
	dao dao.RecommendationDAO
}

func NewRecommendationRepository(d dao.RecommendationDAO) RecommendationRepository {
	return &recommendationRepository{dao: d}
}

func (repo *recommendationRepository) Active(ctx context.Context, uid int64, now int64, limit int) ([]domain.Recommendation, error) {
	recs, err := repo.dao.FindActive(ctx, uid, now, limit)
	return slice.Map(recs, func(idx int, src dao.Recommendation) domain.Recommendation {
		return repo.toDomain(src)
	}), err
}

func (repo *recommendationRepository) Create(ctx context.Context, recs []domain.Recommendation) ([]domain.Recommendation, error) {
	res, err := repo.dao.Create(ctx, slice.Map(recs, func(idx int, src domain.Recommendation) dao.Recommendation {
		return repo.toEntity(src)
	}))
	return slice.Map(res, func(idx int, src dao.Recommendation) domain.Recommendation {
		return repo.toDomain(src)
	}), err
}

func (repo *recommendationRepository) MarkShown(ctx context.Context, ids []int64) error {
	return repo.dao.MarkShown(ctx, ids)
}

func (repo *recommendationRepository) MarkActed(ctx context.Context, uid, id int64) (bool, error) {
	return repo.dao.MarkActed(ctx, uid, id)
}

func (repo *recommendationRepository) DeleteExpired(ctx context.Context, now int64) (int64, error) {
	return repo.dao.DeleteExpired(ctx, now)
}

func (repo *recommendationRepository) toEntity(r domain.Recommendation) dao.Recommendation {
	return dao.Recommendation{
		Id:                 r.Id,
		Uid:                r.Uid,
		RecommendationType: r.Type,
		TargetId:           r.TargetId,
		Priority:           r.Priority,
		Reason:             r.Reason,
		Context: sqlx.JsonColumn[map[string]int64]{
			Val:   r.Context,
			Valid: r.Context != nil,
		},
		IsShown:     r.Shown,
		IsActedUpon: r.ActedOn,
		ExpiresAt:   r.ExpiresAt,
	}
}

func (repo *recommendationRepository) toDomain(r dao.Recommendation) domain.Recommendation {
	return domain.Recommendation{
		Id:        r.Id,
		Uid:       r.Uid,
		Type:      r.RecommendationType,
		TargetId:  r.TargetId,
		Priority:  r.Priority,
		Reason:    r.Reason,
		Context:   r.Context.Val,
		Shown:     r.IsShown,
		ActedOn:   r.IsActedUpon,
		ExpiresAt: r.ExpiresAt,
		Ctime:     r.Ctime,
	}
}
