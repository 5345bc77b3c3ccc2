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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type RecommendationDAO interface {
	// FindActive 还没有展示过，也没有过期的推荐，按照优先级倒序
	FindActive(ctx context.Context, uid int64, now int64, limit int) ([]Recommendation, error)
	Create(ctx context.Context, recs []Recommendation) ([]Recommendation, error)
	MarkShown(ctx context.Context, ids []int64) error
	// MarkActed 返回是否真的更新了
	MarkActed(ctx context.Context, uid, id int64) (bool, error)
	DeleteExpired(ctx context.Context, now int64) (int64, error)
}

type GORMRecommendationDAO struct {
	db *egorm.Component
}

func NewGORMRecommendationDAO(db *egorm.Component) RecommendationDAO {
	return &GORMRecommendationDAO{db: db}
}

func (dao *GORMRecommendationDAO) FindActive(ctx context.Context, uid int64, now int64, limit int) ([]Recommendation, error) {
	var res []Recommendation
	err := dao.db.WithContext(ctx).
		Where("uid = ? AND is_shown = ?", uid, false).
		Where("expires_at = 0 OR expires_at > ?", now).
		Order("priority DESC").Order("id ASC").
		Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMRecommendationDAO) Create(ctx context.Context, recs []Recommendation) ([]Recommendation, error) {
	if len(recs) == 0 {
		return recs, nil
	}
	now := time.Now().UnixMilli()
	for i := range recs {
		recs[i].Ctime, recs[i].Utime = now, now
	}
	err := dao.db.WithContext(ctx).Create(&recs).Error
	return recs, err
}

func (dao *GORMRecommendationDAO) MarkShown(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return dao.db.WithContext(ctx).Model(&Recommendation{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"is_shown": true,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (dao *GORMRecommendationDAO) MarkActed(ctx context.Context, uid, id int64) (bool, error) {
	res := dao.db.WithContext(ctx).Model(&Recommendation{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]any{
			"is_acted_upon": true,
			"utime":         time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (dao *GORMRecommendationDAO) DeleteExpired(ctx context.Context, now int64) (int64, error) {
	res := dao.db.WithContext(ctx).
		Where("expires_at > 0 AND expires_at <= ?", now).
		Delete(&Recommendation{})
	return res.RowsAffected, res.Error
}
