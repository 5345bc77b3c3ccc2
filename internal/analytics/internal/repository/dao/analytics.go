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
	"gorm.io/gorm/clause"
)

type AnalyticsDAO interface {
	// Insert 同一个 event_id 重复投递的时候忽略
	Insert(ctx context.Context, evt AnalyticsEvent) error
	FindByUid(ctx context.Context, uid int64, limit int) ([]AnalyticsEvent, error)
}

type GORMAnalyticsDAO struct {
	db *egorm.Component
}

func NewGORMAnalyticsDAO(db *egorm.Component) AnalyticsDAO {
	return &GORMAnalyticsDAO{db: db}
}

func (dao *GORMAnalyticsDAO) Insert(ctx context.Context, evt AnalyticsEvent) error {
	now := time.Now().UnixMilli()
	evt.Utime = now
	if evt.Ctime == 0 {
		evt.Ctime = now
	}
	return dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}},
		DoNothing: true,
	}).Create(&evt).Error
}

func (dao *GORMAnalyticsDAO) FindByUid(ctx context.Context, uid int64, limit int) ([]AnalyticsEvent, error) {
	var res []AnalyticsEvent
	err := dao.db.WithContext(ctx).Where("uid = ?", uid).
		Order("ctime DESC").Order("id DESC").
		Limit(limit).Find(&res).Error
	return res, err
}
