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
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ActivityDAO interface {
	FindById(ctx context.Context, id int64) (Activity, error)
	FindByIds(ctx context.Context, ids []int64) ([]Activity, error)
	ListByLesson(ctx context.Context, lessonId int64) ([]Activity, error)
	// CreateIfAbsent 按照 slug 去重，返回真正插入的条数
	CreateIfAbsent(ctx context.Context, as []Activity) (int64, error)

	CreateSubmission(ctx context.Context, s Submission) (Submission, error)
	ListSubmissions(ctx context.Context, uid int64, status string, offset, limit int) ([]Submission, error)
	CountSubmissions(ctx context.Context, uid int64, status string) (int64, error)
}

type GORMActivityDAO struct {
	db *egorm.Component
}

func NewGORMActivityDAO(db *egorm.Component) ActivityDAO {
	return &GORMActivityDAO{db: db}
}

func (dao *GORMActivityDAO) FindById(ctx context.Context, id int64) (Activity, error) {
	var res Activity
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMActivityDAO) FindByIds(ctx context.Context, ids []int64) ([]Activity, error) {
	var res []Activity
	err := dao.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (dao *GORMActivityDAO) ListByLesson(ctx context.Context, lessonId int64) ([]Activity, error) {
	var res []Activity
	err := dao.db.WithContext(ctx).Where("lesson_id = ?", lessonId).
		Order("display_order ASC").Order("id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMActivityDAO) CreateIfAbsent(ctx context.Context, as []Activity) (int64, error) {
	if len(as) == 0 {
		return 0, nil
	}
	now := time.Now().UnixMilli()
	for i := range as {
		as[i].Ctime, as[i].Utime = now, now
	}
	db := dao.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&as)
	return db.RowsAffected, db.Error
}

func (dao *GORMActivityDAO) CreateSubmission(ctx context.Context, s Submission) (Submission, error) {
	now := time.Now().UnixMilli()
	s.Ctime, s.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&s).Error
	return s, err
}

func (dao *GORMActivityDAO) submissionQuery(ctx context.Context, uid int64, status string) *gorm.DB {
	db := dao.db.WithContext(ctx).Model(&Submission{}).Where("uid = ?", uid)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	return db
}

func (dao *GORMActivityDAO) ListSubmissions(ctx context.Context, uid int64, status string, offset, limit int) ([]Submission, error) {
	var res []Submission
	err := dao.submissionQuery(ctx, uid, status).
		Order("ctime DESC").Order("id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMActivityDAO) CountSubmissions(ctx context.Context, uid int64, status string) (int64, error) {
	var res int64
	err := dao.submissionQuery(ctx, uid, status).Count(&res).Error
	return res, err
}
