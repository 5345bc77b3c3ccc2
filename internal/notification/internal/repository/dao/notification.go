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

type NotificationDAO interface {
	Create(ctx context.Context, n Notification) (int64, error)
	List(ctx context.Context, uid int64, unreadOnly bool, offset, limit int) ([]Notification, error)
	Count(ctx context.Context, uid int64, unreadOnly bool) (int64, error)
	// MarkRead 返回更新之后的通知，不存在的时候返回 gorm.ErrRecordNotFound
	MarkRead(ctx context.Context, uid, id int64) (Notification, error)
	MarkAllRead(ctx context.Context, uid int64) (int64, error)
}

type GORMNotificationDAO struct {
	db *egorm.Component
}

func NewGORMNotificationDAO(db *egorm.Component) NotificationDAO {
	return &GORMNotificationDAO{db: db}
}

func (dao *GORMNotificationDAO) Create(ctx context.Context, n Notification) (int64, error) {
	now := time.Now().UnixMilli()
	n.Ctime, n.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&n).Error
	return n.Id, err
}

func (dao *GORMNotificationDAO) query(ctx context.Context, uid int64, unreadOnly bool) *gorm.DB {
	db := dao.db.WithContext(ctx).Model(&Notification{}).Where("uid = ?", uid)
	if unreadOnly {
		db = db.Where("is_read = ?", false)
	}
	return db
}

func (dao *GORMNotificationDAO) List(ctx context.Context, uid int64, unreadOnly bool, offset, limit int) ([]Notification, error) {
	var res []Notification
	err := dao.query(ctx, uid, unreadOnly).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMNotificationDAO) Count(ctx context.Context, uid int64, unreadOnly bool) (int64, error) {
	var res int64
	err := dao.query(ctx, uid, unreadOnly).Count(&res).Error
	return res, err
}

func (dao *GORMNotificationDAO) MarkRead(ctx context.Context, uid, id int64) (Notification, error) {
	var res Notification
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND uid = ?", id, uid).First(&res).Error
		if err != nil {
			return err
		}
		// 重复标记的时候保留第一次的阅读时间
		if res.IsRead {
			return nil
		}
		now := time.Now().UnixMilli()
		res.IsRead, res.ReadAt, res.Utime = true, now, now
		return tx.Model(&res).Select("IsRead", "ReadAt", "Utime").Updates(&res).Error
	})
	return res, err
}

func (dao *GORMNotificationDAO) MarkAllRead(ctx context.Context, uid int64) (int64, error) {
	now := time.Now().UnixMilli()
	res := dao.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ? AND is_read = ?", uid, false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": now,
			"utime":   now,
		})
	return res.RowsAffected, res.Error
}
