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
	"github.com/ecodeclub/hug/internal/notification/internal/domain"
	"github.com/ecodeclub/hug/internal/notification/internal/repository/dao"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./notification.go -package=repomocks -destination=./mocks/notification.mock.go NotificationRepository
type NotificationRepository interface {
	Create(ctx context.Context, n domain.Notification) (int64, error)
	List(ctx context.Context, q domain.Query) (domain.Page, error)
	MarkRead(ctx context.Context, uid, id int64) (domain.Notification, error)
	MarkAllRead(ctx context.Context, uid int64) (int64, error)
}

type notificationRepository struct {
	dao dao.NotificationDAO
}

func NewNotificationRepository(d dao.NotificationDAO) NotificationRepository {
	return &notificationRepository{dao: d}
}

func (repo *notificationRepository) Create(ctx context.Context, n domain.Notification) (int64, error) {
	return repo.dao.Create(ctx, dao.Notification{
		Uid:     n.Uid,
		Type:    n.Type,
		Title:   n.Title,
		Message: n.Message,
		Biz:     n.Biz,
		BizId:   n.BizId,
	})
}

func (repo *notificationRepository) List(ctx context.Context, q domain.Query) (domain.Page, error) {
	var (
		eg   errgroup.Group
		ns   []dao.Notification
		page domain.Page
	)
	eg.Go(func() error {
		var err error
		ns, err = repo.dao.List(ctx, q.Uid, q.UnreadOnly, q.Offset, q.Limit)
		return err
	})
	eg.Go(func() error {
		var err error
		page.Total, err = repo.dao.Count(ctx, q.Uid, q.UnreadOnly)
		return err
	})
	eg.Go(func() error {
		var err error
		page.UnreadCount, err = repo.dao.Count(ctx, q.Uid, true)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Page{}, err
	}
	page.Notifications = slice.Map(ns, func(idx int, src dao.Notification) domain.Notification {
		return repo.toDomain(src)
	})
	return page, nil
}

func (repo *notificationRepository) MarkRead(ctx context.Context, uid, id int64) (domain.Notification, error) {
	n, err := repo.dao.MarkRead(ctx, uid, id)
	return repo.toDomain(n), err
}

func (repo *notificationRepository) MarkAllRead(ctx context.Context, uid int64) (int64, error) {
	return repo.dao.MarkAllRead(ctx, uid)
}

func (repo *notificationRepository) toDomain(n dao.Notification) domain.Notification {
	return domain.Notification{
		Id:      n.Id,
		Uid:     n.Uid,
		Type:    n.Type,
		Title:   n.Title,
		Message: n.Message,
		Biz:     n.Biz,
		BizId:   n.BizId,
		IsRead:  n.IsRead,
		ReadAt:  n.ReadAt,
		Ctime:   n.Ctime,
	}
}
