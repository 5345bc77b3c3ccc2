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

	"github.com/ecodeclub/hug/internal/notification/internal/domain"
	"github.com/ecodeclub/hug/internal/notification/internal/repository"
)

var ErrNotificationNotFound = errors.New("通知不存在")

type Service interface {
	Create(ctx context.Context, n domain.Notification) (int64, error)
	List(ctx context.Context, q domain.Query) (domain.Page, error)
	Read(ctx context.Context, uid, id int64) (domain.Notification, error)
	// ReadAll 返回这一次标记为已读的数量
	ReadAll(ctx context.Context, uid int64) (int64, error)
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewService(repo repository.NotificationRepository) Service {
	return &notificationService{repo: repo}
}

func (s *notificationService) Create(ctx context.Context, n domain.Notification) (int64, error) {
	return s.repo.Create(ctx, n)
}

func (s *notificationService) List(ctx context.Context, q domain.Query) (domain.Page, error) {
	return s.repo.List(ctx, q)
}

func (s *notificationService) Read(ctx context.Context, uid, id int64) (domain.Notification, error) {
	n, err := s.repo.MarkRead(ctx, uid, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Notification{}, ErrNotificationNotFound
	}
	return n, err
}

func (s *notificationService) ReadAll(ctx context.Context, uid int64) (int64, error) {
	return s.repo.MarkAllRead(ctx, uid)
}
