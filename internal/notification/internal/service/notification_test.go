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
	"testing"

	"github.com/ecodeclub/hug/internal/notification/internal/domain"
	"github.com/ecodeclub/hug/internal/notification/internal/repository"
	repomocks "github.com/ecodeclub/hug/internal/notification/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNotificationService_Read(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) repository.NotificationRepository

		wantNotification domain.Notification
		wantErr          error
	}{
		{
			name: "标记成功",
			mock: func(ctrl *gomock.Controller) repository.NotificationRepository {
				repo := repomocks.NewMockNotificationRepository(ctrl)
				repo.EXPECT().MarkRead(gomock.Any(), int64(3), int64(5)).
					Return(domain.Notification{Id: 5, Uid: 3, IsRead: true, ReadAt: 100}, nil)
				return repo
			},
			wantNotification: domain.Notification{Id: 5, Uid: 3, IsRead: true, ReadAt: 100},
		},
		{
			name: "不存在",
			mock: func(ctrl *gomock.Controller) repository.NotificationRepository {
				repo := repomocks.NewMockNotificationRepository(ctrl)
				repo.EXPECT().MarkRead(gomock.Any(), int64(3), int64(5)).
					Return(domain.Notification{}, repository.ErrRecordNotFound)
				return repo
			},
			wantErr: ErrNotificationNotFound,
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) repository.NotificationRepository {
				repo := repomocks.NewMockNotificationRepository(ctrl)
				repo.EXPECT().MarkRead(gomock.Any(), int64(3), int64(5)).
					Return(domain.Notification{}, errors.New("db error"))
				return repo
			},
			wantErr: errors.New("db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			n, err := svc.Read(context.Background(), 3, 5)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantNotification, n)
		})
	}
}
