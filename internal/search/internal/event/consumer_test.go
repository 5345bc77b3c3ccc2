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

package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ecodeclub/hug/internal/search/internal/domain"
	"github.com/ecodeclub/hug/internal/search/internal/service"
	svcmocks "github.com/ecodeclub/hug/internal/search/internal/service/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSyncConsumer_Consume(t *testing.T) {
	testCases := []struct {
		name    string
		value   []byte
		mock    func(ctrl *gomock.Controller) service.SyncService
		wantErr error
	}{
		{
			name:  "写入",
			value: mustJSON(t, SyncEvent{Biz: "course", BizID: 3, Data: `{"id":3}`}),
			mock: func(ctrl *gomock.Controller) service.SyncService {
				svc := svcmocks.NewMockSyncService(ctrl)
				svc.EXPECT().Input(gomock.Any(), domain.Document{Biz: "course", Id: 3, Data: `{"id":3}`}).Return(nil)
				return svc
			},
		},
		{
			name:  "无法解析的消息直接丢弃",
			value: []byte("not json"),
			mock: func(ctrl *gomock.Controller) service.SyncService {
				return svcmocks.NewMockSyncService(ctrl)
			},
		},
		{
			name:  "非法文档直接丢弃",
			value: mustJSON(t, SyncEvent{Biz: "quiz", BizID: 3, Data: `{}`}),
			mock: func(ctrl *gomock.Controller) service.SyncService {
				svc := svcmocks.NewMockSyncService(ctrl)
				svc.EXPECT().Input(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("%w biz=quiz", service.ErrInvalidDocument))
				return svc
			},
		},
		{
			name:  "写入失败",
			value: mustJSON(t, SyncEvent{Biz: "school", BizID: 1, Data: `{"id":1}`}),
			mock: func(ctrl *gomock.Controller) service.SyncService {
				svc := svcmocks.NewMockSyncService(ctrl)
				svc.EXPECT().Input(gomock.Any(), gomock.Any()).Return(errors.New("es error"))
				return svc
			},
			wantErr: errors.New("es error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(context.Background(), SyncTopic, 1))
			c, err := NewSyncConsumer(tc.mock(ctrl), q)
			require.NoError(t, err)
			p, err := q.Producer(SyncTopic)
			require.NoError(t, err)
			_, err = p.Produce(context.Background(), &mq.Message{Value: tc.value})
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			assert.Equal(t, tc.wantErr, c.Consume(ctx))
		})
	}
}

func mustJSON(t *testing.T, evt SyncEvent) []byte {
	val, err := json.Marshal(evt)
	require.NoError(t, err)
	return val
}
