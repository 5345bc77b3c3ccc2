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

	"github.com/ecodeclub/hug/internal/search/internal/domain"
	"github.com/ecodeclub/hug/internal/search/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type SyncConsumer struct {
	svc      service.SyncService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewSyncConsumer(svc service.SyncService, q mq.MQ) (*SyncConsumer, error) {
	const groupID = "search_sync"
	consumer, err := q.Consumer(SyncTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &SyncConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("search.SyncConsumer")),
	}, nil
}

// Consume 处理一条消息，非法文档只记录日志，避免一直卡在同一条消息上
func (s *SyncConsumer) Consume(ctx context.Context) error {
	msg, err := s.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt SyncEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		s.logger.Error("丢弃无法解析的消息", elog.FieldErr(err), elog.String("value", string(msg.Value)))
		return nil
	}
	err = s.svc.Input(ctx, domain.Document{Biz: evt.Biz, Id: evt.BizID, Data: evt.Data})
	if errors.Is(err, service.ErrInvalidDocument) {
		s.logger.Warn("丢弃非法文档", elog.FieldErr(err))
		return nil
	}
	return err
}

func (s *SyncConsumer) Start(ctx context.Context) {
	go func() {
		for ctx.Err() == nil {
			if err := s.Consume(ctx); err != nil {
				s.logger.Error("同步搜索文档失败", elog.FieldErr(err))
			}
		}
	}()
}

func (s *SyncConsumer) Stop(_ context.Context) error {
	return s.consumer.Close()
}
