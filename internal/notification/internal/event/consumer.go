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
	"fmt"

	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/notification/internal/domain"
	"github.com/ecodeclub/hug/internal/notification/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// NotificationEventConsumer 把各个模块发出来的通知事件落库，例如获得徽章、升级、颁发证书
type NotificationEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewNotificationEventConsumer(svc service.Service, q mq.MQ) (*NotificationEventConsumer, error) {
	const groupID = "notification"
	consumer, err := q.Consumer(gamification.NotificationTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &NotificationEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.consumer")),
	}, nil
}

func (c *NotificationEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费通知事件失败", elog.FieldErr(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

func (c *NotificationEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt gamification.NotificationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if evt.Uid <= 0 {
		return fmt.Errorf("通知事件缺少用户 %#v", evt)
	}
	_, err = c.svc.Create(ctx, domain.Notification{
		Uid:     evt.Uid,
		Type:    evt.Type,
		Title:   evt.Title,
		Message: evt.Message,
		Biz:     evt.Biz,
		BizId:   evt.BizId,
	})
	if err != nil {
		return fmt.Errorf("保存通知失败: %w", err)
	}
	return nil
}

func (c *NotificationEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
