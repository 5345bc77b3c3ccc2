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

package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/hug/internal/analytics/internal/event"
	"github.com/ecodeclub/hug/internal/analytics/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// AnalyticsEventConsumer 把埋点事件落库
type AnalyticsEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewAnalyticsEventConsumer(svc service.Service, q mq.MQ) (*AnalyticsEventConsumer, error) {
	const groupID = "analytics"
	c, err := q.Consumer(event.AnalyticsTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &AnalyticsEventConsumer{
		svc:      svc,
		consumer: c,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("analytics.consumer")),
	}, nil
}

func (c *AnalyticsEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费分析事件失败", elog.FieldErr(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

func (c *AnalyticsEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt event.AnalyticsEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if evt.EventId == "" || evt.Uid <= 0 {
		return fmt.Errorf("非法的分析事件 %#v", evt)
	}
	err = c.svc.Save(ctx, evt)
	if err != nil {
		return fmt.Errorf("保存分析事件失败: %w", err)
	}
	return nil
}

func (c *AnalyticsEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
