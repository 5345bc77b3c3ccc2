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
	"fmt"
	"strconv"

	"github.com/ecodeclub/hug/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const NotificationTopic = "learning_notification_events"

const (
	TypeBadgeEarned = "badge_earned"
	TypeLevelUp     = "level_up"
)

// NotificationEvent 发给通知模块的消息
type NotificationEvent struct {
	Uid     int64  `json:"uid"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Biz     string `json:"biz"`
	BizId   int64  `json:"biz_id"`
}

func NewBadgeEarnedEvent(uid int64, badgeId int64, name, description string) NotificationEvent {
	return NotificationEvent{
		Uid:     uid,
		Type:    TypeBadgeEarned,
		Title:   fmt.Sprintf("Badge earned: %s", name),
		Message: description,
		Biz:     "badge",
		BizId:   badgeId,
	}
}

func NewLevelUpEvent(uid int64, level int64) NotificationEvent {
	return NotificationEvent{
		Uid:     uid,
		Type:    TypeLevelUp,
		Title:   fmt.Sprintf("Wisdom level %d", level),
		Message: fmt.Sprintf("You reached wisdom level %d", level),
		Biz:     "wisdom_level",
		BizId:   level,
	}
}

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/producer.mock.go NotificationEventProducer
type NotificationEventProducer interface {
	Produce(ctx context.Context, evt NotificationEvent) error
}

func NewNotificationEventProducer(q mq.MQ) (NotificationEventProducer, error) {
	return mqx.NewGeneralProducer[NotificationEvent](q, NotificationTopic,
		mqx.WithKey(func(evt NotificationEvent) []byte {
			return []byte(strconv.FormatInt(evt.Uid, 10))
		}))
}
