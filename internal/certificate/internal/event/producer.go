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

	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const TypeCertificateIssued = "certificate_issued"

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/producer.mock.go NotificationEventProducer
type NotificationEventProducer interface {
	Produce(ctx context.Context, evt gamification.NotificationEvent) error
}

func NewNotificationEventProducer(q mq.MQ) (NotificationEventProducer, error) {
	return mqx.NewGeneralProducer[gamification.NotificationEvent](q, gamification.NotificationTopic,
		mqx.WithKey(func(evt gamification.NotificationEvent) []byte {
			return []byte(strconv.FormatInt(evt.Uid, 10))
		}))
}

func NewCertificateIssuedEvent(uid, certificateId int64, courseName, number string) gamification.NotificationEvent {
	return gamification.NotificationEvent{
		Uid:     uid,
		Type:    TypeCertificateIssued,
		Title:   fmt.Sprintf("Certificate issued: %s", courseName),
		Message: fmt.Sprintf("Your certificate %s is ready", number),
		Biz:     "certificate",
		BizId:   certificateId,
	}
}
