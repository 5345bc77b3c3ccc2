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

package producer

import (
	"context"
	"strconv"

	"github.com/ecodeclub/hug/internal/analytics/internal/event"
	"github.com/ecodeclub/hug/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=../mocks/producer.mock.go AnalyticsEventProducer
type AnalyticsEventProducer interface {
	Produce(ctx context.Context, evt event.AnalyticsEvent) error
}

func NewAnalyticsEventProducer(q mq.MQ) (AnalyticsEventProducer, error) {
	return mqx.NewGeneralProducer[event.AnalyticsEvent](q, event.AnalyticsTopic,
		mqx.WithKey(func(evt event.AnalyticsEvent) []byte {
			return []byte(strconv.FormatInt(evt.Uid, 10))
		}))
}
