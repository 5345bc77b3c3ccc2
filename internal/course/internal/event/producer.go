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

	"github.com/ecodeclub/hug/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const SyncTopic = "sync_data_to_search"

const (
	BizSchool = "school"
	BizCourse = "course"
	BizLesson = "lesson"
)

// SyncEvent 同步到搜索引擎的数据，Data 是 JSON 序列化之后的文档
type SyncEvent struct {
	Biz   string `json:"biz"`
	BizID int64  `json:"bizID"`
	Data  string `json:"data"`
}

func NewSyncEvent(biz string, id int64, doc any) (SyncEvent, error) {
	val, err := json.Marshal(doc)
	return SyncEvent{
		Biz:   biz,
		BizID: id,
		Data:  string(val),
	}, err
}

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/producer.mock.go SyncEventProducer
type SyncEventProducer interface {
	Produce(ctx context.Context, evt SyncEvent) error
}

func NewSyncEventProducer(q mq.MQ) (SyncEventProducer, error) {
	return mqx.NewGeneralProducer[SyncEvent](q, SyncTopic)
}
