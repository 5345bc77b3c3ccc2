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

package dao

import "github.com/ecodeclub/ekit/sqlx"

// AnalyticsEvent 主键由 snowflake 生成
type AnalyticsEvent struct {
	Id        int64                           `gorm:"primaryKey,autoIncrement:false"`
	EventId   string                          `gorm:"type:varchar(64);uniqueIndex"`
	Uid       int64                           `gorm:"index:uid_type"`
	EventType string                          `gorm:"type:varchar(64);index:uid_type"`
	EventData sqlx.JsonColumn[map[string]any] `gorm:"type:json"`
	Ctime     int64
	Utime     int64
}

func (AnalyticsEvent) TableName() string {
	return "learning_analytics_events"
}
