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

type Recommendation struct {
	Id                 int64  `gorm:"primaryKey,autoIncrement"`
	Uid                int64  `gorm:"index:uid_shown"`
	RecommendationType string `gorm:"type:varchar(32)"`
	TargetId           int64
	Priority           int
	Reason             string                            `gorm:"type:varchar(512)"`
	Context            sqlx.JsonColumn[map[string]int64] `gorm:"type:json"`
	IsShown            bool                              `gorm:"index:uid_shown"`
	IsActedUpon        bool
	ExpiresAt          int64 `gorm:"index"`
	Ctime              int64
	Utime              int64
}

func (Recommendation) TableName() string {
	return "ai_recommendations"
}
