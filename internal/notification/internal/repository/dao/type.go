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

type Notification struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	Uid     int64  `gorm:"index:uid_read"`
	Type    string `gorm:"type:varchar(32)"`
	Title   string `gorm:"type:varchar(256)"`
	Message string `gorm:"type:varchar(1024)"`
	Biz     string `gorm:"type:varchar(32)"`
	BizId   int64
	IsRead  bool `gorm:"index:uid_read"`
	ReadAt  int64
	Ctime   int64
	Utime   int64
}

func (Notification) TableName() string {
	return "notifications"
}
