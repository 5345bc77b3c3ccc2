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

type Activity struct {
	Id           int64                    `gorm:"primaryKey,autoIncrement"`
	LessonId     int64                    `gorm:"index:idx_lesson_order"`
	Slug         string                   `gorm:"type:varchar(128);uniqueIndex"`
	ActivityType string                   `gorm:"type:varchar(32)"`
	Content      sqlx.JsonColumn[Content] `gorm:"type:json"`
	IsRequired   bool
	DisplayOrder int `gorm:"index:idx_lesson_order"`
	Ctime        int64
	Utime        int64
}

func (Activity) TableName() string {
	return "activities"
}

type Content struct {
	Title        string `json:"title"`
	Prompt       string `json:"prompt"`
	Instructions string `json:"instructions"`
	MinWords     int    `json:"min_words"`
}

type Submission struct {
	Id             int64  `gorm:"primaryKey,autoIncrement"`
	Uid            int64  `gorm:"index:idx_uid_status_ctime"`
	ActivityId     int64  `gorm:"index"`
	EnrollmentId   int64  `gorm:"index"`
	SubmissionType string `gorm:"type:varchar(16)"`
	Content        string `gorm:"type:text"`
	Status         string `gorm:"type:varchar(16);index:idx_uid_status_ctime"`
	ReviewedAt     int64
	Ctime          int64 `gorm:"index:idx_uid_status_ctime"`
	Utime          int64
}

func (Submission) TableName() string {
	return "user_activity_submissions"
}
