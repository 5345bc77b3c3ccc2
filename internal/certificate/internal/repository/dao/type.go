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

type Certificate struct {
	Id               int64                     `gorm:"primaryKey,autoIncrement"`
	Uid              int64                     `gorm:"uniqueIndex:uid_course_type"`
	CourseId         int64                     `gorm:"uniqueIndex:uid_course_type"`
	CertificateType  string                    `gorm:"type:varchar(32);uniqueIndex:uid_course_type"`
	Number           string                    `gorm:"type:varchar(64);uniqueIndex"`
	VerificationCode string                    `gorm:"type:varchar(32);uniqueIndex"`
	IssueDate        string                    `gorm:"type:char(10)"`
	CertificateUrl   string                    `gorm:"type:varchar(512)"`
	Metadata         sqlx.JsonColumn[Metadata] `gorm:"type:json"`
	Ctime            int64
	Utime            int64
}

func (Certificate) TableName() string {
	return "certificates"
}

type Metadata struct {
	CompletionDate int64  `json:"completion_date"`
	CourseName     string `json:"course_name"`
	UserName       string `json:"user_name"`
}
