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

type Enrollment struct {
	Id                   int64  `gorm:"primaryKey,autoIncrement"`
	Uid                  int64  `gorm:"uniqueIndex:uid_course"`
	CourseId             int64  `gorm:"uniqueIndex:uid_course"`
	Status               string `gorm:"type:varchar(16)"`
	CurrentTrackId       int64
	CurrentLessonId      int64
	CompletionPercentage float64
	LastAccessedAt       int64 `gorm:"index"`
	CompletedAt          int64
	Ctime                int64
	Utime                int64
}

func (Enrollment) TableName() string {
	return "user_course_enrollments"
}

type LessonProgress struct {
	Id                 int64  `gorm:"primaryKey,autoIncrement"`
	Uid                int64  `gorm:"uniqueIndex:uid_lesson"`
	LessonId           int64  `gorm:"uniqueIndex:uid_lesson"`
	EnrollmentId       int64  `gorm:"index"`
	Status             string `gorm:"type:varchar(16)"`
	ProgressPercentage float64
	LastSlideIndex     int
	TimeSpentSeconds   int64
	XpEarned           int64
	CompletedAt        int64
	// RewardedAt 课时奖励发放的时间，0 表示还没有发放
	RewardedAt     int64 `gorm:"not null;default:0"`
	LastAccessedAt int64 `gorm:"index"`
	Ctime          int64
	Utime          int64
}

func (LessonProgress) TableName() string {
	return "user_lesson_progress"
}
