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

type Base struct {
	IsActive bool `gorm:"default:true"`
	Ctime    int64
	Utime    int64 `gorm:"index"`
}

type School struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	Slug         string `gorm:"type:varchar(128);uniqueIndex"`
	Name         string `gorm:"type:varchar(256)"`
	Description  string `gorm:"type:varchar(1024)"`
	IconUrl      string `gorm:"type:varchar(512)"`
	DisplayOrder int
	Base
}

func (School) TableName() string {
	return "schools"
}

type Course struct {
	Id               int64  `gorm:"primaryKey,autoIncrement"`
	SchoolId         int64  `gorm:"index:idx_school_order"`
	Slug             string `gorm:"type:varchar(128);uniqueIndex"`
	Name             string `gorm:"type:varchar(256)"`
	ShortDescription string `gorm:"type:varchar(512)"`
	Description      string `gorm:"type:text"`
	ThumbnailUrl     string `gorm:"type:varchar(512)"`
	DifficultyLevel  string `gorm:"type:varchar(32)"`
	DurationDays     int
	TotalLessons     int
	EstimatedHours   float64
	IsFeatured       bool
	DisplayOrder     int `gorm:"index:idx_school_order"`
	Base
}

func (Course) TableName() string {
	return "courses"
}

type Track struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	CourseId     int64  `gorm:"index"`
	Name         string `gorm:"type:varchar(256)"`
	Level        string `gorm:"type:varchar(32)"`
	Description  string `gorm:"type:varchar(1024)"`
	DisplayOrder int
	Base
}

func (Track) TableName() string {
	return "tracks"
}

type Module struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	TrackId      int64  `gorm:"index"`
	Name         string `gorm:"type:varchar(256)"`
	Description  string `gorm:"type:varchar(1024)"`
	DisplayOrder int
	Base
}

func (Module) TableName() string {
	return "learning_modules"
}

type Lesson struct {
	Id              int64                    `gorm:"primaryKey,autoIncrement"`
	ModuleId        int64                    `gorm:"index:idx_module_order"`
	Slug            string                   `gorm:"type:varchar(128);uniqueIndex"`
	Name            string                   `gorm:"type:varchar(256)"`
	LessonType      string                   `gorm:"type:varchar(32)"`
	Content         sqlx.JsonColumn[[]Slide] `gorm:"type:json"`
	DurationMinutes int
	HasQuiz         bool
	HasReflection   bool
	DisplayOrder    int `gorm:"index:idx_module_order"`
	Base
}

func (Lesson) TableName() string {
	return "lessons"
}

type Slide struct {
	Type            string `json:"type"`
	Title           string `json:"title"`
	Body            string `json:"body"`
	DurationSeconds int    `json:"duration_seconds"`
}

type CourseFilter struct {
	SchoolId int64
	Level    string
	Featured bool
}

// Catalog 一次性写入的完整课程体系，用于初始化数据
type Catalog struct {
	Schools []SeedSchool
}

type SeedSchool struct {
	School
	Courses []SeedCourse
}

type SeedCourse struct {
	Course
	Tracks []SeedTrack
}

type SeedTrack struct {
	Track
	Modules []SeedModule
}

type SeedModule struct {
	Module
	Lessons []Lesson
}

type idCount struct {
	Id  int64
	Cnt int64
}
