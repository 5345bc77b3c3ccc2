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

package domain

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// School 学院，例如 Gita School、Vedanta School
type School struct {
	Id           int64
	Name         string
	Slug         string
	Description  string
	IconUrl      string
	DisplayOrder int
	CourseCount  int64

	Courses []Course
}

type Course struct {
	Id               int64
	SchoolId         int64
	Name             string
	Slug             string
	ShortDescription string
	Description      string
	ThumbnailUrl     string
	DifficultyLevel  string
	DurationDays     int
	TotalLessons     int
	EstimatedHours   float64
	IsFeatured       bool
	DisplayOrder     int

	School School
	Tracks []Track
}

type Track struct {
	Id           int64
	CourseId     int64
	Name         string
	Level        string
	Description  string
	DisplayOrder int

	ModuleCount int64
	LessonCount int64
	Modules     []Module
}

// IsUnlocked 目前只有入门级别的 track 默认解锁
func (t Track) IsUnlocked() bool {
	return t.Level == LevelBeginner
}

// Module 课程下面的单元
type Module struct {
	Id           int64
	TrackId      int64
	Name         string
	Description  string
	DisplayOrder int

	LessonCount int64
	Track       Track
	Course      Course
	Lessons     []Lesson
}

type Lesson struct {
	Id              int64
	ModuleId        int64
	Name            string
	Slug            string
	LessonType      string
	Slides          []Slide
	DurationMinutes int
	HasQuiz         bool
	HasReflection   bool
	DisplayOrder    int

	// 同一个 module 内按照 display order 排序的前后课时
	PrevLessonId int64
	NextLessonId int64
}

type Slide struct {
	Type            string `json:"type"`
	Title           string `json:"title"`
	Body            string `json:"body"`
	DurationSeconds int    `json:"duration_seconds"`
}

// LessonLocation 课时在课程体系中的位置
type LessonLocation struct {
	Lesson   Lesson
	ModuleId int64
	TrackId  int64
	CourseId int64
}

// FirstLesson 课程的第一个 track 里面，第一个 module 的第一个课时
func (c Course) FirstLesson() (trackId int64, lessonId int64) {
	if len(c.Tracks) == 0 {
		return 0, 0
	}
	t := c.Tracks[0]
	if len(t.Modules) > 0 && len(t.Modules[0].Lessons) > 0 {
		return t.Id, t.Modules[0].Lessons[0].Id
	}
	return t.Id, 0
}

// LessonIds 按照课程体系顺序排列
func (c Course) LessonIds() []int64 {
	var res []int64
	for _, t := range c.Tracks {
		for _, m := range t.Modules {
			for _, l := range m.Lessons {
				res = append(res, l.Id)
			}
		}
	}
	return res
}

type CourseQuery struct {
	SchoolId int64
	Level    string
	Featured bool
	Offset   int
	Limit    int
}
