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

import (
	"math"

	"github.com/ecodeclub/hug/internal/course"
)

const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"

	// 完成一个课时，每分钟 10 点经验，固定 5 点功德
	xpPerMinute  = 10
	LessonKarma  = 5
	RewardSource = "lesson"
)

type Enrollment struct {
	Id                   int64
	Uid                  int64
	CourseId             int64
	Status               string
	CurrentTrackId       int64
	CurrentLessonId      int64
	CompletionPercentage float64
	LastAccessedAt       int64
	CompletedAt          int64
	Ctime                int64

	Course        course.Course
	CurrentLesson course.Lesson
}

func (e Enrollment) Completed() bool {
	return e.Status == StatusCompleted
}

// Advance 根据已完成的课时数量重新计算完成度
func (e Enrollment) Advance(completed, total int64, now int64) Enrollment {
	e.CompletionPercentage = CompletionPercentage(completed, total)
	switch {
	case total > 0 && completed >= total:
		e.Status = StatusCompleted
		if e.CompletedAt == 0 {
			e.CompletedAt = now
		}
	case completed > 0:
		e.Status = StatusInProgress
	}
	e.LastAccessedAt = now
	return e
}

// CompletionPercentage 保留两位小数
func CompletionPercentage(completed, total int64) float64 {
	if total <= 0 {
		return 0
	}
	pct := float64(completed) * 100 / float64(total)
	return math.Round(math.Min(pct, 100)*100) / 100
}

type LessonProgress struct {
	Id                 int64
	Uid                int64
	LessonId           int64
	EnrollmentId       int64
	Status             string
	ProgressPercentage float64
	LastSlideIndex     int
	TimeSpentSeconds   int64
	XpEarned           int64
	CompletedAt        int64
	RewardedAt         int64
	LastAccessedAt     int64

	Lesson course.Lesson
}

func (p LessonProgress) Completed() bool {
	return p.Status == StatusCompleted
}

// ProgressXp 进度上报的经验值，只用于展示
func ProgressXp(pct float64) int64 {
	if pct >= 100 {
		return 50
	}
	return 10
}

func StatusOf(pct float64) string {
	if pct >= 100 {
		return StatusCompleted
	}
	return StatusInProgress
}

func LessonXp(l course.Lesson) int64 {
	return int64(l.DurationMinutes) * xpPerMinute
}

// SyncItem 客户端离线学习的一条记录
type SyncItem struct {
	LessonId           int64
	ProgressPercentage float64
	IsCompleted        bool
	TimeSpentSeconds   int64
	CompletedAt        int64
}

type SyncResult struct {
	Synced int
	Failed int
	Xp     int64
	Karma  int64
	Badges []string
}

type CompleteResult struct {
	Progress     LessonProgress
	Xp           int64
	Karma        int64
	Badges       []string
	NextLessonId int64
}

type Summary struct {
	CoursesEnrolled       int64
	CoursesCompleted      int64
	TotalLessonsCompleted int64
	TotalTimeSpentMinutes int64
	ThisWeekMinutes       int64
}

// CourseProgress 一门课程的学习情况
type CourseProgress struct {
	Enrollment Enrollment
	// Outline 完整的课程体系
	Outline course.Course
	// ModuleCompleted module id => 已经完成的课时数量
	ModuleCompleted map[int64]int64
	Recent          []LessonProgress
}

// ModuleLesson 课时和用户在这个课时上的进度
type ModuleLesson struct {
	Lesson   course.Lesson
	Progress LessonProgress
}
