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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hug/internal/course"
	"github.com/ecodeclub/hug/internal/progress/internal/domain"
)

type CourseIdReq struct {
	CourseId int64 `json:"course_id"`
}

type ModuleIdReq struct {
	ModuleId int64 `json:"module_id"`
}

type LessonIdReq struct {
	LessonId int64 `json:"lesson_id"`
}

type ProgressReq struct {
	LessonId            int64   `json:"lesson_id"`
	ProgressPercentage  float64 `json:"progress_percentage"`
	CompletedSlideIndex int     `json:"completed_slide_index"`
	TimeSpentSeconds    int64   `json:"time_spent_seconds"`
}

type SyncItem struct {
	LessonId           int64   `json:"lesson_id"`
	ProgressPercentage float64 `json:"progress_percentage"`
	IsCompleted        bool    `json:"is_completed"`
	TimeSpentSeconds   int64   `json:"time_spent_seconds"`
	// CompletedAt 毫秒
	CompletedAt int64 `json:"completed_at"`
}

type SyncReq struct {
	Syncs []SyncItem `json:"syncs"`
}

type Enrollment struct {
	Id                   int64          `json:"enrollment_id"`
	CourseId             int64          `json:"course_id"`
	CourseName           string         `json:"course_name,omitempty"`
	ThumbnailUrl         string         `json:"thumbnail_url,omitempty"`
	Status               string         `json:"status"`
	CurrentTrackId       int64          `json:"current_track_id"`
	CurrentLessonId      int64          `json:"current_lesson_id"`
	CurrentLesson        *LessonSummary `json:"current_lesson,omitempty"`
	CompletionPercentage float64        `json:"completion_percentage"`
	LastAccessedAt       int64          `json:"last_accessed_at"`
	CompletedAt          int64          `json:"completed_at"`
}

func newEnrollment(e domain.Enrollment) Enrollment {
	res := Enrollment{
		Id:                   e.Id,
		CourseId:             e.CourseId,
		CourseName:           e.Course.Name,
		ThumbnailUrl:         e.Course.ThumbnailUrl,
		Status:               e.Status,
		CurrentTrackId:       e.CurrentTrackId,
		CurrentLessonId:      e.CurrentLessonId,
		CompletionPercentage: e.CompletionPercentage,
		LastAccessedAt:       e.LastAccessedAt,
		CompletedAt:          e.CompletedAt,
	}
	if e.CurrentLesson.Id > 0 {
		res.CurrentLesson = &LessonSummary{
			Id:   e.CurrentLesson.Id,
			Name: e.CurrentLesson.Name,
		}
	}
	return res
}

type LessonSummary struct {
	Id          int64  `json:"lesson_id"`
	Name        string `json:"lesson_name"`
	CompletedAt int64  `json:"completed_at,omitempty"`
}

type Progress struct {
	Id                 int64   `json:"progress_id"`
	LessonId           int64   `json:"lesson_id"`
	ProgressPercentage float64 `json:"progress_percentage"`
	Status             string  `json:"status"`
	XpEarned           int64   `json:"xp_earned"`
	CompletedAt        int64   `json:"completed_at"`
}

type Rewards struct {
	Xp                 int64    `json:"xp"`
	Karma              int64    `json:"karma"`
	Badges             []string `json:"badges"`
	NextLessonUnlocked bool     `json:"next_lesson_unlocked"`
}

type CompleteResp struct {
	Progress
	Rewards      Rewards `json:"rewards"`
	NextLessonId int64   `json:"next_lesson_id"`
}

type SyncRewards struct {
	Xp     int64    `json:"total_xp"`
	Karma  int64    `json:"total_karma"`
	Badges []string `json:"new_badges"`
}

type SyncResp struct {
	SyncedCount int         `json:"synced_count"`
	FailedCount int         `json:"failed_count"`
	Rewards     SyncRewards `json:"rewards"`
}

type SyncStatus struct {
	LastSyncAt   int64 `json:"last_sync_at"`
	PendingSyncs int   `json:"pending_syncs"`
	IsSyncing    bool  `json:"is_syncing"`
}

type Summary struct {
	TotalCoursesEnrolled  int64 `json:"total_courses_enrolled"`
	TotalCoursesCompleted int64 `json:"total_courses_completed"`
	TotalLessonsCompleted int64 `json:"total_lessons_completed"`
	TotalTimeSpentMinutes int64 `json:"total_time_spent_minutes"`
	ThisWeekMinutes       int64 `json:"this_week_minutes"`
}

type MyProgress struct {
	Enrollments []Enrollment `json:"enrollments"`
	Summary     Summary      `json:"summary"`
}

type ModuleProgress struct {
	Id               int64  `json:"module_id"`
	Name             string `json:"module_name"`
	CompletedLessons int64  `json:"completed_lessons"`
	TotalLessons     int64  `json:"total_lessons"`
	IsCompleted      bool   `json:"is_completed"`
}

type TrackProgress struct {
	Id                   int64            `json:"track_id"`
	Name                 string           `json:"track_name"`
	IsUnlocked           bool             `json:"is_unlocked"`
	IsCurrent            bool             `json:"is_current"`
	CompletionPercentage float64          `json:"completion_percentage"`
	Modules              []ModuleProgress `json:"modules"`
}

type CourseProgress struct {
	EnrollmentId         int64           `json:"enrollment_id"`
	CourseId             int64           `json:"course_id"`
	CompletionPercentage float64         `json:"completion_percentage"`
	Tracks               []TrackProgress `json:"tracks"`
	RecentLessons        []LessonSummary `json:"recent_lessons"`
}

func newCourseProgress(cp domain.CourseProgress) CourseProgress {
	return CourseProgress{
		EnrollmentId:         cp.Enrollment.Id,
		CourseId:             cp.Enrollment.CourseId,
		CompletionPercentage: cp.Enrollment.CompletionPercentage,
		Tracks: slice.Map(cp.Outline.Tracks, func(idx int, t course.Track) TrackProgress {
			var done, total int64
			modules := slice.Map(t.Modules, func(idx int, m course.LearningModule) ModuleProgress {
				completed := cp.ModuleCompleted[m.Id]
				cnt := int64(len(m.Lessons))
				done += completed
				total += cnt
				return ModuleProgress{
					Id:               m.Id,
					Name:             m.Name,
					CompletedLessons: completed,
					TotalLessons:     cnt,
					IsCompleted:      cnt > 0 && completed >= cnt,
				}
			})
			return TrackProgress{
				Id:                   t.Id,
				Name:                 t.Name,
				IsUnlocked:           t.IsUnlocked(),
				IsCurrent:            t.Id == cp.Enrollment.CurrentTrackId,
				CompletionPercentage: domain.CompletionPercentage(done, total),
				Modules:              modules,
			}
		}),
		RecentLessons: slice.Map(cp.Recent, func(idx int, p domain.LessonProgress) LessonSummary {
			return LessonSummary{
				Id:          p.LessonId,
				Name:        p.Lesson.Name,
				CompletedAt: p.CompletedAt,
			}
		}),
	}
}

type ModuleLesson struct {
	Id                 int64   `json:"lesson_id"`
	Name               string  `json:"lesson_name"`
	LessonType         string  `json:"lesson_type"`
	DurationMinutes    int     `json:"duration_minutes"`
	HasQuiz            bool    `json:"has_quiz"`
	HasReflection      bool    `json:"has_reflection"`
	DisplayOrder       int     `json:"display_order"`
	IsCompleted        bool    `json:"is_completed"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

type ModuleLessonList struct {
	Lessons []ModuleLesson `json:"lessons"`
}
