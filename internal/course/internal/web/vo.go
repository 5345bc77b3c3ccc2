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
	"github.com/ecodeclub/hug/internal/course/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type CourseListReq struct {
	SchoolId int64  `json:"school_id"`
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Level    string `json:"level"`
	Featured bool   `json:"featured"`
}

func (r CourseListReq) normalize() CourseListReq {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit <= 0 {
		r.Limit = defaultPageSize
	}
	r.Limit = min(r.Limit, maxPageSize)
	return r
}

type CourseIdReq struct {
	CourseId int64 `json:"course_id"`
}

type TrackIdReq struct {
	TrackId int64 `json:"track_id"`
}

type ModuleIdReq struct {
	ModuleId int64 `json:"module_id"`
}

type LessonIdReq struct {
	LessonId int64 `json:"lesson_id"`
}

type School struct {
	Id           int64  `json:"school_id"`
	Name         string `json:"school_name"`
	Slug         string `json:"school_slug,omitempty"`
	Description  string `json:"description,omitempty"`
	IconUrl      string `json:"icon_url,omitempty"`
	DisplayOrder int    `json:"display_order,omitempty"`
	IsActive     bool   `json:"is_active,omitempty"`
	CourseCount  int64  `json:"course_count"`
}

func newSchool(s domain.School) School {
	return School{
		Id:           s.Id,
		Name:         s.Name,
		Slug:         s.Slug,
		Description:  s.Description,
		IconUrl:      s.IconUrl,
		DisplayOrder: s.DisplayOrder,
		IsActive:     true,
		CourseCount:  s.CourseCount,
	}
}

type SchoolList struct {
	Schools []School `json:"schools"`
}

type Course struct {
	Id               int64   `json:"course_id"`
	SchoolId         int64   `json:"school_id,omitempty"`
	Name             string  `json:"course_name"`
	Slug             string  `json:"course_slug"`
	ShortDescription string  `json:"short_description"`
	Description      string  `json:"long_description,omitempty"`
	ThumbnailUrl     string  `json:"thumbnail_url,omitempty"`
	DifficultyLevel  string  `json:"difficulty_level"`
	DurationDays     int     `json:"duration_days"`
	TotalLessons     int     `json:"total_lessons"`
	EstimatedHours   float64 `json:"estimated_hours"`
	IsFeatured       bool    `json:"is_featured"`
	School           *School `json:"school,omitempty"`
	Tracks           []Track `json:"tracks,omitempty"`
}

func newCourse(c domain.Course) Course {
	return Course{
		Id:               c.Id,
		SchoolId:         c.SchoolId,
		Name:             c.Name,
		Slug:             c.Slug,
		ShortDescription: c.ShortDescription,
		ThumbnailUrl:     c.ThumbnailUrl,
		DifficultyLevel:  c.DifficultyLevel,
		DurationDays:     c.DurationDays,
		TotalLessons:     c.TotalLessons,
		EstimatedHours:   c.EstimatedHours,
		IsFeatured:       c.IsFeatured,
	}
}

func newCourseDetail(c domain.Course) Course {
	res := newCourse(c)
	res.Description = c.Description
	res.School = &School{
		Id:          c.School.Id,
		Name:        c.School.Name,
		Slug:        c.School.Slug,
		CourseCount: c.School.CourseCount,
	}
	res.Tracks = slice.Map(c.Tracks, func(idx int, src domain.Track) Track {
		return Track{
			Id:          src.Id,
			Name:        src.Name,
			Level:       src.Level,
			Description: src.Description,
			ModuleCount: src.ModuleCount,
			LessonCount: src.LessonCount,
			IsUnlocked:  src.IsUnlocked(),
		}
	})
	return res
}

type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int64 `json:"total_pages"`
	TotalItems  int64 `json:"total_items"`
}

type CourseList struct {
	Courses    []Course   `json:"courses"`
	Pagination Pagination `json:"pagination"`
}

type Track struct {
	Id          int64  `json:"track_id"`
	Name        string `json:"track_name"`
	Level       string `json:"track_level,omitempty"`
	Description string `json:"description,omitempty"`
	ModuleCount int64  `json:"module_count"`
	LessonCount int64  `json:"lesson_count"`
	IsUnlocked  bool   `json:"is_unlocked"`
}

type Module struct {
	Id           int64   `json:"module_id"`
	TrackId      int64   `json:"track_id,omitempty"`
	Name         string  `json:"module_name"`
	Description  string  `json:"description"`
	LessonCount  int64   `json:"lesson_count"`
	DisplayOrder int     `json:"display_order"`
	Track        *Track  `json:"track,omitempty"`
	Course       *Course `json:"course,omitempty"`
}

func newModule(m domain.Module) Module {
	return Module{
		Id:           m.Id,
		TrackId:      m.TrackId,
		Name:         m.Name,
		Description:  m.Description,
		LessonCount:  m.LessonCount,
		DisplayOrder: m.DisplayOrder,
	}
}

type ModuleList struct {
	Modules []Module `json:"modules"`
}

type Slide struct {
	Type            string `json:"type"`
	Title           string `json:"title"`
	Body            string `json:"body"`
	DurationSeconds int    `json:"duration_seconds"`
}

type Lesson struct {
	Id              int64   `json:"lesson_id"`
	ModuleId        int64   `json:"module_id"`
	Name            string  `json:"lesson_name"`
	LessonType      string  `json:"lesson_type"`
	Content         []Slide `json:"content"`
	DurationMinutes int     `json:"duration_minutes"`
	HasQuiz         bool    `json:"has_quiz"`
	HasReflection   bool    `json:"has_reflection"`
	NextLessonId    int64   `json:"next_lesson_id,omitempty"`
	PrevLessonId    int64   `json:"previous_lesson_id,omitempty"`
}

func newLesson(l domain.Lesson) Lesson {
	return Lesson{
		Id:         l.Id,
		ModuleId:   l.ModuleId,
		Name:       l.Name,
		LessonType: l.LessonType,
		Content: slice.Map(l.Slides, func(idx int, src domain.Slide) Slide {
			return Slide(src)
		}),
		DurationMinutes: l.DurationMinutes,
		HasQuiz:         l.HasQuiz,
		HasReflection:   l.HasReflection,
		NextLessonId:    l.NextLessonId,
		PrevLessonId:    l.PrevLessonId,
	}
}
