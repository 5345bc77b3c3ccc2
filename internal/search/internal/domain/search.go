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

import "strings"

const (
	TypeAll     = "all"
	TypeCourses = "courses"
	TypeLessons = "lessons"
	TypeSchools = "schools"

	DefaultLimit = 20
	MaxLimit     = 50
)

type Query struct {
	Keyword string
	// Type 只能是 all, courses, lessons, schools
	Type  string
	Limit int
}

// Normalize 补齐默认值，limit 最多 50
func (q Query) Normalize() Query {
	q.Keyword = strings.TrimSpace(q.Keyword)
	q.Type = strings.ToLower(strings.TrimSpace(q.Type))
	if q.Type == "" {
		q.Type = TypeAll
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

func (q Query) ValidType() bool {
	switch q.Type {
	case TypeAll, TypeCourses, TypeLessons, TypeSchools:
		return true
	}
	return false
}

func (q Query) Includes(typ string) bool {
	return q.Type == TypeAll || q.Type == typ
}

type Course struct {
	Id               int64
	SchoolId         int64
	Name             string
	Slug             string
	ShortDescription string
	Description      string
	DifficultyLevel  string
}

type Lesson struct {
	Id              int64
	ModuleId        int64
	ModuleName      string
	CourseId        int64
	CourseName      string
	Name            string
	Slug            string
	LessonType      string
	DurationMinutes int
	Summary         string
}

// Location 课时所在的位置，形如 "课程 - 模块"
func (l Lesson) Location() string {
	switch {
	case l.CourseName == "":
		return l.ModuleName
	case l.ModuleName == "":
		return l.CourseName
	}
	return l.CourseName + " - " + l.ModuleName
}

type School struct {
	Id          int64
	Name        string
	Slug        string
	Description string
}

type SearchResult struct {
	Courses []Course
	Lessons []Lesson
	Schools []School
}

func (r SearchResult) Total() int {
	return len(r.Courses) + len(r.Lessons) + len(r.Schools)
}
