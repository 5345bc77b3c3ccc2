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

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type LessonIdReq struct {
	LessonId int64 `json:"lesson_id"`
}

type SubmitReq struct {
	ActivityId     int64  `json:"activity_id"`
	SubmissionType string `json:"submission_type"`
	Content        string `json:"content"`
}

type SubmissionListReq struct {
	Status string `json:"status"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

func (r SubmissionListReq) normalize() SubmissionListReq {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit <= 0 {
		r.Limit = defaultPageSize
	}
	r.Limit = min(r.Limit, maxPageSize)
	return r
}

type Activity struct {
	ActivityId   int64   `json:"activity_id"`
	LessonId     int64   `json:"lesson_id"`
	ActivityType string  `json:"activity_type"`
	Content      Content `json:"content"`
	IsRequired   bool    `json:"is_required"`
	DisplayOrder int     `json:"display_order"`
}

type Content struct {
	Title        string `json:"title"`
	Prompt       string `json:"prompt"`
	Instructions string `json:"instructions,omitempty"`
	MinWords     int    `json:"min_words,omitempty"`
}

type ActivityList struct {
	Activities []Activity `json:"activities"`
}

type SubmitResp struct {
	SubmissionId int64   `json:"submission_id"`
	ActivityId   int64   `json:"activity_id"`
	Status       string  `json:"status"`
	SubmittedAt  int64   `json:"submitted_at"`
	Rewards      Rewards `json:"rewards"`
}

type Rewards struct {
	Karma  int64    `json:"karma"`
	Badges []string `json:"badges"`
}

type Submission struct {
	SubmissionId int64  `json:"submission_id"`
	ActivityId   int64  `json:"activity_id"`
	ActivityType string `json:"activity_type"`
	LessonName   string `json:"lesson_name"`
	Status       string `json:"status"`
	SubmittedAt  int64  `json:"submitted_at"`
	ReviewedAt   *int64 `json:"reviewed_at"`
}

type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int64 `json:"total_pages"`
	TotalItems  int64 `json:"total_items"`
}

type SubmissionList struct {
	Submissions []Submission `json:"submissions"`
	Pagination  Pagination   `json:"pagination"`
}
