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
	TypeReflection = "reflection"
	TypePractice   = "practice"

	StatusSubmitted = "submitted"
	StatusReviewed  = "reviewed"

	SubmissionTypeText = "text"

	SubmitKarma  = 10
	RewardSource = "activity"
)

// Activity 课时下面的练习，例如反思、实践
type Activity struct {
	Id           int64
	LessonId     int64
	Slug         string
	ActivityType string
	Content      Content
	IsRequired   bool
	DisplayOrder int
}

type Content struct {
	Title        string
	Prompt       string
	Instructions string
	MinWords     int
}

type Submission struct {
	Id             int64
	Uid            int64
	ActivityId     int64
	EnrollmentId   int64
	SubmissionType string
	Content        string
	Status         string
	ReviewedAt     int64
	Ctime          int64

	Activity   Activity
	LessonName string
}

type SubmissionQuery struct {
	Uid int64
	// Status 为空的时候不过滤
	Status string
	Offset int
	Limit  int
}

type SubmitResult struct {
	Submission Submission
	Karma      int64
	Badges     []string
}
