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

type Quiz struct {
	Id               int64                       `gorm:"primaryKey,autoIncrement"`
	LessonId         int64                       `gorm:"uniqueIndex"`
	Title            string                      `gorm:"type:varchar(256)"`
	QuizType         string                      `gorm:"type:varchar(16)"`
	Questions        sqlx.JsonColumn[[]Question] `gorm:"type:json"`
	PassingScore     int
	MaxAttempts      int
	TimeLimitMinutes int
	Ctime            int64
	Utime            int64
}

func (Quiz) TableName() string {
	return "quizzes"
}

type Question struct {
	Id            string   `json:"id"`
	Text          string   `json:"text"`
	QuestionType  string   `json:"question_type"`
	Options       []Option `json:"options"`
	CorrectOption string   `json:"correct_option"`
	Explanation   string   `json:"explanation"`
	Points        int      `json:"points"`
}

type Option struct {
	Id   string `json:"id"`
	Text string `json:"text"`
}

type Attempt struct {
	Id               int64                     `gorm:"primaryKey,autoIncrement"`
	Uid              int64                     `gorm:"uniqueIndex:uid_quiz_number"`
	QuizId           int64                     `gorm:"uniqueIndex:uid_quiz_number"`
	AttemptNumber    int64                     `gorm:"uniqueIndex:uid_quiz_number"`
	EnrollmentId     int64                     `gorm:"index"`
	Answers          sqlx.JsonColumn[[]Answer] `gorm:"type:json"`
	Score            float64
	Passed           bool
	TimeTakenSeconds int64
	Ctime            int64
	Utime            int64
}

func (Attempt) TableName() string {
	return "user_quiz_attempts"
}

type Answer struct {
	QuestionId     string `json:"question_id"`
	SelectedOption string `json:"selected_option"`
}

type AttemptStats struct {
	Cnt       int64
	BestScore float64
	LastCtime int64
}
