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

type QuizIdReq struct {
	QuizId int64 `json:"quiz_id"`
}

type LessonIdReq struct {
	LessonId int64 `json:"lesson_id"`
}

type SubmitReq struct {
	QuizId           int64    `json:"quiz_id"`
	Answers          []Answer `json:"answers"`
	TimeTakenSeconds int64    `json:"time_taken_seconds"`
}

type Answer struct {
	QuestionId     string `json:"question_id"`
	SelectedOption string `json:"selected_option"`
}

// Quiz 返回给前端的测验，不带答案
type Quiz struct {
	QuizId           int64        `json:"quiz_id"`
	LessonId         int64        `json:"lesson_id"`
	QuizName         string       `json:"quiz_name"`
	QuizType         string       `json:"quiz_type"`
	PassingScore     int          `json:"passing_score"`
	MaxAttempts      int          `json:"max_attempts"`
	TimeLimitMinutes int          `json:"time_limit_minutes"`
	Questions        []Question   `json:"questions"`
	UserAttempts     UserAttempts `json:"user_attempts"`
}

type Question struct {
	QuestionId   string   `json:"question_id"`
	QuestionText string   `json:"question_text"`
	QuestionType string   `json:"question_type"`
	Options      []Option `json:"options"`
	Points       int      `json:"points"`
}

type Option struct {
	Id   string `json:"id"`
	Text string `json:"text"`
}

type UserAttempts struct {
	AttemptsTaken int64   `json:"attempts_taken"`
	BestScore     float64 `json:"best_score"`
	// LastAttemptAt 没有作答过的时候是 null
	LastAttemptAt *int64 `json:"last_attempt_at"`
}

type SubmitResp struct {
	AttemptId        int64            `json:"attempt_id"`
	AttemptNumber    int64            `json:"attempt_number"`
	Score            float64          `json:"score"`
	Passed           bool             `json:"passed"`
	CorrectAnswers   int              `json:"correct_answers"`
	TotalQuestions   int              `json:"total_questions"`
	TimeTakenSeconds int64            `json:"time_taken_seconds"`
	Rewards          *Rewards         `json:"rewards"`
	Results          []QuestionResult `json:"results"`
}

type Rewards struct {
	Xp     int64    `json:"xp"`
	Karma  int64    `json:"karma"`
	Badges []string `json:"badges"`
}

type QuestionResult struct {
	QuestionId     string `json:"question_id"`
	IsCorrect      bool   `json:"is_correct"`
	SelectedOption string `json:"selected_option"`
	CorrectOption  string `json:"correct_option"`
	Explanation    string `json:"explanation"`
}
