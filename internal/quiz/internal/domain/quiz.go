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

import "math"

const (
	TypeMCQ = "mcq"

	PassXp       = 100
	PassKarma    = 20
	RewardSource = "quiz"
)

type Quiz struct {
	Id               int64
	LessonId         int64
	Title            string
	QuizType         string
	PassingScore     int
	MaxAttempts      int
	TimeLimitMinutes int
	Questions        []Question
}

type Question struct {
	Id            string
	Text          string
	QuestionType  string
	Options       []Option
	CorrectOption string
	Explanation   string
	Points        int
}

type Option struct {
	Id   string
	Text string
}

type Answer struct {
	QuestionId     string
	SelectedOption string
}

// QuestionResult 批改之后每一道题的结果
type QuestionResult struct {
	QuestionId     string
	IsCorrect      bool
	SelectedOption string
	CorrectOption  string
	Explanation    string
}

// Grade 按照题目批改，没有作答的题目算错
func (q Quiz) Grade(answers []Answer) ([]QuestionResult, int, float64) {
	selected := make(map[string]string, len(answers))
	for _, a := range answers {
		if _, ok := selected[a.QuestionId]; !ok {
			selected[a.QuestionId] = a.SelectedOption
		}
	}
	results := make([]QuestionResult, 0, len(q.Questions))
	correct := 0
	for _, qs := range q.Questions {
		opt, ok := selected[qs.Id]
		isCorrect := ok && opt == qs.CorrectOption
		if isCorrect {
			correct++
		}
		results = append(results, QuestionResult{
			QuestionId:     qs.Id,
			IsCorrect:      isCorrect,
			SelectedOption: opt,
			CorrectOption:  qs.CorrectOption,
			Explanation:    qs.Explanation,
		})
	}
	if len(q.Questions) == 0 {
		return results, 0, 0
	}
	score := float64(correct) / float64(len(q.Questions)) * 100
	return results, correct, math.Round(score*100) / 100
}

func (q Quiz) Passed(score float64) bool {
	return score >= float64(q.PassingScore)
}

type Attempt struct {
	Id               int64
	Uid              int64
	QuizId           int64
	EnrollmentId     int64
	AttemptNumber    int64
	Answers          []Answer
	Score            float64
	Passed           bool
	TimeTakenSeconds int64
	Ctime            int64
}

// AttemptStats 用户在某个测验上的作答统计
type AttemptStats struct {
	AttemptsTaken int64
	BestScore     float64
	// LastAttemptAt 没有作答过的时候是 0
	LastAttemptAt int64
}

type SubmitResult struct {
	Attempt        Attempt
	CorrectAnswers int
	TotalQuestions int
	Results        []QuestionResult
	// Rewarded 没有通过的时候为 false，Xp 和 Karma 都是 0
	Rewarded bool
	Xp       int64
	Karma    int64
	Badges   []string
}
