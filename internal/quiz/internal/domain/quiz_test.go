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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuiz_Grade(t *testing.T) {
	quiz := Quiz{
		PassingScore: 70,
		Questions: []Question{
			{Id: "q1", CorrectOption: "b", Explanation: "700 verses"},
			{Id: "q2", CorrectOption: "b", Explanation: "Krishna"},
			{Id: "q3", CorrectOption: "a", Explanation: "Kurukshetra"},
		},
	}
	testCases := []struct {
		name        string
		quiz        Quiz
		answers     []Answer
		wantCorrect int
		wantScore   float64
		wantPassed  bool
		wantResults []QuestionResult
	}{
		{
			name: "全部答对",
			quiz: quiz,
			answers: []Answer{
				{QuestionId: "q1", SelectedOption: "b"},
				{QuestionId: "q2", SelectedOption: "b"},
				{QuestionId: "q3", SelectedOption: "a"},
			},
			wantCorrect: 3,
			wantScore:   100,
			wantPassed:  true,
			wantResults: []QuestionResult{
				{QuestionId: "q1", IsCorrect: true, SelectedOption: "b", CorrectOption: "b", Explanation: "700 verses"},
				{QuestionId: "q2", IsCorrect: true, SelectedOption: "b", CorrectOption: "b", Explanation: "Krishna"},
				{QuestionId: "q3", IsCorrect: true, SelectedOption: "a", CorrectOption: "a", Explanation: "Kurukshetra"},
			},
		},
		{
			name: "漏答和答错",
			quiz: quiz,
			answers: []Answer{
				{QuestionId: "q1", SelectedOption: "b"},
				{QuestionId: "q2", SelectedOption: "a"},
				{QuestionId: "q9", SelectedOption: "a"},
			},
			wantCorrect: 1,
			wantScore:   33.33,
			wantPassed:  false,
			wantResults: []QuestionResult{
				{QuestionId: "q1", IsCorrect: true, SelectedOption: "b", CorrectOption: "b", Explanation: "700 verses"},
				{QuestionId: "q2", IsCorrect: false, SelectedOption: "a", CorrectOption: "b", Explanation: "Krishna"},
				{QuestionId: "q3", IsCorrect: false, CorrectOption: "a", Explanation: "Kurukshetra"},
			},
		},
		{
			name: "同一道题答多次以第一次为准",
			quiz: Quiz{PassingScore: 50, Questions: quiz.Questions[:2]},
			answers: []Answer{
				{QuestionId: "q1", SelectedOption: "b"},
				{QuestionId: "q1", SelectedOption: "c"},
			},
			wantCorrect: 1,
			wantScore:   50,
			wantPassed:  true,
			wantResults: []QuestionResult{
				{QuestionId: "q1", IsCorrect: true, SelectedOption: "b", CorrectOption: "b", Explanation: "700 verses"},
				{QuestionId: "q2", IsCorrect: false, CorrectOption: "b", Explanation: "Krishna"},
			},
		},
		{
			name:        "没有题目",
			quiz:        Quiz{PassingScore: 70},
			wantResults: []QuestionResult{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results, correct, score := tc.quiz.Grade(tc.answers)
			assert.Equal(t, tc.wantResults, results)
			assert.Equal(t, tc.wantCorrect, correct)
			assert.Equal(t, tc.wantScore, score)
			assert.Equal(t, tc.wantPassed, tc.quiz.Passed(score))
		})
	}
}
