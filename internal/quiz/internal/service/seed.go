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

package service

import "github.com/ecodeclub/hug/internal/quiz/internal/domain"

type seedQuiz struct {
	lessonSlug string
	quiz       domain.Quiz
}

func defaultQuizzes() []seedQuiz {
	return []seedQuiz{
		{
			lessonSlug: "lesson-gita-intro",
			quiz: domain.Quiz{
				Title:            "Gita Introduction Quiz",
				QuizType:         domain.TypeMCQ,
				PassingScore:     70,
				MaxAttempts:      3,
				TimeLimitMinutes: 10,
				Questions: []domain.Question{
					{
						Id:           "q1",
						Text:         "How many verses are there in the Bhagavad Gita?",
						QuestionType: domain.TypeMCQ,
						Options: []domain.Option{
							{Id: "a", Text: "500 verses"},
							{Id: "b", Text: "700 verses"},
							{Id: "c", Text: "900 verses"},
							{Id: "d", Text: "1000 verses"},
						},
						CorrectOption: "b",
						Explanation:   "The Bhagavad Gita consists of 700 verses.",
						Points:        10,
					},
					{
						Id:           "q2",
						Text:         "Who is the teacher in Bhagavad Gita?",
						QuestionType: domain.TypeMCQ,
						Options: []domain.Option{
							{Id: "a", Text: "Arjuna"},
							{Id: "b", Text: "Krishna"},
							{Id: "c", Text: "Vyasa"},
							{Id: "d", Text: "Brahma"},
						},
						CorrectOption: "b",
						Explanation:   "Lord Krishna is the teacher who guides Arjuna.",
						Points:        10,
					},
				},
			},
		},
	}
}
