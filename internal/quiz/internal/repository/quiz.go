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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hug/internal/quiz/internal/domain"
	"github.com/ecodeclub/hug/internal/quiz/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./quiz.go -package=repomocks -destination=./mocks/quiz.mock.go QuizRepository
type QuizRepository interface {
	Quiz(ctx context.Context, id int64) (domain.Quiz, error)
	QuizByLesson(ctx context.Context, lessonId int64) (domain.Quiz, error)
	CreateIfAbsent(ctx context.Context, quizzes []domain.Quiz) (int64, error)
	CreateAttempt(ctx context.Context, a domain.Attempt) (domain.Attempt, error)
	AttemptStats(ctx context.Context, uid, quizId int64) (domain.AttemptStats, error)
}

type quizRepository struct {
	dao dao.QuizDAO
}

func NewQuizRepository(d dao.QuizDAO) QuizRepository {
	return &quizRepository{dao: d}
}

func (repo *quizRepository) Quiz(ctx context.Context, id int64) (domain.Quiz, error) {
	q, err := repo.dao.FindById(ctx, id)
	return repo.toDomain(q), err
}

func (repo *quizRepository) QuizByLesson(ctx context.Context, lessonId int64) (domain.Quiz, error) {
	q, err := repo.dao.FindByLessonId(ctx, lessonId)
	return repo.toDomain(q), err
}

func (repo *quizRepository) CreateIfAbsent(ctx context.Context, quizzes []domain.Quiz) (int64, error) {
	return repo.dao.CreateIfAbsent(ctx, slice.Map(quizzes, func(idx int, src domain.Quiz) dao.Quiz {
		return repo.toEntity(src)
	}))
}

func (repo *quizRepository) CreateAttempt(ctx context.Context, a domain.Attempt) (domain.Attempt, error) {
	res, err := repo.dao.CreateAttempt(ctx, dao.Attempt{
		Uid:          a.Uid,
		QuizId:       a.QuizId,
		EnrollmentId: a.EnrollmentId,
		Answers: sqlx.JsonColumn[[]dao.Answer]{
			Val: slice.Map(a.Answers, func(idx int, src domain.Answer) dao.Answer {
				return dao.Answer(src)
			}),
			Valid: true,
		},
		Score:            a.Score,
		Passed:           a.Passed,
		TimeTakenSeconds: a.TimeTakenSeconds,
	})
	if err != nil {
		return domain.Attempt{}, err
	}
	a.Id = res.Id
	a.AttemptNumber = res.AttemptNumber
	a.Ctime = res.Ctime
	return a, nil
}

func (repo *quizRepository) AttemptStats(ctx context.Context, uid, quizId int64) (domain.AttemptStats, error) {
	s, err := repo.dao.AttemptStats(ctx, uid, quizId)
	return domain.AttemptStats{
		AttemptsTaken: s.Cnt,
		BestScore:     s.BestScore,
		LastAttemptAt: s.LastCtime,
	}, err
}

func (repo *quizRepository) toDomain(q dao.Quiz) domain.Quiz {
	return domain.Quiz{
		Id:               q.Id,
		LessonId:         q.LessonId,
		Title:            q.Title,
		QuizType:         q.QuizType,
		PassingScore:     q.PassingScore,
		MaxAttempts:      q.MaxAttempts,
		TimeLimitMinutes: q.TimeLimitMinutes,
		Questions: slice.Map(q.Questions.Val, func(idx int, src dao.Question) domain.Question {
			return domain.Question{
				Id:           src.Id,
				Text:         src.Text,
				QuestionType: src.QuestionType,
				Options: slice.Map(src.Options, func(idx int, src dao.Option) domain.Option {
					return domain.Option(src)
				}),
				CorrectOption: src.CorrectOption,
				Explanation:   src.Explanation,
				Points:        src.Points,
			}
		}),
	}
}

func (repo *quizRepository) toEntity(q domain.Quiz) dao.Quiz {
	return dao.Quiz{
		Id:       q.Id,
		LessonId: q.LessonId,
		Title:    q.Title,
		QuizType: q.QuizType,
		Questions: sqlx.JsonColumn[[]dao.Question]{
			Val: slice.Map(q.Questions, func(idx int, src domain.Question) dao.Question {
				return dao.Question{
					Id:           src.Id,
					Text:         src.Text,
					QuestionType: src.QuestionType,
					Options: slice.Map(src.Options, func(idx int, src domain.Option) dao.Option {
						return dao.Option(src)
					}),
					CorrectOption: src.CorrectOption,
					Explanation:   src.Explanation,
					Points:        src.Points,
				}
			}),
			Valid: len(q.Questions) > 0,
		},
		PassingScore:     q.PassingScore,
		MaxAttempts:      q.MaxAttempts,
		TimeLimitMinutes: q.TimeLimitMinutes,
	}
}
