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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hug/internal/quiz/internal/domain"
	"github.com/ecodeclub/hug/internal/quiz/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/learning/quizzes")
	g.POST("/detail", ginx.BS[QuizIdReq](h.Detail))
	g.POST("/lesson", ginx.B[LessonIdReq](h.QuizOfLesson))
	g.POST("/submit", ginx.BS[SubmitReq](h.Submit))
}

func (h *Handler) errResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrQuizNotFound):
		return quizNotFoundResult, nil
	case errors.Is(err, service.ErrNotEnrolled):
		return notEnrolledResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Detail(ctx *ginx.Context, req QuizIdReq, sess session.Session) (ginx.Result, error) {
	q, stats, err := h.svc.Detail(ctx, sess.Claims().Uid, req.QuizId)
	if err != nil {
		return h.errResult(err)
	}
	res := newQuiz(q)
	res.UserAttempts = UserAttempts{
		AttemptsTaken: stats.AttemptsTaken,
		BestScore:     stats.BestScore,
	}
	if stats.LastAttemptAt > 0 {
		res.UserAttempts.LastAttemptAt = &stats.LastAttemptAt
	}
	return ginx.Result{Data: res}, nil
}

func (h *Handler) QuizOfLesson(ctx *ginx.Context, req LessonIdReq) (ginx.Result, error) {
	q, err := h.svc.QuizOfLesson(ctx, req.LessonId)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Data: newQuiz(q)}, nil
}

func newQuiz(q domain.Quiz) Quiz {
	return Quiz{
		QuizId:           q.Id,
		LessonId:         q.LessonId,
		QuizName:         q.Title,
		QuizType:         q.QuizType,
		PassingScore:     q.PassingScore,
		MaxAttempts:      q.MaxAttempts,
		TimeLimitMinutes: q.TimeLimitMinutes,
		Questions: slice.Map(q.Questions, func(idx int, src domain.Question) Question {
			return Question{
				QuestionId:   src.Id,
				QuestionText: src.Text,
				QuestionType: src.QuestionType,
				Options: slice.Map(src.Options, func(idx int, src domain.Option) Option {
					return Option(src)
				}),
				Points: src.Points,
			}
		}),
	}
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	if req.QuizId <= 0 || len(req.Answers) == 0 {
		return invalidInputResult, nil
	}
	res, err := h.svc.Submit(ctx, sess.Claims().Uid, req.QuizId,
		slice.Map(req.Answers, func(idx int, src Answer) domain.Answer {
			return domain.Answer(src)
		}), req.TimeTakenSeconds)
	if err != nil {
		return h.errResult(err)
	}
	resp := SubmitResp{
		AttemptId:        res.Attempt.Id,
		AttemptNumber:    res.Attempt.AttemptNumber,
		Score:            res.Attempt.Score,
		Passed:           res.Attempt.Passed,
		CorrectAnswers:   res.CorrectAnswers,
		TotalQuestions:   res.TotalQuestions,
		TimeTakenSeconds: res.Attempt.TimeTakenSeconds,
		Results: slice.Map(res.Results, func(idx int, src domain.QuestionResult) QuestionResult {
			return QuestionResult(src)
		}),
	}
	if res.Rewarded {
		badges := res.Badges
		if badges == nil {
			badges = []string{}
		}
		resp.Rewards = &Rewards{Xp: res.Xp, Karma: res.Karma, Badges: badges}
	}
	return ginx.Result{Data: resp}, nil
}
