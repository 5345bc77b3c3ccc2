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

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/hug/internal/course"
	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/progress"
	"github.com/ecodeclub/hug/internal/quiz/internal/domain"
	"github.com/ecodeclub/hug/internal/quiz/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrQuizNotFound = errors.New("测验不存在")
	ErrNotEnrolled  = progress.ErrNotEnrolled
)

type Service interface {
	// Detail 测验和用户的作答统计
	Detail(ctx context.Context, uid, id int64) (domain.Quiz, domain.AttemptStats, error)
	QuizOfLesson(ctx context.Context, lessonId int64) (domain.Quiz, error)
	Submit(ctx context.Context, uid, id int64, answers []domain.Answer, timeTakenSeconds int64) (domain.SubmitResult, error)
	// Seed 写入默认测验，已经存在的跳过，返回写入的条数
	Seed(ctx context.Context) (int64, error)
}

type quizService struct {
	repo        repository.QuizRepository
	courseSvc   course.Service
	progressSvc progress.Service
	gameSvc     gamification.Service
	logger      *elog.Component
}

func NewService(repo repository.QuizRepository,
	courseSvc course.Service,
	progressSvc progress.Service,
	gameSvc gamification.Service) Service {
	return &quizService{
		repo:        repo,
		courseSvc:   courseSvc,
		progressSvc: progressSvc,
		gameSvc:     gameSvc,
		logger:      elog.DefaultLogger,
	}
}

func (s *quizService) quiz(ctx context.Context, id int64) (domain.Quiz, error) {
	q, err := s.repo.Quiz(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Quiz{}, ErrQuizNotFound
	}
	return q, err
}

func (s *quizService) Detail(ctx context.Context, uid, id int64) (domain.Quiz, domain.AttemptStats, error) {
	q, err := s.quiz(ctx, id)
	if err != nil {
		return domain.Quiz{}, domain.AttemptStats{}, err
	}
	stats, err := s.repo.AttemptStats(ctx, uid, id)
	return q, stats, err
}

func (s *quizService) QuizOfLesson(ctx context.Context, lessonId int64) (domain.Quiz, error) {
	q, err := s.repo.QuizByLesson(ctx, lessonId)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Quiz{}, ErrQuizNotFound
	}
	return q, err
}

func (s *quizService) Submit(ctx context.Context, uid, id int64,
	answers []domain.Answer, timeTakenSeconds int64) (domain.SubmitResult, error) {
	q, err := s.quiz(ctx, id)
	if err != nil {
		return domain.SubmitResult{}, err
	}
	loc, err := s.courseSvc.LessonLocation(ctx, q.LessonId)
	if errors.Is(err, course.ErrRecordNotFound) {
		// 课时已经被删除，测验也就没有意义了
		return domain.SubmitResult{}, ErrQuizNotFound
	}
	if err != nil {
		return domain.SubmitResult{}, err
	}
	e, err := s.progressSvc.Enrollment(ctx, uid, loc.CourseId)
	if err != nil {
		return domain.SubmitResult{}, err
	}

	results, correct, score := q.Grade(answers)
	a, err := s.repo.CreateAttempt(ctx, domain.Attempt{
		Uid:              uid,
		QuizId:           q.Id,
		EnrollmentId:     e.Id,
		Answers:          answers,
		Score:            score,
		Passed:           q.Passed(score),
		TimeTakenSeconds: max(timeTakenSeconds, 0),
	})
	if err != nil {
		return domain.SubmitResult{}, err
	}
	res := domain.SubmitResult{
		Attempt:        a,
		CorrectAnswers: correct,
		TotalQuestions: len(q.Questions),
		Results:        results,
	}
	if !a.Passed {
		return res, nil
	}
	rr, err := s.gameSvc.Reward(ctx, uid, gamification.Reward{
		Xp:          domain.PassXp,
		Karma:       domain.PassKarma,
		Source:      domain.RewardSource,
		SourceId:    q.Id,
		Description: fmt.Sprintf("Passed quiz: %s", q.Title),
	})
	if err != nil {
		return domain.SubmitResult{}, err
	}
	res.Rewarded = true
	res.Xp, res.Karma, res.Badges = rr.Xp, rr.Karma, rr.Badges
	return res, nil
}

func (s *quizService) Seed(ctx context.Context) (int64, error) {
	var quizzes []domain.Quiz
	for _, sq := range defaultQuizzes() {
		l, err := s.courseSvc.LessonBySlug(ctx, sq.lessonSlug)
		if errors.Is(err, course.ErrRecordNotFound) {
			s.logger.Warn("课时不存在，跳过测验", elog.String("lesson", sq.lessonSlug))
			continue
		}
		if err != nil {
			return 0, err
		}
		sq.quiz.LessonId = l.Id
		quizzes = append(quizzes, sq.quiz)
	}
	return s.repo.CreateIfAbsent(ctx, quizzes)
}
