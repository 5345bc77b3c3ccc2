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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hug/internal/activity/internal/domain"
	"github.com/ecodeclub/hug/internal/activity/internal/repository"
	"github.com/ecodeclub/hug/internal/course"
	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/progress"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrActivityNotFound = errors.New("练习不存在")
	ErrNotEnrolled      = progress.ErrNotEnrolled
)

type Service interface {
	LessonActivities(ctx context.Context, lessonId int64) ([]domain.Activity, error)
	// Submit 提交练习并且发放功德
	Submit(ctx context.Context, s domain.Submission) (domain.SubmitResult, error)
	// Submissions 带上练习和课时名称
	Submissions(ctx context.Context, q domain.SubmissionQuery) ([]domain.Submission, int64, error)
	Seed(ctx context.Context) (int64, error)
}

type activityService struct {
	repo        repository.ActivityRepository
	courseSvc   course.Service
	progressSvc progress.Service
	gameSvc     gamification.Service
	logger      *elog.Component
}

func NewService(repo repository.ActivityRepository,
	courseSvc course.Service,
	progressSvc progress.Service,
	gameSvc gamification.Service) Service {
	return &activityService{
		repo:        repo,
		courseSvc:   courseSvc,
		progressSvc: progressSvc,
		gameSvc:     gameSvc,
		logger:      elog.DefaultLogger,
	}
}

func (s *activityService) LessonActivities(ctx context.Context, lessonId int64) ([]domain.Activity, error) {
	return s.repo.LessonActivities(ctx, lessonId)
}

func (s *activityService) Submit(ctx context.Context, sub domain.Submission) (domain.SubmitResult, error) {
	a, err := s.repo.Activity(ctx, sub.ActivityId)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.SubmitResult{}, ErrActivityNotFound
	}
	if err != nil {
		return domain.SubmitResult{}, err
	}
	loc, err := s.courseSvc.LessonLocation(ctx, a.LessonId)
	if errors.Is(err, course.ErrRecordNotFound) {
		return domain.SubmitResult{}, ErrActivityNotFound
	}
	if err != nil {
		return domain.SubmitResult{}, err
	}
	e, err := s.progressSvc.Enrollment(ctx, sub.Uid, loc.CourseId)
	if err != nil {
		return domain.SubmitResult{}, err
	}

	if sub.SubmissionType == "" {
		sub.SubmissionType = domain.SubmissionTypeText
	}
	sub.EnrollmentId = e.Id
	sub.Status = domain.StatusSubmitted
	sub, err = s.repo.CreateSubmission(ctx, sub)
	if err != nil {
		return domain.SubmitResult{}, err
	}
	sub.Activity = a
	rr, err := s.gameSvc.Reward(ctx, sub.Uid, gamification.Reward{
		Karma:       domain.SubmitKarma,
		Source:      domain.RewardSource,
		SourceId:    a.Id,
		Description: fmt.Sprintf("Submitted %s activity", a.ActivityType),
	})
	if err != nil {
		return domain.SubmitResult{}, err
	}
	return domain.SubmitResult{
		Submission: sub,
		Karma:      rr.Karma,
		Badges:     rr.Badges,
	}, nil
}

func (s *activityService) Submissions(ctx context.Context, q domain.SubmissionQuery) ([]domain.Submission, int64, error) {
	subs, total, err := s.repo.Submissions(ctx, q)
	if err != nil || len(subs) == 0 {
		return subs, total, err
	}
	activityIds := slice.Map(subs, func(idx int, src domain.Submission) int64 {
		return src.ActivityId
	})
	activities, err := s.repo.ActivitiesByIds(ctx, activityIds)
	if err != nil {
		return nil, 0, err
	}
	lessonIds := make([]int64, 0, len(activities))
	for _, a := range activities {
		lessonIds = append(lessonIds, a.LessonId)
	}
	lessons, err := s.courseSvc.LessonsByIds(ctx, lessonIds)
	if err != nil {
		return nil, 0, err
	}
	for i := range subs {
		a := activities[subs[i].ActivityId]
		subs[i].Activity = a
		subs[i].LessonName = lessons[a.LessonId].Name
	}
	return subs, total, nil
}

func (s *activityService) Seed(ctx context.Context) (int64, error) {
	var as []domain.Activity
	for _, sa := range defaultActivities() {
		l, err := s.courseSvc.LessonBySlug(ctx, sa.lessonSlug)
		if errors.Is(err, course.ErrRecordNotFound) {
			s.logger.Warn("课时不存在，跳过练习", elog.String("lesson", sa.lessonSlug))
			continue
		}
		if err != nil {
			return 0, err
		}
		sa.activity.LessonId = l.Id
		as = append(as, sa.activity)
	}
	return s.repo.CreateIfAbsent(ctx, as)
}
