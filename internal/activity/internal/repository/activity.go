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
	"github.com/ecodeclub/hug/internal/activity/internal/domain"
	"github.com/ecodeclub/hug/internal/activity/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./activity.go -package=repomocks -destination=./mocks/activity.mock.go ActivityRepository
type ActivityRepository interface {
	Activity(ctx context.Context, id int64) (domain.Activity, error)
	ActivitiesByIds(ctx context.Context, ids []int64) (map[int64]domain.Activity, error)
	LessonActivities(ctx context.Context, lessonId int64) ([]domain.Activity, error)
	CreateIfAbsent(ctx context.Context, as []domain.Activity) (int64, error)

	CreateSubmission(ctx context.Context, s domain.Submission) (domain.Submission, error)
	// Submissions 返回当前页的数据和总数
	Submissions(ctx context.Context, q domain.SubmissionQuery) ([]domain.Submission, int64, error)
}

type activityRepository struct {
	dao dao.ActivityDAO
}

func NewActivityRepository(d dao.ActivityDAO) ActivityRepository {
	return &activityRepository{dao: d}
}

func (repo *activityRepository) Activity(ctx context.Context, id int64) (domain.Activity, error) {
	a, err := repo.dao.FindById(ctx, id)
	return repo.toDomain(a), err
}

func (repo *activityRepository) ActivitiesByIds(ctx context.Context, ids []int64) (map[int64]domain.Activity, error) {
	if len(ids) == 0 {
		return map[int64]domain.Activity{}, nil
	}
	as, err := repo.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Activity, len(as))
	for _, a := range as {
		res[a.Id] = repo.toDomain(a)
	}
	return res, nil
}

func (repo *activityRepository) LessonActivities(ctx context.Context, lessonId int64) ([]domain.Activity, error) {
	as, err := repo.dao.ListByLesson(ctx, lessonId)
	return slice.Map(as, func(idx int, src dao.Activity) domain.Activity {
		return repo.toDomain(src)
	}), err
}

func (repo *activityRepository) CreateIfAbsent(ctx context.Context, as []domain.Activity) (int64, error) {
	return repo.dao.CreateIfAbsent(ctx, slice.Map(as, func(idx int, src domain.Activity) dao.Activity {
		return dao.Activity{
			LessonId:     src.LessonId,
			Slug:         src.Slug,
			ActivityType: src.ActivityType,
			Content: sqlx.JsonColumn[dao.Content]{
				Val:   dao.Content(src.Content),
				Valid: true,
			},
			IsRequired:   src.IsRequired,
			DisplayOrder: src.DisplayOrder,
		}
	}))
}

func (repo *activityRepository) CreateSubmission(ctx context.Context, s domain.Submission) (domain.Submission, error) {
	res, err := repo.dao.CreateSubmission(ctx, dao.Submission{
		Uid:            s.Uid,
		ActivityId:     s.ActivityId,
		EnrollmentId:   s.EnrollmentId,
		SubmissionType: s.SubmissionType,
		Content:        s.Content,
		Status:         s.Status,
	})
	return repo.toSubmission(res), err
}

func (repo *activityRepository) Submissions(ctx context.Context, q domain.SubmissionQuery) ([]domain.Submission, int64, error) {
	var (
		eg    errgroup.Group
		subs  []dao.Submission
		total int64
	)
	eg.Go(func() error {
		var err error
		subs, err = repo.dao.ListSubmissions(ctx, q.Uid, q.Status, q.Offset, q.Limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = repo.dao.CountSubmissions(ctx, q.Uid, q.Status)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(subs, func(idx int, src dao.Submission) domain.Submission {
		return repo.toSubmission(src)
	}), total, nil
}

func (repo *activityRepository) toDomain(a dao.Activity) domain.Activity {
	return domain.Activity{
		Id:           a.Id,
		LessonId:     a.LessonId,
		Slug:         a.Slug,
		ActivityType: a.ActivityType,
		Content:      domain.Content(a.Content.Val),
		IsRequired:   a.IsRequired,
		DisplayOrder: a.DisplayOrder,
	}
}

func (repo *activityRepository) toSubmission(s dao.Submission) domain.Submission {
	return domain.Submission{
		Id:             s.Id,
		Uid:            s.Uid,
		ActivityId:     s.ActivityId,
		EnrollmentId:   s.EnrollmentId,
		SubmissionType: s.SubmissionType,
		Content:        s.Content,
		Status:         s.Status,
		ReviewedAt:     s.ReviewedAt,
		Ctime:          s.Ctime,
	}
}
