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
	"github.com/ecodeclub/hug/internal/progress/internal/domain"
	"github.com/ecodeclub/hug/internal/progress/internal/repository/dao"
)

var (
	ErrRecordNotFound = dao.ErrRecordNotFound
	ErrDuplicate      = dao.ErrDuplicate
)

//go:generate mockgen -source=./progress.go -package=repomocks -destination=./mocks/progress.mock.go ProgressRepository
type ProgressRepository interface {
	CreateEnrollment(ctx context.Context, e domain.Enrollment) (int64, error)
	Enrollment(ctx context.Context, uid, courseId int64) (domain.Enrollment, error)
	Enrollments(ctx context.Context, uid int64) ([]domain.Enrollment, error)
	LatestCompletedEnrollment(ctx context.Context, uid int64) (domain.Enrollment, error)
	UpdateEnrollment(ctx context.Context, e domain.Enrollment) error

	// SaveProgress 保存之后返回数据库里面最新的数据
	SaveProgress(ctx context.Context, p domain.LessonProgress) (domain.LessonProgress, error)
	Progress(ctx context.Context, uid, lessonId int64) (domain.LessonProgress, error)
	// ClaimReward 并发安全，同一个课时只会返回一次 true
	ClaimReward(ctx context.Context, uid, lessonId int64) (bool, error)
	// ReleaseReward 奖励发放失败的时候归还，下一次完成可以重新领取
	ReleaseReward(ctx context.Context, uid, lessonId int64) error
	ProgressByLessonIds(ctx context.Context, uid int64, lessonIds []int64) ([]domain.LessonProgress, error)
	CountCompleted(ctx context.Context, uid int64, lessonIds []int64) (int64, error)
	RecentCompleted(ctx context.Context, uid, enrollmentId int64, limit int) ([]domain.LessonProgress, error)
	LatestAccessed(ctx context.Context, uid int64) (domain.LessonProgress, error)
	CountCompletedSince(ctx context.Context, uid int64, since int64) (int64, error)
}

type progressRepository struct {
	dao dao.ProgressDAO
}

func NewProgressRepository(d dao.ProgressDAO) ProgressRepository {
	return &progressRepository{dao: d}
}

func (repo *progressRepository) CreateEnrollment(ctx context.Context, e domain.Enrollment) (int64, error) {
	return repo.dao.CreateEnrollment(ctx, repo.toEnrollmentEntity(e))
}

func (repo *progressRepository) Enrollment(ctx context.Context, uid, courseId int64) (domain.Enrollment, error) {
	e, err := repo.dao.FindEnrollment(ctx, uid, courseId)
	return repo.toEnrollment(e), err
}

func (repo *progressRepository) Enrollments(ctx context.Context, uid int64) ([]domain.Enrollment, error) {
	es, err := repo.dao.ListEnrollments(ctx, uid)
	return slice.Map(es, func(idx int, src dao.Enrollment) domain.Enrollment {
		return repo.toEnrollment(src)
	}), err
}

func (repo *progressRepository) LatestCompletedEnrollment(ctx context.Context, uid int64) (domain.Enrollment, error) {
	e, err := repo.dao.LatestCompletedEnrollment(ctx, uid)
	return repo.toEnrollment(e), err
}

func (repo *progressRepository) UpdateEnrollment(ctx context.Context, e domain.Enrollment) error {
	return repo.dao.UpdateEnrollment(ctx, repo.toEnrollmentEntity(e))
}

func (repo *progressRepository) SaveProgress(ctx context.Context, p domain.LessonProgress) (domain.LessonProgress, error) {
	err := repo.dao.UpsertProgress(ctx, dao.LessonProgress{
		Uid:                p.Uid,
		LessonId:           p.LessonId,
		EnrollmentId:       p.EnrollmentId,
		Status:             p.Status,
		ProgressPercentage: p.ProgressPercentage,
		LastSlideIndex:     p.LastSlideIndex,
		TimeSpentSeconds:   p.TimeSpentSeconds,
		XpEarned:           p.XpEarned,
		CompletedAt:        p.CompletedAt,
		LastAccessedAt:     p.LastAccessedAt,
	})
	if err != nil {
		return domain.LessonProgress{}, err
	}
	return repo.Progress(ctx, p.Uid, p.LessonId)
}

func (repo *progressRepository) ClaimReward(ctx context.Context, uid, lessonId int64) (bool, error) {
	return repo.dao.ClaimReward(ctx, uid, lessonId)
}

func (repo *progressRepository) ReleaseReward(ctx context.Context, uid, lessonId int64) error {
	return repo.dao.ReleaseReward(ctx, uid, lessonId)
}

func (repo *progressRepository) Progress(ctx context.Context, uid, lessonId int64) (domain.LessonProgress, error) {
	p, err := repo.dao.FindProgress(ctx, uid, lessonId)
	return repo.toProgress(p), err
}

func (repo *progressRepository) ProgressByLessonIds(ctx context.Context, uid int64, lessonIds []int64) ([]domain.LessonProgress, error) {
	if len(lessonIds) == 0 {
		return nil, nil
	}
	ps, err := repo.dao.ProgressByLessonIds(ctx, uid, lessonIds)
	return repo.toProgresses(ps), err
}

func (repo *progressRepository) CountCompleted(ctx context.Context, uid int64, lessonIds []int64) (int64, error) {
	if len(lessonIds) == 0 {
		return 0, nil
	}
	return repo.dao.CountCompleted(ctx, uid, lessonIds)
}

func (repo *progressRepository) RecentCompleted(ctx context.Context, uid, enrollmentId int64, limit int) ([]domain.LessonProgress, error) {
	ps, err := repo.dao.RecentCompleted(ctx, uid, enrollmentId, limit)
	return repo.toProgresses(ps), err
}

func (repo *progressRepository) LatestAccessed(ctx context.Context, uid int64) (domain.LessonProgress, error) {
	p, err := repo.dao.LatestAccessed(ctx, uid)
	return repo.toProgress(p), err
}

func (repo *progressRepository) CountCompletedSince(ctx context.Context, uid int64, since int64) (int64, error) {
	return repo.dao.CountCompletedSince(ctx, uid, since)
}

func (repo *progressRepository) toEnrollmentEntity(e domain.Enrollment) dao.Enrollment {
	return dao.Enrollment{
		Id:                   e.Id,
		Uid:                  e.Uid,
		CourseId:             e.CourseId,
		Status:               e.Status,
		CurrentTrackId:       e.CurrentTrackId,
		CurrentLessonId:      e.CurrentLessonId,
		CompletionPercentage: e.CompletionPercentage,
		LastAccessedAt:       e.LastAccessedAt,
		CompletedAt:          e.CompletedAt,
	}
}

func (repo *progressRepository) toEnrollment(e dao.Enrollment) domain.Enrollment {
	return domain.Enrollment{
		Id:                   e.Id,
		Uid:                  e.Uid,
		CourseId:             e.CourseId,
		Status:               e.Status,
		CurrentTrackId:       e.CurrentTrackId,
		CurrentLessonId:      e.CurrentLessonId,
		CompletionPercentage: e.CompletionPercentage,
		LastAccessedAt:       e.LastAccessedAt,
		CompletedAt:          e.CompletedAt,
		Ctime:                e.Ctime,
	}
}

func (repo *progressRepository) toProgresses(ps []dao.LessonProgress) []domain.LessonProgress {
	return slice.Map(ps, func(idx int, src dao.LessonProgress) domain.LessonProgress {
		return repo.toProgress(src)
	})
}

func (repo *progressRepository) toProgress(p dao.LessonProgress) domain.LessonProgress {
	return domain.LessonProgress{
		Id:                 p.Id,
		Uid:                p.Uid,
		LessonId:           p.LessonId,
		EnrollmentId:       p.EnrollmentId,
		Status:             p.Status,
		ProgressPercentage: p.ProgressPercentage,
		LastSlideIndex:     p.LastSlideIndex,
		TimeSpentSeconds:   p.TimeSpentSeconds,
		XpEarned:           p.XpEarned,
		CompletedAt:        p.CompletedAt,
		RewardedAt:         p.RewardedAt,
		LastAccessedAt:     p.LastAccessedAt,
	}
}
