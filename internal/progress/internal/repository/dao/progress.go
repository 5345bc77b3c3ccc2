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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicate      = errors.New("已经报名过这门课程")
)

type ProgressDAO interface {
	CreateEnrollment(ctx context.Context, e Enrollment) (int64, error)
	FindEnrollment(ctx context.Context, uid, courseId int64) (Enrollment, error)
	ListEnrollments(ctx context.Context, uid int64) ([]Enrollment, error)
	LatestCompletedEnrollment(ctx context.Context, uid int64) (Enrollment, error)
	UpdateEnrollment(ctx context.Context, e Enrollment) error

	// UpsertProgress 按照 uid + lesson_id 插入或者更新
	UpsertProgress(ctx context.Context, p LessonProgress) error
	FindProgress(ctx context.Context, uid, lessonId int64) (LessonProgress, error)
	// ClaimReward 已经完成并且没有发放过奖励的课时，只有一个调用者能够拿到 true
	ClaimReward(ctx context.Context, uid, lessonId int64) (bool, error)
	ReleaseReward(ctx context.Context, uid, lessonId int64) error
	ProgressByLessonIds(ctx context.Context, uid int64, lessonIds []int64) ([]LessonProgress, error)
	CountCompleted(ctx context.Context, uid int64, lessonIds []int64) (int64, error)
	// RecentCompleted enrollmentId 为 0 的时候不限制课程
	RecentCompleted(ctx context.Context, uid, enrollmentId int64, limit int) ([]LessonProgress, error)
	LatestAccessed(ctx context.Context, uid int64) (LessonProgress, error)
	CountCompletedSince(ctx context.Context, uid int64, since int64) (int64, error)
}

type GORMProgressDAO struct {
	db *egorm.Component
}

func NewGORMProgressDAO(db *egorm.Component) ProgressDAO {
	return &GORMProgressDAO{db: db}
}

func (dao *GORMProgressDAO) CreateEnrollment(ctx context.Context, e Enrollment) (int64, error) {
	now := time.Now().UnixMilli()
	e.Ctime, e.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&e).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicate
		}
	}
	return e.Id, err
}

func (dao *GORMProgressDAO) FindEnrollment(ctx context.Context, uid, courseId int64) (Enrollment, error) {
	var res Enrollment
	err := dao.db.WithContext(ctx).
		Where("uid = ? AND course_id = ?", uid, courseId).First(&res).Error
	return res, err
}

func (dao *GORMProgressDAO) ListEnrollments(ctx context.Context, uid int64) ([]Enrollment, error) {
	var res []Enrollment
	err := dao.db.WithContext(ctx).Where("uid = ?", uid).
		Order("last_accessed_at DESC").Order("id DESC").Find(&res).Error
	return res, err
}

func (dao *GORMProgressDAO) LatestCompletedEnrollment(ctx context.Context, uid int64) (Enrollment, error) {
	var res Enrollment
	err := dao.db.WithContext(ctx).
		Where("uid = ? AND status = ?", uid, "completed").
		Order("completed_at DESC").First(&res).Error
	return res, err
}

func (dao *GORMProgressDAO) UpdateEnrollment(ctx context.Context, e Enrollment) error {
	return dao.db.WithContext(ctx).Model(&Enrollment{}).Where("id = ?", e.Id).
		Updates(map[string]any{
			"status":                e.Status,
			"current_track_id":      e.CurrentTrackId,
			"current_lesson_id":     e.CurrentLessonId,
			"completion_percentage": e.CompletionPercentage,
			"last_accessed_at":      e.LastAccessedAt,
			"completed_at":          e.CompletedAt,
			"utime":                 time.Now().UnixMilli(),
		}).Error
}

func (dao *GORMProgressDAO) UpsertProgress(ctx context.Context, p LessonProgress) error {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	if p.LastAccessedAt == 0 {
		p.LastAccessedAt = now
	}
	return dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "progress_percentage", "last_slide_index", "time_spent_seconds",
			"xp_earned", "completed_at", "last_accessed_at", "utime",
		}),
	}).Create(&p).Error
}

func (dao *GORMProgressDAO) FindProgress(ctx context.Context, uid, lessonId int64) (LessonProgress, error) {
	var res LessonProgress
	err := dao.db.WithContext(ctx).
		Where("uid = ? AND lesson_id = ?", uid, lessonId).First(&res).Error
	return res, err
}

func (dao *GORMProgressDAO) ClaimReward(ctx context.Context, uid, lessonId int64) (bool, error) {
	now := time.Now().UnixMilli()
	res := dao.db.WithContext(ctx).Model(&LessonProgress{}).
		Where("uid = ? AND lesson_id = ? AND status = ? AND rewarded_at = 0", uid, lessonId, "completed").
		Updates(map[string]any{
			"rewarded_at": now,
			"utime":       now,
		})
	return res.RowsAffected == 1, res.Error
}

func (dao *GORMProgressDAO) ReleaseReward(ctx context.Context, uid, lessonId int64) error {
	return dao.db.WithContext(ctx).Model(&LessonProgress{}).
		Where("uid = ? AND lesson_id = ?", uid, lessonId).
		Updates(map[string]any{
			"rewarded_at": 0,
			"utime":       time.Now().UnixMilli(),
		}).Error
}

func (dao *GORMProgressDAO) ProgressByLessonIds(ctx context.Context, uid int64, lessonIds []int64) ([]LessonProgress, error) {
	var res []LessonProgress
	err := dao.db.WithContext(ctx).
		Where("uid = ? AND lesson_id IN ?", uid, lessonIds).Find(&res).Error
	return res, err
}

func (dao *GORMProgressDAO) CountCompleted(ctx context.Context, uid int64, lessonIds []int64) (int64, error) {
	var res int64
	err := dao.db.WithContext(ctx).Model(&LessonProgress{}).
		Where("uid = ? AND status = ? AND lesson_id IN ?", uid, "completed", lessonIds).
		Count(&res).Error
	return res, err
}

func (dao *GORMProgressDAO) RecentCompleted(ctx context.Context, uid, enrollmentId int64, limit int) ([]LessonProgress, error) {
	var res []LessonProgress
	db := dao.db.WithContext(ctx).Where("uid = ? AND status = ?", uid, "completed")
	if enrollmentId > 0 {
		db = db.Where("enrollment_id = ?", enrollmentId)
	}
	err := db.Order("completed_at DESC").Order("id DESC").Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMProgressDAO) LatestAccessed(ctx context.Context, uid int64) (LessonProgress, error) {
	var res LessonProgress
	err := dao.db.WithContext(ctx).Where("uid = ?", uid).
		Order("last_accessed_at DESC").First(&res).Error
	return res, err
}

func (dao *GORMProgressDAO) CountCompletedSince(ctx context.Context, uid int64, since int64) (int64, error) {
	var res int64
	err := dao.db.WithContext(ctx).Model(&LessonProgress{}).
		Where("uid = ? AND status = ? AND completed_at >= ?", uid, "completed", since).
		Count(&res).Error
	return res, err
}
