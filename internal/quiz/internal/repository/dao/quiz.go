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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type QuizDAO interface {
	FindById(ctx context.Context, id int64) (Quiz, error)
	FindByLessonId(ctx context.Context, lessonId int64) (Quiz, error)
	// CreateIfAbsent 按照 lesson_id 去重，返回真正插入的条数
	CreateIfAbsent(ctx context.Context, quizzes []Quiz) (int64, error)

	// CreateAttempt 在事务里面计算作答次数，返回插入之后的数据
	CreateAttempt(ctx context.Context, a Attempt) (Attempt, error)
	AttemptStats(ctx context.Context, uid, quizId int64) (AttemptStats, error)
}

type GORMQuizDAO struct {
	db *egorm.Component
}

func NewGORMQuizDAO(db *egorm.Component) QuizDAO {
	return &GORMQuizDAO{db: db}
}

func (dao *GORMQuizDAO) FindById(ctx context.Context, id int64) (Quiz, error) {
	var res Quiz
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMQuizDAO) FindByLessonId(ctx context.Context, lessonId int64) (Quiz, error) {
	var res Quiz
	err := dao.db.WithContext(ctx).Where("lesson_id = ?", lessonId).First(&res).Error
	return res, err
}

func (dao *GORMQuizDAO) CreateIfAbsent(ctx context.Context, quizzes []Quiz) (int64, error) {
	if len(quizzes) == 0 {
		return 0, nil
	}
	now := time.Now().UnixMilli()
	for i := range quizzes {
		quizzes[i].Ctime, quizzes[i].Utime = now, now
	}
	db := dao.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&quizzes)
	return db.RowsAffected, db.Error
}

func (dao *GORMQuizDAO) CreateAttempt(ctx context.Context, a Attempt) (Attempt, error) {
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		err := tx.Model(&Attempt{}).Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("uid = ? AND quiz_id = ?", a.Uid, a.QuizId).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		now := time.Now().UnixMilli()
		a.AttemptNumber = cnt + 1
		a.Ctime, a.Utime = now, now
		return tx.Create(&a).Error
	})
	return a, err
}

func (dao *GORMQuizDAO) AttemptStats(ctx context.Context, uid, quizId int64) (AttemptStats, error) {
	var res AttemptStats
	err := dao.db.WithContext(ctx).Model(&Attempt{}).
		Select("COUNT(*) AS cnt, COALESCE(MAX(score), 0) AS best_score, COALESCE(MAX(ctime), 0) AS last_ctime").
		Where("uid = ? AND quiz_id = ?", uid, quizId).
		Scan(&res).Error
	return res, err
}
