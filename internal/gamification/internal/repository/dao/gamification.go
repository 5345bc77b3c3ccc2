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
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type GamificationDAO interface {
	FindMetrics(ctx context.Context, uid int64) (Metrics, error)
	// EnsureMetrics 没有就创建，第二个返回值表示是否是新创建的
	EnsureMetrics(ctx context.Context, uid int64) (Metrics, bool, error)
	// ApplyReward 返回修改前和修改后的数据
	ApplyReward(ctx context.Context, r RewardRecord) (Metrics, Metrics, error)

	TopMetrics(ctx context.Context, column string, limit int) ([]Metrics, error)
	CountHigher(ctx context.Context, column string, score int64) (int64, error)

	UpsertBadges(ctx context.Context, badges []Badge) error
	ListBadges(ctx context.Context) ([]Badge, error)
	// AwardBadges 返回这一次新获得的徽章
	AwardBadges(ctx context.Context, uid int64, slugs []string) ([]Badge, error)
	UserBadges(ctx context.Context, uid int64, limit int) ([]UserBadge, error)
	FindBadgesByIds(ctx context.Context, ids []int64) ([]Badge, error)
	CountBadgesByUids(ctx context.Context, uids []int64) (map[int64]int64, error)

	StreakDays(ctx context.Context, uid int64, from, to string) ([]StreakDay, error)
}

type GORMGamificationDAO struct {
	db *egorm.Component
}

func NewGORMGamificationDAO(db *egorm.Component) GamificationDAO {
	return &GORMGamificationDAO{db: db}
}

func (dao *GORMGamificationDAO) FindMetrics(ctx context.Context, uid int64) (Metrics, error) {
	var res Metrics
	err := dao.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	return res, err
}

func (dao *GORMGamificationDAO) EnsureMetrics(ctx context.Context, uid int64) (Metrics, bool, error) {
	now := time.Now().UnixMilli()
	var res Metrics
	db := dao.db.WithContext(ctx).Where(Metrics{Uid: uid}).
		Attrs(Metrics{WisdomLevel: 1, Ctime: now, Utime: now}).
		FirstOrCreate(&res)
	return res, db.RowsAffected > 0, db.Error
}

func (dao *GORMGamificationDAO) ApplyReward(ctx context.Context, r RewardRecord) (Metrics, Metrics, error) {
	var before, after Metrics
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		var m Metrics
		err := tx.Where(Metrics{Uid: r.Uid}).
			Attrs(Metrics{WisdomLevel: 1, Ctime: now, Utime: now}).
			FirstOrCreate(&m).Error
		if err != nil {
			return err
		}
		// 锁住这一行，同一个用户的奖励串行执行
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("uid = ?", r.Uid).First(&m).Error
		if err != nil {
			return err
		}
		before = m

		m.TotalXp += r.Xp
		m.TotalKarma += r.Karma
		m.TotalLessonsCompleted += r.Lessons
		m.TotalCoursesCompleted += r.Courses
		m.TotalTimeSpentMinutes += r.Minutes
		m.WisdomLevel = r.WisdomLevel(m.TotalXp)
		m.LastActivityAt = now
		m.Utime = now

		if r.UpdateStreak {
			if err = dao.updateStreak(tx, &m, r, now); err != nil {
				return err
			}
		}

		err = tx.Model(&Metrics{}).Where("id = ?", m.Id).
			Select("TotalXp", "TotalKarma", "WisdomLevel", "CurrentStreak", "LongestStreak",
				"TotalLessonsCompleted", "TotalCoursesCompleted", "TotalTimeSpentMinutes",
				"LastActivityAt", "Utime").
			Updates(&m).Error
		if err != nil {
			return fmt.Errorf("更新学习数据失败: %w", err)
		}
		if len(r.Txs) > 0 {
			for i := range r.Txs {
				r.Txs[i].Ctime, r.Txs[i].Utime = now, now
			}
			if err = tx.Create(&r.Txs).Error; err != nil {
				return fmt.Errorf("创建经验值流水失败: %w", err)
			}
		}
		after = m
		return nil
	})
	return before, after, err
}

func (dao *GORMGamificationDAO) updateStreak(tx *gorm.DB, m *Metrics, r RewardRecord, now int64) error {
	var today StreakDay
	err := tx.Where("uid = ? AND date = ?", r.Uid, r.Today).First(&today).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		err = tx.Create(&StreakDay{
			Uid:              r.Uid,
			Date:             r.Today,
			LessonsCompleted: r.StreakLessons,
			XpEarned:         r.StreakXp,
			TimeSpentMinutes: r.Minutes,
			Ctime:            now,
			Utime:            now,
		}).Error
		if err != nil {
			return err
		}
		var cnt int64
		err = tx.Model(&StreakDay{}).
			Where("uid = ? AND date = ?", r.Uid, r.Yesterday).Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			m.CurrentStreak++
		} else {
			m.CurrentStreak = 1
		}
		m.LongestStreak = max(m.LongestStreak, m.CurrentStreak)
		return nil
	case err != nil:
		return err
	default:
		return tx.Model(&StreakDay{}).Where("id = ?", today.Id).
			Updates(map[string]any{
				"lessons_completed":  gorm.Expr("lessons_completed + ?", r.StreakLessons),
				"xp_earned":          gorm.Expr("xp_earned + ?", r.StreakXp),
				"time_spent_minutes": gorm.Expr("time_spent_minutes + ?", r.Minutes),
				"utime":              now,
			}).Error
	}
}

func (dao *GORMGamificationDAO) TopMetrics(ctx context.Context, column string, limit int) ([]Metrics, error) {
	var res []Metrics
	err := dao.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: true}).
		Order("uid ASC").
		Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMGamificationDAO) CountHigher(ctx context.Context, column string, score int64) (int64, error) {
	var res int64
	err := dao.db.WithContext(ctx).Model(&Metrics{}).
		Where(clause.Gt{Column: clause.Column{Name: column}, Value: score}).
		Count(&res).Error
	return res, err
}

func (dao *GORMGamificationDAO) UpsertBadges(ctx context.Context, badges []Badge) error {
	if len(badges) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	for i := range badges {
		badges[i].IsActive = true
		badges[i].Ctime, badges[i].Utime = now, now
	}
	return dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "icon_url", "category", "xp_reward", "karma_reward", "utime",
		}),
	}).Create(&badges).Error
}

func (dao *GORMGamificationDAO) ListBadges(ctx context.Context) ([]Badge, error) {
	var res []Badge
	err := dao.db.WithContext(ctx).Where("is_active = ?", true).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMGamificationDAO) AwardBadges(ctx context.Context, uid int64, slugs []string) ([]Badge, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	var badges []Badge
	err := dao.db.WithContext(ctx).
		Where("slug IN ? AND is_active = ?", slugs, true).Find(&badges).Error
	if err != nil {
		return nil, err
	}
	now := time.Now().UnixMilli()
	res := make([]Badge, 0, len(badges))
	for _, b := range badges {
		// 已经拿到过的徽章会被唯一索引挡住
		db := dao.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
			Create(&UserBadge{Uid: uid, BadgeId: b.Id, Ctime: now, Utime: now})
		if db.Error != nil {
			return res, db.Error
		}
		if db.RowsAffected > 0 {
			res = append(res, b)
		}
	}
	return res, nil
}

func (dao *GORMGamificationDAO) UserBadges(ctx context.Context, uid int64, limit int) ([]UserBadge, error) {
	var res []UserBadge
	db := dao.db.WithContext(ctx).Where("uid = ?", uid).Order("ctime DESC").Order("id DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	err := db.Find(&res).Error
	return res, err
}

func (dao *GORMGamificationDAO) FindBadgesByIds(ctx context.Context, ids []int64) ([]Badge, error) {
	var res []Badge
	err := dao.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (dao *GORMGamificationDAO) CountBadgesByUids(ctx context.Context, uids []int64) (map[int64]int64, error) {
	var rows []uidCount
	err := dao.db.WithContext(ctx).Model(&UserBadge{}).
		Select("uid, COUNT(*) AS cnt").
		Where("uid IN ?", uids).
		Group("uid").Scan(&rows).Error
	res := make(map[int64]int64, len(rows))
	for _, r := range rows {
		res[r.Uid] = r.Cnt
	}
	return res, err
}

func (dao *GORMGamificationDAO) StreakDays(ctx context.Context, uid int64, from, to string) ([]StreakDay, error) {
	var res []StreakDay
	err := dao.db.WithContext(ctx).
		Where("uid = ? AND date >= ? AND date <= ?", uid, from, to).
		Order("date ASC").Find(&res).Error
	return res, err
}
