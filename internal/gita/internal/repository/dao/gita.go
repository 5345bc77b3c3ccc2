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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type GitaDAO interface {
	Chapters(ctx context.Context) ([]Chapter, error)
	ChaptersByLevel(ctx context.Context, level int) ([]Chapter, error)
	ChapterByNumber(ctx context.Context, number int) (Chapter, error)
	ChaptersByIds(ctx context.Context, ids []int64) ([]Chapter, error)
	ShlokasByChapters(ctx context.Context, chapterIds []int64) ([]Shloka, error)
	Shloka(ctx context.Context, id int64) (Shloka, error)
	ShlokasByIds(ctx context.Context, ids []int64) ([]Shloka, error)
	Translations(ctx context.Context, shlokaId int64, language string) ([]Translation, error)
	Audios(ctx context.Context, shlokaId int64, language string) ([]Audio, error)

	ListProgress(ctx context.Context, uid int64) ([]ShlokaProgress, error)
	FindProgress(ctx context.Context, uid, shlokaId int64) (ShlokaProgress, error)
	// SaveProgress 已经完成过的记录保留第一次的完成时间，first 表示这一次是第一次完成
	SaveProgress(ctx context.Context, p ShlokaProgress) (res ShlokaProgress, first bool, err error)
	// CountCompletedByLevel 这一级里面已经完成的偈颂数量
	CountCompletedByLevel(ctx context.Context, uid int64, level int) (int64, error)
	CountCompleted(ctx context.Context, uid int64) (int64, error)

	CountChapters(ctx context.Context) (int64, error)
	Seed(ctx context.Context, chapters []Chapter, shlokas []SeedShloka) error
}

type GORMGitaDAO struct {
	db *egorm.Component
}

func NewGORMGitaDAO(db *egorm.Component) GitaDAO {
	return &GORMGitaDAO{db: db}
}

func (dao *GORMGitaDAO) Chapters(ctx context.Context) ([]Chapter, error) {
	var res []Chapter
	err := dao.db.WithContext(ctx).Where("is_active = ?", true).
		Order("display_order ASC").Find(&res).Error
	return res, err
}

func (dao *GORMGitaDAO) ChaptersByLevel(ctx context.Context, level int) ([]Chapter, error) {
	var res []Chapter
	err := dao.db.WithContext(ctx).Where("level = ? AND is_active = ?", level, true).
		Order("display_order ASC").Find(&res).Error
	return res, err
}

func (dao *GORMGitaDAO) ChapterByNumber(ctx context.Context, number int) (Chapter, error) {
	var res Chapter
	err := dao.db.WithContext(ctx).Where("number = ? AND is_active = ?", number, true).
		First(&res).Error
	return res, err
}

func (dao *GORMGitaDAO) ChaptersByIds(ctx context.Context, ids []int64) ([]Chapter, error) {
	var res []Chapter
	if len(ids) == 0 {
		return res, nil
	}
	err := dao.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (dao *GORMGitaDAO) ShlokasByChapters(ctx context.Context, chapterIds []int64) ([]Shloka, error) {
	var res []Shloka
	if len(chapterIds) == 0 {
		return res, nil
	}
	err := dao.db.WithContext(ctx).
		Where("chapter_id IN ? AND is_active = ?", chapterIds, true).
		Order("chapter_id ASC").Order("display_order ASC").
		Find(&res).Error
	return res, err
}

func (dao *GORMGitaDAO) Shloka(ctx context.Context, id int64) (Shloka, error) {
	var res Shloka
	err := dao.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&res).Error
	return res, err
}

func (dao *GORMGitaDAO) ShlokasByIds(ctx context.Context, ids []int64) ([]Shloka, error) {
	var res []Shloka
	if len(ids) == 0 {
		return res, nil
	}
	err := dao.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (dao *GORMGitaDAO) Translations(ctx context.Context, shlokaId int64, language string) ([]Translation, error) {
	var res []Translation
	err := dao.db.WithContext(ctx).
		Where("shloka_id = ? AND language = ? AND is_active = ?", shlokaId, language, true).
		Find(&res).Error
	return res, err
}

func (dao *GORMGitaDAO) Audios(ctx context.Context, shlokaId int64, language string) ([]Audio, error) {
	var res []Audio
	err := dao.db.WithContext(ctx).
		Where("shloka_id = ? AND language = ? AND is_active = ?", shlokaId, language, true).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMGitaDAO) ListProgress(ctx context.Context, uid int64) ([]ShlokaProgress, error) {
	var res []ShlokaProgress
	err := dao.db.WithContext(ctx).Where("uid = ?", uid).
		Order("last_accessed_at DESC").Order("id DESC").
		Find(&res).Error
	return res, err
}

func (dao *GORMGitaDAO) FindProgress(ctx context.Context, uid, shlokaId int64) (ShlokaProgress, error) {
	var res ShlokaProgress
	err := dao.db.WithContext(ctx).Where("uid = ? AND shloka_id = ?", uid, shlokaId).First(&res).Error
	return res, err
}

func (dao *GORMGitaDAO) SaveProgress(ctx context.Context, p ShlokaProgress) (ShlokaProgress, bool, error) {
	first := false
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		var old ShlokaProgress
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("uid = ? AND shloka_id = ?", p.Uid, p.ShlokaId).
			First(&old).Error
		switch err {
		case nil:
			if old.CompletedAt > 0 {
				p.CompletedAt = old.CompletedAt
			}
			first = old.CompletedAt == 0 && p.CompletedAt > 0
			p.Id, p.Ctime, p.Utime = old.Id, old.Ctime, now
			return tx.Save(&p).Error
		case gorm.ErrRecordNotFound:
			first = p.CompletedAt > 0
			p.Id, p.Ctime, p.Utime = 0, now, now
			return tx.Create(&p).Error
		default:
			return err
		}
	})
	return p, first, err
}

func (dao *GORMGitaDAO) CountCompletedByLevel(ctx context.Context, uid int64, level int) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Table("user_shloka_progress AS p").
		Joins("JOIN gita_shlokas AS s ON s.id = p.shloka_id").
		Joins("JOIN gita_chapters AS c ON c.id = s.chapter_id").
		Where("p.uid = ? AND p.status = ? AND c.level = ?", uid, "completed", level).
		Count(&cnt).Error
	return cnt, err
}

func (dao *GORMGitaDAO) CountCompleted(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&ShlokaProgress{}).
		Where("uid = ? AND status = ?", uid, "completed").
		Count(&cnt).Error
	return cnt, err
}

func (dao *GORMGitaDAO) CountChapters(ctx context.Context) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&Chapter{}).Count(&cnt).Error
	return cnt, err
}

func (dao *GORMGitaDAO) Seed(ctx context.Context, chapters []Chapter, shlokas []SeedShloka) error {
	now := time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range chapters {
			chapters[i].Ctime, chapters[i].Utime = now, now
		}
		err := tx.Create(&chapters).Error
		if err != nil {
			return err
		}
		ids := make(map[int]int64, len(chapters))
		for _, c := range chapters {
			ids[c.Number] = c.Id
		}
		for _, ss := range shlokas {
			sh := ss.Shloka
			sh.ChapterId = ids[ss.ChapterNumber]
			sh.Ctime, sh.Utime = now, now
			if err = tx.Create(&sh).Error; err != nil {
				return err
			}
			trs := slice.Map(ss.Translations, func(idx int, src Translation) Translation {
				src.ShlokaId, src.Ctime, src.Utime = sh.Id, now, now
				return src
			})
			if len(trs) > 0 {
				if err = tx.Create(&trs).Error; err != nil {
					return err
				}
			}
			audios := slice.Map(ss.Audios, func(idx int, src Audio) Audio {
				src.ShlokaId, src.Ctime, src.Utime = sh.Id, now, now
				return src
			})
			if len(audios) > 0 {
				if err = tx.Create(&audios).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
