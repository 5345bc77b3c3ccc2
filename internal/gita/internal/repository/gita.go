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
	"github.com/ecodeclub/hug/internal/gita/internal/domain"
	"github.com/ecodeclub/hug/internal/gita/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./gita.go -package=repomocks -destination=./mocks/gita.mock.go GitaRepository
type GitaRepository interface {
	Chapters(ctx context.Context) ([]domain.Chapter, error)
	ChaptersByLevel(ctx context.Context, level int) ([]domain.Chapter, error)
	// Chapter 带上偈颂
	Chapter(ctx context.Context, number int) (domain.Chapter, error)
	// Shloka 带上章节，以及 language 对应的翻译和音频
	Shloka(ctx context.Context, id int64, language string) (domain.Shloka, error)
	// ShlokasByChapters 按照 chapter id 分组
	ShlokasByChapters(ctx context.Context, chapterIds []int64) (map[int64][]domain.Shloka, error)

	Progress(ctx context.Context, uid int64) ([]domain.ShlokaProgress, error)
	FindProgress(ctx context.Context, uid, shlokaId int64) (domain.ShlokaProgress, error)
	SaveProgress(ctx context.Context, p domain.ShlokaProgress) (domain.ShlokaProgress, bool, error)
	CountCompletedByLevel(ctx context.Context, uid int64, level int) (int64, error)
	CountCompleted(ctx context.Context, uid int64) (int64, error)

	IsEmpty(ctx context.Context) (bool, error)
	Seed(ctx context.Context, chapters []domain.Chapter) error
}

type gitaRepository struct {
	dao dao.GitaDAO
}

func NewGitaRepository(d dao.GitaDAO) GitaRepository {
	return &gitaRepository{dao: d}
}

func (repo *gitaRepository) Chapters(ctx context.Context) ([]domain.Chapter, error) {
	cs, err := repo.dao.Chapters(ctx)
	return slice.Map(cs, func(idx int, src dao.Chapter) domain.Chapter {
		return repo.toChapter(src)
	}), err
}

func (repo *gitaRepository) ChaptersByLevel(ctx context.Context, level int) ([]domain.Chapter, error) {
	cs, err := repo.dao.ChaptersByLevel(ctx, level)
	return slice.Map(cs, func(idx int, src dao.Chapter) domain.Chapter {
		return repo.toChapter(src)
	}), err
}

func (repo *gitaRepository) Chapter(ctx context.Context, number int) (domain.Chapter, error) {
	c, err := repo.dao.ChapterByNumber(ctx, number)
	if err != nil {
		return domain.Chapter{}, err
	}
	shs, err := repo.dao.ShlokasByChapters(ctx, []int64{c.Id})
	if err != nil {
		return domain.Chapter{}, err
	}
	res := repo.toChapter(c)
	res.Shlokas = slice.Map(shs, func(idx int, src dao.Shloka) domain.Shloka {
		return repo.toShloka(src)
	})
	return res, nil
}

func (repo *gitaRepository) Shloka(ctx context.Context, id int64, language string) (domain.Shloka, error) {
	sh, err := repo.dao.Shloka(ctx, id)
	if err != nil {
		return domain.Shloka{}, err
	}
	cs, err := repo.dao.ChaptersByIds(ctx, []int64{sh.ChapterId})
	if err != nil {
		return domain.Shloka{}, err
	}
	trs, err := repo.dao.Translations(ctx, id, language)
	if err != nil {
		return domain.Shloka{}, err
	}
	audios, err := repo.dao.Audios(ctx, id, language)
	if err != nil {
		return domain.Shloka{}, err
	}
	res := repo.toShloka(sh)
	if len(cs) > 0 {
		res.Chapter = repo.toChapter(cs[0])
	}
	res.Translations = slice.Map(trs, func(idx int, src dao.Translation) domain.Translation {
		return domain.Translation{
			Id:           src.Id,
			ShlokaId:     src.ShlokaId,
			Language:     src.Language,
			Meaning:      src.Meaning,
			Explanation:  src.Explanation,
			WhyItMatters: src.WhyItMatters,
		}
	})
	res.Audios = slice.Map(audios, func(idx int, src dao.Audio) domain.Audio {
		return domain.Audio{
			Id:              src.Id,
			ShlokaId:        src.ShlokaId,
			Language:        src.Language,
			AudioType:       src.AudioType,
			Url:             src.Url,
			DurationSeconds: src.DurationSeconds,
		}
	})
	return res, nil
}

func (repo *gitaRepository) ShlokasByChapters(ctx context.Context, chapterIds []int64) (map[int64][]domain.Shloka, error) {
	shs, err := repo.dao.ShlokasByChapters(ctx, chapterIds)
	if err != nil {
		return nil, err
	}
	res := make(map[int64][]domain.Shloka, len(chapterIds))
	for _, sh := range shs {
		res[sh.ChapterId] = append(res[sh.ChapterId], repo.toShloka(sh))
	}
	return res, nil
}

func (repo *gitaRepository) Progress(ctx context.Context, uid int64) ([]domain.ShlokaProgress, error) {
	ps, err := repo.dao.ListProgress(ctx, uid)
	if err != nil || len(ps) == 0 {
		return []domain.ShlokaProgress{}, err
	}
	shs, err := repo.dao.ShlokasByIds(ctx, slice.Map(ps, func(idx int, src dao.ShlokaProgress) int64 {
		return src.ShlokaId
	}))
	if err != nil {
		return nil, err
	}
	cs, err := repo.dao.ChaptersByIds(ctx, slice.Map(shs, func(idx int, src dao.Shloka) int64 {
		return src.ChapterId
	}))
	if err != nil {
		return nil, err
	}
	chapters := make(map[int64]domain.Chapter, len(cs))
	for _, c := range cs {
		chapters[c.Id] = repo.toChapter(c)
	}
	shlokas := make(map[int64]domain.Shloka, len(shs))
	for _, sh := range shs {
		s := repo.toShloka(sh)
		s.Chapter = chapters[sh.ChapterId]
		shlokas[sh.Id] = s
	}
	return slice.Map(ps, func(idx int, src dao.ShlokaProgress) domain.ShlokaProgress {
		p := repo.toProgress(src)
		p.Shloka = shlokas[src.ShlokaId]
		return p
	}), nil
}

func (repo *gitaRepository) FindProgress(ctx context.Context, uid, shlokaId int64) (domain.ShlokaProgress, error) {
	p, err := repo.dao.FindProgress(ctx, uid, shlokaId)
	return repo.toProgress(p), err
}

func (repo *gitaRepository) SaveProgress(ctx context.Context, p domain.ShlokaProgress) (domain.ShlokaProgress, bool, error) {
	res, first, err := repo.dao.SaveProgress(ctx, dao.ShlokaProgress{
		Uid:                 p.Uid,
		ShlokaId:            p.ShlokaId,
		Status:              p.Status,
		TimeSpentSeconds:    p.TimeSpentSeconds,
		HasListenedSanskrit: p.HasListenedSanskrit,
		HasListenedMeaning:  p.HasListenedMeaning,
		HasReadExplanation:  p.HasReadExplanation,
		Reflection:          p.Reflection,
		XpEarned:            p.XpEarned,
		CompletedAt:         p.CompletedAt,
		LastAccessedAt:      p.LastAccessedAt,
	})
	return repo.toProgress(res), first, err
}

func (repo *gitaRepository) CountCompletedByLevel(ctx context.Context, uid int64, level int) (int64, error) {
	return repo.dao.CountCompletedByLevel(ctx, uid, level)
}

func (repo *gitaRepository) CountCompleted(ctx context.Context, uid int64) (int64, error) {
	return repo.dao.CountCompleted(ctx, uid)
}

func (repo *gitaRepository) IsEmpty(ctx context.Context) (bool, error) {
	cnt, err := repo.dao.CountChapters(ctx)
	return cnt == 0, err
}

func (repo *gitaRepository) Seed(ctx context.Context, chapters []domain.Chapter) error {
	var shlokas []dao.SeedShloka
	for _, c := range chapters {
		for _, sh := range c.Shlokas {
			shlokas = append(shlokas, dao.SeedShloka{
				ChapterNumber: c.Number,
				Shloka: dao.Shloka{
					Number:          sh.Number,
					SanskritText:    sh.SanskritText,
					Transliteration: sh.Transliteration,
					XpReward:        sh.XpReward,
					DisplayOrder:    sh.DisplayOrder,
					IsActive:        true,
				},
				Translations: slice.Map(sh.Translations, func(idx int, src domain.Translation) dao.Translation {
					return dao.Translation{
						Language:     src.Language,
						Meaning:      src.Meaning,
						Explanation:  src.Explanation,
						WhyItMatters: src.WhyItMatters,
						IsActive:     true,
					}
				}),
				Audios: slice.Map(sh.Audios, func(idx int, src domain.Audio) dao.Audio {
					return dao.Audio{
						Language:        src.Language,
						AudioType:       src.AudioType,
						Url:             src.Url,
						DurationSeconds: src.DurationSeconds,
						IsActive:        true,
					}
				}),
			})
		}
	}
	return repo.dao.Seed(ctx, slice.Map(chapters, func(idx int, src domain.Chapter) dao.Chapter {
		return dao.Chapter{
			Number:       src.Number,
			Name:         src.Name,
			NameSanskrit: src.NameSanskrit,
			Description:  src.Description,
			TotalShlokas: src.TotalShlokas,
			Level:        src.Level,
			DisplayOrder: src.DisplayOrder,
			IsActive:     true,
		}
	}), shlokas)
}

func (repo *gitaRepository) toChapter(c dao.Chapter) domain.Chapter {
	return domain.Chapter{
		Id:           c.Id,
		Number:       c.Number,
		Name:         c.Name,
		NameSanskrit: c.NameSanskrit,
		Description:  c.Description,
		TotalShlokas: c.TotalShlokas,
		Level:        c.Level,
		DisplayOrder: c.DisplayOrder,
	}
}

func (repo *gitaRepository) toShloka(s dao.Shloka) domain.Shloka {
	return domain.Shloka{
		Id:              s.Id,
		ChapterId:       s.ChapterId,
		Number:          s.Number,
		SanskritText:    s.SanskritText,
		Transliteration: s.Transliteration,
		XpReward:        s.XpReward,
		DisplayOrder:    s.DisplayOrder,
	}
}

func (repo *gitaRepository) toProgress(p dao.ShlokaProgress) domain.ShlokaProgress {
	return domain.ShlokaProgress{
		Id:                  p.Id,
		Uid:                 p.Uid,
		ShlokaId:            p.ShlokaId,
		Status:              p.Status,
		TimeSpentSeconds:    p.TimeSpentSeconds,
		HasListenedSanskrit: p.HasListenedSanskrit,
		HasListenedMeaning:  p.HasListenedMeaning,
		HasReadExplanation:  p.HasReadExplanation,
		Reflection:          p.Reflection,
		XpEarned:            p.XpEarned,
		CompletedAt:         p.CompletedAt,
		LastAccessedAt:      p.LastAccessedAt,
	}
}
