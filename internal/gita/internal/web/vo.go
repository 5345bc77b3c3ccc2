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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hug/internal/gita/internal/domain"
)

type ChapterReq struct {
	ChapterNumber int `json:"chapter_number"`
}

type ShlokaReq struct {
	ShlokaId int64  `json:"shloka_id"`
	Language string `json:"language"`
}

type LevelReq struct {
	LevelNumber int `json:"level_number"`
}

type ProgressReq struct {
	ShlokaId            int64  `json:"shloka_id"`
	Status              string `json:"status"`
	TimeSpentSeconds    int64  `json:"time_spent_seconds"`
	HasListenedSanskrit *bool  `json:"has_listened_sanskrit"`
	HasListenedMeaning  *bool  `json:"has_listened_meaning"`
	HasReadExplanation  *bool  `json:"has_read_explanation"`
	Reflection          string `json:"reflection"`
}

type Chapter struct {
	Id            int64    `json:"chapter_id"`
	ChapterNumber int      `json:"chapter_number"`
	ChapterName   string   `json:"chapter_name"`
	NameSanskrit  string   `json:"chapter_name_sanskrit"`
	Description   string   `json:"description,omitempty"`
	TotalShlokas  int      `json:"total_shlokas"`
	LevelNumber   int      `json:"level_number,omitempty"`
	DisplayOrder  int      `json:"display_order,omitempty"`
	Shlokas       []Shloka `json:"shlokas,omitempty"`
}

func newChapter(c domain.Chapter) Chapter {
	return Chapter{
		Id:            c.Id,
		ChapterNumber: c.Number,
		ChapterName:   c.Name,
		NameSanskrit:  c.NameSanskrit,
		Description:   c.Description,
		TotalShlokas:  c.TotalShlokas,
		LevelNumber:   c.Level,
		DisplayOrder:  c.DisplayOrder,
	}
}

// newChapterDetail 章节详情里面总是返回 shlokas 数组
func newChapterDetail(c domain.Chapter) ChapterDetail {
	return ChapterDetail{
		Chapter: newChapter(c),
		Shlokas: slice.Map(c.Shlokas, func(idx int, src domain.Shloka) Shloka {
			return newShloka(src)
		}),
	}
}

type ChapterDetail struct {
	Chapter
	Shlokas []Shloka `json:"shlokas"`
}

type ChapterList struct {
	Chapters []Chapter `json:"chapters"`
}

type Shloka struct {
	Id              int64    `json:"shloka_id"`
	ShlokaNumber    int      `json:"shloka_number"`
	SanskritText    string   `json:"sanskrit_text"`
	Transliteration string   `json:"transliteration"`
	XpReward        int64    `json:"xp_reward"`
	Chapter         *Chapter `json:"chapter,omitempty"`
}

func newShloka(s domain.Shloka) Shloka {
	return Shloka{
		Id:              s.Id,
		ShlokaNumber:    s.Number,
		SanskritText:    s.SanskritText,
		Transliteration: s.Transliteration,
		XpReward:        s.XpReward,
	}
}

type ShlokaDetail struct {
	Shloka
	Chapter      Chapter       `json:"chapter"`
	Translations []Translation `json:"translations"`
	AudioFiles   []Audio       `json:"audio_files"`
}

func newShlokaDetail(s domain.Shloka) ShlokaDetail {
	return ShlokaDetail{
		Shloka:  newShloka(s),
		Chapter: newChapter(s.Chapter),
		Translations: slice.Map(s.Translations, func(idx int, src domain.Translation) Translation {
			return Translation{
				Language:     src.Language,
				Meaning:      src.Meaning,
				Explanation:  src.Explanation,
				WhyItMatters: src.WhyItMatters,
			}
		}),
		AudioFiles: slice.Map(s.Audios, func(idx int, src domain.Audio) Audio {
			return Audio{
				Language:        src.Language,
				AudioType:       src.AudioType,
				Url:             src.Url,
				DurationSeconds: src.DurationSeconds,
			}
		}),
	}
}

type Translation struct {
	Language     string `json:"language"`
	Meaning      string `json:"meaning"`
	Explanation  string `json:"explanation"`
	WhyItMatters string `json:"why_it_matters"`
}

type Audio struct {
	Language        string `json:"language"`
	AudioType       string `json:"audio_type"`
	Url             string `json:"audio_url"`
	DurationSeconds int    `json:"duration_seconds"`
}

type Level struct {
	LevelNumber   int       `json:"level_number"`
	Name          string    `json:"name"`
	Subtitle      string    `json:"subtitle"`
	BadgeSlug     string    `json:"badge_slug"`
	TotalShlokas  int       `json:"total_shlokas"`
	TotalChapters int       `json:"total_chapters"`
	Chapters      []Chapter `json:"chapters"`
}

func newLevel(l domain.Level, withShlokas bool) Level {
	return Level{
		LevelNumber:   l.Number,
		Name:          l.Name,
		Subtitle:      l.Subtitle,
		BadgeSlug:     l.BadgeSlug,
		TotalShlokas:  l.TotalShlokas(),
		TotalChapters: len(l.Chapters),
		Chapters: slice.Map(l.Chapters, func(idx int, src domain.Chapter) Chapter {
			c := newChapter(src)
			if withShlokas {
				c.Shlokas = slice.Map(src.Shlokas, func(idx int, src domain.Shloka) Shloka {
					return newShloka(src)
				})
			}
			return c
		}),
	}
}

type LevelList struct {
	Levels []Level `json:"levels"`
}

type ProgressStats struct {
	TotalShlokas  int   `json:"total_shlokas"`
	Completed     int   `json:"completed"`
	InProgress    int   `json:"in_progress"`
	NotStarted    int   `json:"not_started"`
	TotalXpEarned int64 `json:"total_xp_earned"`
}

type Progress struct {
	ShlokaId            int64   `json:"shloka_id"`
	Status              string  `json:"status"`
	TimeSpentSeconds    int64   `json:"time_spent_seconds"`
	HasListenedSanskrit bool    `json:"has_listened_sanskrit"`
	HasListenedMeaning  bool    `json:"has_listened_meaning"`
	HasReadExplanation  bool    `json:"has_read_explanation"`
	Reflection          string  `json:"reflection,omitempty"`
	XpEarned            int64   `json:"xp_earned"`
	CompletedAt         int64   `json:"completed_at,omitempty"`
	LastAccessedAt      int64   `json:"last_accessed_at"`
	Shloka              *Shloka `json:"shloka,omitempty"`
}

func newProgress(p domain.ShlokaProgress) Progress {
	res := Progress{
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
	if p.Shloka.Id > 0 {
		sh := newShloka(p.Shloka)
		if p.Shloka.Chapter.Id > 0 {
			c := newChapter(p.Shloka.Chapter)
			sh.Chapter = &c
		}
		res.Shloka = &sh
	}
	return res
}

type ProgressList struct {
	Stats    ProgressStats `json:"stats"`
	Progress []Progress    `json:"progress"`
}

type ProgressResult struct {
	Progress
	Rewarded bool     `json:"rewarded"`
	Badges   []string `json:"badges_earned"`
}
