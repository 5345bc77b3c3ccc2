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

package domain

import "fmt"

const (
	// TotalShlokas 整部 Gita 的偈颂数量
	TotalShlokas = 700
	MaxLevel     = 5

	DefaultLanguage = "en"

	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"

	AudioSanskrit = "sanskrit"
	AudioMeaning  = "meaning"

	RewardSource = "gita"

	// BadgeMaster 完成全部 700 颂
	BadgeMaster = "gita-jeevan-acharya"
)

type Chapter struct {
	Id           int64
	Number       int
	Name         string
	NameSanskrit string
	Description  string
	TotalShlokas int
	Level        int
	DisplayOrder int

	Shlokas []Shloka
}

type Shloka struct {
	Id              int64
	ChapterId       int64
	Number          int
	SanskritText    string
	Transliteration string
	XpReward        int64
	DisplayOrder    int

	Chapter      Chapter
	Translations []Translation
	Audios       []Audio
}

// Ref 形如 1.1，第一章第一颂
func (s Shloka) Ref() string {
	return fmt.Sprintf("%d.%d", s.Chapter.Number, s.Number)
}

type Translation struct {
	Id           int64
	ShlokaId     int64
	Language     string
	Meaning      string
	Explanation  string
	WhyItMatters string
}

type Audio struct {
	Id              int64
	ShlokaId        int64
	Language        string
	AudioType       string
	Url             string
	DurationSeconds int
}

type Level struct {
	Number    int
	Name      string
	Subtitle  string
	BadgeSlug string
	BadgeName string
	BadgeXp   int64
	Chapters  []Chapter
}

func (l Level) TotalShlokas() int {
	total := 0
	for _, c := range l.Chapters {
		total += c.TotalShlokas
	}
	return total
}

func ValidLevel(level int) bool {
	return level >= 1 && level <= MaxLevel
}

type ShlokaProgress struct {
	Id                  int64
	Uid                 int64
	ShlokaId            int64
	Status              string
	TimeSpentSeconds    int64
	HasListenedSanskrit bool
	HasListenedMeaning  bool
	HasReadExplanation  bool
	Reflection          string
	XpEarned            int64
	CompletedAt         int64
	LastAccessedAt      int64

	Shloka Shloka
}

// ProgressUpdate 为 nil 或者零值的字段保持原样
type ProgressUpdate struct {
	ShlokaId            int64
	Status              string
	TimeSpentSeconds    int64
	HasListenedSanskrit *bool
	HasListenedMeaning  *bool
	HasReadExplanation  *bool
	Reflection          string
}

func ValidStatus(status string) bool {
	switch status {
	case "", StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Apply 合并一次进度上报，完成的时候经验值等于这一颂的奖励
func (p ShlokaProgress) Apply(u ProgressUpdate, sh Shloka, now int64) ShlokaProgress {
	if p.Status == "" {
		p.Status = StatusNotStarted
	}
	if u.Status != "" {
		p.Status = u.Status
	}
	if u.TimeSpentSeconds > 0 {
		p.TimeSpentSeconds = u.TimeSpentSeconds
	}
	if u.HasListenedSanskrit != nil {
		p.HasListenedSanskrit = *u.HasListenedSanskrit
	}
	if u.HasListenedMeaning != nil {
		p.HasListenedMeaning = *u.HasListenedMeaning
	}
	if u.HasReadExplanation != nil {
		p.HasReadExplanation = *u.HasReadExplanation
	}
	if u.Reflection != "" {
		p.Reflection = u.Reflection
	}
	if u.Status == StatusCompleted {
		p.XpEarned = sh.XpReward
		if p.CompletedAt == 0 {
			p.CompletedAt = now
		}
	}
	p.LastAccessedAt = now
	return p
}

type ProgressStats struct {
	TotalShlokas  int
	Completed     int
	InProgress    int
	NotStarted    int
	TotalXpEarned int64
}

func NewProgressStats(ps []ShlokaProgress) ProgressStats {
	res := ProgressStats{
		TotalShlokas: TotalShlokas,
		NotStarted:   TotalShlokas - len(ps),
	}
	for _, p := range ps {
		switch p.Status {
		case StatusCompleted:
			res.Completed++
		case StatusInProgress:
			res.InProgress++
		}
		res.TotalXpEarned += p.XpEarned
	}
	return res
}

type ProgressResult struct {
	Progress ShlokaProgress
	// Rewarded 第一次完成这一颂的时候发放奖励
	Rewarded bool
	Badges   []string
}
