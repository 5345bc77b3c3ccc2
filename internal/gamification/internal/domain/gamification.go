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

const (
	xpPerLevel = 1000

	TxTypeXp    = "xp"
	TxTypeKarma = "karma"

	BadgeFirstLesson = "first-lesson"
	BadgeGitaSadhak  = "gita-sadhak"

	// 每天第一次学习记一节课和 10 点经验，之后每次都是这么多
	StreakLessonsStep = 1
	StreakXpStep      = 10
)

// Metrics 用户学习数据，每个用户一行
type Metrics struct {
	Uid                   int64
	TotalXp               int64
	TotalKarma            int64
	WisdomLevel           int64
	CurrentStreak         int64
	LongestStreak         int64
	TotalLessonsCompleted int64
	TotalCoursesCompleted int64
	TotalTimeSpentMinutes int64
	LastActivityAt        int64
	Ctime                 int64
}

func WisdomLevelOf(xp int64) int64 {
	return 1 + xp/xpPerLevel
}

func (m Metrics) NextLevelXp() int64 {
	return m.WisdomLevel * xpPerLevel
}

// Rank 从高往低判断
func (m Metrics) Rank() string {
	switch {
	case m.WisdomLevel >= 30:
		return "Wisdom Master"
	case m.WisdomLevel >= 20:
		return "Karma Yogi"
	case m.WisdomLevel >= 10:
		return "Gita Sadhak"
	default:
		return "Beginner"
	}
}

// EligibleBadges 本次奖励之后可以获得的徽章，before 是奖励之前的数据。
// 首课徽章只在完成课时数从 0 跨过去的那一次奖励里发放，已经获得的由唯一索引过滤
func (m Metrics) EligibleBadges(before Metrics) []string {
	var res []string
	if before.TotalLessonsCompleted == 0 && m.TotalLessonsCompleted >= 1 {
		res = append(res, BadgeFirstLesson)
	}
	if m.WisdomLevel >= 10 {
		res = append(res, BadgeGitaSadhak)
	}
	return res
}

// Reward 一次学习行为带来的奖励
type Reward struct {
	Xp    int64
	Karma int64
	// Source 例如 lesson, quiz, activity, gita, sync
	Source      string
	SourceId    int64
	Description string

	LessonsCompleted int64
	CoursesCompleted int64
	Minutes          int64

	// Entries 批量奖励，例如离线同步，Xp 和 Karma 是它们的总和
	Entries []RewardEntry
}

// UpdatesStreak 只有完成课时才算打卡
func (r Reward) UpdatesStreak() bool {
	return r.LessonsCompleted > 0
}

// Transactions Entries 不为空的时候每一条生成自己的流水
func (r Reward) Transactions(uid int64) []Transaction {
	entries := r.Entries
	if len(entries) == 0 {
		entries = []RewardEntry{{
			Xp:          r.Xp,
			Karma:       r.Karma,
			SourceId:    r.SourceId,
			Description: r.Description,
		}}
	}
	var res []Transaction
	for _, e := range entries {
		if e.Xp != 0 {
			res = append(res, Transaction{
				Uid:         uid,
				Type:        TxTypeXp,
				Amount:      e.Xp,
				Source:      r.Source,
				SourceId:    e.SourceId,
				Description: e.Description,
			})
		}
		if e.Karma != 0 {
			res = append(res, Transaction{
				Uid:         uid,
				Type:        TxTypeKarma,
				Amount:      e.Karma,
				Source:      r.Source,
				SourceId:    e.SourceId,
				Description: e.Description,
			})
		}
	}
	return res
}

// RewardEntry 批量奖励里面的一条
type RewardEntry struct {
	Xp          int64
	Karma       int64
	SourceId    int64
	Description string
}

type RewardResult struct {
	Xp          int64
	Karma       int64
	Badges      []string
	LevelBefore int64
	Metrics     Metrics
}

func (r RewardResult) LevelUp() bool {
	return r.Metrics.WisdomLevel > r.LevelBefore
}

type Transaction struct {
	Id          int64
	Uid         int64
	Type        string
	Amount      int64
	Source      string
	SourceId    int64
	Description string
	Ctime       int64
}

// StreakDay 某一天的学习记录，Date 的格式是 2006-01-02
type StreakDay struct {
	Uid              int64
	Date             string
	LessonsCompleted int64
	XpEarned         int64
	TimeSpentMinutes int64
}

type Badge struct {
	Id          int64
	Slug        string
	Name        string
	Description string
	IconUrl     string
	Category    string
	XpReward    int64
	KarmaReward int64
}

type UserBadge struct {
	Badge    Badge
	EarnedAt int64
}
