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

type Metrics struct {
	Id                    int64 `gorm:"primaryKey,autoIncrement"`
	Uid                   int64 `gorm:"uniqueIndex"`
	TotalXp               int64 `gorm:"index"`
	TotalKarma            int64 `gorm:"index"`
	WisdomLevel           int64 `gorm:"default:1"`
	CurrentStreak         int64 `gorm:"index"`
	LongestStreak         int64
	TotalLessonsCompleted int64
	TotalCoursesCompleted int64
	TotalTimeSpentMinutes int64
	LastActivityAt        int64
	Ctime                 int64
	Utime                 int64
}

func (Metrics) TableName() string {
	return "learning_metrics"
}

// Transaction 经验值和功德的流水
type Transaction struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Uid         int64  `gorm:"index"`
	Type        string `gorm:"type:varchar(16)"`
	Amount      int64
	Source      string `gorm:"type:varchar(32)"`
	SourceId    int64
	Description string `gorm:"type:varchar(512)"`
	Ctime       int64
	Utime       int64
}

func (Transaction) TableName() string {
	return "xp_transactions"
}

type StreakDay struct {
	Id               int64  `gorm:"primaryKey,autoIncrement"`
	Uid              int64  `gorm:"uniqueIndex:uid_date"`
	Date             string `gorm:"type:char(10);uniqueIndex:uid_date"`
	LessonsCompleted int64
	XpEarned         int64
	TimeSpentMinutes int64
	Ctime            int64
	Utime            int64
}

func (StreakDay) TableName() string {
	return "streak_days"
}

type Badge struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Slug        string `gorm:"type:varchar(64);uniqueIndex"`
	Name        string `gorm:"type:varchar(128)"`
	Description string `gorm:"type:varchar(512)"`
	IconUrl     string `gorm:"type:varchar(512)"`
	Category    string `gorm:"type:varchar(32)"`
	XpReward    int64
	KarmaReward int64
	IsActive    bool `gorm:"default:true"`
	Ctime       int64
	Utime       int64
}

func (Badge) TableName() string {
	return "badges"
}

type UserBadge struct {
	Id      int64 `gorm:"primaryKey,autoIncrement"`
	Uid     int64 `gorm:"uniqueIndex:uid_badge"`
	BadgeId int64 `gorm:"uniqueIndex:uid_badge"`
	Ctime   int64 `gorm:"index"`
	Utime   int64
}

func (UserBadge) TableName() string {
	return "user_badges"
}

// RewardRecord 一次奖励需要在同一个事务里面完成的所有修改
type RewardRecord struct {
	Uid     int64
	Xp      int64
	Karma   int64
	Lessons int64
	Courses int64
	Minutes int64
	Txs     []Transaction

	UpdateStreak  bool
	Today         string
	Yesterday     string
	StreakLessons int64
	StreakXp      int64

	// WisdomLevel 根据总经验值计算等级
	WisdomLevel func(xp int64) int64
}

type uidCount struct {
	Uid int64
	Cnt int64
}
