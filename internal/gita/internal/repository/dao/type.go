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

type Chapter struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	Number       int    `gorm:"uniqueIndex"`
	Name         string `gorm:"type:varchar(256)"`
	NameSanskrit string `gorm:"type:varchar(256)"`
	Description  string `gorm:"type:varchar(1024)"`
	TotalShlokas int
	Level        int `gorm:"index"`
	DisplayOrder int
	IsActive     bool
	Ctime        int64
	Utime        int64
}

func (Chapter) TableName() string {
	return "gita_chapters"
}

type Shloka struct {
	Id              int64 `gorm:"primaryKey,autoIncrement"`
	ChapterId       int64 `gorm:"uniqueIndex:chapter_number"`
	Number          int   `gorm:"uniqueIndex:chapter_number"`
	SanskritText    string
	Transliteration string
	XpReward        int64
	DisplayOrder    int
	IsActive        bool
	Ctime           int64
	Utime           int64
}

func (Shloka) TableName() string {
	return "gita_shlokas"
}

type Translation struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	ShlokaId     int64  `gorm:"uniqueIndex:shloka_language"`
	Language     string `gorm:"type:varchar(8);uniqueIndex:shloka_language"`
	Meaning      string
	Explanation  string
	WhyItMatters string
	IsActive     bool
	Ctime        int64
	Utime        int64
}

func (Translation) TableName() string {
	return "gita_shloka_translations"
}

type Audio struct {
	Id              int64  `gorm:"primaryKey,autoIncrement"`
	ShlokaId        int64  `gorm:"index:shloka_language"`
	Language        string `gorm:"type:varchar(8);index:shloka_language"`
	AudioType       string `gorm:"type:varchar(32)"`
	Url             string `gorm:"type:varchar(512)"`
	DurationSeconds int
	IsActive        bool
	Ctime           int64
	Utime           int64
}

func (Audio) TableName() string {
	return "gita_audio_files"
}

type ShlokaProgress struct {
	Id                  int64  `gorm:"primaryKey,autoIncrement"`
	Uid                 int64  `gorm:"uniqueIndex:uid_shloka;index:uid_accessed"`
	ShlokaId            int64  `gorm:"uniqueIndex:uid_shloka"`
	Status              string `gorm:"type:varchar(32)"`
	TimeSpentSeconds    int64
	HasListenedSanskrit bool
	HasListenedMeaning  bool
	HasReadExplanation  bool
	Reflection          string `gorm:"type:text"`
	XpEarned            int64
	CompletedAt         int64
	LastAccessedAt      int64 `gorm:"index:uid_accessed"`
	Ctime               int64
	Utime               int64
}

func (ShlokaProgress) TableName() string {
	return "user_shloka_progress"
}

// SeedShloka 初始化数据的时候偈颂连同翻译和音频一起写入
type SeedShloka struct {
	ChapterNumber int
	Shloka        Shloka
	Translations  []Translation
	Audios        []Audio
}
