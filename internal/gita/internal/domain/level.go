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

var levels = []Level{
	{Number: 1, Name: "KURUKSHETRA & INNER CONFLICT", Subtitle: "The Problem of Human Life",
		BadgeSlug: "gita-initiate", BadgeName: "Gita Initiate", BadgeXp: 100},
	{Number: 2, Name: "KARMA YOGA", Subtitle: "Right Action, Right Attitude",
		BadgeSlug: "karma-yogi", BadgeName: "Karma Yogi", BadgeXp: 200},
	{Number: 3, Name: "BHAKTI YOGA", Subtitle: "Devotion, Faith & Surrender",
		BadgeSlug: "bhakti-sadhak", BadgeName: "Bhakti Sadhak", BadgeXp: 200},
	{Number: 4, Name: "JNANA YOGA", Subtitle: "Wisdom, Detachment & the Self",
		BadgeSlug: "jnana-seeker", BadgeName: "Jnana Seeker", BadgeXp: 250},
	{Number: 5, Name: "LIVING THE GITA", Subtitle: "From Knowledge to Dharma",
		BadgeSlug: "gita-warrior", BadgeName: "Gita Warrior", BadgeXp: 250},
}

// Levels 1 到 5 级的元数据，不包含章节
func Levels() []Level {
	res := make([]Level, len(levels))
	copy(res, levels)
	return res
}

// LevelOf 调用者需要先校验 level
func LevelOf(level int) Level {
	return levels[level-1]
}

func (l Level) BadgeDescription() string {
	return fmt.Sprintf("Earned by completing Level %d: %s", l.Number, l.Name)
}
