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

	"github.com/ego-component/egorm"
)

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Metrics{}, &Transaction{}, &StreakDay{}, &Badge{}, &UserBadge{})
}

// InitBadges 写入系统内置的徽章
func InitBadges(db *egorm.Component) error {
	return NewGORMGamificationDAO(db).UpsertBadges(context.Background(), []Badge{
		{
			Slug:        "first-lesson",
			Name:        "First Step",
			Description: "Completed your first lesson",
			Category:    "achievement",
			XpReward:    50,
			KarmaReward: 10,
		},
		{
			Slug:        "gita-sadhak",
			Name:        "Gita Sadhak",
			Description: "Reached wisdom level 10",
			Category:    "learning",
			XpReward:    500,
			KarmaReward: 100,
		},
	})
}
