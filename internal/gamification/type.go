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

package gamification

import (
	"github.com/ecodeclub/hug/internal/gamification/internal/domain"
	"github.com/ecodeclub/hug/internal/gamification/internal/event"
	"github.com/ecodeclub/hug/internal/gamification/internal/job"
	"github.com/ecodeclub/hug/internal/gamification/internal/service"
	"github.com/ecodeclub/hug/internal/gamification/internal/web"
)

const (
	BadgeFirstLesson = domain.BadgeFirstLesson
	BadgeGitaSadhak  = domain.BadgeGitaSadhak

	NotificationTopic = event.NotificationTopic
)

var ErrRecordNotFound = service.ErrRecordNotFound

type Handler = web.Handler
type Service = service.Service

type Metrics = domain.Metrics
type Reward = domain.Reward
type RewardResult = domain.RewardResult
type RewardEntry = domain.RewardEntry
type StreakDay = domain.StreakDay
type Badge = domain.Badge
type UserBadge = domain.UserBadge
type NotificationEvent = event.NotificationEvent

type LeaderboardWarmJob = job.LeaderboardWarmJob

type Module struct {
	Hdl             *Handler
	Svc             Service
	LeaderboardWarm *LeaderboardWarmJob
}
