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

package job

import (
	"context"

	"github.com/ecodeclub/hug/internal/gamification/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*LeaderboardWarmJob)(nil)

// LeaderboardWarmJob 定时刷新排行榜缓存，避免缓存过期之后的第一个请求查库
type LeaderboardWarmJob struct {
	svc service.Service
}

func NewLeaderboardWarmJob(svc service.Service) *LeaderboardWarmJob {
	return &LeaderboardWarmJob{svc: svc}
}

func (j *LeaderboardWarmJob) Name() string {
	return "leaderboard-warm"
}

func (j *LeaderboardWarmJob) Run(ctx context.Context) error {
	return j.svc.WarmLeaderboards(ctx)
}
