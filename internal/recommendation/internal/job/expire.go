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

	"github.com/ecodeclub/hug/internal/recommendation/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*ExpireJob)(nil)

// ExpireJob 定时清理过期的推荐
type ExpireJob struct {
	svc service.Service
}

func NewExpireJob(svc service.Service) *ExpireJob {
	return &ExpireJob{svc: svc}
}

func (j *ExpireJob) Name() string {
	return "recommendation-expire"
}

func (j *ExpireJob) Run(ctx context.Context) error {
	_, err := j.svc.DeleteExpired(ctx)
	return err
}
