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
	"github.com/ecodeclub/hug/internal/activity/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ejob"
)

// SeedJobStarter 依赖课程数据，需要在 catalog-seed 之后执行
type SeedJobStarter struct {
	svc    service.Service
	logger *elog.Component
}

func NewSeedJobStarter(svc service.Service) *SeedJobStarter {
	return &SeedJobStarter{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (s *SeedJobStarter) Name() string {
	return "activity-seed"
}

func (s *SeedJobStarter) Start(ctx ejob.Context) error {
	cnt, err := s.svc.Seed(ctx.Ctx)
	if err != nil {
		return err
	}
	s.logger.Info("初始化练习数据成功", elog.Int64("cnt", cnt))
	return nil
}
