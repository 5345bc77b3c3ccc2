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
	"github.com/ecodeclub/hug/internal/course/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ejob"
)

// SeedJobStarter 初始化课程数据，已经有数据的时候什么都不做
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
	return "catalog-seed"
}

func (s *SeedJobStarter) Start(ctx ejob.Context) error {
	seeded, err := s.svc.Seed(ctx.Ctx)
	if err != nil {
		return err
	}
	if !seeded {
		s.logger.Info("课程数据已经存在，跳过初始化")
		return nil
	}
	// 新写入的数据顺便同步到搜索
	cnt, err := s.svc.SyncToSearch(ctx.Ctx)
	if err != nil {
		s.logger.Error("同步搜索数据失败", elog.FieldErr(err), elog.Int("cnt", cnt))
		return nil
	}
	s.logger.Info("初始化课程数据成功", elog.Int("synced", cnt))
	return nil
}
