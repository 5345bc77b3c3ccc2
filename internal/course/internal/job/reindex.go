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

// SearchReindexJobStarter 全量把课程数据重新同步到搜索
type SearchReindexJobStarter struct {
	svc    service.Service
	logger *elog.Component
}

func NewSearchReindexJobStarter(svc service.Service) *SearchReindexJobStarter {
	return &SearchReindexJobStarter{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (s *SearchReindexJobStarter) Name() string {
	return "search-reindex"
}

func (s *SearchReindexJobStarter) Start(ctx ejob.Context) error {
	cnt, err := s.svc.SyncToSearch(ctx.Ctx)
	if err != nil {
		return err
	}
	s.logger.Info("重建搜索数据完成", elog.Int("cnt", cnt))
	return nil
}
