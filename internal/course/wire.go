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

//go:build wireinject

package course

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hug/internal/course/internal/event"
	"github.com/ecodeclub/hug/internal/course/internal/job"
	"github.com/ecodeclub/hug/internal/course/internal/repository"
	"github.com/ecodeclub/hug/internal/course/internal/repository/cache"
	"github.com/ecodeclub/hug/internal/course/internal/repository/dao"
	"github.com/ecodeclub/hug/internal/course/internal/service"
	"github.com/ecodeclub/hug/internal/course/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(
		initCatalogDAO,
		cache.NewCatalogECache,
		repository.NewCachedCatalogRepository,
		event.NewSyncEventProducer,
		service.NewService,
		web.NewHandler,
		job.NewSeedJobStarter,
		job.NewSearchReindexJobStarter,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initCatalogDAO(db *egorm.Component) dao.CatalogDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMCatalogDAO(db)
}
