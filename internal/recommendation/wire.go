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

package recommendation

import (
	"sync"

	"github.com/ecodeclub/hug/internal/course"
	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/progress"
	"github.com/ecodeclub/hug/internal/recommendation/internal/job"
	"github.com/ecodeclub/hug/internal/recommendation/internal/repository"
	"github.com/ecodeclub/hug/internal/recommendation/internal/repository/dao"
	"github.com/ecodeclub/hug/internal/recommendation/internal/service"
	"github.com/ecodeclub/hug/internal/recommendation/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	initDAO,
	repository.NewRecommendationRepository,
	service.NewService,
	web.NewHandler,
	job.NewExpireJob,
)

func InitModule(db *egorm.Component,
	courseModule *course.Module,
	progressModule *progress.Module,
	gameModule *gamification.Module) *Module {
	wire.Build(
		ProviderSet,
		wire.FieldsOf(new(*course.Module), "Svc"),
		wire.FieldsOf(new(*progress.Module), "Svc"),
		wire.FieldsOf(new(*gamification.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.RecommendationDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMRecommendationDAO(db)
}
