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

package analytics

import (
	"sync"

	"github.com/ecodeclub/hug/internal/analytics/internal/event/consumer"
	"github.com/ecodeclub/hug/internal/analytics/internal/event/producer"
	"github.com/ecodeclub/hug/internal/analytics/internal/repository"
	"github.com/ecodeclub/hug/internal/analytics/internal/repository/dao"
	"github.com/ecodeclub/hug/internal/analytics/internal/service"
	"github.com/ecodeclub/hug/internal/analytics/internal/web"
	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/pkg/snowflake"
	"github.com/ecodeclub/hug/internal/progress"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	initDAO,
	repository.NewAnalyticsRepository,
	producer.NewAnalyticsEventProducer,
	service.NewService,
	web.NewHandler,
	consumer.NewAnalyticsEventConsumer,
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	ids snowflake.SnowFlake,
	gameModule *gamification.Module,
	progressModule *progress.Module) (*Module, error) {
	wire.Build(
		ProviderSet,
		wire.FieldsOf(new(*gamification.Module), "Svc"),
		wire.FieldsOf(new(*progress.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.AnalyticsDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMAnalyticsDAO(db)
}
