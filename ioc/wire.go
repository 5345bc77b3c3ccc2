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

package ioc

import (
	"github.com/ecodeclub/hug/internal/activity"
	"github.com/ecodeclub/hug/internal/analytics"
	"github.com/ecodeclub/hug/internal/bff"
	"github.com/ecodeclub/hug/internal/certificate"
	"github.com/ecodeclub/hug/internal/course"
	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/gita"
	"github.com/ecodeclub/hug/internal/notification"
	"github.com/ecodeclub/hug/internal/progress"
	"github.com/ecodeclub/hug/internal/quiz"
	"github.com/ecodeclub/hug/internal/recommendation"
	"github.com/ecodeclub/hug/internal/search"
	"github.com/ecodeclub/hug/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitES, InitSnowflake, InitPDFConverter)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		user.InitModule,
		course.InitModule,
		gamification.InitModule,
		progress.InitModule,
		quiz.InitModule,
		activity.InitModule,
		recommendation.InitModule,
		certificate.InitModule,
		notification.InitModule,
		search.InitModule,
		analytics.InitModule,
		gita.InitModule,
		bff.InitModule,

		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*course.Module), "Hdl", "SeedJob", "ReindexJob"),
		wire.FieldsOf(new(*gamification.Module), "Hdl", "LeaderboardWarm"),
		wire.FieldsOf(new(*progress.Module), "Hdl"),
		wire.FieldsOf(new(*quiz.Module), "Hdl", "SeedJob"),
		wire.FieldsOf(new(*activity.Module), "Hdl", "SeedJob"),
		wire.FieldsOf(new(*recommendation.Module), "Hdl", "ExpireJob"),
		wire.FieldsOf(new(*certificate.Module), "Hdl"),
		wire.FieldsOf(new(*notification.Module), "Hdl", "Consumer"),
		wire.FieldsOf(new(*search.Module), "Hdl", "SyncConsumer"),
		wire.FieldsOf(new(*analytics.Module), "Hdl", "Consumer"),
		wire.FieldsOf(new(*gita.Module), "Hdl", "SeedJob"),
		wire.FieldsOf(new(*bff.Module), "Hdl"),

		InitSession,
		initGinxServer,
		initCronJobs,
		initJobs,
		initMQConsumers,
	)
	return new(App), nil
}
