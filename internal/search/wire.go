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

package search

import (
	"sync"

	"github.com/ecodeclub/hug/internal/search/internal/event"
	"github.com/ecodeclub/hug/internal/search/internal/repository"
	"github.com/ecodeclub/hug/internal/search/internal/repository/dao"
	"github.com/ecodeclub/hug/internal/search/internal/service"
	"github.com/ecodeclub/hug/internal/search/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/olivere/elastic/v7"
)

var ProviderSet = wire.NewSet(
	initCourseDAO,
	initLessonDAO,
	initSchoolDAO,
	initDocumentDAO,
	repository.NewCourseRepo,
	repository.NewLessonRepo,
	repository.NewSchoolRepo,
	repository.NewDocumentRepo,
	service.NewSearchSvc,
	service.NewSyncSvc,
	web.NewHandler,
	event.NewSyncConsumer,
)

func InitModule(es *elastic.Client, q mq.MQ) (*Module, error) {
	wire.Build(
		ProviderSet,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitIndexOnce(es *elastic.Client) {
	daoOnce.Do(func() {
		err := dao.InitES(es)
		if err != nil {
			panic(err)
		}
	})
}

func initCourseDAO(es *elastic.Client) dao.CourseDAO {
	InitIndexOnce(es)
	return dao.NewCourseElasticDAO(es)
}

func initLessonDAO(es *elastic.Client) dao.LessonDAO {
	InitIndexOnce(es)
	return dao.NewLessonElasticDAO(es)
}

func initSchoolDAO(es *elastic.Client) dao.SchoolDAO {
	InitIndexOnce(es)
	return dao.NewSchoolElasticDAO(es)
}

func initDocumentDAO(es *elastic.Client) dao.DocumentDAO {
	InitIndexOnce(es)
	return dao.NewDocumentElasticDAO(es)
}
