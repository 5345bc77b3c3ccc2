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

package certificate

import (
	"sync"

	"github.com/ecodeclub/hug/internal/certificate/internal/event"
	"github.com/ecodeclub/hug/internal/certificate/internal/repository"
	"github.com/ecodeclub/hug/internal/certificate/internal/repository/dao"
	"github.com/ecodeclub/hug/internal/certificate/internal/service"
	"github.com/ecodeclub/hug/internal/certificate/internal/web"
	"github.com/ecodeclub/hug/internal/course"
	"github.com/ecodeclub/hug/internal/pkg/pdf"
	"github.com/ecodeclub/hug/internal/progress"
	"github.com/ecodeclub/hug/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var ProviderSet = wire.NewSet(
	initDAO,
	initTemplate,
	event.NewNotificationEventProducer,
	repository.NewCertificateRepository,
	service.NewService,
	web.NewHandler,
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	converter pdf.Converter,
	courseModule *course.Module,
	progressModule *progress.Module,
	userModule *user.Module) (*Module, error) {
	wire.Build(
		ProviderSet,
		wire.FieldsOf(new(*course.Module), "Svc"),
		wire.FieldsOf(new(*progress.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.CertificateDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMCertificateDAO(db)
}

func initTemplate() string {
	tmpl := econf.GetString("certificate.template")
	if tmpl == "" {
		return service.DefaultTemplate
	}
	return tmpl
}
