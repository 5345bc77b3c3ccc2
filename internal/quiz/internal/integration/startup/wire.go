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

package startup

import (
	"github.com/ecodeclub/hug/internal/course"
	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/progress"
	"github.com/ecodeclub/hug/internal/quiz"
	testioc "github.com/ecodeclub/hug/internal/test/ioc"
	"github.com/ecodeclub/hug/internal/user"
	"github.com/google/wire"
)

type Modules struct {
	Quiz     *quiz.Module
	Progress *progress.Module
	Course   *course.Module
}

func InitModules() (*Modules, error) {
	wire.Build(testioc.BaseSet,
		user.InitModule,
		course.InitModule,
		gamification.InitModule,
		progress.InitModule,
		quiz.InitModule,
		wire.Struct(new(Modules), "*"),
	)
	return new(Modules), nil
}
