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

package search

import (
	"github.com/ecodeclub/hug/internal/search/internal/domain"
	"github.com/ecodeclub/hug/internal/search/internal/event"
	"github.com/ecodeclub/hug/internal/search/internal/service"
	"github.com/ecodeclub/hug/internal/search/internal/web"
)

type SearchService = service.SearchService
type SyncService = service.SyncService
type Handler = web.Handler
type SyncConsumer = event.SyncConsumer
type Document = domain.Document

const (
	BizSchool = domain.BizSchool
	BizCourse = domain.BizCourse
	BizLesson = domain.BizLesson
)

type Module struct {
	Hdl          *Handler
	SearchSvc    SearchService
	SyncSvc      SyncService
	SyncConsumer *SyncConsumer
}
