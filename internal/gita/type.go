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

package gita

import (
	"github.com/ecodeclub/hug/internal/gita/internal/domain"
	"github.com/ecodeclub/hug/internal/gita/internal/job"
	"github.com/ecodeclub/hug/internal/gita/internal/service"
	"github.com/ecodeclub/hug/internal/gita/internal/web"
)

const TotalShlokas = domain.TotalShlokas

type Handler = web.Handler
type Service = service.Service

type Chapter = domain.Chapter
type Shloka = domain.Shloka
type Level = domain.Level
type ShlokaProgress = domain.ShlokaProgress
type ProgressUpdate = domain.ProgressUpdate

type SeedJobStarter = job.SeedJobStarter

type Module struct {
	Hdl     *Handler
	Svc     Service
	SeedJob *SeedJobStarter
}
