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

package course

import (
	"github.com/ecodeclub/hug/internal/course/internal/domain"
	"github.com/ecodeclub/hug/internal/course/internal/job"
	"github.com/ecodeclub/hug/internal/course/internal/service"
	"github.com/ecodeclub/hug/internal/course/internal/web"
)

const (
	LevelBeginner     = domain.LevelBeginner
	LevelIntermediate = domain.LevelIntermediate
	LevelAdvanced     = domain.LevelAdvanced
)

var ErrRecordNotFound = service.ErrRecordNotFound

type Handler = web.Handler
type Service = service.Service

type School = domain.School
type Course = domain.Course
type Track = domain.Track

// LearningModule 课程单元，避免和 Module 冲突
type LearningModule = domain.Module
type Lesson = domain.Lesson
type Slide = domain.Slide
type LessonLocation = domain.LessonLocation

type SeedJobStarter = job.SeedJobStarter
type SearchReindexJobStarter = job.SearchReindexJobStarter

type Module struct {
	Hdl        *Handler
	Svc        Service
	SeedJob    *SeedJobStarter
	ReindexJob *SearchReindexJobStarter
}
