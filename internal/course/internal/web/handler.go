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

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hug/internal/course/internal/domain"
	"github.com/ecodeclub/hug/internal/course/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// PublicRoutes 课程目录都不需要登录
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/learning")
	g.GET("/schools", ginx.W(h.Schools))
	g.POST("/courses/list", ginx.B[CourseListReq](h.CourseList))
	g.POST("/courses/detail", ginx.B[CourseIdReq](h.CourseDetail))
	g.POST("/tracks/modules", ginx.B[TrackIdReq](h.TrackModules))
	g.POST("/modules/detail", ginx.B[ModuleIdReq](h.ModuleDetail))
	g.POST("/lessons/detail", ginx.B[LessonIdReq](h.LessonDetail))
}

func (h *Handler) Schools(ctx *ginx.Context) (ginx.Result, error) {
	schools, err := h.svc.Schools(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SchoolList{
			Schools: slice.Map(schools, func(idx int, src domain.School) School {
				return newSchool(src)
			}),
		},
	}, nil
}

func (h *Handler) CourseList(ctx *ginx.Context, req CourseListReq) (ginx.Result, error) {
	req = req.normalize()
	cs, total, err := h.svc.ListCourses(ctx, domain.CourseQuery{
		SchoolId: req.SchoolId,
		Level:    req.Level,
		Featured: req.Featured,
		Offset:   (req.Page - 1) * req.Limit,
		Limit:    req.Limit,
	})
	if err != nil {
		return systemErrorResult, err
	}
	limit := int64(req.Limit)
	return ginx.Result{
		Data: CourseList{
			Courses: slice.Map(cs, func(idx int, src domain.Course) Course {
				return newCourse(src)
			}),
			Pagination: Pagination{
				CurrentPage: req.Page,
				TotalPages:  (total + limit - 1) / limit,
				TotalItems:  total,
			},
		},
	}, nil
}

func (h *Handler) CourseDetail(ctx *ginx.Context, req CourseIdReq) (ginx.Result, error) {
	c, err := h.svc.CourseDetail(ctx, req.CourseId)
	switch {
	case errors.Is(err, service.ErrRecordNotFound):
		return courseNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newCourseDetail(c),
	}, nil
}

func (h *Handler) TrackModules(ctx *ginx.Context, req TrackIdReq) (ginx.Result, error) {
	ms, err := h.svc.TrackModules(ctx, req.TrackId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ModuleList{
			Modules: slice.Map(ms, func(idx int, src domain.Module) Module {
				return newModule(src)
			}),
		},
	}, nil
}

func (h *Handler) ModuleDetail(ctx *ginx.Context, req ModuleIdReq) (ginx.Result, error) {
	m, err := h.svc.ModuleDetail(ctx, req.ModuleId)
	switch {
	case errors.Is(err, service.ErrRecordNotFound):
		return moduleNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	res := newModule(m)
	res.Track = &Track{
		Id:   m.Track.Id,
		Name: m.Track.Name,
	}
	res.Course = &Course{
		Id:   m.Course.Id,
		Name: m.Course.Name,
		Slug: m.Course.Slug,
	}
	return ginx.Result{
		Data: res,
	}, nil
}

func (h *Handler) LessonDetail(ctx *ginx.Context, req LessonIdReq) (ginx.Result, error) {
	l, err := h.svc.LessonDetail(ctx, req.LessonId)
	switch {
	case errors.Is(err, service.ErrRecordNotFound):
		return lessonNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newLesson(l),
	}, nil
}
