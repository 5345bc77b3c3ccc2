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
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hug/internal/progress/internal/domain"
	"github.com/ecodeclub/hug/internal/progress/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/learning")
	g.POST("/courses/enroll", ginx.BS[CourseIdReq](h.Enroll))
	g.POST("/modules/lessons", ginx.BS[ModuleIdReq](h.ModuleLessons))
	g.POST("/lessons/progress", ginx.BS[ProgressReq](h.UpdateProgress))
	g.POST("/lessons/complete", ginx.BS[LessonIdReq](h.CompleteLesson))
	g.POST("/sync/progress", ginx.BS[SyncReq](h.Sync))
	g.GET("/sync/status", ginx.S(h.SyncStatus))
	g.GET("/progress/me", ginx.S(h.MyProgress))
	g.POST("/progress/course", ginx.BS[CourseIdReq](h.CourseProgress))
}

// errResult 把业务错误转换成对应的错误码
func (h *Handler) errResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		return courseNotFoundResult, nil
	case errors.Is(err, service.ErrLessonNotFound):
		return lessonNotFoundResult, nil
	case errors.Is(err, service.ErrNotEnrolled):
		return notEnrolledResult, nil
	case errors.Is(err, service.ErrAlreadyEnrolled):
		return alreadyEnrolledResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Enroll(ctx *ginx.Context, req CourseIdReq, sess session.Session) (ginx.Result, error) {
	e, err := h.svc.Enroll(ctx, sess.Claims().Uid, req.CourseId)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Msg:  "Successfully enrolled in course",
		Data: newEnrollment(e),
	}, nil
}

func (h *Handler) ModuleLessons(ctx *ginx.Context, req ModuleIdReq, sess session.Session) (ginx.Result, error) {
	ls, err := h.svc.ModuleLessons(ctx, sess.Claims().Uid, req.ModuleId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ModuleLessonList{
			Lessons: slice.Map(ls, func(idx int, src domain.ModuleLesson) ModuleLesson {
				return ModuleLesson{
					Id:                 src.Lesson.Id,
					Name:               src.Lesson.Name,
					LessonType:         src.Lesson.LessonType,
					DurationMinutes:    src.Lesson.DurationMinutes,
					HasQuiz:            src.Lesson.HasQuiz,
					HasReflection:      src.Lesson.HasReflection,
					DisplayOrder:       src.Lesson.DisplayOrder,
					IsCompleted:        src.Progress.Completed(),
					ProgressPercentage: src.Progress.ProgressPercentage,
				}
			}),
		},
	}, nil
}

func (h *Handler) UpdateProgress(ctx *ginx.Context, req ProgressReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.UpdateProgress(ctx, domain.LessonProgress{
		Uid:                sess.Claims().Uid,
		LessonId:           req.LessonId,
		ProgressPercentage: req.ProgressPercentage,
		LastSlideIndex:     req.CompletedSlideIndex,
		TimeSpentSeconds:   req.TimeSpentSeconds,
	})
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: newProgress(p),
	}, nil
}

func newProgress(p domain.LessonProgress) Progress {
	return Progress{
		Id:                 p.Id,
		LessonId:           p.LessonId,
		ProgressPercentage: p.ProgressPercentage,
		Status:             p.Status,
		XpEarned:           p.XpEarned,
		CompletedAt:        p.CompletedAt,
	}
}

func (h *Handler) CompleteLesson(ctx *ginx.Context, req LessonIdReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.CompleteLesson(ctx, sess.Claims().Uid, req.LessonId)
	if err != nil {
		return h.errResult(err)
	}
	badges := res.Badges
	if badges == nil {
		badges = []string{}
	}
	return ginx.Result{
		Data: CompleteResp{
			Progress: newProgress(res.Progress),
			Rewards: Rewards{
				Xp:                 res.Xp,
				Karma:              res.Karma,
				Badges:             badges,
				NextLessonUnlocked: res.NextLessonId > 0,
			},
			NextLessonId: res.NextLessonId,
		},
	}, nil
}

func (h *Handler) Sync(ctx *ginx.Context, req SyncReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Sync(ctx, sess.Claims().Uid, slice.Map(req.Syncs, func(idx int, src SyncItem) domain.SyncItem {
		return domain.SyncItem{
			LessonId:           src.LessonId,
			ProgressPercentage: src.ProgressPercentage,
			IsCompleted:        src.IsCompleted,
			TimeSpentSeconds:   src.TimeSpentSeconds,
			CompletedAt:        src.CompletedAt,
		}
	}))
	if err != nil {
		return systemErrorResult, err
	}
	badges := res.Badges
	if badges == nil {
		badges = []string{}
	}
	return ginx.Result{
		Data: SyncResp{
			SyncedCount: res.Synced,
			FailedCount: res.Failed,
			Rewards: SyncRewards{
				Xp:     res.Xp,
				Karma:  res.Karma,
				Badges: badges,
			},
		},
	}, nil
}

func (h *Handler) SyncStatus(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	last, err := h.svc.LastSyncAt(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SyncStatus{LastSyncAt: last},
	}, nil
}

func (h *Handler) MyProgress(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	es, summary, err := h.svc.MyProgress(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: MyProgress{
			Enrollments: slice.Map(es, func(idx int, src domain.Enrollment) Enrollment {
				return newEnrollment(src)
			}),
			Summary: Summary{
				TotalCoursesEnrolled:  summary.CoursesEnrolled,
				TotalCoursesCompleted: summary.CoursesCompleted,
				TotalLessonsCompleted: summary.TotalLessonsCompleted,
				TotalTimeSpentMinutes: summary.TotalTimeSpentMinutes,
				ThisWeekMinutes:       summary.ThisWeekMinutes,
			},
		},
	}, nil
}

func (h *Handler) CourseProgress(ctx *ginx.Context, req CourseIdReq, sess session.Session) (ginx.Result, error) {
	cp, err := h.svc.CourseProgress(ctx, sess.Claims().Uid, req.CourseId)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: newCourseProgress(cp),
	}, nil
}
