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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hug/internal/course"
	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/progress"
	"github.com/ecodeclub/hug/internal/user"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const (
	recentLessonsLimit   = 5
	recentBadgesLimit    = 3
	featuredCoursesLimit = 3
)

// Handler 聚合多个模块的数据，自身没有存储
type Handler struct {
	gameSvc     gamification.Service
	progressSvc progress.Service
	courseSvc   course.Service
	userSvc     user.UserService
}

func NewHandler(gameSvc gamification.Service,
	progressSvc progress.Service,
	courseSvc course.Service,
	userSvc user.UserService) *Handler {
	return &Handler{
		gameSvc:     gameSvc,
		progressSvc: progressSvc,
		courseSvc:   courseSvc,
		userSvc:     userSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/learning")
	g.GET("/dashboard", ginx.S(h.Dashboard))
	g.GET("/profile/me", ginx.S(h.Profile))
	g.POST("/profile/me", ginx.BS[ProfileReq](h.UpdateProfile))
}

// Profile 第一次访问的时候创建学习档案
func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	var (
		eg      errgroup.Group
		u       user.User
		metrics gamification.Metrics
		isNew   bool
	)
	eg.Go(func() error {
		var err error
		u, err = h.userSvc.Profile(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		metrics, isNew, err = h.gameSvc.Metrics(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return systemErrorResult, err
	}
	res := newLearningProfile(u, metrics)
	res.IsNew = isNew
	return ginx.Result{
		Data: res,
	}, nil
}

func (h *Handler) UpdateProfile(ctx *ginx.Context, req ProfileReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	u, err := h.userSvc.Profile(ctx, uid)
	if err != nil {
		return systemErrorResult, err
	}
	metrics, _, err := h.gameSvc.Metrics(ctx, uid)
	if err != nil {
		return systemErrorResult, err
	}
	// 没有传的字段保留原值
	if req.Preferences != nil {
		u.Preferences = req.Preferences
	}
	if u.Preferences == nil {
		u.Preferences = map[string]string{}
	}
	// 没有传的时候，学过课时就算完成了引导
	if req.OnboardingCompleted != nil {
		u.OnboardingCompleted = *req.OnboardingCompleted
	} else {
		u.OnboardingCompleted = u.OnboardingCompleted || metrics.TotalLessonsCompleted > 0
	}
	err = h.userSvc.UpdateLearningProfile(ctx, u)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newLearningProfile(u, metrics),
	}, nil
}

func (h *Handler) Dashboard(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	var (
		eg       errgroup.Group
		metrics  gamification.Metrics
		enroll   progress.Enrollment
		lessons  []progress.LessonProgress
		badges   []gamification.UserBadge
		today    gamification.StreakDay
		featured []course.Course
	)
	eg.Go(func() error {
		var err error
		metrics, _, err = h.gameSvc.Metrics(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		enroll, err = h.progressSvc.ContinueLearning(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		lessons, err = h.progressSvc.RecentCompletedLessons(ctx, uid, recentLessonsLimit)
		return err
	})
	eg.Go(func() error {
		var err error
		badges, err = h.gameSvc.RecentBadges(ctx, uid, recentBadgesLimit)
		return err
	})
	eg.Go(func() error {
		var err error
		today, err = h.gameSvc.Today(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		featured, err = h.courseSvc.FeaturedCourses(ctx, featuredCoursesLimit)
		return err
	})
	if err := eg.Wait(); err != nil {
		return systemErrorResult, err
	}
	res := Dashboard{
		Metrics: Metrics{
			TotalXp:       metrics.TotalXp,
			TotalKarma:    metrics.TotalKarma,
			WisdomLevel:   metrics.WisdomLevel,
			CurrentStreak: metrics.CurrentStreak,
			LongestStreak: metrics.LongestStreak,
		},
		RecentLessons: slice.Map(lessons, func(idx int, src progress.LessonProgress) RecentLesson {
			return RecentLesson{
				LessonId:    src.LessonId,
				LessonName:  src.Lesson.Name,
				CompletedAt: src.CompletedAt,
			}
		}),
		RecentBadges: slice.Map(badges, func(idx int, src gamification.UserBadge) RecentBadge {
			return RecentBadge{
				Slug:     src.Badge.Slug,
				Name:     src.Badge.Name,
				IconUrl:  src.Badge.IconUrl,
				EarnedAt: src.EarnedAt,
			}
		}),
		TodayActivity: TodayActivity{
			LessonsCompleted: today.LessonsCompleted,
			TimeSpentMinutes: today.TimeSpentMinutes,
			XpEarned:         today.XpEarned,
		},
		FeaturedCourses: slice.Map(featured, func(idx int, src course.Course) FeaturedCourse {
			return FeaturedCourse{
				CourseId:         src.Id,
				CourseName:       src.Name,
				ShortDescription: src.ShortDescription,
				ThumbnailUrl:     src.ThumbnailUrl,
				DifficultyLevel:  src.DifficultyLevel,
			}
		}),
	}
	if enroll.Id > 0 {
		res.ContinueLearning = &ContinueLearning{
			EnrollmentId:         enroll.Id,
			CourseId:             enroll.CourseId,
			CourseName:           enroll.Course.Name,
			ThumbnailUrl:         enroll.Course.ThumbnailUrl,
			CompletionPercentage: enroll.CompletionPercentage,
			CurrentLessonId:      enroll.CurrentLessonId,
		}
	}
	return ginx.Result{
		Data: res,
	}, nil
}
