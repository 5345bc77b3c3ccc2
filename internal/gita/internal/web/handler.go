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
	"github.com/ecodeclub/hug/internal/gita/internal/domain"
	"github.com/ecodeclub/hug/internal/gita/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/gita")
	g.GET("/chapters", ginx.W(h.Chapters))
	g.POST("/chapters/detail", ginx.B[ChapterReq](h.ChapterDetail))
	g.POST("/shlokas/detail", ginx.B[ShlokaReq](h.ShlokaDetail))
	g.GET("/levels", ginx.W(h.Levels))
	g.POST("/levels/detail", ginx.B[LevelReq](h.LevelDetail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/gita")
	g.GET("/progress", ginx.S(h.Progress))
	g.POST("/progress", ginx.BS[ProgressReq](h.UpdateProgress))
}

func (h *Handler) errResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrChapterNotFound):
		return chapterNotFoundResult, nil
	case errors.Is(err, service.ErrShlokaNotFound):
		return shlokaNotFoundResult, nil
	case errors.Is(err, service.ErrInvalidLevel), errors.Is(err, service.ErrInvalidProgress):
		return invalidInputResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Chapters(ctx *ginx.Context) (ginx.Result, error) {
	cs, err := h.svc.Chapters(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ChapterList{
			Chapters: slice.Map(cs, func(idx int, src domain.Chapter) Chapter {
				return newChapter(src)
			}),
		},
	}, nil
}

func (h *Handler) ChapterDetail(ctx *ginx.Context, req ChapterReq) (ginx.Result, error) {
	c, err := h.svc.Chapter(ctx, req.ChapterNumber)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: newChapterDetail(c),
	}, nil
}

func (h *Handler) ShlokaDetail(ctx *ginx.Context, req ShlokaReq) (ginx.Result, error) {
	sh, err := h.svc.Shloka(ctx, req.ShlokaId, req.Language)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: newShlokaDetail(sh),
	}, nil
}

func (h *Handler) Levels(ctx *ginx.Context) (ginx.Result, error) {
	levels, err := h.svc.Levels(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: LevelList{
			Levels: slice.Map(levels, func(idx int, src domain.Level) Level {
				return newLevel(src, false)
			}),
		},
	}, nil
}

func (h *Handler) LevelDetail(ctx *ginx.Context, req LevelReq) (ginx.Result, error) {
	l, err := h.svc.Level(ctx, req.LevelNumber)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: newLevel(l, true),
	}, nil
}

func (h *Handler) Progress(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	stats, ps, err := h.svc.Progress(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProgressList{
			Stats: ProgressStats{
				TotalShlokas:  stats.TotalShlokas,
				Completed:     stats.Completed,
				InProgress:    stats.InProgress,
				NotStarted:    stats.NotStarted,
				TotalXpEarned: stats.TotalXpEarned,
			},
			Progress: slice.Map(ps, func(idx int, src domain.ShlokaProgress) Progress {
				return newProgress(src)
			}),
		},
	}, nil
}

func (h *Handler) UpdateProgress(ctx *ginx.Context, req ProgressReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.UpdateProgress(ctx, sess.Claims().Uid, domain.ProgressUpdate{
		ShlokaId:            req.ShlokaId,
		Status:              req.Status,
		TimeSpentSeconds:    req.TimeSpentSeconds,
		HasListenedSanskrit: req.HasListenedSanskrit,
		HasListenedMeaning:  req.HasListenedMeaning,
		HasReadExplanation:  req.HasReadExplanation,
		Reflection:          req.Reflection,
	})
	if err != nil {
		return h.errResult(err)
	}
	badges := res.Badges
	if badges == nil {
		badges = []string{}
	}
	return ginx.Result{
		Data: ProgressResult{
			Progress: newProgress(res.Progress),
			Rewarded: res.Rewarded,
			Badges:   badges,
		},
	}, nil
}
