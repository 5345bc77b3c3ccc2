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
	"github.com/ecodeclub/hug/internal/gamification/internal/domain"
	"github.com/ecodeclub/hug/internal/gamification/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/learning/gamification")
	g.GET("/metrics", ginx.S(h.Metrics))
	g.GET("/badges", ginx.S(h.Badges))
	g.POST("/leaderboard", ginx.BS[LeaderboardReq](h.Leaderboard))
}

func (h *Handler) Metrics(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	m, _, err := h.svc.Metrics(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newMetrics(m),
	}, nil
}

func (h *Handler) Badges(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	earned, available, err := h.svc.Badges(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: BadgeList{
			Earned: slice.Map(earned, func(idx int, src domain.UserBadge) Badge {
				b := newBadge(src.Badge)
				b.EarnedAt = src.EarnedAt
				return b
			}),
			Available: slice.Map(available, func(idx int, src domain.Badge) Badge {
				return newBadge(src)
			}),
		},
	}, nil
}

func (h *Handler) Leaderboard(ctx *ginx.Context, req LeaderboardReq, sess session.Session) (ginx.Result, error) {
	if req.Type == "" {
		req.Type = domain.LeaderboardXp
	}
	if !domain.LeaderboardTypeValid(req.Type) || req.Limit < 0 || req.Limit > domain.MaxLeaderboardSize {
		return invalidInputResult, nil
	}
	lb, err := h.svc.Leaderboard(ctx, sess.Claims().Uid, req.Type, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Leaderboard{
			Type: lb.Type,
			Entries: slice.Map(lb.Entries, func(idx int, src domain.LeaderboardEntry) LeaderboardEntry {
				return LeaderboardEntry{
					Rank:        src.Rank,
					Uid:         src.Uid,
					Name:        src.Name,
					Avatar:      src.Avatar,
					Score:       src.Score,
					WisdomLevel: src.WisdomLevel,
					BadgeCount:  src.BadgeCount,
				}
			}),
			MyRank:  lb.MyRank,
			MyScore: lb.MyScore,
		},
	}, nil
}
