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
	"github.com/ecodeclub/hug/internal/recommendation/internal/domain"
	"github.com/ecodeclub/hug/internal/recommendation/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/learning/ai/recommendations")
	g.GET("", ginx.S(h.List))
	g.POST("/act", ginx.BS[ActReq](h.Act))
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	recs, err := h.svc.Recommendations(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: RecommendationList{
		Recommendations: slice.Map(recs, func(idx int, src domain.Recommendation) Recommendation {
			return Recommendation{
				RecommendationId: src.Id,
				Type:             src.Type,
				Title:            src.Title(),
				Description:      src.Description(),
				TargetId:         src.TargetId,
				Priority:         src.Priority,
				ActionText:       src.ActionText(),
				ActionUrl:        src.ActionUrl(),
			}
		}),
	}}, nil
}

func (h *Handler) Act(ctx *ginx.Context, req ActReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Act(ctx, sess.Claims().Uid, req.RecommendationId)
	switch {
	case errors.Is(err, service.ErrRecommendationNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "Recommendation marked as acted upon"}, nil
}
