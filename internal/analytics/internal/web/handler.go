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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hug/internal/analytics/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/learning/analytics")
	g.POST("/track", ginx.BS[TrackReq](h.Track))
	g.GET("/insights", ginx.S(h.Insights))
}

func (h *Handler) Track(ctx *ginx.Context, req TrackReq, sess session.Session) (ginx.Result, error) {
	eventId, err := h.svc.Track(ctx, sess.Claims().Uid, req.EventType, req.EventData)
	switch {
	case errors.Is(err, service.ErrInvalidEvent):
		return invalidInputResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: TrackResp{
		Tracked: true,
		EventId: eventId,
	}}, nil
}

func (h *Handler) Insights(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	in, err := h.svc.Insights(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newInsightsResp(in)}, nil
}
