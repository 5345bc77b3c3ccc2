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
	"github.com/ecodeclub/hug/internal/notification/internal/domain"
	"github.com/ecodeclub/hug/internal/notification/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/learning/notifications")
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/read", ginx.BS[ReadReq](h.Read))
	g.POST("/read-all", ginx.S(h.ReadAll))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	req = req.normalize()
	page, err := h.svc.List(ctx, domain.Query{
		Uid:        sess.Claims().Uid,
		UnreadOnly: req.UnreadOnly,
		Offset:     (req.Page - 1) * req.Limit,
		Limit:      req.Limit,
	})
	if err != nil {
		return systemErrorResult, err
	}
	limit := int64(req.Limit)
	return ginx.Result{Data: NotificationList{
		Notifications: slice.Map(page.Notifications, func(idx int, src domain.Notification) Notification {
			return Notification{
				NotificationId: src.Id,
				Type:           src.Type,
				Title:          src.Title,
				Message:        src.Message,
				Biz:            src.Biz,
				BizId:          src.BizId,
				IsRead:         src.IsRead,
				ReadAt:         src.ReadAt,
				CreatedAt:      src.Ctime,
			}
		}),
		UnreadCount: page.UnreadCount,
		Pagination: Pagination{
			CurrentPage: req.Page,
			TotalPages:  (page.Total + limit - 1) / limit,
			TotalItems:  page.Total,
		},
	}}, nil
}

func (h *Handler) Read(ctx *ginx.Context, req ReadReq, sess session.Session) (ginx.Result, error) {
	n, err := h.svc.Read(ctx, sess.Claims().Uid, req.NotificationId)
	switch {
	case errors.Is(err, service.ErrNotificationNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: ReadResp{
		NotificationId: n.Id,
		IsRead:         n.IsRead,
		ReadAt:         n.ReadAt,
	}}, nil
}

func (h *Handler) ReadAll(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cnt, err := h.svc.ReadAll(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "All notifications marked as read", Data: ReadAllResp{Count: cnt}}, nil
}
