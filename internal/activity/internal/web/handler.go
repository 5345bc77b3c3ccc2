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
	"github.com/ecodeclub/hug/internal/activity/internal/domain"
	"github.com/ecodeclub/hug/internal/activity/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/learning/activities")
	g.POST("/list", ginx.B[LessonIdReq](h.List))
	g.POST("/submit", ginx.BS[SubmitReq](h.Submit))
	g.POST("/submissions", ginx.BS[SubmissionListReq](h.Submissions))
}

func (h *Handler) List(ctx *ginx.Context, req LessonIdReq) (ginx.Result, error) {
	as, err := h.svc.LessonActivities(ctx, req.LessonId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ActivityList{
			Activities: slice.Map(as, func(idx int, src domain.Activity) Activity {
				return Activity{
					ActivityId:   src.Id,
					LessonId:     src.LessonId,
					ActivityType: src.ActivityType,
					Content:      Content(src.Content),
					IsRequired:   src.IsRequired,
					DisplayOrder: src.DisplayOrder,
				}
			}),
		},
	}, nil
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Submit(ctx, domain.Submission{
		Uid:            sess.Claims().Uid,
		ActivityId:     req.ActivityId,
		SubmissionType: req.SubmissionType,
		Content:        req.Content,
	})
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		return activityNotFoundResult, nil
	case errors.Is(err, service.ErrNotEnrolled):
		return notEnrolledResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	badges := res.Badges
	if badges == nil {
		badges = []string{}
	}
	return ginx.Result{
		Data: SubmitResp{
			SubmissionId: res.Submission.Id,
			ActivityId:   res.Submission.ActivityId,
			Status:       res.Submission.Status,
			SubmittedAt:  res.Submission.Ctime,
			Rewards: Rewards{
				Karma:  res.Karma,
				Badges: badges,
			},
		},
	}, nil
}

func (h *Handler) Submissions(ctx *ginx.Context, req SubmissionListReq, sess session.Session) (ginx.Result, error) {
	req = req.normalize()
	subs, total, err := h.svc.Submissions(ctx, domain.SubmissionQuery{
		Uid:    sess.Claims().Uid,
		Status: req.Status,
		Offset: (req.Page - 1) * req.Limit,
		Limit:  req.Limit,
	})
	if err != nil {
		return systemErrorResult, err
	}
	limit := int64(req.Limit)
	return ginx.Result{
		Data: SubmissionList{
			Submissions: slice.Map(subs, func(idx int, src domain.Submission) Submission {
				sub := Submission{
					SubmissionId: src.Id,
					ActivityId:   src.ActivityId,
					ActivityType: src.Activity.ActivityType,
					LessonName:   src.LessonName,
					Status:       src.Status,
					SubmittedAt:  src.Ctime,
				}
				if src.ReviewedAt > 0 {
					sub.ReviewedAt = &src.ReviewedAt
				}
				return sub
			}),
			Pagination: Pagination{
				CurrentPage: req.Page,
				TotalPages:  (total + limit - 1) / limit,
				TotalItems:  total,
			},
		},
	}, nil
}
