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
	"fmt"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hug/internal/certificate/internal/domain"
	"github.com/ecodeclub/hug/internal/certificate/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/learning/certificates")
	g.POST("/verify", ginx.B[VerifyReq](h.Verify))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/learning/certificates")
	g.GET("/me", ginx.S(h.MyCertificates))
	g.POST("/generate", ginx.BS[GenerateReq](h.Generate))
	// 下载直接返回 PDF 文件，不走 ginx.Result
	g.POST("/pdf", h.PDF)
}

func (h *Handler) MyCertificates(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	certs, err := h.svc.MyCertificates(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: CertificateList{
		Certificates: slice.Map(certs, func(idx int, src domain.Certificate) Certificate {
			return Certificate{
				CertificateId:     src.Id,
				CourseId:          src.CourseId,
				CourseName:        src.Metadata.CourseName,
				CertificateType:   src.CertificateType,
				CertificateNumber: src.Number,
				IssueDate:         src.IssueDate,
				CertificateUrl:    src.CertificateUrl,
				VerificationCode:  src.VerificationCode,
				IsShareable:       true,
			}
		}),
	}}, nil
}

func (h *Handler) Verify(ctx *ginx.Context, req VerifyReq) (ginx.Result, error) {
	if req.VerificationCode == "" {
		return invalidInputResult, nil
	}
	cert, err := h.svc.Verify(ctx, req.VerificationCode)
	switch {
	case errors.Is(err, service.ErrRecordNotFound):
		return ginx.Result{Data: VerifyResp{IsValid: false}}, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: VerifyResp{
		IsValid:           true,
		CertificateNumber: cert.Number,
		CourseName:        cert.Metadata.CourseName,
		CertificateType:   cert.CertificateType,
		IssueDate:         cert.IssueDate,
		Uid:               cert.Uid,
		UserName:          cert.Metadata.UserName,
	}}, nil
}

func (h *Handler) Generate(ctx *ginx.Context, req GenerateReq, sess session.Session) (ginx.Result, error) {
	if req.CourseId <= 0 {
		return invalidInputResult, nil
	}
	cert, err := h.svc.Generate(ctx, sess.Claims().Uid, req.CourseId, req.CertificateType)
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		return courseNotFoundResult, nil
	case errors.Is(err, service.ErrCourseNotCompleted):
		return courseNotCompletedResult, nil
	case errors.Is(err, service.ErrCertificateExists):
		return certificateExistsResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: GenerateResp{
		CertificateId:     cert.Id,
		CertificateNumber: cert.Number,
		VerificationCode:  cert.VerificationCode,
		IssueDate:         cert.IssueDate,
		Message:           "Certificate generated successfully",
	}}, nil
}

func (h *Handler) PDF(ctx *gin.Context) {
	gctx := &ginx.Context{Context: ctx}
	sess, err := session.Get(gctx)
	if err != nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	var req CertificateIdReq
	if err = ctx.ShouldBindJSON(&req); err != nil || req.CertificateId <= 0 {
		ctx.JSON(http.StatusOK, invalidInputResult)
		return
	}
	cert, data, err := h.svc.RenderPDF(ctx.Request.Context(), sess.Claims().Uid, req.CertificateId)
	switch {
	case errors.Is(err, service.ErrCertificateNotFound):
		ctx.JSON(http.StatusOK, certificateNotFoundResult)
		return
	case err != nil:
		h.logger.Error("生成证书 PDF 失败",
			elog.FieldErr(err),
			elog.Int64("certificateId", req.CertificateId))
		ctx.JSON(http.StatusOK, systemErrorResult)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, cert.Number))
	ctx.Data(http.StatusOK, "application/pdf", data)
}
