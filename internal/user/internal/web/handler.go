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
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hug/internal/user/internal/domain"
	"github.com/ecodeclub/hug/internal/user/internal/errs"
	"github.com/ecodeclub/hug/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	tokenType = "Bearer"
	// access token 的有效期，单位秒
	accessTokenExpiresIn = 3600
	forgotPasswordMsg    = "If an account exists with this email, a password reset link has been sent"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/auth")
	g.POST("/register", ginx.B[RegisterReq](h.Register))
	g.POST("/login", ginx.B[LoginReq](h.Login))
	g.POST("/refresh", ginx.W(h.RefreshAccessToken))
	g.POST("/forgot-password", ginx.B[ForgotPasswordReq](h.ForgotPassword))
	g.POST("/reset-password", ginx.B[ResetPasswordReq](h.ResetPassword))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/auth")
	g.POST("/logout", ginx.S(h.Logout))
	g.GET("/me", ginx.S(h.Me))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	if req.Email == "" && req.Phone == "" {
		return invalidInputResult, nil
	}
	u := domain.User{
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Name:     strings.TrimSpace(req.Name),
	}
	if !u.PasswordValid() || u.Name == "" {
		return invalidInputResult, nil
	}
	u, err := h.userSvc.Register(ctx, u)
	switch {
	case errors.Is(err, service.ErrUserDuplicate):
		return ginx.Result{
			Code: errs.UserDuplicate.Code,
			Msg:  errs.UserDuplicate.Msg,
		}, nil
	case err != nil:
		return systemErrorResult, err
	}
	return h.newSession(ctx, u)
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	if req.Password == "" || (req.Email == "" && req.Phone == "") {
		return invalidInputResult, nil
	}
	u, err := h.userSvc.Login(ctx, req.Email, req.Phone, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return invalidCredentialsResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return h.newSession(ctx, u)
}

func (h *Handler) newSession(ctx *ginx.Context, u domain.User) (ginx.Result, error) {
	// token 放在 header 里面：X-Access-Token 和 X-Refresh-Token
	_, err := session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			"name": u.Name,
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: LoginResp{
			TokenType: tokenType,
			ExpiresIn: accessTokenExpiresIn,
			User:      newProfile(u),
		},
	}, nil
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
		Data: LoginResp{
			TokenType: tokenType,
			ExpiresIn: accessTokenExpiresIn,
		},
	}, nil
}

func (h *Handler) Logout(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := sess.Destroy(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "Logged out successfully"}, nil
}

func (h *Handler) Me(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) ForgotPassword(ctx *ginx.Context, req ForgotPasswordReq) (ginx.Result, error) {
	if req.Email == "" {
		return invalidInputResult, nil
	}
	err := h.userSvc.ForgotPassword(ctx, req.Email)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: forgotPasswordMsg}, nil
}

func (h *Handler) ResetPassword(ctx *ginx.Context, req ResetPasswordReq) (ginx.Result, error) {
	u := domain.User{Password: req.NewPassword}
	if req.Token == "" || !u.PasswordValid() {
		return invalidInputResult, nil
	}
	return ginx.Result{
		Code: errs.NotImplemented.Code,
		Msg:  errs.NotImplemented.Msg,
	}, nil
}
