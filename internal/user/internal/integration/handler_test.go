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

//go:build e2e

package integration

import (
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hug/internal/test"
	testioc "github.com/ecodeclub/hug/internal/test/ioc"
	"github.com/ecodeclub/hug/internal/user/internal/errs"
	"github.com/ecodeclub/hug/internal/user/internal/integration/startup"
	"github.com/ecodeclub/hug/internal/user/internal/repository/dao"
	"github.com/ecodeclub/hug/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type HandlerTestSuite struct {
	suite.Suite
	db     *egorm.Component
	server *egin.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	m := startup.InitModule()
	s.db = testioc.InitDB()
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	m.Hdl.PublicRoutes(server.Engine)
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: 123,
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestRegister() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		after    func(t *testing.T)
		req      web.RegisterReq
		wantCode int
		wantResp test.Result[web.LoginResp]
	}{
		{
			name:   "邮箱注册成功",
			before: func(t *testing.T) {},
			after: func(t *testing.T) {
				var u dao.User
				err := s.db.Where("email = ?", "arjuna@hug.org").First(&u).Error
				require.NoError(t, err)
				assert.Equal(t, "Arjuna", u.Name)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("gandiva123")))
				assert.True(t, u.Ctime > 0)
			},
			req: web.RegisterReq{
				Email:    "Arjuna@hug.org",
				Password: "gandiva123",
				Name:     " Arjuna ",
			},
			wantCode: 200,
			wantResp: test.Result[web.LoginResp]{
				Data: web.LoginResp{
					TokenType: "Bearer",
					ExpiresIn: 3600,
					User: web.Profile{
						Id:    1,
						Email: "arjuna@hug.org",
						Name:  "Arjuna",
					},
				},
			},
		},
		{
			name:   "手机号注册成功，手机号归一化",
			before: func(t *testing.T) {},
			after: func(t *testing.T) {
				var u dao.User
				err := s.db.Where("phone = ?", "919876543210").First(&u).Error
				require.NoError(t, err)
				assert.Equal(t, "Bhima", u.Name)
			},
			req: web.RegisterReq{
				Phone:    "+91 98765-43210",
				Password: "gada1234",
				Name:     "Bhima",
			},
			wantCode: 200,
			wantResp: test.Result[web.LoginResp]{
				Data: web.LoginResp{
					TokenType: "Bearer",
					ExpiresIn: 3600,
					User: web.Profile{
						Id:    1,
						Phone: "919876543210",
						Name:  "Bhima",
					},
				},
			},
		},
		{
			name: "邮箱已经注册",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.User{
					Email: sql.NullString{String: "karna@hug.org", Valid: true},
					Name:  "Karna",
				}).Error
				require.NoError(t, err)
			},
			after: func(t *testing.T) {},
			req: web.RegisterReq{
				Email:    "karna@hug.org",
				Password: "kavacha123",
				Name:     "Karna",
			},
			wantCode: 200,
			wantResp: test.Result[web.LoginResp]{
				Code: errs.UserDuplicate.Code,
				Msg:  errs.UserDuplicate.Msg,
			},
		},
		{
			name:   "密码太短",
			before: func(t *testing.T) {},
			after:  func(t *testing.T) {},
			req: web.RegisterReq{
				Email:    "nakula@hug.org",
				Password: "123",
				Name:     "Nakula",
			},
			wantCode: 200,
			wantResp: test.Result[web.LoginResp]{
				Code: errs.InvalidInput.Code,
				Msg:  errs.InvalidInput.Msg,
			},
		},
		{
			name:   "缺少名字",
			before: func(t *testing.T) {},
			after:  func(t *testing.T) {},
			req: web.RegisterReq{
				Email:    "sahadeva@hug.org",
				Password: "123456",
				Name:     "  ",
			},
			wantCode: 200,
			wantResp: test.Result[web.LoginResp]{
				Code: errs.InvalidInput.Code,
				Msg:  errs.InvalidInput.Msg,
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/auth/register", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.LoginResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
			tc.after(t)
			err = s.db.Exec("TRUNCATE TABLE `users`").Error
			require.NoError(t, err)
		})
	}
}

func (s *HandlerTestSuite) TestLogin() {
	hash, err := bcrypt.GenerateFromPassword([]byte("dharma123"), bcrypt.DefaultCost)
	require.NoError(s.T(), err)
	now := time.Now().UnixMilli()
	err = s.db.Create(&dao.User{
		Id:       7,
		Email:    sql.NullString{String: "yudhishthira@hug.org", Valid: true},
		Phone:    sql.NullString{String: "919000000001", Valid: true},
		Password: string(hash),
		Name:     "Yudhishthira",
		Ctime:    now,
		Utime:    now,
	}).Error
	require.NoError(s.T(), err)

	testCases := []struct {
		name     string
		req      web.LoginReq
		wantResp test.Result[web.LoginResp]
	}{
		{
			name: "邮箱登录",
			req: web.LoginReq{
				Email:    "yudhishthira@hug.org",
				Password: "dharma123",
			},
			wantResp: test.Result[web.LoginResp]{
				Data: web.LoginResp{
					TokenType: "Bearer",
					ExpiresIn: 3600,
					User: web.Profile{
						Id:    7,
						Email: "yudhishthira@hug.org",
						Phone: "919000000001",
						Name:  "Yudhishthira",
					},
				},
			},
		},
		{
			name: "手机号登录",
			req: web.LoginReq{
				Phone:    "+91 90000 00001",
				Password: "dharma123",
			},
			wantResp: test.Result[web.LoginResp]{
				Data: web.LoginResp{
					TokenType: "Bearer",
					ExpiresIn: 3600,
					User: web.Profile{
						Id:    7,
						Email: "yudhishthira@hug.org",
						Phone: "919000000001",
						Name:  "Yudhishthira",
					},
				},
			},
		},
		{
			name: "密码错误",
			req: web.LoginReq{
				Email:    "yudhishthira@hug.org",
				Password: "adharma",
			},
			wantResp: test.Result[web.LoginResp]{
				Code: errs.InvalidCredentials.Code,
				Msg:  errs.InvalidCredentials.Msg,
			},
		},
		{
			name: "用户不存在",
			req: web.LoginReq{
				Email:    "duryodhana@hug.org",
				Password: "dharma123",
			},
			wantResp: test.Result[web.LoginResp]{
				Code: errs.InvalidCredentials.Code,
				Msg:  errs.InvalidCredentials.Msg,
			},
		},
		{
			name: "缺少密码",
			req: web.LoginReq{
				Email: "yudhishthira@hug.org",
			},
			wantResp: test.Result[web.LoginResp]{
				Code: errs.InvalidInput.Code,
				Msg:  errs.InvalidInput.Msg,
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/auth/login", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.LoginResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func (s *HandlerTestSuite) TestForgotAndResetPassword() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/auth/forgot-password", iox.NewJSONReader(web.ForgotPasswordReq{Email: "nobody@hug.org"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(t, 0, res.Code)
	assert.Contains(t, res.Msg, "password reset link")

	req, err = http.NewRequest(http.MethodPost,
		"/auth/reset-password", iox.NewJSONReader(web.ResetPasswordReq{Token: "abc", NewPassword: "123"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, errs.InvalidInput.Code, recorder.MustScan().Code)

	req, err = http.NewRequest(http.MethodPost,
		"/auth/reset-password", iox.NewJSONReader(web.ResetPasswordReq{Token: "abc", NewPassword: "123456"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, errs.NotImplemented.Code, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestMe() {
	t := s.T()
	err := s.db.Create(&dao.User{
		Id:    123,
		Email: sql.NullString{String: "draupadi@hug.org", Valid: true},
		Name:  "Draupadi",
	}).Error
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodGet, "/auth/me", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, web.Profile{
		Id:    123,
		Email: "draupadi@hug.org",
		Name:  "Draupadi",
	}, recorder.MustScan().Data)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
