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
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hug/internal/certificate/internal/errs"
	"github.com/ecodeclub/hug/internal/certificate/internal/integration/startup"
	"github.com/ecodeclub/hug/internal/certificate/internal/web"
	pdfmocks "github.com/ecodeclub/hug/internal/pkg/pdf/mocks"
	"github.com/ecodeclub/hug/internal/progress"
	"github.com/ecodeclub/hug/internal/test"
	testioc "github.com/ecodeclub/hug/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ejob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	uid          = 123
	gitaCourseId = 1
)

var numberPattern = regexp.MustCompile(`^HUG-BHA-\d{4}-[0-9A-F]{8}$`)

type HandlerTestSuite struct {
	suite.Suite
	db          *egorm.Component
	server      *egin.Component
	ctrl        *gomock.Controller
	converter   *pdfmocks.MockConverter
	progressSvc progress.Service
}

func (s *HandlerTestSuite) SetupSuite() {
	s.ctrl = gomock.NewController(s.T())
	s.converter = pdfmocks.NewMockConverter(s.ctrl)
	mods, err := startup.InitModules(s.converter)
	require.NoError(s.T(), err)
	require.NoError(s.T(), mods.Course.SeedJob.Start(ejob.Context{Ctx: context.Background()}))
	s.progressSvc = mods.Progress.Svc
	s.db = testioc.InitDB()

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	mods.Certificate.Hdl.PublicRoutes(server.Engine)
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	mods.Certificate.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) SetupTest() {
	now := time.Now().UnixMilli()
	err := s.db.Table("users").Create(map[string]any{
		"id":    uid,
		"name":  "Arjuna",
		"ctime": now,
		"utime": now,
	}).Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, tbl := range []string{"certificates", "users", "user_course_enrollments", "user_lesson_progress"} {
		err := s.db.Exec("TRUNCATE TABLE `" + tbl + "`").Error
		require.NoError(s.T(), err)
	}
	_, err := testioc.InitCache().Delete(context.Background(), "user:info:123")
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownSuite() {
	s.ctrl.Finish()
	for _, tbl := range []string{"schools", "courses", "tracks", "learning_modules", "lessons"} {
		err := s.db.Exec("TRUNCATE TABLE `" + tbl + "`").Error
		require.NoError(s.T(), err)
	}
	_, err := testioc.InitCache().Delete(context.Background(), "course:schools", "course:detail:1")
	require.NoError(s.T(), err)
}

func do[T any](s *HandlerTestSuite, t *testing.T, method, path string, body any) test.Result[T] {
	req, err := http.NewRequest(method, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan()
}

// completeCourse 直接改报名状态，课时流程在 progress 模块里面测试
func (s *HandlerTestSuite) completeCourse() {
	_, err := s.progressSvc.Enroll(context.Background(), uid, gitaCourseId)
	require.NoError(s.T(), err)
	err = s.db.Table("user_course_enrollments").
		Where("uid = ? AND course_id = ?", uid, gitaCourseId).
		Updates(map[string]any{"status": progress.StatusCompleted, "completed_at": time.Now().UnixMilli()}).Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestGenerate() {
	t := s.T()
	req := web.GenerateReq{CourseId: gitaCourseId}

	res := do[web.GenerateResp](s, t, http.MethodPost, "/learning/certificates/generate", req)
	assert.Equal(t, errs.CourseNotCompleted.Code, res.Code)

	_, err := s.progressSvc.Enroll(context.Background(), uid, gitaCourseId)
	require.NoError(t, err)
	res = do[web.GenerateResp](s, t, http.MethodPost, "/learning/certificates/generate", req)
	assert.Equal(t, errs.CourseNotCompleted.Code, res.Code)

	res = do[web.GenerateResp](s, t, http.MethodPost, "/learning/certificates/generate",
		web.GenerateReq{CourseId: 999})
	assert.Equal(t, errs.CourseNotFound.Code, res.Code)

	s.completeCourse()
	res = do[web.GenerateResp](s, t, http.MethodPost, "/learning/certificates/generate", req)
	require.Equal(t, 0, res.Code)
	assert.Regexp(t, numberPattern, res.Data.CertificateNumber)
	assert.Regexp(t, `^[0-9A-F]{16}$`, res.Data.VerificationCode)
	assert.Equal(t, time.Now().Format(time.DateOnly), res.Data.IssueDate)
	assert.Equal(t, "Certificate generated successfully", res.Data.Message)

	res = do[web.GenerateResp](s, t, http.MethodPost, "/learning/certificates/generate", req)
	assert.Equal(t, errs.CertificateExists.Code, res.Code)

	list := do[web.CertificateList](s, t, http.MethodGet, "/learning/certificates/me", nil)
	require.Equal(t, 0, list.Code)
	require.Len(t, list.Data.Certificates, 1)
	cert := list.Data.Certificates[0]
	assert.Equal(t, "Bhagavad Gita - Life & Leadership", cert.CourseName)
	assert.Equal(t, "completion", cert.CertificateType)
	assert.True(t, cert.IsShareable)

	verify := do[web.VerifyResp](s, t, http.MethodPost, "/learning/certificates/verify",
		web.VerifyReq{VerificationCode: cert.VerificationCode})
	require.Equal(t, 0, verify.Code)
	assert.Equal(t, web.VerifyResp{
		IsValid:           true,
		CertificateNumber: cert.CertificateNumber,
		CourseName:        "Bhagavad Gita - Life & Leadership",
		CertificateType:   "completion",
		IssueDate:         cert.IssueDate,
		Uid:               uid,
		UserName:          "Arjuna",
	}, verify.Data)
}

func (s *HandlerTestSuite) TestVerifyUnknown() {
	t := s.T()
	res := do[web.VerifyResp](s, t, http.MethodPost, "/learning/certificates/verify",
		web.VerifyReq{VerificationCode: "FFFFFFFFFFFFFFFF"})
	require.Equal(t, 0, res.Code)
	assert.False(t, res.Data.IsValid)

	res = do[web.VerifyResp](s, t, http.MethodPost, "/learning/certificates/verify", web.VerifyReq{})
	assert.Equal(t, errs.InvalidInput.Code, res.Code)
}

func (s *HandlerTestSuite) TestPDF() {
	t := s.T()
	s.completeCourse()
	gen := do[web.GenerateResp](s, t, http.MethodPost, "/learning/certificates/generate",
		web.GenerateReq{CourseId: gitaCourseId})
	require.Equal(t, 0, gen.Code)

	s.converter.EXPECT().ConvertHTMLToPDF(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte("%PDF-1.4"), nil)
	req, err := http.NewRequest(http.MethodPost, "/learning/certificates/pdf",
		iox.NewJSONReader(web.CertificateIdReq{CertificateId: gen.Data.CertificateId}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, "application/pdf", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.4", recorder.Body.String())

	res := do[any](s, t, http.MethodPost, "/learning/certificates/pdf",
		web.CertificateIdReq{CertificateId: 999})
	assert.Equal(t, errs.CertificateNotFound.Code, res.Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
