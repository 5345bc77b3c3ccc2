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
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hug/internal/activity/internal/errs"
	"github.com/ecodeclub/hug/internal/activity/internal/integration/startup"
	"github.com/ecodeclub/hug/internal/activity/internal/web"
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
)

const (
	uid           = 123
	gitaCourseId  = 1
	dharmaLesson  = 2
	introLessonId = 1
)

type HandlerTestSuite struct {
	suite.Suite
	db          *egorm.Component
	server      *egin.Component
	progressSvc progress.Service
}

func (s *HandlerTestSuite) SetupSuite() {
	mods, err := startup.InitModules()
	require.NoError(s.T(), err)
	ctx := ejob.Context{Ctx: context.Background()}
	require.NoError(s.T(), mods.Course.SeedJob.Start(ctx))
	require.NoError(s.T(), mods.Activity.SeedJob.Start(ctx))
	s.progressSvc = mods.Progress.Svc
	s.db = testioc.InitDB()

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	mods.Activity.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, tbl := range []string{"user_activity_submissions", "user_course_enrollments",
		"learning_metrics", "xp_transactions", "streak_days", "user_badges"} {
		err := s.db.Exec("TRUNCATE TABLE `" + tbl + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TearDownSuite() {
	for _, tbl := range []string{"activities", "schools", "courses", "tracks", "learning_modules", "lessons"} {
		err := s.db.Exec("TRUNCATE TABLE `" + tbl + "`").Error
		require.NoError(s.T(), err)
	}
	_, err := testioc.InitCache().Delete(context.Background(), "course:schools", "course:detail:1")
	require.NoError(s.T(), err)
}

func post[T any](s *HandlerTestSuite, t *testing.T, path string, body any) test.Result[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) dharmaActivities() []web.Activity {
	res := post[web.ActivityList](s, s.T(), "/learning/activities/list", web.LessonIdReq{LessonId: dharmaLesson})
	require.Equal(s.T(), 0, res.Code)
	return res.Data.Activities
}

func (s *HandlerTestSuite) TestList() {
	t := s.T()
	as := s.dharmaActivities()
	require.Len(t, as, 2)
	assert.Equal(t, "reflection", as[0].ActivityType)
	assert.True(t, as[0].IsRequired)
	assert.Equal(t, "Reflecting on Dharma", as[0].Content.Title)
	assert.Equal(t, "practice", as[1].ActivityType)

	res := post[web.ActivityList](s, t, "/learning/activities/list", web.LessonIdReq{LessonId: introLessonId})
	require.Equal(t, 0, res.Code)
	assert.Len(t, res.Data.Activities, 1)

	res = post[web.ActivityList](s, t, "/learning/activities/list", web.LessonIdReq{LessonId: 999})
	require.Equal(t, 0, res.Code)
	assert.Len(t, res.Data.Activities, 0)
}

func (s *HandlerTestSuite) TestSubmit() {
	t := s.T()
	as := s.dharmaActivities()
	req := web.SubmitReq{ActivityId: as[0].ActivityId, Content: "I chose the harder path."}

	res := post[web.SubmitResp](s, t, "/learning/activities/submit", req)
	assert.Equal(t, errs.NotEnrolled.Code, res.Code)

	res = post[web.SubmitResp](s, t, "/learning/activities/submit", web.SubmitReq{ActivityId: 999})
	assert.Equal(t, errs.ActivityNotFound.Code, res.Code)

	_, err := s.progressSvc.Enroll(context.Background(), uid, gitaCourseId)
	require.NoError(t, err)
	res = post[web.SubmitResp](s, t, "/learning/activities/submit", req)
	require.Equal(t, 0, res.Code)
	assert.Equal(t, "submitted", res.Data.Status)
	assert.Equal(t, int64(10), res.Data.Rewards.Karma)
	assert.True(t, res.Data.SubmittedAt > 0)

	var subType string
	err = s.db.Table("user_activity_submissions").Where("id = ?", res.Data.SubmissionId).
		Select("submission_type").Scan(&subType).Error
	require.NoError(t, err)
	assert.Equal(t, "text", subType)

	var karma int64
	err = s.db.Table("learning_metrics").Where("uid = ?", uid).
		Select("total_karma").Scan(&karma).Error
	require.NoError(t, err)
	assert.Equal(t, int64(10), karma)

	var cnt int64
	err = s.db.Table("xp_transactions").
		Where("uid = ? AND type = ? AND source = ? AND amount = ?", uid, "karma", "activity", 10).
		Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func (s *HandlerTestSuite) TestSubmissions() {
	t := s.T()
	_, err := s.progressSvc.Enroll(context.Background(), uid, gitaCourseId)
	require.NoError(t, err)
	as := s.dharmaActivities()
	for _, a := range as {
		res := post[web.SubmitResp](s, t, "/learning/activities/submit", web.SubmitReq{
			ActivityId:     a.ActivityId,
			SubmissionType: "text",
			Content:        "done",
		})
		require.Equal(t, 0, res.Code)
	}

	res := post[web.SubmissionList](s, t, "/learning/activities/submissions", web.SubmissionListReq{Limit: 1})
	require.Equal(t, 0, res.Code)
	assert.Equal(t, web.Pagination{CurrentPage: 1, TotalPages: 2, TotalItems: 2}, res.Data.Pagination)
	require.Len(t, res.Data.Submissions, 1)
	assert.Equal(t, "Understanding Dharma", res.Data.Submissions[0].LessonName)
	assert.Nil(t, res.Data.Submissions[0].ReviewedAt)

	res = post[web.SubmissionList](s, t, "/learning/activities/submissions", web.SubmissionListReq{Status: "reviewed"})
	require.Equal(t, 0, res.Code)
	assert.Equal(t, int64(0), res.Data.Pagination.TotalItems)
	assert.Len(t, res.Data.Submissions, 0)
}

func TestActivityHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
