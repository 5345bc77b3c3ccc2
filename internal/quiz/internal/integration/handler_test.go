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
	"github.com/ecodeclub/hug/internal/progress"
	"github.com/ecodeclub/hug/internal/quiz/internal/errs"
	"github.com/ecodeclub/hug/internal/quiz/internal/integration/startup"
	"github.com/ecodeclub/hug/internal/quiz/internal/web"
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
	introLessonId = 1
	// 初始化数据里面唯一的测验
	introQuizId = 1
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
	require.NoError(s.T(), mods.Quiz.SeedJob.Start(ctx))
	// 重复执行不会写入新的数据
	require.NoError(s.T(), mods.Quiz.SeedJob.Start(ctx))
	s.progressSvc = mods.Progress.Svc
	s.db = testioc.InitDB()

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	mods.Quiz.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, tbl := range []string{"user_quiz_attempts", "user_course_enrollments", "user_lesson_progress",
		"learning_metrics", "xp_transactions", "streak_days", "user_badges"} {
		err := s.db.Exec("TRUNCATE TABLE `" + tbl + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TearDownSuite() {
	for _, tbl := range []string{"quizzes", "schools", "courses", "tracks", "learning_modules", "lessons"} {
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

func (s *HandlerTestSuite) enroll() {
	_, err := s.progressSvc.Enroll(context.Background(), uid, gitaCourseId)
	require.NoError(s.T(), err)
}

func correctAnswers() []web.Answer {
	return []web.Answer{
		{QuestionId: "q1", SelectedOption: "b"},
		{QuestionId: "q2", SelectedOption: "b"},
	}
}

func (s *HandlerTestSuite) TestDetail() {
	t := s.T()
	res := post[web.Quiz](s, t, "/learning/quizzes/detail", web.QuizIdReq{QuizId: introQuizId})
	require.Equal(t, 0, res.Code)
	assert.Equal(t, "Gita Introduction Quiz", res.Data.QuizName)
	assert.Equal(t, int64(introLessonId), res.Data.LessonId)
	assert.Equal(t, 70, res.Data.PassingScore)
	require.Len(t, res.Data.Questions, 2)
	assert.Equal(t, "q1", res.Data.Questions[0].QuestionId)
	assert.Len(t, res.Data.Questions[0].Options, 4)
	assert.Equal(t, web.UserAttempts{}, res.Data.UserAttempts)

	lres := post[web.Quiz](s, t, "/learning/quizzes/lesson", web.LessonIdReq{LessonId: introLessonId})
	require.Equal(t, 0, lres.Code)
	assert.Equal(t, res.Data.QuizId, lres.Data.QuizId)

	res = post[web.Quiz](s, t, "/learning/quizzes/detail", web.QuizIdReq{QuizId: 999})
	assert.Equal(t, errs.QuizNotFound.Code, res.Code)
}

func (s *HandlerTestSuite) TestSubmit() {
	t := s.T()
	res := post[web.SubmitResp](s, t, "/learning/quizzes/submit", web.SubmitReq{
		QuizId:  introQuizId,
		Answers: correctAnswers(),
	})
	assert.Equal(t, errs.NotEnrolled.Code, res.Code)

	s.enroll()
	res = post[web.SubmitResp](s, t, "/learning/quizzes/submit", web.SubmitReq{
		QuizId:           introQuizId,
		Answers:          correctAnswers(),
		TimeTakenSeconds: 45,
	})
	require.Equal(t, 0, res.Code)
	assert.True(t, res.Data.Passed)
	assert.Equal(t, float64(100), res.Data.Score)
	assert.Equal(t, int64(1), res.Data.AttemptNumber)
	assert.Equal(t, 2, res.Data.CorrectAnswers)
	assert.Equal(t, 2, res.Data.TotalQuestions)
	assert.Equal(t, int64(45), res.Data.TimeTakenSeconds)
	require.NotNil(t, res.Data.Rewards)
	assert.Equal(t, int64(100), res.Data.Rewards.Xp)
	assert.Equal(t, int64(20), res.Data.Rewards.Karma)

	res = post[web.SubmitResp](s, t, "/learning/quizzes/submit", web.SubmitReq{
		QuizId: introQuizId,
		Answers: []web.Answer{
			{QuestionId: "q1", SelectedOption: "a"},
			{QuestionId: "q2", SelectedOption: "b"},
		},
	})
	require.Equal(t, 0, res.Code)
	assert.False(t, res.Data.Passed)
	assert.Equal(t, float64(50), res.Data.Score)
	assert.Equal(t, int64(2), res.Data.AttemptNumber)
	assert.Nil(t, res.Data.Rewards)
	assert.Equal(t, web.QuestionResult{
		QuestionId:     "q1",
		IsCorrect:      false,
		SelectedOption: "a",
		CorrectOption:  "b",
		Explanation:    "The Bhagavad Gita consists of 700 verses.",
	}, res.Data.Results[0])

	detail := post[web.Quiz](s, t, "/learning/quizzes/detail", web.QuizIdReq{QuizId: introQuizId})
	require.Equal(t, 0, detail.Code)
	assert.Equal(t, int64(2), detail.Data.UserAttempts.AttemptsTaken)
	assert.Equal(t, float64(100), detail.Data.UserAttempts.BestScore)
	assert.NotNil(t, detail.Data.UserAttempts.LastAttemptAt)

	var m struct {
		TotalXp    int64
		TotalKarma int64
	}
	err := s.db.Table("learning_metrics").Where("uid = ?", uid).
		Select("total_xp", "total_karma").Scan(&m).Error
	require.NoError(t, err)
	assert.Equal(t, int64(100), m.TotalXp)
	assert.Equal(t, int64(20), m.TotalKarma)

	var cnt int64
	err = s.db.Table("xp_transactions").
		Where("uid = ? AND source = ? AND description = ?", uid, "quiz", "Passed quiz: Gita Introduction Quiz").
		Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(2), cnt)
}

func (s *HandlerTestSuite) TestSubmitInvalid() {
	t := s.T()
	res := post[web.SubmitResp](s, t, "/learning/quizzes/submit", web.SubmitReq{QuizId: introQuizId})
	assert.Equal(t, errs.InvalidInput.Code, res.Code)

	res = post[web.SubmitResp](s, t, "/learning/quizzes/submit", web.SubmitReq{
		QuizId:  999,
		Answers: correctAnswers(),
	})
	assert.Equal(t, errs.QuizNotFound.Code, res.Code)
}

func TestQuizHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
