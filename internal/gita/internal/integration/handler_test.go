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
	"github.com/ecodeclub/hug/internal/gita"
	"github.com/ecodeclub/hug/internal/gita/internal/errs"
	"github.com/ecodeclub/hug/internal/gita/internal/integration/startup"
	"github.com/ecodeclub/hug/internal/gita/internal/web"
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

const uid = 456

type HandlerTestSuite struct {
	suite.Suite
	db     *egorm.Component
	server *egin.Component
	// 初始化数据里面 1.1 和 1.2 两颂的 id
	firstId  int64
	secondId int64
}

func (s *HandlerTestSuite) SetupSuite() {
	mod, err := startup.InitModule()
	require.NoError(s.T(), err)
	err = mod.SeedJob.Start(ejob.Context{Ctx: context.Background()})
	require.NoError(s.T(), err)
	s.db = testioc.InitDB()

	c, err := mod.Svc.Chapter(context.Background(), 1)
	require.NoError(s.T(), err)
	require.Len(s.T(), c.Shlokas, 2)
	s.firstId, s.secondId = c.Shlokas[0].Id, c.Shlokas[1].Id

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	mod.Hdl.PublicRoutes(server.Engine)
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	mod.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, tbl := range []string{"user_shloka_progress", "learning_metrics",
		"xp_transactions", "streak_days", "user_badges"} {
		err := s.db.Exec("TRUNCATE TABLE `" + tbl + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TearDownSuite() {
	for _, tbl := range []string{"gita_chapters", "gita_shlokas",
		"gita_shloka_translations", "gita_audio_files"} {
		err := s.db.Exec("TRUNCATE TABLE `" + tbl + "`").Error
		require.NoError(s.T(), err)
	}
	err := s.db.Exec("DELETE FROM `badges` WHERE `slug` IN ?", []string{"gita-initiate", "karma-yogi",
		"bhakti-sadhak", "jnana-seeker", "gita-warrior", "gita-jeevan-acharya"}).Error
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

func get[T any](s *HandlerTestSuite, t *testing.T, path string) test.Result[T] {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[T]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) TestChapters() {
	t := s.T()
	res := get[web.ChapterList](s, t, "/gita/chapters")
	require.Equal(t, 0, res.Code)
	require.Len(t, res.Data.Chapters, 18)
	total := 0
	for i, c := range res.Data.Chapters {
		assert.Equal(t, i+1, c.ChapterNumber)
		total += c.TotalShlokas
	}
	assert.Equal(t, gita.TotalShlokas, total)
	assert.Equal(t, "Arjuna Vishada Yoga", res.Data.Chapters[0].ChapterName)
	assert.Equal(t, 5, res.Data.Chapters[17].LevelNumber)
}

func (s *HandlerTestSuite) TestChapterDetail() {
	t := s.T()
	res := post[web.ChapterDetail](s, t, "/gita/chapters/detail", web.ChapterReq{ChapterNumber: 1})
	require.Equal(t, 0, res.Code)
	require.Len(t, res.Data.Shlokas, 2)
	assert.Equal(t, 1, res.Data.Shlokas[0].ShlokaNumber)
	assert.Equal(t, int64(2), res.Data.Shlokas[0].XpReward)

	res = post[web.ChapterDetail](s, t, "/gita/chapters/detail", web.ChapterReq{ChapterNumber: 2})
	require.Equal(t, 0, res.Code)
	assert.Len(t, res.Data.Shlokas, 0)

	res = post[web.ChapterDetail](s, t, "/gita/chapters/detail", web.ChapterReq{ChapterNumber: 19})
	assert.Equal(t, errs.ChapterNotFound.Code, res.Code)
}

func (s *HandlerTestSuite) TestShlokaDetail() {
	t := s.T()
	res := post[web.ShlokaDetail](s, t, "/gita/shlokas/detail", web.ShlokaReq{ShlokaId: s.firstId})
	require.Equal(t, 0, res.Code)
	assert.Equal(t, 1, res.Data.Chapter.ChapterNumber)
	require.Len(t, res.Data.Translations, 1)
	assert.Equal(t, "en", res.Data.Translations[0].Language)
	require.Len(t, res.Data.AudioFiles, 1)
	assert.Equal(t, "sanskrit", res.Data.AudioFiles[0].AudioType)

	res = post[web.ShlokaDetail](s, t, "/gita/shlokas/detail", web.ShlokaReq{ShlokaId: s.secondId, Language: "hi"})
	require.Equal(t, 0, res.Code)
	require.Len(t, res.Data.Translations, 1)
	assert.Equal(t, "hi", res.Data.Translations[0].Language)
	assert.Len(t, res.Data.AudioFiles, 0)

	res = post[web.ShlokaDetail](s, t, "/gita/shlokas/detail", web.ShlokaReq{ShlokaId: 99999})
	assert.Equal(t, errs.ShlokaNotFound.Code, res.Code)
}

func (s *HandlerTestSuite) TestLevels() {
	t := s.T()
	res := get[web.LevelList](s, t, "/gita/levels")
	require.Equal(t, 0, res.Code)
	require.Len(t, res.Data.Levels, 5)
	// 第一级包含第一章和第二章
	assert.Equal(t, 2, res.Data.Levels[0].TotalChapters)
	assert.Equal(t, 47+72, res.Data.Levels[0].TotalShlokas)
	assert.Equal(t, "karma-yogi", res.Data.Levels[1].BadgeSlug)
	assert.Equal(t, 3, res.Data.Levels[4].TotalChapters)

	detail := post[web.Level](s, t, "/gita/levels/detail", web.LevelReq{LevelNumber: 1})
	require.Equal(t, 0, detail.Code)
	require.Len(t, detail.Data.Chapters, 2)
	assert.Len(t, detail.Data.Chapters[0].Shlokas, 2)

	detail = post[web.Level](s, t, "/gita/levels/detail", web.LevelReq{LevelNumber: 6})
	assert.Equal(t, errs.InvalidInput.Code, detail.Code)
}

func (s *HandlerTestSuite) TestProgress() {
	t := s.T()
	yes := true
	res := post[web.ProgressResult](s, t, "/gita/progress", web.ProgressReq{
		ShlokaId:           s.firstId,
		Status:             "in_progress",
		TimeSpentSeconds:   40,
		HasListenedMeaning: &yes,
	})
	require.Equal(t, 0, res.Code)
	assert.False(t, res.Data.Rewarded)
	assert.True(t, res.Data.HasListenedMeaning)
	assert.Equal(t, int64(0), res.Data.XpEarned)

	res = post[web.ProgressResult](s, t, "/gita/progress", web.ProgressReq{
		ShlokaId:   s.firstId,
		Status:     "completed",
		Reflection: "Every battle begins inside",
	})
	require.Equal(t, 0, res.Code)
	assert.True(t, res.Data.Rewarded)
	assert.Equal(t, int64(2), res.Data.XpEarned)
	assert.Equal(t, int64(40), res.Data.TimeSpentSeconds)
	assert.True(t, res.Data.HasListenedMeaning)
	completedAt := res.Data.CompletedAt
	assert.True(t, completedAt > 0)

	// 重复完成不再奖励
	res = post[web.ProgressResult](s, t, "/gita/progress", web.ProgressReq{
		ShlokaId: s.firstId,
		Status:   "completed",
	})
	require.Equal(t, 0, res.Code)
	assert.False(t, res.Data.Rewarded)
	assert.Equal(t, completedAt, res.Data.CompletedAt)

	var xp int64
	err := s.db.Table("learning_metrics").Select("total_xp").Where("uid = ?", uid).Scan(&xp).Error
	require.NoError(t, err)
	assert.Equal(t, int64(2), xp)

	res = post[web.ProgressResult](s, t, "/gita/progress", web.ProgressReq{ShlokaId: s.secondId})
	require.Equal(t, 0, res.Code)
	assert.Equal(t, "not_started", res.Data.Status)

	list := get[web.ProgressList](s, t, "/gita/progress")
	require.Equal(t, 0, list.Code)
	assert.Equal(t, web.ProgressStats{
		TotalShlokas:  700,
		Completed:     1,
		NotStarted:    698,
		TotalXpEarned: 2,
	}, list.Data.Stats)
	require.Len(t, list.Data.Progress, 2)
	// 最近访问的排在前面
	assert.Equal(t, s.secondId, list.Data.Progress[0].ShlokaId)
	require.NotNil(t, list.Data.Progress[1].Shloka)
	assert.Equal(t, 1, list.Data.Progress[1].Shloka.Chapter.ChapterNumber)
}

func (s *HandlerTestSuite) TestProgressInvalid() {
	t := s.T()
	res := post[web.ProgressResult](s, t, "/gita/progress", web.ProgressReq{ShlokaId: s.firstId, Status: "done"})
	assert.Equal(t, errs.InvalidInput.Code, res.Code)

	res = post[web.ProgressResult](s, t, "/gita/progress", web.ProgressReq{ShlokaId: 99999})
	assert.Equal(t, errs.ShlokaNotFound.Code, res.Code)
}

func TestGitaHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
