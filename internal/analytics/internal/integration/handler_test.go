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
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hug/internal/analytics"
	"github.com/ecodeclub/hug/internal/analytics/internal/errs"
	"github.com/ecodeclub/hug/internal/analytics/internal/integration/startup"
	"github.com/ecodeclub/hug/internal/analytics/internal/web"
	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/test"
	testioc "github.com/ecodeclub/hug/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 123

type HandlerTestSuite struct {
	suite.Suite
	db       *egorm.Component
	server   *egin.Component
	svc      analytics.Service
	gameSvc  gamification.Service
	consumer *analytics.AnalyticsEventConsumer
}

func (s *HandlerTestSuite) SetupSuite() {
	mods, err := startup.InitModules()
	require.NoError(s.T(), err)
	s.svc = mods.Analytics.Svc
	s.gameSvc = mods.Gamification.Svc
	s.consumer = mods.Analytics.Consumer
	s.db = testioc.InitDB()

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	mods.Analytics.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, tbl := range []string{"learning_analytics_events", "learning_metrics", "streak_days",
		"xp_transactions", "user_badges", "user_lesson_progress"} {
		err := s.db.Exec("TRUNCATE TABLE `" + tbl + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TestTrack() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, "/learning/analytics/track", iox.NewJSONReader(web.TrackReq{
		EventType: "lesson_view",
		EventData: map[string]any{"lesson_id": 7},
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.TrackResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	assert.True(t, resp.Tracked)
	require.Len(t, resp.EventId, 32)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, s.consumer.Consume(ctx))

	evts, err := s.svc.Events(ctx, uid, 10)
	require.NoError(t, err)
	require.Len(t, evts, 1)
	evt := evts[0]
	assert.True(t, evt.Id > 0)
	assert.Equal(t, resp.EventId, evt.EventId)
	assert.Equal(t, "lesson_view", evt.EventType)
	assert.Equal(t, map[string]any{"lesson_id": float64(7)}, evt.EventData)
}

func (s *HandlerTestSuite) TestTrackInvalid() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, "/learning/analytics/track", iox.NewJSONReader(web.TrackReq{}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.TrackResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, test.Result[web.TrackResp]{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}, recorder.MustScan())
}

func (s *HandlerTestSuite) TestInsights() {
	testCases := []struct {
		name   string
		before func(t *testing.T)
		want   web.InsightsResp
	}{
		{
			name:   "新用户",
			before: func(t *testing.T) {},
			want: web.InsightsResp{
				Insights: web.Insights{
					LearningPace:            "slow",
					EstimatedCompletionDays: 100,
					EngagementLevel:         "low",
				},
				Recommendations: []string{
					"Try to complete at least 1 lesson per day",
					"Build a 7-day streak for consistency",
				},
			},
		},
		{
			name: "今天学习了 14 个课时",
			before: func(t *testing.T) {
				_, err := s.gameSvc.Reward(context.Background(), uid, gamification.Reward{
					Xp:               1200,
					Source:           "lesson",
					SourceId:         1,
					LessonsCompleted: 14,
					Minutes:          140,
				})
				require.NoError(t, err)
			},
			want: web.InsightsResp{
				Insights: web.Insights{
					LearningPace:            "fast",
					AvgDailyLessons:         2,
					EstimatedCompletionDays: 43,
					ConsistencyScore:        1,
					EngagementLevel:         "high",
				},
				Recommendations: []string{
					"Build a 7-day streak for consistency",
				},
			},
		},
		{
			name: "最近 7 天完成的课时",
			before: func(t *testing.T) {
				now := time.Now().UnixMilli()
				old := time.Now().AddDate(0, 0, -30).UnixMilli()
				err := s.db.Exec("INSERT INTO `user_lesson_progress`(`uid`, `lesson_id`, `status`, `progress_percentage`, "+
					"`completed_at`, `last_accessed_at`, `ctime`, `utime`) VALUES "+
					"(?, 1, 'completed', 100, ?, ?, ?, ?), (?, 2, 'completed', 100, ?, ?, ?, ?), (?, 3, 'in_progress', 40, 0, ?, ?, ?)",
					uid, now, now, now, now,
					uid, old, old, old, old,
					uid, now, now, now).Error
				require.NoError(t, err)
			},
			want: web.InsightsResp{
				Insights: web.Insights{
					LearningPace:            "slow",
					EstimatedCompletionDays: 100,
					EngagementLevel:         "low",
					LessonsCompleted7d:      1,
				},
				Recommendations: []string{
					"Try to complete at least 1 lesson per day",
					"Build a 7-day streak for consistency",
				},
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodGet, "/learning/analytics/insights", nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.InsightsResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			assert.Equal(t, tc.want, recorder.MustScan().Data)
			s.TearDownTest()
		})
	}
}

func TestAnalyticsHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
