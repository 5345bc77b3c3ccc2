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
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/gamification/internal/errs"
	"github.com/ecodeclub/hug/internal/gamification/internal/event"
	"github.com/ecodeclub/hug/internal/gamification/internal/integration/startup"
	"github.com/ecodeclub/hug/internal/gamification/internal/repository/dao"
	"github.com/ecodeclub/hug/internal/gamification/internal/web"
	"github.com/ecodeclub/hug/internal/test"
	testioc "github.com/ecodeclub/hug/internal/test/ioc"
	"github.com/ecodeclub/hug/internal/user"
	usermocks "github.com/ecodeclub/hug/internal/user/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const uid = 123

type HandlerTestSuite struct {
	suite.Suite
	db       *egorm.Component
	server   *egin.Component
	svc      gamification.Service
	consumer mq.Consumer
}

func (s *HandlerTestSuite) SetupSuite() {
	ctrl := gomock.NewController(s.T())
	userSvc := usermocks.NewMockUserService(ctrl)
	userSvc.EXPECT().BatchProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ids []int64) ([]user.User, error) {
			res := make([]user.User, 0, len(ids))
			for _, id := range ids {
				if id == uid {
					res = append(res, user.User{Id: id, Name: "Arjuna"})
				}
			}
			return res, nil
		}).AnyTimes()

	m, err := startup.InitModule(&user.Module{Svc: userSvc})
	require.NoError(s.T(), err)
	s.svc = m.Svc
	s.db = testioc.InitDB()

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server

	s.consumer, err = testioc.InitMQ().Consumer(event.NotificationTopic, "gamification-test")
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"learning_metrics", "xp_transactions", "streak_days", "user_badges"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
	ec := testioc.InitCache()
	for _, typ := range []string{"xp", "karma", "streak"} {
		_, err := ec.Delete(context.Background(), "gamification:leaderboard:"+typ)
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TestReward() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := s.svc.Reward(ctx, uid, gamification.Reward{
		Xp:               50,
		Karma:            5,
		Source:           "lesson",
		SourceId:         1,
		Description:      "Completed lesson: Introduction to the Gita",
		LessonsCompleted: 1,
		Minutes:          5,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{gamification.BadgeFirstLesson}, res.Badges)
	assert.Equal(t, int64(50), res.Metrics.TotalXp)
	assert.Equal(t, int64(1), res.Metrics.CurrentStreak)

	// 同一天第二次，不会重复发徽章
	res, err = s.svc.Reward(ctx, uid, gamification.Reward{
		Xp:               40,
		Source:           "lesson",
		SourceId:         2,
		LessonsCompleted: 1,
		Minutes:          4,
	})
	require.NoError(t, err)
	assert.Empty(t, res.Badges)

	var m dao.Metrics
	require.NoError(t, s.db.Where("uid = ?", uid).First(&m).Error)
	assert.Equal(t, int64(90), m.TotalXp)
	assert.Equal(t, int64(5), m.TotalKarma)
	assert.Equal(t, int64(2), m.TotalLessonsCompleted)
	assert.Equal(t, int64(9), m.TotalTimeSpentMinutes)
	assert.Equal(t, int64(1), m.CurrentStreak)
	assert.Equal(t, int64(1), m.LongestStreak)

	var day dao.StreakDay
	require.NoError(t, s.db.Where("uid = ?", uid).First(&day).Error)
	assert.Equal(t, time.Now().Format(time.DateOnly), day.Date)
	assert.Equal(t, int64(2), day.LessonsCompleted)
	assert.Equal(t, int64(20), day.XpEarned)

	var txCnt int64
	require.NoError(t, s.db.Model(&dao.Transaction{}).Where("uid = ?", uid).Count(&txCnt).Error)
	assert.Equal(t, int64(3), txCnt)

	msg, err := s.consumer.Consume(ctx)
	require.NoError(t, err)
	var evt event.NotificationEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.Equal(t, event.TypeBadgeEarned, evt.Type)
	assert.Equal(t, int64(uid), evt.Uid)
}

func (s *HandlerTestSuite) TestStreakContinues() {
	t := s.T()
	yesterday := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)
	now := time.Now().UnixMilli()
	require.NoError(t, s.db.Create(&dao.Metrics{
		Uid: uid, WisdomLevel: 1, CurrentStreak: 3, LongestStreak: 3, Ctime: now, Utime: now,
	}).Error)
	require.NoError(t, s.db.Create(&dao.StreakDay{
		Uid: uid, Date: yesterday, LessonsCompleted: 1, XpEarned: 10, Ctime: now, Utime: now,
	}).Error)

	res, err := s.svc.Reward(context.Background(), uid, gamification.Reward{
		Xp: 10, Source: "lesson", LessonsCompleted: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Metrics.CurrentStreak)
	assert.Equal(t, int64(4), res.Metrics.LongestStreak)
}

func (s *HandlerTestSuite) TestMetrics() {
	t := s.T()
	req, err := http.NewRequest(http.MethodGet, "/learning/gamification/metrics", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Metrics]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, web.Metrics{
		Uid:         uid,
		WisdomLevel: 1,
		NextLevelXp: 1000,
		Rank:        "Beginner",
	}, recorder.MustScan().Data)
}

func (s *HandlerTestSuite) TestBadges() {
	t := s.T()
	_, err := s.svc.Reward(context.Background(), uid, gamification.Reward{
		Xp: 50, Source: "lesson", LessonsCompleted: 1,
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, "/learning/gamification/badges", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.BadgeList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	res := recorder.MustScan().Data
	require.Len(t, res.Earned, 1)
	assert.Equal(t, gamification.BadgeFirstLesson, res.Earned[0].Slug)
	assert.True(t, res.Earned[0].EarnedAt > 0)
	for _, b := range res.Available {
		assert.NotEqual(t, gamification.BadgeFirstLesson, b.Slug)
	}
}

func (s *HandlerTestSuite) TestLeaderboard() {
	now := time.Now().UnixMilli()
	err := s.db.Create([]dao.Metrics{
		{Uid: uid, TotalXp: 500, TotalKarma: 10, WisdomLevel: 1, Ctime: now, Utime: now},
		{Uid: 987654321, TotalXp: 1500, TotalKarma: 5, WisdomLevel: 2, Ctime: now, Utime: now},
		{Uid: 456, TotalXp: 100, TotalKarma: 50, WisdomLevel: 1, Ctime: now, Utime: now},
	}).Error
	require.NoError(s.T(), err)

	testCases := []struct {
		name     string
		req      web.LeaderboardReq
		wantResp test.Result[web.Leaderboard]
	}{
		{
			name: "经验值",
			req:  web.LeaderboardReq{Type: "xp", Limit: 2},
			wantResp: test.Result[web.Leaderboard]{
				Data: web.Leaderboard{
					Type: "xp",
					Entries: []web.LeaderboardEntry{
						{Rank: 1, Uid: 987654321, Name: "User 98765432", Score: 1500, WisdomLevel: 2},
						{Rank: 2, Uid: uid, Name: "Arjuna", Score: 500, WisdomLevel: 1},
					},
					MyRank:  2,
					MyScore: 500,
				},
			},
		},
		{
			name: "功德",
			req:  web.LeaderboardReq{Type: "karma", Limit: 1},
			wantResp: test.Result[web.Leaderboard]{
				Data: web.Leaderboard{
					Type: "karma",
					Entries: []web.LeaderboardEntry{
						{Rank: 1, Uid: 456, Name: "User 456", Score: 50, WisdomLevel: 1},
					},
					MyRank:  2,
					MyScore: 10,
				},
			},
		},
		{
			name: "非法类型",
			req:  web.LeaderboardReq{Type: "wealth"},
			wantResp: test.Result[web.Leaderboard]{
				Code: errs.InvalidInput.Code,
				Msg:  errs.InvalidInput.Msg,
			},
		},
		{
			name: "超过上限",
			req:  web.LeaderboardReq{Type: "xp", Limit: 101},
			wantResp: test.Result[web.Leaderboard]{
				Code: errs.InvalidInput.Code,
				Msg:  errs.InvalidInput.Msg,
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/learning/gamification/leaderboard", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Leaderboard]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestGamificationHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
