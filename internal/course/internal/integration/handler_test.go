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

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/hug/internal/course"
	"github.com/ecodeclub/hug/internal/course/internal/errs"
	"github.com/ecodeclub/hug/internal/course/internal/event"
	"github.com/ecodeclub/hug/internal/course/internal/integration/startup"
	"github.com/ecodeclub/hug/internal/course/internal/repository/dao"
	"github.com/ecodeclub/hug/internal/course/internal/web"
	"github.com/ecodeclub/hug/internal/test"
	testioc "github.com/ecodeclub/hug/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ejob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	db       *egorm.Component
	cache    ecache.Cache
	server   *egin.Component
	mod      *course.Module
	consumer mq.Consumer
}

func (s *HandlerTestSuite) SetupSuite() {
	mod, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.mod = mod
	s.db = testioc.InitDB()
	s.cache = testioc.InitCache()
	s.consumer, err = testioc.InitMQ().Consumer(event.SyncTopic, "course-test")
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	mod.Hdl.PublicRoutes(server.Engine)
	s.server = server

	err = mod.SeedJob.Start(ejob.Context{Ctx: context.Background()})
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownSuite() {
	for _, tbl := range []string{"schools", "courses", "tracks", "learning_modules", "lessons"} {
		err := s.db.Exec("TRUNCATE TABLE `" + tbl + "`").Error
		require.NoError(s.T(), err)
	}
	_, err := s.cache.Delete(context.Background(), "course:schools", "course:detail:1")
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestSeedIdempotent() {
	seeded, err := s.mod.Svc.Seed(context.Background())
	require.NoError(s.T(), err)
	assert.False(s.T(), seeded)
	var cnt int64
	err = s.db.Model(&dao.School{}).Count(&cnt).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(4), cnt)
}

func (s *HandlerTestSuite) TestSyncEvents() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	cnt := map[string]int{}
	for i := 0; i < 9; i++ {
		msg, err := s.consumer.Consume(ctx)
		require.NoError(t, err)
		var evt event.SyncEvent
		err = json.Unmarshal(msg.Value, &evt)
		require.NoError(t, err)
		cnt[evt.Biz]++
	}
	assert.Equal(t, map[string]int{
		event.BizSchool: 4,
		event.BizCourse: 3,
		event.BizLesson: 2,
	}, cnt)
}

func (s *HandlerTestSuite) TestSchools() {
	t := s.T()
	req, err := http.NewRequest(http.MethodGet, "/learning/schools", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.SchoolList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	schools := recorder.MustScan().Data.Schools
	require.Len(t, schools, 4)
	assert.Equal(t, "Shruti & Smriti Studies", schools[0].Name)
	assert.Equal(t, int64(3), schools[0].CourseCount)
	assert.Equal(t, "Sadhana & Lifestyle", schools[3].Name)
	assert.Equal(t, int64(0), schools[3].CourseCount)
}

func (s *HandlerTestSuite) TestCourseList() {
	testCases := []struct {
		name      string
		req       web.CourseListReq
		wantSlugs []string
		wantPage  web.Pagination
	}{
		{
			name:      "推荐课程排在前面",
			req:       web.CourseListReq{SchoolId: 1},
			wantSlugs: []string{"bhagavad-gita-life-leadership", "vedas-foundation", "upanishads-deeper-study"},
			wantPage:  web.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 3},
		},
		{
			name:      "分页",
			req:       web.CourseListReq{SchoolId: 1, Page: 2, Limit: 2},
			wantSlugs: []string{"upanishads-deeper-study"},
			wantPage:  web.Pagination{CurrentPage: 2, TotalPages: 2, TotalItems: 3},
		},
		{
			name:      "按照难度过滤",
			req:       web.CourseListReq{SchoolId: 1, Level: course.LevelIntermediate},
			wantSlugs: []string{"upanishads-deeper-study"},
			wantPage:  web.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 1},
		},
		{
			name:      "只看推荐",
			req:       web.CourseListReq{Featured: true},
			wantSlugs: []string{"bhagavad-gita-life-leadership"},
			wantPage:  web.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 1},
		},
		{
			name:      "没有课程的学院",
			req:       web.CourseListReq{SchoolId: 4},
			wantSlugs: []string{},
			wantPage:  web.Pagination{CurrentPage: 1, TotalPages: 0, TotalItems: 0},
		},
	}
	for _, tc := range testCases {
		tc := tc
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/learning/courses/list", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.CourseList]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			data := recorder.MustScan().Data
			slugs := make([]string, 0, len(data.Courses))
			for _, c := range data.Courses {
				slugs = append(slugs, c.Slug)
			}
			assert.Equal(t, tc.wantSlugs, slugs)
			assert.Equal(t, tc.wantPage, data.Pagination)
		})
	}
}

func (s *HandlerTestSuite) TestCourseDetail() {
	testCases := []struct {
		name     string
		req      web.CourseIdReq
		wantCode int
		assert   func(t *testing.T, c web.Course)
	}{
		{
			name: "课程详情",
			req:  web.CourseIdReq{CourseId: 1},
			assert: func(t *testing.T, c web.Course) {
				assert.Equal(t, "bhagavad-gita-life-leadership", c.Slug)
				require.NotNil(t, c.School)
				assert.Equal(t, "Shruti & Smriti Studies", c.School.Name)
				require.Len(t, c.Tracks, 3)
				assert.Equal(t, web.Track{
					Id:          1,
					Name:        "Beginner Track - Foundation",
					Level:       course.LevelBeginner,
					Description: "Understand context, core ideas, and basic application",
					ModuleCount: 2,
					LessonCount: 2,
					IsUnlocked:  true,
				}, c.Tracks[0])
				assert.False(t, c.Tracks[1].IsUnlocked)
				assert.Equal(t, int64(0), c.Tracks[2].LessonCount)
			},
		},
		{
			name:     "课程不存在",
			req:      web.CourseIdReq{CourseId: 999},
			wantCode: errs.CourseNotFound.Code,
			assert:   func(t *testing.T, c web.Course) {},
		},
	}
	for _, tc := range testCases {
		tc := tc
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/learning/courses/detail", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Course]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			tc.assert(t, res.Data)
		})
	}
}

func (s *HandlerTestSuite) TestTrackModules() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/learning/tracks/modules", iox.NewJSONReader(web.TrackIdReq{TrackId: 1}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ModuleList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, []web.Module{
		{
			Id:           1,
			TrackId:      1,
			Name:         "Kurukshetra Context & Characters",
			Description:  "Understand the historical and spiritual context of Bhagavad Gita",
			LessonCount:  1,
			DisplayOrder: 1,
		},
		{
			Id:           2,
			TrackId:      1,
			Name:         "What is Dharma?",
			Description:  "Core concept of Dharma and its application",
			LessonCount:  1,
			DisplayOrder: 2,
		},
	}, recorder.MustScan().Data.Modules)
}

func (s *HandlerTestSuite) TestModuleDetail() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/learning/modules/detail", iox.NewJSONReader(web.ModuleIdReq{ModuleId: 2}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Module]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	m := recorder.MustScan().Data
	assert.Equal(t, "What is Dharma?", m.Name)
	require.NotNil(t, m.Track)
	assert.Equal(t, "Beginner Track - Foundation", m.Track.Name)
	require.NotNil(t, m.Course)
	assert.Equal(t, int64(1), m.Course.Id)

	req, err = http.NewRequest(http.MethodPost,
		"/learning/modules/detail", iox.NewJSONReader(web.ModuleIdReq{ModuleId: 999}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.Module]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, errs.ModuleNotFound.Code, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestLessonDetail() {
	now := time.Now().UnixMilli()
	extra := dao.Lesson{
		ModuleId:        1,
		Slug:            "lesson-gita-characters",
		Name:            "Characters of Kurukshetra",
		LessonType:      "text",
		DurationMinutes: 6,
		DisplayOrder:    2,
		Base:            dao.Base{IsActive: true, Ctime: now, Utime: now},
	}
	err := s.db.Create(&extra).Error
	require.NoError(s.T(), err)
	defer func() {
		err := s.db.Delete(&dao.Lesson{}, extra.Id).Error
		require.NoError(s.T(), err)
	}()

	testCases := []struct {
		name     string
		req      web.LessonIdReq
		wantCode int
		wantPrev int64
		wantNext int64
		wantName string
	}{
		{
			name:     "第一个课时",
			req:      web.LessonIdReq{LessonId: 1},
			wantNext: extra.Id,
			wantName: "Introduction to Bhagavad Gita",
		},
		{
			name:     "最后一个课时",
			req:      web.LessonIdReq{LessonId: extra.Id},
			wantPrev: 1,
			wantName: "Characters of Kurukshetra",
		},
		{
			name:     "课时不存在",
			req:      web.LessonIdReq{LessonId: 999},
			wantCode: errs.LessonNotFound.Code,
		},
	}
	for _, tc := range testCases {
		tc := tc
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/learning/lessons/detail", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Lesson]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantName, res.Data.Name)
			assert.Equal(t, tc.wantPrev, res.Data.PrevLessonId)
			assert.Equal(t, tc.wantNext, res.Data.NextLessonId)
		})
	}
}

func TestCourseHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
