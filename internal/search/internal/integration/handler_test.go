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
	"github.com/ecodeclub/hug/internal/pkg/mqx"
	"github.com/ecodeclub/hug/internal/search"
	"github.com/ecodeclub/hug/internal/search/internal/errs"
	"github.com/ecodeclub/hug/internal/search/internal/event"
	"github.com/ecodeclub/hug/internal/search/internal/repository/dao"
	"github.com/ecodeclub/hug/internal/search/internal/web"
	"github.com/ecodeclub/hug/internal/test"
	testioc "github.com/ecodeclub/hug/internal/test/ioc"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	server   *egin.Component
	es       *elastic.Client
	syncSvc  search.SyncService
	consumer *search.SyncConsumer
	producer mqx.Producer[event.SyncEvent]
}

func (s *HandlerTestSuite) SetupSuite() {
	s.es = testioc.InitES()
	mod, err := search.InitModule(s.es, testioc.InitMQ())
	require.NoError(s.T(), err)
	s.syncSvc = mod.SyncSvc
	s.consumer = mod.SyncConsumer
	s.producer, err = mqx.NewGeneralProducer[event.SyncEvent](testioc.InitMQ(), event.SyncTopic)
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	mod.Hdl.PublicRoutes(server.Engine)
	s.server = server

	s.initSchools()
	s.initCourses()
	s.initLessons()
	s.refresh()
}

func (s *HandlerTestSuite) TearDownSuite() {
	// 测试数据的 id 都在 5000 到 9000 之间
	query := elastic.NewRangeQuery("id").Gt(5000).Lt(9000)
	for _, idx := range []string{dao.SchoolIndexName, dao.CourseIndexName, dao.LessonIndexName} {
		_, err := s.es.DeleteByQuery(idx).Query(query).Refresh("true").Do(context.Background())
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) refresh() {
	_, err := s.es.Refresh(dao.SchoolIndexName, dao.CourseIndexName, dao.LessonIndexName).
		Do(context.Background())
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) input(biz string, id int64, doc any) {
	by, err := json.Marshal(doc)
	require.NoError(s.T(), err)
	err = s.syncSvc.Input(context.Background(), search.Document{Biz: biz, Id: id, Data: string(by)})
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) initSchools() {
	schools := []dao.School{
		{Id: 5001, Name: "Shruti Zenith Studies", Slug: "shruti-zenith", Description: "Vedic wisdom for daily living"},
		{Id: 5002, Name: "Seva Academy", Slug: "seva-academy", Description: "Service and ZENITH of karma yoga"},
	}
	for _, sc := range schools {
		s.input(search.BizSchool, sc.Id, sc)
	}
}

func (s *HandlerTestSuite) initCourses() {
	courses := []dao.Course{
		{Id: 5101, SchoolId: 5001, Name: "Zenith Of The Gita", Slug: "zenith-gita",
			ShortDescription: "Eighteen chapters", DifficultyLevel: "beginner"},
		{Id: 5102, SchoolId: 5001, Name: "Upanishad Essentials", Slug: "upanishad-essentials",
			ShortDescription: "Reach the zenith of self inquiry", DifficultyLevel: "intermediate"},
		{Id: 5103, SchoolId: 5002, Name: "Daily Kirtanix", Slug: "daily-kirtanix",
			ShortDescription: "Serve with joy", DifficultyLevel: "beginner"},
	}
	for _, c := range courses {
		s.input(search.BizCourse, c.Id, c)
	}
}

func (s *HandlerTestSuite) initLessons() {
	lessons := []dao.Lesson{
		{Id: 5201, ModuleId: 11, ModuleName: "Foundations", CourseId: 5101, CourseName: "Zenith Of The Gita",
			Name: "The zenith of duty", Slug: "zenith-duty", LessonType: "video", DurationMinutes: 12,
			Summary: "Duty performed without attachment."},
		{Id: 5202, ModuleId: 11, ModuleName: "Foundations", CourseId: 5101, CourseName: "Zenith Of The Gita",
			Name: "Arjuna's doubt", Slug: "arjuna-doubt", LessonType: "reading", DurationMinutes: 8},
	}
	for _, l := range lessons {
		s.input(search.BizLesson, l.Id, l)
	}
}

func (s *HandlerTestSuite) TestSearch() {
	testCases := []struct {
		name     string
		req      web.SearchReq
		wantCode int
		wantResp test.Result[web.SearchResult]
	}{
		{
			name:     "全部类型，大小写不敏感",
			req:      web.SearchReq{Q: "ZeNiTh"},
			wantCode: 200,
			wantResp: test.Result[web.SearchResult]{
				Data: web.SearchResult{
					Query:        "ZeNiTh",
					TotalResults: 5,
					Results: web.Results{
						Courses: []web.Item{
							{Type: "course", Id: 5101, Title: "Zenith Of The Gita", Description: "Eighteen chapters", DifficultyLevel: "beginner"},
							{Type: "course", Id: 5102, Title: "Upanishad Essentials", Description: "Reach the zenith of self inquiry", DifficultyLevel: "intermediate"},
						},
						Lessons: []web.Item{
							{Type: "lesson", Id: 5201, Title: "The zenith of duty", Description: "Zenith Of The Gita - Foundations",
								DurationMinutes: 12, LessonType: "video", Summary: "Duty performed without attachment."},
						},
						Schools: []web.Item{
							{Type: "school", Id: 5001, Title: "Shruti Zenith Studies", Description: "Vedic wisdom for daily living"},
							{Type: "school", Id: 5002, Title: "Seva Academy", Description: "Service and ZENITH of karma yoga"},
						},
					},
				},
			},
		},
		{
			name:     "只搜索课程",
			req:      web.SearchReq{Q: "KIRTANIX", Type: "courses"},
			wantCode: 200,
			wantResp: test.Result[web.SearchResult]{
				Data: web.SearchResult{
					Query:        "KIRTANIX",
					TotalResults: 1,
					Results: web.Results{
						Courses: []web.Item{
							{Type: "course", Id: 5103, Title: "Daily Kirtanix", Description: "Serve with joy", DifficultyLevel: "beginner"},
						},
						Lessons: []web.Item{},
						Schools: []web.Item{},
					},
				},
			},
		},
		{
			name:     "限制数量",
			req:      web.SearchReq{Q: "zenith", Type: "schools", Limit: 1},
			wantCode: 200,
			wantResp: test.Result[web.SearchResult]{
				Data: web.SearchResult{
					Query:        "zenith",
					TotalResults: 1,
					Results: web.Results{
						Courses: []web.Item{},
						Lessons: []web.Item{},
						Schools: []web.Item{
							{Type: "school", Id: 5001, Title: "Shruti Zenith Studies", Description: "Vedic wisdom for daily living"},
						},
					},
				},
			},
		},
		{
			name:     "没有关键字",
			req:      web.SearchReq{Q: "  "},
			wantCode: 200,
			wantResp: test.Result[web.SearchResult]{
				Code: errs.InvalidInput.Code,
				Msg:  errs.InvalidInput.Msg,
			},
		},
		{
			name:     "类型不对",
			req:      web.SearchReq{Q: "gita", Type: "videos"},
			wantCode: 200,
			wantResp: test.Result[web.SearchResult]{
				Code: errs.InvalidInput.Code,
				Msg:  errs.InvalidInput.Msg,
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/learning/search", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.SearchResult]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func (s *HandlerTestSuite) TestSyncConsumer() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	doc, err := json.Marshal(dao.Course{Id: 5301, SchoolId: 5001, Name: "Quantum Mantra", Slug: "quantum-mantra"})
	require.NoError(s.T(), err)
	err = s.producer.Produce(ctx, event.SyncEvent{
		Biz:   "course",
		BizID: 5301,
		Data:  string(doc),
	})
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.consumer.Consume(ctx))
	s.refresh()

	res, err := s.es.Get().Index(dao.CourseIndexName).Id("5301").Do(ctx)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	var c dao.Course
	require.NoError(s.T(), json.Unmarshal(res.Source, &c))
	assert.Equal(s.T(), "Quantum Mantra", c.Name)
}

func TestSearchHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
