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

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hug/internal/course/internal/domain"
	"github.com/ecodeclub/hug/internal/course/internal/event"
	"github.com/ecodeclub/hug/internal/course/internal/repository"
	"github.com/ecodeclub/hug/internal/pkg/htmlx"
	"golang.org/x/sync/errgroup"
)

var ErrRecordNotFound = repository.ErrRecordNotFound

//go:generate mockgen -source=./catalog.go -package=coursemocks -destination=../../mocks/catalog.mock.go Service
type Service interface {
	Schools(ctx context.Context) ([]domain.School, error)
	ListCourses(ctx context.Context, q domain.CourseQuery) ([]domain.Course, int64, error)
	// CourseDetail 课程详情，track 上带有 module 和课时数量
	CourseDetail(ctx context.Context, id int64) (domain.Course, error)
	Course(ctx context.Context, id int64) (domain.Course, error)
	CoursesByIds(ctx context.Context, ids []int64) ([]domain.Course, error)
	// CourseOutline 完整的课程体系 course -> tracks -> modules -> lessons，都按照 display order 排好序
	CourseOutline(ctx context.Context, id int64) (domain.Course, error)
	FeaturedCourses(ctx context.Context, limit int) ([]domain.Course, error)
	// NextCourse 同一个学院里面的下一门进阶课程
	NextCourse(ctx context.Context, courseId int64) (domain.Course, error)

	TrackModules(ctx context.Context, trackId int64) ([]domain.Module, error)
	ModuleDetail(ctx context.Context, id int64) (domain.Module, error)
	ModuleLessons(ctx context.Context, moduleId int64) ([]domain.Lesson, error)

	LessonDetail(ctx context.Context, id int64) (domain.Lesson, error)
	LessonBySlug(ctx context.Context, slug string) (domain.Lesson, error)
	LessonLocation(ctx context.Context, id int64) (domain.LessonLocation, error)
	LessonsByIds(ctx context.Context, ids []int64) (map[int64]domain.Lesson, error)

	// Seed 数据库为空的时候写入初始课程数据，返回是否真的写入了
	Seed(ctx context.Context) (bool, error)
	// SyncToSearch 把所有的学院、课程和课时同步到搜索，返回同步的条数
	SyncToSearch(ctx context.Context) (int, error)
}

type catalogService struct {
	repo      repository.CatalogRepository
	producer  event.SyncEventProducer
	batchSize int
}

func NewService(repo repository.CatalogRepository, producer event.SyncEventProducer) Service {
	return &catalogService{
		repo:      repo,
		producer:  producer,
		batchSize: 50,
	}
}

func (s *catalogService) Schools(ctx context.Context) ([]domain.School, error) {
	return s.repo.Schools(ctx)
}

func (s *catalogService) ListCourses(ctx context.Context, q domain.CourseQuery) ([]domain.Course, int64, error) {
	var (
		eg    errgroup.Group
		cs    []domain.Course
		total int64
	)
	eg.Go(func() error {
		var err error
		cs, err = s.repo.ListCourses(ctx, q)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountCourses(ctx, q)
		return err
	})
	return cs, total, eg.Wait()
}

func (s *catalogService) CourseDetail(ctx context.Context, id int64) (domain.Course, error) {
	return s.repo.CourseDetail(ctx, id)
}

func (s *catalogService) Course(ctx context.Context, id int64) (domain.Course, error) {
	return s.repo.Course(ctx, id)
}

func (s *catalogService) CoursesByIds(ctx context.Context, ids []int64) ([]domain.Course, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.repo.CoursesByIds(ctx, ids)
}

func (s *catalogService) CourseOutline(ctx context.Context, id int64) (domain.Course, error) {
	c, err := s.repo.Course(ctx, id)
	if err != nil {
		return domain.Course{}, err
	}
	tracks, err := s.repo.Tracks(ctx, id)
	if err != nil || len(tracks) == 0 {
		c.Tracks = tracks
		return c, err
	}
	trackIds := slice.Map(tracks, func(idx int, src domain.Track) int64 {
		return src.Id
	})
	modules, err := s.repo.Modules(ctx, trackIds)
	if err != nil {
		return domain.Course{}, err
	}
	var lessons []domain.Lesson
	if len(modules) > 0 {
		moduleIds := slice.Map(modules, func(idx int, src domain.Module) int64 {
			return src.Id
		})
		lessons, err = s.repo.Lessons(ctx, moduleIds)
		if err != nil {
			return domain.Course{}, err
		}
	}
	// 查询结果已经按照 display order 排序，分组之后顺序不变
	lessonsByModule := make(map[int64][]domain.Lesson, len(modules))
	for _, l := range lessons {
		lessonsByModule[l.ModuleId] = append(lessonsByModule[l.ModuleId], l)
	}
	modulesByTrack := make(map[int64][]domain.Module, len(tracks))
	for _, m := range modules {
		m.Lessons = lessonsByModule[m.Id]
		m.LessonCount = int64(len(m.Lessons))
		modulesByTrack[m.TrackId] = append(modulesByTrack[m.TrackId], m)
	}
	for i := range tracks {
		tracks[i].Modules = modulesByTrack[tracks[i].Id]
		tracks[i].ModuleCount = int64(len(tracks[i].Modules))
		for _, m := range tracks[i].Modules {
			tracks[i].LessonCount += m.LessonCount
		}
	}
	c.Tracks = tracks
	return c, nil
}

func (s *catalogService) FeaturedCourses(ctx context.Context, limit int) ([]domain.Course, error) {
	return s.repo.FeaturedCourses(ctx, limit)
}

func (s *catalogService) NextCourse(ctx context.Context, courseId int64) (domain.Course, error) {
	c, err := s.repo.Course(ctx, courseId)
	if err != nil {
		return domain.Course{}, err
	}
	return s.repo.NextCourse(ctx, c.SchoolId, domain.LevelIntermediate, c.Id)
}

func (s *catalogService) TrackModules(ctx context.Context, trackId int64) ([]domain.Module, error) {
	return s.repo.TrackModules(ctx, trackId)
}

func (s *catalogService) ModuleDetail(ctx context.Context, id int64) (domain.Module, error) {
	return s.repo.Module(ctx, id)
}

func (s *catalogService) ModuleLessons(ctx context.Context, moduleId int64) ([]domain.Lesson, error) {
	return s.repo.Lessons(ctx, []int64{moduleId})
}

func (s *catalogService) LessonDetail(ctx context.Context, id int64) (domain.Lesson, error) {
	l, err := s.repo.Lesson(ctx, id)
	if err != nil {
		return domain.Lesson{}, err
	}
	l.PrevLessonId, l.NextLessonId, err = s.repo.AdjacentLessons(ctx, l)
	return l, err
}

func (s *catalogService) LessonBySlug(ctx context.Context, slug string) (domain.Lesson, error) {
	return s.repo.LessonBySlug(ctx, slug)
}

func (s *catalogService) LessonLocation(ctx context.Context, id int64) (domain.LessonLocation, error) {
	l, err := s.LessonDetail(ctx, id)
	if err != nil {
		return domain.LessonLocation{}, err
	}
	m, err := s.repo.Module(ctx, l.ModuleId)
	if err != nil {
		return domain.LessonLocation{}, err
	}
	return domain.LessonLocation{
		Lesson:   l,
		ModuleId: m.Id,
		TrackId:  m.Track.Id,
		CourseId: m.Course.Id,
	}, nil
}

func (s *catalogService) LessonsByIds(ctx context.Context, ids []int64) (map[int64]domain.Lesson, error) {
	if len(ids) == 0 {
		return map[int64]domain.Lesson{}, nil
	}
	ls, err := s.repo.LessonsByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Lesson, len(ls))
	for _, l := range ls {
		res[l.Id] = l
	}
	return res, nil
}

func (s *catalogService) Seed(ctx context.Context) (bool, error) {
	empty, err := s.repo.IsEmpty(ctx)
	if err != nil || !empty {
		return false, err
	}
	err = s.repo.Seed(ctx, defaultCatalog())
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *catalogService) SyncToSearch(ctx context.Context) (int, error) {
	schools, err := s.repo.Schools(ctx)
	if err != nil {
		return 0, err
	}
	cnt := 0
	for _, sc := range schools {
		if err = s.produce(ctx, event.BizSchool, sc.Id, schoolDoc{
			Id:          sc.Id,
			Name:        sc.Name,
			Slug:        sc.Slug,
			Description: sc.Description,
		}); err != nil {
			return cnt, err
		}
		cnt++
	}
	for offset := 0; ; offset += s.batchSize {
		cs, err := s.repo.CoursePage(ctx, offset, s.batchSize)
		if err != nil {
			return cnt, err
		}
		for _, c := range cs {
			if err = s.produce(ctx, event.BizCourse, c.Id, courseDoc{
				Id:               c.Id,
				SchoolId:         c.SchoolId,
				Name:             c.Name,
				Slug:             c.Slug,
				ShortDescription: c.ShortDescription,
				Description:      c.Description,
				DifficultyLevel:  c.DifficultyLevel,
			}); err != nil {
				return cnt, err
			}
			cnt++
		}
		if len(cs) < s.batchSize {
			break
		}
	}
	// 同一个 module 的课时只查一次 module 和课程名字
	locations := make(map[int64]lessonDoc, 16)
	for offset := 0; ; offset += s.batchSize {
		ls, err := s.repo.LessonPage(ctx, offset, s.batchSize)
		if err != nil {
			return cnt, err
		}
		for _, l := range ls {
			loc, ok := locations[l.ModuleId]
			if !ok {
				loc, err = s.lessonLocationDoc(ctx, l.ModuleId)
				if err != nil {
					return cnt, err
				}
				locations[l.ModuleId] = loc
			}
			if err = s.produce(ctx, event.BizLesson, l.Id, lessonDoc{
				Id:              l.Id,
				ModuleId:        l.ModuleId,
				ModuleName:      loc.ModuleName,
				CourseId:        loc.CourseId,
				CourseName:      loc.CourseName,
				Name:            l.Name,
				Slug:            l.Slug,
				LessonType:      l.LessonType,
				DurationMinutes: l.DurationMinutes,
				Summary:         lessonSummary(l),
			}); err != nil {
				return cnt, err
			}
			cnt++
		}
		if len(ls) < s.batchSize {
			break
		}
	}
	return cnt, nil
}

func (s *catalogService) lessonLocationDoc(ctx context.Context, moduleId int64) (lessonDoc, error) {
	m, err := s.repo.Module(ctx, moduleId)
	if err != nil {
		return lessonDoc{}, err
	}
	t, err := s.repo.Track(ctx, m.TrackId)
	if err != nil {
		return lessonDoc{}, err
	}
	c, err := s.repo.Course(ctx, t.CourseId)
	if err != nil {
		return lessonDoc{}, err
	}
	return lessonDoc{
		ModuleName: m.Name,
		CourseId:   c.Id,
		CourseName: c.Name,
	}, nil
}

func (s *catalogService) produce(ctx context.Context, biz string, id int64, doc any) error {
	evt, err := event.NewSyncEvent(biz, id, doc)
	if err != nil {
		return err
	}
	err = s.producer.Produce(ctx, evt)
	if err != nil {
		return fmt.Errorf("同步搜索数据失败 biz %s, id %d: %w", biz, id, err)
	}
	return nil
}

type schoolDoc struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type courseDoc struct {
	Id               int64  `json:"id"`
	SchoolId         int64  `json:"school_id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
	DifficultyLevel  string `json:"difficulty_level"`
}

type lessonDoc struct {
	Id              int64  `json:"id"`
	ModuleId        int64  `json:"module_id"`
	ModuleName      string `json:"module_name"`
	CourseId        int64  `json:"course_id"`
	CourseName      string `json:"course_name"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	LessonType      string `json:"lesson_type"`
	DurationMinutes int    `json:"duration_minutes"`
	Summary         string `json:"summary"`
}

const summaryRunes = 160

// lessonSummary 幻灯片正文拼起来的纯文本摘要
func lessonSummary(l domain.Lesson) string {
	bodies := make([]string, 0, len(l.Slides))
	for _, sl := range l.Slides {
		if sl.Body != "" {
			bodies = append(bodies, sl.Body)
		}
	}
	return htmlx.Excerpt(strings.Join(bodies, "\n"), summaryRunes)
}
