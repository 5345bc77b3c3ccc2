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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hug/internal/course/internal/domain"
	"github.com/ecodeclub/hug/internal/course/internal/repository/cache"
	"github.com/ecodeclub/hug/internal/course/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./catalog.go -package=repomocks -destination=./mocks/catalog.mock.go CatalogRepository
type CatalogRepository interface {
	Schools(ctx context.Context) ([]domain.School, error)
	School(ctx context.Context, id int64) (domain.School, error)

	ListCourses(ctx context.Context, q domain.CourseQuery) ([]domain.Course, error)
	CountCourses(ctx context.Context, q domain.CourseQuery) (int64, error)
	Course(ctx context.Context, id int64) (domain.Course, error)
	CoursesByIds(ctx context.Context, ids []int64) ([]domain.Course, error)
	// CourseDetail 包含学院信息和 track 统计
	CourseDetail(ctx context.Context, id int64) (domain.Course, error)
	FeaturedCourses(ctx context.Context, limit int) ([]domain.Course, error)
	NextCourse(ctx context.Context, schoolId int64, level string, excludeId int64) (domain.Course, error)

	Tracks(ctx context.Context, courseId int64) ([]domain.Track, error)
	Track(ctx context.Context, id int64) (domain.Track, error)
	TrackModules(ctx context.Context, trackId int64) ([]domain.Module, error)

	Modules(ctx context.Context, trackIds []int64) ([]domain.Module, error)
	Module(ctx context.Context, id int64) (domain.Module, error)

	Lessons(ctx context.Context, moduleIds []int64) ([]domain.Lesson, error)
	Lesson(ctx context.Context, id int64) (domain.Lesson, error)
	LessonBySlug(ctx context.Context, slug string) (domain.Lesson, error)
	LessonsByIds(ctx context.Context, ids []int64) ([]domain.Lesson, error)
	AdjacentLessons(ctx context.Context, l domain.Lesson) (int64, int64, error)

	CoursePage(ctx context.Context, offset, limit int) ([]domain.Course, error)
	LessonPage(ctx context.Context, offset, limit int) ([]domain.Lesson, error)

	IsEmpty(ctx context.Context) (bool, error)
	Seed(ctx context.Context, schools []domain.School) error
}

type CachedCatalogRepository struct {
	dao   dao.CatalogDAO
	cache cache.CatalogCache
	l     *elog.Component
}

func NewCachedCatalogRepository(d dao.CatalogDAO, c cache.CatalogCache) CatalogRepository {
	return &CachedCatalogRepository{
		dao:   d,
		cache: c,
		l:     elog.DefaultLogger,
	}
}

func (repo *CachedCatalogRepository) Schools(ctx context.Context) ([]domain.School, error) {
	res, err := repo.cache.GetSchools(ctx)
	if err == nil {
		return res, nil
	}
	schools, err := repo.dao.ListSchools(ctx)
	if err != nil {
		return nil, err
	}
	ids := slice.Map(schools, func(idx int, src dao.School) int64 {
		return src.Id
	})
	cnts, err := repo.dao.CountCoursesBySchools(ctx, ids)
	if err != nil {
		return nil, err
	}
	res = slice.Map(schools, func(idx int, src dao.School) domain.School {
		s := repo.toSchool(src)
		s.CourseCount = cnts[src.Id]
		return s
	})
	err = repo.cache.SetSchools(ctx, res)
	if err != nil {
		repo.l.Error("缓存学院列表失败", elog.FieldErr(err))
	}
	return res, nil
}

func (repo *CachedCatalogRepository) School(ctx context.Context, id int64) (domain.School, error) {
	s, err := repo.dao.FindSchoolById(ctx, id)
	return repo.toSchool(s), err
}

func (repo *CachedCatalogRepository) ListCourses(ctx context.Context, q domain.CourseQuery) ([]domain.Course, error) {
	cs, err := repo.dao.ListCourses(ctx, repo.toFilter(q), q.Offset, q.Limit)
	return slice.Map(cs, func(idx int, src dao.Course) domain.Course {
		return repo.toCourse(src)
	}), err
}

func (repo *CachedCatalogRepository) CountCourses(ctx context.Context, q domain.CourseQuery) (int64, error) {
	return repo.dao.CountCourses(ctx, repo.toFilter(q))
}

func (repo *CachedCatalogRepository) Course(ctx context.Context, id int64) (domain.Course, error) {
	c, err := repo.dao.FindCourseById(ctx, id)
	return repo.toCourse(c), err
}

func (repo *CachedCatalogRepository) CoursesByIds(ctx context.Context, ids []int64) ([]domain.Course, error) {
	cs, err := repo.dao.FindCoursesByIds(ctx, ids)
	return slice.Map(cs, func(idx int, src dao.Course) domain.Course {
		return repo.toCourse(src)
	}), err
}

func (repo *CachedCatalogRepository) CourseDetail(ctx context.Context, id int64) (domain.Course, error) {
	res, err := repo.cache.GetCourseDetail(ctx, id)
	if err == nil {
		return res, nil
	}
	c, err := repo.dao.FindCourseById(ctx, id)
	if err != nil {
		return domain.Course{}, err
	}
	res = repo.toCourse(c)
	var (
		eg     errgroup.Group
		school dao.School
		tracks []dao.Track
	)
	eg.Go(func() error {
		var err error
		school, err = repo.dao.FindSchoolById(ctx, c.SchoolId)
		return err
	})
	eg.Go(func() error {
		var err error
		tracks, err = repo.dao.ListTracks(ctx, c.Id)
		return err
	})
	if err = eg.Wait(); err != nil {
		return domain.Course{}, err
	}
	res.School = repo.toSchool(school)
	trackIds := slice.Map(tracks, func(idx int, src dao.Track) int64 {
		return src.Id
	})
	var moduleCnts, lessonCnts map[int64]int64
	eg = errgroup.Group{}
	eg.Go(func() error {
		var err error
		moduleCnts, err = repo.dao.CountModulesByTracks(ctx, trackIds)
		return err
	})
	eg.Go(func() error {
		var err error
		lessonCnts, err = repo.dao.CountLessonsByTracks(ctx, trackIds)
		return err
	})
	if err = eg.Wait(); err != nil {
		return domain.Course{}, err
	}
	res.Tracks = slice.Map(tracks, func(idx int, src dao.Track) domain.Track {
		t := repo.toTrack(src)
		t.ModuleCount = moduleCnts[src.Id]
		t.LessonCount = lessonCnts[src.Id]
		return t
	})
	err = repo.cache.SetCourseDetail(ctx, res)
	if err != nil {
		repo.l.Error("缓存课程详情失败", elog.FieldErr(err), elog.Int64("cid", id))
	}
	return res, nil
}

func (repo *CachedCatalogRepository) FeaturedCourses(ctx context.Context, limit int) ([]domain.Course, error) {
	cs, err := repo.dao.FeaturedCourses(ctx, limit)
	return slice.Map(cs, func(idx int, src dao.Course) domain.Course {
		return repo.toCourse(src)
	}), err
}

func (repo *CachedCatalogRepository) NextCourse(ctx context.Context, schoolId int64, level string, excludeId int64) (domain.Course, error) {
	c, err := repo.dao.NextCourse(ctx, schoolId, level, excludeId)
	return repo.toCourse(c), err
}

func (repo *CachedCatalogRepository) Tracks(ctx context.Context, courseId int64) ([]domain.Track, error) {
	ts, err := repo.dao.ListTracks(ctx, courseId)
	return slice.Map(ts, func(idx int, src dao.Track) domain.Track {
		return repo.toTrack(src)
	}), err
}

func (repo *CachedCatalogRepository) Track(ctx context.Context, id int64) (domain.Track, error) {
	t, err := repo.dao.FindTrackById(ctx, id)
	return repo.toTrack(t), err
}

func (repo *CachedCatalogRepository) TrackModules(ctx context.Context, trackId int64) ([]domain.Module, error) {
	ms, err := repo.dao.ListModules(ctx, []int64{trackId})
	if err != nil {
		return nil, err
	}
	ids := slice.Map(ms, func(idx int, src dao.Module) int64 {
		return src.Id
	})
	cnts, err := repo.dao.CountLessonsByModules(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(ms, func(idx int, src dao.Module) domain.Module {
		m := repo.toModule(src)
		m.LessonCount = cnts[src.Id]
		return m
	}), nil
}

func (repo *CachedCatalogRepository) Modules(ctx context.Context, trackIds []int64) ([]domain.Module, error) {
	ms, err := repo.dao.ListModules(ctx, trackIds)
	return slice.Map(ms, func(idx int, src dao.Module) domain.Module {
		return repo.toModule(src)
	}), err
}

func (repo *CachedCatalogRepository) Module(ctx context.Context, id int64) (domain.Module, error) {
	m, err := repo.dao.FindModuleById(ctx, id)
	if err != nil {
		return domain.Module{}, err
	}
	res := repo.toModule(m)
	cnts, err := repo.dao.CountLessonsByModules(ctx, []int64{id})
	if err != nil {
		return domain.Module{}, err
	}
	res.LessonCount = cnts[id]
	t, err := repo.dao.FindTrackById(ctx, m.TrackId)
	if err != nil {
		return domain.Module{}, err
	}
	res.Track = repo.toTrack(t)
	c, err := repo.dao.FindCourseById(ctx, t.CourseId)
	if err != nil {
		return domain.Module{}, err
	}
	res.Course = repo.toCourse(c)
	return res, nil
}

func (repo *CachedCatalogRepository) Lessons(ctx context.Context, moduleIds []int64) ([]domain.Lesson, error) {
	ls, err := repo.dao.ListLessons(ctx, moduleIds)
	return slice.Map(ls, func(idx int, src dao.Lesson) domain.Lesson {
		return repo.toLesson(src)
	}), err
}

func (repo *CachedCatalogRepository) Lesson(ctx context.Context, id int64) (domain.Lesson, error) {
	l, err := repo.dao.FindLessonById(ctx, id)
	return repo.toLesson(l), err
}

func (repo *CachedCatalogRepository) LessonBySlug(ctx context.Context, slug string) (domain.Lesson, error) {
	l, err := repo.dao.FindLessonBySlug(ctx, slug)
	return repo.toLesson(l), err
}

func (repo *CachedCatalogRepository) LessonsByIds(ctx context.Context, ids []int64) ([]domain.Lesson, error) {
	ls, err := repo.dao.FindLessonsByIds(ctx, ids)
	return slice.Map(ls, func(idx int, src dao.Lesson) domain.Lesson {
		return repo.toLesson(src)
	}), err
}

func (repo *CachedCatalogRepository) AdjacentLessons(ctx context.Context, l domain.Lesson) (int64, int64, error) {
	return repo.dao.AdjacentLessons(ctx, repo.toLessonEntity(l))
}

func (repo *CachedCatalogRepository) CoursePage(ctx context.Context, offset, limit int) ([]domain.Course, error) {
	cs, err := repo.dao.CoursePage(ctx, offset, limit)
	return slice.Map(cs, func(idx int, src dao.Course) domain.Course {
		return repo.toCourse(src)
	}), err
}

func (repo *CachedCatalogRepository) LessonPage(ctx context.Context, offset, limit int) ([]domain.Lesson, error) {
	ls, err := repo.dao.LessonPage(ctx, offset, limit)
	return slice.Map(ls, func(idx int, src dao.Lesson) domain.Lesson {
		return repo.toLesson(src)
	}), err
}

func (repo *CachedCatalogRepository) IsEmpty(ctx context.Context) (bool, error) {
	cnt, err := repo.dao.CountSchools(ctx)
	return cnt == 0, err
}

func (repo *CachedCatalogRepository) Seed(ctx context.Context, schools []domain.School) error {
	catalog := dao.Catalog{
		Schools: slice.Map(schools, func(idx int, s domain.School) dao.SeedSchool {
			return dao.SeedSchool{
				School: repo.toSchoolEntity(s),
				Courses: slice.Map(s.Courses, func(idx int, c domain.Course) dao.SeedCourse {
					return dao.SeedCourse{
						Course: repo.toCourseEntity(c),
						Tracks: slice.Map(c.Tracks, func(idx int, t domain.Track) dao.SeedTrack {
							return dao.SeedTrack{
								Track: repo.toTrackEntity(t),
								Modules: slice.Map(t.Modules, func(idx int, m domain.Module) dao.SeedModule {
									return dao.SeedModule{
										Module: repo.toModuleEntity(m),
										Lessons: slice.Map(m.Lessons, func(idx int, l domain.Lesson) dao.Lesson {
											return repo.toLessonEntity(l)
										}),
									}
								}),
							}
						}),
					}
				}),
			}
		}),
	}
	err := repo.dao.Seed(ctx, catalog)
	if err != nil {
		return err
	}
	return repo.cache.DelSchools(ctx)
}

func (repo *CachedCatalogRepository) toFilter(q domain.CourseQuery) dao.CourseFilter {
	return dao.CourseFilter{
		SchoolId: q.SchoolId,
		Level:    q.Level,
		Featured: q.Featured,
	}
}

func (repo *CachedCatalogRepository) toSchool(s dao.School) domain.School {
	return domain.School{
		Id:           s.Id,
		Name:         s.Name,
		Slug:         s.Slug,
		Description:  s.Description,
		IconUrl:      s.IconUrl,
		DisplayOrder: s.DisplayOrder,
	}
}

func (repo *CachedCatalogRepository) toSchoolEntity(s domain.School) dao.School {
	return dao.School{
		Id:           s.Id,
		Slug:         s.Slug,
		Name:         s.Name,
		Description:  s.Description,
		IconUrl:      s.IconUrl,
		DisplayOrder: s.DisplayOrder,
	}
}

func (repo *CachedCatalogRepository) toCourse(c dao.Course) domain.Course {
	return domain.Course{
		Id:               c.Id,
		SchoolId:         c.SchoolId,
		Name:             c.Name,
		Slug:             c.Slug,
		ShortDescription: c.ShortDescription,
		Description:      c.Description,
		ThumbnailUrl:     c.ThumbnailUrl,
		DifficultyLevel:  c.DifficultyLevel,
		DurationDays:     c.DurationDays,
		TotalLessons:     c.TotalLessons,
		EstimatedHours:   c.EstimatedHours,
		IsFeatured:       c.IsFeatured,
		DisplayOrder:     c.DisplayOrder,
	}
}

func (repo *CachedCatalogRepository) toCourseEntity(c domain.Course) dao.Course {
	return dao.Course{
		Id:               c.Id,
		SchoolId:         c.SchoolId,
		Slug:             c.Slug,
		Name:             c.Name,
		ShortDescription: c.ShortDescription,
		Description:      c.Description,
		ThumbnailUrl:     c.ThumbnailUrl,
		DifficultyLevel:  c.DifficultyLevel,
		DurationDays:     c.DurationDays,
		TotalLessons:     c.TotalLessons,
		EstimatedHours:   c.EstimatedHours,
		IsFeatured:       c.IsFeatured,
		DisplayOrder:     c.DisplayOrder,
	}
}

func (repo *CachedCatalogRepository) toTrack(t dao.Track) domain.Track {
	return domain.Track{
		Id:           t.Id,
		CourseId:     t.CourseId,
		Name:         t.Name,
		Level:        t.Level,
		Description:  t.Description,
		DisplayOrder: t.DisplayOrder,
	}
}

func (repo *CachedCatalogRepository) toTrackEntity(t domain.Track) dao.Track {
	return dao.Track{
		Id:           t.Id,
		CourseId:     t.CourseId,
		Name:         t.Name,
		Level:        t.Level,
		Description:  t.Description,
		DisplayOrder: t.DisplayOrder,
	}
}

func (repo *CachedCatalogRepository) toModule(m dao.Module) domain.Module {
	return domain.Module{
		Id:           m.Id,
		TrackId:      m.TrackId,
		Name:         m.Name,
		Description:  m.Description,
		DisplayOrder: m.DisplayOrder,
	}
}

func (repo *CachedCatalogRepository) toModuleEntity(m domain.Module) dao.Module {
	return dao.Module{
		Id:           m.Id,
		TrackId:      m.TrackId,
		Name:         m.Name,
		Description:  m.Description,
		DisplayOrder: m.DisplayOrder,
	}
}

func (repo *CachedCatalogRepository) toLesson(l dao.Lesson) domain.Lesson {
	return domain.Lesson{
		Id:         l.Id,
		ModuleId:   l.ModuleId,
		Name:       l.Name,
		Slug:       l.Slug,
		LessonType: l.LessonType,
		Slides: slice.Map(l.Content.Val, func(idx int, src dao.Slide) domain.Slide {
			return domain.Slide(src)
		}),
		DurationMinutes: l.DurationMinutes,
		HasQuiz:         l.HasQuiz,
		HasReflection:   l.HasReflection,
		DisplayOrder:    l.DisplayOrder,
	}
}

func (repo *CachedCatalogRepository) toLessonEntity(l domain.Lesson) dao.Lesson {
	return dao.Lesson{
		Id:         l.Id,
		ModuleId:   l.ModuleId,
		Slug:       l.Slug,
		Name:       l.Name,
		LessonType: l.LessonType,
		Content: sqlx.JsonColumn[[]dao.Slide]{
			Val: slice.Map(l.Slides, func(idx int, src domain.Slide) dao.Slide {
				return dao.Slide(src)
			}),
			Valid: len(l.Slides) > 0,
		},
		DurationMinutes: l.DurationMinutes,
		HasQuiz:         l.HasQuiz,
		HasReflection:   l.HasReflection,
		DisplayOrder:    l.DisplayOrder,
	}
}
