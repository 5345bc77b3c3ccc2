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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type CatalogDAO interface {
	ListSchools(ctx context.Context) ([]School, error)
	FindSchoolById(ctx context.Context, id int64) (School, error)
	CountCoursesBySchools(ctx context.Context, schoolIds []int64) (map[int64]int64, error)

	ListCourses(ctx context.Context, filter CourseFilter, offset, limit int) ([]Course, error)
	CountCourses(ctx context.Context, filter CourseFilter) (int64, error)
	FindCourseById(ctx context.Context, id int64) (Course, error)
	FindCoursesByIds(ctx context.Context, ids []int64) ([]Course, error)
	FeaturedCourses(ctx context.Context, limit int) ([]Course, error)
	// NextCourse 同一个学院里面，除了 excludeId 之外，指定难度的第一门课程
	NextCourse(ctx context.Context, schoolId int64, level string, excludeId int64) (Course, error)

	ListTracks(ctx context.Context, courseId int64) ([]Track, error)
	FindTrackById(ctx context.Context, id int64) (Track, error)
	CountModulesByTracks(ctx context.Context, trackIds []int64) (map[int64]int64, error)
	CountLessonsByTracks(ctx context.Context, trackIds []int64) (map[int64]int64, error)

	ListModules(ctx context.Context, trackIds []int64) ([]Module, error)
	FindModuleById(ctx context.Context, id int64) (Module, error)
	CountLessonsByModules(ctx context.Context, moduleIds []int64) (map[int64]int64, error)

	ListLessons(ctx context.Context, moduleIds []int64) ([]Lesson, error)
	FindLessonById(ctx context.Context, id int64) (Lesson, error)
	FindLessonBySlug(ctx context.Context, slug string) (Lesson, error)
	FindLessonsByIds(ctx context.Context, ids []int64) ([]Lesson, error)
	// AdjacentLessons 同一个 module 内，按照 display order 的前一个和后一个课时，不存在则为 0
	AdjacentLessons(ctx context.Context, l Lesson) (prev int64, next int64, err error)

	// 给搜索同步用的分页接口
	CoursePage(ctx context.Context, offset, limit int) ([]Course, error)
	LessonPage(ctx context.Context, offset, limit int) ([]Lesson, error)

	CountSchools(ctx context.Context) (int64, error)
	Seed(ctx context.Context, c Catalog) error
}

type GORMCatalogDAO struct {
	db *egorm.Component
}

func NewGORMCatalogDAO(db *egorm.Component) CatalogDAO {
	return &GORMCatalogDAO{db: db}
}

func (dao *GORMCatalogDAO) ListSchools(ctx context.Context) ([]School, error) {
	var res []School
	err := dao.db.WithContext(ctx).Where("is_active = ?", true).
		Order("display_order ASC").Find(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) FindSchoolById(ctx context.Context, id int64) (School, error) {
	var res School
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) CountCoursesBySchools(ctx context.Context, schoolIds []int64) (map[int64]int64, error) {
	var rows []idCount
	err := dao.db.WithContext(ctx).Model(&Course{}).
		Select("school_id AS id, COUNT(*) AS cnt").
		Where("school_id IN ? AND is_active = ?", schoolIds, true).
		Group("school_id").Scan(&rows).Error
	return dao.toMap(rows), err
}

func (dao *GORMCatalogDAO) courseQuery(ctx context.Context, filter CourseFilter) *gorm.DB {
	db := dao.db.WithContext(ctx).Model(&Course{}).Where("is_active = ?", true)
	if filter.SchoolId > 0 {
		db = db.Where("school_id = ?", filter.SchoolId)
	}
	if filter.Level != "" {
		db = db.Where("difficulty_level = ?", filter.Level)
	}
	if filter.Featured {
		db = db.Where("is_featured = ?", true)
	}
	return db
}

func (dao *GORMCatalogDAO) ListCourses(ctx context.Context, filter CourseFilter, offset, limit int) ([]Course, error) {
	var res []Course
	err := dao.courseQuery(ctx, filter).
		Order("is_featured DESC").Order("display_order ASC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) CountCourses(ctx context.Context, filter CourseFilter) (int64, error) {
	var res int64
	err := dao.courseQuery(ctx, filter).Count(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) FindCourseById(ctx context.Context, id int64) (Course, error) {
	var res Course
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) FindCoursesByIds(ctx context.Context, ids []int64) ([]Course, error) {
	var res []Course
	err := dao.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) FeaturedCourses(ctx context.Context, limit int) ([]Course, error) {
	var res []Course
	err := dao.db.WithContext(ctx).
		Where("is_featured = ? AND is_active = ?", true, true).
		Order("display_order ASC").Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) NextCourse(ctx context.Context, schoolId int64, level string, excludeId int64) (Course, error) {
	var res Course
	err := dao.db.WithContext(ctx).
		Where("school_id = ? AND difficulty_level = ? AND is_active = ? AND id <> ?",
			schoolId, level, true, excludeId).
		Order("display_order ASC").First(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) ListTracks(ctx context.Context, courseId int64) ([]Track, error) {
	var res []Track
	err := dao.db.WithContext(ctx).
		Where("course_id = ? AND is_active = ?", courseId, true).
		Order("display_order ASC").Find(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) FindTrackById(ctx context.Context, id int64) (Track, error) {
	var res Track
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) CountModulesByTracks(ctx context.Context, trackIds []int64) (map[int64]int64, error) {
	var rows []idCount
	err := dao.db.WithContext(ctx).Model(&Module{}).
		Select("track_id AS id, COUNT(*) AS cnt").
		Where("track_id IN ? AND is_active = ?", trackIds, true).
		Group("track_id").Scan(&rows).Error
	return dao.toMap(rows), err
}

func (dao *GORMCatalogDAO) CountLessonsByTracks(ctx context.Context, trackIds []int64) (map[int64]int64, error) {
	var rows []idCount
	err := dao.db.WithContext(ctx).Table("lessons AS l").
		Select("m.track_id AS id, COUNT(l.id) AS cnt").
		Joins("JOIN learning_modules AS m ON m.id = l.module_id").
		Where("m.track_id IN ? AND l.is_active = ? AND m.is_active = ?", trackIds, true, true).
		Group("m.track_id").Scan(&rows).Error
	return dao.toMap(rows), err
}

func (dao *GORMCatalogDAO) ListModules(ctx context.Context, trackIds []int64) ([]Module, error) {
	var res []Module
	err := dao.db.WithContext(ctx).
		Where("track_id IN ? AND is_active = ?", trackIds, true).
		Order("display_order ASC").Find(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) FindModuleById(ctx context.Context, id int64) (Module, error) {
	var res Module
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) CountLessonsByModules(ctx context.Context, moduleIds []int64) (map[int64]int64, error) {
	var rows []idCount
	err := dao.db.WithContext(ctx).Model(&Lesson{}).
		Select("module_id AS id, COUNT(*) AS cnt").
		Where("module_id IN ? AND is_active = ?", moduleIds, true).
		Group("module_id").Scan(&rows).Error
	return dao.toMap(rows), err
}

func (dao *GORMCatalogDAO) ListLessons(ctx context.Context, moduleIds []int64) ([]Lesson, error) {
	var res []Lesson
	err := dao.db.WithContext(ctx).
		Where("module_id IN ? AND is_active = ?", moduleIds, true).
		Order("display_order ASC").Find(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) FindLessonById(ctx context.Context, id int64) (Lesson, error) {
	var res Lesson
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) FindLessonBySlug(ctx context.Context, slug string) (Lesson, error) {
	var res Lesson
	err := dao.db.WithContext(ctx).Where("slug = ?", slug).First(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) FindLessonsByIds(ctx context.Context, ids []int64) ([]Lesson, error) {
	var res []Lesson
	err := dao.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) AdjacentLessons(ctx context.Context, l Lesson) (int64, int64, error) {
	var prev, next []int64
	db := dao.db.WithContext(ctx).Model(&Lesson{})
	err := db.Where("module_id = ? AND is_active = ? AND display_order < ?",
		l.ModuleId, true, l.DisplayOrder).
		Order("display_order DESC").Limit(1).Pluck("id", &prev).Error
	if err != nil {
		return 0, 0, err
	}
	err = dao.db.WithContext(ctx).Model(&Lesson{}).
		Where("module_id = ? AND is_active = ? AND display_order > ?",
			l.ModuleId, true, l.DisplayOrder).
		Order("display_order ASC").Limit(1).Pluck("id", &next).Error
	if err != nil {
		return 0, 0, err
	}
	return dao.first(prev), dao.first(next), nil
}

func (dao *GORMCatalogDAO) CoursePage(ctx context.Context, offset, limit int) ([]Course, error) {
	var res []Course
	err := dao.db.WithContext(ctx).Where("is_active = ?", true).
		Order("id ASC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) LessonPage(ctx context.Context, offset, limit int) ([]Lesson, error) {
	var res []Lesson
	err := dao.db.WithContext(ctx).Where("is_active = ?", true).
		Order("id ASC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) CountSchools(ctx context.Context) (int64, error) {
	var res int64
	err := dao.db.WithContext(ctx).Model(&School{}).Count(&res).Error
	return res, err
}

func (dao *GORMCatalogDAO) Seed(ctx context.Context, c Catalog) error {
	now := time.Now().UnixMilli()
	base := Base{IsActive: true, Ctime: now, Utime: now}
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ss := range c.Schools {
			school := ss.School
			school.Base = base
			if err := tx.Create(&school).Error; err != nil {
				return err
			}
			for _, sc := range ss.Courses {
				course := sc.Course
				course.SchoolId = school.Id
				course.Base = base
				if err := tx.Create(&course).Error; err != nil {
					return err
				}
				for _, st := range sc.Tracks {
					track := st.Track
					track.CourseId = course.Id
					track.Base = base
					if err := tx.Create(&track).Error; err != nil {
						return err
					}
					for _, sm := range st.Modules {
						module := sm.Module
						module.TrackId = track.Id
						module.Base = base
						if err := tx.Create(&module).Error; err != nil {
							return err
						}
						for _, l := range sm.Lessons {
							l.ModuleId = module.Id
							l.Base = base
							if err := tx.Create(&l).Error; err != nil {
								return err
							}
						}
					}
				}
			}
		}
		return nil
	})
}

func (dao *GORMCatalogDAO) toMap(rows []idCount) map[int64]int64 {
	res := make(map[int64]int64, len(rows))
	for _, r := range rows {
		res[r.Id] = r.Cnt
	}
	return res
}

func (dao *GORMCatalogDAO) first(ids []int64) int64 {
	if len(ids) == 0 {
		return 0
	}
	return ids[0]
}
