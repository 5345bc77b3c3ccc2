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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hug/internal/course/internal/domain"
	"github.com/pkg/errors"
)

const (
	schoolsKey        = "schools"
	schoolsExpiration = time.Minute * 30
	courseExpiration  = time.Minute * 10
)

type CatalogCache interface {
	GetSchools(ctx context.Context) ([]domain.School, error)
	SetSchools(ctx context.Context, schools []domain.School) error
	DelSchools(ctx context.Context) error

	// GetCourseDetail 课程详情，包含 track 和统计数据
	GetCourseDetail(ctx context.Context, id int64) (domain.Course, error)
	SetCourseDetail(ctx context.Context, c domain.Course) error
}

type CatalogECache struct {
	ec ecache.Cache
}

func NewCatalogECache(ec ecache.Cache) CatalogCache {
	return &CatalogECache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "course:",
		},
	}
}

func (c *CatalogECache) GetSchools(ctx context.Context) ([]domain.School, error) {
	var res []domain.School
	err := c.ec.Get(ctx, schoolsKey).JSONScan(&res)
	return res, err
}

func (c *CatalogECache) SetSchools(ctx context.Context, schools []domain.School) error {
	val, err := json.Marshal(schools)
	if err != nil {
		return errors.Wrap(err, "序列化学院列表失败")
	}
	return c.ec.Set(ctx, schoolsKey, val, schoolsExpiration)
}

func (c *CatalogECache) DelSchools(ctx context.Context) error {
	_, err := c.ec.Delete(ctx, schoolsKey)
	return err
}

func (c *CatalogECache) GetCourseDetail(ctx context.Context, id int64) (domain.Course, error) {
	var res domain.Course
	err := c.ec.Get(ctx, c.courseKey(id)).JSONScan(&res)
	return res, err
}

func (c *CatalogECache) SetCourseDetail(ctx context.Context, course domain.Course) error {
	val, err := json.Marshal(course)
	if err != nil {
		return errors.Wrap(err, "序列化课程详情失败")
	}
	return c.ec.Set(ctx, c.courseKey(course.Id), val, courseExpiration)
}

func (c *CatalogECache) courseKey(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}
