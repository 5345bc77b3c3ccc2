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

	"github.com/olivere/elastic/v7"
)

type CourseElasticDAO struct {
	client *elastic.Client
	index  string
}

func NewCourseElasticDAO(client *elastic.Client) *CourseElasticDAO {
	return &CourseElasticDAO{
		client: client,
		index:  CourseIndexName,
	}
}

func (c *CourseElasticDAO) SearchCourse(ctx context.Context, keyword string, limit int) ([]Course, error) {
	query := containsQuery(keyword, "name", "short_description", "slug")
	return search[Course](ctx, c.client, c.index, query, elastic.NewFieldSort("id").Asc(), limit)
}
