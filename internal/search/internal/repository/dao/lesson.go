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

type LessonElasticDAO struct {
	client *elastic.Client
	index  string
}

func NewLessonElasticDAO(client *elastic.Client) *LessonElasticDAO {
	return &LessonElasticDAO{
		client: client,
		index:  LessonIndexName,
	}
}

func (l *LessonElasticDAO) SearchLesson(ctx context.Context, keyword string, limit int) ([]Lesson, error) {
	return search[Lesson](ctx, l.client, l.index, containsQuery(keyword, "name"),
		elastic.NewFieldSort("id").Asc(), limit)
}
