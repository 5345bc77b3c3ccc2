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

type SchoolElasticDAO struct {
	client *elastic.Client
	index  string
}

func NewSchoolElasticDAO(client *elastic.Client) *SchoolElasticDAO {
	return &SchoolElasticDAO{
		client: client,
		index:  SchoolIndexName,
	}
}

func (s *SchoolElasticDAO) SearchSchool(ctx context.Context, keyword string, limit int) ([]School, error) {
	return search[School](ctx, s.client, s.index, containsQuery(keyword, "name", "description"),
		elastic.NewFieldSort("id").Asc(), limit)
}
