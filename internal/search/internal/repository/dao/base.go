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
	"encoding/json"
	"strings"

	"github.com/olivere/elastic/v7"
)

// lowerSuffix 索引里面用 lowercase normalizer 处理过的子字段
const lowerSuffix = ".lower"

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

// containsQuery 任意一列包含关键字即命中，不区分大小写
func containsQuery(keyword string, cols ...string) elastic.Query {
	pattern := "*" + wildcardEscaper.Replace(strings.ToLower(keyword)) + "*"
	queries := make([]elastic.Query, 0, len(cols))
	for _, col := range cols {
		queries = append(queries, elastic.NewWildcardQuery(col+lowerSuffix, pattern))
	}
	return elastic.NewBoolQuery().Should(queries...).MinimumNumberShouldMatch(1)
}

func search[T any](ctx context.Context, client *elastic.Client, index string,
	query elastic.Query, sorter elastic.Sorter, limit int) ([]T, error) {
	resp, err := client.Search(index).
		Size(limit).
		Query(query).
		SortBy(sorter).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]T, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var ele T
		err = json.Unmarshal(hit.Source, &ele)
		if err != nil {
			return nil, err
		}
		res = append(res, ele)
	}
	return res, nil
}
