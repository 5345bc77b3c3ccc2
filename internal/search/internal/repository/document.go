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
	"fmt"
	"strconv"

	"github.com/ecodeclub/hug/internal/search/internal/domain"
	"github.com/ecodeclub/hug/internal/search/internal/repository/dao"
)

type documentRepo struct {
	dao dao.DocumentDAO
}

func NewDocumentRepo(d dao.DocumentDAO) DocumentRepo {
	return &documentRepo{dao: d}
}

func (r *documentRepo) Save(ctx context.Context, doc domain.Document) error {
	index, err := r.index(doc.Biz)
	if err != nil {
		return err
	}
	return r.dao.Upsert(ctx, index, strconv.FormatInt(doc.Id, 10), doc.Data)
}

func (r *documentRepo) index(biz string) (string, error) {
	switch biz {
	case domain.BizSchool:
		return dao.SchoolIndexName, nil
	case domain.BizCourse:
		return dao.CourseIndexName, nil
	case domain.BizLesson:
		return dao.LessonIndexName, nil
	default:
		return "", fmt.Errorf("biz=%s 没有对应的索引", biz)
	}
}
