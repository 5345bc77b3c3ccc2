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
	"github.com/ecodeclub/hug/internal/search/internal/domain"
	"github.com/ecodeclub/hug/internal/search/internal/repository/dao"
)

type schoolRepository struct {
	dao dao.SchoolDAO
}

func NewSchoolRepo(d dao.SchoolDAO) SchoolRepo {
	return &schoolRepository{
		dao: d,
	}
}

func (s *schoolRepository) SearchSchool(ctx context.Context, keyword string, limit int) ([]domain.School, error) {
	ss, err := s.dao.SearchSchool(ctx, keyword, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ss, func(idx int, src dao.School) domain.School {
		return domain.School{
			Id:          src.Id,
			Name:        src.Name,
			Slug:        src.Slug,
			Description: src.Description,
		}
	}), nil
}
