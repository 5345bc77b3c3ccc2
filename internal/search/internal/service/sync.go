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
	"errors"
	"fmt"

	"github.com/ecodeclub/hug/internal/search/internal/domain"
	"github.com/ecodeclub/hug/internal/search/internal/repository"
)

var ErrInvalidDocument = errors.New("非法的文档")

//go:generate mockgen -source=./sync.go -package=svcmocks -destination=./mocks/sync.mock.go SyncService
type SyncService interface {
	// Input 同一个 biz 和 id 的文档会被覆盖
	Input(ctx context.Context, doc domain.Document) error
}

type syncService struct {
	repo repository.DocumentRepo
}

func NewSyncSvc(repo repository.DocumentRepo) SyncService {
	return &syncService{repo: repo}
}

func (s *syncService) Input(ctx context.Context, doc domain.Document) error {
	if !doc.Valid() {
		return fmt.Errorf("%w biz=%s id=%d", ErrInvalidDocument, doc.Biz, doc.Id)
	}
	return s.repo.Save(ctx, doc)
}
