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
	"github.com/ecodeclub/hug/internal/certificate/internal/domain"
	"github.com/ecodeclub/hug/internal/certificate/internal/repository/dao"
)

var (
	ErrRecordNotFound = dao.ErrRecordNotFound
	ErrDuplicate      = dao.ErrDuplicate
)

//go:generate mockgen -source=./certificate.go -package=repomocks -destination=./mocks/certificate.mock.go CertificateRepository
type CertificateRepository interface {
	Create(ctx context.Context, c domain.Certificate) (domain.Certificate, error)
	Certificate(ctx context.Context, id int64) (domain.Certificate, error)
	UserCertificates(ctx context.Context, uid int64) ([]domain.Certificate, error)
	CourseCertificate(ctx context.Context, uid, courseId int64, typ string) (domain.Certificate, error)
	CertificateByCode(ctx context.Context, code string) (domain.Certificate, error)
}

type certificateRepository struct {
	dao dao.CertificateDAO
}

func NewCertificateRepository(d dao.CertificateDAO) CertificateRepository {
	return &certificateRepository{dao: d}
}

func (repo *certificateRepository) Create(ctx context.Context, c domain.Certificate) (domain.Certificate, error) {
	res, err := repo.dao.Create(ctx, repo.toEntity(c))
	return repo.toDomain(res), err
}

func (repo *certificateRepository) Certificate(ctx context.Context, id int64) (domain.Certificate, error) {
	c, err := repo.dao.FindById(ctx, id)
	return repo.toDomain(c), err
}

func (repo *certificateRepository) UserCertificates(ctx context.Context, uid int64) ([]domain.Certificate, error) {
	cs, err := repo.dao.FindByUid(ctx, uid)
	return slice.Map(cs, func(idx int, src dao.Certificate) domain.Certificate {
		return repo.toDomain(src)
	}), err
}

func (repo *certificateRepository) CourseCertificate(ctx context.Context, uid, courseId int64, typ string) (domain.Certificate, error) {
	c, err := repo.dao.FindByCourse(ctx, uid, courseId, typ)
	return repo.toDomain(c), err
}

func (repo *certificateRepository) CertificateByCode(ctx context.Context, code string) (domain.Certificate, error) {
	c, err := repo.dao.FindByVerificationCode(ctx, code)
	return repo.toDomain(c), err
}

func (repo *certificateRepository) toEntity(c domain.Certificate) dao.Certificate {
	return dao.Certificate{
		Id:               c.Id,
		Uid:              c.Uid,
		CourseId:         c.CourseId,
		CertificateType:  c.CertificateType,
		Number:           c.Number,
		VerificationCode: c.VerificationCode,
		IssueDate:        c.IssueDate,
		CertificateUrl:   c.CertificateUrl,
		Metadata: sqlx.JsonColumn[dao.Metadata]{
			Val:   dao.Metadata(c.Metadata),
			Valid: true,
		},
	}
}

func (repo *certificateRepository) toDomain(c dao.Certificate) domain.Certificate {
	return domain.Certificate{
		Id:               c.Id,
		Uid:              c.Uid,
		CourseId:         c.CourseId,
		CertificateType:  c.CertificateType,
		Number:           c.Number,
		VerificationCode: c.VerificationCode,
		IssueDate:        c.IssueDate,
		CertificateUrl:   c.CertificateUrl,
		Metadata:         domain.Metadata(c.Metadata.Val),
		Ctime:            c.Ctime,
	}
}
