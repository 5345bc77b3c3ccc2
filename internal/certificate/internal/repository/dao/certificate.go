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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicate      = errors.New("证书已经存在")
)

type CertificateDAO interface {
	Create(ctx context.Context, c Certificate) (Certificate, error)
	FindById(ctx context.Context, id int64) (Certificate, error)
	FindByUid(ctx context.Context, uid int64) ([]Certificate, error)
	FindByCourse(ctx context.Context, uid, courseId int64, typ string) (Certificate, error)
	FindByVerificationCode(ctx context.Context, code string) (Certificate, error)
}

type GORMCertificateDAO struct {
	db *egorm.Component
}

func NewGORMCertificateDAO(db *egorm.Component) CertificateDAO {
	return &GORMCertificateDAO{db: db}
}

func (dao *GORMCertificateDAO) Create(ctx context.Context, c Certificate) (Certificate, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&c).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return Certificate{}, ErrDuplicate
		}
	}
	return c, err
}

func (dao *GORMCertificateDAO) FindById(ctx context.Context, id int64) (Certificate, error) {
	var res Certificate
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMCertificateDAO) FindByUid(ctx context.Context, uid int64) ([]Certificate, error) {
	var res []Certificate
	err := dao.db.WithContext(ctx).Where("uid = ?", uid).
		Order("issue_date DESC").Order("id DESC").Find(&res).Error
	return res, err
}

func (dao *GORMCertificateDAO) FindByCourse(ctx context.Context, uid, courseId int64, typ string) (Certificate, error) {
	var res Certificate
	err := dao.db.WithContext(ctx).
		Where("uid = ? AND course_id = ? AND certificate_type = ?", uid, courseId, typ).
		First(&res).Error
	return res, err
}

func (dao *GORMCertificateDAO) FindByVerificationCode(ctx context.Context, code string) (Certificate, error) {
	var res Certificate
	err := dao.db.WithContext(ctx).Where("verification_code = ?", code).First(&res).Error
	return res, err
}
