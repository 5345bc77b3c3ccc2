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

	"github.com/ecodeclub/hug/internal/user/internal/domain"
	"github.com/ecodeclub/hug/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("账号或者密码不对")
	ErrUserDuplicate      = repository.ErrUserDuplicate
	ErrUserNotFound       = repository.ErrUserNotFound
)

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go UserService
type UserService interface {
	// Register 注册，u.Password 是明文
	Register(ctx context.Context, u domain.User) (domain.User, error)
	// Login email 和 phone 二选一，优先 email
	Login(ctx context.Context, email, phone, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error)
	UpdateLearningProfile(ctx context.Context, u domain.User) error
	ForgotPassword(ctx context.Context, email string) error
}

type userService struct {
	repo   repository.UserRepository
	logger *elog.Component
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (svc *userService) Register(ctx context.Context, u domain.User) (domain.User, error) {
	u.Email = domain.NormalizeEmail(u.Email)
	u.Phone = domain.NormalizePhone(u.Phone)
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("加密密码失败: %w", err)
	}
	u.Password = string(hash)
	id, err := svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	u.Id = id
	u.Password = ""
	return u, nil
}

func (svc *userService) Login(ctx context.Context, email, phone, password string) (domain.User, error) {
	var (
		u   domain.User
		err error
	)
	switch {
	case email != "":
		u, err = svc.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	case phone != "":
		u, err = svc.repo.FindByPhone(ctx, domain.NormalizePhone(phone))
	default:
		return domain.User{}, ErrInvalidCredentials
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	return svc.repo.FindByIds(ctx, ids)
}

func (svc *userService) UpdateLearningProfile(ctx context.Context, u domain.User) error {
	return svc.repo.UpdateLearningProfile(ctx, u)
}

func (svc *userService) ForgotPassword(ctx context.Context, email string) error {
	u, err := svc.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if errors.Is(err, repository.ErrUserNotFound) {
		// 不暴露账号是否存在
		return nil
	}
	if err != nil {
		return err
	}
	// TODO 接入邮件服务之后在这里发送重置链接
	svc.logger.Info("收到重置密码请求", elog.Int64("uid", u.Id))
	return nil
}
