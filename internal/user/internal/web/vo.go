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

package web

import "github.com/ecodeclub/hug/internal/user/internal/domain"

type RegisterReq struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type ForgotPasswordReq struct {
	Email string `json:"email"`
}

type ResetPasswordReq struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type Profile struct {
	Id     int64  `json:"id"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:     u.Id,
		Email:  u.Email,
		Phone:  u.Phone,
		Name:   u.Name,
		Avatar: u.Avatar,
	}
}

type LoginResp struct {
	TokenType string  `json:"token_type"`
	ExpiresIn int64   `json:"expires_in"`
	User      Profile `json:"user"`
}
