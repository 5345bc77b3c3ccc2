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

package domain

import (
	"strings"
	"unicode"
)

const minPasswordLen = 6

type User struct {
	Id     int64
	Email  string
	Phone  string
	Name   string
	Avatar string
	// 注册、登录时是明文，存储的时候是 bcrypt 之后的结果
	Password            string
	Preferences         map[string]string
	OnboardingCompleted bool
	Ctime               int64
	Utime               int64
}

func (u User) PasswordValid() bool {
	return len(u.Password) >= minPasswordLen
}

// NormalizePhone 只保留数字，+91 98765-43210 => 919876543210
func NormalizePhone(phone string) string {
	var sb strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
