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

package ioc

import (
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/ginx/session/cookie"
	"github.com/ecodeclub/ginx/session/header"
	"github.com/ecodeclub/ginx/session/mixin"
	sessredis "github.com/ecodeclub/ginx/session/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

type sessionConfig struct {
	SessionEncryptedKey string        `yaml:"sessionEncryptedKey"`
	Expiration          time.Duration `yaml:"expiration"`
	Cookie              struct {
		Name   string `yaml:"name"`
		Domain string `yaml:"domain"`
	} `yaml:"cookie"`
}

// InitSession 移动端只走 X-Access-Token / X-Refresh-Token 头部，
// 配置了 cookie.domain 之后网页端也可以用 cookie
func InitSession(cmd redis.Cmdable) session.Provider {
	cfg := sessionConfig{Expiration: 24 * time.Hour}
	if err := econf.UnmarshalKey("session", &cfg); err != nil {
		panic(err)
	}
	sp := sessredis.NewSessionProvider(cmd, cfg.SessionEncryptedKey, cfg.Expiration)
	headerC := header.NewTokenCarrier()
	if cfg.Cookie.Domain == "" {
		sp.TokenCarrier = headerC
		return sp
	}
	name := cfg.Cookie.Name
	if name == "" {
		name = "hug_ssid"
	}
	sp.TokenCarrier = mixin.NewTokenCarrier(headerC, &cookie.TokenCarrier{
		MaxAge:   int(cfg.Expiration.Seconds()),
		Name:     name,
		Secure:   true,
		HttpOnly: true,
		Domain:   cfg.Cookie.Domain,
	})
	return sp
}
