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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hug/internal/gamification/internal/domain"
	"github.com/pkg/errors"
)

type LeaderboardCache interface {
	Get(ctx context.Context, typ string) ([]domain.LeaderboardEntry, error)
	Set(ctx context.Context, typ string, entries []domain.LeaderboardEntry) error
}

type LeaderboardECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewLeaderboardECache(ec ecache.Cache) LeaderboardCache {
	return &LeaderboardECache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "gamification:",
		},
		// 排行榜允许一分钟的延迟
		expiration: time.Minute,
	}
}

func (c *LeaderboardECache) Get(ctx context.Context, typ string) ([]domain.LeaderboardEntry, error) {
	var res []domain.LeaderboardEntry
	err := c.ec.Get(ctx, c.key(typ)).JSONScan(&res)
	return res, err
}

func (c *LeaderboardECache) Set(ctx context.Context, typ string, entries []domain.LeaderboardEntry) error {
	val, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "序列化排行榜失败")
	}
	return c.ec.Set(ctx, c.key(typ), val, c.expiration)
}

func (c *LeaderboardECache) key(typ string) string {
	return "leaderboard:" + typ
}
