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

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

//go:generate mockgen -source=./snowflake.go -package=snowflakemocks -destination=./mocks/snowflake.mock.go SnowFlake
type SnowFlake interface {
	Generate(appid uint) (ID, error)
}

type CustomSnowFlake struct {
	// 键为 appid
	nodes syncx.Map[uint, *snowflake.Node]
}

const (
	maxNode uint = 31
	maxApp  uint = 31
)

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrExceedApp  = errors.New("app超出限制")
	ErrUnknownApp = errors.New("未知的app")
)

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit APPID | 5 Bit NodeID  |   12 Bit Sequence ID |
// +---------------------------------------------------------------------------------------+

// NewCustomSnowFlake nodeId 是部署节点的编号，apps 是业务的数量，appid 从 0 开始
func NewCustomSnowFlake(nodeId uint, apps uint) (*CustomSnowFlake, error) {
	if nodeId > maxNode {
		return nil, fmt.Errorf("%w", ErrExceedNode)
	}
	if apps > maxApp+1 {
		return nil, fmt.Errorf("%w", ErrExceedApp)
	}
	res := &CustomSnowFlake{}
	for i := uint(0); i < apps; i++ {
		n, err := snowflake.NewNode(int64(i<<5 | nodeId))
		if err != nil {
			return nil, err
		}
		res.nodes.Store(i, n)
	}
	return res, nil
}

type ID int64

func (c *CustomSnowFlake) Generate(appid uint) (ID, error) {
	n, ok := c.nodes.Load(appid)
	if !ok {
		return 0, fmt.Errorf("%w, appid %d", ErrUnknownApp, appid)
	}
	return ID(n.Generate()), nil
}

func (f ID) AppID() uint {
	node := snowflake.ID(f).Node()
	return uint(node >> 5)
}

func (f ID) NodeID() uint {
	node := snowflake.ID(f).Node()
	return uint(node) & maxNode
}

func (f ID) Int64() int64 {
	return int64(f)
}
