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

type Notification struct {
	Id      int64
	Uid     int64
	Type    string
	Title   string
	Message string
	// Biz 和 BizId 指向触发通知的业务，例如 certificate 和证书 id
	Biz    string
	BizId  int64
	IsRead bool
	ReadAt int64
	Ctime  int64
}

type Query struct {
	Uid        int64
	UnreadOnly bool
	Offset     int
	Limit      int
}

type Page struct {
	Notifications []Notification
	// Total 满足过滤条件的数量
	Total       int64
	UnreadCount int64
}
