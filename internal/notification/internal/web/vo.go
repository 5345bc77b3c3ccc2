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

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListReq struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	UnreadOnly bool `json:"unread_only"`
}

func (r ListReq) normalize() ListReq {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit <= 0 {
		r.Limit = defaultPageSize
	}
	r.Limit = min(r.Limit, maxPageSize)
	return r
}

type Notification struct {
	NotificationId int64  `json:"notification_id"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	Biz            string `json:"biz,omitempty"`
	BizId          int64  `json:"biz_id,omitempty"`
	IsRead         bool   `json:"is_read"`
	ReadAt         int64  `json:"read_at,omitempty"`
	CreatedAt      int64  `json:"created_at"`
}

type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int64 `json:"total_pages"`
	TotalItems  int64 `json:"total_items"`
}

type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int64          `json:"unread_count"`
	Pagination    Pagination     `json:"pagination"`
}

type ReadReq struct {
	NotificationId int64 `json:"notification_id"`
}

type ReadResp struct {
	NotificationId int64 `json:"notification_id"`
	IsRead         bool  `json:"is_read"`
	ReadAt         int64 `json:"read_at"`
}

type ReadAllResp struct {
	Count int64 `json:"count"`
}
