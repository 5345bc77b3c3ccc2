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

import "encoding/json"

const (
	BizSchool = "school"
	BizCourse = "course"
	BizLesson = "lesson"
)

// Document 课程目录同步过来的一个搜索文档，Data 是 JSON
type Document struct {
	Biz  string
	Id   int64
	Data string
}

func (d Document) Valid() bool {
	switch d.Biz {
	case BizSchool, BizCourse, BizLesson:
	default:
		return false
	}
	return d.Id > 0 && json.Valid([]byte(d.Data))
}
