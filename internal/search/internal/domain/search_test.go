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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery_Normalize(t *testing.T) {
	q := Query{Keyword: "  Gita ", Type: " COURSES ", Limit: 0}.Normalize()
	assert.Equal(t, Query{Keyword: "Gita", Type: TypeCourses, Limit: DefaultLimit}, q)
	assert.True(t, q.ValidType())
	assert.True(t, q.Includes(TypeCourses))
	assert.False(t, q.Includes(TypeLessons))

	q = Query{Keyword: "x", Limit: 51}.Normalize()
	assert.Equal(t, TypeAll, q.Type)
	assert.Equal(t, MaxLimit, q.Limit)
	assert.True(t, q.Includes(TypeSchools))

	assert.False(t, Query{Type: "videos"}.ValidType())
}

func TestLesson_Location(t *testing.T) {
	assert.Equal(t, "Gita - Foundations", Lesson{CourseName: "Gita", ModuleName: "Foundations"}.Location())
	assert.Equal(t, "Gita", Lesson{CourseName: "Gita"}.Location())
	assert.Equal(t, "Foundations", Lesson{ModuleName: "Foundations"}.Location())
}

func TestDocument_Valid(t *testing.T) {
	testCases := []struct {
		name string
		doc  Document
		want bool
	}{
		{name: "课程", doc: Document{Biz: BizCourse, Id: 1, Data: `{"id":1}`}, want: true},
		{name: "课时", doc: Document{Biz: BizLesson, Id: 7, Data: `{"id":7,"summary":"Dharma"}`}, want: true},
		{name: "未知业务", doc: Document{Biz: "quiz", Id: 1, Data: `{}`}},
		{name: "非法 id", doc: Document{Biz: BizSchool, Data: `{}`}},
		{name: "非法 JSON", doc: Document{Biz: BizSchool, Id: 1, Data: `{"id":`}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.doc.Valid())
		})
	}
}
