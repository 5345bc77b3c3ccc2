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

func TestCourse_FirstLesson(t *testing.T) {
	testCases := []struct {
		name       string
		course     Course
		wantTrack  int64
		wantLesson int64
	}{
		{
			name: "没有 track",
		},
		{
			name: "第一个 track 没有 module",
			course: Course{
				Tracks: []Track{{Id: 1}, {Id: 2, Modules: []Module{{Id: 3, Lessons: []Lesson{{Id: 4}}}}}},
			},
			wantTrack: 1,
		},
		{
			name: "正常",
			course: Course{
				Tracks: []Track{{Id: 1, Modules: []Module{
					{Id: 2, Lessons: []Lesson{{Id: 5}, {Id: 6}}},
					{Id: 3, Lessons: []Lesson{{Id: 7}}},
				}}},
			},
			wantTrack:  1,
			wantLesson: 5,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			trackId, lessonId := tc.course.FirstLesson()
			assert.Equal(t, tc.wantTrack, trackId)
			assert.Equal(t, tc.wantLesson, lessonId)
		})
	}
}

func TestTrack_IsUnlocked(t *testing.T) {
	assert.True(t, Track{Level: LevelBeginner}.IsUnlocked())
	assert.False(t, Track{Level: LevelIntermediate}.IsUnlocked())
	assert.False(t, Track{Level: LevelAdvanced}.IsUnlocked())
}
