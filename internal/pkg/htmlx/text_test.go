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

package htmlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "纯文本",
			input: "Breathe in slowly.",
			want:  "Breathe in slowly.",
		},
		{
			name:  "段落",
			input: "<p>Find a quiet place.</p><p>Close your eyes.</p>",
			want:  "Find a quiet place.\nClose your eyes.",
		},
		{
			name:  "列表",
			input: "<h3>Steps</h3><ul><li>Inhale for 4</li><li>Hold for 7</li></ul>",
			want:  "Steps\n• Inhale for 4\n• Hold for 7",
		},
		{
			name:  "实体和空白",
			input: "<p>Body&nbsp;&amp;   mind &lt;3</p>",
			want:  "Body & mind <3",
		},
		{
			name:  "链接保留文字",
			input: `<p>Read <a href="https://example.com">the guide</a> first.</p>`,
			want:  "Read the guide first.",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PlainText(tc.input))
		})
	}
}

func TestExcerpt(t *testing.T) {
	body := "<p>Mindfulness is the practice of paying attention.</p><p>It starts with the breath.</p>"
	assert.Equal(t, "Mindfulness is the practice of paying attention. It starts with the breath.", Excerpt(body, 0))
	assert.Equal(t, "Mindfulness is the…", Excerpt(body, 19))
	assert.Equal(t, "冥想…", Excerpt("<p>冥想练习</p>", 2))
}
