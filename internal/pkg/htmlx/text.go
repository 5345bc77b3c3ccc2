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
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	blockTags  = regexp.MustCompile(`(?i)</?(p|div|h[1-6]|blockquote|pre|ul|ol|br)\s*/?>`)
	listItem   = regexp.MustCompile(`(?i)<li[^>]*>`)
	anyTag     = regexp.MustCompile(`<[^>]*>`)
	spaces     = regexp.MustCompile(`[ \t\r\f\v]+`)
	blankLines = regexp.MustCompile(`\s*\n\s*`)
)

// PlainText 课时幻灯片的 body 是简单的 HTML，这里转成纯文本
// 块级标签变成换行，列表项前面加上 "• "
func PlainText(content string) string {
	content = listItem.ReplaceAllString(content, "\n• ")
	content = blockTags.ReplaceAllString(content, "\n")
	content = anyTag.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	content = strings.ReplaceAll(content, "\u00a0", " ")
	content = spaces.ReplaceAllString(content, " ")
	content = blankLines.ReplaceAllString(content, "\n")
	return strings.TrimSpace(content)
}

// Excerpt 纯文本摘要，最多 maxRunes 个字符，截断的时候末尾加上 "…"
func Excerpt(content string, maxRunes int) string {
	text := strings.ReplaceAll(PlainText(content), "\n", " ")
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:maxRunes])) + "…"
}
