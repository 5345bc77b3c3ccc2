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
	"fmt"
	"strings"
)

const (
	TypeCompletion = "completion"

	numberPrefix = "HUG"
)

type Certificate struct {
	Id               int64
	Uid              int64
	CourseId         int64
	CertificateType  string
	Number           string
	VerificationCode string
	// IssueDate 格式是 2006-01-02
	IssueDate      string
	CertificateUrl string
	Metadata       Metadata
	Ctime          int64
}

// Metadata 颁发证书时的快照，课程改名之后证书内容不变
type Metadata struct {
	CompletionDate int64
	CourseName     string
	UserName       string
}

// NewNumber 例如 HUG-BHA-2024-1A2B3C4D
func NewNumber(courseSlug string, year int, suffix string) string {
	prefix := courseSlug
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%s-%s-%d-%s", numberPrefix, strings.ToUpper(prefix), year, strings.ToUpper(suffix))
}
