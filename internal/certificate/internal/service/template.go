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

package service

// DefaultTemplate 没有配置 certificate.template 的时候使用
const DefaultTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
  body { font-family: Georgia, serif; text-align: center; padding: 60px; color: #3b2f1e; }
  .frame { border: 6px double #b8860b; padding: 48px; }
  h1 { font-size: 40px; margin-bottom: 8px; }
  .name { font-size: 32px; margin: 24px 0; }
  .meta { font-size: 12px; color: #6b5b45; margin-top: 40px; }
</style>
</head>
<body>
<div class="frame">
  <h1>Certificate of {{.CertificateType}}</h1>
  <p>This certifies that</p>
  <p class="name">{{.UserName}}</p>
  <p>has completed the course</p>
  <h2>{{.CourseName}}</h2>
  <p>Issued on {{.IssueDate}}</p>
  <p class="meta">Certificate {{.Number}} · Verification code {{.VerificationCode}}</p>
</div>
</body>
</html>`
