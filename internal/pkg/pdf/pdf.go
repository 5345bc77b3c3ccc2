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

package pdf

import (
	"context"
	"html"
)

// Converter 把证书之类的 HTML 页面渲染成 PDF
//
//go:generate mockgen -source=./pdf.go -package=pdfmocks -destination=./mocks/pdf.mock.go Converter
type Converter interface {
	ConvertHTMLToPDF(ctx context.Context, html string, opts ...Option) ([]byte, error)
}

type Options struct {
	PaperWidthInch   float64
	PaperHeightInch  float64
	MarginTopInch    float64
	MarginBottomInch float64
	MarginLeftInch   float64
	MarginRightInch  float64
	Landscape        bool
	Title            string
}

type Option func(*Options)

// Apply 在 defaults 的基础上叠加 opts
func Apply(defaults Options, opts ...Option) Options {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}

// Document 补齐 html 外壳，title 会被转义
func (o Options) Document(body string) string {
	if o.Title == "" {
		return body
	}
	return "<html><head><meta charset=\"UTF-8\"><title>" + html.EscapeString(o.Title) +
		"</title></head><body>" + body + "</body></html>"
}
