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
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const defaultTimeout = 60 * time.Second

// ChromeDPConverter 连接远程的 headless chrome 打印 PDF
type ChromeDPConverter struct {
	remoteWebSocketURL string
	timeout            time.Duration
	defaults           Options
}

// NewChromeDPConverter timeout 小于等于 0 的时候使用 60s
func NewChromeDPConverter(remoteWebSocketURL string, timeout time.Duration) *ChromeDPConverter {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ChromeDPConverter{
		remoteWebSocketURL: remoteWebSocketURL,
		timeout:            timeout,
		defaults:           CertificateOptions,
	}
}

func (c *ChromeDPConverter) ConvertHTMLToPDF(ctx context.Context, html string, opts ...Option) ([]byte, error) {
	options := Apply(c.defaults, opts...)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	allocCtx, allocCancel := chromedp.NewRemoteAllocator(ctx, c.remoteWebSocketURL)
	defer allocCancel()
	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var data []byte
	doc := options.Document(html)
	err := chromedp.Run(taskCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, doc).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			data, _, err = c.params(options).Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("生成 PDF 失败 %w", err)
	}
	return data, nil
}

func (c *ChromeDPConverter) params(o Options) *page.PrintToPDFParams {
	params := page.PrintToPDF().
		WithPrintBackground(true).
		WithPreferCSSPageSize(true).
		WithMarginTop(o.MarginTopInch).
		WithMarginRight(o.MarginRightInch).
		WithMarginBottom(o.MarginBottomInch).
		WithMarginLeft(o.MarginLeftInch).
		WithLandscape(o.Landscape)
	if o.PaperWidthInch > 0 && o.PaperHeightInch > 0 {
		params = params.WithPaperWidth(o.PaperWidthInch).WithPaperHeight(o.PaperHeightInch)
	}
	return params
}
