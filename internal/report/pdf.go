package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PDF renders an already-written HTML report to PDF through headless Chrome.
// The PDF lands next to the HTML file.
func (g *Generator) PDF(ctx context.Context, htmlPath string) (string, error) {
	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return "", fmt.Errorf("resolve report path: %w", err)
	}

	cctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var buf []byte
	err = chromedp.Run(cctx,
		chromedp.Navigate("file://"+abs),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			return err
		}),
	)
	if err != nil {
		return "", fmt.Errorf("print to pdf: %w", err)
	}

	pdfPath := strings.TrimSuffix(htmlPath, ".html") + ".pdf"
	if err := os.WriteFile(pdfPath, buf, 0644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return pdfPath, nil
}
