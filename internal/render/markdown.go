package render

import (
	"bytes"
	"fmt"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHtml "github.com/yuin/goldmark/renderer/html"

	"github.com/ldlewis/simpleblog/pkg/core"
)

// Article bodies may embed raw HTML; posting is admin-only, so passthrough
// rendering is acceptable.
var converter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(goldmarkHtml.WithUnsafe()),
)

// MarkdownFile reads a markdown body file and converts it to HTML.
func MarkdownFile(path string) (string, error) {
	src, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("article body %s: %w", path, core.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read article body: %w", err)
	}

	var buf bytes.Buffer
	if err := converter.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrParse, err)
	}
	return buf.String(), nil
}
