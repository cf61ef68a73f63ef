// Package render assembles pages by literal token substitution over template
// files from the content root, and converts markdown article bodies to HTML.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ldlewis/simpleblog/pkg/core"
)

// Render substitutes tokens into a template. Every literal occurrence of
// {name} is replaced with its value, one pass per token, no recursive
// expansion. Tokens absent from the map are left verbatim in the output.
func Render(tmpl string, tokens map[string]string) string {
	out := tmpl
	for name, value := range tokens {
		out = strings.ReplaceAll(out, "{"+name+"}", value)
	}
	return out
}

// Page reads a template file from the content root.
func Page(root, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, name))
	if os.IsNotExist(err) {
		return "", fmt.Errorf("template %s: %w", name, core.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", name, err)
	}
	return string(data), nil
}
