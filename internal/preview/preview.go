// Package preview renders a generated README to a standalone HTML page.
//
// The page mirrors what a forge shows for the README: GitHub-flavored tables,
// heading anchors for the table of contents links, and class-based syntax
// highlighting for fenced code blocks.
package preview

import (
	"bytes"
	"errors"
	"fmt"
	"html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultTitle is used when no title is given.
const DefaultTitle = "README"

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// Renderer converts Markdown to an HTML5 document.
type Renderer interface {
	ToHTML(markdown, title string) (string, error)
}

var _ Renderer = (*GoldmarkRenderer)(nil)

// GoldmarkRenderer converts Markdown to HTML using goldmark (pure Go).
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with GFM extensions and syntax highlighting.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // anchors for TOC links
		),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(),
			// WithUnsafe is not set: raw HTML in the source is escaped.
		),
	)
	return &GoldmarkRenderer{md: md}
}

// ToHTML converts markdown to a complete page titled title.
func (r *GoldmarkRenderer) ToHTML(markdown, title string) (string, error) {
	if title == "" {
		title = DefaultTitle
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	return fmt.Sprintf(pageTemplate, html.EscapeString(title), buf.String()), nil
}
