package renderer

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Goldmark implements ports.HTMLRenderer using the goldmark engine with GFM
// extensions and auto heading IDs, matching the anchors the TOC links to.
// The renderer is stateless so a single instance can be shared.
type Goldmark struct {
	engine goldmark.Markdown
}

// NewGoldmark creates a new goldmark-backed renderer
func NewGoldmark() *Goldmark {
	return &Goldmark{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render converts markdown source into HTML
func (g *Goldmark) Render(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}
