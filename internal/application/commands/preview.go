package commands

import (
	"context"
	"fmt"

	"doctools/internal/application"
	"doctools/internal/domain"
	"doctools/internal/ports"
)

// PreviewResult is everything the preview surfaces for one document:
// decoded frontmatter, the TOC block that a toc run would produce, and
// optionally the body rendered to HTML.
type PreviewResult struct {
	Path        string
	FrontMatter map[string]any
	Headers     []domain.Header
	TOC         string
	Body        string
	HTML        string
}

// PreviewCommand loads a single markdown document and renders its preview
// without writing anything.
type PreviewCommand struct {
	repo     ports.DocsRepository
	renderer ports.HTMLRenderer

	Path       string
	MaxDepth   int
	MinDepth   int
	RenderHTML bool
}

// NewPreviewCommand creates a new PreviewCommand. The renderer may be nil
// when HTML output is not wanted.
func NewPreviewCommand(repo ports.DocsRepository, renderer ports.HTMLRenderer, path string) *PreviewCommand {
	return &PreviewCommand{
		repo:     repo,
		renderer: renderer,
		Path:     path,
		MaxDepth: 6,
		MinDepth: 1,
	}
}

// Validate checks the command parameters.
func (c *PreviewCommand) Validate() error {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return err
	}
	return application.ValidateDepthRange(c.MinDepth, c.MaxDepth)
}

// Execute loads and previews the document.
func (c *PreviewCommand) Execute(ctx context.Context) (*PreviewResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	path := c.repo.Resolve(c.Path)
	if !isMarkdown(path) {
		return nil, fmt.Errorf("%w: %s", application.ErrNotMarkdown, c.Path)
	}

	content, err := c.repo.ReadDocument(path)
	if err != nil {
		return nil, &application.ProcessError{Path: path, Err: err}
	}

	meta, body, err := domain.ParseFrontMatter(content)
	if err != nil {
		return nil, &application.ProcessError{Path: path, Err: err}
	}

	headers := domain.ExtractHeaders(content)

	result := &PreviewResult{
		Path:        path,
		FrontMatter: meta,
		Headers:     headers,
		TOC:         domain.RenderTOC(headers, c.MaxDepth, c.MinDepth),
		Body:        body,
	}

	if c.RenderHTML && c.renderer != nil {
		html, err := c.renderer.Render([]byte(body))
		if err != nil {
			return nil, fmt.Errorf("render markdown: %w", err)
		}
		result.HTML = string(html)
	}

	return result, nil
}
