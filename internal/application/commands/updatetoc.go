package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"doctools/internal/application"
	"doctools/internal/domain"
	"doctools/internal/ports"
)

// UpdateTOCCommand regenerates the TOC block in one markdown file or in
// every markdown file of a directory.
type UpdateTOCCommand struct {
	repo ports.DocsRepository

	Path        string
	MaxDepth    int
	MinDepth    int
	InsertAfter string
	Recursive   bool
}

// NewUpdateTOCCommand creates a new UpdateTOCCommand with the default depth
// window (all six heading levels).
func NewUpdateTOCCommand(repo ports.DocsRepository, path string) *UpdateTOCCommand {
	return &UpdateTOCCommand{
		repo:     repo,
		Path:     path,
		MaxDepth: 6,
		MinDepth: 1,
	}
}

// Validate checks the command parameters.
func (c *UpdateTOCCommand) Validate() error {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return err
	}
	return application.ValidateDepthRange(c.MinDepth, c.MaxDepth)
}

// Execute runs the update. A missing path or a non-markdown file argument is
// a fatal error; everything that goes wrong on an individual file inside a
// directory run is recorded in the summary and processing continues.
func (c *UpdateTOCCommand) Execute(ctx context.Context) (*application.RunSummary, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	path := c.repo.Resolve(c.Path)

	kind, err := c.repo.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", application.ErrPathNotFound, c.Path)
	}

	var files []string
	switch kind {
	case ports.PathFile:
		if !isMarkdown(path) {
			return nil, fmt.Errorf("%w: %s", application.ErrNotMarkdown, c.Path)
		}
		files = []string{path}
	case ports.PathDir:
		files, err = c.repo.MarkdownFiles(path, c.Recursive)
		if err != nil {
			return nil, err
		}
	}

	summary := &application.RunSummary{}
	for _, file := range files {
		summary.Add(c.processFile(file))
	}
	return summary, nil
}

func (c *UpdateTOCCommand) processFile(path string) application.FileResult {
	content, err := c.repo.ReadDocument(path)
	if err != nil {
		return application.FileResult{
			Path:   path,
			Status: application.StatusFailed,
			Err:    &application.ProcessError{Path: path, Err: err},
		}
	}

	updated, outcome := domain.UpdateTOC(content, c.MaxDepth, c.MinDepth, c.InsertAfter)
	if outcome == domain.TOCSkipped {
		return application.FileResult{
			Path:   path,
			Status: application.StatusSkipped,
			Err:    application.ErrNoHeaders,
		}
	}

	if err := c.repo.WriteDocument(path, updated); err != nil {
		return application.FileResult{
			Path:   path,
			Status: application.StatusFailed,
			Err:    &application.ProcessError{Path: path, Err: err},
		}
	}

	status := application.StatusUpdated
	if outcome == domain.TOCAdded {
		status = application.StatusAdded
	}
	return application.FileResult{Path: path, Status: status}
}

func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}
