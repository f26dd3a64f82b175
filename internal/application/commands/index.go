package commands

import (
	"context"

	"doctools/internal/application"
	"doctools/internal/domain"
	"doctools/internal/ports"
)

// IndexResult is a freshly built repository index plus any per-file warnings
// collected while building it.
type IndexResult struct {
	Index    domain.RepoIndex
	Warnings []error
}

// BuildIndexCommand scans the fixed category directories and builds the
// category-to-links mapping.
type BuildIndexCommand struct {
	repo ports.DocsRepository
}

// NewBuildIndexCommand creates a new BuildIndexCommand
func NewBuildIndexCommand(repo ports.DocsRepository) *BuildIndexCommand {
	return &BuildIndexCommand{repo: repo}
}

// Execute builds the index. Missing category directories contribute nothing;
// a file that cannot be read is skipped and recorded as a warning.
func (c *BuildIndexCommand) Execute(ctx context.Context) (*IndexResult, error) {
	result := &IndexResult{Index: domain.NewRepoIndex()}

	for _, category := range domain.Categories() {
		files, err := c.repo.CategoryFiles(category)
		if err != nil {
			return nil, err
		}

		for _, file := range files {
			content, err := c.repo.ReadDocument(file)
			if err != nil {
				result.Warnings = append(result.Warnings, &application.ProcessError{Path: file, Err: err})
				continue
			}

			rel, err := c.repo.RelPath(file)
			if err != nil {
				result.Warnings = append(result.Warnings, &application.ProcessError{Path: file, Err: err})
				continue
			}

			for _, title := range domain.ExtractIssues(content) {
				result.Index[category] = append(result.Index[category], domain.IssueLink(title, rel))
			}
		}
	}

	return result, nil
}
