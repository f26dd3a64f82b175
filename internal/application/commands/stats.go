package commands

import (
	"context"
	"fmt"
	"time"

	"doctools/internal/application"
	"doctools/internal/domain"
	"doctools/internal/ports"
)

// StatsResult reports what a statistics update computed and changed.
type StatsResult struct {
	Stats domain.Stats
	// DateFound reports whether a Last Updated bullet existed to rewrite.
	DateFound bool
	// Warnings carries per-file read problems from the index build.
	Warnings []error
}

// UpdateStatsCommand recomputes the repository statistics from the index and
// rewrites the statistics block in the root README.
type UpdateStatsCommand struct {
	repo ports.DocsRepository

	// now is the clock used for the Last Updated field; tests override it.
	now func() time.Time
}

// NewUpdateStatsCommand creates a new UpdateStatsCommand
func NewUpdateStatsCommand(repo ports.DocsRepository) *UpdateStatsCommand {
	return &UpdateStatsCommand{repo: repo, now: time.Now}
}

// Execute recomputes counts and rewrites README.md. The labeled statistics
// bullets must already exist: when absent the README is left untouched and
// the command fails. A missing Last Updated bullet is tolerated.
func (c *UpdateStatsCommand) Execute(ctx context.Context) (*StatsResult, error) {
	indexResult, err := NewBuildIndexCommand(c.repo).Execute(ctx)
	if err != nil {
		return nil, err
	}

	stats := domain.StatsFromIndex(indexResult.Index, c.now().Format("2006-01-02"))

	readmePath := c.repo.Resolve("README.md")
	content, err := c.repo.ReadDocument(readmePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", application.ErrReadmeNotFound, err)
	}

	updated, ok, dateFound := domain.ApplyStats(content, stats)
	if !ok {
		return nil, application.ErrStatsNotFound
	}

	if err := c.repo.WriteDocument(readmePath, updated); err != nil {
		return nil, &application.ProcessError{Path: readmePath, Err: err}
	}

	return &StatsResult{
		Stats:     stats,
		DateFound: dateFound,
		Warnings:  indexResult.Warnings,
	}, nil
}
