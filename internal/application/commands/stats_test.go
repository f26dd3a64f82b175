package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"doctools/internal/application"
)

const statsReadme = `# Troubleshooting Docs

## Statistics

- **Total Issues:** 0
- **Quick Fixes:** 0
- **Detailed Guides:** 0

- **Last Updated:** 2024-01-01
`

func fixedClock() time.Time {
	return time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
}

func TestUpdateStatsCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes counts and rewrites the README", func(t *testing.T) {
		repo := newFakeRepo()
		readme := repo.addFile("README.md", statsReadme)
		repo.addFile("quick-reference/network.md", "## Wi-Fi Drops\n## Slow DNS\n")
		repo.addFile("detailed-guides/audio.md", "## No Sound\n")
		repo.addFile("platform-specific/mac.md", "## Kernel Panic\n")

		cmd := NewUpdateStatsCommand(repo)
		cmd.now = fixedClock

		result, err := cmd.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.Stats.TotalIssues != 4 || result.Stats.QuickFixes != 2 || result.Stats.DetailedGuides != 1 {
			t.Errorf("unexpected stats: %+v", result.Stats)
		}
		if !result.DateFound {
			t.Error("expected the date bullet to be found")
		}

		updated := repo.files[readme]
		for _, line := range []string{
			"- **Total Issues:** 4",
			"- **Quick Fixes:** 2",
			"- **Detailed Guides:** 1",
			"- **Last Updated:** 2026-08-23",
		} {
			if !strings.Contains(updated, line) {
				t.Errorf("expected %q in README:\n%s", line, updated)
			}
		}
	})

	t.Run("missing bullets leave the README untouched", func(t *testing.T) {
		repo := newFakeRepo()
		original := "# Docs\n\nno statistics block\n"
		readme := repo.addFile("README.md", original)

		_, err := NewUpdateStatsCommand(repo).Execute(ctx)

		if !errors.Is(err, application.ErrStatsNotFound) {
			t.Errorf("expected ErrStatsNotFound, got %v", err)
		}
		if repo.files[readme] != original {
			t.Errorf("README must not change, got %q", repo.files[readme])
		}
	})

	t.Run("missing README fails", func(t *testing.T) {
		repo := newFakeRepo()

		_, err := NewUpdateStatsCommand(repo).Execute(ctx)

		if !errors.Is(err, application.ErrReadmeNotFound) {
			t.Errorf("expected ErrReadmeNotFound, got %v", err)
		}
	})

	t.Run("index warnings propagate", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addFile("README.md", statsReadme)
		broken := repo.addFile("quick-reference/bad.md", "## Hidden\n")
		repo.failReads[broken] = true

		cmd := NewUpdateStatsCommand(repo)
		cmd.now = fixedClock

		result, err := cmd.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(result.Warnings) != 1 {
			t.Errorf("expected 1 warning, got %v", result.Warnings)
		}
		if result.Stats.TotalIssues != 0 {
			t.Errorf("unreadable file must not count, got %d", result.Stats.TotalIssues)
		}
	})
}
