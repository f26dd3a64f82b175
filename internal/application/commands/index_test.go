package commands

import (
	"context"
	"reflect"
	"testing"

	"doctools/internal/domain"
)

func TestBuildIndexCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("collects issue links per category", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addFile("quick-reference/network.md", "# Network\n## Wi-Fi Drops\n## Slow DNS\n")
		repo.addFile("detailed-guides/audio.md", "# Audio\n## No Sound After Sleep\n")

		result, err := NewBuildIndexCommand(repo).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantQuick := []string{
			"[Wi-Fi Drops](quick-reference/network.md#wi-fi-drops)",
			"[Slow DNS](quick-reference/network.md#slow-dns)",
		}
		if !reflect.DeepEqual(result.Index[domain.CategoryQuickReference], wantQuick) {
			t.Errorf("quick-reference links: expected %v, got %v",
				wantQuick, result.Index[domain.CategoryQuickReference])
		}
		if got := result.Index.Count(domain.CategoryDetailedGuides); got != 1 {
			t.Errorf("expected 1 detailed-guides entry, got %d", got)
		}
		if len(result.Warnings) != 0 {
			t.Errorf("expected no warnings, got %v", result.Warnings)
		}
	})

	t.Run("missing category directories contribute nothing", func(t *testing.T) {
		repo := newFakeRepo()

		result, err := NewBuildIndexCommand(repo).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.Index.Total() != 0 {
			t.Errorf("expected an empty index, got total %d", result.Index.Total())
		}
	})

	t.Run("unreadable file becomes a warning", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addFile("quick-reference/good.md", "## Works\n")
		broken := repo.addFile("quick-reference/bad.md", "## Never Seen\n")
		repo.failReads[broken] = true

		result, err := NewBuildIndexCommand(repo).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(result.Warnings) != 1 {
			t.Fatalf("expected 1 warning, got %v", result.Warnings)
		}
		if got := result.Index.Count(domain.CategoryQuickReference); got != 1 {
			t.Errorf("expected the readable file's entry only, got %d", got)
		}
	})
}
