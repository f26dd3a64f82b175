package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"doctools/internal/adapters/renderer"
	"doctools/internal/application"
)

func TestPreviewCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("previews frontmatter, headers and TOC without writing", func(t *testing.T) {
		repo := newFakeRepo()
		original := "---\ntitle: Guide\n---\n# Guide\n\n## Setup\n\nbody\n"
		path := repo.addFile("guide.md", original)

		result, err := NewPreviewCommand(repo, nil, "guide.md").Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.FrontMatter["title"] != "Guide" {
			t.Errorf("expected title field, got %v", result.FrontMatter)
		}
		if len(result.Headers) != 2 {
			t.Errorf("expected 2 headers, got %v", result.Headers)
		}
		if !strings.Contains(result.TOC, "- [Guide](#guide)") {
			t.Errorf("expected a TOC entry, got:\n%s", result.TOC)
		}
		if result.HTML != "" {
			t.Errorf("expected no HTML without a renderer, got %q", result.HTML)
		}
		if repo.files[path] != original {
			t.Errorf("preview must not write, file changed to %q", repo.files[path])
		}
	})

	t.Run("renders HTML when asked", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addFile("guide.md", "# Guide\n\nsome **bold** text\n")

		cmd := NewPreviewCommand(repo, renderer.NewGoldmark(), "guide.md")
		cmd.RenderHTML = true

		result, err := cmd.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(result.HTML, "<strong>bold</strong>") {
			t.Errorf("expected rendered HTML, got %q", result.HTML)
		}
	})

	t.Run("non-markdown path fails", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addFile("notes.txt", "# Heading\n")

		_, err := NewPreviewCommand(repo, nil, "notes.txt").Execute(ctx)

		if !errors.Is(err, application.ErrNotMarkdown) {
			t.Errorf("expected ErrNotMarkdown, got %v", err)
		}
	})
}
