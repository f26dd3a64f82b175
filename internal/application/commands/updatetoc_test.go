package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"doctools/internal/application"
	"doctools/internal/domain"
)

func TestUpdateTOCCommandValidate(t *testing.T) {
	repo := newFakeRepo()

	tests := []struct {
		name    string
		modify  func(*UpdateTOCCommand)
		wantErr bool
	}{
		{"defaults are valid", func(c *UpdateTOCCommand) {}, false},
		{"empty path", func(c *UpdateTOCCommand) { c.Path = "" }, true},
		{"minimum depth out of range", func(c *UpdateTOCCommand) { c.MinDepth = 0 }, true},
		{"maximum depth out of range", func(c *UpdateTOCCommand) { c.MaxDepth = 7 }, true},
		{"inverted depth window", func(c *UpdateTOCCommand) { c.MinDepth = 3; c.MaxDepth = 2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewUpdateTOCCommand(repo, "docs.md")
			tt.modify(cmd)

			err := cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var vErr *application.ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("expected a ValidationError, got %T", err)
				}
			}
		})
	}
}

func TestUpdateTOCCommandExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("missing path fails", func(t *testing.T) {
		repo := newFakeRepo()

		_, err := NewUpdateTOCCommand(repo, "missing.md").Execute(ctx)

		if !errors.Is(err, application.ErrPathNotFound) {
			t.Errorf("expected ErrPathNotFound, got %v", err)
		}
	})

	t.Run("non-markdown file fails", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addFile("notes.txt", "# Heading\n")

		_, err := NewUpdateTOCCommand(repo, "notes.txt").Execute(ctx)

		if !errors.Is(err, application.ErrNotMarkdown) {
			t.Errorf("expected ErrNotMarkdown, got %v", err)
		}
	})

	t.Run("adds a TOC to a single file", func(t *testing.T) {
		repo := newFakeRepo()
		path := repo.addFile("guide.md", "# Guide\n\n## Setup\n")

		summary, err := NewUpdateTOCCommand(repo, "guide.md").Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if summary.Total() != 1 || summary.Succeeded() != 1 {
			t.Errorf("expected 1/1, got %d/%d", summary.Succeeded(), summary.Total())
		}
		if summary.Results[0].Status != application.StatusAdded {
			t.Errorf("expected StatusAdded, got %v", summary.Results[0].Status)
		}
		if !strings.Contains(repo.files[path], domain.TOCStartMarker) {
			t.Errorf("expected a TOC block in the file, got:\n%s", repo.files[path])
		}
	})

	t.Run("directory run survives a failing file", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addFile("docs/a.md", "# A\n\n## One\n")
		broken := repo.addFile("docs/b.md", "# B\n")
		repo.addFile("docs/c.md", "# C\n\n## Two\n")
		repo.failReads[broken] = true

		summary, err := NewUpdateTOCCommand(repo, "docs").Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if summary.Total() != 3 {
			t.Errorf("expected 3 files considered, got %d", summary.Total())
		}
		if summary.Succeeded() != 2 {
			t.Errorf("expected 2 files rewritten, got %d", summary.Succeeded())
		}

		var failed int
		for _, r := range summary.Results {
			if r.Status == application.StatusFailed {
				failed++
				var pErr *application.ProcessError
				if !errors.As(r.Err, &pErr) {
					t.Errorf("expected a ProcessError, got %T", r.Err)
				}
			}
		}
		if failed != 1 {
			t.Errorf("expected 1 failed file, got %d", failed)
		}
	})

	t.Run("file without headers is skipped and untouched", func(t *testing.T) {
		repo := newFakeRepo()
		original := "plain prose, no headings\n"
		path := repo.addFile("empty.md", original)

		summary, err := NewUpdateTOCCommand(repo, "empty.md").Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if summary.Results[0].Status != application.StatusSkipped {
			t.Errorf("expected StatusSkipped, got %v", summary.Results[0].Status)
		}
		if !errors.Is(summary.Results[0].Err, application.ErrNoHeaders) {
			t.Errorf("expected ErrNoHeaders, got %v", summary.Results[0].Err)
		}
		if repo.files[path] != original {
			t.Errorf("skipped file must not change, got %q", repo.files[path])
		}
	})

	t.Run("non-recursive run ignores nested files", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addFile("docs/top.md", "# Top\n\n## Section\n")
		repo.addFile("docs/nested/deep.md", "# Deep\n\n## Section\n")

		summary, err := NewUpdateTOCCommand(repo, "docs").Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if summary.Total() != 1 {
			t.Errorf("expected only the top-level file, got %d", summary.Total())
		}
	})
}
