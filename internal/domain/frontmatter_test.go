package domain

import "testing"

func TestSplitFrontMatter(t *testing.T) {
	t.Run("separates block from body", func(t *testing.T) {
		content := "---\ntitle: Guide\ntags: [wifi]\n---\n# Heading\n\nbody\n"

		front, body := SplitFrontMatter(content)

		if front+body != content {
			t.Errorf("split must reassemble the document, got front=%q body=%q", front, body)
		}
		if front == "" {
			t.Error("expected a non-empty front part")
		}
		if body != "# Heading\n\nbody\n" {
			t.Errorf("unexpected body %q", body)
		}
	})

	t.Run("content without frontmatter passes through", func(t *testing.T) {
		content := "# Heading\n\nbody\n"

		front, body := SplitFrontMatter(content)

		if front != "" {
			t.Errorf("expected empty front part, got %q", front)
		}
		if body != content {
			t.Errorf("expected unchanged body, got %q", body)
		}
	})

	t.Run("malformed frontmatter falls back to whole content", func(t *testing.T) {
		content := "---\n: not yaml\n---\n# Heading\n"

		front, body := SplitFrontMatter(content)

		if front != "" {
			t.Errorf("expected empty front part, got %q", front)
		}
		if body != content {
			t.Errorf("expected unchanged body, got %q", body)
		}
	})
}

func TestParseFrontMatter(t *testing.T) {
	meta, body, err := ParseFrontMatter("---\ntitle: Guide\n---\n# Heading\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if meta["title"] != "Guide" {
		t.Errorf("expected title field, got %v", meta)
	}
	if body != "# Heading\n" {
		t.Errorf("unexpected body %q", body)
	}
}
