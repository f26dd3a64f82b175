package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"doctools/internal/domain"
	"doctools/internal/ports"
)

// Repository implements ports.DocsRepository on the local filesystem
type Repository struct {
	root string
}

// NewRepository creates a new filesystem repository rooted at root
func NewRepository(root string) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(root, "~") {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, root[1:])
	}
	return &Repository{root: root}
}

// Root returns the repository root path
func (r *Repository) Root() string {
	return r.root
}

// Resolve turns a root-relative path into an absolute one. Absolute paths
// pass through unchanged.
func (r *Repository) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.root, path)
}

// RelPath returns path relative to the root, with forward slashes so it can
// be embedded in markdown links.
func (r *Repository) RelPath(path string) (string, error) {
	rel, err := filepath.Rel(r.root, path)
	if err != nil {
		return "", fmt.Errorf("relative path for %s: %w", path, err)
	}
	return filepath.ToSlash(rel), nil
}

// Stat reports whether path is a file or a directory
func (r *Repository) Stat(path string) (ports.PathKind, error) {
	info, err := os.Stat(r.Resolve(path))
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return ports.PathDir, nil
	}
	return ports.PathFile, nil
}

// MarkdownFiles lists markdown files in dir. Recursive walks are lexical,
// so discovery order is deterministic across runs.
func (r *Repository) MarkdownFiles(dir string, recursive bool) ([]string, error) {
	dir = r.Resolve(dir)

	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory: %w", err)
		}

		var files []string
		for _, entry := range entries {
			if entry.IsDir() || !isMarkdown(entry.Name()) {
				continue
			}
			files = append(files, filepath.Join(dir, entry.Name()))
		}
		sort.Strings(files)
		return files, nil
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isMarkdown(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}
	return files, nil
}

// CategoryFiles lists every markdown file under a category directory. A
// missing directory is not an error; the category is simply empty.
func (r *Repository) CategoryFiles(category domain.Category) ([]string, error) {
	dir := filepath.Join(r.root, string(category))
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}
	return r.MarkdownFiles(dir, true)
}

// ReadDocument returns the full text of a markdown file
func (r *Repository) ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(r.Resolve(path))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteDocument rewrites a markdown file with new content
func (r *Repository) WriteDocument(path string, content string) error {
	return os.WriteFile(r.Resolve(path), []byte(content), 0644)
}

func isMarkdown(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown"
}
