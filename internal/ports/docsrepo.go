package ports

import "doctools/internal/domain"

// PathKind distinguishes files from directories.
type PathKind int

const (
	PathFile PathKind = iota
	PathDir
)

// DocsRepository defines the interface for reading and writing the
// documentation repository on disk. All paths returned by listing methods
// are absolute; RelPath converts back to root-relative form for link
// building.
type DocsRepository interface {
	// Root returns the repository root path.
	Root() string

	// Resolve turns a possibly relative path into an absolute one under
	// the root.
	Resolve(path string) string

	// RelPath returns path relative to the repository root.
	RelPath(path string) (string, error)

	// Stat reports whether path is a file or a directory. A missing path
	// is an error.
	Stat(path string) (PathKind, error)

	// MarkdownFiles lists the markdown files in dir (absolute or
	// root-relative), in deterministic walk order. When recursive is
	// false only the directory's own entries are considered.
	MarkdownFiles(dir string, recursive bool) ([]string, error)

	// CategoryFiles lists every markdown file under a category directory,
	// recursively. A missing category directory yields no files and no
	// error.
	CategoryFiles(category domain.Category) ([]string, error)

	// ReadDocument returns the full text of a markdown file.
	ReadDocument(path string) (string, error)

	// WriteDocument rewrites a markdown file with new content.
	WriteDocument(path string, content string) error
}
