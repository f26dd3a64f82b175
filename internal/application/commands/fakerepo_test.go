package commands

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"doctools/internal/domain"
	"doctools/internal/ports"
)

// fakeRepo is an in-memory ports.DocsRepository for command tests.
type fakeRepo struct {
	root       string
	files      map[string]string
	dirs       map[string]bool
	failReads  map[string]bool
	failWrites map[string]bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		root:       "/repo",
		files:      map[string]string{},
		dirs:       map[string]bool{"/repo": true},
		failReads:  map[string]bool{},
		failWrites: map[string]bool{},
	}
}

// addFile registers a file under a root-relative path, creating parent
// directories along the way.
func (f *fakeRepo) addFile(relPath, content string) string {
	abs := f.Resolve(relPath)
	f.files[abs] = content

	dir := filepath.Dir(abs)
	for dir != "/" && !f.dirs[dir] {
		f.dirs[dir] = true
		dir = filepath.Dir(dir)
	}
	return abs
}

func (f *fakeRepo) Root() string {
	return f.root
}

func (f *fakeRepo) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(f.root, path)
}

func (f *fakeRepo) RelPath(path string) (string, error) {
	rel, err := filepath.Rel(f.root, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

func (f *fakeRepo) Stat(path string) (ports.PathKind, error) {
	if f.dirs[path] {
		return ports.PathDir, nil
	}
	if _, ok := f.files[path]; ok {
		return ports.PathFile, nil
	}
	return 0, fmt.Errorf("stat %s: no such file or directory", path)
}

func (f *fakeRepo) MarkdownFiles(dir string, recursive bool) ([]string, error) {
	dir = f.Resolve(dir)
	prefix := dir + "/"

	var files []string
	for path := range f.files {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		if !recursive && strings.Contains(path[len(prefix):], "/") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".md" || ext == ".markdown" {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}

func (f *fakeRepo) CategoryFiles(category domain.Category) ([]string, error) {
	dir := f.Resolve(string(category))
	if !f.dirs[dir] {
		return nil, nil
	}
	return f.MarkdownFiles(dir, true)
}

func (f *fakeRepo) ReadDocument(path string) (string, error) {
	if f.failReads[path] {
		return "", fmt.Errorf("read %s: permission denied", path)
	}
	content, ok := f.files[path]
	if !ok {
		return "", fmt.Errorf("read %s: no such file", path)
	}
	return content, nil
}

func (f *fakeRepo) WriteDocument(path string, content string) error {
	if f.failWrites[path] {
		return fmt.Errorf("write %s: permission denied", path)
	}
	f.files[path] = content
	return nil
}
