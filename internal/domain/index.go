package domain

import "fmt"

// Category names the fixed subdirectories of the documentation repository
// that contribute entries to the index. The set is closed: there are exactly
// three categories, and a missing directory simply yields an empty list.
type Category string

const (
	CategoryQuickReference   Category = "quick-reference"
	CategoryDetailedGuides   Category = "detailed-guides"
	CategoryPlatformSpecific Category = "platform-specific"
)

// Categories returns the closed category set in its canonical order.
func Categories() []Category {
	return []Category{
		CategoryQuickReference,
		CategoryDetailedGuides,
		CategoryPlatformSpecific,
	}
}

// RepoIndex maps each category to its issue links in discovery order. It is
// transient: built fresh per invocation and consumed immediately, never
// persisted.
type RepoIndex map[Category][]string

// NewRepoIndex returns an index with every category present and empty.
func NewRepoIndex() RepoIndex {
	idx := make(RepoIndex, len(Categories()))
	for _, c := range Categories() {
		idx[c] = nil
	}
	return idx
}

// Count returns the number of entries in a category.
func (idx RepoIndex) Count(c Category) int {
	return len(idx[c])
}

// Total returns the number of entries across all categories.
func (idx RepoIndex) Total() int {
	total := 0
	for _, links := range idx {
		total += len(links)
	}
	return total
}

// IssueLink builds the markdown link for one issue: the heading text, the
// file path relative to the repository root, and the heading's anchor.
func IssueLink(title, relPath string) string {
	return fmt.Sprintf("[%s](%s#%s)", title, relPath, Anchor(title))
}
