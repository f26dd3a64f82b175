package domain

import (
	"fmt"
	"regexp"
)

// Stats holds the four published README fields. LastUpdated is the run date
// in ISO 8601 year-month-day form.
type Stats struct {
	TotalIssues    int
	QuickFixes     int
	DetailedGuides int
	LastUpdated    string
}

var (
	// The three labeled bullet lines identifying the statistics section.
	statsBulletsRegex = regexp.MustCompile(
		`- \*\*Total Issues:\*\* \d+\n` +
			`- \*\*Quick Fixes:\*\* \d+\n` +
			`- \*\*Detailed Guides:\*\* \d+`)

	// The independent Last Updated bullet, replaced wherever it appears.
	lastUpdatedRegex = regexp.MustCompile(`- \*\*Last Updated:\*\* \d{4}-\d{2}-\d{2}`)
)

// StatsFromIndex derives the published counts from a repository index.
// Total spans all three categories.
func StatsFromIndex(idx RepoIndex, lastUpdated string) Stats {
	return Stats{
		TotalIssues:    idx.Total(),
		QuickFixes:     idx.Count(CategoryQuickReference),
		DetailedGuides: idx.Count(CategoryDetailedGuides),
		LastUpdated:    lastUpdated,
	}
}

// Bullets renders the three labeled count lines.
func (s Stats) Bullets() string {
	return fmt.Sprintf(
		"- **Total Issues:** %d\n- **Quick Fixes:** %d\n- **Detailed Guides:** %d",
		s.TotalIssues, s.QuickFixes, s.DetailedGuides)
}

// ApplyStats replaces the statistics bullets in README content with fresh
// counts. ok is false when the labeled bullets are absent, in which case the
// content is returned unchanged and the caller must not write. The Last
// Updated bullet is a separate substitution: dateFound reports whether one
// was present, and its absence does not fail the update.
func ApplyStats(content string, s Stats) (updated string, ok bool, dateFound bool) {
	if !statsBulletsRegex.MatchString(content) {
		return content, false, false
	}

	updated = statsBulletsRegex.ReplaceAllLiteralString(content, s.Bullets())

	if lastUpdatedRegex.MatchString(updated) {
		updated = lastUpdatedRegex.ReplaceAllLiteralString(updated, "- **Last Updated:** "+s.LastUpdated)
		dateFound = true
	}

	return updated, true, dateFound
}
