package domain

import (
	"regexp"
	"strings"
)

// Header is a single markdown heading: level counts the leading '#'
// characters (1-6), Title is the trimmed heading text, Anchor is the
// GitHub-style fragment identifier derived from the title.
type Header struct {
	Level  int
	Title  string
	Anchor string
}

// headerRegex matches markdown headers (# to ######)
var headerRegex = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// issueRegex matches second-level headings only, used by the repository index
var issueRegex = regexp.MustCompile(`^## (.+)$`)

// tocTitles are heading titles that would make the TOC reference itself
var tocTitles = map[string]bool{
	"table of contents": true,
	"contents":          true,
	"toc":               true,
}

// ExtractHeaders scans markdown content line by line and returns every
// heading in document order. Headings whose title is a TOC label are
// dropped so a generated TOC never links to itself. Content starting with
// a frontmatter block is scanned from the body only.
func ExtractHeaders(content string) []Header {
	_, body := SplitFrontMatter(content)

	var headers []Header
	for _, line := range strings.Split(body, "\n") {
		match := headerRegex.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if match == nil {
			continue
		}

		title := strings.TrimSpace(match[2])
		if tocTitles[strings.ToLower(title)] {
			continue
		}

		headers = append(headers, Header{
			Level:  len(match[1]),
			Title:  title,
			Anchor: Anchor(title),
		})
	}
	return headers
}

// ExtractIssues returns the titles of all second-level headings in document
// order. This is the index's notion of an "issue": one entry per "## "
// line, independent of the full-depth scan used for TOC generation.
func ExtractIssues(content string) []string {
	_, body := SplitFrontMatter(content)

	var issues []string
	for _, line := range strings.Split(body, "\n") {
		match := issueRegex.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if match == nil {
			continue
		}
		issues = append(issues, strings.TrimSpace(match[1]))
	}
	return issues
}
