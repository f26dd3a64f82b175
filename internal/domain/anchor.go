package domain

import (
	"regexp"
	"strings"
)

var (
	// Characters that survive slugging: letters, digits, underscore,
	// whitespace, and hyphens. Everything else is deleted.
	anchorStripRegex = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	whitespaceRegex  = regexp.MustCompile(`\s+`)
	hyphenRunRegex   = regexp.MustCompile(`-+`)
)

// Anchor converts a heading title into a GitHub-style fragment identifier:
// lowercase, punctuation removed, whitespace and hyphen runs collapsed to a
// single hyphen, no leading or trailing hyphens. Idempotent, and may return
// an empty string when the title has no eligible characters.
func Anchor(title string) string {
	anchor := strings.ToLower(title)
	anchor = anchorStripRegex.ReplaceAllString(anchor, "")
	anchor = whitespaceRegex.ReplaceAllString(anchor, "-")
	anchor = hyphenRunRegex.ReplaceAllString(anchor, "-")
	return strings.Trim(anchor, "-")
}
