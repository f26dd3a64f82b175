package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Sentinel markers delimiting a generated TOC block. A later run finds the
// block by searching for this exact pair, so the framing must not change.
const (
	TOCStartMarker = "<!-- TOC START -->"
	TOCEndMarker   = "<!-- TOC END -->"
	TOCHeading     = "## Table of Contents"
)

// tocBlockRegex matches an existing sentinel-delimited TOC block, including
// the newline after the closing marker so replacement stays stable across
// repeated runs.
var tocBlockRegex = regexp.MustCompile(`(?s)<!-- TOC START -->.*?<!-- TOC END -->\n?`)

// TOCOutcome describes what UpdateTOC did to a document.
type TOCOutcome int

const (
	// TOCSkipped means the document has no headers; nothing to generate.
	TOCSkipped TOCOutcome = iota
	// TOCAdded means a new block was inserted.
	TOCAdded
	// TOCUpdated means an existing block was replaced.
	TOCUpdated
)

// HasTOC reports whether content already carries a sentinel-delimited block.
func HasTOC(content string) bool {
	return tocBlockRegex.MatchString(content)
}

// RenderTOC renders headers within [minDepth, maxDepth] as a nested bullet
// list wrapped in the sentinel pair, ending with a trailing newline. The
// indentation baseline is the minimum level among ALL headers, not just the
// ones inside the depth window, so filtering never shifts entries left.
// Returns "" for an empty header sequence.
func RenderTOC(headers []Header, maxDepth, minDepth int) string {
	if len(headers) == 0 {
		return ""
	}

	minLevel := headers[0].Level
	for _, h := range headers[1:] {
		if h.Level < minLevel {
			minLevel = h.Level
		}
	}

	lines := []string{TOCStartMarker, TOCHeading, ""}
	for _, h := range headers {
		if h.Level < minDepth || h.Level > maxDepth {
			continue
		}
		indent := strings.Repeat("  ", h.Level-minLevel)
		lines = append(lines, fmt.Sprintf("%s- [%s](#%s)", indent, h.Title, h.Anchor))
	}
	lines = append(lines, "", TOCEndMarker, "")

	return strings.Join(lines, "\n")
}

// UpdateTOC returns content with a freshly rendered TOC block. An existing
// block is replaced in place. Otherwise the block is inserted after the
// first case-insensitive occurrence of insertAfter when that is supplied and
// found (the document's own text at the match site is preserved), or at the
// top of the document, after the frontmatter block when one exists. When the
// document has no headers the content is returned unchanged with TOCSkipped.
func UpdateTOC(content string, maxDepth, minDepth int, insertAfter string) (string, TOCOutcome) {
	headers := ExtractHeaders(content)
	if len(headers) == 0 {
		return content, TOCSkipped
	}

	toc := RenderTOC(headers, maxDepth, minDepth)

	if HasTOC(content) {
		return tocBlockRegex.ReplaceAllLiteralString(content, toc), TOCUpdated
	}

	if insertAfter != "" {
		idx := strings.Index(strings.ToLower(content), strings.ToLower(insertAfter))
		if idx >= 0 {
			end := idx + len(insertAfter)
			return content[:end] + "\n\n" + toc + content[end:], TOCAdded
		}
	}

	front, body := SplitFrontMatter(content)
	return front + toc + "\n" + body, TOCAdded
}
