package domain

import (
	"strings"

	"github.com/adrg/frontmatter"
)

// SplitFrontMatter separates a leading frontmatter block (delimiters
// included) from the document body. When the content carries no
// frontmatter, or the block is malformed, the front part is empty and the
// body is the content unchanged.
func SplitFrontMatter(content string) (front, body string) {
	var meta map[string]any
	rest, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return "", content
	}

	body = string(rest)
	if len(body) >= len(content) {
		return "", content
	}
	return content[:len(content)-len(body)], body
}

// ParseFrontMatter decodes the frontmatter fields of a document. The
// returned map is empty (never nil) for documents without frontmatter.
func ParseFrontMatter(content string) (map[string]any, string, error) {
	meta := map[string]any{}
	rest, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return nil, "", err
	}
	return meta, string(rest), nil
}
