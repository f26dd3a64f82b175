package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// ValidateDepthRange checks the header depth window: both bounds must stay
// within the markdown heading range 1-6 and the minimum cannot exceed the
// maximum.
func ValidateDepthRange(minDepth, maxDepth int) error {
	if minDepth < 1 || minDepth > 6 {
		return &ValidationError{
			Field:   "minDepth",
			Message: fmt.Sprintf("minimum depth must be between 1 and 6, got: %d", minDepth),
		}
	}
	if maxDepth < 1 || maxDepth > 6 {
		return &ValidationError{
			Field:   "maxDepth",
			Message: fmt.Sprintf("maximum depth must be between 1 and 6, got: %d", maxDepth),
		}
	}
	if minDepth > maxDepth {
		return &ValidationError{
			Field:   "minDepth",
			Message: fmt.Sprintf("minimum depth %d exceeds maximum depth %d", minDepth, maxDepth),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "minDepth" -> "minimum depth")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"path":        "path",
		"minDepth":    "minimum depth",
		"maxDepth":    "maximum depth",
		"insertAfter": "insert-after text",
		"repoRoot":    "repository root",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}
