package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrPathNotFound   = errors.New("path does not exist")
	ErrNotMarkdown    = errors.New("not a markdown file")
	ErrNoHeaders      = errors.New("no headers found")
	ErrStatsNotFound  = errors.New("statistics section not found")
	ErrReadmeNotFound = errors.New("README.md not found")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ProcessError records a per-file failure during a batch run. It names the
// offending path and the underlying cause; one file's failure never aborts
// the remaining files.
type ProcessError struct {
	Path string
	Err  error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("processing %s: %v", e.Path, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}
