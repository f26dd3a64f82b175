package application

// FileStatus classifies the outcome of processing one markdown file.
type FileStatus int

const (
	// StatusAdded means a new TOC block was inserted.
	StatusAdded FileStatus = iota
	// StatusUpdated means an existing TOC block was replaced.
	StatusUpdated
	// StatusSkipped means the file had no headers and was left untouched.
	StatusSkipped
	// StatusFailed means the file could not be read or written.
	StatusFailed
)

// FileResult is the per-file record of a batch run.
type FileResult struct {
	Path   string
	Status FileStatus
	Err    error
}

// Succeeded reports whether the file counts toward the processed total.
func (r FileResult) Succeeded() bool {
	return r.Status == StatusAdded || r.Status == StatusUpdated
}

// RunSummary aggregates the results of a batch run over markdown files.
type RunSummary struct {
	Results []FileResult
}

// Total returns the number of files considered.
func (s *RunSummary) Total() int {
	return len(s.Results)
}

// Succeeded returns the number of files actually rewritten.
func (s *RunSummary) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if r.Succeeded() {
			n++
		}
	}
	return n
}

// Add appends a per-file result.
func (s *RunSummary) Add(r FileResult) {
	s.Results = append(s.Results, r)
}
