package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")). // Green
			Bold(true)

	updateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")) // Blue

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")) // Amber

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")). // Red
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")) // Gray
)

// Reporter prints styled per-file status lines and run summaries.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a reporter writing to out
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Successf prints a green success line (new TOC added, stats written).
func (r *Reporter) Successf(format string, args ...any) {
	fmt.Fprintln(r.out, successStyle.Render("✅ "+fmt.Sprintf(format, args...)))
}

// Updatef prints a line for an in-place update.
func (r *Reporter) Updatef(format string, args ...any) {
	fmt.Fprintln(r.out, updateStyle.Render("🔄 "+fmt.Sprintf(format, args...)))
}

// Warnf prints an amber warning line; warnings never stop a run.
func (r *Reporter) Warnf(format string, args ...any) {
	fmt.Fprintln(r.out, warningStyle.Render("⚠️  "+fmt.Sprintf(format, args...)))
}

// Errorf prints a red error line.
func (r *Reporter) Errorf(format string, args ...any) {
	fmt.Fprintln(r.out, errorStyle.Render("❌ "+fmt.Sprintf(format, args...)))
}

// Infof prints a muted informational line.
func (r *Reporter) Infof(format string, args ...any) {
	fmt.Fprintln(r.out, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Summaryf prints the processed-vs-total run summary.
func (r *Reporter) Summaryf(succeeded, total int) {
	fmt.Fprintf(r.out, "\n📊 Summary:\n   Processed: %d/%d files\n", succeeded, total)
	switch {
	case total == 0:
		// nothing to report beyond the counts
	case succeeded == total:
		r.Successf("All files processed successfully!")
	case succeeded > 0:
		r.Warnf("Some files had issues")
	default:
		r.Errorf("No files were processed successfully")
	}
}
