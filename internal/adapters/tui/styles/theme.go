package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Category colors
	QuickReference   = lipgloss.Color("#60A5FA") // Blue
	DetailedGuides   = lipgloss.Color("#8B5CF6") // Violet
	PlatformSpecific = lipgloss.Color("#F97316") // Orange

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Document row styles
	DocRow = lipgloss.NewStyle()

	DocSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	DocHasTOC = lipgloss.NewStyle().
			Foreground(Secondary)

	DocNoTOC = lipgloss.NewStyle().
			Foreground(Warning)

	DocNoHeaders = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// CategoryColor returns the color for a category directory name
func CategoryColor(category string) lipgloss.Color {
	switch category {
	case "quick-reference":
		return QuickReference
	case "detailed-guides":
		return DetailedGuides
	case "platform-specific":
		return PlatformSpecific
	default:
		return Primary
	}
}
