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

	// Status header
	StatusBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	StatusOn = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatusOff = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	// Seminar list
	SeminarRow = lipgloss.NewStyle()

	SeminarSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	SeminarConnected = lipgloss.NewStyle().
				Foreground(Secondary)

	Cursor   = "▶ "
	NoCursor = "  "

	// Settings toggles
	ToggleOn  = lipgloss.NewStyle().Foreground(Secondary).SetString("[x]")
	ToggleOff = lipgloss.NewStyle().Foreground(Muted).SetString("[ ]")

	// Labels
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

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

// Toggle renders a checkbox for a boolean setting
func Toggle(on bool) string {
	if on {
		return ToggleOn.String()
	}
	return ToggleOff.String()
}

// Flag renders an on/off state with its label
func Flag(on bool, yes, no string) string {
	if on {
		return StatusOn.Render(yes)
	}
	return StatusOff.Render(no)
}
