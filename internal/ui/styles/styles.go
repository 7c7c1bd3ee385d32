// Package styles defines the visual styling for terminal previews.
package styles

import "github.com/charmbracelet/lipgloss"

// Color definitions.
var (
	Primary   = lipgloss.Color("205") // Pink
	Secondary = lipgloss.Color("63")  // Purple
	Subtle    = lipgloss.Color("240") // Gray
	Warning   = lipgloss.Color("220") // Yellow
)

// TitleStyle is used for the gist title heading.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginBottom(1)

// SubTitleStyle is used for section headings.
var SubTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Secondary).
	MarginTop(1).
	MarginBottom(1)

// CardStyle creates a bordered card around the rendered chart.
var CardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Subtle).
	Padding(0, 1)

// HelpStyle is used for hints and empty states.
var HelpStyle = lipgloss.NewStyle().
	Foreground(Subtle).
	Italic(true)

// WarningStyle highlights non-fatal conditions such as dry runs and empty reports.
var WarningStyle = lipgloss.NewStyle().
	Foreground(Warning)
