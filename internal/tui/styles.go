package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorMuted   = lipgloss.Color("240") // Dark gray
	ColorWarning = lipgloss.Color("214") // Orange
)

var (
	// HeadingStyle renders the picker heading.
	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51")) // Cyan

	// HelpStyle renders the dimmed instructions under the heading.
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ListStyle separates the options from the help text.
	ListStyle = lipgloss.NewStyle().
			MarginTop(1)

	// EmptyStyle renders the notice shown when nothing can be picked.
	EmptyStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)
