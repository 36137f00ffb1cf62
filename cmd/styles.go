package cmd

import "github.com/charmbracelet/lipgloss"

var (
	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for error indicators
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// pendingStyle for pages that still need writing
	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))
)
