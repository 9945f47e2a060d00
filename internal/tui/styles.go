package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Status line under the panes
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595"))

	// Page counter in the status line
	CounterStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7")).
			Padding(0, 1)

	// Error style for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))
)
