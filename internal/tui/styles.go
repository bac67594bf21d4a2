package tui

import (
	"github.com/rangepick/rangepick/internal/tui/colors"

	"github.com/charmbracelet/lipgloss"
)

// === Layout Styles ===
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(colors.NeonPurple).
			Bold(true)

	RangeStyle = lipgloss.NewStyle().
			Foreground(colors.NeonPink).
			Bold(true)

	ScaleLabelStyle = lipgloss.NewStyle().
			Foreground(colors.LightGray)

	StatusStyle = lipgloss.NewStyle().
			Foreground(colors.LightGray)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(colors.Active)

	WarningStyle = lipgloss.NewStyle().
			Foreground(colors.Warning).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colors.Gray)
)
