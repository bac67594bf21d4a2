package components

import (
	"github.com/charmbracelet/lipgloss"
)

// PopoverHeight is the number of rows a rendered popover occupies.
const PopoverHeight = 3

// RenderPopover renders a bordered label centered over column anchor and
// kept inside a row of the given width.
func RenderPopover(text string, anchor, width int, borderColor lipgloss.TerminalColor) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Render(text)

	boxWidth := lipgloss.Width(box)
	x := anchor - boxWidth/2
	if x > width-boxWidth {
		x = width - boxWidth
	}
	if x < 0 {
		x = 0
	}
	return lipgloss.NewStyle().MarginLeft(x).Render(box)
}
