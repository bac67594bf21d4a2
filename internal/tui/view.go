package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rangepick/rangepick/internal/slider"
	"github.com/rangepick/rangepick/internal/tui/colors"
	"github.com/rangepick/rangepick/internal/tui/components"
)

func (m RootModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	r := m.slider.Range()
	title := lipgloss.JoinHorizontal(lipgloss.Left,
		TitleStyle.Render("rangepick"),
		"  ",
		RangeStyle.Render(fmt.Sprintf("%d – %d", r.Start, r.End)),
	)
	lines := []string{title, ""}

	if m.tooNarrow {
		lines = append(lines,
			WarningStyle.Render("Terminal too narrow for the slider."),
			"",
			HelpStyle.Render(m.help.View(m.keys)),
		)
		return strings.Join(lines, "\n")
	}

	lines = append(lines, m.popoverLines()...)

	margin := strings.Repeat(" ", m.trackMargin)
	lines = append(lines,
		margin+m.track.View(),
		margin+m.scaleLine(),
		"",
		m.statusLine(),
		HelpStyle.Render(m.help.View(m.keys)),
	)
	return strings.Join(lines, "\n")
}

// popoverLines always returns PopoverHeight rows so the track stays on
// trackRow.
func (m RootModel) popoverLines() []string {
	blank := make([]string, components.PopoverHeight)
	if !m.showLabels || !m.drag.dragging() {
		return blank
	}

	h := m.drag.handle
	color := colors.HandleEnd
	if h == slider.HandleStart {
		color = colors.HandleStart
	}
	box := components.RenderPopover(m.popoverText(h), m.trackMargin+m.track.Center(h), m.width, color)

	out := strings.Split(box, "\n")
	if len(out) != components.PopoverHeight {
		return blank
	}
	return out
}

func (m RootModel) popoverText(h slider.Handle) string {
	cfg := m.slider.Config()
	r := m.slider.Range()
	label, value := cfg.EndLabel, r.End
	if h == slider.HandleStart {
		label, value = cfg.StartLabel, r.Start
	}
	if label == "" {
		return strconv.Itoa(value)
	}
	return label + " " + strconv.Itoa(value)
}

func (m RootModel) scaleLine() string {
	lo := "0"
	hi := strconv.Itoa(m.maxValue())
	gap := m.track.Width - len(lo) - len(hi)
	if gap < 1 {
		gap = 1
	}
	return ScaleLabelStyle.Render(lo + strings.Repeat(" ", gap) + hi)
}

func (m RootModel) statusLine() string {
	if m.status != "" {
		return StatusOKStyle.Render(m.status)
	}
	return StatusStyle.Render(fmt.Sprintf("%d change(s)", m.history.count))
}
