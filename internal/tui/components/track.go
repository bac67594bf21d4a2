package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rangepick/rangepick/internal/slider"
	"github.com/rangepick/rangepick/internal/tui/colors"
)

const (
	glyphBase   = "─"
	glyphFill   = "━"
	glyphHandle = "█"
)

type cellKind int

const (
	cellBase cellKind = iota
	cellFill
	cellStart
	cellEnd
)

// Track renders the slider row. It is the slider's ViewUpdater: the core
// hands it offsets and Track turns them into terminal cells.
type Track struct {
	Width       int // track width in cells, excluding margins
	HandleWidth int
	ShowStart   bool

	offsets  slider.Offsets
	active   slider.Handle
	dragging bool
}

// NewTrack creates a track for handles of the given width in cells.
func NewTrack(handleWidth int, showStart bool) *Track {
	return &Track{
		HandleWidth: handleWidth,
		ShowStart:   showStart,
	}
}

// ApplyOffsets implements slider.ViewUpdater.
func (t *Track) ApplyOffsets(o slider.Offsets) {
	t.offsets = o
}

// Offsets returns the last offsets received from the slider.
func (t *Track) Offsets() slider.Offsets {
	return t.offsets
}

// Resize sets the track width. Offsets follow on the next layout.
func (t *Track) Resize(width int) {
	t.Width = width
}

// SetActive highlights h while it is being dragged.
func (t *Track) SetActive(h slider.Handle, dragging bool) {
	t.active = h
	t.dragging = dragging
}

// StartSpan returns the half-open cell range covered by the start handle.
func (t *Track) StartSpan() (from, to int) {
	from = t.clamp(int(math.Round(t.offsets.Left)))
	return from, t.clamp(from + t.HandleWidth)
}

// EndSpan returns the half-open cell range covered by the end handle.
func (t *Track) EndSpan() (from, to int) {
	to = t.clamp(t.Width - int(math.Round(t.offsets.Right)))
	return t.clamp(to - t.HandleWidth), to
}

// Center returns the cell at the middle of a handle.
func (t *Track) Center(h slider.Handle) int {
	from, to := t.EndSpan()
	if h == slider.HandleStart {
		from, to = t.StartSpan()
	}
	return from + (to-from)/2
}

// HitTest maps a track-local cell to the handle under it. The start handle
// wins when both overlap.
func (t *Track) HitTest(x int) (slider.Handle, bool) {
	if t.ShowStart {
		if from, to := t.StartSpan(); x >= from && x < to {
			return slider.HandleStart, true
		}
	}
	if from, to := t.EndSpan(); x >= from && x < to {
		return slider.HandleEnd, true
	}
	return 0, false
}

func (t *Track) clamp(x int) int {
	if x < 0 {
		return 0
	}
	if x > t.Width {
		return t.Width
	}
	return x
}

func (t *Track) cells() []cellKind {
	cells := make([]cellKind, t.Width)

	fillFrom := t.clamp(int(math.Round(t.offsets.FillLeft)))
	fillTo := t.clamp(t.Width - int(math.Round(t.offsets.FillRight)))
	for i := fillFrom; i < fillTo; i++ {
		cells[i] = cellFill
	}

	from, to := t.EndSpan()
	for i := from; i < to; i++ {
		cells[i] = cellEnd
	}
	if t.ShowStart {
		from, to = t.StartSpan()
		for i := from; i < to; i++ {
			cells[i] = cellStart
		}
	}
	return cells
}

// View renders the track row.
func (t *Track) View() string {
	if t.Width <= 0 {
		return ""
	}

	cells := t.cells()
	fillCount := 0
	for _, c := range cells {
		if c == cellFill {
			fillCount++
		}
	}
	fill := gradient(fillCount, colors.Resolve(colors.FillStart), colors.Resolve(colors.FillEnd))

	baseStyle := lipgloss.NewStyle().Foreground(colors.Track)
	startStyle := lipgloss.NewStyle().Foreground(t.handleColor(slider.HandleStart, colors.HandleStart))
	endStyle := lipgloss.NewStyle().Foreground(t.handleColor(slider.HandleEnd, colors.HandleEnd))

	var s strings.Builder
	fi := 0
	for _, c := range cells {
		switch c {
		case cellFill:
			s.WriteString(lipgloss.NewStyle().Foreground(fill[fi]).Render(glyphFill))
			fi++
		case cellStart:
			s.WriteString(startStyle.Render(glyphHandle))
		case cellEnd:
			s.WriteString(endStyle.Render(glyphHandle))
		default:
			s.WriteString(baseStyle.Render(glyphBase))
		}
	}
	return s.String()
}

func (t *Track) handleColor(h slider.Handle, idle lipgloss.AdaptiveColor) lipgloss.AdaptiveColor {
	if t.dragging && t.active == h {
		return colors.Active
	}
	return idle
}
