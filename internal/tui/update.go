package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rangepick/rangepick/internal/slider"
	"github.com/rangepick/rangepick/internal/utils"
)

const statusTimeout = 2 * time.Second

var clipboardWriteAll = clipboard.WriteAll

type clearStatusMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// Update handles messages and updates the model
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout(msg.Width)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.drag.end()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Reset):
			if err := m.slider.SetRange(slider.Range{Start: 0, End: m.maxValue()}); err != nil {
				utils.Debug("tui: reset failed: %v", err)
				return m, nil
			}
			m.status = "range reset"
			return m, clearStatusAfter(statusTimeout)

		case key.Matches(msg, m.keys.Copy):
			r := m.slider.Range()
			text := fmt.Sprintf("%d-%d", r.Start, r.End)
			if err := clipboardWriteAll(text); err != nil {
				utils.Debug("tui: clipboard write failed: %v", err)
				m.status = "clipboard unavailable"
			} else {
				m.status = "copied " + text
			}
			return m, clearStatusAfter(statusTimeout)

		case key.Matches(msg, m.keys.ToggleLabels):
			m.showLabels = !m.showLabels
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	return m, nil
}

// handleMouse turns terminal mouse events into drag sessions. A press on a
// handle engages it, motion drags it and release ends the session.
func (m RootModel) handleMouse(msg tea.MouseMsg) RootModel {
	if m.tooNarrow || m.width == 0 {
		return m
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y != trackRow {
			return m
		}
		h, ok := m.track.HitTest(msg.X - m.trackMargin)
		if !ok {
			return m
		}
		m.drag.begin(h)
		m.track.SetActive(h, true)

	case tea.MouseActionMotion:
		if !m.drag.dragging() {
			return m
		}
		accepted := m.slider.Drag(m.drag.handle, pointerX(m.drag.handle, msg.X))
		m.drag.record(accepted)

	case tea.MouseActionRelease:
		if !m.drag.dragging() {
			return m
		}
		m.track.SetActive(m.drag.handle, false)
		m.drag.end()
	}
	return m
}

// pointerX converts a cell column to the slider's pointer coordinate. The
// start handle's left edge and the end handle's right edge follow the cell
// under the cursor.
func pointerX(h slider.Handle, col int) float64 {
	if h == slider.HandleEnd {
		return float64(col + 1)
	}
	return float64(col)
}
