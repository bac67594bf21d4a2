package tui

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rangepick/rangepick/internal/config"
	"github.com/rangepick/rangepick/internal/slider"
)

var ansiEscapeRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func init() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}

func plain(s string) string {
	return ansiEscapeRE.ReplaceAllString(s, "")
}

func newModel(t *testing.T, mutate func(*config.Settings)) RootModel {
	t.Helper()
	s := config.DefaultSettings()
	if mutate != nil {
		mutate(s)
	}
	m, err := InitialRootModel(s, nil)
	require.NoError(t, err)
	return m
}

func send(t *testing.T, m RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	rm, ok := next.(RootModel)
	require.True(t, ok)
	return rm, cmd
}

func resize(t *testing.T, m RootModel, w, h int) RootModel {
	t.Helper()
	m, _ = send(t, m, tea.WindowSizeMsg{Width: w, Height: h})
	return m
}

func press(t *testing.T, m RootModel, x int) RootModel {
	t.Helper()
	m, _ = send(t, m, tea.MouseMsg{X: x, Y: trackRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return m
}

func move(t *testing.T, m RootModel, x int) RootModel {
	t.Helper()
	m, _ = send(t, m, tea.MouseMsg{X: x, Y: trackRow, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	return m
}

func release(t *testing.T, m RootModel, x int) RootModel {
	t.Helper()
	m, _ = send(t, m, tea.MouseMsg{X: x, Y: trackRow, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	return m
}

func keyPress(t *testing.T, m RootModel, k string) (RootModel, tea.Cmd) {
	t.Helper()
	return send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

func dualSettings(s *config.Settings) {
	s.Slider.ShowLeftHandle = true
	s.Slider.MaxValue = 10
	s.Slider.StartLabel = "from"
	s.Slider.EndLabel = "to"
}

func TestInitialRootModel_InvalidSettings(t *testing.T) {
	s := config.DefaultSettings()
	s.Slider.MaxValue = -1
	_, err := InitialRootModel(s, nil)
	assert.ErrorIs(t, err, slider.ErrInvalidMaxValue)

	_, err = InitialRootModel(config.DefaultSettings(), &slider.Range{Start: 0, End: 500})
	assert.ErrorIs(t, err, slider.ErrRangeOutOfBounds)
}

func TestInitialRootModel_HandleWidthCells(t *testing.T) {
	for _, hw := range []float64{0, 0.5, 1.5, 2.25} {
		s := config.DefaultSettings()
		s.Slider.HandleWidth = hw
		_, err := InitialRootModel(s, nil)
		assert.ErrorIs(t, err, ErrHandleWidth, "handle width %v", hw)
	}

	s := config.DefaultSettings()
	s.Slider.HandleWidth = 3
	m, err := InitialRootModel(s, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, m.track.HandleWidth)
}

func TestResetWithFractionalMax(t *testing.T) {
	m := newModel(t, func(s *config.Settings) {
		s.Slider.MaxValue = 10.5
	})
	assert.Equal(t, slider.Range{Start: 0, End: 10}, m.Range())

	// track 72, scale 70/10.5, end handle covers cells 67-68
	m = resize(t, m, 80, 24)
	m = press(t, m, 72)
	require.True(t, m.drag.dragging())
	m = move(t, m, 40)
	m = release(t, m, 40)
	require.Equal(t, slider.Range{Start: 0, End: 5}, m.Range())

	m, _ = keyPress(t, m, "r")
	assert.Equal(t, slider.Range{Start: 0, End: 10}, m.Range())
	assert.Equal(t, "range reset", m.status)
}

func TestInitialRootModel_InitialRange(t *testing.T) {
	m, err := InitialRootModel(config.DefaultSettings(), &slider.Range{End: 40})
	require.NoError(t, err)
	m = resize(t, m, 80, 24)

	assert.Equal(t, slider.Range{Start: 0, End: 40}, m.Range())
	// track 72, scale 0.7, (100-40)*0.7
	assert.InDelta(t, 42, m.track.Offsets().Right, 1e-9)
}

func TestDragEndHandle(t *testing.T) {
	m := resize(t, newModel(t, nil), 80, 24) // track 72, scale 0.7

	m = press(t, m, 75)
	require.True(t, m.drag.dragging())
	assert.Equal(t, slider.HandleEnd, m.drag.handle)

	m = move(t, m, 40)
	assert.Equal(t, slider.Range{Start: 0, End: 50}, m.Range())
	assert.Equal(t, 1, m.Changes())

	m = release(t, m, 40)
	assert.False(t, m.drag.dragging())

	// Motion without an engaged handle does nothing.
	m = move(t, m, 20)
	assert.Equal(t, slider.Range{Start: 0, End: 50}, m.Range())
	assert.Equal(t, 1, m.Changes())
}

func TestPressOffHandleDoesNotEngage(t *testing.T) {
	m := resize(t, newModel(t, nil), 80, 24)

	m = press(t, m, 10)
	assert.False(t, m.drag.dragging())

	m, _ = send(t, m, tea.MouseMsg{X: 75, Y: trackRow + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.drag.dragging(), "press below the track row")

	m, _ = send(t, m, tea.MouseMsg{X: 75, Y: trackRow, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.False(t, m.drag.dragging(), "right button")
}

func TestDualHandlesDoNotCross(t *testing.T) {
	m := resize(t, newModel(t, dualSettings), 80, 24) // track 72, scale 6.8

	m = press(t, m, 4)
	require.Equal(t, slider.HandleStart, m.drag.handle)
	m = move(t, m, 38)
	assert.Equal(t, slider.Range{Start: 5, End: 10}, m.Range())

	m = move(t, m, 75)
	assert.Equal(t, slider.Range{Start: 5, End: 10}, m.Range(), "start cannot pass the end handle")
	m = release(t, m, 75)

	m = press(t, m, 74)
	require.Equal(t, slider.HandleEnd, m.drag.handle)
	m = move(t, m, 36)
	assert.Equal(t, slider.Range{Start: 5, End: 10}, m.Range(), "end cannot pass the start handle")
	assert.Equal(t, 1, m.Changes())
	assert.Equal(t, 1, m.drag.moves)
	assert.Equal(t, 0, m.drag.accepted)
}

func TestPopoverShownWhileDragging(t *testing.T) {
	m := resize(t, newModel(t, dualSettings), 80, 24)

	assert.NotContains(t, plain(m.View()), "from")

	m = press(t, m, 4)
	m = move(t, m, 38)
	view := plain(m.View())
	assert.Contains(t, view, "from 5")

	m, _ = keyPress(t, m, "p")
	assert.NotContains(t, plain(m.View()), "from 5", "labels toggled off")
	m, _ = keyPress(t, m, "p")

	m = release(t, m, 38)
	assert.NotContains(t, plain(m.View()), "from 5")
}

func TestResizeKeepsRange(t *testing.T) {
	m := resize(t, newModel(t, nil), 80, 24)
	m = press(t, m, 75)
	m = move(t, m, 40)
	m = release(t, m, 40)
	require.Equal(t, 50, m.Range().End)

	m = resize(t, m, 120, 30) // track 112, scale 1.1
	assert.Equal(t, slider.Range{Start: 0, End: 50}, m.Range())
	assert.InDelta(t, 55, m.track.Offsets().Right, 1e-9)
	assert.Equal(t, 1, m.Changes(), "layout does not notify")
}

func TestTooNarrow(t *testing.T) {
	m := resize(t, newModel(t, nil), 8, 24)
	assert.Contains(t, plain(m.View()), "too narrow")

	m = press(t, m, 4)
	assert.False(t, m.drag.dragging())
}

func TestView_TrackOnTrackRow(t *testing.T) {
	m := resize(t, newModel(t, dualSettings), 80, 24)

	lines := strings.Split(plain(m.View()), "\n")
	require.Greater(t, len(lines), trackRow+1)
	assert.True(t, strings.HasPrefix(lines[0], "rangepick"))
	assert.Equal(t, "    ██", lines[trackRow][:4+2*len("█")])
	assert.Equal(t, 4, strings.Count(lines[trackRow], "█"))
	assert.Contains(t, lines[trackRow+1], "10")
	assert.LessOrEqual(t, len(lines), 24)
}

func TestKeys(t *testing.T) {
	t.Run("reset", func(t *testing.T) {
		m := resize(t, newModel(t, nil), 80, 24)
		m = press(t, m, 75)
		m = move(t, m, 40)
		m = release(t, m, 40)

		m, cmd := keyPress(t, m, "r")
		assert.NotNil(t, cmd)
		assert.Equal(t, slider.Range{Start: 0, End: 100}, m.Range())
		assert.Zero(t, m.track.Offsets().Right)
		assert.Contains(t, plain(m.View()), "range reset")

		m, _ = send(t, m, clearStatusMsg{})
		assert.NotContains(t, plain(m.View()), "range reset")
	})

	t.Run("copy", func(t *testing.T) {
		var copied string
		orig := clipboardWriteAll
		clipboardWriteAll = func(s string) error { copied = s; return nil }
		defer func() { clipboardWriteAll = orig }()

		m := resize(t, newModel(t, nil), 80, 24)
		m, _ = keyPress(t, m, "c")
		assert.Equal(t, "0-100", copied)
		assert.Contains(t, plain(m.View()), "copied 0-100")
	})

	t.Run("copy failure", func(t *testing.T) {
		orig := clipboardWriteAll
		clipboardWriteAll = func(string) error { return errors.New("no clipboard") }
		defer func() { clipboardWriteAll = orig }()

		m := resize(t, newModel(t, nil), 80, 24)
		m, _ = keyPress(t, m, "c")
		assert.Contains(t, plain(m.View()), "clipboard unavailable")
	})

	t.Run("quit", func(t *testing.T) {
		m := resize(t, newModel(t, nil), 80, 24)
		_, cmd := keyPress(t, m, "q")
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	})

	t.Run("help", func(t *testing.T) {
		m := resize(t, newModel(t, nil), 80, 24)
		m, _ = keyPress(t, m, "?")
		assert.True(t, m.help.ShowAll)
		assert.Contains(t, plain(m.View()), "toggle labels")
	})
}

func TestPointerX(t *testing.T) {
	assert.Equal(t, 10.0, pointerX(slider.HandleStart, 10))
	assert.Equal(t, 11.0, pointerX(slider.HandleEnd, 10))
}
