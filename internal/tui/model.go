package tui

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rangepick/rangepick/internal/config"
	"github.com/rangepick/rangepick/internal/slider"
	"github.com/rangepick/rangepick/internal/tui/components"
	"github.com/rangepick/rangepick/internal/utils"
)

// Rows above the track: title, blank, popover area.
const (
	headerRows = 2
	trackRow   = headerRows + components.PopoverHeight
)

// ErrHandleWidth is returned when the handle width cannot be drawn as whole
// terminal cells.
var ErrHandleWidth = errors.New("handle width must be a positive whole number of cells")

// changeLog is shared between the model copies Bubble Tea passes around and
// the slider's OnChange handler.
type changeLog struct {
	count int
}

type RootModel struct {
	slider  *slider.Slider
	track   *components.Track
	drag    *dragSession
	history *changeLog

	width       int
	height      int
	trackMargin int
	tooNarrow   bool
	showLabels  bool

	status string
	keys   KeyMap
	help   help.Model
}

// InitialRootModel builds the slider from settings. initial, when non-nil,
// is applied with SetRange before the first layout.
func InitialRootModel(settings *config.Settings, initial *slider.Range) (RootModel, error) {
	cfg := settings.ToSliderConfig()
	if cfg.HandleWidth < 1 || cfg.HandleWidth != math.Trunc(cfg.HandleWidth) {
		return RootModel{}, fmt.Errorf("tui: %w (got %v)", ErrHandleWidth, cfg.HandleWidth)
	}
	track := components.NewTrack(int(cfg.HandleWidth), cfg.ShowLeftHandle)
	history := &changeLog{}

	cfg.OnChange = func(slider.Range) {
		history.count++
	}

	s, err := slider.New(cfg, track)
	if err != nil {
		return RootModel{}, err
	}
	if initial != nil {
		if err := s.SetRange(*initial); err != nil {
			return RootModel{}, err
		}
	}

	margin := settings.Slider.TrackMargin
	if margin < 0 {
		margin = 0
	}

	return RootModel{
		slider:      s,
		track:       track,
		drag:        &dragSession{},
		history:     history,
		trackMargin: margin,
		showLabels:  cfg.ShowPopover,
		keys:        Keys,
		help:        help.New(),
	}, nil
}

func (m RootModel) Init() tea.Cmd {
	return nil
}

// Range returns the currently selected range.
func (m RootModel) Range() slider.Range {
	return m.slider.Range()
}

// Changes returns how many change notifications the slider has emitted.
func (m RootModel) Changes() int {
	return m.history.count
}

// layout recalibrates the slider for a terminal of the given width.
func (m *RootModel) layout(width int) {
	trackWidth := width - 2*m.trackMargin
	cfg := m.slider.Config()
	m.tooNarrow = float64(trackWidth) <= cfg.MinTrackWidth()
	if m.tooNarrow {
		m.drag.end()
		utils.Debug("tui: width %d leaves no room for the track", width)
		return
	}
	m.track.Resize(trackWidth)
	m.slider.Layout(float64(trackWidth), float64(width))
}

func (m RootModel) maxValue() int {
	return m.slider.Config().MaxEnd()
}
