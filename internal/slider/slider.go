// Package slider implements the geometry behind a dual-handle range slider:
// calibrating a track against its measured width and turning pointer
// positions into non-crossing handle offsets and an integer value range.
//
// The package has no rendering dependency. Visual write-back goes through
// ViewUpdater and value changes through Config.OnChange.
package slider

import (
	"fmt"

	"github.com/rangepick/rangepick/internal/utils"
)

// Handle identifies one end of the range.
type Handle int

const (
	HandleStart Handle = iota
	HandleEnd
)

func (h Handle) String() string {
	switch h {
	case HandleStart:
		return "start"
	case HandleEnd:
		return "end"
	default:
		return fmt.Sprintf("Handle(%d)", int(h))
	}
}

// ParseHandle accepts "start"/"left" and "end"/"right".
func ParseHandle(s string) (Handle, error) {
	switch s {
	case "start", "left":
		return HandleStart, nil
	case "end", "right":
		return HandleEnd, nil
	}
	return 0, fmt.Errorf("unknown handle %q", s)
}

// ViewUpdater receives offsets after every layout and accepted drag. The
// implementation decides how to repaint.
type ViewUpdater interface {
	ApplyOffsets(Offsets)
}

// Slider owns the state of one widget instance. It is not safe for
// concurrent use; a single event loop is expected to drive it.
type Slider struct {
	cfg   Config
	view  ViewUpdater
	ctx   *ScaleContext
	state State
}

// New validates cfg and returns a slider at [0, max]. view may be nil.
func New(cfg Config, view ViewUpdater) (*Slider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Slider{
		cfg:   cfg,
		view:  view,
		state: InitialState(cfg),
	}, nil
}

// Config returns the configuration the slider was built with.
func (s *Slider) Config() Config { return s.cfg }

// State returns a copy of the current state.
func (s *Slider) State() State { return s.state }

// Range returns the current [start, end].
func (s *Slider) Range() Range { return s.state.Range() }

// ScaleContext returns the current layout snapshot, if any.
func (s *Slider) ScaleContext() (ScaleContext, bool) {
	if s.ctx == nil {
		return ScaleContext{}, false
	}
	return *s.ctx, true
}

// Offsets returns the offsets last written to the view.
func (s *Slider) Offsets() Offsets {
	return offsetsOf(s.state, s.cfg)
}

// Layout recalibrates for a new track width and re-derives the handle
// offsets for the current range. It does not fire OnChange.
func (s *Slider) Layout(trackWidth, screenWidth float64) {
	ctx := Calibrate(trackWidth, screenWidth, s.cfg)
	if !ctx.Usable() {
		utils.Debug("slider: track width %.1f too small for %d handle(s) of %.1f", trackWidth, s.cfg.HandleCount(), s.cfg.HandleWidth)
	}
	s.ctx = &ctx
	utils.Debug("slider: layout track=%.1f screen=%.1f scale=%.4f", trackWidth, screenWidth, ctx.Scale)
	s.resize(s.state.Start, s.state.End)
}

// SetRange moves both handles to represent r. Without a left handle the
// start is pinned to 0. Offsets are written immediately if the slider has
// been laid out, otherwise on the next Layout.
func (s *Slider) SetRange(r Range) error {
	if !s.cfg.ShowLeftHandle {
		r.Start = 0
	}
	if r.Start < 0 || r.End < r.Start || float64(r.End) > s.cfg.MaxValue {
		return fmt.Errorf("set range [%d, %d] with max %v: %w", r.Start, r.End, s.cfg.MaxValue, ErrRangeOutOfBounds)
	}
	if s.ctx == nil {
		s.state.Start, s.state.End = r.Start, r.End
		return nil
	}
	s.resize(r.Start, r.End)
	return nil
}

func (s *Slider) resize(start, end int) {
	left, right := PositionFor(start, end, *s.ctx, s.cfg)
	s.state = State{
		Start:       start,
		End:         end,
		LeftOffset:  left,
		RightOffset: right,
	}
	s.apply()
}

// Drag feeds one move event for handle h at window-space pointerX. It
// reports whether the update was accepted. Rejected drags leave the state
// untouched and do not notify.
func (s *Slider) Drag(h Handle, pointerX float64) bool {
	if s.ctx == nil {
		utils.Debug("slider: %s drag before layout ignored", h)
		return false
	}

	var (
		next State
		ok   bool
	)
	switch h {
	case HandleStart:
		if !s.cfg.ShowLeftHandle {
			return false
		}
		next, ok = ResolveStartDrag(pointerX, s.state, *s.ctx, s.cfg)
	case HandleEnd:
		next, ok = ResolveEndDrag(pointerX, s.state, *s.ctx, s.cfg)
	}
	if !ok {
		return false
	}

	s.state = next
	s.apply()
	s.cfg.notify(s.state.Range())
	return true
}

func (s *Slider) apply() {
	if s.view != nil {
		s.view.ApplyOffsets(offsetsOf(s.state, s.cfg))
	}
}
