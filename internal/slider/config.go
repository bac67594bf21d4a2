package slider

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidMaxValue    = errors.New("max value must be positive")
	ErrInvalidHandleWidth = errors.New("handle width must not be negative")
	ErrRangeOutOfBounds   = errors.New("range out of bounds")
)

const (
	DefaultMaxValue    = 100
	DefaultHandleWidth = 2
)

// Range is the payload delivered to OnChange.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Config holds the per-widget options. It is treated as immutable once the
// slider is created.
type Config struct {
	MaxValue       float64
	ShowLeftHandle bool
	ShowPopover    bool
	StartLabel     string
	EndLabel       string
	HandleWidth    float64

	// OnChange is optional; it fires once per accepted drag update.
	OnChange func(Range)
}

// DefaultConfig returns the widget defaults: a single end handle over [0, 100].
func DefaultConfig() Config {
	return Config{
		MaxValue:    DefaultMaxValue,
		ShowPopover: true,
		HandleWidth: DefaultHandleWidth,
	}
}

// HandleCount is 2 when the start handle is shown, 1 otherwise.
func (c Config) HandleCount() int {
	if c.ShowLeftHandle {
		return 2
	}
	return 1
}

// EffectiveHandleWidth is the width reserved for handles when checking the
// end handle against the start handle.
func (c Config) EffectiveHandleWidth() float64 {
	return c.HandleWidth * float64(c.HandleCount())
}

// Validate checks the caller preconditions that can be checked without a layout.
func (c Config) Validate() error {
	if c.MaxValue <= 0 {
		return fmt.Errorf("config: %w (got %v)", ErrInvalidMaxValue, c.MaxValue)
	}
	if c.HandleWidth < 0 {
		return fmt.Errorf("config: %w (got %v)", ErrInvalidHandleWidth, c.HandleWidth)
	}
	return nil
}

// MaxEnd is the largest integer end value, floor(MaxValue).
func (c Config) MaxEnd() int {
	return int(math.Floor(c.MaxValue))
}

// MinTrackWidth is the smallest track that leaves room to drag.
func (c Config) MinTrackWidth() float64 {
	return c.EffectiveHandleWidth()
}

func (c Config) notify(r Range) {
	if c.OnChange != nil {
		c.OnChange(r)
	}
}
