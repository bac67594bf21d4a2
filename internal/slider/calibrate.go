package slider

// ScaleContext is the layout snapshot the resolver works against. A new one
// replaces the old one on every layout event.
type ScaleContext struct {
	Scale        float64 // pixels per unit
	PaddingLeft  float64
	PaddingRight float64
	TrackWidth   float64
	ScreenWidth  float64
}

// Calibrate derives the scale and the window-to-track padding for a track of
// trackWidth centered in a screen of screenWidth.
//
// A track narrower than the handles yields a zero or negative scale; callers
// are expected to supply an adequate width.
func Calibrate(trackWidth, screenWidth float64, cfg Config) ScaleContext {
	padding := (screenWidth - trackWidth) / 2
	return ScaleContext{
		Scale:        (trackWidth - cfg.EffectiveHandleWidth()) / cfg.MaxValue,
		PaddingLeft:  padding,
		PaddingRight: padding,
		TrackWidth:   trackWidth,
		ScreenWidth:  screenWidth,
	}
}

// Usable reports whether the track leaves any room to drag.
func (c ScaleContext) Usable() bool {
	return c.Scale > 0
}

// Offsets describes where the handles and the fill segment sit, measured
// inward from the track edges.
type Offsets struct {
	Left      float64
	Right     float64
	FillLeft  float64
	FillRight float64
}

// PositionFor maps a value pair to pixel offsets. It is the formula used both
// at layout time and for SetRange.
func PositionFor(start, end int, ctx ScaleContext, cfg Config) (left, right float64) {
	if cfg.ShowLeftHandle {
		left = float64(start) * ctx.Scale
	}
	right = (cfg.MaxValue - float64(end)) * ctx.Scale
	return left, right
}

func offsetsOf(st State, cfg Config) Offsets {
	o := Offsets{
		Left:      st.LeftOffset,
		Right:     st.RightOffset,
		FillRight: st.RightOffset + cfg.HandleWidth,
	}
	if cfg.ShowLeftHandle {
		o.FillLeft = st.LeftOffset + cfg.HandleWidth
	}
	return o
}
