package slider

import "math"

// State is the single mutable record per widget.
type State struct {
	Start       int
	End         int
	LeftOffset  float64
	RightOffset float64
}

// InitialState is [0, max] with no offsets derived yet.
func InitialState(cfg Config) State {
	return State{Start: 0, End: cfg.MaxEnd()}
}

// Range returns the logical part of the state.
func (s State) Range() Range {
	return Range{Start: s.Start, End: s.End}
}

// ResolveStartDrag moves the start handle to the window-space pointerX.
// The drag is rejected, not clamped, when it would leave the track or meet
// the end handle.
func ResolveStartDrag(pointerX float64, st State, ctx ScaleContext, cfg Config) (State, bool) {
	left := pointerX - ctx.PaddingLeft
	if left < 0 {
		return st, false
	}
	if left+st.RightOffset+cfg.HandleWidth*2 >= ctx.TrackWidth {
		return st, false
	}

	st.Start = int(math.Round(left / ctx.Scale))
	st.LeftOffset = left
	return st, true
}

// ResolveEndDrag is the mirror of ResolveStartDrag, measured from the right
// edge of the track.
func ResolveEndDrag(pointerX float64, st State, ctx ScaleContext, cfg Config) (State, bool) {
	right := ctx.ScreenWidth - pointerX - ctx.PaddingRight
	if right < 0 {
		return st, false
	}
	hw := cfg.EffectiveHandleWidth()
	if st.LeftOffset+right+hw >= ctx.TrackWidth {
		return st, false
	}

	// A fractional max can round past floor(max) at the right edge.
	end := int(math.Round((pointerX - ctx.PaddingRight - hw) / ctx.Scale))
	if end > cfg.MaxEnd() {
		return st, false
	}

	st.End = end
	st.RightOffset = right
	return st, true
}
