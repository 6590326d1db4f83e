package gui

import "math"

const (
	scaleBaseWidth     = 480
	scaleNarrowWidth   = 360
	scaleWideWidth     = 700
	scaleMax           = 1.4
	scaleMin           = 1.0
	resizeWidthEpsilon = 50
	scaleEpsilon       = 0.05
)

// FontScale maps a window width to the factor applied to base font sizes.
// The middle band is capped at scaleMax as well.
func FontScale(width float32) float32 {
	ratio := float64(width) / scaleBaseWidth
	switch {
	case width < scaleNarrowWidth:
		return scaleMin
	case width > scaleWideWidth:
		return float32(math.Min(scaleMax, ratio))
	default:
		return float32(math.Min(scaleMax, math.Max(scaleMin, ratio)))
	}
}

// FontScaler tracks the current scale and applies hysteresis so continuous
// drag-resizing does not re-render on every pixel.
type FontScaler struct {
	scale     float32
	lastWidth float32
}

func NewFontScaler() *FontScaler {
	return &FontScaler{scale: scaleMin}
}

// Scale returns the current factor
func (s *FontScaler) Scale() float32 {
	return s.scale
}

// Update feeds a new window width. The scale is recomputed only once the
// width has moved more than 50 units since the last recompute, and changed
// reports whether the new scale differs from the previous one by more than 0.05.
func (s *FontScaler) Update(width float32) (scale float32, changed bool) {
	if abs32(width-s.lastWidth) <= resizeWidthEpsilon {
		return s.scale, false
	}

	s.lastWidth = width
	previous := s.scale
	s.scale = FontScale(width)
	return s.scale, abs32(s.scale-previous) > scaleEpsilon
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
