package color

import "image/color"

// WithAlpha returns c with its alpha replaced by a in [0, 1].
// RGB components are kept straight (not premultiplied).
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = clampAndRound(a)
	return c
}

// Alpha returns the alpha of c in [0, 1].
func Alpha(c color.NRGBA) float64 {
	return float64(c.A) / 255.0
}

// clampAndRound clamps a float64 to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
