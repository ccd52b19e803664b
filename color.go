package noiselines

import "math"

// RGBA is a non-premultiplied colour with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Black with the given opacity.
func Black(a float64) RGBA {
	return RGBA{A: a}
}

// Shade maps a noise sample to a line colour.
//
// The sample is mapped linearly from [-1, 1] to alpha in [0, 1] and clamped.
// Red is always full, green and blue are alpha² and opacity is alpha³, so
// colour and opacity concentrate near the top of the noise range.
func Shade(n float64) RGBA {
	a := Alpha(n)
	a2 := a * a
	return RGBA{R: 1, G: a2, B: a2, A: a2 * a}
}

// Alpha maps n from [-1, 1] to [0, 1]. Values outside the range are clamped
// and NaN maps to 0.
func Alpha(n float64) float64 {
	return clamp01((n + 1) / 2)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
