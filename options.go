package noiselines

import "math"

// Option configures a Model during creation.
//
// Example:
//
//	// Reference sketch
//	m := noiselines.NewModel(src)
//
//	// Denser, slower variant with the wave animation switched on
//	m := noiselines.NewModel(src,
//	    noiselines.WithLineCount(33),
//	    noiselines.WithSpacing(16),
//	    noiselines.WithStep(0.004),
//	    noiselines.WithWave(),
//	)
type Option func(*options)

type options struct {
	lines       int
	spacing     float64
	halfWidth   float64
	step        float64
	strokeWidth float64
	fade        float64
	transform   Transform
	wave        bool
}

// Reference configuration.
const (
	DefaultLineCount = 17
	DefaultSpacing   = 32
	DefaultHalfWidth = 800
	DefaultStep      = 0.009
	DefaultFade      = 0.1
)

func defaultOptions() options {
	return options{
		lines:       DefaultLineCount,
		spacing:     DefaultSpacing,
		halfWidth:   DefaultHalfWidth,
		step:        DefaultStep,
		strokeWidth: DefaultStrokeWidth,
		fade:        DefaultFade,
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// WithLineCount sets how many lines are stacked around y = 0.
// Negative values are ignored.
func WithLineCount(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.lines = n
		}
	}
}

// WithSpacing sets the vertical distance between neighbouring lines.
func WithSpacing(s float64) Option {
	return func(o *options) {
		if finite(s) {
			o.spacing = s
		}
	}
}

// WithHalfWidth sets the half-width every line is built from.
func WithHalfWidth(w float64) Option {
	return func(o *options) {
		if finite(w) {
			o.halfWidth = w
		}
	}
}

// WithStep sets how far the offset advances per tick. Negative or
// non-finite steps are ignored so the offset never runs backwards.
func WithStep(d float64) Option {
	return func(o *options) {
		if finite(d) && d >= 0 {
			o.step = d
		}
	}
}

// WithStrokeWidth sets the polyline width.
func WithStrokeWidth(w float64) Option {
	return func(o *options) {
		if finite(w) && w > 0 {
			o.strokeWidth = w
		}
	}
}

// WithFade sets the opacity of the black rectangle laid over the previous
// frame. 1 clears completely, 0 keeps every trail forever.
func WithFade(a float64) Option {
	return func(o *options) {
		if finite(a) {
			o.fade = clamp01(a)
		}
	}
}

// WithTransform installs a rule that rewrites every line's heights once per
// tick, before the offset advances. Without it lines keep their base heights.
func WithTransform(fn Transform) Option {
	return func(o *options) {
		o.transform = fn
		o.wave = false
	}
}

// WithWave installs [WaveTransform] bound to the model's own offset.
func WithWave() Option {
	return func(o *options) {
		o.transform = nil
		o.wave = true
	}
}
