package noiselines

import (
	"math"

	"github.com/gogpu/noiselines/noise"
)

// Model is the whole state of the sketch: the noise field, the lines and
// the time offset. Only the frame loop that owns a Model may touch it.
type Model struct {
	// Offset is the animation time. It only ever grows.
	Offset float64

	noise     noise.Source
	lines     []*Line
	step      float64
	fade      float64
	transform Transform
	ticks     uint64
	scratch   []Vertex
}

// NewModel builds the line set around y = 0 with offset 0.
// A nil src is replaced by Perlin noise with a clock-derived seed.
func NewModel(src noise.Source, opts ...Option) *Model {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if src == nil {
		src = noise.NewPerlin(0)
	}

	m := &Model{
		noise: src,
		step:  o.step,
		fade:  o.fade,
	}
	m.transform = o.transform
	if o.wave {
		m.transform = WaveTransform(func() float64 { return m.Offset })
	}

	m.lines = make([]*Line, 0, o.lines)
	first := -(o.lines / 2)
	for i := range o.lines {
		l := NewLine(float64(first+i)*o.spacing, o.halfWidth)
		l.stroke.Width = o.strokeWidth
		m.lines = append(m.lines, l)
	}

	Logger().Debug("noiselines: model created",
		"lines", len(m.lines), "step", m.step, "fade", m.fade, "animated", m.transform != nil)
	return m
}

// Lines returns the model's lines. The slice is shared with the model.
func (m *Model) Lines() []*Line { return m.lines }

// Noise returns the model's noise source.
func (m *Model) Noise() noise.Source { return m.noise }

// Step returns the per-tick offset increment.
func (m *Model) Step() float64 { return m.step }

// Ticks returns how many times Update has run.
func (m *Model) Ticks() uint64 { return m.ticks }

// Update applies the animation rule, if any, and then advances the offset
// by one step. The rule sees the offset of the frame that just ended.
func (m *Model) Update() {
	m.ticks++
	if m.transform != nil {
		for _, l := range m.lines {
			l.Update(m.transform)
		}
	}
	m.Offset += m.step
}

// View draws one frame: a translucent black rectangle over the whole
// surface, then every line at the current offset.
func (m *Model) View(c Canvas) {
	w, h := c.Size()
	if m.fade > 0 {
		c.FillRect(-w/2, -h/2, w, h, Black(m.fade))
	}
	for _, l := range m.lines {
		m.scratch = l.draw(c, m.noise, m.Offset, m.scratch)
	}
}

// Tick runs Update followed by View.
func (m *Model) Tick(c Canvas) {
	m.Update()
	m.View(c)
}

// WaveTransform returns the animation rule the sketch ships with but does
// not enable by default: every height gains sin(x + offset), read from
// offset at call time.
func WaveTransform(offset func() float64) Transform {
	return func(x, y float64) float64 {
		return y + math.Sin(x+offset())
	}
}
