// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/noiselines"
	"honnef.co/go/curve"
)

// DefaultTolerance is the largest per-channel colour difference allowed
// inside one stroked run of segments.
const DefaultTolerance = 1.0 / 64

// Canvas adapts a gg.Context to noiselines.Canvas.
type Canvas struct {
	dc        *gg.Context
	toDevice  curve.Affine
	tolerance float64
	strokes   int
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithTolerance sets the colour tolerance used to merge neighbouring
// segments into one stroke. 0 strokes every segment on its own.
func WithTolerance(tol float64) Option {
	return func(c *Canvas) {
		if tol >= 0 && !math.IsNaN(tol) {
			c.tolerance = tol
		}
	}
}

// New wraps dc. The sketch origin is placed at the centre of dc.
func New(dc *gg.Context, opts ...Option) *Canvas {
	c := &Canvas{dc: dc, tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(c)
	}
	c.Reset(dc)
	return c
}

// Reset points the Canvas at dc, recomputing the device transform. Call it
// after the underlying context is resized or replaced.
func (c *Canvas) Reset(dc *gg.Context) {
	c.dc = dc
	w, h := float64(dc.Width()), float64(dc.Height())
	c.toDevice = curve.FlipY.ThenTranslate(curve.Vec(w/2, h/2))
}

// Context returns the wrapped context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Strokes returns the number of stroke calls issued since the last call,
// and resets the counter.
func (c *Canvas) Strokes() int {
	n := c.strokes
	c.strokes = 0
	return n
}

// Device maps a sketch-space point to device coordinates.
func (c *Canvas) Device(p noiselines.Point) (x, y float64) {
	return curve.Pt(p.X, p.Y).Transform(c.toDevice).Splat()
}

// Size implements noiselines.Canvas.
func (c *Canvas) Size() (w, h float64) {
	return float64(c.dc.Width()), float64(c.dc.Height())
}

// FillRect implements noiselines.Canvas.
func (c *Canvas) FillRect(x, y, w, h float64, col noiselines.RGBA) {
	r := c.toDevice.TransformRectBoundingBox(curve.Rect{X0: x, Y0: y, X1: x + w, Y1: y + h})
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.DrawRectangle(r.X0, r.Y0, r.X1-r.X0, r.Y1-r.Y0)
	if err := c.dc.Fill(); err != nil {
		noiselines.Logger().Debug("render: fill failed", "err", err)
	}
}

// Polyline implements noiselines.Canvas.
//
// Consecutive segments are merged while their vertex colours stay within the
// tolerance of the run's first vertex. Each run is stroked once with a
// linear gradient from its first to its last vertex colour. Runs meet with
// butt caps so translucent colours are not painted twice where they touch;
// only a polyline drawn as a single run gets round caps.
func (c *Canvas) Polyline(vs []noiselines.Vertex, s noiselines.Stroke) {
	if len(vs) < 2 {
		return
	}
	c.dc.SetLineWidth(s.Width)
	c.dc.SetLineJoin(lineJoin(s.Join))

	start := 0
	for i := 1; i < len(vs); i++ {
		last := i == len(vs)-1
		if !last && near(vs[start].Color, vs[i+1].Color, c.tolerance) {
			continue
		}
		c.dc.SetLineCap(lineCap(s.Join, start == 0 && last))
		c.strokeRun(vs[start : i+1])
		start = i
	}
}

// lineCap picks the cap for one run. whole reports whether the run spans
// the entire polyline, so neither end touches another run.
func lineCap(j noiselines.Join, whole bool) gg.LineCap {
	if whole && j == noiselines.JoinRound {
		return gg.LineCapRound
	}
	return gg.LineCapButt
}

// strokeRun strokes run as one path. run has at least two vertices.
func (c *Canvas) strokeRun(run []noiselines.Vertex) {
	first, last := run[0], run[len(run)-1]
	x0, y0 := c.Device(first.Point)
	x1, y1 := c.Device(last.Point)

	if first.Color == last.Color {
		c.dc.SetRGBA(first.Color.R, first.Color.G, first.Color.B, first.Color.A)
	} else {
		c.dc.SetStrokeBrush(gg.NewLinearGradientBrush(x0, y0, x1, y1).
			AddColorStop(0, toGG(first.Color)).
			AddColorStop(1, toGG(last.Color)))
	}

	c.dc.MoveTo(x0, y0)
	for _, v := range run[1:] {
		c.dc.LineTo(c.Device(v.Point))
	}
	c.strokes++
	if err := c.dc.Stroke(); err != nil {
		noiselines.Logger().Debug("render: stroke failed", "err", err)
	}
}

func near(a, b noiselines.RGBA, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol &&
		math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol &&
		math.Abs(a.A-b.A) <= tol
}

func toGG(c noiselines.RGBA) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func lineJoin(j noiselines.Join) gg.LineJoin {
	switch j {
	case noiselines.JoinMiter:
		return gg.LineJoinMiter
	case noiselines.JoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinRound
	}
}
