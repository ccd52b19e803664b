// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/noiselines"
	"github.com/lucasb-eyer/go-colorful"
	"honnef.co/go/curve"
)

// halfBlock draws the top half of a cell in the foreground colour.
const halfBlock = '▀'

// Canvas rasterises sketch commands into a pixel grid two pixels taller
// than the terminal is rows.
type Canvas struct {
	// virtual sketch surface
	vw, vh float64

	cols, rows int
	pw, ph     int
	pix        []colorful.Color
	toPixel    curve.Affine
}

// NewCanvas returns a canvas presenting a vw×vh sketch surface on a
// cols×rows terminal.
func NewCanvas(vw, vh float64, cols, rows int) *Canvas {
	c := &Canvas{vw: vw, vh: vh}
	c.Resize(cols, rows)
	return c
}

// Resize adapts the pixel grid to a new terminal size and clears it.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.pw, c.ph = c.cols, c.rows*2
	c.pix = make([]colorful.Color, c.pw*c.ph)

	s := 0.0
	if c.vw > 0 && c.vh > 0 {
		s = math.Min(float64(c.pw)/c.vw, float64(c.ph)/c.vh)
	}
	c.toPixel = curve.Scale(s, -s).ThenTranslate(curve.Vec(float64(c.pw)/2, float64(c.ph)/2))
}

// Pixels returns the pixel grid size.
func (c *Canvas) Pixels() (w, h int) { return c.pw, c.ph }

// At returns the colour of pixel (x, y). Out-of-range pixels are black.
func (c *Canvas) At(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= c.pw || y >= c.ph {
		return colorful.Color{}
	}
	return c.pix[y*c.pw+x]
}

// Pixel maps a sketch-space point to (unrounded) pixel coordinates.
func (c *Canvas) Pixel(p noiselines.Point) (x, y float64) {
	return curve.Pt(p.X, p.Y).Transform(c.toPixel).Splat()
}

// Size implements noiselines.Canvas.
func (c *Canvas) Size() (w, h float64) { return c.vw, c.vh }

// FillRect implements noiselines.Canvas.
func (c *Canvas) FillRect(x, y, w, h float64, col noiselines.RGBA) {
	r := c.toPixel.TransformRectBoundingBox(curve.Rect{X0: x, Y0: y, X1: x + w, Y1: y + h})
	x0, y0 := max(int(math.Floor(r.X0)), 0), max(int(math.Floor(r.Y0)), 0)
	x1, y1 := min(int(math.Ceil(r.X1)), c.pw), min(int(math.Ceil(r.Y1)), c.ph)
	src := colorful.Color{R: col.R, G: col.G, B: col.B}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.blend(px, py, src, col.A)
		}
	}
}

// Polyline implements noiselines.Canvas. Segments are walked one pixel
// at a time with colour and opacity interpolated between their vertices.
// The stroke width is ignored; terminal pixels are already wider than it.
func (c *Canvas) Polyline(vs []noiselines.Vertex, _ noiselines.Stroke) {
	if len(vs) < 2 {
		return
	}
	for i := 1; i < len(vs); i++ {
		a, b := vs[i-1], vs[i]
		ax, ay := c.Pixel(a.Point)
		bx, by := c.Pixel(b.Point)
		ca := colorful.Color{R: a.Color.R, G: a.Color.G, B: a.Color.B}
		cb := colorful.Color{R: b.Color.R, G: b.Color.G, B: b.Color.B}

		steps := int(math.Ceil(math.Max(math.Abs(bx-ax), math.Abs(by-ay))))
		// Skip the start pixel after the first segment so shared
		// vertices are not blended twice.
		k0 := 1
		if i == 1 {
			k0 = 0
		}
		if steps == 0 {
			if i == 1 {
				c.blend(int(math.Floor(ax)), int(math.Floor(ay)), ca, a.Color.A)
			}
			continue
		}
		for k := k0; k <= steps; k++ {
			t := float64(k) / float64(steps)
			x := ax + (bx-ax)*t
			y := ay + (by-ay)*t
			alpha := a.Color.A + (b.Color.A-a.Color.A)*t
			c.blend(int(math.Floor(x)), int(math.Floor(y)), ca.BlendRgb(cb, t), alpha)
		}
	}
}

func (c *Canvas) blend(x, y int, src colorful.Color, alpha float64) {
	if x < 0 || y < 0 || x >= c.pw || y >= c.ph || alpha <= 0 {
		return
	}
	i := y*c.pw + x
	c.pix[i] = c.pix[i].BlendRgb(src, math.Min(alpha, 1)).Clamped()
}

// Flush copies the pixel grid to screen and shows it.
func (c *Canvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.pix[(2*row)*c.pw+col]
			bottom := c.pix[(2*row+1)*c.pw+col]
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	screen.Show()
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
