package noiselines

import (
	"math"

	"github.com/gogpu/noiselines/noise"
)

const (
	// lineMargin is trimmed from both ends of every line.
	lineMargin = 50

	// sampleScale maps sketch units to noise-space units.
	sampleScale = 0.1

	// wavePeriod stretches the travelling sine wave along x.
	wavePeriod = 4

	// DefaultStrokeWidth is the polyline width in sketch units.
	DefaultStrokeWidth = 2
)

// Transform computes a new y for the point at (x, y).
type Transform func(x, y float64) float64

// Line is a horizontal run of points at one base height.
//
// Line is not safe for concurrent use.
type Line struct {
	points []Point
	base   float64
	stroke Stroke
}

// NewLine creates a line at baseHeight with one point per integer x in
// [-halfWidth+50, halfWidth-50). halfWidth is truncated towards zero first.
// A halfWidth of 50 or less, or a non-finite one, yields an empty line.
func NewLine(baseHeight, halfWidth float64) *Line {
	l := &Line{
		base:   baseHeight,
		stroke: Stroke{Width: DefaultStrokeWidth, Join: JoinRound},
	}
	if math.IsNaN(halfWidth) || math.IsInf(halfWidth, 0) {
		return l
	}
	w := int(math.Trunc(halfWidth))
	lo, hi := -w+lineMargin, w-lineMargin
	if hi <= lo {
		return l
	}
	l.points = make([]Point, 0, hi-lo)
	for i := lo; i < hi; i++ {
		l.points = append(l.points, Point{X: float64(i), Y: baseHeight})
	}
	return l
}

// Len returns the number of points.
func (l *Line) Len() int { return len(l.points) }

// BaseHeight returns the height the line was created at.
func (l *Line) BaseHeight() float64 { return l.base }

// Points returns a copy of the line's points.
func (l *Line) Points() []Point {
	out := make([]Point, len(l.points))
	copy(out, l.points)
	return out
}

// Stroke returns the stroke the line is drawn with.
func (l *Line) Stroke() Stroke { return l.stroke }

// Update replaces the y of every point with fn(x, y). A nil fn does nothing.
func (l *Line) Update(fn Transform) {
	if fn == nil {
		return
	}
	for i := range l.points {
		p := &l.points[i]
		p.Y = fn(p.X, p.Y)
	}
}

// Vertices computes the coloured vertices Draw would emit at offset.
// The line is not modified.
func (l *Line) Vertices(src noise.Source, offset float64) []Vertex {
	return l.AppendVertices(make([]Vertex, 0, len(l.points)), src, offset)
}

// AppendVertices appends the vertices for offset to dst and returns the
// extended slice.
//
// Each point samples the noise once. The sample sets the colour (see
// [Shade]) and is also added to the rendered height, on top of a sine wave
// that travels along x as the offset grows.
func (l *Line) AppendVertices(dst []Vertex, src noise.Source, offset float64) []Vertex {
	for _, p := range l.points {
		n := src.Sample(p.X*sampleScale, p.Y*sampleScale, offset)
		y := p.Y + math.Sin((p.X+offset)/wavePeriod) + n
		dst = append(dst, Vertex{Point: Point{X: p.X, Y: y}, Color: Shade(n)})
	}
	return dst
}

// Draw emits the line as a single polyline on c.
func (l *Line) Draw(c Canvas, src noise.Source, offset float64) {
	l.draw(c, src, offset, nil)
}

// draw reuses buf for the vertex slice and returns it for the next call.
// Canvas implementations must not retain the slice.
func (l *Line) draw(c Canvas, src noise.Source, offset float64, buf []Vertex) []Vertex {
	if len(l.points) == 0 {
		return buf
	}
	buf = l.AppendVertices(buf[:0], src, offset)
	c.Polyline(buf, l.stroke)
	return buf
}
