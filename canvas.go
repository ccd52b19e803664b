package noiselines

// Join is the shape drawn where two polyline segments meet.
type Join int

const (
	// JoinRound rounds the outside corner.
	JoinRound Join = iota
	// JoinMiter extends the outer edges until they meet.
	JoinMiter
	// JoinBevel cuts the corner off.
	JoinBevel
)

// String implements fmt.Stringer.
func (j Join) String() string {
	switch j {
	case JoinRound:
		return "round"
	case JoinMiter:
		return "miter"
	case JoinBevel:
		return "bevel"
	default:
		return "unknown"
	}
}

// Stroke describes how a polyline is outlined.
type Stroke struct {
	Width float64
	Join  Join
}

// Vertex is one polyline vertex with its own colour. Backends interpolate
// colour along each segment.
type Vertex struct {
	Point
	Color RGBA
}

// Canvas receives the draw commands of one frame in sketch space
// (origin at the centre, y up).
type Canvas interface {
	// Size reports the drawable width and height.
	Size() (w, h float64)

	// FillRect fills an axis-aligned rectangle whose lower-left corner is (x, y).
	FillRect(x, y, w, h float64, c RGBA)

	// Polyline strokes one connected polyline through vs. Fewer than two
	// vertices draw nothing.
	Polyline(vs []Vertex, s Stroke)
}
