package noise

import "github.com/ojrac/opensimplex-go"

// Simplex is OpenSimplex noise. It has fewer directional artifacts than
// Perlin noise at a similar cost.
type Simplex struct {
	n    opensimplex.Noise
	seed int64
}

// NewSimplex creates an OpenSimplex source. A zero seed picks one from the clock.
func NewSimplex(seed int64) *Simplex {
	seed = Seed(seed)
	return &Simplex{n: opensimplex.New(seed), seed: seed}
}

// Sample implements Source.
func (s *Simplex) Sample(x, y, t float64) float64 {
	return s.n.Eval3(x, y, t)
}

// Seed returns the seed the source was built from.
func (s *Simplex) Seed() int64 { return s.seed }

// String implements fmt.Stringer.
func (s *Simplex) String() string { return "simplex" }
