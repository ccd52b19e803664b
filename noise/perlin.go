package noise

import "github.com/aquilax/go-perlin"

// Perlin parameters. One octave reproduces plain gradient noise; alpha and
// beta only matter once more octaves are summed.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 1
)

// Perlin is classic 3D Perlin gradient noise.
type Perlin struct {
	p    *perlin.Perlin
	seed int64
}

// NewPerlin creates a Perlin source. A zero seed picks one from the clock.
func NewPerlin(seed int64) *Perlin {
	seed = Seed(seed)
	return &Perlin{
		p:    perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
		seed: seed,
	}
}

// Sample implements Source.
func (p *Perlin) Sample(x, y, t float64) float64 {
	return p.p.Noise3D(x, y, t)
}

// Seed returns the seed the permutation table was built from.
func (p *Perlin) Seed() int64 { return p.seed }

// String implements fmt.Stringer.
func (p *Perlin) String() string { return "perlin" }
