// Package noise provides the 3D noise sources that colour and displace the
// sketch's lines.
//
// Every source implements [Source]. Values are approximately in [-1, 1],
// smooth in all three inputs, and deterministic for the lifetime of the
// source: sampling the same coordinates twice returns the same value.
package noise

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownSource is returned by Parse for a name it does not recognise.
var ErrUnknownSource = errors.New("noise: unknown source")

// Source samples a 3D noise field. The third coordinate is used as time.
type Source interface {
	Sample(x, y, t float64) float64
}

// Func adapts an ordinary function to a Source.
type Func func(x, y, t float64) float64

// Sample calls f(x, y, t).
func (f Func) Sample(x, y, t float64) float64 { return f(x, y, t) }

// Constant is a Source that ignores its input.
type Constant float64

// Sample returns c.
func (c Constant) Sample(_, _, _ float64) float64 { return float64(c) }

// scaled multiplies the output of another source.
type scaled struct {
	src Source
	k   float64
}

// Scaled returns a Source whose samples are src's samples multiplied by k.
func Scaled(src Source, k float64) Source {
	return scaled{src: src, k: k}
}

func (s scaled) Sample(x, y, t float64) float64 { return s.src.Sample(x, y, t) * s.k }

// Names lists the source names accepted by Parse.
func Names() []string {
	return []string{"perlin", "simplex"}
}

// Parse resolves a source by name. Matching is case-insensitive.
// A zero seed is replaced by a clock-derived seed, see [Seed].
func Parse(name string, seed int64) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "perlin", "":
		return NewPerlin(seed), nil
	case "simplex", "opensimplex":
		return NewSimplex(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownSource, name, strings.Join(Names(), ", "))
	}
}

// Seed returns seed unchanged unless it is zero, in which case a seed is
// derived from the wall clock. The result is never zero.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	s := time.Now().UnixNano()
	if s == 0 {
		s = 1
	}
	return s
}
