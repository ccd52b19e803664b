package noiselines

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestAlpha(t *testing.T) {
	tests := []struct {
		n, want float64
	}{
		{-1, 0},
		{0, 0.5},
		{1, 1},
		{0.5, 0.75},
		{-3, 0},
		{3, 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := Alpha(tt.n); !approx(got, tt.want) {
			t.Errorf("Alpha(%v) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestAlphaMonotonic(t *testing.T) {
	prev := Alpha(-1)
	for i := 1; i <= 2000; i++ {
		n := -1 + float64(i)/1000
		a := Alpha(n)
		if a < prev {
			t.Fatalf("Alpha(%v) = %v < Alpha of previous sample %v", n, a, prev)
		}
		prev = a
	}
}

func TestShadeZeroNoise(t *testing.T) {
	got := Shade(0)
	want := RGBA{R: 1, G: 0.25, B: 0.25, A: 0.125}
	if !approx(got.R, want.R) || !approx(got.G, want.G) || !approx(got.B, want.B) || !approx(got.A, want.A) {
		t.Errorf("Shade(0) = %+v, want %+v", got, want)
	}
}

func TestShadeChannels(t *testing.T) {
	for i := -150; i <= 150; i++ {
		n := float64(i) / 100
		c := Shade(n)
		a := Alpha(n)
		if c.R != 1 {
			t.Fatalf("Shade(%v).R = %v, want 1", n, c.R)
		}
		if !approx(c.G, a*a) || !approx(c.B, a*a) {
			t.Fatalf("Shade(%v) green/blue = %v/%v, want %v", n, c.G, c.B, a*a)
		}
		if !approx(c.A, a*a*a) {
			t.Fatalf("Shade(%v).A = %v, want %v", n, c.A, a*a*a)
		}
		for _, v := range []float64{c.G, c.B, c.A} {
			if v < 0 || v > 1 {
				t.Fatalf("Shade(%v) channel %v outside [0, 1]", n, v)
			}
		}
	}
}

func TestBlack(t *testing.T) {
	if got := Black(0.1); got != (RGBA{A: 0.1}) {
		t.Errorf("Black(0.1) = %+v", got)
	}
}
