// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/noiselines"
	"github.com/gogpu/noiselines/noise"
	"github.com/lucasb-eyer/go-colorful"
)

func simScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func TestCanvasGeometry(t *testing.T) {
	c := NewCanvas(800, 800, 40, 20)
	if w, h := c.Pixels(); w != 40 || h != 40 {
		t.Fatalf("Pixels() = (%d, %d), want (40, 40)", w, h)
	}
	if x, y := c.Pixel(noiselines.Pt(0, 0)); x != 20 || y != 20 {
		t.Errorf("Pixel(origin) = (%v, %v), want (20, 20)", x, y)
	}
	if x, y := c.Pixel(noiselines.Pt(-400, 400)); x != 0 || y != 0 {
		t.Errorf("Pixel(top-left) = (%v, %v), want (0, 0)", x, y)
	}
	if w, h := c.Size(); w != 800 || h != 800 {
		t.Errorf("Size() = (%v, %v), want (800, 800)", w, h)
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(10, 10, 10, 5)
	c.FillRect(-5, -5, 10, 10, noiselines.RGBA{R: 1, G: 1, B: 1, A: 1})
	c.FillRect(-5, -5, 10, 10, noiselines.RGBA{A: 0.5})
	want := colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	for y := range 10 {
		for x := range 10 {
			if got := c.At(x, y); !got.AlmostEqualRgb(want) {
				t.Fatalf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCanvasPolyline(t *testing.T) {
	c := NewCanvas(20, 20, 20, 10)
	white := noiselines.RGBA{R: 1, G: 1, B: 1, A: 1}
	c.Polyline([]noiselines.Vertex{
		{Point: noiselines.Pt(-10, 0.5), Color: white},
		{Point: noiselines.Pt(9, 0.5), Color: white},
	}, noiselines.Stroke{Width: 2})

	for x := range 20 {
		if got := c.At(x, 9); !got.AlmostEqualRgb(colorful.Color{R: 1, G: 1, B: 1}) {
			t.Errorf("At(%d, 9) = %v, want white", x, got)
		}
		if got := c.At(x, 12); got != (colorful.Color{}) {
			t.Errorf("At(%d, 12) = %v, want black", x, got)
		}
	}
}

func TestCanvasOutOfRange(t *testing.T) {
	c := NewCanvas(10, 10, 10, 5)
	c.Polyline([]noiselines.Vertex{
		{Point: noiselines.Pt(-100, -100), Color: noiselines.RGBA{R: 1, A: 1}},
		{Point: noiselines.Pt(100, 100), Color: noiselines.RGBA{R: 1, A: 1}},
	}, noiselines.Stroke{Width: 2})
	if got := c.At(-1, 0); got != (colorful.Color{}) {
		t.Errorf("At(-1, 0) = %v, want black", got)
	}
}

func TestFlush(t *testing.T) {
	s := simScreen(t, 4, 2)
	c := NewCanvas(4, 4, 4, 2)
	c.FillRect(-2, 0, 4, 2, noiselines.RGBA{R: 1, A: 1}) // top half of the surface
	c.Flush(s)

	mainc, _, style, _ := s.GetContent(0, 0)
	if mainc != halfBlock {
		t.Errorf("cell rune = %q, want %q", mainc, halfBlock)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("top cell colours = %v/%v, want red/red", fg, bg)
	}
	_, _, style, _ = s.GetContent(0, 1)
	fg, bg, _ = style.Decompose()
	if fg != tcell.NewRGBColor(0, 0, 0) || bg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("bottom cell colours = %v/%v, want black/black", fg, bg)
	}
}

func TestRunStopsOnContext(t *testing.T) {
	s := simScreen(t, 40, 20)
	m := noiselines.NewModel(noise.Constant(0), noiselines.WithLineCount(3))
	term := New(s, 800, 800, 200)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := term.Run(ctx, m); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if m.Ticks() == 0 {
		t.Error("model never ticked")
	}
}

func TestFPSLimits(t *testing.T) {
	s := simScreen(t, 10, 5)
	tests := []struct {
		fps, want int
	}{
		{0, DefaultFPS},
		{-5, DefaultFPS},
		{60, 60},
		{MaxFPS, MaxFPS},
		{2_000_000_000, MaxFPS},
	}
	for _, tt := range tests {
		if got := New(s, 800, 800, tt.fps).fps; got != tt.want {
			t.Errorf("New(fps=%d).fps = %d, want %d", tt.fps, got, tt.want)
		}
	}
}

func TestRunHugeFPS(t *testing.T) {
	s := simScreen(t, 40, 20)
	m := noiselines.NewModel(noise.Constant(0), noiselines.WithLineCount(1))
	term := New(s, 800, 800, 2_000_000_000)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := term.Run(ctx, m); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	s := simScreen(t, 40, 20)
	m := noiselines.NewModel(noise.Constant(0), noiselines.WithLineCount(1))
	term := New(s, 800, 800, 0)
	if term.fps != DefaultFPS {
		t.Errorf("fps = %d, want %d", term.fps, DefaultFPS)
	}

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	start := time.Now()
	if err := term.Run(ctx, m); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if time.Since(start) > 4*time.Second {
		t.Error("Run() did not return on 'q'")
	}
}

func TestHandle(t *testing.T) {
	s := simScreen(t, 10, 5)
	term := New(s, 100, 100, 10)

	if !term.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Error("Space ended the loop")
	}
	if !term.paused {
		t.Error("Space did not pause")
	}
	if term.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc did not end the loop")
	}

	s.SetSize(20, 8)
	term.handle(tcell.NewEventResize(20, 8))
	if w, h := term.Canvas().Pixels(); w != 20 || h != 16 {
		t.Errorf("Pixels() after resize = (%d, %d), want (20, 16)", w, h)
	}
}
