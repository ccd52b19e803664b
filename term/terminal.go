// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/noiselines"
)

const (
	// DefaultFPS is the frame rate used when none is configured.
	DefaultFPS = 30

	// MaxFPS caps the frame rate. No terminal repaints faster.
	MaxFPS = 1000
)

// Open creates and initialises the terminal screen. The caller must call
// Fini on the returned screen.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}

// Terminal drives a model on an initialised tcell screen.
type Terminal struct {
	screen tcell.Screen
	canvas *Canvas
	fps    int
	paused bool
}

// New wraps an initialised screen. The sketch surface is vw×vh units.
// A non-positive fps selects DefaultFPS; larger values are capped at MaxFPS.
func New(screen tcell.Screen, vw, vh float64, fps int) *Terminal {
	if fps <= 0 {
		fps = DefaultFPS
	}
	fps = min(fps, MaxFPS)
	cols, rows := screen.Size()
	return &Terminal{
		screen: screen,
		canvas: NewCanvas(vw, vh, cols, rows),
		fps:    fps,
	}
}

// Canvas returns the terminal's pixel canvas.
func (t *Terminal) Canvas() *Canvas { return t.canvas }

// Run ticks m once per frame until ctx is done or the user quits.
// Both end the loop with a nil error.
func (t *Terminal) Run(ctx context.Context, m *noiselines.Model) error {
	log := noiselines.Logger()
	log.Info("term: running", "fps", t.fps, "cols", t.canvas.cols, "rows", t.canvas.rows)

	ticker := time.NewTicker(time.Second / time.Duration(t.fps))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("term: stopped", "ticks", m.Ticks())
			return nil

		case ev := <-events:
			if !t.handle(ev) {
				log.Info("term: quit", "ticks", m.Ticks())
				return nil
			}

		case <-ticker.C:
			if t.paused {
				continue
			}
			m.Tick(t.canvas)
			t.canvas.Flush(t.screen)
		}
	}
}

// handle reacts to one input event and reports whether to keep running.
func (t *Terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			t.paused = !t.paused
			noiselines.Logger().Debug("term: pause toggled", "paused", t.paused)
		}
	case *tcell.EventResize:
		cols, rows := t.screen.Size()
		t.canvas.Resize(cols, rows)
		t.screen.Sync()
	}
	return true
}
