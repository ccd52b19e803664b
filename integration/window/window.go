// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/noiselines"
	"github.com/gogpu/noiselines/render"
)

// Config describes the window.
type Config struct {
	Title         string
	Width, Height int
}

// DefaultConfig returns an 800×800 window titled "noiselines".
func DefaultConfig() Config {
	return Config{Title: "noiselines", Width: 800, Height: 800}
}

// session is the per-window frame state. It is only touched from the
// gogpu draw callback.
type session struct {
	model  *noiselines.Model
	canvas *render.Canvas
	frames int
	paused bool
}

// draw renders one frame into cc. The first frame clears to opaque black;
// later frames keep the previous contents so the fade leaves trails.
func (s *session) draw(cc *gg.Context) {
	if s.canvas == nil {
		s.canvas = render.New(cc)
		cc.ClearWithColor(gg.Black)
	} else if s.canvas.Context() != cc || sizeChanged(s.canvas, cc) {
		s.canvas.Reset(cc)
	}
	if s.paused {
		return
	}
	s.model.Tick(s.canvas)
	s.frames++
	noiselines.Logger().Debug("window: frame", "n", s.frames, "offset", s.model.Offset, "strokes", s.canvas.Strokes())
}

func sizeChanged(c *render.Canvas, cc *gg.Context) bool {
	w, h := c.Size()
	return int(w) != cc.Width() || int(h) != cc.Height()
}

// Run opens the window and animates m until the window is closed.
// It blocks on the calling goroutine, which must be the main one.
func Run(m *noiselines.Model, cfg Config) error {
	log := noiselines.Logger()
	gg.SetLogger(log)

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height).
		WithContinuousRender(false))

	s := &session{model: m}
	var canvas *ggcanvas.Canvas
	var anim *gogpu.AnimationToken
	var fatal error

	app.OnDraw(func(dc *gogpu.Context) {
		if fatal != nil {
			return
		}
		if anim == nil && !s.paused {
			anim = app.StartAnimation()
			log.Info("window: animation started", "backend", dc.Backend())
		}

		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}
		if canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			var err error
			canvas, err = ggcanvas.New(provider, w, h)
			if err != nil {
				fatal = fmt.Errorf("window: create canvas: %w", err)
				log.Error("window: create canvas", "err", err)
				return
			}
			log.Info("window: canvas created", "width", w, "height", h)
		}
		if cw, ch := canvas.Size(); cw != w || ch != h {
			if err := canvas.Resize(w, h); err != nil {
				log.Warn("window: resize", "err", err)
			}
		}

		if err := canvas.Draw(s.draw); err != nil {
			log.Debug("window: draw", "err", err)
		}
		sw, sh := dc.SurfaceSize()
		if err := canvas.RenderDirect(dc.RenderTarget().SurfaceView(), sw, sh); err != nil {
			log.Debug("window: present", "frame", s.frames, "err", err)
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key != gpucontext.KeySpace {
			return
		}
		s.paused = !s.paused
		if s.paused {
			if anim != nil {
				anim.Stop()
				anim = nil
			}
			log.Info("window: paused", "offset", m.Offset)
			return
		}
		anim = app.StartAnimation()
		log.Info("window: resumed")
	})

	app.OnClose(func() {
		if anim != nil {
			anim.Stop()
		}
		gg.CloseAccelerator()
		log.Info("window: closed", "frames", s.frames)
	})

	if err := app.Run(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return fatal
}
