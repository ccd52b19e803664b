// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/noiselines"
	"github.com/gogpu/noiselines/render"
	"github.com/setanarut/apng"
	"golang.org/x/image/draw"
)

var (
	// ErrNoFrames is returned when a recording would contain no frames.
	ErrNoFrames = errors.New("recording: no frames requested")

	// ErrBadSize is returned for non-positive output dimensions.
	ErrBadSize = errors.New("recording: invalid size")
)

// Options configures a recording.
type Options struct {
	// Width and Height of the drawing surface in pixels.
	Width, Height int

	// Frames is the number of ticks recorded. Every frame is held in
	// memory until encoding, Width*Height*4 bytes each before scaling.
	Frames int

	// Delay between frames in hundredths of a second.
	Delay uint16

	// Scale resizes the encoded frames. Values outside (0, 1] mean 1.
	Scale float64

	// LoopCount is the number of times the animation plays. 0 loops forever.
	LoopCount uint32
}

// DefaultOptions returns options matching the on-screen sketch: an 800×800
// surface, four seconds at roughly 30 frames per second.
func DefaultOptions() Options {
	return Options{
		Width:  800,
		Height: 800,
		Frames: 120,
		Delay:  3,
		Scale:  1,
	}
}

func (o Options) validate() error {
	if o.Frames <= 0 {
		return ErrNoFrames
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadSize, o.Width, o.Height)
	}
	return nil
}

func (o Options) scale() float64 {
	if o.Scale <= 0 || o.Scale > 1 || math.IsNaN(o.Scale) {
		return 1
	}
	return o.Scale
}

// newSurface returns a context cleared to opaque black, which is what the
// window shows before the first frame.
func newSurface(w, h int) (*gg.Context, *render.Canvas) {
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.Black)
	return dc, render.New(dc)
}

// Frames ticks m opts.Frames times and returns a copy of every frame.
// It stops early with ctx.Err() if ctx is cancelled.
func Frames(ctx context.Context, m *noiselines.Model, opts Options) ([]image.Image, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	dc, c := newSurface(opts.Width, opts.Height)
	defer dc.Close()

	s := opts.scale()
	frames := make([]image.Image, 0, opts.Frames)
	for i := range opts.Frames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m.Tick(c)
		frames = append(frames, capture(dc, s))
		noiselines.Logger().Debug("recording: frame", "n", i, "offset", m.Offset, "strokes", c.Strokes())
	}
	return frames, nil
}

// flush draws any shapes a batching GPU accelerator still holds, so that
// pixel reads see the whole frame.
func flush(dc *gg.Context) {
	if err := dc.FlushGPU(); err != nil {
		noiselines.Logger().Debug("recording: flush failed", "err", err)
	}
}

// capture copies the current contents of dc, scaled by s.
func capture(dc *gg.Context, s float64) image.Image {
	flush(dc)
	src := dc.Image()
	if s == 1 {
		return src
	}
	b := src.Bounds()
	w := max(1, int(math.Round(float64(b.Dx())*s)))
	h := max(1, int(math.Round(float64(b.Dy())*s)))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Record ticks m and writes the frames to w as an animated PNG.
func Record(ctx context.Context, m *noiselines.Model, w io.Writer, opts Options) error {
	frames, err := Frames(ctx, m, opts)
	if err != nil {
		return err
	}
	delays := make([]uint16, len(frames))
	for i := range delays {
		delays[i] = opts.Delay
	}
	a := &apng.APNG{
		Images:    frames,
		Delays:    delays,
		LoopCount: opts.LoopCount,
	}
	if err := apng.EncodeAll(w, a); err != nil {
		return fmt.Errorf("recording: encode: %w", err)
	}
	return nil
}

// RecordFile is Record writing to a newly created file at path.
func RecordFile(ctx context.Context, m *noiselines.Model, path string, opts Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("recording: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("recording: %w", cerr)
		}
	}()

	if err := Record(ctx, m, f, opts); err != nil {
		return err
	}
	noiselines.Logger().Info("recording: written", "path", path, "frames", opts.Frames)
	return nil
}

// Snapshot ticks m opts.Frames times and writes only the final frame to w
// as a PNG. Delay, Scale and LoopCount are ignored.
func Snapshot(ctx context.Context, m *noiselines.Model, w io.Writer, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	dc, c := newSurface(opts.Width, opts.Height)
	defer dc.Close()

	for range opts.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.Tick(c)
	}
	flush(dc)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("recording: encode: %w", err)
	}
	return nil
}
