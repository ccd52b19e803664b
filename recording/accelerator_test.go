// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/noiselines"
	"github.com/gogpu/noiselines/noise"
)

// batchingAccelerator queues every shape it is offered and only draws them
// on Flush, like the SDF accelerator. Drawing paints the whole target opaque
// white so a flushed frame is easy to tell apart. With batch unset it accepts
// nothing, which leaves rendering entirely on the CPU.
type batchingAccelerator struct {
	batch bool

	mu      sync.Mutex
	pending int
	flushes int
}

func (a *batchingAccelerator) Name() string { return "batching" }

func (a *batchingAccelerator) Init() error { return nil }

func (a *batchingAccelerator) Close() {}

func (a *batchingAccelerator) CanAccelerate(_ gg.AcceleratedOp) bool { return a.batch }

func (a *batchingAccelerator) FillPath(_ gg.GPURenderTarget, _ *gg.Path, _ *gg.Paint) error {
	return gg.ErrFallbackToCPU
}

func (a *batchingAccelerator) StrokePath(_ gg.GPURenderTarget, _ *gg.Path, _ *gg.Paint) error {
	return gg.ErrFallbackToCPU
}

func (a *batchingAccelerator) FillShape(_ gg.GPURenderTarget, _ gg.DetectedShape, _ *gg.Paint) error {
	return a.queue()
}

func (a *batchingAccelerator) StrokeShape(_ gg.GPURenderTarget, _ gg.DetectedShape, _ *gg.Paint) error {
	return a.queue()
}

func (a *batchingAccelerator) queue() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending++
	return nil
}

func (a *batchingAccelerator) Flush(target gg.GPURenderTarget) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending == 0 {
		return nil
	}
	for i := range target.Data {
		target.Data[i] = 0xff
	}
	a.pending = 0
	a.flushes++
	return nil
}

func (a *batchingAccelerator) counts() (pending, flushes int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending, a.flushes
}

// useBatchingAccelerator registers a batching accelerator for the rest of
// the test. gg has no way to unregister one, so cleanup swaps in an inert
// accelerator that never takes work off the CPU.
func useBatchingAccelerator(t *testing.T) *batchingAccelerator {
	t.Helper()
	a := &batchingAccelerator{batch: true}
	if err := gg.RegisterAccelerator(a); err != nil {
		t.Fatalf("RegisterAccelerator() error = %v", err)
	}
	t.Cleanup(func() {
		if err := gg.RegisterAccelerator(&batchingAccelerator{}); err != nil {
			t.Errorf("RegisterAccelerator(inert) error = %v", err)
		}
	})
	return a
}

// fadeOnlyModel draws nothing but the fade rectangle, which the accelerator
// queues as a rect shape without any CPU fallback flushing it.
func fadeOnlyModel() *noiselines.Model {
	return noiselines.NewModel(noise.Constant(0), noiselines.WithLineCount(0))
}

func isWhite(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff && a == 0xffff
}

func TestFramesFlushesBatchedShapes(t *testing.T) {
	a := useBatchingAccelerator(t)

	const n = 3
	frames, err := Frames(context.Background(), fadeOnlyModel(), smallOptions(n))
	if err != nil {
		t.Fatalf("Frames() error = %v", err)
	}
	for i, f := range frames {
		if !isWhite(f.At(10, 10)) {
			t.Errorf("frame %d pixel = %v, want the flushed batch", i, f.At(10, 10))
		}
	}
	if pending, flushes := a.counts(); flushes < n || pending != 0 {
		t.Errorf("counts() = (%d pending, %d flushes), want (0, >= %d)", pending, flushes, n)
	}
}

func TestSnapshotFlushesBatchedShapes(t *testing.T) {
	useBatchingAccelerator(t)

	var buf bytes.Buffer
	if err := Snapshot(context.Background(), fadeOnlyModel(), &buf, smallOptions(2)); err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if !isWhite(img.At(10, 10)) {
		t.Errorf("snapshot pixel = %v, want the flushed batch", img.At(10, 10))
	}
}
