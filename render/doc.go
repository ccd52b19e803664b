// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render draws a noiselines sketch onto a gg.Context.
//
// [Canvas] implements noiselines.Canvas. It maps sketch space (origin at the
// centre, y up) onto the context's device space (origin top-left, y down)
// with a single affine transform, and strokes each polyline as runs of
// segments painted with linear gradients between the vertex colours.
//
// # Usage
//
//	dc := gg.NewContext(800, 800)
//	c := render.New(dc)
//	m := noiselines.NewModel(noise.NewPerlin(0))
//	m.Tick(c)
//	dc.SavePNG("frame.png")
//
// The same Canvas works on the context of an integration/ggcanvas Canvas,
// which is how the window backend draws.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use, just like the gg.Context it wraps.
package render
