// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package recording renders a noiselines sketch offscreen and saves it.
//
// [Record] runs the model for a number of ticks on a software gg.Context and
// encodes every frame into one animated PNG. [Snapshot] does the same but
// keeps only the last frame as a plain PNG.
//
// # Usage
//
//	m := noiselines.NewModel(noise.NewPerlin(0))
//	opts := recording.DefaultOptions()
//	opts.Frames = 240
//	if err := recording.RecordFile(ctx, m, "lines.png", opts); err != nil {
//	    log.Fatal(err)
//	}
//
// Frames accumulate exactly as they do on screen: the context is never
// cleared between ticks, so the fade rectangle leaves motion trails.
package recording
