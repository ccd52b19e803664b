// Package noiselines is a small generative-art sketch: horizontal lines
// perturbed by 3D noise, drawn as colour-graded polylines and animated by
// advancing a time offset every frame.
//
// # Quick Start
//
//	m := noiselines.NewModel(noise.NewPerlin(0))
//	for {
//	    m.Tick(canvas) // advance the offset, then draw every line
//	}
//
// The package is backend-independent. Drawing goes through the [Canvas]
// interface; render adapts it onto a gg.Context, integration/window shows
// that context in a gogpu window, term draws into a terminal and recording
// writes animated PNGs.
//
// # Coordinate System
//
// Sketch space has its origin at the centre of the surface, x increasing to
// the right and y increasing upwards, one unit per device pixel. Backends
// convert to device space themselves.
//
// # Reference Configuration
//
// 17 lines at heights -256, -224, ..., 256, each spanning x in [-750, 750),
// an offset step of 0.009 per frame and a 10% black fade between frames.
package noiselines
