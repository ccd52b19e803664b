// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window shows a noiselines sketch in a gogpu window.
//
// The data flow is:
//
//	Model.Tick -> render.Canvas -> gg.Context -> ggcanvas.Canvas -> window surface
//
// The window redraws at vsync while an animation token is held. Space
// releases the token (pausing the sketch at 0% CPU) and takes it again.
// Closing the window ends [Run].
package window
