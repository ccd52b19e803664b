// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package term previews a noiselines sketch in a truecolor terminal.
//
// Every terminal cell shows two vertically stacked pixels using the upper
// half block glyph: the foreground colour paints the top pixel, the
// background colour the bottom one. The sketch is scaled uniformly so its
// whole surface fits the terminal.
//
// Keys: Esc, Ctrl-C or q quit, Space pauses.
package term
