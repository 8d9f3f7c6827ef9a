// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image1bit implements 1-bit monochrome images packed the way the
// RA8835 graphics layer stores them: 8 horizontal pixels per byte with the
// most significant bit leftmost.
//
// HorizontalMSB implements image.Image and draw.Image, so the standard
// library drawing and font rendering machinery composes frames that can be
// blitted to the display without repacking: the Pix slice is the wire
// format.
package image1bit
