// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package cgfont builds RA8835 character generator tables.
//
// The controller's character generator holds 256 glyphs of 8×8 pixels, one
// byte per glyph row with the leftmost pixel in bit 7, 2048 bytes in total.
// Panels without a usable mask ROM need such a table uploaded at
// initialization; this package renders one from any font.Face.
package cgfont

import (
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// Size is the length of a character generator table: 256 glyphs of 8 rows.
const Size = 256 * 8

// FromFace renders runes 0x20..0xFF of face into the character generator
// layout. Glyphs wider or taller than the 8×8 cell are clipped; the control
// range 0x00..0x1F stays blank.
func FromFace(face font.Face) []byte {
	table := make([]byte, Size)
	cell := image.NewGray(image.Rect(0, 0, 8, 8))
	for c := 0x20; c < 256; c++ {
		for i := range cell.Pix {
			cell.Pix[i] = 0
		}
		d := font.Drawer{
			Dst:  cell,
			Src:  image.NewUniform(color.Gray{Y: 0xFF}),
			Face: face,
			// Baseline one pixel above the cell bottom; descenders clip.
			Dot: fixed.P(0, 7),
		}
		d.DrawString(string(rune(c)))

		for y := 0; y < 8; y++ {
			var row byte
			for x := 0; x < 8; x++ {
				if cell.GrayAt(x, y).Y >= 0x80 {
					row |= 0x80 >> uint(x)
				}
			}
			table[c*8+y] = row
		}
	}
	return table
}

// Default renders the Go Mono face at 8 px. It is good enough to bring up a
// panel; production firmware usually ships a hand-tuned table instead.
func Default() ([]byte, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{Size: 8})
	defer face.Close()
	return FromFace(face), nil
}
