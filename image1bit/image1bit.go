// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image1bit

import (
	"image"
	"image/color"
)

// Bit implements a 1-bit color.
type Bit bool

// Possible bit values.
const (
	On  Bit = true
	Off Bit = false
)

// RGBA implements color.Color.
func (b Bit) RGBA() (uint32, uint32, uint32, uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// BitModel converts colors to Bit with a mid-point luminance threshold.
var BitModel = color.ModelFunc(convertBit)

func convertBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Standard luminance weights on the 16-bit channel values.
	y := (299*r + 587*g + 114*b) / 1000
	return Bit(y >= 0x8000)
}

// HorizontalMSB is a 1-bit image with Pix laid out row major, Stride bytes
// per row, the leftmost pixel of each byte in bit 7.
type HorizontalMSB struct {
	// Pix holds the pixels as horizontally packed bits.
	Pix []byte
	// Stride is the Pix stride in bytes between vertically adjacent pixels.
	Stride int
	// Rect is the image bounds.
	Rect image.Rectangle
}

// NewHorizontalMSB returns an initialized HorizontalMSB instance. The width
// must be a multiple of 8 so rows pack into whole bytes.
func NewHorizontalMSB(r image.Rectangle) *HorizontalMSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &HorizontalMSB{Rect: r}
	}
	if w%8 != 0 {
		panic("image1bit: width must be a multiple of 8")
	}
	stride := w / 8
	return &HorizontalMSB{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel implements image.Image.
func (p *HorizontalMSB) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (p *HorizontalMSB) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *HorizontalMSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt is the optimized version of At().
func (p *HorizontalMSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return Bit(p.Pix[offset]&mask != 0)
}

// Set implements draw.Image.
func (p *HorizontalMSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, convertBit(c).(Bit))
}

// SetBit is the optimized version of Set().
func (p *HorizontalMSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// pixOffset returns the byte offset in Pix and the bit mask for the pixel
// at (x, y).
func (p *HorizontalMSB) pixOffset(x, y int) (int, byte) {
	ox := x - p.Rect.Min.X
	oy := y - p.Rect.Min.Y
	return oy*p.Stride + ox/8, 0x80 >> uint(ox%8)
}

var _ image.Image = &HorizontalMSB{}
