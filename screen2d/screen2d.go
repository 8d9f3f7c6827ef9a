// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen2d implements a monochrome display.Drawer that outputs to
// terminal (stdout) using ANSI color codes.
//
// Useful to develop RA8835 frames on a workstation while the panel is still
// in the mail: it accepts the same packed frames and the same draw calls the
// real driver does.
package screen2d

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"

	"periph.io/x/devices/v3/ra8835/image1bit"
)

// Opts represents the options available for this display.
type Opts struct {
	// W and H are the emulated panel size in pixels. W must be a multiple
	// of 8, like on the real panel.
	W, H int
	// Palette defaults to ansi256.Default.
	Palette *ansi256.Palette
	// On and Off are the colors lit and unlit pixels render with. They
	// default to a green-on-black STN look.
	On, Off color.Color

	_ struct{}
}

// Dev is a monochrome panel emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	width   int
	height  int
	palette ansi256.Palette
	on      color.NRGBA
	off     color.NRGBA

	buffer *image1bit.HorizontalMSB
	buf    bytes.Buffer
}

// New returns a Dev that displays at the console.
//
// Permits to do local testing of frames for the LCD.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	on := color.NRGBA{R: 0x30, G: 0xFF, B: 0x30, A: 0xFF}
	off := color.NRGBA{R: 0x10, G: 0x20, B: 0x10, A: 0xFF}
	if opts.On != nil {
		on = color.NRGBAModel.Convert(opts.On).(color.NRGBA)
	}
	if opts.Off != nil {
		off = color.NRGBAModel.Convert(opts.Off).(color.NRGBA)
	}
	return &Dev{
		w:       colorable.NewColorableStdout(),
		width:   opts.W,
		height:  opts.H,
		palette: *p,
		on:      on,
		off:     off,
		buffer:  image1bit.NewHorizontalMSB(image.Rect(0, 0, opts.W, opts.H)),
	}
}

func (d *Dev) String() string {
	return "Screen2D"
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the shell is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Write accepts a packed frame in the RA8835 graphics layer format (W/8
// bytes per row, MSB leftmost) and renders it to the console.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != len(d.buffer.Pix) {
		return 0, fmt.Errorf("screen2d: frame is %d bytes, want %d", len(pixels), len(d.buffer.Pix))
	}
	copy(d.buffer.Pix, pixels)
	if err := d.refresh(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(d.buffer, r.Intersect(d.Bounds()), src, sp, draw.Src)
	return d.refresh()
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per
	// call.
	d.buf.Reset()
	for y := 0; y < d.height; y++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		for x := 0; x < d.width; x++ {
			c := d.off
			if d.buffer.BitAt(x, y) {
				c = d.on
			}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
