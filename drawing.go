// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ra8835

import (
	"bytes"
	"math/bits"
)

// bytesPerLine returns the width of one display line in bytes.
func (o *Opts) bytesPerLine() int {
	return o.W / 8
}

// textCells returns the size of the text layer in cells, one byte each.
func (o *Opts) textCells() int {
	return (o.W / 8) * (o.H / 8)
}

// graphicsBase returns the display RAM address of the graphics layer, which
// sits directly after the text cells.
func (o *Opts) graphicsBase() uint16 {
	return uint16(o.textCells())
}

// graphicsSize returns the size of the graphics layer in bytes.
func (o *Opts) graphicsSize() int {
	return o.H * o.W / 8
}

// pixelAddr returns the display RAM byte holding (x, y) and the MSB-left
// mask selecting the pixel within it.
func pixelAddr(opts *Opts, x, y int) (uint16, byte) {
	addr := opts.graphicsBase() + uint16(y*opts.bytesPerLine()+x/8)
	return addr, 1 << uint(7-x%8)
}

// clearGraphics zeroes the graphics layer.
func clearGraphics(ctrl controller, opts *Opts) {
	setCursor(ctrl, opts.graphicsBase())
	ctrl.sendCommand(csrDirRight)
	ctrl.sendCommand(mwrite)
	ctrl.sendData(bytes.Repeat([]byte{0x00}, opts.graphicsSize()))
}

// writeImage blits a full frame, W/8 bytes per row, H rows, MSB leftmost.
// On an upside-down panel the sweep runs backwards from the last byte and
// every byte is bit-mirrored, so the buffer is always supplied in logical
// order.
func writeImage(ctrl controller, opts *Opts, img []byte) {
	if !opts.UpsideDown {
		setCursor(ctrl, opts.graphicsBase())
		ctrl.sendCommand(csrDirRight)
		ctrl.sendCommand(mwrite)
		ctrl.sendData(img)
		return
	}

	setCursor(ctrl, opts.graphicsBase()+uint16(opts.graphicsSize())-1)
	ctrl.sendCommand(csrDirLeft)
	ctrl.sendCommand(mwrite)
	mirrored := make([]byte, len(img))
	for i, b := range img {
		mirrored[i] = bits.Reverse8(b)
	}
	ctrl.sendData(mirrored)
}

// putPixel sets a single pixel. The chip offers no read path, so the
// addressed byte is overwritten whole.
func putPixel(ctrl controller, opts *Opts, x, y int) {
	addr, mask := pixelAddr(opts, x, y)
	setCursor(ctrl, addr)
	ctrl.sendCommand(mwrite)
	ctrl.sendData([]byte{mask})
}

// drawLine rasterizes with the classic integer midpoint stepper. On
// mostly-horizontal segments every pixel landing in the same display RAM
// byte is folded into one mask write; mostly-vertical segments go pixel by
// pixel through putPixel.
func drawLine(ctrl controller, opts *Opts, x1, y1, x2, y2 int) {
	dx, dy := 1, 1
	if x2 < x1 {
		dx = -1
	}
	if y2 < y1 {
		dy = -1
	}
	lengthX := abs(x2 - x1)
	lengthY := abs(y2 - y1)

	length := lengthX
	if lengthY > lengthX {
		length = lengthY
	}
	if length == 0 {
		putPixel(ctrl, opts, x1, y1)
		return
	}

	if lengthY <= lengthX {
		x, y := x1, y1
		d := -lengthX
		length++
		for length > 0 {
			addr, _ := pixelAddr(opts, x, y)
			setCursor(ctrl, addr)
			ctrl.sendCommand(mwrite)

			cell := x / 8
			rowStart := y
			var mask byte
			for y == rowStart && length > 0 {
				length--
				mask |= 1 << uint(7-x%8)
				x += dx
				d += 2 * lengthY
				if d > 0 {
					d -= 2 * lengthX
					y += dy
					ctrl.sendData([]byte{mask})
					break
				}
				if x/8 != cell {
					ctrl.sendData([]byte{mask})
					cell = x / 8
					mask = 0
				}
			}
		}
		return
	}

	x, y := x1, y1
	d := -lengthY
	length++
	for ; length > 0; length-- {
		putPixel(ctrl, opts, x, y)
		y += dy
		d += 2 * lengthX
		if d > 0 {
			d -= 2 * lengthY
			x += dx
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
