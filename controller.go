// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ra8835

import (
	"bytes"
	"math/bits"
)

// Commands
const (
	systemSet   byte = 0x40
	mwrite      byte = 0x42
	mread       byte = 0x43
	scroll      byte = 0x44
	csrw        byte = 0x46
	csrr        byte = 0x47
	csrDirRight byte = 0x4C
	csrDirLeft  byte = 0x4D
	csrDirUp    byte = 0x4E
	csrDirDown  byte = 0x4F
	sleepIn     byte = 0x53
	displayOff  byte = 0x58
	displayOn   byte = 0x59
	hdotScr     byte = 0x5A
	ovlay       byte = 0x5B
	cgramAdr    byte = 0x5C
	csrForm     byte = 0x5D
)

// cgramBase is the display RAM address the character generator is written
// to. The CGRAM ADR parameter bytes encode the same location.
const cgramBase uint16 = 0x7000

// controller abstracts the command/data channel to the chip so the dialogue
// logic can be exercised against a recording fake.
type controller interface {
	sendCommand(byte)
	sendData([]byte)
}

// initialize runs the full post-reset dialogue: panel geometry, layer
// layout, character generator upload and blanking, ending with the display
// switched on.
func initialize(ctrl controller, opts *Opts) {
	initDisplay(ctrl, opts)
	uploadCGRAM(ctrl, opts.Font, opts.UpsideDown)
	clearGraphics(ctrl, opts)
	clearText(ctrl, opts)
	enableDisplay(ctrl)
}

// initDisplay issues SYSTEM SET and carves the display RAM into the text
// layer at address 0 and the graphics layer directly after it.
func initDisplay(ctrl controller, opts *Opts) {
	ctrl.sendCommand(systemSet)
	ctrl.sendData([]byte{
		0x31, // IV=1, external CGRAM, single panel, 8-pixel characters
		0x87, // WF=1 two-frame AC drive, FX: 8 pixels per character
		0x07, // FY: 8 lines per character
		byte(opts.W/8 - 1), // CR: bytes per display line
		0x2F,               // T/CR: line length including retrace
		byte(opts.H - 1),   // L/F: lines per frame
		0x28, 0x00,         // AP: virtual horizontal address range
	})

	base := opts.graphicsBase()
	ctrl.sendCommand(scroll)
	ctrl.sendData([]byte{
		0x00, 0x00, byte(opts.H), // layer 1: text at 0
		byte(base), byte(base >> 8), byte(opts.H), // layer 2: graphics
		0x00, 0x00, // layer 3 unused
		0x00, 0x00, // layer 4 unused
	})

	ctrl.sendCommand(csrForm)
	ctrl.sendData([]byte{0x04, 0x86}) // cursor shape, CM=1 graphics cursor

	ctrl.sendCommand(hdotScr)
	ctrl.sendData([]byte{0x00}) // no hardware pixel scroll

	ctrl.sendCommand(ovlay)
	ctrl.sendData([]byte{0x00}) // OR composition, two layers, text on layer 1
}

// uploadCGRAM streams the 2 KiB glyph table into the character generator
// area and latches the CG base address. For an upside-down panel each glyph
// is emitted bottom row first with its bits mirrored, so text comes out
// readable on the rotated panel.
func uploadCGRAM(ctrl controller, font []byte, upsideDown bool) {
	setCursor(ctrl, cgramBase)
	ctrl.sendCommand(csrDirRight)
	ctrl.sendCommand(mwrite)

	glyphs := make([]byte, 0, FontSize)
	for c := 0; c < 256; c++ {
		for r := 0; r < 8; r++ {
			if upsideDown {
				glyphs = append(glyphs, bits.Reverse8(font[c*8+7-r]))
			} else {
				glyphs = append(glyphs, font[c*8+r])
			}
		}
	}
	ctrl.sendData(glyphs)

	ctrl.sendCommand(cgramAdr)
	ctrl.sendData([]byte{0x00, 0x70})
}

// setCursor programs the controller's cursor register, little endian.
func setCursor(ctrl controller, addr uint16) {
	ctrl.sendCommand(csrw)
	ctrl.sendData([]byte{byte(addr), byte(addr >> 8)})
}

// setTextCursor points the cursor at a text cell and sets the sweep
// direction to match the panel orientation.
func setTextCursor(ctrl controller, opts *Opts, col, row int) {
	addr := uint16(row*opts.bytesPerLine() + col)
	if opts.UpsideDown {
		addr = uint16(opts.textCells()) - addr - 1
	}
	setCursor(ctrl, addr)
	if opts.UpsideDown {
		ctrl.sendCommand(csrDirLeft)
	} else {
		ctrl.sendCommand(csrDirRight)
	}
}

// clearText blanks every cell and leaves the cursor at the home cell.
func clearText(ctrl controller, opts *Opts) {
	setTextCursor(ctrl, opts, 0, 0)
	ctrl.sendCommand(mwrite)
	ctrl.sendData(bytes.Repeat([]byte{' '}, opts.textCells()))
}

// writeText streams glyph codes starting at the current cursor cell.
func writeText(ctrl controller, p []byte) {
	ctrl.sendCommand(mwrite)
	ctrl.sendData(p)
}

// enableDisplay turns the panel on with layers 1 and 2 steady, layer 3 off
// and the hardware cursor hidden.
func enableDisplay(ctrl controller) {
	ctrl.sendCommand(displayOn)
	ctrl.sendData([]byte{0x14})
}
