// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ra8835 controls a RA8835 (SED1330/SED1335 compatible) LCD
// controller over an 8-bit parallel bus driven from GPIO pins.
//
// The RA8835 drives monochrome STN panels and mixes two display layers: a
// text layer addressed by 8×8 character cells and a graphics layer packed one
// bit per pixel, MSB leftmost. Both layers live in the controller's display
// RAM and are written through the controller's cursor register with address
// auto-increment; the protocol is write only.
//
// The driver bit-bangs the bus through thirteen gpio.PinOut lines: eight data
// pins plus /WR, /RD, /CS, A0 and /RES. A 2 KiB character generator table is
// uploaded into controller RAM during Init, which makes the text layer usable
// on panels whose mask ROM is absent or holds the wrong glyph set. Panels
// mounted rotated by 180° are supported via Opts.UpsideDown, which reverses
// the cursor sweep direction, mirrors every graphics byte and complements
// text cell addresses.
//
// # Wiring
//
//	Display Pin → System Pin
//	DB0..DB7    → eight GPIO outputs (DB0 carries bit 0)
//	/WR         → GPIO output
//	/RD         → GPIO output (held high, reads are not used)
//	/CS         → GPIO output
//	A0          → GPIO output (command/data select)
//	/RES        → GPIO output
//
// # Datasheet
//
// https://www.raio.com.tw/data_raio/Datasheet/RA8835.pdf
package ra8835
