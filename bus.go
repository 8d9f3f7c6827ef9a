// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ra8835

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// busMode selects the level driven on the A0 line with each byte.
type busMode bool

const (
	modeData    busMode = false // A0 low
	modeCommand busMode = true  // A0 high
)

const (
	// busSetup is the data setup/hold time around the rising /WR edge. The
	// chip needs far less; GPIO toggling from Go needs the floor anyway.
	busSetup = time.Microsecond
	// resetPulse frames the /RES pulse on either side.
	resetPulse = 2 * time.Microsecond
)

// send performs one write cycle on the parallel bus: /RD and /WR inactive,
// A0 per mode, /CS asserted, then /WR strobed low with the data pins driven
// while it is low. The chip latches the byte on the rising /WR edge; both
// strobes and /CS end up deasserted again.
func (d *Dev) send(value byte, mode busMode) error {
	eh := errorHandler{d: d}

	eh.out(d.rd, gpio.High)
	eh.out(d.wr, gpio.High)
	eh.out(d.a0, gpio.Level(mode))
	eh.out(d.cs, gpio.Low)
	eh.out(d.wr, gpio.Low)

	eh.sleep(busSetup)
	for i := range d.data {
		eh.out(d.data[i], gpio.Level(value>>uint(i)&1 == 1))
	}
	eh.sleep(busSetup)

	eh.out(d.wr, gpio.High)
	eh.out(d.cs, gpio.High)
	return eh.err
}

// reset drives every pin to its idle output level and pulses /RES.
func (d *Dev) reset() error {
	eh := errorHandler{d: d}

	for i := range d.data {
		eh.out(d.data[i], gpio.Low)
	}
	eh.out(d.a0, gpio.Low)
	eh.out(d.wr, gpio.High)
	eh.out(d.rd, gpio.High)
	eh.out(d.cs, gpio.High)
	eh.out(d.rst, gpio.High)

	eh.sleep(resetPulse)
	eh.out(d.rst, gpio.Low)
	eh.sleep(resetPulse)
	eh.out(d.rst, gpio.High)
	eh.sleep(resetPulse)

	return eh.err
}
