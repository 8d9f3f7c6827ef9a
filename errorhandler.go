// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ra8835

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// errorHandler remembers the first pin or bus error and swallows everything
// after it, so command dialogues can be written as straight-line code. It
// implements controller on top of the parallel bus.
type errorHandler struct {
	d   *Dev
	err error
}

func (eh *errorHandler) out(p gpio.PinOut, l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = p.Out(l)
}

func (eh *errorHandler) sleep(t time.Duration) {
	if eh.err != nil {
		return
	}
	time.Sleep(t)
}

func (eh *errorHandler) sendCommand(cmd byte) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.send(cmd, modeCommand)
}

func (eh *errorHandler) sendData(data []byte) {
	for _, b := range data {
		if eh.err != nil {
			return
		}
		eh.err = eh.d.send(b, modeData)
	}
}
