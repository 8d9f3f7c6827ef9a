// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ra8835

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestNew(t *testing.T) {
	goodData := func() [8]gpio.PinOut {
		var data [8]gpio.PinOut
		for i := range data {
			data[i] = &gpiotest.Pin{}
		}
		return data
	}
	p := func() gpio.PinOut { return &gpiotest.Pin{} }

	for _, tc := range []struct {
		name    string
		data    [8]gpio.PinOut
		rst     gpio.PinOut
		opts    Opts
		wantErr string
	}{
		{
			name: "valid",
			data: goodData(),
			rst:  p(),
			opts: *testOpts(false),
		},
		{
			name: "nil data pin",
			data: func() [8]gpio.PinOut {
				d := goodData()
				d[3] = nil
				return d
			}(),
			rst:     p(),
			opts:    *testOpts(false),
			wantErr: "data pin 3 is nil",
		},
		{
			name:    "nil control pin",
			data:    goodData(),
			opts:    *testOpts(false),
			wantErr: "rst pin is nil",
		},
		{
			name:    "zero width",
			data:    goodData(),
			rst:     p(),
			opts:    Opts{W: 0, H: 64, Font: make([]byte, FontSize)},
			wantErr: "not a multiple of 8",
		},
		{
			name:    "width not a byte multiple",
			data:    goodData(),
			rst:     p(),
			opts:    Opts{W: 100, H: 64, Font: make([]byte, FontSize)},
			wantErr: "not a multiple of 8",
		},
		{
			name:    "height not a byte multiple",
			data:    goodData(),
			rst:     p(),
			opts:    Opts{W: 128, H: 60, Font: make([]byte, FontSize)},
			wantErr: "not a multiple of 8",
		},
		{
			name:    "too wide",
			data:    goodData(),
			rst:     p(),
			opts:    Opts{W: 2064, H: 64, Font: make([]byte, FontSize)},
			wantErr: "exceed the controller line length",
		},
		{
			name:    "too tall",
			data:    goodData(),
			rst:     p(),
			opts:    Opts{W: 128, H: 256, Font: make([]byte, FontSize)},
			wantErr: "exceed the controller frame height",
		},
		{
			name:    "short font",
			data:    goodData(),
			rst:     p(),
			opts:    Opts{W: 128, H: 64, Font: make([]byte, 16)},
			wantErr: "font table is 16 bytes",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, err := New(tc.data, p(), p(), p(), p(), tc.rst, &tc.opts)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("New() failed: %v", err)
				}
				if d == nil {
					t.Fatal("New() returned no device")
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("New() = %v, want error containing %q", err, tc.wantErr)
			}
		})
	}
}

// flatten turns controller-level records into the byte stream the bus should
// carry.
func flatten(records fakeController) []busByte {
	var out []busByte
	for _, r := range records {
		out = append(out, busByte{command: true, value: r.cmd})
		for _, b := range r.data {
			out = append(out, busByte{command: false, value: b})
		}
	}
	return out
}

func TestDevInit(t *testing.T) {
	d, log := testDev(t, testOpts(false))

	if err := d.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	got := decode(t, *log)
	var want fakeController
	initialize(&want, testOpts(false))
	if diff := cmp.Diff(got, flatten(want), cmp.AllowUnexported(busByte{})); diff != "" {
		t.Errorf("Init() bus stream difference (-got +want):\n%s", diff)
	}
	// The whole dialogue for a 128×64 panel is 3247 bytes: 27 of register
	// setup, 2056 for the character generator, 1162 to blank both layers
	// and 2 to switch on.
	if len(got) != 3247 {
		t.Errorf("Init() sent %d bytes, want 3247", len(got))
	}
}

func TestDevPutPixel(t *testing.T) {
	d, log := testDev(t, testOpts(false))

	if err := d.PutPixel(8, 1); err != nil {
		t.Fatalf("PutPixel() failed: %v", err)
	}

	got := decode(t, *log)
	want := []busByte{
		{command: true, value: csrw},
		{command: false, value: 0x91},
		{command: false, value: 0x00},
		{command: true, value: mwrite},
		{command: false, value: 0x80},
	}
	if diff := cmp.Diff(got, want, cmp.AllowUnexported(busByte{})); diff != "" {
		t.Errorf("PutPixel(8, 1) bus stream difference (-got +want):\n%s", diff)
	}
}

func TestDevDraw(t *testing.T) {
	font := make([]byte, FontSize)
	d, log := testDev(t, &Opts{W: 8, H: 8, Font: font})

	if err := d.Draw(d.Bounds(), image.White, image.Point{}); err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}

	got := decode(t, *log)
	want := []busByte{
		{command: true, value: csrw},
		{command: false, value: 0x01},
		{command: false, value: 0x00},
		{command: true, value: csrDirRight},
		{command: true, value: mwrite},
	}
	for i := 0; i < 8; i++ {
		want = append(want, busByte{command: false, value: 0xFF})
	}
	if diff := cmp.Diff(got, want, cmp.AllowUnexported(busByte{})); diff != "" {
		t.Errorf("Draw() bus stream difference (-got +want):\n%s", diff)
	}
}

func TestWriteImageLength(t *testing.T) {
	d, _ := testDev(t, testOpts(false))

	if err := d.WriteImage(make([]byte, 10)); err == nil {
		t.Error("WriteImage() accepted a short frame")
	}
}

func TestWriteReturnsCount(t *testing.T) {
	d, _ := testDev(t, testOpts(false))

	n, err := d.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if n != 5 {
		t.Errorf("Write() = %d, want 5", n)
	}

	n, err = d.WriteString("hi")
	if err != nil {
		t.Fatalf("WriteString() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("WriteString() = %d, want 2", n)
	}
}

func TestMoveTo(t *testing.T) {
	d, log := testDev(t, testOpts(false))

	for _, tc := range []struct{ row, col int }{
		{0, 1},
		{1, 0},
		{9, 1},
		{1, 17},
	} {
		if err := d.MoveTo(tc.row, tc.col); err == nil {
			t.Errorf("MoveTo(%d, %d) accepted an out of range cell", tc.row, tc.col)
		}
	}
	if len(*log) != 0 {
		t.Fatal("rejected MoveTo() calls touched the bus")
	}

	if err := d.MoveTo(1, 1); err != nil {
		t.Fatalf("MoveTo(1, 1) failed: %v", err)
	}
	got := decode(t, *log)
	want := []busByte{
		{command: true, value: csrw},
		{command: false, value: 0x00},
		{command: false, value: 0x00},
		{command: true, value: csrDirRight},
	}
	if diff := cmp.Diff(got, want, cmp.AllowUnexported(busByte{})); diff != "" {
		t.Errorf("MoveTo(1, 1) bus stream difference (-got +want):\n%s", diff)
	}
}

func TestTextDisplayGeometry(t *testing.T) {
	d, _ := testDev(t, testOpts(false))

	if got := d.Cols(); got != 16 {
		t.Errorf("Cols() = %d, want 16", got)
	}
	if got := d.Rows(); got != 8 {
		t.Errorf("Rows() = %d, want 8", got)
	}
	if d.MinCol() != 1 || d.MinRow() != 1 {
		t.Errorf("MinCol(), MinRow() = %d, %d, want 1, 1", d.MinCol(), d.MinRow())
	}
}

func TestNotImplemented(t *testing.T) {
	d, _ := testDev(t, testOpts(false))

	if err := d.Move(display.Forward); !errors.Is(err, display.ErrNotImplemented) {
		t.Errorf("Move() = %v, want display.ErrNotImplemented", err)
	}
	if err := d.Cursor(display.CursorOff); !errors.Is(err, display.ErrNotImplemented) {
		t.Errorf("Cursor() = %v, want display.ErrNotImplemented", err)
	}
	if err := d.AutoScroll(true); !errors.Is(err, display.ErrNotImplemented) {
		t.Errorf("AutoScroll() = %v, want display.ErrNotImplemented", err)
	}
}

func TestString(t *testing.T) {
	d, _ := testDev(t, testOpts(false))

	if got := d.String(); got != "ra8835.Dev{128x64}" {
		t.Errorf("String() = %q", got)
	}
}

func TestHaltBlanksBothLayers(t *testing.T) {
	d, log := testDev(t, testOpts(false))

	if err := d.Halt(); err != nil {
		t.Fatalf("Halt() failed: %v", err)
	}

	got := decode(t, *log)
	var want fakeController
	clearGraphics(&want, testOpts(false))
	clearText(&want, testOpts(false))
	if diff := cmp.Diff(got, flatten(want), cmp.AllowUnexported(busByte{})); diff != "" {
		t.Errorf("Halt() bus stream difference (-got +want):\n%s", diff)
	}
}
