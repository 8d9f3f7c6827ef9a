// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ra8835

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"

	"periph.io/x/devices/v3/ra8835/image1bit"
)

// FontSize is the length of the character generator table consumed by Init:
// 256 glyphs of 8 rows, one byte per row, row 0 on top, MSB leftmost.
const FontSize = 256 * 8

// Opts holds the panel configuration. It is consumed by New and must not be
// changed afterwards.
type Opts struct {
	// W and H are the panel size in pixels. Both must be multiples of 8.
	W int
	H int
	// UpsideDown adapts the rendering to a panel mounted rotated by 180°.
	UpsideDown bool
	// Font is the character generator table uploaded during Init, addressed
	// as Font[glyph*8+row]. It must be FontSize bytes long.
	Font []byte
}

// Dev is a handle to a RA8835 connected over a bit-banged parallel bus.
//
// Dev is not safe for concurrent use; the caller must serialize access.
type Dev struct {
	data [8]gpio.PinOut // data[i] carries bit i of every byte
	wr   gpio.PinOut
	rd   gpio.PinOut
	cs   gpio.PinOut
	a0   gpio.PinOut
	rst  gpio.PinOut
	opts Opts
}

// New validates the configuration and returns a device handle. The chip is
// not touched until Init.
func New(data [8]gpio.PinOut, wr, rd, cs, a0, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	for i, p := range data {
		if p == nil {
			return nil, fmt.Errorf("ra8835: data pin %d is nil", i)
		}
	}
	ctrlPins := []struct {
		name string
		pin  gpio.PinOut
	}{{"wr", wr}, {"rd", rd}, {"cs", cs}, {"a0", a0}, {"rst", rst}}
	for _, p := range ctrlPins {
		if p.pin == nil {
			return nil, fmt.Errorf("ra8835: %s pin is nil", p.name)
		}
	}
	if opts.W <= 0 || opts.W%8 != 0 || opts.H <= 0 || opts.H%8 != 0 {
		return nil, fmt.Errorf("ra8835: panel size %d×%d is not a multiple of 8", opts.W, opts.H)
	}
	if opts.W/8 > 256 {
		return nil, fmt.Errorf("ra8835: %d columns exceed the controller line length", opts.W)
	}
	if opts.H > 255 {
		return nil, fmt.Errorf("ra8835: %d rows exceed the controller frame height", opts.H)
	}
	if len(opts.Font) != FontSize {
		return nil, fmt.Errorf("ra8835: font table is %d bytes, want %d", len(opts.Font), FontSize)
	}
	return &Dev{
		data: data,
		wr:   wr,
		rd:   rd,
		cs:   cs,
		a0:   a0,
		rst:  rst,
		opts: *opts,
	}, nil
}

// Init resets the chip, configures the layer layout, uploads the character
// generator, blanks both layers and switches the display on.
func (d *Dev) Init() error {
	if err := d.reset(); err != nil {
		return err
	}
	eh := errorHandler{d: d}
	initialize(&eh, &d.opts)
	return eh.err
}

// Clear zeroes the graphics layer. The text layer is left alone; use
// TextClear for that.
func (d *Dev) Clear() error {
	eh := errorHandler{d: d}
	clearGraphics(&eh, &d.opts)
	return eh.err
}

// TextClear blanks every text cell and leaves the cursor at the home cell.
func (d *Dev) TextClear() error {
	eh := errorHandler{d: d}
	clearText(&eh, &d.opts)
	return eh.err
}

// TextHome moves the text cursor to the top-left cell.
func (d *Dev) TextHome() error {
	return d.TextSetCursor(0, 0)
}

// TextSetCursor points the text cursor at the cell (col, row), zero based.
// A cell is 8×8 pixels; col counts up to W/8, row up to H/8.
func (d *Dev) TextSetCursor(col, row int) error {
	eh := errorHandler{d: d}
	setTextCursor(&eh, &d.opts, col, row)
	return eh.err
}

// TextWrite stores one glyph code at the cursor cell and advances the
// cursor.
func (d *Dev) TextWrite(c byte) error {
	eh := errorHandler{d: d}
	writeText(&eh, []byte{c})
	return eh.err
}

// Write streams glyph codes to the text layer starting at the cursor. It
// implements io.Writer so the display can serve as a sink for formatted
// output.
func (d *Dev) Write(p []byte) (int, error) {
	eh := errorHandler{d: d}
	writeText(&eh, p)
	if eh.err != nil {
		return 0, eh.err
	}
	return len(p), nil
}

// WriteString streams a string to the text layer starting at the cursor.
func (d *Dev) WriteString(text string) (int, error) {
	return d.Write([]byte(text))
}

// WriteImage blits a full frame onto the graphics layer. img holds W/8
// bytes per row, H rows, MSB leftmost. The UpsideDown transform is applied
// during the transfer, the buffer stays in logical order.
func (d *Dev) WriteImage(img []byte) error {
	if len(img) != d.opts.graphicsSize() {
		return fmt.Errorf("ra8835: image is %d bytes, want %d", len(img), d.opts.graphicsSize())
	}
	eh := errorHandler{d: d}
	writeImage(&eh, &d.opts, img)
	return eh.err
}

// PutPixel sets the pixel at (x, y). The write replaces the whole display
// RAM byte holding the pixel, clearing up to seven neighbours: the bus is
// write only, so there is nothing to merge with. Coordinates are panel
// native, the UpsideDown transform is not applied.
func (d *Dev) PutPixel(x, y int) error {
	eh := errorHandler{d: d}
	putPixel(&eh, &d.opts, x, y)
	return eh.err
}

// Line draws a segment from (x1, y1) to (x2, y2). On mostly-horizontal
// segments pixels sharing a display RAM byte are coalesced into single
// writes; mostly-vertical segments go pixel by pixel. Like PutPixel it
// writes whole bytes into panel-native coordinates.
func (d *Dev) Line(x1, y1, x2, y2 int) error {
	eh := errorHandler{d: d}
	drawLine(&eh, &d.opts, x1, y1, x2, y2)
	return eh.err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.opts.W, d.opts.H)
}

// Draw implements display.Drawer. The source is converted to 1 bit per
// pixel and sent as a full frame; dstRect limits where the source lands,
// the transfer always covers the whole graphics layer.
func (d *Dev) Draw(dstRect image.Rectangle, src image.Image, srcPts image.Point) error {
	next := image1bit.NewHorizontalMSB(d.Bounds())
	draw.Draw(next, dstRect.Intersect(d.Bounds()), src, srcPts, draw.Src)
	return d.WriteImage(next.Pix)
}

// Cols returns the width of the text layer in cells.
func (d *Dev) Cols() int {
	return d.opts.W / 8
}

// Rows returns the height of the text layer in cells.
func (d *Dev) Rows() int {
	return d.opts.H / 8
}

// MinCol returns the first cell column accepted by MoveTo.
func (d *Dev) MinCol() int {
	return 1
}

// MinRow returns the first cell row accepted by MoveTo.
func (d *Dev) MinRow() int {
	return 1
}

// Home moves the text cursor to (MinRow(), MinCol()).
func (d *Dev) Home() error {
	return d.TextHome()
}

// MoveTo moves the text cursor to the given 1-based cell.
func (d *Dev) MoveTo(row, col int) error {
	if row < d.MinRow() || row > d.Rows() || col < d.MinCol() || col > d.Cols() {
		return fmt.Errorf("ra8835: MoveTo(%d, %d) out of range", row, col)
	}
	return d.TextSetCursor(col-1, row-1)
}

// Move implements display.TextDisplay. Only absolute addressing via MoveTo
// is wired.
func (d *Dev) Move(dir display.CursorDirection) error {
	return fmt.Errorf("ra8835: %w", display.ErrNotImplemented)
}

// Cursor implements display.TextDisplay. The hardware cursor stays hidden.
func (d *Dev) Cursor(mode ...display.CursorMode) error {
	return fmt.Errorf("ra8835: %w", display.ErrNotImplemented)
}

// AutoScroll implements display.TextDisplay.
func (d *Dev) AutoScroll(enabled bool) error {
	return fmt.Errorf("ra8835: %w", display.ErrNotImplemented)
}

// String implements conn.Resource.
func (d *Dev) String() string {
	return fmt.Sprintf("ra8835.Dev{%dx%d}", d.opts.W, d.opts.H)
}

// Halt implements conn.Resource. It blanks both layers; the chip keeps
// scanning the panel and a power cycle fully resets it.
func (d *Dev) Halt() error {
	eh := errorHandler{d: d}
	clearGraphics(&eh, &d.opts)
	clearText(&eh, &d.opts)
	return eh.err
}

var _ display.Drawer = &Dev{}
var _ display.TextDisplay = &Dev{}
var _ conn.Resource = &Dev{}
