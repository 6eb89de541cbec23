//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"

	"lcdgfx/display"
	"lcdgfx/gfx"
)

const (
	ili9488Width  = 320
	ili9488Height = 320
)

// ILI9488 drives the PicoCalc panel over SPI1. Row-major iterators stream
// straight into the controller's address window; column-major ones fall
// back to one window per pixel.
type ILI9488 struct {
	display.Primitives

	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	tx  []byte
	n   int
	gen uint32

	backlight func(level uint8) error
}

func newILI9488(backlight func(uint8) error) (*ILI9488, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("SPI1 unavailable")
	}

	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})

	d := &ILI9488{
		spi:       *machine.SPI1,
		cs:        machine.GP13,
		dc:        machine.GP14,
		rst:       machine.GP15,
		tx:        make([]byte, 4096),
		backlight: backlight,
	}
	d.Primitives = display.NewPrimitives(d)

	for _, p := range []machine.Pin{d.cs, d.dc, d.rst} {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.High()
	}

	d.reset()
	d.init()
	return d, nil
}

func (d *ILI9488) reset() {
	d.rst.Low()
	time.Sleep(64 * time.Millisecond)
	d.rst.High()
	time.Sleep(140 * time.Millisecond)
}

func (d *ILI9488) init() {
	d.cmd(0xC0, 0x17, 0x15)             // PWCTRL1
	d.cmd(0xC1, 0x41)                   // PWCTRL2
	d.cmd(0xC5, 0x00, 0x12, 0x80, 0x40) // VMCTRL
	d.cmd(0x3A, 0x55)                   // COLMOD: 16bpp
	d.cmd(0xB1, 0xA0, 0x11)             // FRMCTRL1
	d.cmd(0xB6, 0x02, 0x22, 0x27)       // DISCTRL (320 lines)
	d.cmd(0x21)                         // INVON

	// Mirror for the PicoCalc wiring, BGR panel order.
	d.cmd(0x36, 0x40|0x04|0x08) // MADCTL: MX|MH|BGR

	d.cmd(0x11) // SLPOUT
	time.Sleep(120 * time.Millisecond)
	d.cmd(0x29) // DISPON
}

func (d *ILI9488) cmd(cmd byte, data ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

// window opens the address window p1..p2 for a memory write.
func (d *ILI9488) window(p1, p2 gfx.Point) {
	d.cmd(0x2A, byte(p1.X>>8), byte(p1.X), byte(p2.X>>8), byte(p2.X))
	d.cmd(0x2B, byte(p1.Y>>8), byte(p1.Y), byte(p2.Y>>8), byte(p2.Y))
	d.cmd(0x2C)
}

// flush sends buffered pixel data; the controller expects big-endian RGB565.
func (d *ILI9488) flush() {
	if d.n == 0 {
		return
	}
	d.cs.Low()
	d.dc.High()
	d.spi.Tx(d.tx[:d.n], nil)
	d.cs.High()
	d.n = 0
}

func (d *ILI9488) push(c gfx.Color) {
	d.tx[d.n] = byte(c >> 8)
	d.tx[d.n+1] = byte(c)
	d.n += 2
	if d.n == len(d.tx) {
		d.flush()
	}
}

func (d *ILI9488) Size() (w, h int16) { return ili9488Width, ili9488Height }

func (d *ILI9488) Update() error {
	d.flush()
	return nil
}

func (d *ILI9488) TurnOn()  { d.cmd(0x29) }
func (d *ILI9488) TurnOff() { d.cmd(0x28) }

func (d *ILI9488) SetBrightness(level int) {
	if d.backlight == nil {
		return
	}
	_ = d.backlight(uint8(level * 255 / 100))
}

// ClearRect streams one color into the window instead of going through an
// iterator.
func (d *ILI9488) ClearRect(p1, p2 gfx.Point, c gfx.Color) {
	if p1.X > p2.X {
		p1.X, p2.X = p2.X, p1.X
	}
	if p1.Y > p2.Y {
		p1.Y, p2.Y = p2.Y, p1.Y
	}
	r := gfx.R(p1, p2).Intersect(gfx.Screen(d.Size()))
	if r.Empty() {
		return
	}
	d.flush()
	d.gen++
	d.window(r.Min, r.Max)
	for i := int(r.Dx()) * int(r.Dy()); i > 0; i-- {
		d.push(c)
	}
	d.flush()
}

func (d *ILI9488) Clear(c gfx.Color) {
	d.ClearRect(gfx.Pt(0, 0), gfx.Pt(ili9488Width-1, ili9488Height-1), c)
}

func (d *ILI9488) Begin(p1, p2 gfx.Point, dir gfx.Direction) gfx.PixelIterator {
	d.flush()
	d.gen++
	if !gfx.ValidWindow(p1, p2, ili9488Width, ili9488Height) {
		return gfx.EmptyIterator
	}
	if dir == gfx.RD {
		d.window(p1, p2)
	}
	return &ili9488Iterator{Window: gfx.NewWindow(p1, p2, dir), d: d, gen: d.gen}
}

type ili9488Iterator struct {
	gfx.Window
	d   *ILI9488
	gen uint32
}

func (it *ili9488Iterator) Put(c gfx.Color) {
	if it.Done() || it.gen != it.d.gen {
		return
	}
	if it.Dir == gfx.DR {
		p := gfx.Pt(it.X, it.Y)
		it.d.window(p, p)
	}
	it.d.push(c)
	if it.Dir == gfx.DR {
		it.d.flush()
	}
	it.Advance()
	if it.Done() {
		it.d.flush()
	}
}

var (
	_ display.Backend = (*ILI9488)(nil)
	_ display.Power   = (*ILI9488)(nil)
)
