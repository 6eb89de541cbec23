package hal

import (
	"tinygo.org/x/drivers"

	"lcdgfx/display"
	"lcdgfx/gfx"
)

// DriverBackend drives any tinygo display driver through its SetPixel and
// FillRectangle, so every panel the drivers repository supports can host a
// Display. Update calls the driver's Display to flush buffered drivers.
type DriverBackend struct {
	display.Primitives
	dev drivers.Displayer
	gen uint32
}

func NewDriverBackend(dev drivers.Displayer) *DriverBackend {
	b := &DriverBackend{dev: dev}
	b.Primitives = display.NewPrimitives(b)
	return b
}

func (b *DriverBackend) Size() (w, h int16) { return b.dev.Size() }

func (b *DriverBackend) Update() error { return b.dev.Display() }

// ClearRect uses the driver's rectangle fill.
func (b *DriverBackend) ClearRect(p1, p2 gfx.Point, c gfx.Color) {
	if p1.X > p2.X {
		p1.X, p2.X = p2.X, p1.X
	}
	if p1.Y > p2.Y {
		p1.Y, p2.Y = p2.Y, p1.Y
	}
	w, h := b.Size()
	r := gfx.R(p1, p2).Intersect(gfx.Screen(w, h))
	if r.Empty() {
		return
	}
	_ = b.dev.FillRectangle(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), c.RGBA())
}

func (b *DriverBackend) Clear(c gfx.Color) {
	w, h := b.Size()
	b.ClearRect(gfx.Pt(0, 0), gfx.Pt(w-1, h-1), c)
}

func (b *DriverBackend) Begin(p1, p2 gfx.Point, dir gfx.Direction) gfx.PixelIterator {
	b.gen++
	w, h := b.Size()
	if !gfx.ValidWindow(p1, p2, w, h) {
		return gfx.EmptyIterator
	}
	return &driverIterator{Window: gfx.NewWindow(p1, p2, dir), b: b, gen: b.gen}
}

type driverIterator struct {
	gfx.Window
	b   *DriverBackend
	gen uint32
}

func (it *driverIterator) Put(c gfx.Color) {
	if it.Done() || it.gen != it.b.gen {
		return
	}
	it.b.dev.SetPixel(it.X, it.Y, c.RGBA())
	it.Advance()
}

var _ display.Backend = (*DriverBackend)(nil)
