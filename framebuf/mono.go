package framebuf

import (
	"lcdgfx/gfx"
	"lcdgfx/raster"
)

// Mono is a 1 bit per pixel framebuffer in SSD1306 page order: byte
// x+(y/8)*width holds the 8 vertically stacked pixels of column x, with the
// top pixel in bit 0. Any non-black color sets a pixel.
type Mono struct {
	w, h int16
	buf  []byte
	scan []gfx.Color
	gen  uint32
}

// NewMono allocates a w×h framebuffer. The height is rounded up to a whole
// page of 8 rows in the backing buffer.
func NewMono(w, h int16) *Mono {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	pages := (int(h) + 7) / 8
	return &Mono{
		w:    w,
		h:    h,
		buf:  make([]byte, int(w)*pages),
		scan: make([]gfx.Color, w),
	}
}

func monoOn(c gfx.Color) bool { return c != gfx.Black }

func (m *Mono) Size() (w, h int16) { return m.w, m.h }

// Bytes exposes the backing buffer, e.g. for a controller's page writes.
func (m *Mono) Bytes() []byte { return m.buf }

// Update is a no-op: the buffer is the display.
func (m *Mono) Update() error { return nil }

// Bit reports the raw state of an in-bounds pixel; false outside.
func (m *Mono) Bit(p gfx.Point) bool {
	if !p.In(m.w, m.h) {
		return false
	}
	return m.buf[int(p.X)+int(p.Y>>3)*int(m.w)]&(1<<uint(p.Y&7)) != 0
}

// Pixel reads back a pixel as White or Black.
func (m *Mono) Pixel(p gfx.Point) gfx.Color {
	if m.Bit(p) {
		return gfx.White
	}
	return gfx.Black
}

// SetPixel writes one pixel; out of range points are ignored.
func (m *Mono) SetPixel(p gfx.Point, c gfx.Color) {
	if !p.In(m.w, m.h) {
		return
	}
	m.setPixel(p.X, p.Y, monoOn(c))
}

func (m *Mono) setPixel(x, y int16, on bool) {
	i := int(x) + int(y>>3)*int(m.w)
	bit := byte(1) << uint(y&7)
	if on {
		m.buf[i] |= bit
	} else {
		m.buf[i] &^= bit
	}
}

// Clear fills the whole screen.
func (m *Mono) Clear(c gfx.Color) {
	var v byte
	if monoOn(c) {
		v = 0xFF
	}
	fillBytes(m.buf, v)
}

// ClearRect fills the rectangle p1..p2, clipped to the screen.
func (m *Mono) ClearRect(p1, p2 gfx.Point, c gfx.Color) {
	r, ok := clipRect(p1, p2, m.w, m.h)
	if !ok {
		return
	}
	m.fill(r, monoOn(c))
}

// fill walks the pages r touches. Whole pages become byte stores; partial
// pages apply one constant mask to each column byte.
func (m *Mono) fill(r gfx.Rect, on bool) {
	w := int(m.w)
	x0, x1 := int(r.Min.X), int(r.Max.X)
	for page := int(r.Min.Y) >> 3; page <= int(r.Max.Y)>>3; page++ {
		top := page * 8
		mask := byte(0xFF)
		if int(r.Min.Y) > top {
			mask &= 0xFF << uint(int(r.Min.Y)-top)
		}
		if int(r.Max.Y) < top+7 {
			mask &= 0xFF >> uint(top+7-int(r.Max.Y))
		}
		row := m.buf[page*w+x0 : page*w+x1+1]
		switch {
		case mask == 0xFF && on:
			fillBytes(row, 0xFF)
		case mask == 0xFF:
			fillBytes(row, 0)
		case on:
			for i := range row {
				row[i] |= mask
			}
		default:
			for i := range row {
				row[i] &^= mask
			}
		}
	}
}

// Line draws a-b. Horizontal and vertical lines are clipped and filled a
// page at a time; other lines go through SetPixel.
func (m *Mono) Line(a, b gfx.Point, c gfx.Color) {
	if a.X == b.X || a.Y == b.Y {
		if p1, p2, ok := raster.ClipAxisLine(a, b, m.w, m.h); ok {
			m.fill(gfx.R(p1, p2), monoOn(c))
		}
		return
	}
	raster.DrawLine(m, a, b, c)
}

// DrawRectangle outlines a..b.
func (m *Mono) DrawRectangle(a, b gfx.Point, c gfx.Color) {
	raster.DrawRectangle(m, a, b, c)
}

// ScanLineBuffer returns a screen-wide scratch row for ScanLine callers.
func (m *Mono) ScanLineBuffer() []gfx.Color { return m.scan }

// ScanLine writes colors on row p.Y starting at p.X.
func (m *Mono) ScanLine(p gfx.Point, colors []gfx.Color) {
	p, colors, ok := clipScanLine(p, colors, m.w, m.h)
	if !ok {
		return
	}
	m.writeRow(p.X, p.Y, colors)
}

func (m *Mono) writeRow(x, y int16, row []gfx.Color) {
	i := int(x) + int(y>>3)*int(m.w)
	bit := byte(1) << uint(y&7)
	for _, c := range row {
		if monoOn(c) {
			m.buf[i] |= bit
		} else {
			m.buf[i] &^= bit
		}
		i++
	}
}

// DrawImage draws img with its upper left corner at p, clipped to the screen.
func (m *Mono) DrawImage(p gfx.Point, img gfx.Image) {
	blit(m, p, gfx.Screen(m.w, m.h), img, m.scan)
}

// ClippedDrawImage draws img at p showing only the part inside a..b.
func (m *Mono) ClippedDrawImage(p, a, b gfx.Point, img gfx.Image) {
	clip, ok := clipRect(a, b, m.w, m.h)
	if !ok {
		return
	}
	blit(m, p, clip, img, m.scan)
}

// Begin opens a pixel iterator on p1..p2.
func (m *Mono) Begin(p1, p2 gfx.Point, dir gfx.Direction) gfx.PixelIterator {
	it, ok := m.Iterator(p1, p2, dir)
	if !ok {
		return gfx.EmptyIterator
	}
	return it
}

// Iterator is Begin returning the concrete iterator, for callers that want
// to avoid interface calls per pixel.
func (m *Mono) Iterator(p1, p2 gfx.Point, dir gfx.Direction) (*MonoIterator, bool) {
	m.gen++
	if !gfx.ValidWindow(p1, p2, m.w, m.h) {
		return nil, false
	}
	return &MonoIterator{Window: gfx.NewWindow(p1, p2, dir), fb: m, gen: m.gen}, true
}

// MonoIterator writes pixels into a Mono window.
type MonoIterator struct {
	gfx.Window
	fb  *Mono
	gen uint32
}

// Put writes one pixel and advances. Writes through a stale iterator or past
// the end are dropped.
func (it *MonoIterator) Put(c gfx.Color) {
	if it.Done() || it.gen != it.fb.gen {
		return
	}
	it.fb.setPixel(it.X, it.Y, monoOn(c))
	it.Advance()
}

// fillBytes sets every byte of b to v.
func fillBytes(b []byte, v byte) {
	if len(b) == 0 {
		return
	}
	b[0] = v
	for n := 1; n < len(b); n *= 2 {
		copy(b[n:], b[:n])
	}
}
