package framebuf

import (
	"fmt"

	"lcdgfx/gfx"
	"lcdgfx/raster"
)

// Packing selects how two 4-bit pixels share a byte and how bytes pair up.
// Controllers differ: SSD1322 wants the left pixel in the high nibble,
// others want it low or expect 16-bit words in swapped byte order.
type Packing uint8

const (
	// PackingNormal puts even pixels in the high nibble.
	PackingNormal Packing = iota
	// PackingSwapNibbles puts even pixels in the low nibble.
	PackingSwapNibbles
	// PackingSwapBytes exchanges the two bytes of every 16-bit word.
	PackingSwapBytes
	// PackingSwapBoth combines both swaps.
	PackingSwapBoth
)

func (p Packing) String() string {
	switch p {
	case PackingNormal:
		return "normal"
	case PackingSwapNibbles:
		return "swap-nibbles"
	case PackingSwapBytes:
		return "swap-bytes"
	case PackingSwapBoth:
		return "swap-both"
	default:
		return fmt.Sprintf("Packing(%d)", uint8(p))
	}
}

// Gray4 is a 4 bits per pixel grayscale framebuffer, row-major, two pixels
// per byte.
//
// A color maps to a level by taking bits 1..4 of its RGB565 value, i.e. the
// upper four bits of the blue channel. Callers pass gray colors with the
// level placed there (see Level565); this keeps the per-pixel conversion to a
// shift and a mask.
type Gray4 struct {
	w, h   int16
	buf    []byte
	scan   []gfx.Color
	gen    uint32
	pack   Packing
	shift  [2]uint8 // nibble shift for even and odd linear pixel index
	xor    int      // applied to byte offsets
	stride int      // bytes per row, valid when vstep
	vstep  bool     // a column step is a constant byte offset
}

// NewGray4 allocates a w×h framebuffer with the given packing.
func NewGray4(w, h int16, pack Packing) *Gray4 {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := (int(w)*int(h) + 1) / 2
	// byte swapping operates on whole words
	n += n & 1
	g := &Gray4{
		w:    w,
		h:    h,
		buf:  make([]byte, n),
		scan: make([]gfx.Color, w),
		pack: pack,
	}
	switch pack {
	case PackingSwapNibbles, PackingSwapBoth:
		g.shift = [2]uint8{0, 4}
	default:
		g.shift = [2]uint8{4, 0}
	}
	if pack == PackingSwapBytes || pack == PackingSwapBoth {
		g.xor = 1
	}
	if w%2 == 0 {
		g.stride = int(w) / 2
		g.vstep = g.xor == 0 || g.stride%2 == 0
	}
	return g
}

// conv1 maps a color to a 4-bit level.
func conv1(c gfx.Color) uint8 { return uint8(c>>1) & 0x0F }

// conv2 maps a color to a byte holding the level in both nibbles.
func conv2(c gfx.Color) byte { return conv1(c) * 0x11 }

// Level565 returns the color that Gray4 maps to level (0..15).
func Level565(level uint8) gfx.Color { return gfx.Color(level&0x0F) << 1 }

func (g *Gray4) Size() (w, h int16) { return g.w, g.h }

// Packing returns the layout chosen at construction.
func (g *Gray4) Packing() Packing { return g.pack }

// Bytes exposes the backing buffer.
func (g *Gray4) Bytes() []byte { return g.buf }

// Update is a no-op: the buffer is the display.
func (g *Gray4) Update() error { return nil }

// Level reads back the 4-bit level at p; 0 outside the screen.
func (g *Gray4) Level(p gfx.Point) uint8 {
	if !p.In(g.w, g.h) {
		return 0
	}
	i := int(p.Y)*int(g.w) + int(p.X)
	return (g.buf[(i>>1)^g.xor] >> g.shift[i&1]) & 0x0F
}

// Pixel reads back p as the color Level565 maps its level to.
func (g *Gray4) Pixel(p gfx.Point) gfx.Color { return Level565(g.Level(p)) }

// SetPixel writes one pixel; out of range points are ignored.
func (g *Gray4) SetPixel(p gfx.Point, c gfx.Color) {
	if !p.In(g.w, g.h) {
		return
	}
	g.set(int(p.Y)*int(g.w)+int(p.X), conv1(c))
}

func (g *Gray4) set(i int, v uint8) {
	b := (i >> 1) ^ g.xor
	s := g.shift[i&1]
	g.buf[b] = g.buf[b]&^(0x0F<<s) | v<<s
}

// Clear fills the whole screen.
func (g *Gray4) Clear(c gfx.Color) { fillBytes(g.buf, conv2(c)) }

// ClearRect fills p1..p2, clipped to the screen.
func (g *Gray4) ClearRect(p1, p2 gfx.Point, c gfx.Color) {
	r, ok := clipRect(p1, p2, g.w, g.h)
	if !ok {
		return
	}
	g.fill(r, c)
}

func (g *Gray4) fill(r gfx.Rect, c gfx.Color) {
	if r.Min.X == r.Max.X && g.vstep {
		g.column(r.Min.X, r.Min.Y, r.Max.Y, conv1(c))
		return
	}
	if r.Min.X == 0 && r.Max.X == g.w-1 {
		// whole rows are one contiguous run
		g.run(int(r.Min.Y)*int(g.w), int(r.Dy())*int(g.w), conv1(c))
		return
	}
	n := int(r.Dx())
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		g.run(int(y)*int(g.w)+int(r.Min.X), n, conv1(c))
	}
}

// run fills n pixels from linear index i. The aligned middle is stored a
// byte at a time; with swapped bytes the unit is a whole 16-bit word so the
// physical byte range equals the logical one.
func (g *Gray4) run(i, n int, v uint8) {
	unit := 2
	if g.xor != 0 {
		unit = 4
	}
	for n > 0 && i%unit != 0 {
		g.set(i, v)
		i++
		n--
	}
	if body := n / unit * unit; body > 0 {
		fillBytes(g.buf[i/2:(i+body)/2], v*0x11)
		i += body
		n -= body
	}
	for ; n > 0; n-- {
		g.set(i, v)
		i++
	}
}

// column fills x, y0..y1. Every row step adds the same byte offset and
// keeps the nibble, so the mask is computed once.
func (g *Gray4) column(x, y0, y1 int16, v uint8) {
	i := int(y0)*int(g.w) + int(x)
	b := (i >> 1) ^ g.xor
	s := g.shift[i&1]
	mask := byte(0x0F) << s
	val := v << s
	for y := y0; y <= y1; y++ {
		g.buf[b] = g.buf[b]&^mask | val
		b += g.stride
	}
}

// Line draws a-b with fast paths for horizontal and vertical lines.
func (g *Gray4) Line(a, b gfx.Point, c gfx.Color) {
	if a.X == b.X || a.Y == b.Y {
		if p1, p2, ok := raster.ClipAxisLine(a, b, g.w, g.h); ok {
			g.fill(gfx.R(p1, p2), c)
		}
		return
	}
	raster.DrawLine(g, a, b, c)
}

// DrawRectangle outlines a..b.
func (g *Gray4) DrawRectangle(a, b gfx.Point, c gfx.Color) {
	raster.DrawRectangle(g, a, b, c)
}

// ScanLineBuffer returns a screen-wide scratch row.
func (g *Gray4) ScanLineBuffer() []gfx.Color { return g.scan }

// ScanLine writes colors on row p.Y starting at p.X.
func (g *Gray4) ScanLine(p gfx.Point, colors []gfx.Color) {
	p, colors, ok := clipScanLine(p, colors, g.w, g.h)
	if !ok {
		return
	}
	g.writeRow(p.X, p.Y, colors)
}

func (g *Gray4) writeRow(x, y int16, row []gfx.Color) {
	i := int(y)*int(g.w) + int(x)
	for _, c := range row {
		g.set(i, conv1(c))
		i++
	}
}

// DrawImage draws img at p, clipped to the screen.
func (g *Gray4) DrawImage(p gfx.Point, img gfx.Image) {
	blit(g, p, gfx.Screen(g.w, g.h), img, g.scan)
}

// ClippedDrawImage draws img at p showing only the part inside a..b.
func (g *Gray4) ClippedDrawImage(p, a, b gfx.Point, img gfx.Image) {
	clip, ok := clipRect(a, b, g.w, g.h)
	if !ok {
		return
	}
	blit(g, p, clip, img, g.scan)
}

// Begin opens a pixel iterator on p1..p2.
func (g *Gray4) Begin(p1, p2 gfx.Point, dir gfx.Direction) gfx.PixelIterator {
	it, ok := g.Iterator(p1, p2, dir)
	if !ok {
		return gfx.EmptyIterator
	}
	return it
}

// Iterator is Begin returning the concrete iterator.
func (g *Gray4) Iterator(p1, p2 gfx.Point, dir gfx.Direction) (*Gray4Iterator, bool) {
	g.gen++
	if !gfx.ValidWindow(p1, p2, g.w, g.h) {
		return nil, false
	}
	return &Gray4Iterator{Window: gfx.NewWindow(p1, p2, dir), fb: g, gen: g.gen}, true
}

// Gray4Iterator writes pixels into a Gray4 window.
type Gray4Iterator struct {
	gfx.Window
	fb  *Gray4
	gen uint32
}

// Put writes one pixel and advances; stale or finished iterators drop it.
func (it *Gray4Iterator) Put(c gfx.Color) {
	if it.Done() || it.gen != it.fb.gen {
		return
	}
	it.fb.set(int(it.Y)*int(it.fb.w)+int(it.X), conv1(c))
	it.Advance()
}
