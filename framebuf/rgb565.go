package framebuf

import (
	"sync"

	"lcdgfx/gfx"
	"lcdgfx/raster"
)

// RGB565 is a 16 bits per pixel framebuffer, little-endian, row-major.
//
// Drawing goes to a back buffer. Update publishes it to a front buffer that
// a presenter (a simulator window, a DMA transfer) reads with Snapshot from
// another goroutine.
type RGB565 struct {
	w, h   int16
	stride int
	buf    []byte
	scan   []gfx.Color
	gen    uint32

	mu      sync.Mutex
	front   []byte
	frames  uint64
	present func(front []byte) error
}

// NewRGB565 allocates a w×h framebuffer.
func NewRGB565(w, h int16) *RGB565 {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	stride := int(w) * 2
	return &RGB565{
		w:      w,
		h:      h,
		stride: stride,
		buf:    make([]byte, stride*int(h)),
		front:  make([]byte, stride*int(h)),
		scan:   make([]gfx.Color, w),
	}
}

// OnPresent installs a hook Update calls with the freshly published front
// buffer, while still holding the lock.
func (f *RGB565) OnPresent(fn func(front []byte) error) {
	f.mu.Lock()
	f.present = fn
	f.mu.Unlock()
}

func (f *RGB565) Size() (w, h int16) { return f.w, f.h }

// StrideBytes is the length of one row in bytes.
func (f *RGB565) StrideBytes() int { return f.stride }

// Bytes exposes the back buffer.
func (f *RGB565) Bytes() []byte { return f.buf }

// Update publishes the back buffer.
func (f *RGB565) Update() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.buf)
	f.frames++
	if f.present != nil {
		return f.present(f.front)
	}
	return nil
}

// Snapshot copies the last published frame into dst and returns its
// sequence number.
func (f *RGB565) Snapshot(dst []byte) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
	return f.frames
}

// Pixel reads back the back buffer at p; Black outside.
func (f *RGB565) Pixel(p gfx.Point) gfx.Color {
	if !p.In(f.w, f.h) {
		return gfx.Black
	}
	i := int(p.Y)*f.stride + int(p.X)*2
	return gfx.Color(f.buf[i]) | gfx.Color(f.buf[i+1])<<8
}

// SetPixel writes one pixel; out of range points are ignored.
func (f *RGB565) SetPixel(p gfx.Point, c gfx.Color) {
	if !p.In(f.w, f.h) {
		return
	}
	f.set(int(p.Y)*f.stride+int(p.X)*2, c)
}

func (f *RGB565) set(i int, c gfx.Color) {
	f.buf[i] = byte(c)
	f.buf[i+1] = byte(c >> 8)
}

// Clear fills the whole screen.
func (f *RGB565) Clear(c gfx.Color) { fillPairs(f.buf, c) }

// ClearRect fills p1..p2, clipped to the screen.
func (f *RGB565) ClearRect(p1, p2 gfx.Point, c gfx.Color) {
	r, ok := clipRect(p1, p2, f.w, f.h)
	if !ok {
		return
	}
	f.fill(r, c)
}

func (f *RGB565) fill(r gfx.Rect, c gfx.Color) {
	if r.Min.X == r.Max.X {
		i := int(r.Min.Y)*f.stride + int(r.Min.X)*2
		for y := r.Min.Y; y <= r.Max.Y; y++ {
			f.set(i, c)
			i += f.stride
		}
		return
	}
	x0 := int(r.Min.X) * 2
	x1 := int(r.Max.X)*2 + 2
	for y := int(r.Min.Y); y <= int(r.Max.Y); y++ {
		fillPairs(f.buf[y*f.stride+x0:y*f.stride+x1], c)
	}
}

// Line draws a-b with fast paths for horizontal and vertical lines.
func (f *RGB565) Line(a, b gfx.Point, c gfx.Color) {
	if a.X == b.X || a.Y == b.Y {
		if p1, p2, ok := raster.ClipAxisLine(a, b, f.w, f.h); ok {
			f.fill(gfx.R(p1, p2), c)
		}
		return
	}
	raster.DrawLine(f, a, b, c)
}

// DrawRectangle outlines a..b.
func (f *RGB565) DrawRectangle(a, b gfx.Point, c gfx.Color) {
	raster.DrawRectangle(f, a, b, c)
}

// ScanLineBuffer returns a screen-wide scratch row.
func (f *RGB565) ScanLineBuffer() []gfx.Color { return f.scan }

// ScanLine writes colors on row p.Y starting at p.X.
func (f *RGB565) ScanLine(p gfx.Point, colors []gfx.Color) {
	p, colors, ok := clipScanLine(p, colors, f.w, f.h)
	if !ok {
		return
	}
	f.writeRow(p.X, p.Y, colors)
}

func (f *RGB565) writeRow(x, y int16, row []gfx.Color) {
	i := int(y)*f.stride + int(x)*2
	for _, c := range row {
		f.buf[i] = byte(c)
		f.buf[i+1] = byte(c >> 8)
		i += 2
	}
}

// DrawImage draws img at p, clipped to the screen.
func (f *RGB565) DrawImage(p gfx.Point, img gfx.Image) {
	blit(f, p, gfx.Screen(f.w, f.h), img, f.scan)
}

// ClippedDrawImage draws img at p showing only the part inside a..b.
func (f *RGB565) ClippedDrawImage(p, a, b gfx.Point, img gfx.Image) {
	clip, ok := clipRect(a, b, f.w, f.h)
	if !ok {
		return
	}
	blit(f, p, clip, img, f.scan)
}

// Begin opens a pixel iterator on p1..p2.
func (f *RGB565) Begin(p1, p2 gfx.Point, dir gfx.Direction) gfx.PixelIterator {
	it, ok := f.Iterator(p1, p2, dir)
	if !ok {
		return gfx.EmptyIterator
	}
	return it
}

// Iterator is Begin returning the concrete iterator.
func (f *RGB565) Iterator(p1, p2 gfx.Point, dir gfx.Direction) (*RGB565Iterator, bool) {
	f.gen++
	if !gfx.ValidWindow(p1, p2, f.w, f.h) {
		return nil, false
	}
	return &RGB565Iterator{Window: gfx.NewWindow(p1, p2, dir), fb: f, gen: f.gen}, true
}

// RGB565Iterator writes pixels into an RGB565 window.
type RGB565Iterator struct {
	gfx.Window
	fb  *RGB565
	gen uint32
}

// Put writes one pixel and advances; stale or finished iterators drop it.
func (it *RGB565Iterator) Put(c gfx.Color) {
	if it.Done() || it.gen != it.fb.gen {
		return
	}
	it.fb.set(int(it.Y)*it.fb.stride+int(it.X)*2, c)
	it.Advance()
}

// fillPairs stores c little-endian into every pixel of b.
func fillPairs(b []byte, c gfx.Color) {
	if len(b) < 2 {
		return
	}
	b[0] = byte(c)
	b[1] = byte(c >> 8)
	for n := 2; n < len(b); n *= 2 {
		copy(b[n:], b[:n])
	}
}
