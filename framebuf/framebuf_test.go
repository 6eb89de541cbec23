package framebuf

import (
	"bytes"
	"testing"

	"lcdgfx/gfx"
)

type testImage struct {
	w, h int16
	pix  []gfx.Color
}

func (m *testImage) Size() (int16, int16) { return m.w, m.h }

func (m *testImage) ScanLine(x, y int16, dst []gfx.Color) {
	copy(dst, m.pix[int(y)*int(m.w)+int(x):])
}

type directImage struct{ testImage }

func (m *directImage) Pixels() []gfx.Color { return m.pix }

func newTestImage(w, h int16) *testImage {
	img := &testImage{w: w, h: h, pix: make([]gfx.Color, int(w)*int(h))}
	for i := range img.pix {
		img.pix[i] = gfx.Color(i + 1)
	}
	return img
}

var testRects = []gfx.Rect{
	{Min: gfx.Pt(0, 0), Max: gfx.Pt(0, 0)},
	{Min: gfx.Pt(3, 2), Max: gfx.Pt(9, 2)},
	{Min: gfx.Pt(5, 1), Max: gfx.Pt(5, 14)},
	{Min: gfx.Pt(1, 3), Max: gfx.Pt(14, 12)},
	{Min: gfx.Pt(0, 0), Max: gfx.Pt(15, 15)},
	{Min: gfx.Pt(2, 7), Max: gfx.Pt(6, 8)},
	{Min: gfx.Pt(0, 4), Max: gfx.Pt(15, 6)},
	{Min: gfx.Pt(7, 0), Max: gfx.Pt(8, 15)},
}

func TestMonoSetPixelFlipsOneBit(t *testing.T) {
	m := NewMono(16, 16)
	m.Clear(gfx.White)
	m.SetPixel(gfx.Pt(3, 5), gfx.Black)
	buf := m.Bytes()
	for i, b := range buf {
		want := byte(0xFF)
		if i == 3+(5/8)*16 {
			want = 0xFF &^ (1 << (5 & 7))
		}
		if b != want {
			t.Fatalf("byte %d: expected %#02x, got %#02x", i, want, b)
		}
	}
	if m.Pixel(gfx.Pt(3, 5)) != gfx.Black || m.Pixel(gfx.Pt(3, 6)) != gfx.White {
		t.Fatal("unexpected readback")
	}
}

func TestMonoBitAddressing(t *testing.T) {
	m := NewMono(10, 20)
	m.SetPixel(gfx.Pt(7, 13), gfx.Red)
	if m.Bytes()[7+1*10] != 1<<5 {
		t.Fatalf("expected bit 5 of byte 17, got %08b", m.Bytes()[17])
	}
	if len(m.Bytes()) != 30 {
		t.Fatalf("expected 3 pages of 10 bytes, got %d", len(m.Bytes()))
	}
}

func TestMonoFastPathsMatchSetPixel(t *testing.T) {
	for _, r := range testRects {
		for _, c := range []gfx.Color{gfx.White, gfx.Black} {
			fast := NewMono(16, 16)
			slow := NewMono(16, 16)
			fast.Clear(^c)
			slow.Clear(^c)
			fast.ClearRect(r.Max, r.Min, c)
			for y := r.Min.Y; y <= r.Max.Y; y++ {
				for x := r.Min.X; x <= r.Max.X; x++ {
					slow.SetPixel(gfx.Pt(x, y), c)
				}
			}
			if !bytes.Equal(fast.Bytes(), slow.Bytes()) {
				t.Fatalf("rect %v color %#04x: fast and slow paths differ", r, c)
			}
		}
	}
}

func TestMonoAxisLines(t *testing.T) {
	m := NewMono(16, 16)
	m.Line(gfx.Pt(-5, 9), gfx.Pt(30, 9), gfx.White)
	m.Line(gfx.Pt(2, 20), gfx.Pt(2, 3), gfx.White)
	for x := int16(0); x < 16; x++ {
		if !m.Bit(gfx.Pt(x, 9)) {
			t.Fatalf("horizontal line missing at x=%d", x)
		}
	}
	for y := int16(3); y < 16; y++ {
		if !m.Bit(gfx.Pt(2, y)) {
			t.Fatalf("vertical line missing at y=%d", y)
		}
	}
	if m.Bit(gfx.Pt(2, 2)) {
		t.Fatal("vertical line overshoots")
	}
}

func TestMonoIterator(t *testing.T) {
	m := NewMono(8, 8)
	it := m.Begin(gfx.Pt(1, 1), gfx.Pt(2, 3), gfx.DR)
	n := 0
	for !it.Done() {
		it.Put(gfx.White)
		n++
	}
	if n != 6 {
		t.Fatalf("expected 6 pixels, got %d", n)
	}
	it.Put(gfx.White)
	if m.Bit(gfx.Pt(3, 1)) {
		t.Fatal("put past the end was written")
	}
	if m.Begin(gfx.Pt(3, 3), gfx.Pt(2, 4), gfx.RD) != gfx.EmptyIterator {
		t.Fatal("expected empty iterator for an inverted window")
	}
	if m.Begin(gfx.Pt(0, 0), gfx.Pt(8, 0), gfx.RD) != gfx.EmptyIterator {
		t.Fatal("expected empty iterator for an off-screen window")
	}
}

func TestIteratorGoesStale(t *testing.T) {
	m := NewMono(8, 8)
	old := m.Begin(gfx.Pt(0, 0), gfx.Pt(7, 7), gfx.RD)
	cur := m.Begin(gfx.Pt(0, 7), gfx.Pt(7, 7), gfx.RD)
	old.Put(gfx.White)
	if m.Bit(gfx.Pt(0, 0)) {
		t.Fatal("stale iterator wrote a pixel")
	}
	cur.Put(gfx.White)
	if !m.Bit(gfx.Pt(0, 7)) {
		t.Fatal("current iterator did not write")
	}
}

func TestGray4Layout(t *testing.T) {
	cases := []struct {
		pack Packing
		idx  int
		want byte
	}{
		{PackingNormal, 0, 0xA5},
		{PackingSwapNibbles, 0, 0x5A},
		{PackingSwapBytes, 1, 0xA5},
		{PackingSwapBoth, 1, 0x5A},
	}
	for _, tc := range cases {
		g := NewGray4(8, 2, tc.pack)
		g.SetPixel(gfx.Pt(0, 0), Level565(0xA))
		g.SetPixel(gfx.Pt(1, 0), Level565(0x5))
		if got := g.Bytes()[tc.idx]; got != tc.want {
			t.Fatalf("%v: expected byte %d = %#02x, got %#02x", tc.pack, tc.idx, tc.want, got)
		}
		if g.Level(gfx.Pt(0, 0)) != 0xA || g.Level(gfx.Pt(1, 0)) != 0x5 {
			t.Fatalf("%v: unexpected readback", tc.pack)
		}
	}
}

func TestGray4ColorConversion(t *testing.T) {
	if conv1(gfx.Black) != 0 || conv1(gfx.White) != 0xF {
		t.Fatal("unexpected black/white levels")
	}
	// Only bits 1..4 of the packed color matter.
	if conv1(gfx.Red) != 0 || conv1(gfx.Blue) != 0xF {
		t.Fatalf("unexpected levels red=%d blue=%d", conv1(gfx.Red), conv1(gfx.Blue))
	}
	if conv2(Level565(3)) != 0x33 {
		t.Fatalf("expected 0x33, got %#02x", conv2(Level565(3)))
	}
}

func TestGray4FastPathsMatchSetPixel(t *testing.T) {
	packs := []Packing{PackingNormal, PackingSwapNibbles, PackingSwapBytes, PackingSwapBoth}
	widths := []int16{16, 18, 15}
	for _, pack := range packs {
		for _, w := range widths {
			for _, r := range testRects {
				fast := NewGray4(w, 16, pack)
				slow := NewGray4(w, 16, pack)
				fast.Clear(Level565(2))
				slow.Clear(Level565(2))
				c := Level565(0xC)
				fast.ClearRect(r.Min, r.Max, c)
				for y := r.Min.Y; y <= r.Max.Y; y++ {
					for x := r.Min.X; x <= r.Max.X && x < w; x++ {
						slow.SetPixel(gfx.Pt(x, y), c)
					}
				}
				if !bytes.Equal(fast.Bytes(), slow.Bytes()) {
					t.Fatalf("%v w=%d rect %v: fast and slow paths differ", pack, w, r)
				}
			}
		}
	}
}

func TestGray4Iterator(t *testing.T) {
	g := NewGray4(6, 4, PackingSwapBoth)
	it := g.Begin(gfx.Pt(1, 1), gfx.Pt(3, 2), gfx.RD)
	for lvl := uint8(1); !it.Done(); lvl++ {
		it.Put(Level565(lvl))
	}
	want := []uint8{1, 2, 3, 4, 5, 6}
	i := 0
	for y := int16(1); y <= 2; y++ {
		for x := int16(1); x <= 3; x++ {
			if got := g.Level(gfx.Pt(x, y)); got != want[i] {
				t.Fatalf("(%d,%d): expected level %d, got %d", x, y, want[i], got)
			}
			i++
		}
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	f := NewRGB565(4, 3)
	f.Clear(gfx.Cyan)
	f.SetPixel(gfx.Pt(2, 1), gfx.Magenta)
	if f.Pixel(gfx.Pt(2, 1)) != gfx.Magenta || f.Pixel(gfx.Pt(0, 0)) != gfx.Cyan {
		t.Fatal("unexpected readback")
	}
	i := 1*f.StrideBytes() + 2*2
	if f.Bytes()[i] != 0x1F || f.Bytes()[i+1] != 0xF8 {
		t.Fatalf("expected little-endian 0xF81F, got %#02x %#02x", f.Bytes()[i], f.Bytes()[i+1])
	}
}

func TestRGB565UpdatePublishes(t *testing.T) {
	f := NewRGB565(2, 2)
	var presented int
	f.OnPresent(func(front []byte) error {
		presented++
		return nil
	})
	f.Clear(gfx.White)
	dst := make([]byte, 8)
	if seq := f.Snapshot(dst); seq != 0 || dst[0] != 0 {
		t.Fatal("snapshot saw an unpublished frame")
	}
	if err := f.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if seq := f.Snapshot(dst); seq != 1 || dst[0] != 0xFF {
		t.Fatalf("expected frame 1, got %d", seq)
	}
	if presented != 1 {
		t.Fatalf("expected one present, got %d", presented)
	}
}

func TestDrawImageClipping(t *testing.T) {
	src := newTestImage(4, 4)
	for _, img := range []gfx.Image{src, &directImage{*src}} {
		f := NewRGB565(6, 6)
		f.DrawImage(gfx.Pt(-1, 3), img)
		// image pixel (1,0) lands on (0,3)
		if got := f.Pixel(gfx.Pt(0, 3)); got != src.pix[1] {
			t.Fatalf("%T: expected %d at (0,3), got %d", img, src.pix[1], got)
		}
		if got := f.Pixel(gfx.Pt(2, 5)); got != src.pix[2*4+3] {
			t.Fatalf("%T: expected %d at (2,5), got %d", img, src.pix[11], got)
		}
		if f.Pixel(gfx.Pt(3, 3)) != gfx.Black {
			t.Fatalf("%T: drew past the image", img)
		}

		g := NewRGB565(6, 6)
		g.ClippedDrawImage(gfx.Pt(0, 0), gfx.Pt(1, 1), gfx.Pt(2, 2), img)
		for y := int16(0); y < 4; y++ {
			for x := int16(0); x < 4; x++ {
				in := x >= 1 && x <= 2 && y >= 1 && y <= 2
				got := g.Pixel(gfx.Pt(x, y))
				if in && got != src.pix[int(y)*4+int(x)] || !in && got != gfx.Black {
					t.Fatalf("%T: clipped draw wrong at (%d,%d)", img, x, y)
				}
			}
		}
	}
}

func TestScanLineClipping(t *testing.T) {
	f := NewRGB565(4, 2)
	f.ScanLine(gfx.Pt(-2, 1), []gfx.Color{1, 2, 3, 4, 5, 6, 7})
	for x, want := range []gfx.Color{3, 4, 5, 6} {
		if got := f.Pixel(gfx.Pt(int16(x), 1)); got != want {
			t.Fatalf("x=%d: expected %d, got %d", x, want, got)
		}
	}
	f.ScanLine(gfx.Pt(0, 2), []gfx.Color{9})
	f.ScanLine(gfx.Pt(-3, 0), []gfx.Color{9, 9})
	if f.Pixel(gfx.Pt(0, 0)) != gfx.Black {
		t.Fatal("off-screen scanline was drawn")
	}
}
