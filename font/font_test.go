package font

import (
	"errors"
	"image/color"
	"testing"

	"lcdgfx/framebuf"
	"lcdgfx/gfx"
)

// plainFont is 3 pixels wide, 5 high, glyphs for A-C and 0-1.
func plainFont(t *testing.T) *Font {
	t.Helper()
	data := []uint16{
		0b11110, 0b00101, 0b11110, // A
		0b11111, 0b10101, 0b01010, // B
		0b01110, 0b10001, 0b10001, // C
		0b11111, 0b10001, 0b11111, // 0
		0b00000, 0b11111, 0b00000, // 1
	}
	f, err := New(Desc{
		Ranges: []Range{{'A', 'C'}, {'0', '1'}},
		Height: 5,
		Width:  3,
	}, data)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

// aaFont is a variable-width 2 bits per pixel font, 6 high, glyphs for a-d.
func aaFont(t *testing.T, wide bool) *Font {
	t.Helper()
	widths := []uint8{2, 4, 1, 3}
	offsets := make([]uint16, len(widths))
	n := 0
	for i, w := range widths {
		offsets[i] = uint16(n)
		n += int(w)
	}
	desc := Desc{
		Ranges:      []Range{{'a', 'd'}},
		Height:      6,
		Widths:      widths,
		Offsets:     offsets,
		Antialiased: true,
	}
	var seed uint32 = 0x9E3779B9
	next := func() uint32 {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		return seed & 0xFFF
	}
	var (
		f   *Font
		err error
	)
	if wide {
		data := make([]uint64, n)
		for i := range data {
			data[i] = uint64(next())
		}
		f, err = New(desc, data)
	} else {
		data := make([]uint32, n)
		for i := range data {
			data[i] = next()
		}
		f, err = New(desc, data)
	}
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func TestNewRejectsUnsupportedLayouts(t *testing.T) {
	cases := []struct {
		name string
		desc Desc
		data any
		want error
	}{
		{"16-bit antialiased", Desc{Ranges: []Range{{'a', 'a'}}, Height: 4, Width: 1, Antialiased: true}, []uint16{0}, ErrUnsupported},
		{"64-bit plain", Desc{Ranges: []Range{{'a', 'a'}}, Height: 4, Widths: []uint8{1}, Offsets: []uint16{0}}, []uint64{0}, ErrUnsupported},
		{"64-bit fixed", Desc{Ranges: []Range{{'a', 'a'}}, Height: 4, Width: 1, Antialiased: true}, []uint64{0}, ErrUnsupported},
		{"bytes", Desc{Ranges: []Range{{'a', 'a'}}, Height: 4, Width: 1}, []byte{0}, ErrUnsupported},
		{"too tall", Desc{Ranges: []Range{{'a', 'a'}}, Height: 9, Width: 1, Antialiased: true}, []uint16{0}, ErrUnsupported},
		{"too tall plain", Desc{Ranges: []Range{{'a', 'a'}}, Height: 17, Width: 1}, []uint16{0}, ErrInvalid},
		{"short data", Desc{Ranges: []Range{{'a', 'c'}}, Height: 4, Width: 2}, []uint16{0, 0, 0}, ErrInvalid},
		{"no ranges", Desc{Height: 4, Width: 1}, []uint16{0}, ErrInvalid},
		{"inverted range", Desc{Ranges: []Range{{'z', 'a'}}, Height: 4, Width: 1}, []uint16{0}, ErrInvalid},
		{"width count", Desc{Ranges: []Range{{'a', 'b'}}, Height: 4, Widths: []uint8{1}, Offsets: []uint16{0}}, []uint32{0}, ErrInvalid},
		{"offset past data", Desc{Ranges: []Range{{'a', 'a'}}, Height: 4, Widths: []uint8{2}, Offsets: []uint16{1}}, []uint32{0, 0}, ErrInvalid},
	}
	for _, tc := range cases {
		if _, err := New(tc.desc, tc.data); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestGlyphIndex(t *testing.T) {
	f := plainFont(t)
	cases := map[rune]int{'A': 0, 'C': 2, '0': 3, '1': 4, 'Z': 0, 'é': 0}
	for r, want := range cases {
		if got := f.GlyphIndex(r); got != want {
			t.Fatalf("%q: expected glyph %d, got %d", r, want, got)
		}
	}
}

func TestCalculateLength(t *testing.T) {
	f := plainFont(t)
	for _, s := range []string{"", "A", "AB01", "ÀÉ?", "Привет"} {
		n := 0
		for range s {
			n++
		}
		if got := f.CalculateLength(s); got != n*3 {
			t.Fatalf("%q: expected %d, got %d", s, n*3, got)
		}
	}

	v := aaFont(t, false)
	// 'z' is missing and measures as glyph 0 ('a', width 2).
	if got := v.CalculateLength("abzd"); got != 2+4+2+3 {
		t.Fatalf("expected 11, got %d", got)
	}
}

func TestDrawPlain(t *testing.T) {
	f := plainFont(t)
	fb := framebuf.NewRGB565(12, 6)
	fb.Clear(gfx.Blue)
	pal := GeneratePalette(gfx.White, gfx.Black)
	f.Draw(fb, pal, gfx.Pt(1, 1), "A1")

	// A's first column is 0b11110: rows 1..4 set, row 0 clear.
	if fb.Pixel(gfx.Pt(1, 1)) != gfx.Black {
		t.Fatal("expected background at A column 0 row 0")
	}
	for y := int16(2); y <= 5; y++ {
		if fb.Pixel(gfx.Pt(1, y)) != gfx.White {
			t.Fatalf("expected foreground at (1,%d)", y)
		}
	}
	// '1' starts at x=4 with an empty column.
	if fb.Pixel(gfx.Pt(4, 3)) != gfx.Black || fb.Pixel(gfx.Pt(5, 3)) != gfx.White {
		t.Fatal("unexpected second glyph")
	}
	if fb.Pixel(gfx.Pt(7, 3)) != gfx.Blue || fb.Pixel(gfx.Pt(0, 3)) != gfx.Blue {
		t.Fatal("drew outside the text")
	}
}

func TestDrawStopsAtRightEdge(t *testing.T) {
	f := plainFont(t)
	fb := framebuf.NewRGB565(8, 5)
	fb.Clear(gfx.Blue)
	f.Draw(fb, GeneratePalette(gfx.White, gfx.Black), gfx.Pt(0, 0), "ABC")
	for y := int16(0); y < 5; y++ {
		if fb.Pixel(gfx.Pt(6, y)) != gfx.Blue || fb.Pixel(gfx.Pt(7, y)) != gfx.Blue {
			t.Fatal("glyph crossing the right edge was drawn")
		}
	}
	if fb.Pixel(gfx.Pt(5, 1)) == gfx.Blue {
		t.Fatal("second glyph missing")
	}
}

func TestClippedDrawMatchesCrop(t *testing.T) {
	const sentinel = gfx.Magenta
	fonts := map[string]*Font{
		"plain": plainFont(t),
		"aa32":  aaFont(t, false),
		"aa64":  aaFont(t, true),
	}
	texts := map[string]string{"plain": "AB0C1", "aa32": "abcdab", "aa64": "dcbaa"}
	pal := Palette{gfx.Black, gfx.Red, gfx.Green, gfx.White}
	p := gfx.Pt(3, 4)
	for name, f := range fonts {
		text := texts[name]
		full := framebuf.NewRGB565(32, 16)
		full.Clear(sentinel)
		f.Draw(full, pal, p, text)

		for k := int16(0); k < f.Height(); k++ {
			for _, clip := range []gfx.Rect{
				{Min: gfx.Pt(0, p.Y+k), Max: gfx.Pt(31, 15)},
				{Min: gfx.Pt(5, p.Y+k), Max: gfx.Pt(9, p.Y+f.Height()-2)},
				{Min: gfx.Pt(4, 0), Max: gfx.Pt(4, p.Y+k)},
				{Min: gfx.Pt(7, p.Y+k), Max: gfx.Pt(30, p.Y+k)},
			} {
				got := framebuf.NewRGB565(32, 16)
				got.Clear(sentinel)
				f.DrawClipped(got, pal, p, clip.Min, clip.Max, text)
				for y := int16(0); y < 16; y++ {
					for x := int16(0); x < 32; x++ {
						pt := gfx.Pt(x, y)
						want := sentinel
						if clip.Contains(pt) {
							want = full.Pixel(pt)
						}
						if c := got.Pixel(pt); c != want {
							t.Fatalf("%s k=%d clip %v: pixel %v is %#04x, expected %#04x", name, k, clip, pt, c, want)
						}
					}
				}
			}
		}
	}
}

func TestGeneratePaletteChannels(t *testing.T) {
	pal := GeneratePalette(gfx.Red, gfx.Black)
	for i, c := range pal {
		if c&^gfx.RedMask != 0 {
			t.Fatalf("entry %d %#04x leaks out of the red channel", i, c)
		}
	}
	if pal[0] != gfx.Black || pal[3] != gfx.Red {
		t.Fatalf("unexpected end points %#04x %#04x", pal[0], pal[3])
	}
	if pal[1] != gfx.Color(10)<<11 || pal[2] != gfx.Color(20)<<11 {
		t.Fatalf("unexpected steps %#04x %#04x", pal[1], pal[2])
	}

	// Blending blue over green must not carry into red.
	pal = GeneratePalette(gfx.Blue, gfx.Green)
	for i, c := range pal {
		if c&gfx.RedMask != 0 {
			t.Fatalf("entry %d %#04x has red bits", i, c)
		}
	}
	if g := (pal[1] & gfx.GreenMask) >> 5; g != 42 {
		t.Fatalf("expected green 42 at 1/3, got %d", g)
	}
	if b := pal[2] & gfx.BlueMask; b != 20 {
		t.Fatalf("expected blue 20 at 2/3, got %d", b)
	}
}

type pixelRecorder struct {
	w, h int16
	set  map[[2]int16]color.RGBA
}

func (p *pixelRecorder) Size() (int16, int16) { return p.w, p.h }
func (p *pixelRecorder) SetPixel(x, y int16, c color.RGBA) {
	p.set[[2]int16{x, y}] = c
}
func (p *pixelRecorder) Display() error { return nil }

func TestFonterDrawsOnBaseline(t *testing.T) {
	f := plainFont(t)
	fr := f.Fonter()
	if fr.GetYAdvance() != 5 {
		t.Fatalf("expected y advance 5, got %d", fr.GetYAdvance())
	}
	g := fr.GetGlyph('1')
	info := g.Info()
	if info.Width != 3 || info.XAdvance != 3 || info.YOffset != -4 {
		t.Fatalf("unexpected glyph info %+v", info)
	}
	rec := &pixelRecorder{w: 20, h: 20, set: map[[2]int16]color.RGBA{}}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	g.Draw(rec, 10, 10, white)
	// '1' is a single full column in the middle.
	if len(rec.set) != 5 {
		t.Fatalf("expected 5 pixels, got %d", len(rec.set))
	}
	for y := int16(6); y <= 10; y++ {
		if rec.set[[2]int16{11, y}] != white {
			t.Fatalf("missing pixel at (11,%d)", y)
		}
	}
}
