package font

import "lcdgfx/gfx"

type word interface {
	~uint16 | ~uint32 | ~uint64
}

// putColumns writes rows pixels of each column word, top to bottom, after
// dropping the first shift bits.
func putColumns[W word](it gfx.PixelIterator, cols []W, shift, rows uint, aa bool, pal *Palette) {
	for _, w := range cols {
		v := uint64(w) >> shift
		if aa {
			for r := uint(0); r < rows; r++ {
				it.Put(pal[v&3])
				v >>= 2
			}
			continue
		}
		for r := uint(0); r < rows; r++ {
			if v&1 != 0 {
				it.Put(pal[3])
			} else {
				it.Put(pal[0])
			}
			v >>= 1
		}
	}
}

// drawGlyph emits columns c0..c1 of glyph g into a DR iterator.
func (f *Font) drawGlyph(it gfx.PixelIterator, g, c0, c1 int, shift, rows uint, pal *Palette) {
	lo := f.offset(g) + c0
	hi := f.offset(g) + c1 + 1
	aa := f.desc.Antialiased
	switch f.bits {
	case 16:
		putColumns(it, f.d16[lo:hi], shift, rows, aa, pal)
	case 32:
		putColumns(it, f.d32[lo:hi], shift, rows, aa, pal)
	default:
		putColumns(it, f.d64[lo:hi], shift, rows, aa, pal)
	}
}

// Draw writes text with its upper left corner at p. Text that does not fit
// vertically is not drawn; drawing stops at the first glyph crossing the
// right edge. Use DrawClipped for partial glyphs.
func (f *Font) Draw(s gfx.Surface, pal Palette, p gfx.Point, text string) {
	sw, sh := s.Size()
	h := f.Height()
	if p.Y < 0 || int(p.Y)+int(h) > int(sh) {
		return
	}
	x := int(p.X)
	for _, r := range text {
		g := f.GlyphIndex(r)
		w := int(f.width(g))
		if x+w > int(sw) {
			return
		}
		if w > 0 && x >= 0 {
			it := s.Begin(gfx.Pt(int16(x), p.Y), gfx.Pt(int16(x+w-1), p.Y+h-1), gfx.DR)
			f.drawGlyph(it, g, 0, w-1, 0, uint(h), &pal)
		}
		x += w
	}
}

// DrawClipped writes text at p showing only the part inside the rectangle
// a..b. Glyphs left of a.X are skipped, the first visible one is drawn from
// its first visible column, rows above a.Y are shifted out of each column.
func (f *Font) DrawClipped(s gfx.Surface, pal Palette, p, a, b gfx.Point, text string) {
	sw, sh := s.Size()
	clip := gfx.R(a, b).Intersect(gfx.Screen(sw, sh))
	if clip.Empty() {
		return
	}
	h := int(f.Height())
	y0 := max(int(p.Y), int(clip.Min.Y))
	y1 := min(int(p.Y)+h-1, int(clip.Max.Y))
	if y0 > y1 {
		return
	}
	shift := uint(y0-int(p.Y)) * uint(f.bpp)
	rows := uint(y1 - y0 + 1)

	x := int(p.X)
	for _, r := range text {
		if x > int(clip.Max.X) {
			return
		}
		g := f.GlyphIndex(r)
		w := int(f.width(g))
		if w == 0 || x+w-1 < int(clip.Min.X) {
			x += w
			continue
		}
		c0 := max(0, int(clip.Min.X)-x)
		c1 := min(w-1, int(clip.Max.X)-x)
		it := s.Begin(gfx.Pt(int16(x+c0), int16(y0)), gfx.Pt(int16(x+c1), int16(y1)), gfx.DR)
		f.drawGlyph(it, g, c0, c1, shift, rows, &pal)
		x += w
	}
}
