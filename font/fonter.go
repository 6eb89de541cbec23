package font

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Fonter adapts f to tinyfont so tinyfont and tinyterm can draw it on any
// drivers.Displayer. The baseline sits on the glyph's bottom row.
//
// The returned value reuses one glyph between GetGlyph calls and is not safe
// for concurrent use; f itself is.
func (f *Font) Fonter() tinyfont.Fonter {
	return &fonter{font: f, glyph: glyph{font: f}}
}

// BaselineOffset is the distance from the cell top to the baseline used by
// Fonter, the value tinyterm expects as its font offset.
func (f *Font) BaselineOffset() int16 { return f.Height() - 1 }

type fonter struct {
	font  *Font
	glyph glyph
}

func (a *fonter) GetYAdvance() uint8 { return a.font.desc.Height }

func (a *fonter) GetGlyph(r rune) tinyfont.Glypher {
	a.glyph.r = r
	a.glyph.index = a.font.GlyphIndex(r)
	return &a.glyph
}

type glyph struct {
	font  *Font
	r     rune
	index int
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	w := uint8(g.font.width(g.index))
	h := g.font.desc.Height
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    w,
		Height:   h,
		XAdvance: w,
		XOffset:  0,
		YOffset:  -int8(h - 1),
	}
}

// Draw sets the glyph's pixels with its baseline at y. Background pixels are
// left alone; antialiased steps are drawn as dimmed versions of c.
func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	f := g.font
	top := y - f.BaselineOffset()
	w := int(f.width(g.index))
	h := int16(f.desc.Height)
	for col := 0; col < w; col++ {
		v := f.column(g.index, col)
		for row := int16(0); row < h; row++ {
			var level uint64
			if f.desc.Antialiased {
				level = v & 3
				v >>= 2
			} else {
				level = (v & 1) * 3
				v >>= 1
			}
			switch level {
			case 3:
				display.SetPixel(x+int16(col), top+row, c)
			case 2:
				display.SetPixel(x+int16(col), top+row, scaleRGBA(c, 240))
			case 1:
				display.SetPixel(x+int16(col), top+row, scaleRGBA(c, 96))
			}
		}
	}
}

// scaleRGBA scales the RGB channels by factor/255, keeping alpha.
func scaleRGBA(c color.RGBA, factor uint8) color.RGBA {
	f := uint16(factor)
	return color.RGBA{
		R: uint8((uint16(c.R) * f) / 255),
		G: uint8((uint16(c.G) * f) / 255),
		B: uint8((uint16(c.B) * f) / 255),
		A: c.A,
	}
}
