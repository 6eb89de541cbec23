// Package facefont compiles golang.org/x/image font faces into font tables.
//
// Every glyph is rendered once at its advance width and the cell height of
// the face (ascent plus descent), then packed into column words: one bit per
// pixel for plain tables, the top two bits of coverage for antialiased ones.
package facefont

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"lcdgfx/font"
)

// Options control compilation.
type Options struct {
	// Antialiased keeps two bits of coverage per pixel.
	Antialiased bool
	// Threshold is the coverage (0..255) a plain pixel needs to be set;
	// 0 means 128.
	Threshold uint8
}

var errEmpty = errors.New("facefont: no glyphs")

// Table is a compiled font before validation: the description and its data
// words ([]uint16, []uint32 or []uint64).
type Table struct {
	Desc font.Desc
	Data any
}

// Compile renders ranges of face into a font.
func Compile(face xfont.Face, ranges []font.Range, opts Options) (*font.Font, error) {
	tab, err := Build(face, ranges, opts)
	if err != nil {
		return nil, err
	}
	return font.New(tab.Desc, tab.Data)
}

// Basic compiles basicfont.Face7x13 for printable ASCII.
func Basic() (*font.Font, error) {
	return Compile(basicfont.Face7x13, []font.Range{{First: 0x20, Last: 0x7E}}, Options{})
}

// Build renders ranges of face into column words. The word size is the
// smallest that holds a column; tables needing 64-bit words are emitted as
// variable width.
func Build(face xfont.Face, ranges []font.Range, opts Options) (Table, error) {
	var tab Table
	if face == nil {
		return tab, errors.New("facefont: nil face")
	}
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	if height <= 0 || height > 255 {
		return tab, fmt.Errorf("facefont: cell height %d out of range", height)
	}
	bpp := 1
	if opts.Antialiased {
		bpp = 2
	}
	bits := height * bpp
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = 128
	}

	var (
		cols    []uint64
		widths  []uint8
		offsets []uint16
		fixedW  = -1
	)
	for _, rg := range ranges {
		if rg.Last < rg.First {
			return tab, fmt.Errorf("facefont: inverted range %U-%U", rg.First, rg.Last)
		}
		for r := rg.First; r <= rg.Last; r++ {
			w, glyph := render(face, r, ascent, height)
			if w > 255 {
				return tab, fmt.Errorf("facefont: %U is %d pixels wide", r, w)
			}
			if len(cols) > 0xFFFF {
				return tab, fmt.Errorf("facefont: table exceeds %d columns", 0xFFFF)
			}
			offsets = append(offsets, uint16(len(cols)))
			widths = append(widths, uint8(w))
			switch {
			case fixedW == -1:
				fixedW = w
			case fixedW != w:
				fixedW = 0
			}
			for x := 0; x < w; x++ {
				cols = append(cols, packColumn(glyph, x, height, opts.Antialiased, threshold))
			}
		}
	}
	if len(widths) == 0 {
		return tab, errEmpty
	}

	tab.Desc = font.Desc{
		Ranges:      append([]font.Range(nil), ranges...),
		Height:      uint8(height),
		Antialiased: opts.Antialiased,
	}
	if fixedW > 0 && bits <= 32 {
		tab.Desc.Width = uint8(fixedW)
	} else {
		tab.Desc.Widths = widths
		tab.Desc.Offsets = offsets
	}

	switch {
	case bits <= 16 && !opts.Antialiased:
		tab.Data = narrow[uint16](cols)
	case bits <= 32:
		tab.Data = narrow[uint32](cols)
	case bits <= 64 && opts.Antialiased:
		tab.Data = cols
	default:
		return tab, fmt.Errorf("%w: %d-pixel cell at %d bits per pixel", font.ErrUnsupported, height, bpp)
	}
	return tab, nil
}

// render draws r into a fresh alpha mask one advance wide and returns the
// width in pixels.
func render(face xfont.Face, r rune, ascent, height int) (int, *image.Alpha) {
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		return 0, nil
	}
	w := adv.Round()
	if w <= 0 {
		return 0, nil
	}
	dst := image.NewAlpha(image.Rect(0, 0, w, height))
	dr, mask, maskp, _, ok := face.Glyph(fixed.P(0, ascent), r)
	if ok {
		draw.DrawMask(dst, dr, image.Opaque, image.Point{}, mask, maskp, draw.Over)
	}
	return w, dst
}

func packColumn(glyph *image.Alpha, x, height int, aa bool, threshold uint8) uint64 {
	var v uint64
	for y := 0; y < height; y++ {
		a := glyph.AlphaAt(x, y).A
		if aa {
			v |= uint64(a>>6) << (2 * y)
		} else if a >= threshold {
			v |= 1 << y
		}
	}
	return v
}

func narrow[W uint16 | uint32](cols []uint64) []W {
	out := make([]W, len(cols))
	for i, c := range cols {
		out[i] = W(c)
	}
	return out
}
