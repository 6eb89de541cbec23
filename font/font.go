// Package font rasterizes compiled bitmap fonts through the pixel iterator
// protocol.
//
// Glyph data is column-major: each column of a glyph is one data word whose
// least significant bits hold the top pixel. Plain fonts use one bit per
// pixel, antialiased fonts two bits (a palette index, 0 background to 3
// foreground). Data words are 16, 32 or 64 bits wide; a glyph's height times
// its bits per pixel must fit one word.
package font

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned for word size and antialiasing combinations
	// that are not built: 16-bit words carry plain fonts only, 64-bit words
	// antialiased variable-width fonts only.
	ErrUnsupported = errors.New("font: unsupported data layout")
	// ErrInvalid is returned for descriptions inconsistent with their data.
	ErrInvalid = errors.New("font: invalid description")
)

// Range is an inclusive block of codepoints with glyphs.
type Range struct {
	First, Last rune
}

// Len is the number of codepoints in the block.
func (r Range) Len() int { return int(r.Last-r.First) + 1 }

// Desc describes a compiled font table.
type Desc struct {
	// Ranges are the supported blocks in glyph order. Glyph i of the font is
	// the i-th codepoint of the concatenated blocks.
	Ranges []Range
	Height uint8
	// Width is the glyph width of fixed-width fonts, 0 for variable width.
	Width uint8
	// Widths and Offsets give each glyph's width and first data word for
	// variable-width fonts.
	Widths      []uint8
	Offsets     []uint16
	Antialiased bool
}

// Font is an immutable compiled font. It is safe for concurrent use.
type Font struct {
	desc   Desc
	glyphs int
	bpp    uint8
	bits   uint8

	d16 []uint16
	d32 []uint32
	d64 []uint64
}

// New validates desc against data, a []uint16, []uint32 or []uint64 of
// column words.
func New(desc Desc, data any) (*Font, error) {
	f := &Font{desc: desc, bpp: 1}
	if desc.Antialiased {
		f.bpp = 2
	}
	var words int
	switch d := data.(type) {
	case []uint16:
		if desc.Antialiased {
			return nil, fmt.Errorf("%w: 16-bit antialiased", ErrUnsupported)
		}
		f.d16, f.bits, words = d, 16, len(d)
	case []uint32:
		f.d32, f.bits, words = d, 32, len(d)
	case []uint64:
		if !desc.Antialiased || desc.Width != 0 {
			return nil, fmt.Errorf("%w: 64-bit words need an antialiased variable-width font", ErrUnsupported)
		}
		f.d64, f.bits, words = d, 64, len(d)
	default:
		return nil, fmt.Errorf("%w: data type %T", ErrUnsupported, data)
	}

	if desc.Height == 0 || int(desc.Height)*int(f.bpp) > int(f.bits) {
		return nil, fmt.Errorf("%w: height %d does not fit %d-bit words", ErrInvalid, desc.Height, f.bits)
	}
	if len(desc.Ranges) == 0 {
		return nil, fmt.Errorf("%w: no codepoint ranges", ErrInvalid)
	}
	for _, r := range desc.Ranges {
		if r.Last < r.First {
			return nil, fmt.Errorf("%w: inverted range %U-%U", ErrInvalid, r.First, r.Last)
		}
		f.glyphs += r.Len()
	}

	if desc.Width != 0 {
		if need := f.glyphs * int(desc.Width); words < need {
			return nil, fmt.Errorf("%w: %d glyphs of width %d need %d words, have %d",
				ErrInvalid, f.glyphs, desc.Width, need, words)
		}
		return f, nil
	}
	if len(desc.Widths) != f.glyphs || len(desc.Offsets) != f.glyphs {
		return nil, fmt.Errorf("%w: %d glyphs but %d widths and %d offsets",
			ErrInvalid, f.glyphs, len(desc.Widths), len(desc.Offsets))
	}
	for i, w := range desc.Widths {
		if end := int(desc.Offsets[i]) + int(w); end > words {
			return nil, fmt.Errorf("%w: glyph %d ends at word %d, have %d", ErrInvalid, i, end, words)
		}
	}
	return f, nil
}

// MustNew is New for tables compiled into the program.
func MustNew(desc Desc, data any) *Font {
	f, err := New(desc, data)
	if err != nil {
		panic(err)
	}
	return f
}

// Height is the glyph height in pixels.
func (f *Font) Height() int16 { return int16(f.desc.Height) }

// IsFixedWidth reports whether every glyph has the same width.
func (f *Font) IsFixedWidth() bool { return f.desc.Width != 0 }

// IsAntialiased reports whether glyphs carry 2 bits per pixel.
func (f *Font) IsAntialiased() bool { return f.desc.Antialiased }

// Glyphs is the number of glyphs in the table.
func (f *Font) Glyphs() int { return f.glyphs }

// Ranges returns the supported codepoint blocks.
func (f *Font) Ranges() []Range { return f.desc.Ranges }

// GlyphIndex maps r to its glyph. Codepoints outside every range map to
// glyph 0, the first codepoint of the first range.
func (f *Font) GlyphIndex(r rune) int {
	base := 0
	for _, rg := range f.desc.Ranges {
		if r >= rg.First && r <= rg.Last {
			return base + int(r-rg.First)
		}
		base += rg.Len()
	}
	return 0
}

// GlyphWidth is the width of the glyph drawn for r.
func (f *Font) GlyphWidth(r rune) int16 { return f.width(f.GlyphIndex(r)) }

func (f *Font) width(g int) int16 {
	if f.desc.Width != 0 {
		return int16(f.desc.Width)
	}
	return int16(f.desc.Widths[g])
}

func (f *Font) offset(g int) int {
	if f.desc.Width != 0 {
		return g * int(f.desc.Width)
	}
	return int(f.desc.Offsets[g])
}

// column returns column c of glyph g.
func (f *Font) column(g, c int) uint64 {
	i := f.offset(g) + c
	switch f.bits {
	case 16:
		return uint64(f.d16[i])
	case 32:
		return uint64(f.d32[i])
	default:
		return f.d64[i]
	}
}

// CalculateLength is the width in pixels of text drawn in one line.
func (f *Font) CalculateLength(text string) int {
	if f.desc.Width != 0 {
		n := 0
		for range text {
			n++
		}
		return n * int(f.desc.Width)
	}
	n := 0
	for _, r := range text {
		n += int(f.desc.Widths[f.GlyphIndex(r)])
	}
	return n
}
