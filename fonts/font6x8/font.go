// Package font6x8 is the built-in 6x8 monospace font with CP1251 coverage:
// printable ASCII, Cyrillic and the usual typographic extras.
package font6x8

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"lcdgfx/font"
)

const (
	Width  = 6
	Height = 8
)

// Font is the compiled table. Glyph 0 is the space.
var Font = font.MustNew(compile())

type glyph struct {
	r    rune
	cols [5]byte
}

// compile gathers every CP1251 byte with a bitmap, decodes it to its
// codepoint, and packs the glyphs in codepoint order into contiguous ranges.
func compile() (font.Desc, []uint16) {
	glyphs := make([]glyph, 0, len(ascii)+len(extended))
	for i, cols := range ascii {
		b := byte(0x20 + i)
		glyphs = append(glyphs, glyph{r: charmap.Windows1251.DecodeByte(b), cols: cols})
	}
	for b, art := range extended {
		cols, err := parseArt(art)
		if err != nil {
			panic(fmt.Sprintf("font6x8: byte %#02x: %v", b, err))
		}
		glyphs = append(glyphs, glyph{r: charmap.Windows1251.DecodeByte(b), cols: cols})
	}
	sort.Slice(glyphs, func(i, j int) bool { return glyphs[i].r < glyphs[j].r })

	var ranges []font.Range
	data := make([]uint16, 0, len(glyphs)*Width)
	for _, g := range glyphs {
		if n := len(ranges); n > 0 && ranges[n-1].Last+1 == g.r {
			ranges[n-1].Last = g.r
		} else {
			ranges = append(ranges, font.Range{First: g.r, Last: g.r})
		}
		for _, c := range g.cols {
			data = append(data, uint16(c))
		}
		// one blank column of letter spacing
		data = append(data, 0)
	}
	return font.Desc{Ranges: ranges, Height: Height, Width: Width}, data
}

// parseArt converts seven space separated rows of five cells ('X' set, '.'
// clear) into column bytes with the top row in bit 0.
func parseArt(art string) ([5]byte, error) {
	var cols [5]byte
	rows := strings.Fields(art)
	if len(rows) != 7 {
		return cols, fmt.Errorf("expected 7 rows, got %d", len(rows))
	}
	for y, row := range rows {
		if len(row) != 5 {
			return cols, fmt.Errorf("row %d: expected 5 cells, got %d", y, len(row))
		}
		for x := 0; x < 5; x++ {
			switch row[x] {
			case 'X':
				cols[x] |= 1 << y
			case '.':
			default:
				return cols, fmt.Errorf("row %d: bad cell %q", y, row[x])
			}
		}
	}
	return cols, nil
}
