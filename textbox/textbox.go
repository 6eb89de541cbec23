// Package textbox lays out text inside a rectangle, wrapping lines by
// character or by word.
package textbox

import (
	"unicode/utf8"

	"lcdgfx/font"
	"lcdgfx/gfx"
)

// Wrap selects where lines break.
type Wrap uint8

const (
	// CharWrap breaks at the last character that fits.
	CharWrap Wrap = iota
	// WordWrap breaks after the last space that fits, falling back to
	// CharWrap for words longer than a line.
	WordWrap
)

// Margins are inset from the box edges, in pixels.
type Margins struct {
	Top, Bottom, Left, Right int16
}

// Options control layout.
type Options struct {
	Wrap Wrap
	// ClearBackground fills every part of the box not covered by glyphs
	// with the text background color.
	ClearBackground bool
	Margins         Margins
	// LineSpacing is the gap between lines in pixels.
	LineSpacing int16
}

// Target is the drawing surface a text box needs; *display.DrawingContext
// implements it.
type Target interface {
	Font() *font.Font
	TextColor() (fg, bg gfx.Color)
	ClippedWrite(p, a, b gfx.Point, text string)
	ClearRect(p1, p2 gfx.Point, c gfx.Color)
}

// Draw lays text out in the box p0..p1 and returns the byte offset of the
// first character not completely drawn: len(text) when everything fit,
// otherwise the start of the first line that was clipped or left out. The
// last line is drawn clipped when only part of it fits.
func Draw(dc Target, p0, p1 gfx.Point, text string, opts Options) int {
	f := dc.Font()
	_, bg := dc.TextColor()
	m := opts.Margins
	in := gfx.R(gfx.Pt(p0.X+m.Left, p0.Y+m.Top), gfx.Pt(p1.X-m.Right, p1.Y-m.Bottom))
	if opts.ClearBackground {
		clearMargins(dc, gfx.R(p0, p1), in, bg)
	}
	if in.Empty() {
		return 0
	}
	width := int(in.Dx())
	fh := f.Height()
	spacing := max(opts.LineSpacing, 0)

	y := in.Min.Y
	i := 0
	for i < len(text) {
		if y > in.Max.Y {
			return i
		}
		end, next := breakLine(f, text, i, width, opts.Wrap)
		bottom := min(int(y)+int(fh)-1, int(in.Max.Y))
		line := text[i:end]
		dc.ClippedWrite(gfx.Pt(in.Min.X, y), gfx.Pt(in.Min.X, y), gfx.Pt(in.Max.X, int16(bottom)), line)
		if opts.ClearBackground {
			if lw := f.CalculateLength(line); lw < width {
				dc.ClearRect(gfx.Pt(in.Min.X+int16(lw), y), gfx.Pt(in.Max.X, int16(bottom)), bg)
			}
			if gap := min(int(y)+int(fh)+int(spacing)-1, int(in.Max.Y)); gap > bottom {
				dc.ClearRect(gfx.Pt(in.Min.X, int16(bottom+1)), gfx.Pt(in.Max.X, int16(gap)), bg)
			}
		}
		if int(y)+int(fh)-1 > int(in.Max.Y) {
			return i
		}
		y += fh + spacing
		i = next
	}
	if opts.ClearBackground && y <= in.Max.Y {
		dc.ClearRect(gfx.Pt(in.Min.X, y), in.Max, bg)
	}
	return len(text)
}

// breakLine finds the line starting at byte i. end is where the drawn text
// stops; next is where the following line starts, past a consumed newline or
// breaking space.
func breakLine(f *font.Font, text string, i, width int, wrap Wrap) (end, next int) {
	w := 0
	space := -1
	j := i
	for j < len(text) {
		r, size := utf8.DecodeRuneInString(text[j:])
		if r == '\n' {
			return j, j + size
		}
		gw := int(f.GlyphWidth(r))
		if w+gw > width && j > i {
			if wrap == WordWrap && space >= 0 {
				return space, space + 1
			}
			return j, j
		}
		if r == ' ' {
			space = j
		}
		w += gw
		j += size
	}
	return j, j
}

func clearMargins(dc Target, box, in gfx.Rect, bg gfx.Color) {
	if box.Empty() {
		return
	}
	if in.Empty() {
		dc.ClearRect(box.Min, box.Max, bg)
		return
	}
	if in.Min.Y > box.Min.Y {
		dc.ClearRect(box.Min, gfx.Pt(box.Max.X, in.Min.Y-1), bg)
	}
	if in.Max.Y < box.Max.Y {
		dc.ClearRect(gfx.Pt(box.Min.X, in.Max.Y+1), box.Max, bg)
	}
	if in.Min.X > box.Min.X {
		dc.ClearRect(gfx.Pt(box.Min.X, in.Min.Y), gfx.Pt(in.Min.X-1, in.Max.Y), bg)
	}
	if in.Max.X < box.Max.X {
		dc.ClearRect(gfx.Pt(in.Max.X+1, in.Min.Y), gfx.Pt(box.Max.X, in.Max.Y), bg)
	}
}
