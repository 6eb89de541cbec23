// Package raster contains the scanline state machines the rest of the stack
// is built on: a restartable Bresenham line stepper that reports one scanline
// per call, a triangle filler composed of two of them, and generic line and
// rectangle helpers for backends without a faster path.
package raster

import "lcdgfx/gfx"

// finished is the value of h once the line has been fully reported.
const finished = -1

// BresenhamFSM walks a line one scanline at a time, top to bottom.
//
// Shallow lines (|dx| > |dy|) may cover several pixels per scanline; steep
// lines cover exactly one. The x coordinates must be non-negative: they are
// indices into scanline buffers and h<0 marks the finished state.
type BresenhamFSM struct {
	d    int32 // error term
	v    int32 // added when the error term is positive
	w    int32 // added otherwise
	flag int8  // 0 shallow, +1 steep right, -1 steep left
	h    int16 // current x, or finished
	k    int16 // final x (shallow) or scanlines left (steep)
}

// NewBresenham builds the stepper for the segment a-b. The endpoints may be
// given in any order.
func NewBresenham(a, b gfx.Point) BresenhamFSM {
	if a.Y > b.Y {
		a, b = b, a
	}
	dx := int32(b.X) - int32(a.X)
	dy := int32(b.Y) - int32(a.Y)
	adx := dx
	if adx < 0 {
		adx = -adx
	}

	var f BresenhamFSM
	f.h = a.X
	if adx > dy {
		f.flag = 0
		f.k = b.X
		f.d = 2*dy - adx
		f.v = 2 * (dy - adx)
		f.w = 2 * dy
		return f
	}

	f.flag = 1
	if dx < 0 {
		f.flag = -1
	}
	f.k = int16(dy)
	f.d = 2*adx - dy
	f.v = 2 * (adx - dy)
	f.w = 2 * adx
	return f
}

// Done reports whether every scanline has been reported.
func (f *BresenhamFSM) Done() bool { return f.h < 0 }

// LinePoints reports the x range covered on the current scanline and steps to
// the next one. Once the line is exhausted it returns (-1, -1).
func (f *BresenhamFSM) LinePoints() (left, right int16) {
	if f.h < 0 {
		return finished, finished
	}
	if f.flag != 0 {
		x := f.h
		f.stepSteep()
		return x, x
	}
	start, end := f.stepShallow()
	if start > end {
		start, end = end, start
	}
	return start, end
}

// Leftmost is LinePoints reduced to its left end.
func (f *BresenhamFSM) Leftmost() int16 {
	l, _ := f.LinePoints()
	return l
}

// Rightmost is LinePoints reduced to its right end.
func (f *BresenhamFSM) Rightmost() int16 {
	_, r := f.LinePoints()
	return r
}

// DrawScanLine writes the pixels of the current scanline into buf, which is
// indexed by x, and steps to the next scanline. Pixels past len(buf) are
// dropped. It returns false, leaving buf untouched, once the line is exhausted.
func (f *BresenhamFSM) DrawScanLine(buf []gfx.Color, c gfx.Color) bool {
	l, r := f.LinePoints()
	if l < 0 {
		return false
	}
	if int(r) >= len(buf) {
		r = int16(len(buf) - 1)
	}
	for x := l; x <= r; x++ {
		buf[x] = c
	}
	return true
}

func (f *BresenhamFSM) stepSteep() {
	if f.k == 0 {
		f.h = finished
		return
	}
	f.k--
	if f.d > 0 {
		f.h += int16(f.flag)
		f.d += f.v
	} else {
		f.d += f.w
	}
}

// stepShallow consumes pixels until the error term forces a step in y and
// returns the first and last x visited on this scanline.
func (f *BresenhamFSM) stepShallow() (start, end int16) {
	var sx int16 = 1
	if f.k < f.h {
		sx = -1
	}
	start = f.h
	for {
		x := f.h
		if x == f.k {
			f.h = finished
			return start, x
		}
		f.h += sx
		if f.d > 0 {
			f.d += f.v
			return start, x
		}
		f.d += f.w
	}
}
