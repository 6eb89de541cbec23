package raster

import "lcdgfx/gfx"

// TriangleFSM fills a triangle one scanline at a time.
//
// On every scanline the span runs from the left edge's leftmost pixel to one
// before the right edge's leftmost pixel, and the top scanline is skipped.
// Two triangles sharing an edge therefore split the shared boundary pixels
// between them: none is drawn twice and none is left out.
type TriangleFSM struct {
	leftEdge  BresenhamFSM
	rightEdge BresenhamFSM
	chainTail BresenhamFSM // mid→last, swapped in after the mid scanline
	chainLeft bool

	top, mid, last gfx.Point
	y              int16
	color          gfx.Color
	z              int32
}

// NewTriangle prepares the filler for the triangle a, b, c. z is the depth key
// used to order triangles when compositing.
func NewTriangle(a, b, c gfx.Point, color gfx.Color, z int32) TriangleFSM {
	a, b, c = sortByY(a, b, c)
	t := TriangleFSM{top: a, mid: b, last: c, y: a.Y, color: color, z: z}

	long := NewBresenham(a, c)
	head := NewBresenham(a, b)
	t.chainTail = NewBresenham(b, c)
	// The mid scanline is reported by head; drop it from the tail.
	t.chainTail.LinePoints()

	// Positive cross product: mid lies left of top→last (y grows downwards).
	cross := (int32(c.X)-int32(a.X))*(int32(b.Y)-int32(a.Y)) -
		(int32(c.Y)-int32(a.Y))*(int32(b.X)-int32(a.X))
	t.chainLeft = cross > 0
	if t.chainLeft {
		t.leftEdge, t.rightEdge = head, long
	} else {
		t.leftEdge, t.rightEdge = long, head
	}
	return t
}

// sortByY orders the vertices by ascending y, then ascending x.
func sortByY(a, b, c gfx.Point) (gfx.Point, gfx.Point, gfx.Point) {
	less := func(p, q gfx.Point) bool {
		if p.Y != q.Y {
			return p.Y < q.Y
		}
		return p.X < q.X
	}
	if less(b, a) {
		a, b = b, a
	}
	if less(c, b) {
		b, c = c, b
	}
	if less(b, a) {
		a, b = b, a
	}
	return a, b, c
}

// Z returns the depth key.
func (t *TriangleFSM) Z() int32 { return t.z }

// Less orders triangles by depth key.
func (t *TriangleFSM) Less(o *TriangleFSM) bool { return t.z < o.z }

// Top is the first scanline the triangle spans.
func (t *TriangleFSM) Top() int16 { return t.top.Y }

// Bottom is the last scanline the triangle spans.
func (t *TriangleFSM) Bottom() int16 { return t.last.Y }

// Color returns the fill color.
func (t *TriangleFSM) Color() gfx.Color { return t.color }

// Done reports whether every scanline has been emitted.
func (t *TriangleFSM) Done() bool { return t.y > t.last.Y }

// ScanLine returns the scanline the next DrawScanLine call will fill.
func (t *TriangleFSM) ScanLine() int16 { return t.y }

// Span reports the x range filled on the current scanline and steps to the
// next one. An empty span has right < left. ok is false once the triangle is
// exhausted.
func (t *TriangleFSM) Span() (left, right int16, ok bool) {
	if t.Done() {
		return 0, -1, false
	}
	if t.y == t.mid.Y+1 {
		if t.chainLeft {
			t.leftEdge = t.chainTail
		} else {
			t.rightEdge = t.chainTail
		}
	}
	l := t.leftEdge.Leftmost()
	r := t.rightEdge.Leftmost() - 1
	y := t.y
	t.y++
	if y == t.top.Y || l < 0 {
		return 0, -1, true
	}
	return l, r, true
}

// DrawScanLine fills the current scanline's span into buf, which is indexed
// by x, and steps to the next scanline. Pixels past len(buf) are dropped. It
// returns false once the triangle is exhausted.
func (t *TriangleFSM) DrawScanLine(buf []gfx.Color) bool {
	l, r, ok := t.Span()
	if !ok {
		return false
	}
	if int(r) >= len(buf) {
		r = int16(len(buf) - 1)
	}
	for x := l; x <= r; x++ {
		buf[x] = t.color
	}
	return true
}
