package raster

import "lcdgfx/gfx"

// Pixeler is the single-pixel write every backend offers. Out of range
// coordinates are the implementation's business (usually ignored).
type Pixeler interface {
	SetPixel(p gfx.Point, c gfx.Color)
}

// DrawLine draws a-b through SetPixel with the classic Bresenham stepper. It
// is the slow path backends fall back to for lines that are neither
// horizontal nor vertical.
func DrawLine[P Pixeler](dst P, a, b gfx.Point, c gfx.Color) {
	x0, y0 := int32(a.X), int32(a.Y)
	x1, y1 := int32(b.X), int32(b.Y)
	dx := abs32(x1 - x0)
	sx := int32(-1)
	if x0 < x1 {
		sx = 1
	}
	dy := -abs32(y1 - y0)
	sy := int32(-1)
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		dst.SetPixel(gfx.Point{X: int16(x0), Y: int16(y0)}, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Liner draws straight lines; backends provide fast axis-aligned paths.
type Liner interface {
	Line(a, b gfx.Point, c gfx.Color)
}

// DrawRectangle outlines the rectangle a (upper left) to b (lower right)
// with four lines.
func DrawRectangle[L Liner](dst L, a, b gfx.Point, c gfx.Color) {
	if b.X < a.X || b.Y < a.Y {
		return
	}
	dst.Line(a, gfx.Point{X: b.X, Y: a.Y}, c)
	dst.Line(gfx.Point{X: b.X, Y: a.Y}, b, c)
	dst.Line(gfx.Point{X: a.X, Y: b.Y}, b, c)
	dst.Line(a, gfx.Point{X: a.X, Y: b.Y}, c)
}

// ClipAxisLine clips a horizontal or vertical segment to a w×h screen and
// orders its endpoints. ok is false when nothing is visible or the segment is
// not axis aligned.
func ClipAxisLine(a, b gfx.Point, w, h int16) (p1, p2 gfx.Point, ok bool) {
	if a.X != b.X && a.Y != b.Y {
		return a, b, false
	}
	if a.X > b.X {
		a.X, b.X = b.X, a.X
	}
	if a.Y > b.Y {
		a.Y, b.Y = b.Y, a.Y
	}
	r := gfx.R(a, b).Intersect(gfx.Screen(w, h))
	if r.Empty() {
		return a, b, false
	}
	return r.Min, r.Max, true
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
