// Package gfx holds the value types and contracts shared by every part of the
// graphics stack: points, colors, iteration directions, the pixel iterator
// protocol implemented by display backends, and image sources.
package gfx

import "errors"

// ErrGeometry is wrapped by the errors debug backends panic with when a caller
// passes coordinates outside the display or an inverted window.
var ErrGeometry = errors.New("gfx: invalid geometry")

// Point is an immutable pixel coordinate.
type Point struct {
	X, Y int16
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int16) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// In reports whether p lies in [0,w)×[0,h).
func (p Point) In(w, h int16) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < w && p.Y < h
}

// Rect is a rectangle with inclusive corners.
type Rect struct {
	Min, Max Point
}

// R returns the rectangle with corners p1 (upper left) and p2 (lower right).
func R(p1, p2 Point) Rect { return Rect{Min: p1, Max: p2} }

// Dx is the width in pixels.
func (r Rect) Dx() int16 { return r.Max.X - r.Min.X + 1 }

// Dy is the height in pixels.
func (r Rect) Dy() int16 { return r.Max.Y - r.Min.Y + 1 }

// Empty reports whether the rectangle covers no pixel.
func (r Rect) Empty() bool { return r.Max.X < r.Min.X || r.Max.Y < r.Min.Y }

// Contains reports whether p is inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersect returns the overlap of r and s. The result may be Empty.
func (r Rect) Intersect(s Rect) Rect {
	if s.Min.X > r.Min.X {
		r.Min.X = s.Min.X
	}
	if s.Min.Y > r.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if s.Max.X < r.Max.X {
		r.Max.X = s.Max.X
	}
	if s.Max.Y < r.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Screen returns the rectangle covering a w×h display.
func Screen(w, h int16) Rect { return Rect{Max: Point{X: w - 1, Y: h - 1}} }

// ValidWindow reports whether p1..p2 is a non-inverted window inside a w×h display.
func ValidWindow(p1, p2 Point, w, h int16) bool {
	if !p1.In(w, h) || !p2.In(w, h) {
		return false
	}
	return p2.X >= p1.X && p2.Y >= p1.Y
}

// Direction selects the order in which a pixel iterator walks its window.
type Direction uint8

const (
	// RD fills a row left to right, then moves down one row.
	RD Direction = iota
	// DR fills a column top to bottom, then moves right one column.
	DR
)

func (d Direction) String() string {
	switch d {
	case RD:
		return "RD"
	case DR:
		return "DR"
	default:
		return "Direction(?)"
	}
}
