// Package render draws polygon meshes scanline by scanline into a draw area,
// as wireframes or flat-shaded solids.
//
// Coordinates follow the screen: x grows right, y grows down and z grows
// toward the viewer. The projection is orthographic: a vertex lands at its
// transformed x and y plus the offset, relative to the draw area's upper left
// corner. Only one scanline of the draw area is buffered at a time.
package render

import (
	"fmt"
	"math"

	"lcdgfx/gfx"
)

// ScanLineTarget receives finished rows; *display.DrawingContext and the
// framebuffers implement it.
type ScanLineTarget interface {
	ScanLine(p gfx.Point, colors []gfx.Color)
}

// scene is the state shared by both engines.
type scene struct {
	model  *Model
	area   gfx.Rect
	offset gfx.Point
	m      Mat3
	fg, bg gfx.Color

	hasArea bool
	row     []gfx.Color
	world   []Vec3
	screen  []gfx.Point
	visible []bool
}

func newScene() scene {
	return scene{m: Mat3Identity(), fg: gfx.White, bg: gfx.Black}
}

func (s *scene) ready() bool { return s.model != nil && s.hasArea }

func (s *scene) setModel(m *Model) error {
	if err := m.Validate(); err != nil {
		s.model = nil
		return err
	}
	s.model = m
	n := len(m.Vertices)
	s.world = make([]Vec3, n)
	s.screen = make([]gfx.Point, n)
	s.visible = make([]bool, n)
	return nil
}

// SetDrawArea sets the rectangle p1 (upper left) to p2 (lower right) every
// frame covers.
func (s *scene) SetDrawArea(p1, p2 gfx.Point) error {
	r := gfx.R(p1, p2)
	if r.Empty() || p1.X < 0 || p1.Y < 0 {
		s.hasArea = false
		return fmt.Errorf("%w: draw area %v-%v", gfx.ErrGeometry, p1, p2)
	}
	s.area = r
	s.hasArea = true
	if w := int(r.Dx()); cap(s.row) < w {
		s.row = make([]gfx.Color, w)
	} else {
		s.row = s.row[:w]
	}
	return nil
}

// SetOffset moves the projected model within the draw area.
func (s *scene) SetOffset(dx, dy int16) { s.offset = gfx.Pt(dx, dy) }

// SetTransform sets the matrix applied to every vertex.
func (s *scene) SetTransform(m Mat3) { s.m = m }

// SetColors sets the default polygon color and the background.
func (s *scene) SetColors(fg, bg gfx.Color) {
	s.fg = fg
	s.bg = bg
}

// project transforms every vertex and converts it to draw-area coordinates.
// Vertices that land left of the area or outside the coordinate range are
// marked invisible.
func (s *scene) project() {
	for i, v := range s.model.Vertices {
		p := Mat3MulV3(s.m, V3(float32(v.X), float32(v.Y), float32(v.Z)))
		s.world[i] = p
		x := math.Round(float64(p.X)) + float64(s.offset.X)
		y := math.Round(float64(p.Y)) + float64(s.offset.Y)
		ok := x >= 0 && x <= math.MaxInt16 && y >= math.MinInt16 && y <= math.MaxInt16
		s.visible[i] = ok
		if ok {
			s.screen[i] = gfx.Pt(int16(x), int16(y))
		}
	}
}

func (s *scene) polyColor(p *Polygon) gfx.Color {
	if p.HasColor {
		return p.Color
	}
	return s.fg
}

// emit sends the row buffer as draw-area row y.
func (s *scene) emit(dst ScanLineTarget, y int16) {
	dst.ScanLine(gfx.Pt(s.area.Min.X, s.area.Min.Y+y), s.row)
}
