package render

import (
	"errors"
	"math"
	"testing"

	"lcdgfx/framebuf"
	"lcdgfx/gfx"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }

func nearV(a, b Vec3) bool { return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z) }

func TestMat3MulIdentity(t *testing.T) {
	a := Mat3Identity()
	b := Mat3Scale(V3(1, 2, 3))
	if got := Mat3Mul(a, b); got != b {
		t.Fatalf("identity*b mismatch: %v", got)
	}
	if got := Mat3Mul(b, a); got != b {
		t.Fatalf("b*identity mismatch: %v", got)
	}
}

func TestRotations(t *testing.T) {
	q := float32(math.Pi / 2)
	if got := Mat3MulV3(Mat3RotateZ(q), V3(1, 0, 0)); !nearV(got, V3(0, 1, 0)) {
		t.Fatalf("rotZ: expected (0,1,0), got %v", got)
	}
	if got := Mat3MulV3(Mat3RotateX(q), V3(0, 1, 0)); !nearV(got, V3(0, 0, 1)) {
		t.Fatalf("rotX: expected (0,0,1), got %v", got)
	}
	if got := Mat3MulV3(Mat3RotateY(q), V3(0, 0, 1)); !nearV(got, V3(1, 0, 0)) {
		t.Fatalf("rotY: expected (1,0,0), got %v", got)
	}
	m := Mat3Mul(Mat3RotateX(0.7), Mat3RotateX(-0.7))
	for i, v := range Mat3Identity() {
		if !near(m[i], v) {
			t.Fatalf("rotX(a)*rotX(-a) not identity: %v", m)
		}
	}
	// b acts first
	v := Mat3MulV3(Mat3Mul(Mat3Scale(V3(2, 1, 1)), Mat3RotateZ(q)), V3(1, 0, 0))
	if !nearV(v, V3(0, 1, 0)) {
		t.Fatalf("expected (0,1,0), got %v", v)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		m    *Model
		ok   bool
	}{
		{"nil", nil, false},
		{"empty", &Model{}, false},
		{"cube", Cube(4), true},
		{"bad index", &Model{
			Vertices: []Vertex{{}, {}, {}},
			Polygons: []Polygon{{V: [4]uint16{0, 1, 3}}},
		}, false},
		{"quad index", &Model{
			Vertices: []Vertex{{}, {}, {}},
			Polygons: []Polygon{{Shape: Quad, V: [4]uint16{0, 1, 2, 3}}},
		}, false},
		{"bad shape", &Model{
			Vertices: []Vertex{{}, {}, {}},
			Polygons: []Polygon{{Shape: 7}},
		}, false},
	}
	for _, tc := range cases {
		err := tc.m.Validate()
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidModel) {
			t.Fatalf("%s: expected ErrInvalidModel, got %v", tc.name, err)
		}
	}
}

// square is the quad (2,2)-(10,8), clockwise on screen.
func square() *Model {
	return &Model{
		Vertices: []Vertex{{2, 2, 0}, {10, 2, 0}, {10, 8, 0}, {2, 8, 0}},
		Polygons: []Polygon{{Shape: Quad, V: [4]uint16{0, 1, 2, 3}}},
	}
}

func TestRenderNeedsModelAndArea(t *testing.T) {
	fb := framebuf.NewRGB565(16, 16)
	fb.Clear(gfx.Red)
	w := NewWireframe()
	w.Render(fb)
	if err := w.SetDrawArea(gfx.Pt(5, 5), gfx.Pt(4, 9)); !errors.Is(err, gfx.ErrGeometry) {
		t.Fatalf("expected ErrGeometry, got %v", err)
	}
	if err := w.SetModel(square()); err != nil {
		t.Fatal(err)
	}
	w.Render(fb)
	if err := w.SetModel(&Model{}); err == nil {
		t.Fatal("expected an error for an empty model")
	}
	if err := w.SetDrawArea(gfx.Pt(0, 0), gfx.Pt(15, 15)); err != nil {
		t.Fatal(err)
	}
	w.Render(fb)
	for y := int16(0); y < 16; y++ {
		for x := int16(0); x < 16; x++ {
			if fb.Pixel(gfx.Pt(x, y)) != gfx.Red {
				t.Fatalf("(%d,%d) drawn without a valid model", x, y)
			}
		}
	}
}

func TestWireframeSquare(t *testing.T) {
	fb := framebuf.NewRGB565(20, 12)
	fb.Clear(gfx.Red)
	w := NewWireframe()
	if err := w.SetModel(square()); err != nil {
		t.Fatal(err)
	}
	if err := w.SetDrawArea(gfx.Pt(1, 1), gfx.Pt(16, 10)); err != nil {
		t.Fatal(err)
	}
	w.SetColors(gfx.Yellow, gfx.Blue)
	w.Render(fb)

	want := framebuf.NewRGB565(20, 12)
	want.Clear(gfx.Red)
	want.ClearRect(gfx.Pt(1, 1), gfx.Pt(16, 10), gfx.Blue)
	want.DrawRectangle(gfx.Pt(3, 3), gfx.Pt(11, 9), gfx.Yellow)
	for y := int16(0); y < 12; y++ {
		for x := int16(0); x < 20; x++ {
			if a, b := fb.Pixel(gfx.Pt(x, y)), want.Pixel(gfx.Pt(x, y)); a != b {
				t.Fatalf("(%d,%d): expected %#04x, got %#04x", x, y, b, a)
			}
		}
	}
}

func TestWireframeDedup(t *testing.T) {
	m := &Model{
		Vertices: []Vertex{{0, 0, 0}, {8, 0, 0}, {8, 8, 0}, {0, 8, 0}},
		Polygons: []Polygon{
			{V: [4]uint16{0, 1, 2}},
			{V: [4]uint16{2, 3, 0}},
		},
	}
	w := NewWireframe()
	if err := w.SetModel(m); err != nil {
		t.Fatal(err)
	}
	if w.Edges() != 5 {
		t.Fatalf("expected 5 edges, got %d", w.Edges())
	}
	if err := w.SetModel(Cube(3)); err != nil {
		t.Fatal(err)
	}
	if w.Edges() != 12 {
		t.Fatalf("expected 12 cube edges, got %d", w.Edges())
	}
}

func TestWireframeAboveArea(t *testing.T) {
	fb := framebuf.NewRGB565(10, 10)
	m := &Model{
		Vertices: []Vertex{{5, -3, 0}, {5, 6, 0}, {5, -9, 0}},
		Polygons: []Polygon{{V: [4]uint16{0, 1, 2}}},
	}
	w := NewWireframe()
	if err := w.SetModel(m); err != nil {
		t.Fatal(err)
	}
	if err := w.SetDrawArea(gfx.Pt(0, 0), gfx.Pt(9, 9)); err != nil {
		t.Fatal(err)
	}
	w.Render(fb)
	for y := int16(0); y < 10; y++ {
		for x := int16(0); x < 10; x++ {
			lit := fb.Pixel(gfx.Pt(x, y)) == gfx.White
			if want := x == 5 && y <= 6; lit != want {
				t.Fatalf("(%d,%d): expected lit=%v", x, y, want)
			}
		}
	}
}

func TestSolidSquare(t *testing.T) {
	fb := framebuf.NewRGB565(16, 12)
	s := NewSolid()
	if err := s.SetModel(square()); err != nil {
		t.Fatal(err)
	}
	if s.Triangles() != 2 {
		t.Fatalf("expected 2 triangles, got %d", s.Triangles())
	}
	if err := s.SetDrawArea(gfx.Pt(0, 0), gfx.Pt(15, 11)); err != nil {
		t.Fatal(err)
	}
	s.SetColors(gfx.Green, gfx.Black)
	s.SetCulling(true)
	s.Render(fb)

	// The top row and right column belong to neighbours.
	for y := int16(0); y < 12; y++ {
		for x := int16(0); x < 16; x++ {
			in := x >= 2 && x <= 9 && y >= 3 && y <= 8
			c := fb.Pixel(gfx.Pt(x, y))
			if in && c != gfx.Green {
				t.Fatalf("(%d,%d): expected fill, got %#04x", x, y, c)
			}
			if !in && c != gfx.Black {
				t.Fatalf("(%d,%d): expected background, got %#04x", x, y, c)
			}
		}
	}
}

func TestSolidCulling(t *testing.T) {
	m := square()
	m.Polygons[0].V = [4]uint16{3, 2, 1, 0}
	fb := framebuf.NewRGB565(16, 12)
	s := NewSolid()
	if err := s.SetModel(m); err != nil {
		t.Fatal(err)
	}
	if err := s.SetDrawArea(gfx.Pt(0, 0), gfx.Pt(15, 11)); err != nil {
		t.Fatal(err)
	}
	s.SetCulling(true)
	s.Render(fb)
	if c := fb.Pixel(gfx.Pt(5, 5)); c != gfx.Black {
		t.Fatalf("back face drawn: %#04x", c)
	}
	s.SetCulling(false)
	s.SetLight(Light{Ambient: 1})
	s.Render(fb)
	if c := fb.Pixel(gfx.Pt(5, 5)); c != gfx.White {
		t.Fatalf("expected white, got %#04x", c)
	}
}

func TestSolidDepthOrder(t *testing.T) {
	tri := func(z int16) []Vertex {
		return []Vertex{{0, 0, z}, {12, 0, z}, {0, 12, z}}
	}
	for _, order := range [][2]int{{0, 1}, {1, 0}} {
		verts := append(tri(5), tri(-5)...)
		polys := []Polygon{
			{V: [4]uint16{0, 1, 2}, Color: gfx.Red, HasColor: true},
			{V: [4]uint16{3, 4, 5}, Color: gfx.Blue, HasColor: true},
		}
		m := &Model{Vertices: verts, Polygons: []Polygon{polys[order[0]], polys[order[1]]}}
		fb := framebuf.NewRGB565(16, 16)
		s := NewSolid()
		s.SetLight(Light{Ambient: 1})
		if err := s.SetModel(m); err != nil {
			t.Fatal(err)
		}
		if err := s.SetDrawArea(gfx.Pt(0, 0), gfx.Pt(15, 15)); err != nil {
			t.Fatal(err)
		}
		s.Render(fb)
		if c := fb.Pixel(gfx.Pt(2, 4)); c != gfx.Red {
			t.Fatalf("order %v: expected the nearer red triangle, got %#04x", order, c)
		}
	}
}

func TestSolidShading(t *testing.T) {
	s := NewSolid()
	front := DefaultLight.intensity(V3(0, 0, 1))
	if !near(front, 1) {
		t.Fatalf("expected full intensity facing the light, got %v", front)
	}
	side := DefaultLight.intensity(V3(1, 0, 0))
	if !near(side, DefaultLight.Ambient) {
		t.Fatalf("expected ambient only, got %v", side)
	}
	if s.light != DefaultLight {
		t.Fatal("solid engine does not start with the default light")
	}
}

func TestSkipNegativeX(t *testing.T) {
	m := &Model{
		Vertices: []Vertex{{-1, 0, 0}, {6, 0, 0}, {6, 6, 0}, {8, 0, 0}, {14, 0, 0}, {14, 6, 0}},
		Polygons: []Polygon{
			{V: [4]uint16{0, 1, 2}},
			{V: [4]uint16{3, 4, 5}},
		},
	}
	fb := framebuf.NewRGB565(16, 8)
	w := NewWireframe()
	if err := w.SetModel(m); err != nil {
		t.Fatal(err)
	}
	if err := w.SetDrawArea(gfx.Pt(0, 0), gfx.Pt(15, 7)); err != nil {
		t.Fatal(err)
	}
	w.Render(fb)
	// the edge 1-2 does not touch vertex 0 and is still drawn
	if fb.Pixel(gfx.Pt(6, 3)) != gfx.White {
		t.Fatal("edge with visible vertices missing")
	}
	if fb.Pixel(gfx.Pt(0, 0)) != gfx.Black {
		t.Fatal("edge with a negative x vertex drawn")
	}
	if fb.Pixel(gfx.Pt(14, 3)) != gfx.White {
		t.Fatal("second triangle missing")
	}
	// with an offset the whole model is visible
	w.SetOffset(1, 0)
	w.Render(fb)
	if fb.Pixel(gfx.Pt(0, 0)) != gfx.White {
		t.Fatal("shifted edge missing")
	}
}
