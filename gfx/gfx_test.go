package gfx

import "testing"

func TestWindowRowMajor(t *testing.T) {
	w := NewWindow(Pt(1, 1), Pt(2, 2), RD)
	want := []Point{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	for i, p := range want {
		if w.Done() {
			t.Fatalf("done early at %d", i)
		}
		if got := (Point{w.X, w.Y}); got != p {
			t.Fatalf("step %d: expected %v, got %v", i, p, got)
		}
		if rem := w.Remaining(); rem != len(want)-i {
			t.Fatalf("step %d: expected %d remaining, got %d", i, len(want)-i, rem)
		}
		w.Advance()
	}
	if !w.Done() {
		t.Fatal("expected done after last pixel")
	}
}

func TestWindowColumnMajor(t *testing.T) {
	w := NewWindow(Pt(0, 0), Pt(1, 2), DR)
	want := []Point{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	for i, p := range want {
		if got := (Point{w.X, w.Y}); got != p {
			t.Fatalf("step %d: expected %v, got %v", i, p, got)
		}
		if rem := w.Remaining(); rem != len(want)-i {
			t.Fatalf("step %d: expected %d remaining, got %d", i, len(want)-i, rem)
		}
		w.Advance()
	}
	if !w.Done() || w.Remaining() != 0 {
		t.Fatal("expected done after last pixel")
	}
}

func TestValidWindow(t *testing.T) {
	cases := []struct {
		p1, p2 Point
		ok     bool
	}{
		{Pt(0, 0), Pt(9, 9), true},
		{Pt(3, 3), Pt(3, 3), true},
		{Pt(3, 3), Pt(2, 3), false},
		{Pt(3, 3), Pt(3, 2), false},
		{Pt(-1, 0), Pt(3, 3), false},
		{Pt(0, 0), Pt(10, 3), false},
	}
	for _, c := range cases {
		if got := ValidWindow(c.p1, c.p2, 10, 10); got != c.ok {
			t.Fatalf("ValidWindow(%v,%v): expected %v, got %v", c.p1, c.p2, c.ok, got)
		}
	}
}

func TestRGBRoundTrip(t *testing.T) {
	if RGB(0xFF, 0xFF, 0xFF) != White {
		t.Fatalf("expected white, got %#04x", RGB(0xFF, 0xFF, 0xFF))
	}
	if RGB(0xFF, 0, 0) != Red || RGB(0, 0xFF, 0) != Green || RGB(0, 0, 0xFF) != Blue {
		t.Fatal("primary colors mismatch")
	}
	r, g, b := Red.RGB888()
	if r != 0xFF || g != 0 || b != 0 {
		t.Fatalf("expected ff/00/00, got %02x/%02x/%02x", r, g, b)
	}
}

func TestFill(t *testing.T) {
	buf := make([]Color, 37)
	Fill(buf, Cyan)
	for i, c := range buf {
		if c != Cyan {
			t.Fatalf("index %d: expected cyan, got %#04x", i, c)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	r := R(Pt(0, 0), Pt(9, 9)).Intersect(R(Pt(5, -3), Pt(20, 4)))
	if r != R(Pt(5, 0), Pt(9, 4)) {
		t.Fatalf("unexpected intersection %v", r)
	}
	if !R(Pt(0, 0), Pt(1, 1)).Intersect(R(Pt(3, 3), Pt(4, 4))).Empty() {
		t.Fatal("expected empty intersection")
	}
}
