package display

import (
	"lcdgfx/gfx"
	"lcdgfx/raster"
)

// Primitives implements the Backend drawing operations on top of a surface's
// pixel iterator, for devices that can only stream pixels into a window.
type Primitives struct {
	S    gfx.Surface
	scan []gfx.Color
}

// NewPrimitives returns drawing operations for s.
func NewPrimitives(s gfx.Surface) Primitives {
	w, _ := s.Size()
	return Primitives{S: s, scan: make([]gfx.Color, w)}
}

func (pr *Primitives) clip(p1, p2 gfx.Point) (gfx.Rect, bool) {
	if p1.X > p2.X {
		p1.X, p2.X = p2.X, p1.X
	}
	if p1.Y > p2.Y {
		p1.Y, p2.Y = p2.Y, p1.Y
	}
	w, h := pr.S.Size()
	r := gfx.R(p1, p2).Intersect(gfx.Screen(w, h))
	return r, !r.Empty()
}

func (pr *Primitives) SetPixel(p gfx.Point, c gfx.Color) {
	pr.S.Begin(p, p, gfx.RD).Put(c)
}

func (pr *Primitives) Clear(c gfx.Color) {
	w, h := pr.S.Size()
	pr.ClearRect(gfx.Pt(0, 0), gfx.Pt(w-1, h-1), c)
}

func (pr *Primitives) ClearRect(p1, p2 gfx.Point, c gfx.Color) {
	r, ok := pr.clip(p1, p2)
	if !ok {
		return
	}
	it := pr.S.Begin(r.Min, r.Max, gfx.RD)
	for !it.Done() {
		it.Put(c)
	}
}

// Line streams axis-aligned lines through one window; other lines are
// plotted a pixel at a time.
func (pr *Primitives) Line(a, b gfx.Point, c gfx.Color) {
	w, h := pr.S.Size()
	if p1, p2, ok := raster.ClipAxisLine(a, b, w, h); ok {
		pr.ClearRect(p1, p2, c)
		return
	}
	if a.X == b.X || a.Y == b.Y {
		return
	}
	raster.DrawLine(pr, a, b, c)
}

func (pr *Primitives) DrawRectangle(a, b gfx.Point, c gfx.Color) {
	raster.DrawRectangle(pr, a, b, c)
}

func (pr *Primitives) ScanLineBuffer() []gfx.Color { return pr.scan }

func (pr *Primitives) ScanLine(p gfx.Point, colors []gfx.Color) {
	w, h := pr.S.Size()
	if p.Y < 0 || p.Y >= h || len(colors) == 0 {
		return
	}
	if p.X < 0 {
		if int(-p.X) >= len(colors) {
			return
		}
		colors = colors[-p.X:]
		p.X = 0
	}
	if p.X >= w {
		return
	}
	if room := int(w - p.X); len(colors) > room {
		colors = colors[:room]
	}
	it := pr.S.Begin(p, gfx.Pt(p.X+int16(len(colors))-1, p.Y), gfx.RD)
	for _, c := range colors {
		it.Put(c)
	}
}

func (pr *Primitives) DrawImage(p gfx.Point, img gfx.Image) {
	w, h := pr.S.Size()
	pr.ClippedDrawImage(p, gfx.Pt(0, 0), gfx.Pt(w-1, h-1), img)
}

// ClippedDrawImage streams the visible part of img through one window, a
// scanline at a time.
func (pr *Primitives) ClippedDrawImage(p, a, b gfx.Point, img gfx.Image) {
	if img == nil {
		return
	}
	clip, ok := pr.clip(a, b)
	if !ok {
		return
	}
	iw, ih := img.Size()
	if iw <= 0 || ih <= 0 {
		return
	}
	r := gfx.R(p, gfx.Pt(p.X+iw-1, p.Y+ih-1)).Intersect(clip)
	if r.Empty() {
		return
	}
	n := int(r.Dx())
	if len(pr.scan) < n {
		pr.scan = make([]gfx.Color, n)
	}
	row := pr.scan[:n]
	it := pr.S.Begin(r.Min, r.Max, gfx.RD)
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		img.ScanLine(r.Min.X-p.X, y-p.Y, row)
		for _, c := range row {
			it.Put(c)
		}
	}
}
