package hal

import (
	"fmt"
	"sync/atomic"

	"lcdgfx/display"
	"lcdgfx/framebuf"
	"lcdgfx/gfx"
)

// SimulatorConfig sizes the simulated panel.
type SimulatorConfig struct {
	Width, Height int16
	// Scale is the window zoom factor.
	Scale int
	Title string
}

func (c *SimulatorConfig) defaults() {
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 320
	}
	if c.Scale <= 0 {
		c.Scale = 2
	}
	if c.Title == "" {
		c.Title = "lcdgfx"
	}
}

// Simulator is a debug backend drawing into an RGB565 framebuffer. Geometry
// a production backend would clip or ignore panics here with an error
// wrapping gfx.ErrGeometry, so application bugs surface during development.
type Simulator struct {
	fb  *framebuf.RGB565
	gen uint32

	on         atomic.Bool
	brightness atomic.Int32
}

func NewSimulator(w, h int16) *Simulator {
	s := &Simulator{fb: framebuf.NewRGB565(w, h)}
	s.on.Store(true)
	s.brightness.Store(100)
	return s
}

// Framebuffer exposes the backing framebuffer; presenters read it with
// Snapshot.
func (s *Simulator) Framebuffer() *framebuf.RGB565 { return s.fb }

func (s *Simulator) Size() (w, h int16) { return s.fb.Size() }

func (s *Simulator) Update() error { return s.fb.Update() }

func (s *Simulator) TurnOn()  { s.on.Store(true) }
func (s *Simulator) TurnOff() { s.on.Store(false) }

func (s *Simulator) SetBrightness(level int) { s.brightness.Store(int32(level)) }

// Level is the light output the window shows: 0 when off, else the
// brightness in percent.
func (s *Simulator) Level() int {
	if !s.on.Load() {
		return 0
	}
	return int(s.brightness.Load())
}

func geometry(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{gfx.ErrGeometry}, args...)...))
}

func (s *Simulator) inside(op string, pts ...gfx.Point) {
	w, h := s.fb.Size()
	for _, p := range pts {
		if !p.In(w, h) {
			geometry("%s: point %v outside %dx%d", op, p, w, h)
		}
	}
}

func (s *Simulator) ordered(op string, p1, p2 gfx.Point) {
	if p2.X < p1.X || p2.Y < p1.Y {
		geometry("%s: corners %v-%v out of order", op, p1, p2)
	}
}

func (s *Simulator) Begin(p1, p2 gfx.Point, dir gfx.Direction) gfx.PixelIterator {
	w, h := s.fb.Size()
	if !gfx.ValidWindow(p1, p2, w, h) {
		geometry("begin: window %v-%v invalid on %dx%d", p1, p2, w, h)
	}
	it, _ := s.fb.Iterator(p1, p2, dir)
	s.gen++
	return &simIterator{it: it, s: s, gen: s.gen}
}

type simIterator struct {
	it  *framebuf.RGB565Iterator
	s   *Simulator
	gen uint32
}

func (it *simIterator) Put(c gfx.Color) {
	if it.gen != it.s.gen {
		geometry("put on a stale pixel iterator")
	}
	if it.it.Done() {
		geometry("put past the end of the window")
	}
	it.it.Put(c)
}

func (it *simIterator) Done() bool { return it.it.Done() }

func (s *Simulator) Clear(c gfx.Color) { s.fb.Clear(c) }

func (s *Simulator) ClearRect(p1, p2 gfx.Point, c gfx.Color) {
	s.ordered("clear rect", p1, p2)
	s.inside("clear rect", p1, p2)
	s.fb.ClearRect(p1, p2, c)
}

func (s *Simulator) SetPixel(p gfx.Point, c gfx.Color) {
	s.inside("set pixel", p)
	s.fb.SetPixel(p, c)
}

func (s *Simulator) Line(a, b gfx.Point, c gfx.Color) {
	s.inside("line", a, b)
	s.fb.Line(a, b, c)
}

func (s *Simulator) DrawRectangle(a, b gfx.Point, c gfx.Color) {
	s.ordered("rectangle", a, b)
	s.inside("rectangle", a, b)
	s.fb.DrawRectangle(a, b, c)
}

func (s *Simulator) ScanLineBuffer() []gfx.Color { return s.fb.ScanLineBuffer() }

func (s *Simulator) ScanLine(p gfx.Point, colors []gfx.Color) {
	if len(colors) == 0 {
		return
	}
	s.inside("scan line", p, gfx.Pt(p.X+int16(len(colors))-1, p.Y))
	s.fb.ScanLine(p, colors)
}

func (s *Simulator) DrawImage(p gfx.Point, img gfx.Image) {
	iw, ih := img.Size()
	if iw <= 0 || ih <= 0 {
		geometry("draw image: empty %dx%d image", iw, ih)
	}
	s.inside("draw image", p, gfx.Pt(p.X+iw-1, p.Y+ih-1))
	s.fb.DrawImage(p, img)
}

func (s *Simulator) ClippedDrawImage(p, a, b gfx.Point, img gfx.Image) {
	s.ordered("clipped image", a, b)
	s.inside("clipped image", a, b)
	s.fb.ClippedDrawImage(p, a, b, img)
}

var (
	_ display.Backend = (*Simulator)(nil)
	_ display.Power   = (*Simulator)(nil)
)
