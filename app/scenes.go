package app

import (
	"fmt"
	"math"

	"lcdgfx/console"
	"lcdgfx/display"
	"lcdgfx/fonts/font6x8"
	"lcdgfx/gfx"
	"lcdgfx/render"
	"lcdgfx/resource"
	"lcdgfx/textbox"
)

type engine interface {
	SetModel(*render.Model) error
	SetDrawArea(p1, p2 gfx.Point) error
	SetOffset(dx, dy int16)
	SetTransform(render.Mat3)
	SetColors(fg, bg gfx.Color)
	Render(dst render.ScanLineTarget)
}

type cubeScene struct {
	solid bool
	eng   engine
	ready bool
}

func newCubeScene(solid bool) *cubeScene {
	s := &cubeScene{solid: solid}
	if solid {
		e := render.NewSolid()
		e.SetCulling(true)
		s.eng = e
	} else {
		s.eng = render.NewWireframe()
	}
	return s
}

func (s *cubeScene) name() string {
	if s.solid {
		return "solid"
	}
	return "wire"
}

func (s *cubeScene) enter(a *App) {
	if s.ready {
		return
	}
	w, h := a.d.Size()
	area := gfx.R(gfx.Pt(0, a.top), gfx.Pt(w-1, h-1))
	half := min(area.Dx(), area.Dy()) / 4
	m := render.Cube(half)
	if s.solid {
		colors := []gfx.Color{gfx.Red, gfx.Green, gfx.Blue, gfx.Yellow, gfx.Cyan, gfx.Magenta}
		for i := range m.Polygons {
			m.Polygons[i].Color = colors[i]
			m.Polygons[i].HasColor = true
		}
	}
	if err := s.eng.SetModel(m); err != nil {
		panic(err)
	}
	if err := s.eng.SetDrawArea(area.Min, area.Max); err != nil {
		panic(err)
	}
	s.eng.SetOffset(area.Dx()/2, area.Dy()/2)
	s.eng.SetColors(gfx.White, gfx.Black)
	s.ready = true
}

func (s *cubeScene) frame(a *App, dc *display.DrawingContext) {
	a.header(dc, fmt.Sprintf("%s cube  frame %d", s.name(), a.frames))
	t := float32(a.frames) * 0.03
	m := render.Mat3Mul(render.Mat3RotateY(t), render.Mat3RotateX(t*0.7))
	m = render.Mat3Mul(render.Mat3RotateZ(t*0.3), m)
	s.eng.SetTransform(m)
	s.eng.Render(dc)
}

const loremText = "The quick brown fox jumps over the lazy dog. " +
	"Съешь же ещё этих мягких французских булок, да выпей чаю. " +
	"Text wraps at word boundaries and the box below clears its margins."

type textScene struct{}

func (textScene) name() string { return "text" }

func (textScene) enter(a *App) {}

func (textScene) frame(a *App, dc *display.DrawingContext) {
	a.header(dc, "text")
	w, h := dc.Size()
	dc.ClearRect(gfx.Pt(0, a.top), gfx.Pt(w-1, h-1), gfx.Black)
	dc.SetFont(font6x8.Font)

	dc.SetTextColor(gfx.White, gfx.Blue)
	box := gfx.R(gfx.Pt(8, a.top+8), gfx.Pt(w/2-4, h/2))
	textbox.Draw(dc, box.Min, box.Max, loremText, textbox.Options{
		Wrap:            textbox.WordWrap,
		ClearBackground: true,
		Margins:         textbox.Margins{Top: 4, Bottom: 4, Left: 4, Right: 4},
		LineSpacing:     2,
	})

	// A narrow box scrolls through the text one character per frame.
	dc.SetTextColor(gfx.Yellow, gfx.Black)
	start := a.frames % len(loremText)
	for start > 0 && start < len(loremText) && loremText[start]&0xC0 == 0x80 {
		start++
	}
	rest := textbox.Draw(dc, gfx.Pt(w/2+4, a.top+8), gfx.Pt(w-8, h/2), loremText[start:], textbox.Options{Wrap: textbox.CharWrap})
	dc.Write(gfx.Pt(8, h/2+16), fmt.Sprintf("%d bytes left over", len(loremText)-start-rest))
	dc.DrawRectangle(gfx.Pt(w/2+3, a.top+7), gfx.Pt(w-7, h/2+1), gfx.Gray)
	dc.SetTextColor(gfx.White, gfx.Black)
}

type imageScene struct {
	img *resource.Memory
}

func (*imageScene) name() string { return "image" }

func (*imageScene) enter(a *App) {}

func (s *imageScene) frame(a *App, dc *display.DrawingContext) {
	a.header(dc, "image")
	w, h := dc.Size()
	iw, ih := s.img.Size()
	dc.ClearRect(gfx.Pt(0, a.top), gfx.Pt(w-1, h-1), gfx.Black)
	// Pan the image inside a window that drifts around the screen.
	p := gfx.Pt((w-iw)/2, a.top+(h-a.top-ih)/2)
	f := float64(a.frames) * 0.05
	cx := int16(float64(w/4) * (1 + math.Sin(f)))
	cy := a.top + int16(float64((h-a.top)/4)*(1+math.Cos(f*0.8)))
	dc.ClippedDrawImage(p, gfx.Pt(cx, cy), gfx.Pt(cx+w/2-1, cy+(h-a.top)/2-1), s.img)
}

type termScene struct {
	con *console.Console
}

func (*termScene) name() string { return "term" }

func (s *termScene) enter(a *App) {
	if s.con == nil {
		s.con = console.New(a.d, font6x8.Font, console.Config{LineSpacing: 1})
	} else {
		s.con.Reset()
	}
	fmt.Fprintf(s.con, "\x1b[32mlcdgfx terminal\x1b[0m\r\ntype to echo, arrows switch scenes\r\n")
}

func (s *termScene) tick(a *App) {
	if a.frames%60 == 0 {
		fmt.Fprintf(s.con, "\r\nframe %d ", a.frames)
	}
}

func (*termScene) frame(a *App, dc *display.DrawingContext) {}
