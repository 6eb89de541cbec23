//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"

	"lcdgfx/internal/buildinfo"
)

// RunWindow opens a desktop window showing the simulated panel and forwards
// keyboard input. step runs once per window tick. It blocks until the window
// closes or step fails.
func RunWindow(cfg SimulatorConfig, newApp func(HAL) func() error) error {
	h := New(cfg)
	step := newApp(h)

	w, ht := h.sim.Size()
	g := &hostGame{h: h, step: step, w: int(w), ht: int(ht)}
	ebiten.SetWindowTitle(h.cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(g.w*h.cfg.Scale, g.ht*h.cfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *Host
	step  func() error
	w, ht int

	frame   uint64
	level   int
	scratch []byte
	rgba    []byte
	img     *ebiten.Image
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step != nil {
		return g.step()
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.scratch = make([]byte, g.w*g.ht*2)
		g.rgba = make([]byte, g.w*g.ht*4)
		g.img = ebiten.NewImage(g.w, g.ht)
	}
	// Only frames published by a finished drawing session are shown.
	n := g.h.sim.Framebuffer().Snapshot(g.scratch)
	if lvl := g.h.sim.Level(); n != g.frame || lvl != g.level {
		g.frame, g.level = n, lvl
		expand(g.rgba, g.scratch, lvl)
		g.img.WritePixels(g.rgba)
	}
	screen.DrawImage(g.img, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.ht
}
