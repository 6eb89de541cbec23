// Package app is the demo shown on the simulator and on devices: a rotating
// solid and wireframe cube, wrapped text, an image and a terminal.
package app

import (
	"errors"
	"fmt"
	"time"

	"lcdgfx/display"
	"lcdgfx/font"
	"lcdgfx/fonts/facefont"
	"lcdgfx/gfx"
	"lcdgfx/hal"
	"lcdgfx/internal/buildinfo"
	"lcdgfx/internal/logging"
	"lcdgfx/resource"
)

// ErrQuit is returned by the step function when the user asks to leave.
var ErrQuit = errors.New("app: quit")

type Config struct {
	// Scene is the scene shown first: solid, wire, text, image or term.
	Scene string
	// Image is an image file for the image scene; a test pattern is shown
	// when empty.
	Image string
}

type scene interface {
	name() string
	enter(a *App)
	frame(a *App, dc *display.DrawingContext)
}

// ticker scenes draw through their own sessions, before the frame's.
type ticker interface {
	tick(a *App)
}

type App struct {
	d     *display.Display
	kbd   hal.Keyboard
	title *font.Font
	top   int16 // first row below the title bar

	scenes []scene
	cur    int
	frames int
}

// New builds the demo on display 0 of h and returns its step function, to
// be called once per tick.
func New(h hal.HAL, cfg Config) (func() error, error) {
	d, err := h.Displays().Display(0)
	if err != nil {
		return nil, err
	}
	title, err := facefont.Basic()
	if err != nil {
		return nil, fmt.Errorf("app: title font: %w", err)
	}
	a := &App{d: d, kbd: h.Keyboard(), title: title, top: title.Height() + 1}

	img, err := a.loadImage(cfg.Image)
	if err != nil {
		return nil, err
	}
	a.scenes = []scene{
		newCubeScene(true),
		newCubeScene(false),
		&textScene{},
		&imageScene{img: img},
		&termScene{},
	}
	for i, s := range a.scenes {
		if s.name() == cfg.Scene {
			a.cur = i
		}
	}
	logging.L().Info("demo started", append(buildinfo.Attrs(), "scene", a.scenes[a.cur].name())...)
	a.scenes[a.cur].enter(a)
	return a.step, nil
}

// Run steps the demo at about 30 frames per second until it quits.
func Run(h hal.HAL, cfg Config) error {
	step, err := New(h, cfg)
	if err != nil {
		return err
	}
	for {
		if err := step(); err != nil {
			return err
		}
		time.Sleep(33 * time.Millisecond)
	}
}

func (a *App) step() (err error) {
	defer func() {
		if r := recover(); r != nil {
			a.showPanic(r)
			err = fmt.Errorf("app: panic: %v", r)
		}
	}()
	for {
		select {
		case ev := <-a.kbd.Events():
			if quit := a.key(ev); quit {
				return ErrQuit
			}
			continue
		default:
		}
		break
	}
	a.frames++
	if t, ok := a.scenes[a.cur].(ticker); ok {
		t.tick(a)
	}
	dc := a.d.Acquire()
	defer dc.Close()
	a.scenes[a.cur].frame(a, dc)
	return nil
}

func (a *App) key(ev hal.KeyEvent) bool {
	if !ev.Press {
		return false
	}
	switch {
	case ev.Code == hal.KeyEscape:
		return true
	case ev.Code == hal.KeyRight || ev.Code == hal.KeyTab:
		a.switchTo((a.cur + 1) % len(a.scenes))
	case ev.Code == hal.KeyLeft:
		a.switchTo((a.cur + len(a.scenes) - 1) % len(a.scenes))
	case ev.Rune >= '1' && int(ev.Rune-'1') < len(a.scenes):
		a.switchTo(int(ev.Rune - '1'))
	case ev.Rune != 0:
		if t, ok := a.scenes[a.cur].(*termScene); ok && t.con != nil {
			fmt.Fprintf(t.con, "%c", ev.Rune)
		}
	}
	return false
}

func (a *App) switchTo(i int) {
	a.cur = i
	a.frames = 0
	logging.L().Debug("scene", "name", a.scenes[i].name())
	a.scenes[i].enter(a)
}

// header draws the scene title bar.
func (a *App) header(dc *display.DrawingContext, text string) {
	w, _ := dc.Size()
	prev := dc.Font()
	fg, bg := dc.TextColor()
	dc.SetFont(a.title)
	dc.SetTextColor(gfx.Black, gfx.Cyan)
	dc.ClearRect(gfx.Pt(0, 0), gfx.Pt(w-1, a.top-1), gfx.Cyan)
	dc.ClippedWrite(gfx.Pt(2, 0), gfx.Pt(0, 0), gfx.Pt(w-1, a.top-1), text)
	dc.SetFont(prev)
	dc.SetTextColor(fg, bg)
}

func (a *App) loadImage(path string) (*resource.Memory, error) {
	w, h := a.d.Size()
	h -= a.top
	if path != "" {
		return resource.Load(path, int(w), int(h))
	}
	pix := make([]gfx.Color, int(w)*int(h))
	for y := 0; y < int(h); y++ {
		for x := 0; x < int(w); x++ {
			pix[y*int(w)+x] = gfx.RGB(uint8(x*255/int(w)), uint8(y*255/int(h)), uint8((x^y)&0xFF))
		}
	}
	return resource.NewMemory(w, h, pix)
}
