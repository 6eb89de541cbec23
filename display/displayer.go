package display

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"

	"lcdgfx/gfx"
)

var errRotation = errors.New("display: rotation is fixed by the backend")

// Displayer lets code written against tinygo drivers (tinyfont, tinyterm)
// draw on a Display. It draws through the session bound with Bind; with no
// session bound, drawing is dropped.
type Displayer struct {
	d  *Display
	dc *DrawingContext
}

// NewDisplayer adapts d.
func NewDisplayer(d *Display) *Displayer { return &Displayer{d: d} }

// Bind routes drawing to dc; nil unbinds.
func (a *Displayer) Bind(dc *DrawingContext) { a.dc = dc }

func (a *Displayer) Size() (x, y int16) { return a.d.Size() }

// SetPixel drops pixels off the panel, as tinygo drivers do.
func (a *Displayer) SetPixel(x, y int16, c color.RGBA) {
	w, h := a.d.Size()
	if a.dc == nil || !gfx.Pt(x, y).In(w, h) {
		return
	}
	a.dc.SetPixel(gfx.Pt(x, y), gfx.FromRGBA(c))
}

// Display does nothing: the panel is updated when the session closes.
func (a *Displayer) Display() error { return nil }

func (a *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if a.dc == nil || width <= 0 || height <= 0 {
		return nil
	}
	w, h := a.d.Size()
	r := gfx.R(gfx.Pt(x, y), gfx.Pt(x+width-1, y+height-1)).Intersect(gfx.Screen(w, h))
	if !r.Empty() {
		a.dc.ClearRect(r.Min, r.Max, gfx.FromRGBA(c))
	}
	return nil
}

// SetScroll is a no-op; terminals on a Display scroll in software.
func (a *Displayer) SetScroll(line int16) {}

// SetRotation accepts only the unrotated orientation.
func (a *Displayer) SetRotation(rotation drivers.Rotation) error {
	if rotation != drivers.Rotation0 {
		return errRotation
	}
	return nil
}

var _ drivers.Displayer = (*Displayer)(nil)
