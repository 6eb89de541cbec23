package display

import (
	"log/slog"
	"sync"

	"lcdgfx/font"
	"lcdgfx/fonts/font6x8"
	"lcdgfx/gfx"
	"lcdgfx/internal/logging"
)

// SetLogger installs the logger used by display and the packages built on
// it. nil restores the silent default.
func SetLogger(l *slog.Logger) { logging.Set(l) }

// Display owns one backend. All drawing goes through a DrawingContext; the
// display's mutex serializes sessions from different goroutines.
//
// The mutex is not recursive: acquiring a second context on the same display
// from inside a session deadlocks.
type Display struct {
	mu   sync.Mutex
	name string
	b    Backend

	font *font.Font
	pal  font.Palette
	on   bool
}

// New wraps b. The display starts with the built-in 6x8 font, white on black.
func New(name string, b Backend) *Display {
	return &Display{
		name: name,
		b:    b,
		font: font6x8.Font,
		pal:  font.GeneratePalette(gfx.White, gfx.Black),
	}
}

func (d *Display) Name() string { return d.name }

// Size is the backend's resolution.
func (d *Display) Size() (w, h int16) { return d.b.Size() }

// Backend returns the wrapped backend. Drawing on it directly bypasses the
// display's lock.
func (d *Display) Backend() Backend { return d.b }

// Acquire blocks until the display is free and opens a drawing session.
func (d *Display) Acquire() *DrawingContext {
	d.mu.Lock()
	return &DrawingContext{d: d, b: d.b}
}

// TryAcquire opens a session if the display is free.
func (d *Display) TryAcquire() (*DrawingContext, bool) {
	if !d.mu.TryLock() {
		return nil, false
	}
	return &DrawingContext{d: d, b: d.b}, true
}

// TurnOn powers the panel up if the backend supports it.
func (d *Display) TurnOn() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p, ok := d.b.(Power); ok {
		p.TurnOn()
	}
	d.on = true
	logging.L().Info("display on", "name", d.name)
}

// TurnOff powers the panel down if the backend supports it.
func (d *Display) TurnOff() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p, ok := d.b.(Power); ok {
		p.TurnOff()
	}
	d.on = false
	logging.L().Info("display off", "name", d.name)
}

// IsOn reports the last power state requested.
func (d *Display) IsOn() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.on
}

// SetBrightness sets the backlight, clamped to 0..100.
func (d *Display) SetBrightness(level int) {
	level = max(0, min(level, 100))
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.b.(Power)
	if !ok {
		logging.L().Debug("brightness not supported", "name", d.name)
		return
	}
	p.SetBrightness(level)
}

// DrawingContext is one drawing session on a Display. It holds the display's
// lock until Close and must not be shared between goroutines.
type DrawingContext struct {
	d      *Display
	b      Backend
	closed bool
}

// Close pushes the session's drawing to the panel and releases the display.
// Calling Close again does nothing.
func (dc *DrawingContext) Close() error {
	if dc.closed {
		return nil
	}
	dc.closed = true
	err := dc.b.Update()
	if err != nil {
		logging.L().Warn("display update failed", "name", dc.d.name, "err", err)
	}
	dc.d.mu.Unlock()
	return err
}

func (dc *DrawingContext) Size() (w, h int16) { return dc.b.Size() }

func (dc *DrawingContext) Width() int16 {
	w, _ := dc.b.Size()
	return w
}

func (dc *DrawingContext) Height() int16 {
	_, h := dc.b.Size()
	return h
}

// Begin opens a pixel iterator on the window p1..p2.
func (dc *DrawingContext) Begin(p1, p2 gfx.Point, dir gfx.Direction) gfx.PixelIterator {
	return dc.b.Begin(p1, p2, dir)
}

func (dc *DrawingContext) Clear(c gfx.Color) { dc.b.Clear(c) }

func (dc *DrawingContext) ClearRect(p1, p2 gfx.Point, c gfx.Color) { dc.b.ClearRect(p1, p2, c) }

func (dc *DrawingContext) SetPixel(p gfx.Point, c gfx.Color) { dc.b.SetPixel(p, c) }

func (dc *DrawingContext) Line(a, b gfx.Point, c gfx.Color) { dc.b.Line(a, b, c) }

func (dc *DrawingContext) DrawRectangle(a, b gfx.Point, c gfx.Color) { dc.b.DrawRectangle(a, b, c) }

// ScanLine writes colors on row p.Y starting at p.X.
func (dc *DrawingContext) ScanLine(p gfx.Point, colors []gfx.Color) { dc.b.ScanLine(p, colors) }

// ScanLineBuffer returns a screen-wide scratch row owned by the backend.
func (dc *DrawingContext) ScanLineBuffer() []gfx.Color { return dc.b.ScanLineBuffer() }

func (dc *DrawingContext) DrawImage(p gfx.Point, img gfx.Image) { dc.b.DrawImage(p, img) }

func (dc *DrawingContext) ClippedDrawImage(p, a, b gfx.Point, img gfx.Image) {
	dc.b.ClippedDrawImage(p, a, b, img)
}

// SetFont selects the font for Write; it stays selected on the display.
func (dc *DrawingContext) SetFont(f *font.Font) {
	if f != nil {
		dc.d.font = f
	}
}

func (dc *DrawingContext) Font() *font.Font { return dc.d.font }

// SetTextColor sets the text foreground and background and regenerates the
// antialiasing palette.
func (dc *DrawingContext) SetTextColor(fg, bg gfx.Color) {
	dc.d.pal = font.GeneratePalette(fg, bg)
}

// TextColor returns the current foreground and background.
func (dc *DrawingContext) TextColor() (fg, bg gfx.Color) { return dc.d.pal[3], dc.d.pal[0] }

// Write draws text at p with the current font and colors.
func (dc *DrawingContext) Write(p gfx.Point, text string) {
	dc.d.font.Draw(dc.b, dc.d.pal, p, text)
}

// ClippedWrite draws text at p showing only the part inside a..b.
func (dc *DrawingContext) ClippedWrite(p, a, b gfx.Point, text string) {
	dc.d.font.DrawClipped(dc.b, dc.d.pal, p, a, b, text)
}
