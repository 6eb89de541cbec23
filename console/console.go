// Package console runs a VT100-style text terminal on a Display.
package console

import (
	"fmt"

	"tinygo.org/x/tinyterm"

	"lcdgfx/display"
	"lcdgfx/font"
)

// Config controls the terminal layout.
type Config struct {
	// LineSpacing adds blank pixel rows between text lines.
	LineSpacing int16
}

// Console is an io.Writer that prints to a Display through tinyterm. Every
// Write runs in one drawing session; Console is safe for concurrent use.
type Console struct {
	d    *display.Display
	a    *display.Displayer
	font *font.Font
	cfg  Config
	t    *tinyterm.Terminal
}

// New clears d and starts a terminal drawing with f.
func New(d *display.Display, f *font.Font, cfg Config) *Console {
	c := &Console{d: d, a: display.NewDisplayer(d), font: f, cfg: cfg}
	c.Reset()
	return c
}

// Reset clears the screen and homes the cursor.
func (c *Console) Reset() {
	dc := c.d.Acquire()
	defer dc.Close()
	c.a.Bind(dc)
	defer c.a.Bind(nil)

	c.t = tinyterm.NewTerminal(c.a)
	c.t.Configure(&tinyterm.Config{
		Font:              c.font.Fonter(),
		FontHeight:        c.font.Height() + max(c.cfg.LineSpacing, 0),
		FontOffset:        c.font.BaselineOffset(),
		UseSoftwareScroll: true,
	})
	dc.Clear(0)
}

func (c *Console) Write(p []byte) (int, error) {
	dc := c.d.Acquire()
	defer dc.Close()
	c.a.Bind(dc)
	defer c.a.Bind(nil)
	return c.t.Write(p)
}

func (c *Console) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(c, format, args...)
}
