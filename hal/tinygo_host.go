//go:build tinygo && !baremetal

package hal

import (
	"lcdgfx/display"
	"lcdgfx/framebuf"
)

type tinyGoHostHAL struct {
	displays *display.Manager
}

// New returns a HAL for TinyGo targets without pins (linux, wasm): one
// off-screen RGB565 panel and no keyboard.
func New() HAL {
	h := &tinyGoHostHAL{displays: display.NewManager()}
	h.displays.Register(display.New("memory", framebuf.NewRGB565(320, 320)))
	return h
}

func (h *tinyGoHostHAL) Displays() *display.Manager { return h.displays }
func (h *tinyGoHostHAL) Keyboard() Keyboard         { return nullKeyboard{} }
