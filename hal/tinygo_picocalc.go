//go:build tinygo && baremetal && picocalc

package hal

import (
	"time"

	"lcdgfx/display"
	"lcdgfx/framebuf"
	"lcdgfx/internal/logging"
)

type picoCalcHAL struct {
	displays *display.Manager
	kbd      Keyboard
}

// New returns the PicoCalc HAL (Pico/Pico2 on the PicoCalc carrier): the
// ILI9488 panel and the I2C keyboard, which also owns the backlight.
func New() HAL {
	h := &picoCalcHAL{displays: display.NewManager(), kbd: nullKeyboard{}}

	var backlight func(uint8) error
	if kb, err := initI2CKeyboard(); err == nil {
		h.kbd = newPicoCalcKeyboard(kb)
		backlight = kb.setBacklight
	} else {
		logging.L().Warn("keyboard unavailable", "err", err)
	}

	if lcd, err := newILI9488(backlight); err == nil {
		h.displays.Register(display.New("ili9488", lcd))
	} else {
		logging.L().Error("panel unavailable, drawing off-screen", "err", err)
		h.displays.Register(display.New("offline", framebuf.NewRGB565(ili9488Width, ili9488Height)))
	}
	return h
}

func (h *picoCalcHAL) Displays() *display.Manager { return h.displays }
func (h *picoCalcHAL) Keyboard() Keyboard         { return h.kbd }

type picoCalcKeyboard struct {
	ch chan KeyEvent
}

func (k *picoCalcKeyboard) Events() <-chan KeyEvent { return k.ch }

func newPicoCalcKeyboard(kbd *i2cKeyboard) *picoCalcKeyboard {
	dev := &picoCalcKeyboard{ch: make(chan KeyEvent, 64)}
	go func() {
		for {
			if ev, ok := kbd.readEvent(); ok {
				select {
				case dev.ch <- ev:
				default:
				}
			}
			time.Sleep(2 * time.Millisecond)
		}
	}()
	return dev
}
