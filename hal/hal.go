// Package hal binds displays and input to the platform: a simulator window
// or headless runner on the host, real panels under TinyGo.
package hal

import (
	"errors"

	"lcdgfx/display"
)

var ErrNotImplemented = errors.New("not implemented")

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
)

// KeyEvent is a keyboard event. Text input has Code KeyUnknown and a Rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// HAL is what an application gets from the platform.
type HAL interface {
	// Displays holds every panel; index 0 is the main one.
	Displays() *display.Manager
	Keyboard() Keyboard
}

type nullKeyboard struct{}

func (nullKeyboard) Events() <-chan KeyEvent { return nil }
