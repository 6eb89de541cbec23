//go:build !tinygo

package hal

import "lcdgfx/display"

// Host is the desktop HAL: one simulated panel and the window's keyboard.
type Host struct {
	cfg      SimulatorConfig
	sim      *Simulator
	displays *display.Manager
	kbd      *hostKeyboard
}

// New returns a host HAL with a simulated panel sized by cfg.
func New(cfg SimulatorConfig) *Host {
	cfg.defaults()
	h := &Host{
		cfg:      cfg,
		sim:      NewSimulator(cfg.Width, cfg.Height),
		displays: display.NewManager(),
		kbd:      newHostKeyboard(),
	}
	h.displays.Register(display.New("simulator", h.sim))
	return h
}

func (h *Host) Displays() *display.Manager { return h.displays }
func (h *Host) Keyboard() Keyboard         { return h.kbd }

// Simulator is the backend of display 0.
func (h *Host) Simulator() *Simulator { return h.sim }

// hostKeyboard queues events from the window, or from a headless key script.
type hostKeyboard struct {
	ch    chan KeyEvent
	runes []rune
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// emit drops the event when the application stopped reading.
func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

var scriptKeys = map[rune]KeyCode{
	'\t':   KeyTab,
	'\n':   KeyEnter,
	'\r':   KeyEnter,
	'\x1b': KeyEscape,
	'\b':   KeyBackspace,
}

// typeRune presses and releases r, as a key code when it has one.
func (k *hostKeyboard) typeRune(r rune) {
	if code, ok := scriptKeys[r]; ok {
		k.emit(KeyEvent{Code: code, Press: true})
		k.emit(KeyEvent{Code: code})
		return
	}
	k.emit(KeyEvent{Press: true, Rune: r})
}
