//go:build tinygo && baremetal && picocalc

package hal

import (
	"fmt"
	"machine"
	"sync"
	"time"
)

const (
	picoCalcKbdAddr uint16 = 0x1F
	picoCalcKbdFIFO byte   = 0x09
	picoCalcKbdBKL  byte   = 0x05
	picoCalcKbdWr   byte   = 0x80
)

const (
	picoCalcKeyAlt       byte = 0xA1
	picoCalcKeyBackspace byte = 0x08
	picoCalcKeyCtrl      byte = 0xA5
	picoCalcKeyEsc       byte = 0xB1
	picoCalcKeyIns       byte = 0xD1
	picoCalcKeyLeft      byte = 0xB4
	picoCalcKeyUp        byte = 0xB5
	picoCalcKeyDown      byte = 0xB6
	picoCalcKeyRight     byte = 0xB7
)

var picoCalcSpecial = map[byte]KeyCode{
	picoCalcKeyBackspace: KeyBackspace,
	picoCalcKeyEsc:       KeyEscape,
	picoCalcKeyLeft:      KeyLeft,
	picoCalcKeyRight:     KeyRight,
	picoCalcKeyUp:        KeyUp,
	picoCalcKeyDown:      KeyDown,
	picoCalcKeyIns:       KeyTab,
	'\r':                 KeyEnter,
	'\n':                 KeyEnter,
}

// i2cKeyboard talks to the PicoCalc keyboard controller, which also drives
// the panel backlight.
type i2cKeyboard struct {
	mu   sync.Mutex
	i2c  *machine.I2C
	read [2]byte
}

func initI2CKeyboard() (*i2cKeyboard, error) {
	// Prefer I2C1 (original PicoCalc wiring), but some TinyGo targets expose only I2C0.
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			if err := bus.Configure(machine.I2CConfig{
				SCL:       machine.GP7,
				SDA:       machine.GP6,
				Frequency: freq,
			}); err != nil {
				continue
			}
			k := &i2cKeyboard{i2c: bus}
			// The keyboard MCU can be slow to respond after boot.
			for i := 0; i < 50; i++ {
				if k.poll() == nil {
					return k, nil
				}
				time.Sleep(10 * time.Millisecond)
			}
		}
	}
	return nil, fmt.Errorf("keyboard: I2C unavailable")
}

func (k *i2cKeyboard) poll() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.i2c.Tx(picoCalcKbdAddr, []byte{picoCalcKbdFIFO}, k.read[:])
}

func (k *i2cKeyboard) setBacklight(level uint8) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.i2c.Tx(picoCalcKbdAddr, []byte{picoCalcKbdBKL | picoCalcKbdWr, level}, nil)
}

func (k *i2cKeyboard) readEvent() (KeyEvent, bool) {
	if err := k.poll(); err != nil {
		return KeyEvent{}, false
	}
	state, key := k.read[0], k.read[1]
	if key == 0 || key == picoCalcKeyAlt || key == picoCalcKeyCtrl {
		return KeyEvent{}, false
	}
	switch state {
	case 0x01: // pressed
		if code, ok := picoCalcSpecial[key]; ok {
			return KeyEvent{Code: code, Press: true}, true
		}
		return KeyEvent{Press: true, Rune: rune(key)}, true
	case 0x03: // released
		return KeyEvent{Code: picoCalcSpecial[key]}, true
	}
	return KeyEvent{}, false
}
