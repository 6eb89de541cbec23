//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"

	"lcdgfx/internal/logging"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	// Ticks stops the runner after that many steps; 0 runs until ctx ends.
	Ticks uint64
	// Dump, if set, is the image file the last published frame is saved to
	// when the runner stops.
	Dump string
	// Keys is typed one rune per tick before the step runs. Tab, newline,
	// escape and backspace arrive as key codes.
	Keys string
}

// RunHeadless runs the application on the simulated panel without opening
// a window.
func RunHeadless(ctx context.Context, sim SimulatorConfig, newApp func(HAL) func() error, cfg HeadlessConfig) (err error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := New(sim)
	step := newApp(h)
	if cfg.Dump != "" {
		defer func() {
			if derr := DumpFrame(h.sim, cfg.Dump); derr != nil && err == nil {
				err = derr
			}
		}()
	}

	t := time.NewTicker(d)
	defer t.Stop()

	keys := []rune(cfg.Keys)
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if len(keys) > 0 {
				h.kbd.typeRune(keys[0])
				keys = keys[1:]
			}
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

// Frame returns the last frame s published, as the panel would show it.
func Frame(s *Simulator) *image.NRGBA {
	w, h := s.Size()
	raw := make([]byte, int(w)*int(h)*2)
	s.Framebuffer().Snapshot(raw)
	img := image.NewNRGBA(image.Rect(0, 0, int(w), int(h)))
	expand(img.Pix, raw, s.Level())
	return img
}

// DumpFrame saves the last published frame; the format follows the file
// extension.
func DumpFrame(s *Simulator, path string) error {
	if err := imaging.Save(Frame(s), path); err != nil {
		return fmt.Errorf("dump frame: %w", err)
	}
	logging.L().Info("frame saved", "path", path)
	return nil
}
