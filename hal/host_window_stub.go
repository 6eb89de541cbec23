//go:build !tinygo && !cgo

package hal

import (
	"context"

	"lcdgfx/internal/logging"
)

// RunWindow has no window without cgo; it runs the application headless at
// 60 ticks per second until step fails.
func RunWindow(cfg SimulatorConfig, newApp func(HAL) func() error) error {
	logging.L().Warn("window mode requires cgo (CGO_ENABLED=1); running headless")
	return RunHeadless(context.Background(), cfg, newApp, HeadlessConfig{Hz: 60})
}
