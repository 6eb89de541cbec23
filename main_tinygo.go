//go:build tinygo && (picocalc || !baremetal)

package main

import (
	"log/slog"
	"os"

	"lcdgfx/app"
	"lcdgfx/display"
	"lcdgfx/hal"
	"lcdgfx/internal/logging"
)

func main() {
	display.SetLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	if err := app.Run(hal.New(), app.Config{}); err != nil {
		logging.L().Error("demo stopped", "err", err)
	}
	select {}
}
