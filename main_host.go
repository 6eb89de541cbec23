//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"lcdgfx/app"
	"lcdgfx/display"
	"lcdgfx/hal"
)

func main() {
	var (
		cfg     hal.HeadlessConfig
		sim     hal.SimulatorConfig
		appCfg  app.Config
		width   int
		height  int
		verbose bool
	)
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 30, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Dump, "dump", "", "Save the last frame to this image file when the headless run ends.")
	flag.StringVar(&cfg.Keys, "keys", "", "Keys typed one per tick in headless mode; a tab switches scenes.")
	flag.StringVar(&appCfg.Scene, "scene", "solid", "First scene: solid, wire, text, image or term.")
	flag.StringVar(&appCfg.Image, "image", "", "Image file for the image scene.")
	flag.IntVar(&width, "width", 320, "Panel width in pixels.")
	flag.IntVar(&height, "height", 320, "Panel height in pixels.")
	flag.IntVar(&sim.Scale, "scale", 2, "Window pixels per panel pixel.")
	flag.BoolVar(&verbose, "v", false, "Debug logging.")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	display.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if width <= 0 || height <= 0 || width > 0x7FFF || height > 0x7FFF {
		fmt.Fprintf(os.Stderr, "invalid panel size %dx%d\n", width, height)
		os.Exit(2)
	}
	sim.Width, sim.Height = int16(width), int16(height)

	newApp := func(h hal.HAL) func() error {
		step, err := app.New(h, appCfg)
		if err != nil {
			return func() error { return err }
		}
		return step
	}

	var err error
	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, sim, newApp, cfg)
	} else {
		err = hal.RunWindow(sim, newApp)
	}
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
