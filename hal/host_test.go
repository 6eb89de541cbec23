//go:build !tinygo

package hal

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"lcdgfx/gfx"
)

func TestRunHeadlessDumpsFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	steps := 0
	err := RunHeadless(context.Background(), SimulatorConfig{Width: 8, Height: 4}, func(h HAL) func() error {
		d, err := h.Displays().Display(0)
		if err != nil {
			t.Fatal(err)
		}
		return func() error {
			steps++
			dc := d.Acquire()
			defer dc.Close()
			dc.Clear(gfx.Black)
			dc.SetPixel(gfx.Pt(int16(steps), 1), gfx.Red)
			return nil
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 3, Dump: path})
	if err != nil {
		t.Fatal(err)
	}
	if steps != 3 {
		t.Fatalf("expected 3 steps, got %d", steps)
	}
	img, err := imaging.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Fatalf("expected 8x4, got %v", b)
	}
	if r, g, _, _ := img.At(3, 1).RGBA(); r>>8 != 255 || g != 0 {
		t.Fatalf("expected the last frame's red pixel, got %v", img.At(3, 1))
	}
	if r, _, _, _ := img.At(2, 1).RGBA(); r != 0 {
		t.Fatal("earlier frame leaked into the dump")
	}
}

func TestHostDefaults(t *testing.T) {
	h := New(SimulatorConfig{})
	if w, ht := h.Simulator().Size(); w != 320 || ht != 320 {
		t.Fatalf("expected 320x320, got %dx%d", w, ht)
	}
	if h.Displays().Len() != 1 {
		t.Fatalf("expected one display, got %d", h.Displays().Len())
	}
}

func TestRunHeadlessTypesKeys(t *testing.T) {
	var got []KeyEvent
	err := RunHeadless(context.Background(), SimulatorConfig{Width: 4, Height: 4}, func(h HAL) func() error {
		return func() error {
			for {
				select {
				case ev := <-h.Keyboard().Events():
					got = append(got, ev)
				default:
					return nil
				}
			}
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 3, Keys: "a\t"})
	if err != nil {
		t.Fatal(err)
	}
	want := []KeyEvent{
		{Press: true, Rune: 'a'},
		{Code: KeyTab, Press: true},
		{Code: KeyTab},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
