// Package display is the drawing façade applications use: a Display wraps
// one backend and hands out DrawingContexts, each holding the display's
// lock for the length of one drawing session.
package display

import "lcdgfx/gfx"

// Backend is what a display controller driver provides. Framebuffers in
// package framebuf implement it directly; iterator-only devices embed
// Primitives for everything but Begin.
//
// Invalid geometry is clipped or ignored on production backends. Debug
// backends may panic instead.
type Backend interface {
	gfx.Surface

	Clear(c gfx.Color)
	ClearRect(p1, p2 gfx.Point, c gfx.Color)
	SetPixel(p gfx.Point, c gfx.Color)
	Line(a, b gfx.Point, c gfx.Color)
	ScanLine(p gfx.Point, colors []gfx.Color)
	ScanLineBuffer() []gfx.Color
	DrawImage(p gfx.Point, img gfx.Image)
	ClippedDrawImage(p, a, b gfx.Point, img gfx.Image)
	DrawRectangle(a, b gfx.Point, c gfx.Color)

	// Update pushes pending drawing to the panel. It runs when a drawing
	// session ends.
	Update() error
}

// Power is implemented by backends that control the panel itself.
type Power interface {
	TurnOn()
	TurnOff()
	// SetBrightness takes 0 (off) to 100 (full).
	SetBrightness(level int)
}
