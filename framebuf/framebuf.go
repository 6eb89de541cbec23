// Package framebuf implements in-memory display backends over packed byte
// buffers: 1 bit per pixel in SSD1306 page order, 4 bits per pixel with the
// nibble/byte orders found on grayscale OLED controllers, and little-endian
// RGB565.
//
// Every backend validates geometry once per public call and then runs an
// unchecked inner loop. Invalid geometry is clipped or ignored, never
// reported: these are the paths a frame is drawn through.
package framebuf

import (
	"lcdgfx/gfx"
)

// rowWriter is the one operation the shared image blitter needs: store a run
// of already clipped pixels on row y starting at column x.
type rowWriter interface {
	writeRow(x, y int16, row []gfx.Color)
}

// blit draws img at p, clipped to the inclusive rectangle clip (itself
// already inside the screen). scratch must be at least screen-wide.
func blit(dst rowWriter, p gfx.Point, clip gfx.Rect, img gfx.Image, scratch []gfx.Color) {
	if img == nil {
		return
	}
	iw, ih := img.Size()
	if iw <= 0 || ih <= 0 {
		return
	}
	r := gfx.R(p, gfx.Pt(p.X+iw-1, p.Y+ih-1)).Intersect(clip)
	if r.Empty() {
		return
	}
	sx := r.Min.X - p.X
	n := int(r.Dx())
	if direct, ok := img.(gfx.DirectImage); ok {
		pix := direct.Pixels()
		for y := r.Min.Y; y <= r.Max.Y; y++ {
			off := int(y-p.Y)*int(iw) + int(sx)
			if off+n > len(pix) {
				return
			}
			dst.writeRow(r.Min.X, y, pix[off:off+n])
		}
		return
	}
	if len(scratch) < n {
		return
	}
	row := scratch[:n]
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		img.ScanLine(sx, y-p.Y, row)
		dst.writeRow(r.Min.X, y, row)
	}
}

// clipScanLine clips a ScanLine call against a w×h screen.
func clipScanLine(p gfx.Point, colors []gfx.Color, w, h int16) (gfx.Point, []gfx.Color, bool) {
	if p.Y < 0 || p.Y >= h || len(colors) == 0 {
		return p, nil, false
	}
	if p.X < 0 {
		skip := int(-p.X)
		if skip >= len(colors) {
			return p, nil, false
		}
		colors = colors[skip:]
		p.X = 0
	}
	if p.X >= w {
		return p, nil, false
	}
	if room := int(w - p.X); len(colors) > room {
		colors = colors[:room]
	}
	return p, colors, true
}

// clipRect orders and clips p1..p2 to the screen.
func clipRect(p1, p2 gfx.Point, w, h int16) (gfx.Rect, bool) {
	if p1.X > p2.X {
		p1.X, p2.X = p2.X, p1.X
	}
	if p1.Y > p2.Y {
		p1.Y, p2.Y = p2.Y, p1.Y
	}
	r := gfx.R(p1, p2).Intersect(gfx.Screen(w, h))
	return r, !r.Empty()
}
