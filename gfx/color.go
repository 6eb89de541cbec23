package gfx

import "image/color"

// Color is a packed RGB565 pixel: rrrrrggggggbbbbb.
type Color uint16

const (
	Black   Color = 0x0000
	White   Color = 0xFFFF
	Red     Color = 0xF800
	Green   Color = 0x07E0
	Blue    Color = 0x001F
	Yellow  Color = 0xFFE0
	Cyan    Color = 0x07FF
	Magenta Color = 0xF81F
	Gray    Color = 0x8410
)

// Channel masks of the 5-6-5 layout.
const (
	RedMask   Color = 0xF800
	GreenMask Color = 0x07E0
	BlueMask  Color = 0x001F
)

// RGB packs 8-bit channels by truncation.
func RGB(r, g, b uint8) Color {
	rr := Color(r>>3) & 0x1F
	gg := Color(g>>2) & 0x3F
	bb := Color(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// FromRGBA converts any color.Color by truncation. Alpha is ignored.
func FromRGBA(c color.Color) Color {
	if c == nil {
		return Black
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// RGB888 expands the channels back to 8 bits.
func (c Color) RGB888() (r, g, b uint8) {
	rr := (uint16(c) >> 11) & 0x1F
	gg := (uint16(c) >> 5) & 0x3F
	bb := uint16(c) & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// RGBA returns the opaque color.RGBA equivalent, as used by tinygo drivers.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.RGB888()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Scale multiplies every channel by f, clamped to [0,1].
func (c Color) Scale(f float32) Color {
	if f <= 0 {
		return Black
	}
	if f >= 1 {
		return c
	}
	r := Color(float32((c>>11)&0x1F) * f)
	g := Color(float32((c>>5)&0x3F) * f)
	b := Color(float32(c&0x1F) * f)
	return (r << 11) | (g << 5) | b
}

// Fill sets every element of dst to c.
func Fill(dst []Color, c Color) {
	if len(dst) == 0 {
		return
	}
	dst[0] = c
	for n := 1; n < len(dst); n *= 2 {
		copy(dst[n:], dst[:n])
	}
}
