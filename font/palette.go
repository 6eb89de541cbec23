package font

import "lcdgfx/gfx"

// Palette maps glyph pixel values to colors: entry 0 is the background,
// entry 3 the foreground, 1 and 2 the antialiasing steps between them.
// Plain fonts only use entries 0 and 3.
type Palette [4]gfx.Color

// GeneratePalette interpolates fg over bg at 1/3 and 2/3. Each 5-6-5 channel
// is blended and masked on its own so no carry leaks into its neighbour.
func GeneratePalette(fg, bg gfx.Color) Palette {
	return Palette{bg, blend(fg, bg, 1), blend(fg, bg, 2), fg}
}

// blend returns (n*fg + (3-n)*bg)/3 per channel.
func blend(fg, bg gfx.Color, n uint32) gfx.Color {
	var out gfx.Color
	for _, m := range [...]gfx.Color{gfx.RedMask, gfx.GreenMask, gfx.BlueMask} {
		v := (uint32(fg&m)*n + uint32(bg&m)*(3-n)) / 3
		out |= gfx.Color(v) & m
	}
	return out
}
