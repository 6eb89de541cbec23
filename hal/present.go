package hal

import "lcdgfx/gfx"

// expand converts little-endian RGB565 pixels to RGBA, dimmed to level
// percent.
func expand(dst, src []byte, level int) {
	level = min(max(level, 0), 100)
	for i, j := 0, 0; i+1 < len(src) && j+3 < len(dst); i, j = i+2, j+4 {
		r, g, b := gfx.Color(uint16(src[i]) | uint16(src[i+1])<<8).RGB888()
		if level < 100 {
			r = uint8(int(r) * level / 100)
			g = uint8(int(g) * level / 100)
			b = uint8(int(b) * level / 100)
		}
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}
