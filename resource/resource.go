// Package resource provides the image sources drawn with DrawImage: images
// held in memory and images streamed row by row from storage.
package resource

import (
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"math/bits"

	"github.com/disintegration/imaging"
	"tinygo.org/x/drivers/pixel"

	"lcdgfx/gfx"
	"lcdgfx/internal/logging"
)

// Memory is an image held in memory, row by row. Backends copy its pixels
// directly.
type Memory struct {
	w, h int16
	pix  []gfx.Color
}

// NewMemory wraps pix, which must hold w*h pixels.
func NewMemory(w, h int16, pix []gfx.Color) (*Memory, error) {
	if w <= 0 || h <= 0 || len(pix) != int(w)*int(h) {
		return nil, fmt.Errorf("%w: %dx%d image with %d pixels", gfx.ErrGeometry, w, h, len(pix))
	}
	return &Memory{w: w, h: h, pix: pix}, nil
}

func (m *Memory) Size() (w, h int16) { return m.w, m.h }

func (m *Memory) Pixels() []gfx.Color { return m.pix }

func (m *Memory) ScanLine(x, y int16, dst []gfx.Color) {
	i := int(y)*int(m.w) + int(x)
	copy(dst, m.pix[i:i+len(dst)])
}

// FromImage converts img to RGB565, dropping the low bits of each channel.
// Images larger than the coordinate range are cropped.
func FromImage(img image.Image) *Memory {
	b := img.Bounds()
	w := min(b.Dx(), 0x7FFF)
	h := min(b.Dy(), 0x7FFF)
	pix := make([]gfx.Color, w*h)
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			row := nrgba.Pix[nrgba.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < w; x++ {
				p := row[x*4:]
				pix[y*w+x] = gfx.RGB(p[0], p[1], p[2])
			}
		}
	} else {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				pix[y*w+x] = gfx.FromRGBA(img.At(b.Min.X+x, b.Min.Y+y))
			}
		}
	}
	return &Memory{w: int16(w), h: int16(h), pix: pix}
}

// Fit scales img down to fit within w x h, keeping its aspect ratio.
func Fit(img image.Image, w, h int) *Memory {
	return FromImage(imaging.Fit(img, w, h, imaging.Lanczos))
}

// Load decodes the image file at path and fits it within w x h.
func Load(path string, w, h int) (*Memory, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("resource: open %s: %w", path, err)
	}
	return Fit(img, w, h), nil
}

// FromPixelImage copies a tinygo drivers RGB565 buffer.
func FromPixelImage(img pixel.Image[pixel.RGB565BE]) *Memory {
	w, h := img.Size()
	pix := make([]gfx.Color, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*w+x] = gfx.Color(bits.ReverseBytes16(uint16(img.Get(x, y))))
		}
	}
	return &Memory{w: int16(w), h: int16(h), pix: pix}
}

// Stream reads little-endian RGB565 rows from r on demand. Read failures are
// logged and leave the requested pixels black.
type Stream struct {
	r    io.ReaderAt
	off  int64
	w, h int16
	buf  []byte
}

// NewStream reads a w x h image stored at offset off of r.
func NewStream(r io.ReaderAt, off int64, w, h int16) (*Stream, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d stream", gfx.ErrGeometry, w, h)
	}
	return &Stream{r: r, off: off, w: w, h: h, buf: make([]byte, int(w)*2)}, nil
}

func (s *Stream) Size() (w, h int16) { return s.w, s.h }

func (s *Stream) ScanLine(x, y int16, dst []gfx.Color) {
	if len(dst) > len(s.buf)/2 {
		dst = dst[:len(s.buf)/2]
	}
	n := len(dst) * 2
	pos := s.off + (int64(y)*int64(s.w)+int64(x))*2
	if _, err := s.r.ReadAt(s.buf[:n], pos); err != nil {
		logging.L().Debug("image row read failed", "row", y, "col", x, "err", err)
		gfx.Fill(dst, gfx.Black)
		return
	}
	for i := range dst {
		dst[i] = gfx.Color(binary.LittleEndian.Uint16(s.buf[i*2:]))
	}
}

// Encode writes m as little-endian RGB565 rows, the layout Stream reads.
func Encode(w io.Writer, m gfx.DirectImage) error {
	pix := m.Pixels()
	buf := make([]byte, len(pix)*2)
	for i, c := range pix {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(c))
	}
	_, err := w.Write(buf)
	return err
}

var (
	_ gfx.DirectImage = (*Memory)(nil)
	_ gfx.Image       = (*Stream)(nil)
)
