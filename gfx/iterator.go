package gfx

// PixelIterator is an output-only cursor over a rectangular window of pixels.
//
// Put writes one pixel and advances in the window's direction, wrapping to the
// next row (RD) or column (DR). After the last pixel Done reports true and
// further Puts are dropped.
type PixelIterator interface {
	Put(c Color)
	Done() bool
}

// Surface is anything a pixel iterator can be opened on.
//
// Begin opens the window p1 (upper left, inclusive) to p2 (lower right,
// inclusive). A window outside [0,w)×[0,h) or with p2 < p1 on either axis
// yields an iterator that is already Done. Only the iterator returned by the
// latest Begin drives the surface; earlier ones go stale.
type Surface interface {
	Size() (w, h int16)
	Begin(p1, p2 Point, dir Direction) PixelIterator
}

type emptyIterator struct{}

func (emptyIterator) Put(Color)  {}
func (emptyIterator) Done() bool { return true }

// EmptyIterator is returned by Begin for invalid windows.
var EmptyIterator PixelIterator = emptyIterator{}

// Window is the cursor every backend iterator embeds. It owns the window
// bounds so the iterator needs no shared state on the backend besides the
// generation used to detect staleness.
type Window struct {
	Min, Max Point
	Dir      Direction
	X, Y     int16
	done     bool
}

// NewWindow starts a cursor at p1. The caller has validated the window.
func NewWindow(p1, p2 Point, dir Direction) Window {
	return Window{Min: p1, Max: p2, Dir: dir, X: p1.X, Y: p1.Y}
}

// Done reports whether the cursor is past the last pixel.
func (w *Window) Done() bool { return w.done }

// Advance moves the cursor one pixel.
func (w *Window) Advance() {
	if w.done {
		return
	}
	if w.Dir == DR {
		if w.Y < w.Max.Y {
			w.Y++
			return
		}
		w.Y = w.Min.Y
		if w.X < w.Max.X {
			w.X++
			return
		}
	} else {
		if w.X < w.Max.X {
			w.X++
			return
		}
		w.X = w.Min.X
		if w.Y < w.Max.Y {
			w.Y++
			return
		}
	}
	w.done = true
}

// Remaining returns how many pixels are left before Done.
func (w *Window) Remaining() int {
	if w.done {
		return 0
	}
	cols := int(w.Max.X-w.Min.X) + 1
	rows := int(w.Max.Y-w.Min.Y) + 1
	if w.Dir == DR {
		return (int(w.Max.X-w.X))*rows + int(w.Max.Y-w.Y) + 1
	}
	return (int(w.Max.Y-w.Y))*cols + int(w.Max.X-w.X) + 1
}

// Image is a pixel source read one scanline at a time.
//
// ScanLine copies len(dst) pixels of row y, starting at column x, into dst.
// Callers keep x+len(dst) within the image width.
type Image interface {
	Size() (w, h int16)
	ScanLine(x, y int16, dst []Color)
}

// DirectImage is an Image whose pixels are held in memory row by row; backends
// read Pixels directly instead of copying scanlines.
type DirectImage interface {
	Image
	Pixels() []Color
}
