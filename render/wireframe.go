package render

import (
	"slices"

	"lcdgfx/gfx"
	"lcdgfx/raster"
)

type edge struct {
	a, b uint16
	poly int // polygon the edge was first seen in
}

type activeLine struct {
	fsm    raster.BresenhamFSM
	top    int16
	bottom int16
	color  gfx.Color
}

// Wireframe draws every distinct polygon edge once.
type Wireframe struct {
	scene
	edges  []edge
	lines  []activeLine
	active []int
}

func NewWireframe() *Wireframe {
	return &Wireframe{scene: newScene()}
}

// SetModel validates m and rebuilds the edge list. An edge shared by several
// polygons takes the color of the first one.
func (e *Wireframe) SetModel(m *Model) error {
	e.edges = e.edges[:0]
	if err := e.setModel(m); err != nil {
		return err
	}
	seen := make(map[uint32]struct{}, len(m.Polygons)*3)
	for i := range m.Polygons {
		p := &m.Polygons[i]
		n := p.Shape.corners()
		for k := 0; k < n; k++ {
			a, b := p.V[k], p.V[(k+1)%n]
			if a > b {
				a, b = b, a
			}
			key := uint32(a)<<16 | uint32(b)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			e.edges = append(e.edges, edge{a: a, b: b, poly: i})
		}
	}
	return nil
}

// Edges is the number of distinct edges of the current model.
func (e *Wireframe) Edges() int { return len(e.edges) }

// Render draws one frame. It does nothing until a valid model and draw area
// are set.
func (e *Wireframe) Render(dst ScanLineTarget) {
	if !e.ready() {
		return
	}
	e.project()

	e.lines = e.lines[:0]
	for _, ed := range e.edges {
		if !e.visible[ed.a] || !e.visible[ed.b] {
			continue
		}
		a, b := e.screen[ed.a], e.screen[ed.b]
		top, bottom := min(a.Y, b.Y), max(a.Y, b.Y)
		if bottom < 0 {
			continue
		}
		e.lines = append(e.lines, activeLine{
			fsm:    raster.NewBresenham(a, b),
			top:    top,
			bottom: bottom,
			color:  e.polyColor(&e.model.Polygons[ed.poly]),
		})
	}
	slices.SortFunc(e.lines, func(x, y activeLine) int { return int(x.top) - int(y.top) })

	e.active = e.active[:0]
	next := 0
	h := e.area.Dy()
	for y := int16(0); y < h; y++ {
		for next < len(e.lines) && e.lines[next].top <= y {
			l := &e.lines[next]
			for skip := l.top; skip < y; skip++ {
				l.fsm.LinePoints()
			}
			e.active = append(e.active, next)
			next++
		}

		gfx.Fill(e.row, e.bg)
		kept := e.active[:0]
		for _, i := range e.active {
			l := &e.lines[i]
			l.fsm.DrawScanLine(e.row, l.color)
			if y < l.bottom {
				kept = append(kept, i)
			}
		}
		e.active = kept
		e.emit(dst, y)
	}
}
