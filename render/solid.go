package render

import (
	"slices"

	"lcdgfx/gfx"
	"lcdgfx/raster"
)

// Light is an ambient term plus one directional light. Dir is the direction
// the light travels.
type Light struct {
	Ambient float32
	Diffuse float32
	Dir     Vec3
}

// DefaultLight shines from the viewer into the scene.
var DefaultLight = Light{Ambient: 0.25, Diffuse: 0.75, Dir: V3(0, 0, -1)}

func (l Light) intensity(n Vec3) float32 {
	amb := Clamp01(l.Ambient)
	ld := Normalize(l.Dir)
	if ld == (Vec3{}) {
		return amb
	}
	d := Dot(n, ld.Mul(-1))
	if d < 0 {
		d = 0
	}
	return Clamp01(amb + d*Clamp01(l.Diffuse))
}

type face struct {
	a, b, c uint16
	poly    int
}

// Solid fills polygons with flat shading. Overlaps are resolved per
// triangle by the sum of the transformed vertex z values: the larger sum is
// drawn on top.
type Solid struct {
	scene
	light Light
	cull  bool

	faces  []face
	tris   []raster.TriangleFSM
	active []int
}

func NewSolid() *Solid {
	return &Solid{scene: newScene(), light: DefaultLight}
}

// SetModel validates m and splits its polygons into triangles.
func (e *Solid) SetModel(m *Model) error {
	e.faces = e.faces[:0]
	if err := e.setModel(m); err != nil {
		return err
	}
	for i := range m.Polygons {
		p := &m.Polygons[i]
		e.faces = append(e.faces, face{a: p.V[0], b: p.V[1], c: p.V[2], poly: i})
		if p.Shape == Quad {
			e.faces = append(e.faces, face{a: p.V[0], b: p.V[2], c: p.V[3], poly: i})
		}
	}
	return nil
}

// Triangles is the number of triangles of the current model.
func (e *Solid) Triangles() int { return len(e.faces) }

func (e *Solid) SetLight(l Light) { e.light = l }

// SetCulling enables back-face culling. Front faces wind clockwise on the
// screen.
func (e *Solid) SetCulling(on bool) { e.cull = on }

// Render draws one frame. It does nothing until a valid model and draw area
// are set.
func (e *Solid) Render(dst ScanLineTarget) {
	if !e.ready() {
		return
	}
	e.project()

	e.tris = e.tris[:0]
	for _, f := range e.faces {
		if !e.visible[f.a] || !e.visible[f.b] || !e.visible[f.c] {
			continue
		}
		a, b, c := e.screen[f.a], e.screen[f.b], e.screen[f.c]
		if max(a.Y, b.Y, c.Y) < 0 {
			continue
		}
		wa, wb, wc := e.world[f.a], e.world[f.b], e.world[f.c]
		n := Cross(wb.Sub(wa), wc.Sub(wa))
		if e.cull && n.Z <= 0 {
			continue
		}
		col := e.polyColor(&e.model.Polygons[f.poly]).Scale(e.light.intensity(Normalize(n)))
		z := int32(wa.Z) + int32(wb.Z) + int32(wc.Z)
		e.tris = append(e.tris, raster.NewTriangle(a, b, c, col, z))
	}
	slices.SortFunc(e.tris, func(x, y raster.TriangleFSM) int { return int(x.Top()) - int(y.Top()) })

	e.active = e.active[:0]
	next := 0
	h := e.area.Dy()
	for y := int16(0); y < h; y++ {
		for next < len(e.tris) && e.tris[next].Top() <= y {
			t := &e.tris[next]
			for t.ScanLine() < y {
				t.Span()
			}
			e.insert(next)
			next++
		}

		gfx.Fill(e.row, e.bg)
		kept := e.active[:0]
		for _, i := range e.active {
			t := &e.tris[i]
			t.DrawScanLine(e.row)
			if !t.Done() {
				kept = append(kept, i)
			}
		}
		e.active = kept
		e.emit(dst, y)
	}
}

// insert adds triangle i to the active list, keeping it ordered by depth key
// so nearer triangles are drawn last.
func (e *Solid) insert(i int) {
	e.active = append(e.active, i)
	for k := len(e.active) - 1; k > 0; k-- {
		prev := &e.tris[e.active[k-1]]
		if !e.tris[i].Less(prev) {
			break
		}
		e.active[k], e.active[k-1] = e.active[k-1], e.active[k]
	}
}
