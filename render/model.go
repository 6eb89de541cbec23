package render

import (
	"errors"
	"fmt"

	"lcdgfx/gfx"
)

var ErrInvalidModel = errors.New("render: invalid model")

// Vertex is a model-space point.
type Vertex struct {
	X, Y, Z int16
}

// Shape tells how many of a polygon's indices are used.
type Shape uint8

const (
	Triangle Shape = iota
	Quad
)

func (s Shape) corners() int {
	if s == Quad {
		return 4
	}
	return 3
}

// Polygon is a face of a model. Quads are split along V[0]-V[2].
type Polygon struct {
	Shape Shape
	V     [4]uint16
	// Color replaces the engine's foreground color when HasColor is set.
	Color    gfx.Color
	HasColor bool
}

// Model is a polygon mesh. The engines keep a reference to it; the caller
// must not change it while it is set on an engine.
type Model struct {
	Vertices []Vertex
	Polygons []Polygon
}

// Validate checks that the model is non-empty and every index is in range.
func (m *Model) Validate() error {
	if m == nil || len(m.Vertices) == 0 || len(m.Polygons) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidModel)
	}
	for i, p := range m.Polygons {
		if p.Shape > Quad {
			return fmt.Errorf("%w: polygon %d has shape %d", ErrInvalidModel, i, p.Shape)
		}
		for _, v := range p.V[:p.Shape.corners()] {
			if int(v) >= len(m.Vertices) {
				return fmt.Errorf("%w: polygon %d references vertex %d of %d", ErrInvalidModel, i, v, len(m.Vertices))
			}
		}
	}
	return nil
}

// Cube returns a cube of the given half size centered on the origin, with
// clockwise front faces when viewed from +z.
func Cube(half int16) *Model {
	h := half
	return &Model{
		Vertices: []Vertex{
			{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
			{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		},
		Polygons: []Polygon{
			{Shape: Quad, V: [4]uint16{0, 1, 2, 3}},
			{Shape: Quad, V: [4]uint16{5, 4, 7, 6}},
			{Shape: Quad, V: [4]uint16{4, 0, 3, 7}},
			{Shape: Quad, V: [4]uint16{1, 5, 6, 2}},
			{Shape: Quad, V: [4]uint16{4, 5, 1, 0}},
			{Shape: Quad, V: [4]uint16{3, 2, 6, 7}},
		},
	}
}
