package velvet

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Triangle is the rasterization primitive.
type Triangle struct {
	V1, V2, V3 Vertex
}

func NewTriangle(v1, v2, v3 Vertex) *Triangle {
	return &Triangle{v1, v2, v3}
}

// Normal returns the geometric face normal.
func (t *Triangle) Normal() mgl64.Vec3 {
	e1 := t.V2.Position.Sub(t.V1.Position)
	e2 := t.V3.Position.Sub(t.V1.Position)
	n := e1.Cross(e2)
	if n.Len() == 0 {
		return mgl64.Vec3{0, 0, 1}
	}
	return n.Normalize()
}

// FixNormals fills in missing vertex normals with the face normal.
func (t *Triangle) FixNormals() {
	n := t.Normal()
	zero := mgl64.Vec3{}
	if t.V1.Normal == zero {
		t.V1.Normal = n
	}
	if t.V2.Normal == zero {
		t.V2.Normal = n
	}
	if t.V3.Normal == zero {
		t.V3.Normal = n
	}
}

// SetColor sets the vertex color on all three corners.
func (t *Triangle) SetColor(c Color) {
	t.V1.Color = c
	t.V2.Color = c
	t.V3.Color = c
}

// BoundingBox returns the axis-aligned bounds of the triangle.
func (t *Triangle) BoundingBox() Box {
	min := vecMin(t.V1.Position, vecMin(t.V2.Position, t.V3.Position))
	max := vecMax(t.V1.Position, vecMax(t.V2.Position, t.V3.Position))
	return Box{min, max}
}

// Line is the wireframe primitive.
type Line struct {
	V1, V2 Vertex
}

func NewLine(v1, v2 Vertex) *Line {
	return &Line{v1, v2}
}

func (l *Line) BoundingBox() Box {
	return Box{vecMin(l.V1.Position, l.V2.Position), vecMax(l.V1.Position, l.V2.Position)}
}
