package velvet

import (
	"github.com/fogleman/simplify"
	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is a bag of triangles and wireframe lines.
type Mesh struct {
	Triangles []*Triangle
	Lines     []*Line
}

func NewMesh(triangles []*Triangle, lines []*Line) *Mesh {
	return &Mesh{triangles, lines}
}

func NewTriangleMesh(triangles []*Triangle) *Mesh {
	return &Mesh{Triangles: triangles}
}

func NewLineMesh(lines []*Line) *Mesh {
	return &Mesh{Lines: lines}
}

// BoundingBox returns the bounds of every primitive in the mesh.
func (m *Mesh) BoundingBox() Box {
	box := EmptyBox
	for _, t := range m.Triangles {
		box = box.Extend(t.BoundingBox())
	}
	for _, l := range m.Lines {
		box = box.Extend(l.BoundingBox())
	}
	return box
}

// Transform applies a matrix to every vertex position and its normal.
func (m *Mesh) Transform(matrix mgl64.Mat4) {
	normalMatrix := matrix.Inv().Transpose()
	update := func(v *Vertex) {
		v.Position = matrix.Mul4x1(v.Position.Vec4(1)).Vec3()
		if v.Normal.Len() > 0 {
			v.Normal = normalMatrix.Mul4x1(v.Normal.Vec4(0)).Vec3().Normalize()
		}
	}
	for _, t := range m.Triangles {
		update(&t.V1)
		update(&t.V2)
		update(&t.V3)
	}
	for _, l := range m.Lines {
		update(&l.V1)
		update(&l.V2)
	}
}

// SetColor sets the vertex color across the whole mesh.
func (m *Mesh) SetColor(c Color) {
	for _, t := range m.Triangles {
		t.SetColor(c)
	}
	for _, l := range m.Lines {
		l.V1.Color = c
		l.V2.Color = c
	}
}

// Simplify decimates the triangle mesh to factor times its current
// triangle count using quadric edge collapse. Texture coordinates and
// vertex colors do not survive decimation; normals are rebuilt from the
// faces. Lines pass through untouched.
func (m *Mesh) Simplify(factor float64) *Mesh {
	src := make([]*simplify.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		src[i] = simplify.NewTriangle(
			simplifyVector(t.V1.Position),
			simplifyVector(t.V2.Position),
			simplifyVector(t.V3.Position),
		)
	}
	simplified := simplify.NewMesh(src).Simplify(factor)
	triangles := make([]*Triangle, len(simplified.Triangles))
	for i, t := range simplified.Triangles {
		nt := &Triangle{}
		nt.V1.Position = meshVector(t.V1)
		nt.V2.Position = meshVector(t.V2)
		nt.V3.Position = meshVector(t.V3)
		nt.FixNormals()
		triangles[i] = nt
	}
	return &Mesh{Triangles: triangles, Lines: m.Lines}
}

func simplifyVector(v mgl64.Vec3) simplify.Vector {
	return simplify.Vector{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func meshVector(v simplify.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
