package velvet

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vertex carries the attributes interpolated across a triangle. Output
// is the clip-space position written by the shader's vertex stage.
type Vertex struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
	Texture  mgl64.Vec2
	Color    Color
	Output   mgl64.Vec4
}

// Outside reports whether the clip-space position lies outside the
// viewing volume on any axis.
func (v Vertex) Outside() bool {
	x, y, z, w := v.Output.X(), v.Output.Y(), v.Output.Z(), v.Output.W()
	return x < -w || x > w || y < -w || y > w || z < -w || z > w
}

// Lerp interpolates every attribute toward b by t. Used by clipping,
// which generates new vertices on the clip planes.
func (v Vertex) Lerp(b Vertex, t float64) Vertex {
	n := v.Normal.Add(b.Normal.Sub(v.Normal).Mul(t))
	if n.Len() > 0 {
		n = n.Normalize()
	}
	return Vertex{
		Position: v.Position.Add(b.Position.Sub(v.Position).Mul(t)),
		Normal:   n,
		Texture:  v.Texture.Add(b.Texture.Sub(v.Texture).Mul(t)),
		Color:    v.Color.Lerp(b.Color, t),
		Output:   v.Output.Add(b.Output.Sub(v.Output).Mul(t)),
	}
}

// InterpolateVertexes blends three vertices with normalized barycentric
// weights.
func InterpolateVertexes(v0, v1, v2 Vertex, b mgl64.Vec3) Vertex {
	n := v0.Normal.Mul(b[0]).Add(v1.Normal.Mul(b[1])).Add(v2.Normal.Mul(b[2]))
	if n.Len() > 0 {
		n = n.Normalize()
	}
	return Vertex{
		Position: v0.Position.Mul(b[0]).Add(v1.Position.Mul(b[1])).Add(v2.Position.Mul(b[2])),
		Normal:   n,
		Texture:  v0.Texture.Mul(b[0]).Add(v1.Texture.Mul(b[1])).Add(v2.Texture.Mul(b[2])),
		Color: Color{
			v0.Color.R*b[0] + v1.Color.R*b[1] + v2.Color.R*b[2],
			v0.Color.G*b[0] + v1.Color.G*b[1] + v2.Color.G*b[2],
			v0.Color.B*b[0] + v1.Color.B*b[1] + v2.Color.B*b[2],
			v0.Color.A*b[0] + v1.Color.A*b[1] + v2.Color.A*b[2],
		},
	}
}
