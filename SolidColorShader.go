package velvet

import (
	"github.com/go-gl/mathgl/mgl64"
)

// SolidColorShader renders everything in one color. With a nonzero
// Thickness it extrudes vertices along their normals, which draws an
// outline shell when rendered front-culled behind the main pass.
type SolidColorShader struct {
	ViewProjection mgl64.Mat4
	Model          mgl64.Mat4
	Color          Color
	Thickness      float64
}

func NewSolidColorShader(viewProjection mgl64.Mat4, color Color) *SolidColorShader {
	return &SolidColorShader{
		ViewProjection: viewProjection,
		Model:          mgl64.Ident4(),
		Color:          color,
	}
}

func (s *SolidColorShader) SetViewProjection(m mgl64.Mat4) {
	s.ViewProjection = m
}

func (s *SolidColorShader) PushModelMatrix(m mgl64.Mat4) func() {
	prev := s.Model
	s.Model = prev.Mul4(m)
	return func() { s.Model = prev }
}

func (s *SolidColorShader) Vertex(v Vertex) Vertex {
	extruded := v.Position.Add(v.Normal.Mul(s.Thickness))
	v.Output = s.ViewProjection.Mul4(s.Model).Mul4x1(extruded.Vec4(1))
	return v
}

func (s *SolidColorShader) Fragment(v Vertex, fromObject *Object) Color {
	return s.Color
}
