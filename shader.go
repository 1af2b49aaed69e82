package velvet

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Shader shades a mesh: Vertex runs once per vertex and must fill in
// Output with the clip-space position, Fragment runs once per covered
// pixel.
type Shader interface {
	Vertex(Vertex) Vertex
	Fragment(Vertex, *Object) Color
}

// MatrixShader is implemented by shaders driven by a view-projection
// matrix, letting the scene refit the camera and the rasterizer compose
// per-object model matrices.
type MatrixShader interface {
	Shader
	SetViewProjection(mgl64.Mat4)
	// PushModelMatrix composes m into the shader's model transform and
	// returns a function restoring the previous state.
	PushModelMatrix(m mgl64.Mat4) func()
}

// StylizedShader implements the toon-leaning lighting model: half-Lambert
// diffuse, Beckmann specular, fabric sheen and a subsurface wrap term,
// with a matcap-style metallic albedo and an optional silhouette outline.
// Which terms reach the final color is controlled by Policy.
type StylizedShader struct {
	ViewProjection mgl64.Mat4
	Model          mgl64.Mat4
	View           mgl64.Mat4 // world-to-view, drives the matcap metal factor
	CameraPosition mgl64.Vec3
	Lights         []LightSample
	Material       Material
	Policy         CompositionPolicy
	EnableOutline  bool
	OutlineColor   Color
	OutlineFactor  float64 // lower is thinner
}

// NewStylizedShader returns a shader with one full-strength white light
// and the diffuse-only composition.
func NewStylizedShader(viewProjection, view mgl64.Mat4, lightDirection, cameraPosition mgl64.Vec3) *StylizedShader {
	return &StylizedShader{
		ViewProjection: viewProjection,
		Model:          mgl64.Ident4(),
		View:           view,
		CameraPosition: cameraPosition,
		Lights: []LightSample{{
			Direction:   lightDirection.Normalize(),
			Color:       White,
			Attenuation: 1,
		}},
		Material:      NewMaterial(),
		Policy:        ComposeDiffuseOnly,
		EnableOutline: true,
		OutlineColor:  HexColor("000000"),
		OutlineFactor: 0.05,
	}
}

func (s *StylizedShader) SetViewProjection(m mgl64.Mat4) {
	s.ViewProjection = m
}

func (s *StylizedShader) PushModelMatrix(m mgl64.Mat4) func() {
	prev := s.Model
	s.Model = prev.Mul4(m)
	return func() { s.Model = prev }
}

func (s *StylizedShader) Vertex(v Vertex) Vertex {
	world := s.Model.Mul4x1(v.Position.Vec4(1))
	v.Output = s.ViewProjection.Mul4x1(world)
	v.Position = world.Vec3()
	if v.Normal.Len() > 0 {
		normalMatrix := s.Model.Inv().Transpose()
		v.Normal = normalMatrix.Mul4x1(v.Normal.Vec4(0)).Vec3().Normalize()
	}
	return v
}

func (s *StylizedShader) Fragment(v Vertex, fromObject *Object) Color {
	viewDirection := s.CameraPosition.Sub(v.Position)
	if viewDirection.Len() > 0 {
		viewDirection = viewDirection.Normalize()
	}

	if s.EnableOutline {
		// Normals nearly perpendicular to the view direction are edges.
		if math.Abs(viewDirection.Dot(v.Normal)) < s.OutlineFactor {
			return s.OutlineColor
		}
	}
	if fromObject.UseVertexColor {
		return v.Color
	}

	mat := s.Material
	if fromObject.Material != nil {
		mat = *fromObject.Material
	}

	// Blend the object color with the base texture sample; premultiplied
	// samples are unpremultiplied before the lerp.
	base := fromObject.Color
	if sample := fromObject.SampleChannel(ChannelBase, v.Texture.X(), v.Texture.Y()); sample.A > 0 {
		base = base.Lerp(sample.DivScalar(sample.A), sample.A)
	}
	if s.Policy == ComposeFull {
		if tint := fromObject.SampleChannel(ChannelSubsurface, v.Texture.X(), v.Texture.Y()); tint.A > 0 {
			mat.SubsurfaceTint = tint
		}
	}

	surface := PrepareSurface(mat, base, v.Normal, s.View)
	sum := Transparent
	for _, light := range s.Lights {
		sum = sum.Add(ShadePoint(surface, mat, light, viewDirection, s.Policy))
	}
	sum = sum.Add(surface.Emission)

	out := sum.Min(White)
	if surface.Alpha > 0 && surface.Alpha < 1 {
		return out.DivScalar(surface.Alpha).Alpha(surface.Alpha)
	}
	return out.Alpha(surface.Alpha)
}
