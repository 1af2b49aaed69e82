package velvet

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullscreenTriangle covers the center of the viewport in NDC.
func fullscreenTriangle() *Triangle {
	v := func(x, y float64) Vertex {
		return Vertex{
			Position: mgl64.Vec3{x, y, 0},
			Normal:   mgl64.Vec3{0, 0, 1},
		}
	}
	return NewTriangle(v(-1, -1), v(1, -1), v(0, 1))
}

func TestContextDrawTriangle(t *testing.T) {
	shader := NewSolidColorShader(mgl64.Ident4(), HexColor("ff0000"))
	dc := NewContext(64, 64, shader)
	o := NewTriangleObject([]*Triangle{fullscreenTriangle()})

	dc.DrawObject(o)

	center := dc.ColorBuffer.NRGBAAt(32, 32)
	assert.Equal(t, uint8(255), center.R)
	assert.Equal(t, uint8(0), center.G)
	assert.Equal(t, uint8(255), center.A)

	// Depth at the center must have been written (z = 0 maps to 0.5).
	i := 32*dc.Width + 32
	assert.InDelta(t, 0.5, dc.DepthBuffer[i], 1e-9)

	// A corner outside the triangle stays untouched.
	corner := dc.ColorBuffer.NRGBAAt(1, 1)
	assert.Equal(t, uint8(0), corner.A)
	assert.Equal(t, math.MaxFloat64, dc.DepthBuffer[1*dc.Width+1])
}

func TestContextDepthTest(t *testing.T) {
	near := fullscreenTriangle()
	far := fullscreenTriangle()
	for _, v := range []*Vertex{&far.V1, &far.V2, &far.V3} {
		v.Position = mgl64.Vec3{v.Position.X(), v.Position.Y(), 0.5}
	}

	shader := NewSolidColorShader(mgl64.Ident4(), HexColor("00ff00"))
	dc := NewContext(32, 32, shader)

	dc.DrawObject(NewTriangleObject([]*Triangle{near}))
	shader.Color = HexColor("0000ff")
	dc.DrawObject(NewTriangleObject([]*Triangle{far}))

	// The far triangle loses the depth test; the near color stays.
	center := dc.ColorBuffer.NRGBAAt(16, 16)
	assert.Equal(t, uint8(255), center.G)
	assert.Equal(t, uint8(0), center.B)
}

func TestContextBackfaceCulling(t *testing.T) {
	tri := fullscreenTriangle()
	// Swap winding so the triangle faces away.
	tri.V1, tri.V2 = tri.V2, tri.V1

	shader := NewSolidColorShader(mgl64.Ident4(), White)
	dc := NewContext(32, 32, shader)
	dc.DrawObject(NewTriangleObject([]*Triangle{tri}))
	assert.Equal(t, uint8(0), dc.ColorBuffer.NRGBAAt(16, 16).A)

	// With culling off it draws.
	dc.Cull = CullNone
	dc.DrawObject(NewTriangleObject([]*Triangle{tri}))
	assert.Equal(t, uint8(255), dc.ColorBuffer.NRGBAAt(16, 16).A)
}

func TestContextClearColorBuffer(t *testing.T) {
	shader := NewSolidColorShader(mgl64.Ident4(), White)
	dc := NewContext(8, 8, shader)
	dc.ClearColorBufferWith(HexColor("102030"))
	px := dc.ColorBuffer.NRGBAAt(4, 4)
	assert.Equal(t, uint8(0x10), px.R)
	assert.Equal(t, uint8(0x20), px.G)
	assert.Equal(t, uint8(0x30), px.B)
}

func TestContextClippedTriangle(t *testing.T) {
	// Straddles the right clip plane; the visible part must still draw.
	v := func(x, y float64) Vertex {
		return Vertex{Position: mgl64.Vec3{x, y, 0}, Normal: mgl64.Vec3{0, 0, 1}}
	}
	tri := NewTriangle(v(-1, -1), v(3, -1), v(-1, 1))

	shader := NewSolidColorShader(mgl64.Ident4(), White)
	dc := NewContext(32, 32, shader)
	dc.DrawObject(NewTriangleObject([]*Triangle{tri}))

	require.Equal(t, uint8(255), dc.ColorBuffer.NRGBAAt(4, 16).A)
}

func TestScreenMatrix(t *testing.T) {
	m := screenMatrix(64, 64)
	center := m.Mul4x1(mgl64.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 32, center.X(), 1e-9)
	assert.InDelta(t, 32, center.Y(), 1e-9)
	assert.InDelta(t, 0.5, center.Z(), 1e-9)

	topLeft := m.Mul4x1(mgl64.Vec4{-1, 1, -1, 1})
	assert.InDelta(t, 0, topLeft.X(), 1e-9)
	assert.InDelta(t, 0, topLeft.Y(), 1e-9)
	assert.InDelta(t, 0, topLeft.Z(), 1e-9)
}
