package velvet

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sceneShader() *StylizedShader {
	return NewStylizedShader(
		mgl64.Ident4(), mgl64.Ident4(),
		mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 3},
	)
}

func TestSceneDrawWritesPNG(t *testing.T) {
	shader := sceneShader()
	s := NewScene(
		mgl64.Vec3{0, 0, 3}, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0},
		60, 32, 2, shader,
	)
	o := NewTriangleObject([]*Triangle{fullscreenTriangle()})
	o.SetColor(HexColor("cc4422"))

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, s.Draw(true, path, o))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSceneFitMatrixFinite(t *testing.T) {
	shader := sceneShader()
	s := NewScene(
		mgl64.Vec3{0, 0, 3}, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0},
		60, 16, 1, shader,
	)
	s.AddObject(NewTriangleObject([]*Triangle{fullscreenTriangle()}))

	m := s.FitObjectsToScene(mgl64.Vec3{0, 0, 3}, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, 1, 1, 999)
	for i := 0; i < 16; i++ {
		if math.IsNaN(m[i]) || math.IsInf(m[i], 0) {
			t.Fatalf("fit matrix has non-finite entry %d: %v", i, m[i])
		}
	}

	// The fitted frustum must contain the triangle's corners.
	for _, tri := range s.Objects[0].Mesh.Triangles {
		for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
			clip := m.Mul4x1(v.Position.Vec4(1))
			w := clip.W()
			assert.LessOrEqual(t, math.Abs(clip.X()), w+1e-6)
			assert.LessOrEqual(t, math.Abs(clip.Y()), w+1e-6)
		}
	}
}

func TestSceneFitWithoutObjects(t *testing.T) {
	shader := sceneShader()
	s := NewScene(
		mgl64.Vec3{0, 0, 3}, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0},
		60, 16, 1, shader,
	)
	m := s.FitObjectsToScene(mgl64.Vec3{0, 0, 3}, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, 1, 1, 999)
	for i := 0; i < 16; i++ {
		require.False(t, math.IsNaN(m[i]))
	}
}

func TestSceneDrawSetsShaderCamera(t *testing.T) {
	shader := sceneShader()
	shader.CameraPosition = mgl64.Vec3{9, 9, 9}
	s := NewScene(
		mgl64.Vec3{0, 0, 3}, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0},
		60, 16, 1, shader,
	)
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, s.Draw(false, path, NewTriangleObject([]*Triangle{fullscreenTriangle()})))
	assert.Equal(t, mgl64.Vec3{0, 0, 3}, shader.CameraPosition,
		"Draw aligns the shader camera with the scene eye")
}
