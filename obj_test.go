package velvet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadOBJ = `# simple quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestLoadOBJFromBytes(t *testing.T) {
	mesh, err := LoadOBJFromBytes([]byte(quadOBJ))
	require.NoError(t, err)
	require.Len(t, mesh.Triangles, 2, "quad should fan into two triangles")

	t1 := mesh.Triangles[0]
	assert.InDelta(t, 1, t1.V1.Normal.Z(), 1e-12)
	assert.InDelta(t, 0, t1.V1.Texture.X(), 1e-12)
	assert.InDelta(t, 1, t1.V3.Texture.X(), 1e-12)

	box := mesh.BoundingBox()
	assert.InDelta(t, 0, box.Min.X(), 1e-12)
	assert.InDelta(t, 1, box.Max.Y(), 1e-12)
}

func TestLoadOBJNegativeIndices(t *testing.T) {
	obj := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	mesh, err := LoadOBJFromBytes([]byte(obj))
	require.NoError(t, err)
	require.Len(t, mesh.Triangles, 1)
	// No normals in the file; the face normal fills in.
	assert.InDelta(t, 1, mesh.Triangles[0].V1.Normal.Z(), 1e-12)
}

func TestLoadOBJIgnoresJunk(t *testing.T) {
	obj := `
o junk
s off
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	mesh, err := LoadOBJFromBytes([]byte(obj))
	require.NoError(t, err)
	assert.Len(t, mesh.Triangles, 1)
}
