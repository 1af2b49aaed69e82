package velvet

import (
	"fmt"
	"net/http"

	"github.com/go-gl/mathgl/mgl64"
)

// Object pairs a mesh with its surface inputs: a flat color, an optional
// texture or multi-channel sampler, and an optional material override.
type Object struct {
	Mesh           *Mesh
	Texture        Texture
	Sampler        MaterialSampler
	Material       *Material
	Color          Color
	Matrix         mgl64.Mat4
	UseVertexColor bool
}

func NewEmptyObject() *Object {
	return &Object{Color: White, Matrix: mgl64.Ident4()}
}

func NewObject(triangles []*Triangle, lines []*Line) *Object {
	return &Object{Mesh: NewMesh(triangles, lines), Color: White, Matrix: mgl64.Ident4()}
}

func NewObjectFromMesh(mesh *Mesh) *Object {
	return &Object{Mesh: mesh, Color: White, Matrix: mgl64.Ident4()}
}

func NewObjectFromFile(path string) (*Object, error) {
	mesh, err := LoadOBJ(path)
	if err != nil {
		return nil, err
	}
	o := NewObjectFromMesh(mesh)
	o.SetColor(HexColor("777"))
	return o, nil
}

func NewTriangleObject(triangles []*Triangle) *Object {
	return &Object{Mesh: NewTriangleMesh(triangles), Color: White, Matrix: mgl64.Ident4()}
}

func NewLineObject(lines []*Line) *Object {
	return &Object{Mesh: NewLineMesh(lines), Color: White, Matrix: mgl64.Ident4()}
}

// SampleChannel reads a material texture channel. The multi-channel
// Sampler wins when present; a plain Texture serves the base channel.
func (o *Object) SampleChannel(channel MaterialChannel, u, v float64) Color {
	if o.Sampler != nil {
		return o.Sampler.SampleChannel(channel, u, v)
	}
	if channel == ChannelBase && o.Texture != nil {
		return o.Texture.Sample(u, v)
	}
	return Transparent
}

// SetColor sets the object color and the vertex colors of its mesh.
func (o *Object) SetColor(c Color) {
	o.Color = c
	if o.Mesh != nil {
		o.Mesh.SetColor(c)
	}
}

// LoadObjectFromURL fetches and parses an OBJ mesh.
func LoadObjectFromURL(url string) (*Mesh, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("velvet: fetching %s: %s", url, resp.Status)
	}
	return LoadOBJFromReader(resp.Body)
}
