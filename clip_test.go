package velvet

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func clipVertex(x, y, z, w float64) Vertex {
	return Vertex{Output: mgl64.Vec4{x, y, z, w}}
}

func TestVertexOutside(t *testing.T) {
	if clipVertex(0, 0, 0, 1).Outside() {
		t.Error("origin should be inside")
	}
	if !clipVertex(2, 0, 0, 1).Outside() {
		t.Error("x > w should be outside")
	}
	if !clipVertex(0, 0, -2, 1).Outside() {
		t.Error("z < -w should be outside")
	}
}

func TestClipTriangleInside(t *testing.T) {
	tri := NewTriangle(
		clipVertex(-0.5, -0.5, 0, 1),
		clipVertex(0.5, -0.5, 0, 1),
		clipVertex(0, 0.5, 0, 1),
	)
	out := ClipTriangle(tri)
	if len(out) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(out))
	}
}

func TestClipTriangleOutside(t *testing.T) {
	tri := NewTriangle(
		clipVertex(2, 2, 0, 1),
		clipVertex(3, 2, 0, 1),
		clipVertex(2, 3, 0, 1),
	)
	out := ClipTriangle(tri)
	if len(out) != 0 {
		t.Fatalf("expected no triangles, got %d", len(out))
	}
}

func TestClipTrianglePartial(t *testing.T) {
	// One vertex pokes through the +x plane; clipping yields a quad,
	// fanned into two triangles.
	tri := NewTriangle(
		clipVertex(0, -0.5, 0, 1),
		clipVertex(2, 0, 0, 1),
		clipVertex(0, 0.5, 0, 1),
	)
	out := ClipTriangle(tri)
	if len(out) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(out))
	}
	for _, ct := range out {
		for _, v := range []Vertex{ct.V1, ct.V2, ct.V3} {
			if v.Output.X() > v.Output.W()+1e-9 {
				t.Errorf("vertex still outside after clip: %v", v.Output)
			}
		}
	}
}

func TestClipLine(t *testing.T) {
	l := ClipLine(NewLine(clipVertex(0, 0, 0, 1), clipVertex(2, 0, 0, 1)))
	if l == nil {
		t.Fatal("line crossing the volume should survive")
	}
	if l.V2.Output.X() > l.V2.Output.W()+1e-9 {
		t.Errorf("clipped endpoint still outside: %v", l.V2.Output)
	}

	if ClipLine(NewLine(clipVertex(2, 0, 0, 1), clipVertex(3, 0, 0, 1))) != nil {
		t.Error("fully outside line should clip away")
	}
}
