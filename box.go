package velvet

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max mgl64.Vec3
}

// EmptyBox is the identity for Extend.
var EmptyBox = Box{
	mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
	mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
}

// BoxForBoxes returns the bounds enclosing all the given boxes.
func BoxForBoxes(boxes []Box) Box {
	if len(boxes) == 0 {
		return Box{}
	}
	result := boxes[0]
	for _, b := range boxes[1:] {
		result = result.Extend(b)
	}
	return result
}

func (a Box) Extend(b Box) Box {
	return Box{vecMin(a.Min, b.Min), vecMax(a.Max, b.Max)}
}

func (a Box) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

func (a Box) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// Corners returns the eight corner points.
func (a Box) Corners() []mgl64.Vec3 {
	x0, y0, z0 := a.Min.X(), a.Min.Y(), a.Min.Z()
	x1, y1, z1 := a.Max.X(), a.Max.Y(), a.Max.Z()
	return []mgl64.Vec3{
		{x0, y0, z0}, {x1, y0, z0}, {x0, y1, z0}, {x1, y1, z0},
		{x0, y0, z1}, {x1, y0, z1}, {x0, y1, z1}, {x1, y1, z1},
	}
}

func vecMin(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y()), math.Min(a.Z(), b.Z())}
}

func vecMax(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y()), math.Max(a.Z(), b.Z())}
}
