package velvet

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Saturate clamps x to [0, 1].
func Saturate(x float64) float64 {
	return mgl64.Clamp(x, 0, 1)
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smoothstep performs Hermite interpolation between edge0 and edge1.
// The edges may be reversed (edge0 > edge1), in which case the result
// falls from 1 to 0 as x rises, matching the shading-language built-in.
func Smoothstep(edge0, edge1, x float64) float64 {
	t := Saturate((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// ClampInt clamps x to [lo, hi].
func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
