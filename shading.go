package velvet

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ndfFloor is the smallest value the Beckmann distribution returns.
// Degenerate inputs (roughness or NdotH at zero) floor here instead of
// producing Inf or NaN.
const ndfFloor = 1e-7

// CompositionPolicy selects which lighting terms reach the final sum.
type CompositionPolicy int

const (
	// ComposeDiffuseOnly sums only the half-Lambert diffuse term;
	// specular, sheen and subsurface are withheld from the result.
	ComposeDiffuseOnly CompositionPolicy = iota
	// ComposeFull adds the attenuated specular and sheen terms plus the
	// unattenuated subsurface wrap term.
	ComposeFull
)

// SurfacePoint is the prepared per-pixel surface record consumed by
// ShadePoint. Albedo is derived by PrepareSurface; the other fields pass
// through from the sampled inputs.
type SurfacePoint struct {
	Albedo   Color
	Normal   mgl64.Vec3
	Emission Color
	Alpha    float64

	// MetalFactor is the matcap response used to derive Albedo, kept
	// around for debug visualization.
	MetalFactor float64
}

// LightSample is one incident light. Direction points toward the light
// and must be unit length. Attenuation is the combined shadow and
// distance falloff in [0, 1], already computed by the host.
type LightSample struct {
	Direction   mgl64.Vec3
	Color       Color
	Attenuation float64
}

// BeckmannDistribution evaluates the Beckmann microfacet normal
// distribution for the given roughness and cosine of the normal/half
// vector angle. The result is finite and at least ndfFloor for any
// roughness in (0, 1] and ndoth in [0, 1]; no Fresnel or geometry term
// is applied.
func BeckmannDistribution(roughness, ndoth float64) float64 {
	r := math.Max(roughness, minRoughness)
	n := Saturate(ndoth)
	n2 := n * n
	r2 := r * r
	denom := math.Pi * r2 * r2 * n2 * n2
	if denom < ndfFloor {
		return ndfFloor
	}
	return math.Max(ndfFloor, math.Exp((n2-1)/(r2*n2))/denom)
}

// HalfLambert remaps the diffuse cosine so back-facing surfaces fall off
// softly instead of clipping to black: (NdotL/2 + 1/2)^2. The unlit
// hemisphere bottoms out at 0.25.
func HalfLambert(ndotl float64) float64 {
	h := math.Max(0, ndotl)*0.5 + 0.5
	return h * h
}

// DiffuseWrap is the wrap-lighting term approximating transmission
// through thin material: 1 - (NdotL*wrap + (1-wrap))^2, floored at zero.
// With wrap = 0 it vanishes at NdotL = 1 and rises toward the
// terminator; with wrap = 1 it peaks as NdotL approaches -1.
func DiffuseWrap(ndotl, wrap float64) float64 {
	w := Saturate(wrap)
	t := ndotl*w + (1 - w)
	return math.Max(0, 1-t*t)
}

// SheenFactor is the grazing-angle fabric term (1 - NdotH)^5. It is zero
// when the normal lines up with the half-vector and grows toward the
// silhouette.
func SheenFactor(ndoth float64) float64 {
	f := 1 - Saturate(ndoth)
	f2 := f * f
	return f2 * f2 * f
}

// MetalFactor computes the matcap-style metal response from the surface
// normal and the world-to-view transform. The view-space normal is
// scaled by (0.5, 0.5, 1) and the factor falls from 1 at the silhouette
// center to 0 at the edge, faking a specular-sphere highlight without an
// environment sample.
func MetalFactor(normal mgl64.Vec3, view mgl64.Mat4) float64 {
	vn := view.Mul4x1(normal.Vec4(0)).Vec3()
	scaled := mgl64.Vec3{vn.X() * 0.5, vn.Y() * 0.5, vn.Z()}
	return Smoothstep(0.3, 0, Saturate(1-scaled.Len()))
}

// PrepareSurface derives the effective albedo for a surface point from
// the material base color, an externally sampled texture color and the
// matcap metal factor. Metallic blends between the plain base and the
// matcap-darkened variant; it only modulates brightness. The normal must
// be unit length in world space.
func PrepareSurface(mat Material, sample Color, normal mgl64.Vec3, view mgl64.Mat4) SurfacePoint {
	m := mat.Clamped()
	base := m.BaseColor.Mul(sample)
	mf := MetalFactor(normal, view)
	albedo := base.Lerp(base.MulScalar(mf), m.Metallic).Clamp()
	return SurfacePoint{
		Albedo:      albedo,
		Normal:      normal,
		Emission:    m.Emission,
		Alpha:       base.A,
		MetalFactor: mf,
	}
}

// ShadePoint computes the lit color of a prepared surface point for a
// single light. viewDir points toward the camera and must be unit
// length. The caller sums results across lights; emission is not added
// here so that multi-light accumulation does not multiply it.
//
// Under ComposeFull the subsurface term is not multiplied by the light
// attenuation; the other terms are.
func ShadePoint(s SurfacePoint, mat Material, light LightSample, viewDir mgl64.Vec3, policy CompositionPolicy) Color {
	m := mat.Clamped()
	ndotl := Saturate(s.Normal.Dot(light.Direction))
	atten := Saturate(light.Attenuation)

	diffuse := s.Albedo.Mul(light.Color).MulScalar(HalfLambert(ndotl) * atten)
	if policy == ComposeDiffuseOnly {
		return diffuse.Alpha(s.Alpha)
	}

	// Light exactly opposing the view leaves no half-vector; fall back to
	// the normal so NdotH stays defined.
	half := light.Direction.Add(viewDir)
	if half.Len() < 1e-9 {
		half = s.Normal
	} else {
		half = half.Normalize()
	}
	ndoth := s.Normal.Dot(half)

	specular := light.Color.MulScalar(BeckmannDistribution(m.Roughness, ndoth) * atten)
	sheen := m.SheenColor.MulScalar(SheenFactor(ndoth) * m.SheenIntensity * atten)
	subsurface := m.SubsurfaceTint.MulScalar(DiffuseWrap(ndotl, m.Wrap) * m.Subsurface)

	return diffuse.Add(specular).Add(sheen).Add(subsurface).Alpha(s.Alpha)
}
