package velvet

import "math"

// minRoughness keeps the Beckmann denominator away from zero; the
// distribution divides by roughness squared.
const minRoughness = 1e-4

// Material holds the per-draw shading parameters. All scalar fields are
// expected in [0, 1]; Clamped enforces that before evaluation.
type Material struct {
	BaseColor      Color
	Roughness      float64
	Metallic       float64
	Subsurface     float64
	SubsurfaceTint Color
	Wrap           float64
	SheenIntensity float64
	SheenColor     Color
	Emission       Color
}

// NewMaterial returns a material with the documented defaults:
// white base, roughness 0.5, wrap 0.5, everything else off.
func NewMaterial() Material {
	return Material{
		BaseColor:      White,
		Roughness:      0.5,
		Metallic:       0,
		Subsurface:     0,
		SubsurfaceTint: Color{1, 0.3, 0.2, 1},
		Wrap:           0.5,
		SheenIntensity: 0,
		SheenColor:     White,
		Emission:       Transparent,
	}
}

// Clamped returns a copy with every scalar forced into its valid range.
// Roughness is additionally clamped away from exactly zero.
func (m Material) Clamped() Material {
	m.BaseColor = m.BaseColor.Clamp()
	m.Roughness = math.Max(Saturate(m.Roughness), minRoughness)
	m.Metallic = Saturate(m.Metallic)
	m.Subsurface = Saturate(m.Subsurface)
	m.SubsurfaceTint = m.SubsurfaceTint.Clamp()
	m.Wrap = Saturate(m.Wrap)
	m.SheenIntensity = Saturate(m.SheenIntensity)
	m.SheenColor = m.SheenColor.Clamp()
	m.Emission = m.Emission.Clamp()
	return m
}
