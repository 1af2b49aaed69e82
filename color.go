package velvet

import (
	"image/color"
	"math"
	"strings"
)

// Color is a linear RGBA color with float64 channels. Channel values are
// nominally in [0, 1] but intermediate lighting sums may exceed 1; use
// Min or Clamp before converting for display.
type Color struct {
	R, G, B, A float64
}

var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
)

// MakeColor converts a standard library color.
func MakeColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	const d = 0xffff
	return Color{float64(r) / d, float64(g) / d, float64(b) / d, float64(a) / d}
}

// HexColor parses "rgb", "rrggbb" or "rrggbbaa", with or without a
// leading "#". Invalid input yields black.
func HexColor(x string) Color {
	x = strings.TrimPrefix(x, "#")
	var r, g, b, a float64
	a = 1
	switch len(x) {
	case 3:
		r = hexPair(x[0:1] + x[0:1])
		g = hexPair(x[1:2] + x[1:2])
		b = hexPair(x[2:3] + x[2:3])
	case 6:
		r = hexPair(x[0:2])
		g = hexPair(x[2:4])
		b = hexPair(x[4:6])
	case 8:
		r = hexPair(x[0:2])
		g = hexPair(x[2:4])
		b = hexPair(x[4:6])
		a = hexPair(x[6:8])
	}
	return Color{r, g, b, a}
}

func hexPair(s string) float64 {
	var v int
	for i := 0; i < len(s); i++ {
		c := s[i]
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= int(c - '0')
		case c >= 'a' && c <= 'f':
			v |= int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= int(c-'A') + 10
		}
	}
	return float64(v) / 255
}

// NRGBA converts to an 8-bit color, clamping each channel.
func (c Color) NRGBA() color.NRGBA {
	r := uint8(Saturate(c.R) * 255)
	g := uint8(Saturate(c.G) * 255)
	b := uint8(Saturate(c.B) * 255)
	a := uint8(Saturate(c.A) * 255)
	return color.NRGBA{r, g, b, a}
}

func (c Color) Add(b Color) Color {
	return Color{c.R + b.R, c.G + b.G, c.B + b.B, c.A + b.A}
}

func (c Color) Sub(b Color) Color {
	return Color{c.R - b.R, c.G - b.G, c.B - b.B, c.A - b.A}
}

// Mul multiplies componentwise.
func (c Color) Mul(b Color) Color {
	return Color{c.R * b.R, c.G * b.G, c.B * b.B, c.A * b.A}
}

// MulScalar scales the color channels, leaving alpha untouched.
func (c Color) MulScalar(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A}
}

// DivScalar divides the color channels, leaving alpha untouched.
func (c Color) DivScalar(s float64) Color {
	return Color{c.R / s, c.G / s, c.B / s, c.A}
}

// Lerp interpolates toward b by t, including alpha.
func (c Color) Lerp(b Color, t float64) Color {
	return Color{
		Lerp(c.R, b.R, t),
		Lerp(c.G, b.G, t),
		Lerp(c.B, b.B, t),
		Lerp(c.A, b.A, t),
	}
}

func (c Color) Min(b Color) Color {
	return Color{math.Min(c.R, b.R), math.Min(c.G, b.G), math.Min(c.B, b.B), math.Min(c.A, b.A)}
}

func (c Color) Max(b Color) Color {
	return Color{math.Max(c.R, b.R), math.Max(c.G, b.G), math.Max(c.B, b.B), math.Max(c.A, b.A)}
}

// Clamp limits every channel to [0, 1].
func (c Color) Clamp() Color {
	return Color{Saturate(c.R), Saturate(c.G), Saturate(c.B), Saturate(c.A)}
}

// Alpha returns the color with its alpha replaced.
func (c Color) Alpha(a float64) Color {
	return Color{c.R, c.G, c.B, a}
}
