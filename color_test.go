package velvet

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"000000", Color{0, 0, 0, 1}},
		{"ffffff", Color{1, 1, 1, 1}},
		{"#ff0000", Color{1, 0, 0, 1}},
		{"fff", Color{1, 1, 1, 1}},
		{"00ff0080", Color{0, 1, 0, 128.0 / 255}},
	}
	for _, tc := range tests {
		got := HexColor(tc.in)
		assert.InDelta(t, tc.want.R, got.R, 1e-9, tc.in)
		assert.InDelta(t, tc.want.G, got.G, 1e-9, tc.in)
		assert.InDelta(t, tc.want.B, got.B, 1e-9, tc.in)
		assert.InDelta(t, tc.want.A, got.A, 1e-9, tc.in)
	}
}

func TestMakeColorRoundTrip(t *testing.T) {
	in := color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	c := MakeColor(in)
	out := c.NRGBA()
	assert.Equal(t, uint8(255), out.R)
	assert.InDelta(t, 128, float64(out.G), 1)
	assert.Equal(t, uint8(0), out.B)
	assert.Equal(t, uint8(255), out.A)
}

func TestColorOps(t *testing.T) {
	a := Color{0.2, 0.4, 0.6, 1}
	b := Color{0.4, 0.4, 0.4, 1}

	sum := a.Add(b)
	assert.InDelta(t, 0.6, sum.R, 1e-12)

	prod := a.Mul(b)
	assert.InDelta(t, 0.08, prod.R, 1e-12)

	half := a.Lerp(b, 0.5)
	assert.InDelta(t, 0.3, half.R, 1e-12)
	assert.InDelta(t, 0.4, half.G, 1e-12)

	over := Color{2, -1, 0.5, 3}.Clamp()
	assert.Equal(t, Color{1, 0, 0.5, 1}, over)

	capped := Color{2, 0.5, 0, 1}.Min(White)
	assert.Equal(t, Color{1, 0.5, 0, 1}, capped)
}

func TestMulScalarLeavesAlpha(t *testing.T) {
	c := Color{0.5, 0.5, 0.5, 0.25}.MulScalar(2)
	assert.Equal(t, Color{1, 1, 1, 0.25}, c)
}
