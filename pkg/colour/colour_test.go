package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColourToFloatToU8RoundTrip(t *testing.T) {
	orig := Colour[uint8]{R: 255, G: 128, B: 0, A: 255}

	f := ColourToFloat(orig)
	assert.InDelta(t, 1.0, float64(f.R), 1e-6)
	assert.InDelta(t, 128.0/255.0, float64(f.G), 1e-6)
	assert.InDelta(t, 0.0, float64(f.B), 1e-6)

	back := ColourToU8(f)
	assert.Equal(t, orig.R, back.R)
	assert.Equal(t, orig.G, back.G)
	assert.Equal(t, orig.B, back.B)
	assert.Equal(t, orig.A, back.A)
}

func TestColourToU8Saturates(t *testing.T) {
	over := Colour[float32]{R: 1.5, G: -0.5, B: 0.5, A: 1}
	got := ColourToU8(over)

	assert.Equal(t, uint8(255), got.R)
	assert.Equal(t, uint8(0), got.G)
}

func TestColourAdd(t *testing.T) {
	a := Colour[float32]{R: 0.1, G: 0.2, B: 0.3, A: 1}
	b := Colour[float32]{R: 0.4, G: 0.4, B: 0.4, A: 0}

	got := a.Add(b)
	assert.InDelta(t, 0.5, float64(got.R), 1e-6)
	assert.InDelta(t, 0.6, float64(got.G), 1e-6)
}

func TestColourScale(t *testing.T) {
	c := Colour[float32]{R: 1, G: 1, B: 1, A: 1}
	got := c.Scale(0.5)

	assert.Equal(t, Colour[float32]{R: 0.5, G: 0.5, B: 0.5, A: 0.5}, got)
}

func TestColourMul(t *testing.T) {
	a := Colour[float32]{R: 0.5, G: 1, B: 0, A: 1}
	b := Colour[float32]{R: 0.5, G: 0.5, B: 1, A: 1}

	got := a.Mul(b)
	assert.InDelta(t, 0.25, float64(got.R), 1e-6)
	assert.InDelta(t, 0.5, float64(got.G), 1e-6)
}
