package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glrast/swgl/pkg/math3d"
)

func TestBBox2Expand(t *testing.T) {
	b := NewBBox2(math3d.V2(0, 0), math3d.V2(1, 1))
	b.Expand(math3d.V2(-1, 5))

	assert.Equal(t, math3d.V2(-1, 0), b.Min)
	assert.Equal(t, math3d.V2(1, 5), b.Max)
}

func TestBBox2Clamp(t *testing.T) {
	b := NewBBox2(math3d.V2(-5, -5), math3d.V2(5, 5))
	clamped := b.Clamp(math3d.V2(0, 0), math3d.V2(3, 3))

	assert.Equal(t, math3d.V2(0, 0), clamped.Min)
	assert.Equal(t, math3d.V2(3, 3), clamped.Max)
}

func TestBBox3CenterAndSize(t *testing.T) {
	b := NewBBox3(math3d.V3(0, 0, 0), math3d.V3(2, 4, 6))

	assert.Equal(t, math3d.V3(1, 2, 3), b.Center())
	assert.Equal(t, math3d.V3(2, 4, 6), b.Size())
}

func TestBarycentricBasisVertices(t *testing.T) {
	v0 := math3d.V2(0, 0)
	v1 := math3d.V2(4, 0)
	v2 := math3d.V2(0, 4)
	basis := NewBarycentricBasis(v0, v1, v2)

	w, ok := basis.Compute(v0)
	assert.True(t, ok)
	assert.InDelta(t, 1, w.X, 1e-9)
	assert.InDelta(t, 0, w.Y, 1e-9)
	assert.InDelta(t, 0, w.Z, 1e-9)

	w, ok = basis.Compute(v1)
	assert.True(t, ok)
	assert.InDelta(t, 1, w.Y, 1e-9)

	w, ok = basis.Compute(v2)
	assert.True(t, ok)
	assert.InDelta(t, 1, w.Z, 1e-9)
}

func TestBarycentricBasisCentroid(t *testing.T) {
	basis := NewBarycentricBasis(math3d.V2(0, 0), math3d.V2(3, 0), math3d.V2(0, 3))
	centroid := math3d.V2(1, 1)

	w, ok := basis.Compute(centroid)
	assert.True(t, ok)
	assert.InDelta(t, 1.0/3, w.X, 1e-9)
	assert.InDelta(t, 1.0/3, w.Y, 1e-9)
	assert.InDelta(t, 1.0/3, w.Z, 1e-9)
}

func TestBarycentricBasisDegenerate(t *testing.T) {
	basis := NewBarycentricBasis(math3d.V2(0, 0), math3d.V2(1, 0), math3d.V2(2, 0))
	_, ok := basis.Compute(math3d.V2(0.5, 0.5))
	assert.False(t, ok)
}
