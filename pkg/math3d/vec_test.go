package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Normalize(t *testing.T) {
	v := V3(3, 0, 4)
	prevLen := v.Normalize()

	assert.Equal(t, 5.0, prevLen)
	assert.InDelta(t, 1.0, v.Len(), 1e-12)
	assert.InDelta(t, 0.6, v.X, 1e-12)
	assert.InDelta(t, 0.8, v.Z, 1e-12)
}

func TestVec3NormalizeZero(t *testing.T) {
	v := Zero3()
	prevLen := v.Normalize()

	assert.Equal(t, 0.0, prevLen)
	assert.Equal(t, Zero3(), v)
}

func TestVec3Normalized(t *testing.T) {
	v := V3(3, 0, 4)
	unit := v.Normalized()

	assert.Equal(t, V3(3, 0, 4), v, "Normalized must not mutate the receiver")
	assert.InDelta(t, 1.0, unit.Len(), 1e-12)
}

func TestVec3Cross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)

	assert.Equal(t, V3(0, 0, 1), x.Cross(y))
}

func TestVec3Dot(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	assert.Equal(t, 32.0, a.Dot(b))
}

func TestVec3Reflect(t *testing.T) {
	v := V3(1, -1, 0)
	n := V3(0, 1, 0)

	got := v.Reflect(n)
	assert.Equal(t, V3(1, 1, 0), got)
}

func TestVec4PerspectiveDivide(t *testing.T) {
	v := V4(2, 4, 6, 2)

	got := v.PerspectiveDivide()
	assert.Equal(t, V3(1, 2, 3), got)
}

func TestVec4Normalize(t *testing.T) {
	v := V4(1, 0, 0, 0)
	prevLen := v.Normalize()

	assert.Equal(t, 1.0, prevLen)
	assert.Equal(t, V4(1, 0, 0, 0), v)
}

func TestVec2Normalize(t *testing.T) {
	v := V2(0, 2)
	prevLen := v.Normalize()

	assert.Equal(t, 2.0, prevLen)
	assert.Equal(t, V2(0, 1), v)
}

func TestVec2UVAccessors(t *testing.T) {
	v := UV(0.25, 0.75)

	assert.Equal(t, 0.25, v.U())
	assert.Equal(t, 0.75, v.V())
}

func TestVec3Lerp(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(10, 10, 10)

	got := a.Lerp(b, 0.5)
	assert.Equal(t, V3(5, 5, 5), got)
}

func TestVec3NegateIsInvolution(t *testing.T) {
	v := V3(1, -2, 3)
	assert.Equal(t, v, v.Negate().Negate())
}

func TestVec2Len(t *testing.T) {
	v := V2(3, 4)
	assert.InDelta(t, 5.0, v.Len(), 1e-12)
	assert.InDelta(t, math.Sqrt(25), v.Len(), 1e-12)
}
