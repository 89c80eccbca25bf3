package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glrast/swgl/pkg/math3d"
)

func TestParseOBJPositionsOnly(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	m, err := ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)

	require.Equal(t, 3, len(m.Positions))
	require.Equal(t, 1, m.NFaces())
	assert.Equal(t, [3]int{0, 1, 2}, m.Faces[0].Position)
	assert.Equal(t, [3]int{-1, -1, -1}, m.Faces[0].UV)
	assert.Equal(t, [3]int{-1, -1, -1}, m.Faces[0].Normal)
	assert.Equal(t, math3d.V3(1, 0, 0), m.Position(0, 1))
}

func TestParseOBJPositionUV(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
f 1/1 2/2 3/3
`
	m, err := ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, [3]int{0, 1, 2}, m.Faces[0].UV)
	assert.Equal(t, [3]int{-1, -1, -1}, m.Faces[0].Normal)
	assert.Equal(t, math3d.UV(1, 0), m.UV(0, 1))
}

func TestParseOBJPositionUVNormal(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`
	m, err := ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, [3]int{0, 0, 0}, m.Faces[0].Normal)
	assert.Equal(t, math3d.V3(0, 0, 1), m.Normal(0, 0))
}

func TestParseOBJPositionNormalNoUV(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`
	m, err := ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, [3]int{-1, -1, -1}, m.Faces[0].UV)
	assert.Equal(t, [3]int{0, 0, 0}, m.Faces[0].Normal)
}

func TestParseOBJVTOptionalW(t *testing.T) {
	src := `
vt 0.5 0.5 0.0
`
	m, err := ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 1, len(m.UVs))
	assert.Equal(t, math3d.UV(0.5, 0.5), m.UVs[0])
}

func TestParseOBJSkipsMalformedLine(t *testing.T) {
	src := `
v 0 0 0
v not-a-number 0 0
v 1 1 1
f 1 3 3
`
	m, err := ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, len(m.Positions))
}

func TestCalculateNormals(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	m, err := ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)

	m.CalculateNormals()
	require.Equal(t, 3, len(m.Normals))
	for i := range 3 {
		assert.InDelta(t, 1.0, m.Normal(0, i).Len(), 1e-9)
	}
}
