package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glrast/swgl/pkg/colour"
	"github.com/glrast/swgl/pkg/image"
	"github.com/glrast/swgl/pkg/math3d"
	"github.com/glrast/swgl/pkg/model"
)

// constOut is the simplest possible VOut: nothing to interpolate.
type constOut struct{}

func (constOut) Add(constOut) constOut  { return constOut{} }
func (constOut) Scale(float64) constOut { return constOut{} }

type constShader struct {
	colour colour.Colour[float32]
}

func (s constShader) VertexShade(info *DrawInfo, m *model.Model, face, vert int) (math3d.Vec4, constOut) {
	pos := m.Position(face, vert)
	return info.MVPV.MulVec4(pos.Widen(1)), constOut{}
}

func (s constShader) FragmentShade(info *DrawInfo, v constOut) (colour.Colour[float32], bool) {
	return s.colour, false
}

func screenSpaceInfo(w, h int) *DrawInfo {
	info := &DrawInfo{
		Model:      math3d.Identity(),
		View:       math3d.Identity(),
		Projection: math3d.Identity(),
		Viewport:   math3d.Viewport(0, 0, float64(w), float64(h)),
	}
	info.Prepare()
	return info
}

func triangleModel(t *testing.T) *model.Model {
	t.Helper()
	return &model.Model{
		Positions: []math3d.Vec3{
			{X: -0.5, Y: -0.5, Z: 0},
			{X: 0.5, Y: -0.5, Z: 0},
			{X: 0, Y: 0.5, Z: 0},
		},
		Faces: []model.Face{
			{Position: [3]int{0, 1, 2}, UV: [3]int{-1, -1, -1}, Normal: [3]int{-1, -1, -1}},
		},
	}
}

func TestDrawShadesCoveredPixels(t *testing.T) {
	target := image.New(10, 10, 4)
	depth := NewDepthBuffer(10, 10)
	info := screenSpaceInfo(10, 10)
	shader := constShader{colour: colour.Colour[float32]{R: 1, G: 0, B: 0, A: 1}}

	counters := Draw[constOut](info, shader, triangleModel(t), target, depth)

	require.Greater(t, counters.Pixels, uint64(0))
	assert.Equal(t, uint64(1), counters.Triangles)
	assert.Equal(t, uint64(1), counters.Draws)

	c := target.Get(5, 5)
	assert.Equal(t, uint8(255), c.R)
}

func TestDrawCullsBackface(t *testing.T) {
	target := image.New(10, 10, 4)
	depth := NewDepthBuffer(10, 10)
	info := screenSpaceInfo(10, 10)
	shader := constShader{colour: colour.Colour[float32]{R: 1, A: 1}}

	m := triangleModel(t)
	// Reverse winding order to face away from the camera.
	m.Faces[0].Position = [3]int{2, 1, 0}

	counters := Draw[constOut](info, shader, m, target, depth)
	assert.Equal(t, uint64(0), counters.Pixels)
}

func TestDepthBufferGreaterWins(t *testing.T) {
	d := NewDepthBuffer(1, 1)

	assert.True(t, d.Test(0, 0, 1))
	assert.False(t, d.Test(0, 0, 0.5))
	assert.True(t, d.Test(0, 0, 2))
}

func TestCountersAdd(t *testing.T) {
	var total Counters
	total.Add(Counters{Triangles: 1, Pixels: 10, Draws: 1})
	total.Add(Counters{Triangles: 2, Pixels: 20, Draws: 1})

	assert.Equal(t, uint64(3), total.Triangles)
	assert.Equal(t, uint64(30), total.Pixels)
	assert.Equal(t, uint64(2), total.Draws)
}
