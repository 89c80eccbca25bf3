package shaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glrast/swgl/pkg/image"
	"github.com/glrast/swgl/pkg/math3d"
	"github.com/glrast/swgl/pkg/model"
	"github.com/glrast/swgl/pkg/pipeline"
)

func litInfo() *pipeline.DrawInfo {
	info := &pipeline.DrawInfo{
		Model:            math3d.Identity(),
		View:             math3d.Identity(),
		Projection:       math3d.Identity(),
		Viewport:         math3d.Viewport(0, 0, 100, 100),
		Eye:              math3d.V3(0, 0, 5),
		DirectionalLight: math3d.V3(0, 0, 1),
		PointLight:       math3d.V3(0, 0, 5),
		AmbientLight:     0.2,
	}
	info.Prepare()
	return info
}

func litModel() *model.Model {
	return &model.Model{
		Positions: []math3d.Vec3{
			{X: -0.5, Y: -0.5, Z: 0},
			{X: 0.5, Y: -0.5, Z: 0},
			{X: 0, Y: 0.5, Z: 0},
		},
		Normals: []math3d.Vec3{{X: 0, Y: 0, Z: 1}},
		UVs:     []math3d.Vec2{{X: 0, Y: 0}},
		Faces: []model.Face{
			{
				Position: [3]int{0, 1, 2},
				UV:       [3]int{0, 0, 0},
				Normal:   [3]int{0, 0, 0},
			},
		},
	}
}

func TestFlatLitFaceFacingLight(t *testing.T) {
	info := litInfo()
	m := litModel()
	s := &Flat{}

	_, out := s.VertexShade(info, m, 0, 0)
	assert.InDelta(t, 1.0, out.Light, 1e-9) // n.l=1, +ambient, clamped to 1

	c, discard := s.FragmentShade(info, out)
	require.False(t, discard)
	assert.InDelta(t, 1.0, float64(c.R), 1e-6)
}

func TestGouraudUsesPerVertexNormal(t *testing.T) {
	info := litInfo()
	m := litModel()
	s := &Gouraud{}

	_, out := s.VertexShade(info, m, 0, 0)
	assert.InDelta(t, 1.0, out.Light, 1e-9)
}

func TestPhongProducesOpaqueColour(t *testing.T) {
	info := litInfo()
	m := litModel()
	s := NewPhong(nil)

	_, out := s.VertexShade(info, m, 0, 0)
	c, discard := s.FragmentShade(info, out)

	require.False(t, discard)
	assert.Equal(t, float32(1), c.A)
	assert.GreaterOrEqual(t, c.R, float32(0))
}

func TestSampleAlbedoDefaultsToWhite(t *testing.T) {
	c := sampleAlbedo(nil, math3d.V2(0.5, 0.5))
	assert.Equal(t, float32(1), c.R)
	assert.Equal(t, float32(1), c.A)
}

func TestSampleAlbedoReadsTexture(t *testing.T) {
	tex := image.New(2, 2, 4)
	tex.Clear(tex.Get(0, 0)) // no-op, keep zero colour
	tex.Set(1, 1, tex.Get(1, 1))
	c := sampleAlbedo(tex, math3d.V2(0, 0))
	assert.Equal(t, float32(0), c.R)
}
