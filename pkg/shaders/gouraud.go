package shaders

import (
	"github.com/glrast/swgl/pkg/colour"
	"github.com/glrast/swgl/pkg/image"
	"github.com/glrast/swgl/pkg/math3d"
	"github.com/glrast/swgl/pkg/model"
	"github.com/glrast/swgl/pkg/pipeline"
)

// GouraudOut is Gouraud's per-vertex output: a texture coordinate and a
// light intensity computed from that vertex's own normal, left for Draw to
// interpolate across the triangle.
type GouraudOut struct {
	UV    math3d.Vec2
	Light float64
}

// Add implements pipeline.VOut.
func (v GouraudOut) Add(o GouraudOut) GouraudOut {
	return GouraudOut{UV: v.UV.Add(o.UV), Light: v.Light + o.Light}
}

// Scale implements pipeline.VOut.
func (v GouraudOut) Scale(s float64) GouraudOut {
	return GouraudOut{UV: v.UV.Scale(s), Light: v.Light * s}
}

// Gouraud shades each vertex with its own normal and lets the rasterizer's
// weighted-sum interpolation blend the resulting intensities across the
// triangle — unlike Flat's single per-face value.
type Gouraud struct {
	Albedo *image.Image
}

// VertexShade projects the vertex and computes its per-vertex light
// intensity from the model's own normal, not a derived face normal.
func (s *Gouraud) VertexShade(info *pipeline.DrawInfo, m *model.Model, face, vert int) (math3d.Vec4, GouraudOut) {
	pos := m.Position(face, vert)
	clip := info.MVPV.MulVec4(pos.Widen(1))

	n := info.MV.MulVec3Dir(m.Normal(face, vert))
	n.Normalize()

	ndotl := n.Dot(info.DirectionalLightView)
	if ndotl < 0 {
		ndotl = 0
	}
	light := ndotl + info.AmbientLight
	if light > 1 {
		light = 1
	}

	return clip, GouraudOut{UV: m.UV(face, vert), Light: light}
}

// FragmentShade samples Albedo (white if nil) and scales it by the
// interpolated light intensity.
func (s *Gouraud) FragmentShade(info *pipeline.DrawInfo, v GouraudOut) (colour.Colour[float32], bool) {
	albedo := sampleAlbedo(s.Albedo, v.UV)
	c := albedo.Scale(float32(v.Light))
	c.A = albedo.A
	return c, false
}
