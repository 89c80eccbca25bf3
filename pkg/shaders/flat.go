// Package shaders provides the flat, Gouraud and Phong shaders: three
// concrete instantiations of pipeline.Shader, each choosing where lighting
// is evaluated (per-face, per-vertex, or per-pixel).
package shaders

import (
	"github.com/glrast/swgl/pkg/colour"
	"github.com/glrast/swgl/pkg/image"
	"github.com/glrast/swgl/pkg/math3d"
	"github.com/glrast/swgl/pkg/model"
	"github.com/glrast/swgl/pkg/pipeline"
)

// FlatOut is Flat's per-vertex output: a texture coordinate and a single
// light intensity shared by all three vertices of a face, carried on each
// one purely so Draw's weighted-sum interpolation has something uniform to
// blend.
type FlatOut struct {
	UV    math3d.Vec2
	Light float64
}

// Add implements pipeline.VOut.
func (v FlatOut) Add(o FlatOut) FlatOut {
	return FlatOut{UV: v.UV.Add(o.UV), Light: v.Light + o.Light}
}

// Scale implements pipeline.VOut.
func (v FlatOut) Scale(s float64) FlatOut {
	return FlatOut{UV: v.UV.Scale(s), Light: v.Light * s}
}

// Flat shades each triangle with one intensity computed from its face
// normal — no interpolation of the lighting term across the triangle,
// only of the texture coordinate.
type Flat struct {
	Albedo *image.Image
}

// VertexShade projects the vertex and computes the face's flat light
// intensity. It recomputes the same face normal on every one of the
// triangle's three calls, matching the shape of the original it's
// grounded on.
func (s *Flat) VertexShade(info *pipeline.DrawInfo, m *model.Model, face, vert int) (math3d.Vec4, FlatOut) {
	pos := m.Position(face, vert)
	clip := info.MVPV.MulVec4(pos.Widen(1))

	p0 := m.Position(face, 0)
	p1 := m.Position(face, 1)
	p2 := m.Position(face, 2)
	faceNormal := p1.Sub(p0).Cross(p2.Sub(p0))
	faceNormal = info.MV.MulVec3Dir(faceNormal)
	faceNormal.Normalize()

	ndotl := faceNormal.Dot(info.DirectionalLightView)
	if ndotl < 0 {
		ndotl = 0
	}
	light := ndotl + info.AmbientLight
	if light > 1 {
		light = 1
	}

	return clip, FlatOut{UV: m.UV(face, vert), Light: light}
}

// FragmentShade samples Albedo (white if nil) and scales it by the
// interpolated light intensity.
func (s *Flat) FragmentShade(info *pipeline.DrawInfo, v FlatOut) (colour.Colour[float32], bool) {
	albedo := sampleAlbedo(s.Albedo, v.UV)
	c := albedo.Scale(float32(v.Light))
	c.A = 1
	return c, false
}

func sampleAlbedo(tex *image.Image, uv math3d.Vec2) colour.Colour[float32] {
	if tex == nil {
		return colour.WhiteF32()
	}
	return colour.ColourToFloat(tex.Sample(uv.X, uv.Y))
}
