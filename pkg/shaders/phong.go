package shaders

import (
	"math"

	"github.com/glrast/swgl/pkg/colour"
	"github.com/glrast/swgl/pkg/image"
	"github.com/glrast/swgl/pkg/math3d"
	"github.com/glrast/swgl/pkg/model"
	"github.com/glrast/swgl/pkg/pipeline"
)

// PhongOut is Phong's per-vertex output: view-space position and normal
// plus a texture coordinate, all interpolated across the triangle so
// lighting is evaluated once per covered pixel rather than per vertex.
type PhongOut struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
	UV       math3d.Vec2
}

// Add implements pipeline.VOut.
func (v PhongOut) Add(o PhongOut) PhongOut {
	return PhongOut{
		Position: v.Position.Add(o.Position),
		Normal:   v.Normal.Add(o.Normal),
		UV:       v.UV.Add(o.UV),
	}
}

// Scale implements pipeline.VOut.
func (v PhongOut) Scale(s float64) PhongOut {
	return PhongOut{
		Position: v.Position.Scale(s),
		Normal:   v.Normal.Scale(s),
		UV:       v.UV.Scale(s),
	}
}

// Phong shades per pixel from an interpolated view-space position and
// normal, combining a diffuse and a specular term, both from the point
// light, with an ambient term.
type Phong struct {
	Albedo     *image.Image
	Shininess  float64 // specular exponent; 0 disables the highlight falloff
	SpecColour colour.Colour[float32]
}

// NewPhong returns a Phong shader with the conventional blue-tinted
// specular highlight and a shininess of 16.
func NewPhong(albedo *image.Image) *Phong {
	return &Phong{
		Albedo:     albedo,
		Shininess:  16,
		SpecColour: colour.Colour[float32]{R: 0, G: 0, B: 1, A: 1},
	}
}

// VertexShade projects the vertex and carries its view-space position and
// normal through to the fragment stage. The normal is transformed by the
// full model-view matrix, translation included — a known simplification
// carried over from the original (see DESIGN.md); it's harmless for the
// orthonormal transforms this engine produces; it would be wrong under a
// non-uniform scale.
func (s *Phong) VertexShade(info *pipeline.DrawInfo, m *model.Model, face, vert int) (math3d.Vec4, PhongOut) {
	pos := m.Position(face, vert)
	clip := info.MVPV.MulVec4(pos.Widen(1))

	viewPos := info.MV.MulVec3(pos)
	viewNormal := info.MV.MulVec3(m.Normal(face, vert))

	return clip, PhongOut{Position: viewPos, Normal: viewNormal, UV: m.UV(face, vert)}
}

// FragmentShade evaluates Phong lighting at the interpolated position.
func (s *Phong) FragmentShade(info *pipeline.DrawInfo, v PhongOut) (colour.Colour[float32], bool) {
	normal := v.Normal
	normal.Normalize()

	lightDir := info.PointLightView.Sub(v.Position)
	dist := lightDir.Normalize()
	attenuation := 1.0 / dist

	ndotl := normal.Dot(lightDir)
	if ndotl < 0 {
		ndotl = 0
	}

	var spec float64
	if ndotl > 0 {
		viewDir := info.View.Translation()
		viewDir.Normalize()

		reflectDir := lightDir.Negate().Reflect(normal)
		spec = viewDir.Dot(reflectDir)
		if spec < 0 {
			spec = 0
		}
		if s.Shininess > 0 {
			spec = math.Pow(spec, s.Shininess)
		}
	}

	albedo := sampleAlbedo(s.Albedo, v.UV)

	diffuse := albedo.Scale(float32(attenuation * ndotl))
	specular := s.SpecColour.Scale(float32(attenuation * spec))
	ambient := albedo.Scale(float32(info.AmbientLight))

	c := diffuse.Add(specular).Add(ambient)
	c.A = albedo.A
	return c, false
}
