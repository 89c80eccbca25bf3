package pipeline

import (
	"github.com/glrast/swgl/pkg/colour"
	"github.com/glrast/swgl/pkg/math3d"
	"github.com/glrast/swgl/pkg/model"
)

// VOut is the algebra a shader's per-vertex output type must support so the
// rasterizer can interpolate it across a triangle: a weighted sum of the
// three vertices' outputs. This is the generics replacement for the
// original's CRTP vertex_out base, whose operator+ and operator* did
// exactly this.
type VOut[Self any] interface {
	Add(Self) Self
	Scale(float64) Self
}

// Shader is implemented once per concrete VOut type and monomorphized by
// Draw — there is no dynamic dispatch through a shader pointer at
// rasterization time.
type Shader[V VOut[V]] interface {
	// VertexShade projects one vertex of one face to clip space and
	// produces the attributes that will be interpolated across the
	// triangle it belongs to.
	VertexShade(info *DrawInfo, m *model.Model, face, vert int) (clip math3d.Vec4, out V)

	// FragmentShade shades one covered pixel from its interpolated
	// vertex output. If discard is true the pixel is not written.
	FragmentShade(info *DrawInfo, v V) (c colour.Colour[float32], discard bool)
}
