// Package pipeline implements the generic vertex/fragment draw loop: given
// a shader whose per-vertex output type satisfies VOut, it projects a
// model's triangles to screen space, rasterizes them by barycentric
// interpolation, and shades the covered pixels.
package pipeline

import "github.com/glrast/swgl/pkg/math3d"

// DrawInfo carries the per-draw uniforms a shader needs: the model/view/
// projection/viewport matrices, the eye position, and the scene's lights.
// Prepare composes the matrices and transforms the lights into view space
// once per draw, the way the original's draw_info::prepare_for_draw did,
// rather than once per vertex.
type DrawInfo struct {
	Model      math3d.Mat4
	View       math3d.Mat4
	Projection math3d.Mat4
	Viewport   math3d.Mat4

	Eye              math3d.Vec3
	PointLight       math3d.Vec3
	DirectionalLight math3d.Vec3
	AmbientLight     float64

	// Populated by Prepare.
	MV                   math3d.Mat4
	MVPV                 math3d.Mat4
	DirectionalLightView math3d.Vec3
	PointLightView       math3d.Vec3
}

// Prepare computes the composite matrices and view-space lights from
// Model, View, Projection, Viewport, PointLight and DirectionalLight. Call
// it once before drawing any triangle with this DrawInfo.
func (d *DrawInfo) Prepare() {
	d.MV = d.View.Mul(d.Model)
	d.MVPV = d.Viewport.Mul(d.Projection).Mul(d.MV)
	d.DirectionalLightView = d.View.MulVec3Dir(d.DirectionalLight)
	d.DirectionalLightView.Normalize()
	d.PointLightView = d.View.MulVec3(d.PointLight)
}
