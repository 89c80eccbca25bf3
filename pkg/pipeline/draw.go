package pipeline

import (
	"github.com/glrast/swgl/pkg/colour"
	"github.com/glrast/swgl/pkg/geom"
	"github.com/glrast/swgl/pkg/image"
	"github.com/glrast/swgl/pkg/math3d"
	"github.com/glrast/swgl/pkg/model"
)

// Draw rasterizes every triangle of m with shader, writing covered pixels
// into target and testing/updating depth. It returns the counters for
// this call alone; callers accumulating a per-frame total should Add them
// into a running Counters.
//
// Clipping is limited to degenerate- and backface-culling: triangles are
// not clipped against the near plane, so a triangle straddling it may
// project incorrectly. Texture and attribute interpolation is weighted-sum
// across barycentric weights, never perspective-corrected by 1/w.
func Draw[V VOut[V]](info *DrawInfo, shader Shader[V], m *model.Model, target *image.Image, depth *DepthBuffer) Counters {
	var counters Counters
	counters.Draws = 1

	for face := range m.NFaces() {
		counters.Triangles++

		var clip [3]math3d.Vec4
		var out [3]V
		for i := range 3 {
			clip[i], out[i] = shader.VertexShade(info, m, face, i)
		}

		// Degenerate: any vertex sits exactly on the camera plane (w == 0).
		if clip[0].W == 0 || clip[1].W == 0 || clip[2].W == 0 {
			continue
		}

		var screen [3]math3d.Vec3
		for i := range 3 {
			screen[i] = clip[i].PerspectiveDivide()
		}

		p0 := math3d.V2(screen[0].X, screen[0].Y)
		p1 := math3d.V2(screen[1].X, screen[1].Y)
		p2 := math3d.V2(screen[2].X, screen[2].Y)

		// Backface cull: signed area of the screen-space triangle.
		area := (p1.X-p0.X)*(p2.Y-p0.Y) - (p2.X-p0.X)*(p1.Y-p0.Y)
		if area <= 0 {
			continue
		}

		basis := geom.NewBarycentricBasis(p0, p1, p2)

		bbox := geom.NewBBox2(p0, p1)
		bbox.Expand(p2)
		bbox = bbox.Clamp(
			math3d.V2(0, 0),
			math3d.V2(float64(target.Width-1), float64(target.Height-1)),
		)

		minX, minY := int(bbox.Min.X), int(bbox.Min.Y)
		maxX, maxY := int(bbox.Max.X), int(bbox.Max.Y)

		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				w, ok := basis.Compute(math3d.V2(float64(x)+0.5, float64(y)+0.5))
				if !ok || w.X < 0 || w.Y < 0 || w.Z < 0 {
					continue
				}

				z := w.X*screen[0].Z + w.Y*screen[1].Z + w.Z*screen[2].Z
				if !depth.Test(x, y, z) {
					continue
				}

				v := out[0].Scale(w.X).Add(out[1].Scale(w.Y)).Add(out[2].Scale(w.Z))
				c, discard := shader.FragmentShade(info, v)
				if discard {
					continue
				}

				target.Set(x, y, colour.ColourToU8(c))
				counters.Pixels++
			}
		}
	}

	return counters
}
