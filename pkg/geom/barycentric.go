package geom

import (
	"math"

	"github.com/glrast/swgl/pkg/math3d"
)

// BarycentricBasis computes barycentric weights for points against a fixed
// triangle (v0, v1, v2) in screen space, using the cross-product formula:
// build two vectors of (edge, edge, origin-query) components along X and Y,
// cross them, and recover weights from the result. Unlike the scratch-
// mutating version this is grounded on, Compute takes the query point and
// returns fresh weights every call — no state survives between calls.
type BarycentricBasis struct {
	v0, v1, v2 math3d.Vec2
}

// NewBarycentricBasis fixes the triangle weights will be computed against.
func NewBarycentricBasis(v0, v1, v2 math3d.Vec2) BarycentricBasis {
	return BarycentricBasis{v0, v1, v2}
}

// Compute returns the barycentric weights (w0, w1, w2) of p against the
// triangle, such that p == w0*v0 + w1*v1 + w2*v2. ok is false for a
// degenerate triangle, one whose doubled screen-space area is below 1 in
// magnitude (this includes collinear or coincident vertices); the weights
// are then (-1, 1, 1) and the caller should skip the triangle.
func (b BarycentricBasis) Compute(p math3d.Vec2) (w math3d.Vec3, ok bool) {
	ux := math3d.V3(b.v2.X-b.v0.X, b.v1.X-b.v0.X, b.v0.X-p.X)
	uy := math3d.V3(b.v2.Y-b.v0.Y, b.v1.Y-b.v0.Y, b.v0.Y-p.Y)
	u := ux.Cross(uy)

	if math.Abs(u.Z) < 1 {
		return math3d.V3(-1, 1, 1), false
	}
	return math3d.V3(1-(u.X+u.Y)/u.Z, u.Y/u.Z, u.X/u.Z), true
}
