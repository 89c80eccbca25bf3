// Package geom provides the small geometric helpers the pipeline needs
// between model space and the rasterizer: screen-space bounding boxes and
// the barycentric weight computation triangles are filled with.
package geom

import "github.com/glrast/swgl/pkg/math3d"

// BBox2 is an axis-aligned bounding box in 2D, used to bound a triangle's
// screen-space footprint before walking its pixels.
type BBox2 struct {
	Min, Max math3d.Vec2
}

// NewBBox2 returns the box spanning exactly the two given points.
func NewBBox2(a, b math3d.Vec2) BBox2 {
	return BBox2{
		Min: math3d.V2(min(a.X, b.X), min(a.Y, b.Y)),
		Max: math3d.V2(max(a.X, b.X), max(a.Y, b.Y)),
	}
}

// Expand grows the box, if needed, to contain p.
func (b *BBox2) Expand(p math3d.Vec2) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Clamp restricts the box to lie within [lo, hi].
func (b BBox2) Clamp(lo, hi math3d.Vec2) BBox2 {
	return BBox2{
		Min: b.Min.Max(lo).Min(hi),
		Max: b.Max.Min(hi).Max(lo),
	}
}

// BBox3 is an axis-aligned bounding box in 3D, for model-space bounds.
type BBox3 struct {
	Min, Max math3d.Vec3
}

// NewBBox3 returns the box spanning exactly the two given points.
func NewBBox3(a, b math3d.Vec3) BBox3 {
	return BBox3{
		Min: math3d.V3(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)),
		Max: math3d.V3(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)),
	}
}

// Expand grows the box, if needed, to contain p.
func (b *BBox3) Expand(p math3d.Vec3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Center returns the midpoint of the box.
func (b BBox3) Center() math3d.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box's extent along each axis.
func (b BBox3) Size() math3d.Vec3 {
	return b.Max.Sub(b.Min)
}
