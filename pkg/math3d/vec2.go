package math3d

import "math"

// Vec2 represents a 2D vector, used throughout the pipeline for texture
// coordinates as well as plain screen-space points. U/V are accessors over
// the same X/Y storage for callers working with texture coordinates.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// UV creates a new Vec2 from texture coordinates.
func UV(u, v float64) Vec2 {
	return Vec2{u, v}
}

// Zero2 returns the zero vector.
func Zero2() Vec2 {
	return Vec2{}
}

// U returns the X component under its texture-coordinate name.
func (a Vec2) U() float64 { return a.X }

// V returns the Y component under its texture-coordinate name.
func (a Vec2) V() float64 { return a.Y }

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Mul returns the component-wise product a * b.
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Dot returns the dot product a . b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Len returns the length (magnitude) of the vector.
func (a Vec2) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec2) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

// Normalize scales the vector to unit length in place and returns the
// length it had before scaling. A zero vector is left unchanged and reports
// a length of 0.
func (a *Vec2) Normalize() float64 {
	l := a.Len()
	if l == 0 {
		return 0
	}
	a.X /= l
	a.Y /= l
	return l
}

// Normalized returns a unit-length copy of a, leaving a untouched.
func (a Vec2) Normalized() Vec2 {
	a.Normalize()
	return a
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return Vec2{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
	}
}

// Min returns the component-wise minimum.
func (a Vec2) Min(b Vec2) Vec2 {
	return Vec2{math.Min(a.X, b.X), math.Min(a.Y, b.Y)}
}

// Max returns the component-wise maximum.
func (a Vec2) Max(b Vec2) Vec2 {
	return Vec2{math.Max(a.X, b.X), math.Max(a.Y, b.Y)}
}
