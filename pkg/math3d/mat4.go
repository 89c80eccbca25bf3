package math3d

import "math"

// Mat4 is a 4x4 matrix stored in row-major order: element (row, col) lives
// at index row*4+col, and transforming a vector is the usual
// d_i = sum_k a[i][k] * x_k, i.e. M.MulVec4(v) multiplies v as a column
// vector on the right.
//
// | m00 m01 m02 m03 |
// | m10 m11 m12 m13 |
// | m20 m21 m22 m23 |
// | m30 m31 m32 m33 |
type Mat4 [16]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate creates a translation matrix.
func Translate(v Vec3) Mat4 {
	return Mat4{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	}
}

// Scale creates a scaling matrix.
func Scale(v Vec3) Mat4 {
	return Mat4{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// ScaleUniform creates a uniform scaling matrix.
func ScaleUniform(s float64) Mat4 {
	return Scale(V3(s, s, s))
}

// RotateX creates a rotation matrix around the X axis.
func RotateX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY creates a rotation matrix around the Y axis.
func RotateY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ creates a rotation matrix around the Z axis.
func RotateZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Rotate creates a rotation matrix around an arbitrary axis (Rodrigues'
// formula). axis does not need to be pre-normalized.
func Rotate(axis Vec3, angle float64) Mat4 {
	axis.Normalize()
	c, s := math.Cos(angle), math.Sin(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y, 0,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x, 0,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// LookAt builds a view matrix for a camera at eye looking toward at, with
// the given world up vector. Following the convention z points from the
// target back to the eye, so the camera looks down -z in its own space:
//
//	z = normalize(eye - at)
//	x = normalize(up x z)
//	y = z x x
func LookAt(eye, at, up Vec3) Mat4 {
	z := eye.Sub(at)
	z.Normalize()
	x := up.Cross(z)
	x.Normalize()
	y := z.Cross(x)

	return Mat4{
		x.X, x.Y, x.Z, -x.Dot(eye),
		y.X, y.Y, y.Z, -y.Dot(eye),
		z.X, z.Y, z.Z, -z.Dot(eye),
		0, 0, 0, 1,
	}
}

// Viewport builds the matrix that maps NDC coordinates in [-1,1]^3 to a
// screen-space box of width w and height h with its top-left corner at
// (x, y), and maps the NDC depth range [-1,1] to [0,255].
func Viewport(x, y, w, h float64) Mat4 {
	return Mat4{
		w / 2, 0, 0, x + w/2,
		0, h / 2, 0, y + h/2,
		0, 0, 127.5, 127.5,
		0, 0, 0, 1,
	}
}

// Perspective creates a perspective projection matrix.
// fovy is vertical field of view in radians.
// aspect is width/height.
// near and far are clipping planes.
func Perspective(fovy, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(fovy/2)
	nf := 1.0 / (near - far)

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, 2 * far * near * nf,
		0, 0, -1, 0,
	}
}

// Orthographic creates an orthographic projection matrix.
func Orthographic(left, right, bottom, top, near, far float64) Mat4 {
	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	fn := 1.0 / (far - near)

	return Mat4{
		2 * rl, 0, 0, -(right + left) * rl,
		0, 2 * tb, 0, -(top + bottom) * tb,
		0, 0, -2 * fn, -(far + near) * fn,
		0, 0, 0, 1,
	}
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for row := range 4 {
		for col := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[row*4+k] * b[k*4+col]
			}
			m[row*4+col] = sum
		}
	}
	return m
}

// MulVec3 transforms a Vec3 as a point (w=1), performing the perspective
// divide if the resulting w is not 1.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	w := m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]
	x := m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]
	y := m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]
	z := m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]
	if w == 0 {
		w = 1
	}
	return Vec3{x / w, y / w, z / w}
}

// MulVec3Dir transforms a Vec3 as a direction (w=0, no translation).
func (m Mat4) MulVec3Dir(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// MulVec4 transforms a Vec4.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// Transpose transposes the matrix in place.
func (m *Mat4) Transpose() {
	m[1], m[4] = m[4], m[1]
	m[2], m[8] = m[8], m[2]
	m[3], m[12] = m[12], m[3]
	m[6], m[9] = m[9], m[6]
	m[7], m[13] = m[13], m[7]
	m[11], m[14] = m[14], m[11]
}

// Transposed returns a transposed copy of m, leaving m untouched.
func (m Mat4) Transposed() Mat4 {
	m.Transpose()
	return m
}

// Determinant returns the determinant of the matrix.
func (m Mat4) Determinant() float64 {
	return m[0]*(m[5]*(m[10]*m[15]-m[14]*m[11])-m[6]*(m[9]*m[15]-m[13]*m[11])+m[7]*(m[9]*m[14]-m[13]*m[10])) -
		m[1]*(m[4]*(m[10]*m[15]-m[14]*m[11])-m[6]*(m[8]*m[15]-m[12]*m[11])+m[7]*(m[8]*m[14]-m[12]*m[10])) +
		m[2]*(m[4]*(m[9]*m[15]-m[13]*m[11])-m[5]*(m[8]*m[15]-m[12]*m[11])+m[7]*(m[8]*m[13]-m[12]*m[9])) -
		m[3]*(m[4]*(m[9]*m[14]-m[13]*m[10])-m[5]*(m[8]*m[14]-m[12]*m[10])+m[6]*(m[8]*m[13]-m[12]*m[9]))
}

// Inverse returns the inverse of the matrix.
// Returns identity if the matrix is singular (det=0).
func (m Mat4) Inverse() Mat4 {
	// Compute via the transpose of the column-major cofactor expansion:
	// since row-major and column-major storage of the same matrix are
	// transposes of each other, invert by transposing, applying the
	// classic column-major adjugate formula, and transposing back.
	t := m.Transposed()

	det := t.Determinant()
	if det == 0 {
		return Identity()
	}
	invDet := 1.0 / det

	var inv Mat4
	inv[0] = (t[5]*(t[10]*t[15]-t[14]*t[11]) - t[9]*(t[6]*t[15]-t[14]*t[7]) + t[13]*(t[6]*t[11]-t[10]*t[7])) * invDet
	inv[4] = -(t[4]*(t[10]*t[15]-t[14]*t[11]) - t[8]*(t[6]*t[15]-t[14]*t[7]) + t[12]*(t[6]*t[11]-t[10]*t[7])) * invDet
	inv[8] = (t[4]*(t[9]*t[15]-t[13]*t[11]) - t[8]*(t[5]*t[15]-t[13]*t[7]) + t[12]*(t[5]*t[11]-t[9]*t[7])) * invDet
	inv[12] = -(t[4]*(t[9]*t[14]-t[13]*t[10]) - t[8]*(t[5]*t[14]-t[13]*t[6]) + t[12]*(t[5]*t[10]-t[9]*t[6])) * invDet

	inv[1] = -(t[1]*(t[10]*t[15]-t[14]*t[11]) - t[9]*(t[2]*t[15]-t[14]*t[3]) + t[13]*(t[2]*t[11]-t[10]*t[3])) * invDet
	inv[5] = (t[0]*(t[10]*t[15]-t[14]*t[11]) - t[8]*(t[2]*t[15]-t[14]*t[3]) + t[12]*(t[2]*t[11]-t[10]*t[3])) * invDet
	inv[9] = -(t[0]*(t[9]*t[15]-t[13]*t[11]) - t[8]*(t[1]*t[15]-t[13]*t[3]) + t[12]*(t[1]*t[11]-t[9]*t[3])) * invDet
	inv[13] = (t[0]*(t[9]*t[14]-t[13]*t[10]) - t[8]*(t[1]*t[14]-t[13]*t[2]) + t[12]*(t[1]*t[10]-t[9]*t[2])) * invDet

	inv[2] = (t[1]*(t[6]*t[15]-t[14]*t[7]) - t[5]*(t[2]*t[15]-t[14]*t[3]) + t[13]*(t[2]*t[7]-t[6]*t[3])) * invDet
	inv[6] = -(t[0]*(t[6]*t[15]-t[14]*t[7]) - t[4]*(t[2]*t[15]-t[14]*t[3]) + t[12]*(t[2]*t[7]-t[6]*t[3])) * invDet
	inv[10] = (t[0]*(t[5]*t[15]-t[13]*t[7]) - t[4]*(t[1]*t[15]-t[13]*t[3]) + t[12]*(t[1]*t[7]-t[5]*t[3])) * invDet
	inv[14] = -(t[0]*(t[5]*t[14]-t[13]*t[6]) - t[4]*(t[1]*t[14]-t[13]*t[2]) + t[12]*(t[1]*t[6]-t[5]*t[2])) * invDet

	inv[3] = -(t[1]*(t[6]*t[11]-t[10]*t[7]) - t[5]*(t[2]*t[11]-t[10]*t[3]) + t[9]*(t[2]*t[7]-t[6]*t[3])) * invDet
	inv[7] = (t[0]*(t[6]*t[11]-t[10]*t[7]) - t[4]*(t[2]*t[11]-t[10]*t[3]) + t[8]*(t[2]*t[7]-t[6]*t[3])) * invDet
	inv[11] = -(t[0]*(t[5]*t[11]-t[9]*t[7]) - t[4]*(t[1]*t[11]-t[9]*t[3]) + t[8]*(t[1]*t[7]-t[5]*t[3])) * invDet
	inv[15] = (t[0]*(t[5]*t[10]-t[9]*t[6]) - t[4]*(t[1]*t[10]-t[9]*t[2]) + t[8]*(t[1]*t[6]-t[5]*t[2])) * invDet

	inv.Transpose()
	return inv
}

// Get returns the element at (row, col).
func (m Mat4) Get(row, col int) float64 {
	return m[row*4+col]
}

// Set sets the element at (row, col).
func (m *Mat4) Set(row, col int, val float64) {
	m[row*4+col] = val
}

// GetRow returns row i as a Vec4.
func (m Mat4) GetRow(i int) Vec4 {
	return Vec4{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

// SetRow sets row i from a Vec4.
func (m *Mat4) SetRow(i int, v Vec4) {
	m[i*4] = v.X
	m[i*4+1] = v.Y
	m[i*4+2] = v.Z
	m[i*4+3] = v.W
}

// GetColumn returns column j as a Vec4.
func (m Mat4) GetColumn(j int) Vec4 {
	return Vec4{m[j], m[4+j], m[8+j], m[12+j]}
}

// SetColumn sets column j from a Vec4.
func (m *Mat4) SetColumn(j int, v Vec4) {
	m[j] = v.X
	m[4+j] = v.Y
	m[8+j] = v.Z
	m[12+j] = v.W
}

// Translation extracts the translation component.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[3], m[7], m[11]}
}

// SetTranslation sets the translation component.
func (m *Mat4) SetTranslation(v Vec3) {
	m[3] = v.X
	m[7] = v.Y
	m[11] = v.Z
}
