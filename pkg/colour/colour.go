// Package colour provides a pixel colour type generic over its channel
// representation, so the same shading code can work in either the
// normalized-float space shaders compute in or the packed-byte space the
// image module stores.
package colour

// Component is the set of channel representations a Colour can hold.
type Component interface {
	~uint8 | ~float32
}

// Colour holds four channels (red, green, blue, alpha) in representation T.
// For T = uint8 each channel ranges 0-255; for T = float32 each channel is
// normally in 0-1, though shaders are free to produce values outside that
// range before a final ColourToU8 clamps them.
type Colour[T Component] struct {
	R, G, B, A T
}

// New builds a Colour from its four channels.
func New[T Component](r, g, b, a T) Colour[T] {
	return Colour[T]{R: r, G: g, B: b, A: a}
}

// Mul returns the componentwise product c * o. For T = uint8 this wraps
// modulo 256 rather than saturating, matching how the original untyped
// template multiplies raw channel storage; callers working in byte space
// that want saturation should convert to float, multiply, and convert back.
func (c Colour[T]) Mul(o Colour[T]) Colour[T] {
	return Colour[T]{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// Scale returns c with every channel multiplied by s.
func (c Colour[T]) Scale(s T) Colour[T] {
	return Colour[T]{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Add returns the componentwise sum c + o.
func (c Colour[T]) Add(o Colour[T]) Colour[T] {
	return Colour[T]{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// WhiteU8 returns opaque white in byte representation.
func WhiteU8() Colour[uint8] { return Colour[uint8]{255, 255, 255, 255} }

// BlackU8 returns opaque black in byte representation.
func BlackU8() Colour[uint8] { return Colour[uint8]{0, 0, 0, 255} }

// WhiteF32 returns opaque white in normalized float representation.
func WhiteF32() Colour[float32] { return Colour[float32]{1, 1, 1, 1} }

// BlackF32 returns opaque black in normalized float representation.
func BlackF32() Colour[float32] { return Colour[float32]{0, 0, 0, 1} }

// ColourToFloat converts a byte colour to normalized float space,
// dividing each channel by 255.
func ColourToFloat(c Colour[uint8]) Colour[float32] {
	const inv255 = 1.0 / 255.0
	return Colour[float32]{
		R: float32(c.R) * inv255,
		G: float32(c.G) * inv255,
		B: float32(c.B) * inv255,
		A: float32(c.A) * inv255,
	}
}

// ColourToU8 converts a normalized float colour to byte space, saturating
// each channel to [0,1] before scaling by 255.
func ColourToU8(c Colour[float32]) Colour[uint8] {
	return Colour[uint8]{
		R: saturate(c.R),
		G: saturate(c.G),
		B: saturate(c.B),
		A: saturate(c.A),
	}
}

func saturate(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
