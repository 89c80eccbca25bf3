// Package image provides the engine's pixel buffer: a contiguous byte
// array addressed by width, height and bytes-per-pixel, with nearest-
// neighbor clamp-to-edge sampling and a TGA codec for the documented
// subset of the format (types 2/3/10/11, 8/24/32 bpp).
package image

import (
	"fmt"

	"github.com/glrast/swgl/pkg/colour"
)

// Image is a row-major, top-to-bottom pixel buffer. Each pixel occupies
// BPP bytes in R, G, B[, A] order regardless of how it was loaded — any
// BGR-on-disk swap is confined to the TGA codec in tga.go.
type Image struct {
	Width, Height int
	BPP           int // 1 (grayscale), 3 (RGB), or 4 (RGBA)
	Pixels        []byte
}

// New allocates a zeroed image of the given dimensions and channel count.
func New(width, height, bpp int) *Image {
	if bpp != 1 && bpp != 3 && bpp != 4 {
		panic(fmt.Sprintf("image: unsupported bpp %d", bpp))
	}
	return &Image{
		Width:  width,
		Height: height,
		BPP:    bpp,
		Pixels: make([]byte, width*height*bpp),
	}
}

func (img *Image) offset(x, y int) int {
	return (y*img.Width + x) * img.BPP
}

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && x < img.Width && y >= 0 && y < img.Height
}

// Get returns the pixel at (x, y). Out-of-bounds coordinates return the
// zero colour.
func (img *Image) Get(x, y int) colour.Colour[uint8] {
	if !img.inBounds(x, y) {
		return colour.Colour[uint8]{}
	}
	off := img.offset(x, y)
	c := colour.Colour[uint8]{A: 255}
	switch img.BPP {
	case 1:
		c.R, c.G, c.B = img.Pixels[off], img.Pixels[off], img.Pixels[off]
	case 3:
		c.R, c.G, c.B = img.Pixels[off], img.Pixels[off+1], img.Pixels[off+2]
	case 4:
		c.R, c.G, c.B, c.A = img.Pixels[off], img.Pixels[off+1], img.Pixels[off+2], img.Pixels[off+3]
	}
	return c
}

// Set writes the pixel at (x, y). Out-of-bounds coordinates are a no-op.
func (img *Image) Set(x, y int, c colour.Colour[uint8]) {
	if !img.inBounds(x, y) {
		return
	}
	off := img.offset(x, y)
	switch img.BPP {
	case 1:
		img.Pixels[off] = luminance(c)
	case 3:
		img.Pixels[off], img.Pixels[off+1], img.Pixels[off+2] = c.R, c.G, c.B
	case 4:
		img.Pixels[off], img.Pixels[off+1], img.Pixels[off+2], img.Pixels[off+3] = c.R, c.G, c.B, c.A
	}
}

func luminance(c colour.Colour[uint8]) byte {
	return byte((uint32(c.R)*30 + uint32(c.G)*59 + uint32(c.B)*11) / 100)
}

// Clear fills the whole image with c.
func (img *Image) Clear(c colour.Colour[uint8]) {
	for y := range img.Height {
		for x := range img.Width {
			img.Set(x, y, c)
		}
	}
}

// Sample fetches the nearest pixel for normalized texture coordinates
// (u, v), each typically in [0,1]. Coordinates outside that range are
// clamped to the edge pixel rather than wrapped.
func (img *Image) Sample(u, v float64) colour.Colour[uint8] {
	x := clampIndex(int(u*float64(img.Width)), img.Width)
	y := clampIndex(int(v*float64(img.Height)), img.Height)
	return img.Get(x, y)
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// FlipVertically reverses the row order in place.
func (img *Image) FlipVertically() {
	rowBytes := img.Width * img.BPP
	top := make([]byte, rowBytes)
	for y := range img.Height / 2 {
		other := img.Height - 1 - y
		a := img.Pixels[y*rowBytes : y*rowBytes+rowBytes]
		b := img.Pixels[other*rowBytes : other*rowBytes+rowBytes]
		copy(top, a)
		copy(a, b)
		copy(b, top)
	}
}

// FlipHorizontally reverses the column order of every row in place.
func (img *Image) FlipHorizontally() {
	for y := range img.Height {
		for x := range img.Width / 2 {
			other := img.Width - 1 - x
			a, b := img.Get(x, y), img.Get(other, y)
			img.Set(x, y, b)
			img.Set(other, y, a)
		}
	}
}
