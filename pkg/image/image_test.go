package image

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glrast/swgl/pkg/colour"
)

func TestSetGetRoundTrip(t *testing.T) {
	img := New(4, 4, 4)
	c := colour.Colour[uint8]{R: 10, G: 20, B: 30, A: 255}

	img.Set(1, 2, c)
	assert.Equal(t, c, img.Get(1, 2))
}

func TestGetOutOfBoundsIsZero(t *testing.T) {
	img := New(2, 2, 3)
	assert.Equal(t, colour.Colour[uint8]{}, img.Get(-1, 0))
	assert.Equal(t, colour.Colour[uint8]{}, img.Get(2, 0))
}

func TestClear(t *testing.T) {
	img := New(2, 2, 4)
	red := colour.Colour[uint8]{R: 255, A: 255}
	img.Clear(red)

	for y := range 2 {
		for x := range 2 {
			assert.Equal(t, red, img.Get(x, y))
		}
	}
}

func TestSampleClampsToEdge(t *testing.T) {
	img := New(2, 1, 3)
	img.Set(0, 0, colour.Colour[uint8]{R: 1, A: 255})
	img.Set(1, 0, colour.Colour[uint8]{R: 2, A: 255})

	assert.Equal(t, uint8(1), img.Sample(-1, 0).R)
	assert.Equal(t, uint8(2), img.Sample(2, 0).R)
}

func TestFlipVertically(t *testing.T) {
	img := New(1, 2, 3)
	top := colour.Colour[uint8]{R: 1, A: 255}
	bottom := colour.Colour[uint8]{R: 2, A: 255}
	img.Set(0, 0, top)
	img.Set(0, 1, bottom)

	img.FlipVertically()

	assert.Equal(t, bottom, img.Get(0, 0))
	assert.Equal(t, top, img.Get(0, 1))
}

func TestFlipHorizontally(t *testing.T) {
	img := New(2, 1, 3)
	left := colour.Colour[uint8]{R: 1, A: 255}
	right := colour.Colour[uint8]{R: 2, A: 255}
	img.Set(0, 0, left)
	img.Set(1, 0, right)

	img.FlipHorizontally()

	assert.Equal(t, right, img.Get(0, 0))
	assert.Equal(t, left, img.Get(1, 0))
}

func TestTGARoundTrip(t *testing.T) {
	img := New(3, 2, 3)
	for y := range 2 {
		for x := range 3 {
			img.Set(x, y, colour.Colour[uint8]{
				R: uint8(x * 10), G: uint8(y * 10), B: 5, A: 255,
			})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTGA(&buf, img))

	got, err := ReadTGA(&buf)
	require.NoError(t, err)

	assert.Equal(t, img.Width, got.Width)
	assert.Equal(t, img.Height, got.Height)
	for y := range 2 {
		for x := range 3 {
			assert.Equal(t, img.Get(x, y).R, got.Get(x, y).R)
			assert.Equal(t, img.Get(x, y).G, got.Get(x, y).G)
			assert.Equal(t, img.Get(x, y).B, got.Get(x, y).B)
		}
	}
}

func TestReadTGARejectsUnsupportedType(t *testing.T) {
	hdr := make([]byte, 18)
	hdr[2] = 1 // color-mapped, unsupported
	_, err := ReadTGA(bytes.NewReader(hdr))
	require.Error(t, err)
}
