package image

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/glrast/swgl/pkg/logging"
)

// TGA image type codes this codec understands.
const (
	tgaTypeNone          = 0
	tgaTypeColorMapped   = 1
	tgaTypeTrueColor     = 2
	tgaTypeGrayscale     = 3
	tgaTypeRLEColorMap   = 9
	tgaTypeRLETrueColor  = 10
	tgaTypeRLEGrayscale  = 11
	tgaDescriptorTopOrig = 0x20
	tgaDescriptorRight   = 0x10
)

var tgaFooter = []byte("TRUEVISION-XFILE.\x00")

type tgaHeader struct {
	IDLength        uint8
	ColorMapType    uint8
	ImageType       uint8
	ColorMapFirst   uint16
	ColorMapLength  uint16
	ColorMapDepth   uint8
	XOrigin, YOrigin uint16
	Width, Height   uint16
	BitsPerPixel    uint8
	Descriptor      uint8
}

// ReadTGA decodes a Targa image of type 2, 3, 10 or 11 at 8, 24 or 32 bits
// per pixel. Any other combination is rejected. Load failures are logged
// at error level and returned wrapped.
func ReadTGA(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)

	var hdr tgaHeader
	if err := binary.Read(br, binary.LittleEndian, &hdr.IDLength); err != nil {
		return nil, tgaFail("read id length", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &hdr.ColorMapType); err != nil {
		return nil, tgaFail("read color map type", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &hdr.ImageType); err != nil {
		return nil, tgaFail("read image type", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &hdr.ColorMapFirst); err != nil {
		return nil, tgaFail("read color map spec", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &hdr.ColorMapLength); err != nil {
		return nil, tgaFail("read color map spec", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &hdr.ColorMapDepth); err != nil {
		return nil, tgaFail("read color map spec", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &hdr.XOrigin); err != nil {
		return nil, tgaFail("read x origin", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &hdr.YOrigin); err != nil {
		return nil, tgaFail("read y origin", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &hdr.Width); err != nil {
		return nil, tgaFail("read width", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &hdr.Height); err != nil {
		return nil, tgaFail("read height", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &hdr.BitsPerPixel); err != nil {
		return nil, tgaFail("read bits per pixel", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &hdr.Descriptor); err != nil {
		return nil, tgaFail("read descriptor", err)
	}

	switch hdr.ImageType {
	case tgaTypeTrueColor, tgaTypeGrayscale, tgaTypeRLETrueColor, tgaTypeRLEGrayscale:
	default:
		return nil, tgaFail("decode", fmt.Errorf("unsupported image type %d", hdr.ImageType))
	}

	bpp := int(hdr.BitsPerPixel) / 8
	if bpp != 1 && bpp != 3 && bpp != 4 {
		return nil, tgaFail("decode", fmt.Errorf("unsupported bit depth %d", hdr.BitsPerPixel))
	}

	if hdr.IDLength > 0 {
		if _, err := io.CopyN(io.Discard, br, int64(hdr.IDLength)); err != nil {
			return nil, tgaFail("skip image id", err)
		}
	}
	if hdr.ColorMapType != 0 {
		mapBytes := int64(hdr.ColorMapLength) * int64(hdr.ColorMapDepth) / 8
		if _, err := io.CopyN(io.Discard, br, mapBytes); err != nil {
			return nil, tgaFail("skip color map", err)
		}
	}

	width, height := int(hdr.Width), int(hdr.Height)
	img := New(width, height, bpp)

	rle := hdr.ImageType == tgaTypeRLETrueColor || hdr.ImageType == tgaTypeRLEGrayscale
	if rle {
		if err := decodeRLE(br, img); err != nil {
			return nil, tgaFail("decode rle data", err)
		}
	} else {
		if _, err := io.ReadFull(br, img.Pixels); err != nil {
			return nil, tgaFail("read pixel data", err)
		}
	}

	if bpp >= 3 {
		swapRB(img.Pixels, bpp)
	}

	if hdr.Descriptor&tgaDescriptorRight != 0 {
		img.FlipHorizontally()
	}
	// TGA's default origin is bottom-left; this engine stores images
	// top-to-bottom, so invert the sense of the top-origin bit.
	if hdr.Descriptor&tgaDescriptorTopOrig == 0 {
		img.FlipVertically()
	}

	return img, nil
}

func decodeRLE(r io.Reader, img *Image) error {
	bpp := img.BPP
	buf := make([]byte, bpp)
	total := img.Width * img.Height
	written := 0
	pixels := img.Pixels

	for written < total {
		var packet [1]byte
		if _, err := io.ReadFull(r, packet[:]); err != nil {
			return err
		}
		count := int(packet[0]&0x7f) + 1
		if packet[0]&0x80 != 0 {
			if _, err := io.ReadFull(r, buf); err != nil {
				return err
			}
			for range count {
				if written >= total {
					return fmt.Errorf("rle run overruns image")
				}
				copy(pixels[written*bpp:written*bpp+bpp], buf)
				written++
			}
		} else {
			for range count {
				if written >= total {
					return fmt.Errorf("rle run overruns image")
				}
				if _, err := io.ReadFull(r, buf); err != nil {
					return err
				}
				copy(pixels[written*bpp:written*bpp+bpp], buf)
				written++
			}
		}
	}
	return nil
}

// swapRB exchanges byte 0 and byte 2 of every bpp-sized pixel, converting
// between TGA's on-disk BGR(A) order and the engine's RGB(A) order.
func swapRB(pixels []byte, bpp int) {
	for i := 0; i+bpp <= len(pixels); i += bpp {
		pixels[i], pixels[i+2] = pixels[i+2], pixels[i]
	}
}

// WriteTGA encodes img as an uncompressed (type 2/3) Targa file with the
// 26-byte TRUEVISION-XFILE footer, top-origin set in the descriptor so no
// row flip is needed on the way out.
func WriteTGA(w io.Writer, img *Image) error {
	imgType := uint8(tgaTypeTrueColor)
	if img.BPP == 1 {
		imgType = tgaTypeGrayscale
	}

	hdr := []byte{
		0,                         // id length
		0,                         // color map type
		imgType,                   // image type
		0, 0, 0, 0, 0,             // color map spec
		0, 0, 0, 0, // x/y origin
		0, 0, // width placeholder
		0, 0, // height placeholder
		uint8(img.BPP * 8),   // bits per pixel
		tgaDescriptorTopOrig, // descriptor: top-left origin
	}
	binary.LittleEndian.PutUint16(hdr[12:14], uint16(img.Width))
	binary.LittleEndian.PutUint16(hdr[14:16], uint16(img.Height))

	if _, err := w.Write(hdr); err != nil {
		return fmt.Errorf("write tga header: %w", err)
	}

	out := make([]byte, len(img.Pixels))
	copy(out, img.Pixels)
	if img.BPP >= 3 {
		swapRB(out, img.BPP)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write tga pixels: %w", err)
	}

	if _, err := w.Write(make([]byte, 8)); err != nil { // empty ext/dev area offsets
		return fmt.Errorf("write tga extension area: %w", err)
	}
	if _, err := w.Write(tgaFooter); err != nil {
		return fmt.Errorf("write tga footer: %w", err)
	}
	return nil
}

func tgaFail(step string, err error) error {
	wrapped := fmt.Errorf("tga %s: %w", step, err)
	logging.Logger().Error("tga decode failed", "step", step, "error", err)
	return wrapped
}
