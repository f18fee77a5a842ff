// Package imaging loads raster images into RGB pixel buffers and writes
// them back out. Only lossless formats may be written: a lossy re-encode
// would destroy the embedded channel LSBs, so .jpg/.jpeg outputs are
// rejected here rather than silently corrupting the payload.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder (lossless output still required)
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/molinab297/gosteg/pkg/stego"
)

// Errors
var (
	ErrLossyFormat       = &FormatError{"lossy output format would corrupt embedded data"}
	ErrUnsupportedFormat = &FormatError{"unsupported output format"}
)

// FormatError represents an image format error
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

// Load reads the image at path into an RGB pixel buffer. PNG, BMP, GIF,
// and JPEG inputs are accepted; alpha is discarded.
func Load(path string) (*stego.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, nil
}

// Decode reads an image from r into an RGB pixel buffer.
func Decode(r io.Reader) (*stego.Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// FromImage converts any image.Image into an RGB pixel buffer.
func FromImage(img image.Image) *stego.Buffer {
	bounds := img.Bounds()
	buf := stego.NewBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			buf.Set(x, y, stego.Pixel{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			})
		}
	}
	return buf
}

// ToImage converts a pixel buffer into an image.RGBA with full alpha.
func ToImage(buf *stego.Buffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			px := buf.At(x, y)
			img.Set(x, y, color.RGBA{R: px.R, G: px.G, B: px.B, A: 255})
		}
	}
	return img
}

// Save writes buf to path, choosing the encoder by extension. Only the
// lossless .png and .bmp extensions are allowed.
func Save(path string, buf *stego.Buffer) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return writeFile(path, buf, png.Encode)
	case ".bmp":
		return writeFile(path, buf, bmp.Encode)
	case ".jpg", ".jpeg":
		return fmt.Errorf("%s output: %w", ext, ErrLossyFormat)
	default:
		return fmt.Errorf("%q output: %w", ext, ErrUnsupportedFormat)
	}
}

// EncodePNG writes buf to w as PNG. Used by the HTTP surface, which streams
// the result instead of touching the filesystem.
func EncodePNG(w io.Writer, buf *stego.Buffer) error {
	if err := png.Encode(w, ToImage(buf)); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}

func writeFile(path string, buf *stego.Buffer, encode func(io.Writer, image.Image) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := encode(f, ToImage(buf)); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
