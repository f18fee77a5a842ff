package stego

import (
	"errors"
	"fmt"

	"github.com/molinab297/gosteg/pkg/bitio"
)

// Config holds the codec's layout parameters. The defaults describe the
// on-image format this tool has always written; changing them produces
// images earlier builds cannot decode.
type Config struct {
	HeaderPixels     int // pixels reserved at the tail of the scan order
	BitsPerPixel     int // payload bits stored per pixel, one per channel
	HeaderFieldWidth int // width of the pixel-count field, in bits
}

// DefaultConfig returns the standard layout: 11 reserved pixels carrying an
// 11-bit pixel-count field, 3 payload bits per pixel.
func DefaultConfig() Config {
	return Config{
		HeaderPixels:     11,
		BitsPerPixel:     3,
		HeaderFieldWidth: 11,
	}
}

// Codec embeds text payloads into pixel buffers and recovers them.
type Codec struct {
	cfg Config
}

// NewCodec creates a codec with the given layout. Zero fields fall back to
// the defaults.
func NewCodec(cfg Config) *Codec {
	def := DefaultConfig()
	if cfg.HeaderPixels <= 0 {
		cfg.HeaderPixels = def.HeaderPixels
	}
	if cfg.BitsPerPixel <= 0 || cfg.BitsPerPixel > 3 {
		cfg.BitsPerPixel = def.BitsPerPixel
	}
	if cfg.HeaderFieldWidth <= 0 {
		cfg.HeaderFieldWidth = def.HeaderFieldWidth
	}
	return &Codec{cfg: cfg}
}

// PixelsNeeded returns how many pixels store bitCount payload bits.
func (c *Codec) PixelsNeeded(bitCount int) int {
	return (bitCount + c.cfg.BitsPerPixel - 1) / c.cfg.BitsPerPixel
}

// maxHeaderValue is the largest pixel count the header field can carry.
func (c *Codec) maxHeaderValue() int {
	return 1<<uint(c.cfg.HeaderFieldWidth) - 1
}

// Capacity returns the usable payload capacity of a width×height image, in
// bits. The capacity is bounded both by the pixels left over after the
// reserved header region and by what the header field can address.
func (c *Codec) Capacity(width, height int) int {
	usable := width*height - c.cfg.HeaderPixels
	if usable < 0 {
		usable = 0
	}
	if usable > c.maxHeaderValue() {
		usable = c.maxHeaderValue()
	}
	return usable * c.cfg.BitsPerPixel
}

// ValidateCapacity checks that pixelsNeeded payload pixels fit alongside the
// header region in a width×height image.
func (c *Codec) ValidateCapacity(pixelsNeeded, width, height int) error {
	if pixelsNeeded+c.cfg.HeaderPixels > width*height {
		return fmt.Errorf("%d payload pixels + %d header pixels exceed %dx%d image: %w",
			pixelsNeeded, c.cfg.HeaderPixels, width, height, ErrCapacity)
	}
	if pixelsNeeded > c.maxHeaderValue() {
		return fmt.Errorf("%d payload pixels exceed %d-bit header field: %w",
			pixelsNeeded, c.cfg.HeaderFieldWidth, ErrCapacity)
	}
	return nil
}

// Encode embeds text into a copy of src and returns the copy. src is never
// mutated. The header region receives the payload pixel count MSB-first,
// one bit per channel LSB in R,G,B order; channel LSBs past the field are
// zeroed so the header always decodes the same way. Payload bits then go
// one per channel LSB in row-major order. Every pixel the payload does not
// reach is byte-identical to src.
func (c *Codec) Encode(src *Buffer, text string) (*Buffer, error) {
	bits := bitio.StringToBits(text)
	needed := c.PixelsNeeded(len(bits))
	if err := c.ValidateCapacity(needed, src.Width, src.Height); err != nil {
		return nil, err
	}

	headerBits, err := bitio.UintToBits(uint64(needed), c.cfg.HeaderFieldWidth)
	if err != nil {
		return nil, fmt.Errorf("encode header field: %w", err)
	}

	dst := src.Clone()
	headerSlots := c.cfg.HeaderPixels * c.cfg.BitsPerPixel
	for slot := 0; slot < headerSlots; slot++ {
		x, y := HeaderCoord(slot/c.cfg.BitsPerPixel, dst.Width, dst.Height)
		px := dst.At(x, y)
		ch := slot % c.cfg.BitsPerPixel
		if slot < len(headerBits) {
			px.SetChannel(ch, withLSB(px.Channel(ch), headerBits[slot]))
		} else {
			px.SetChannel(ch, withLSB(px.Channel(ch), 0))
		}
		dst.Set(x, y, px)
	}

	for i, bit := range bits {
		x, y := PayloadCoord(i/c.cfg.BitsPerPixel, dst.Width, dst.Height)
		px := dst.At(x, y)
		ch := i % c.cfg.BitsPerPixel
		px.SetChannel(ch, withLSB(px.Channel(ch), bit))
		dst.Set(x, y, px)
	}

	return dst, nil
}

// Decode recovers the text embedded in src. src is read-only.
//
// The header stores a pixel count, not an exact bit count; the trailing
// slack is at most BitsPerPixel-1 bits, always less than a byte, so
// trimming the extracted bits to the byte boundary recovers the payload
// exactly.
func (c *Codec) Decode(src *Buffer) (string, error) {
	if src.Width*src.Height < c.cfg.HeaderPixels {
		return "", fmt.Errorf("%dx%d image cannot hold a header: %w",
			src.Width, src.Height, ErrCorruptHeader)
	}

	headerBits := make([]byte, c.cfg.HeaderFieldWidth)
	for slot := range headerBits {
		x, y := HeaderCoord(slot/c.cfg.BitsPerPixel, src.Width, src.Height)
		headerBits[slot] = src.At(x, y).Channel(slot%c.cfg.BitsPerPixel) & 1
	}
	needed, err := bitio.BitsToUint(headerBits)
	if err != nil {
		return "", fmt.Errorf("decode header field: %w", err)
	}

	if int(needed) > src.Width*src.Height-c.cfg.HeaderPixels {
		return "", fmt.Errorf("header declares %d payload pixels in a %dx%d image: %w",
			needed, src.Width, src.Height, ErrCorruptHeader)
	}

	bits := make([]byte, 0, int(needed)*c.cfg.BitsPerPixel)
	for i := 0; i < int(needed); i++ {
		x, y := PayloadCoord(i, src.Width, src.Height)
		px := src.At(x, y)
		for ch := 0; ch < c.cfg.BitsPerPixel; ch++ {
			bits = append(bits, px.Channel(ch)&1)
		}
	}
	bits = bits[:len(bits)-len(bits)%8]

	text, err := bitio.BitsToString(bits)
	if err != nil {
		return "", errors.Join(ErrMalformedPayload, err)
	}
	return text, nil
}

// withLSB returns v with its least significant bit set to bit.
func withLSB(v, bit uint8) uint8 {
	return v&^1 | bit&1
}
