package stego

// Pixel is an RGB triple with 8 bits per channel.
type Pixel struct {
	R uint8
	G uint8
	B uint8
}

// Channel returns the channel value at index i (0=R, 1=G, 2=B).
func (p Pixel) Channel(i int) uint8 {
	switch i {
	case 0:
		return p.R
	case 1:
		return p.G
	default:
		return p.B
	}
}

// SetChannel sets the channel value at index i (0=R, 1=G, 2=B).
func (p *Pixel) SetChannel(i int, v uint8) {
	switch i {
	case 0:
		p.R = v
	case 1:
		p.G = v
	default:
		p.B = v
	}
}

// Buffer is a width×height grid of pixels stored in row-major order.
type Buffer struct {
	Width  int
	Height int
	Pix    []Pixel
}

// NewBuffer creates a zeroed buffer of the given dimensions.
func NewBuffer(width, height int) *Buffer {
	if width < 0 || height < 0 {
		panic("negative buffer dimensions")
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]Pixel, width*height),
	}
}

// At returns the pixel at (x, y).
func (b *Buffer) At(x, y int) Pixel {
	return b.Pix[y*b.Width+x]
}

// Set replaces the pixel at (x, y).
func (b *Buffer) Set(x, y int, p Pixel) {
	b.Pix[y*b.Width+x] = p
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		Width:  b.Width,
		Height: b.Height,
		Pix:    make([]Pixel, len(b.Pix)),
	}
	copy(out.Pix, b.Pix)
	return out
}

// Errors
var (
	ErrCapacity         = &CodecError{"payload does not fit in image"}
	ErrCorruptHeader    = &CodecError{"header value inconsistent with image bounds"}
	ErrMalformedPayload = &CodecError{"extracted payload is not valid text"}
)

// CodecError represents a steganography codec error
type CodecError struct {
	Message string
}

func (e *CodecError) Error() string {
	return e.Message
}
