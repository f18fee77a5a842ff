// Package stego implements the LSB steganography codec at the heart of
// gosteg.
//
// Text payloads are embedded in the least significant bit of each RGB
// channel value across an image, one bit per channel, three bits per pixel,
// visiting pixels left-to-right and top-to-bottom. The bottom-right pixels
// of the image are reserved for a fixed header.
//
// # On-Image Format
//
// With the default layout an image of W×H pixels is divided into two
// regions of the row-major traversal:
//
//	payload: pixels 0 .. W*H-12 from the top-left
//	header:  pixels W*H-11 .. W*H-1 (the bottom-right tail)
//
// The header carries an 11-bit unsigned pixel count, MSB-first, one bit per
// channel LSB in R,G,B order; the remaining 22 channel LSBs of the header
// region are zeroed. The count is the number of payload pixels used, so the
// largest addressable payload is 2047 pixels (6141 bits). Images whose
// capacity exceeds the field are clamped to it, a limitation of
// the format.
//
// The count is a pixel count rather than an exact bit count. Because a
// payload is always a whole number of bytes and a pixel carries three bits,
// the over-read on decode is at most two bits, so trimming the extracted
// sequence to a multiple of eight recovers the payload exactly.
//
// # Usage
//
//	codec := stego.NewCodec(stego.DefaultConfig())
//
//	out, err := codec.Encode(buf, "attack at dawn")
//	if err != nil {
//	    return err // errors.Is(err, stego.ErrCapacity) when it does not fit
//	}
//
//	text, err := codec.Decode(out)
//
// Encode is copy-on-write: the input buffer is never mutated, and every
// pixel the payload and header do not reach is byte-identical in the copy.
//
// # Error Handling
//
//   - ErrCapacity: the payload cannot fit; detected before any work is done
//   - ErrCorruptHeader: the decoded count is impossible for the image, which
//     means the image was not produced by this encoder or was re-compressed
//   - ErrMalformedPayload: the extracted bytes are not valid text
//
// The codec performs no I/O, holds no state between calls, and is safe for
// concurrent use.
package stego
