package bitio

import (
	"fmt"
	"unicode/utf8"
)

// Errors
var (
	ErrOverflow       = &BitError{"value exceeds field width"}
	ErrNotByteAligned = &BitError{"bit count is not a multiple of 8"}
	ErrInvalidText    = &BitError{"decoded bytes are not valid UTF-8"}
)

// BitError represents a bit conversion error
type BitError struct {
	Message string
}

func (e *BitError) Error() string {
	return e.Message
}

// StringToBits expands each byte of s into 8 bits, most significant bit
// first, concatenated in byte order.
func StringToBits(s string) []byte {
	bits := make([]byte, 0, len(s)*8)
	for i := 0; i < len(s); i++ {
		b := s[i]
		for shift := 7; shift >= 0; shift-- {
			bits = append(bits, (b>>shift)&1)
		}
	}
	return bits
}

// BitsToString is the inverse of StringToBits. The bit count must be a
// multiple of 8 and the reassembled bytes must be valid UTF-8.
func BitsToString(bits []byte) (string, error) {
	if len(bits)%8 != 0 {
		return "", fmt.Errorf("%d bits: %w", len(bits), ErrNotByteAligned)
	}
	buf := make([]byte, len(bits)/8)
	for i := range buf {
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | bits[i*8+j]&1
		}
		buf[i] = b
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidText
	}
	return string(buf), nil
}

// UintToBits expands v into a fixed-width bit sequence, most significant
// bit first. Fails with ErrOverflow when v does not fit in width bits.
func UintToBits(v uint64, width int) ([]byte, error) {
	if width < 64 && v >= 1<<uint(width) {
		return nil, fmt.Errorf("value %d in %d-bit field: %w", v, width, ErrOverflow)
	}
	bits := make([]byte, width)
	for i := 0; i < width; i++ {
		bits[i] = byte(v>>uint(width-1-i)) & 1
	}
	return bits, nil
}

// BitsToUint is the inverse of UintToBits. The field width is the length
// of bits; widths over 64 are rejected.
func BitsToUint(bits []byte) (uint64, error) {
	if len(bits) > 64 {
		return 0, fmt.Errorf("%d-bit field: %w", len(bits), ErrOverflow)
	}
	var v uint64
	for _, b := range bits {
		v = v<<1 | uint64(b&1)
	}
	return v, nil
}
