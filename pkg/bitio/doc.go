// Package bitio provides lossless conversion between text, unsigned
// integers, and their bit-sequence representations for gosteg.
//
// A bit sequence is a []byte whose elements are all 0 or 1. Text expands
// byte-by-byte, most significant bit first, in character order; fixed-width
// integer fields expand MSB-first as well. Both conversions are
// deterministic and reversible, which is what lets the encoder and decoder
// agree on bit positions without sharing state.
//
// # Error Handling
//
// Conversions back from bits fail with sentinel errors:
//   - ErrNotByteAligned: the bit count is not a multiple of 8
//   - ErrInvalidText: the reassembled bytes are not valid UTF-8
//   - ErrOverflow: an integer does not fit the requested field width
//
// Callers can match them with errors.Is after wrapping.
package bitio
