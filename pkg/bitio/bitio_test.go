package bitio

import (
	"errors"
	"testing"
)

func TestStringToBits_BitsToString_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{name: "empty string", text: ""},
		{name: "single character", text: "A"},
		{name: "ascii text", text: "hello, world"},
		{name: "spaces and punctuation", text: "  tabs\tand\nnewlines!  "},
		{name: "unicode text", text: "héllo wörld 🎯"},
		{name: "all one byte values", text: "\x01\x7f\x20\x0a"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bits := StringToBits(tc.text)

			if len(bits) != len(tc.text)*8 {
				t.Fatalf("bit count mismatch: got %d, want %d", len(bits), len(tc.text)*8)
			}
			for i, b := range bits {
				if b != 0 && b != 1 {
					t.Fatalf("bit %d is %d, want 0 or 1", i, b)
				}
			}

			got, err := BitsToString(bits)
			if err != nil {
				t.Fatalf("BitsToString failed: %v", err)
			}
			if got != tc.text {
				t.Errorf("round trip mismatch: got %q, want %q", got, tc.text)
			}
		})
	}
}

func TestStringToBits_MSBFirst(t *testing.T) {
	// 'h' = 0x68 = 01101000
	bits := StringToBits("h")
	want := []byte{0, 1, 1, 0, 1, 0, 0, 0}

	if len(bits) != len(want) {
		t.Fatalf("bit count mismatch: got %d, want %d", len(bits), len(want))
	}
	for i := range want {
		if bits[i] != want[i] {
			t.Errorf("bit %d: got %d, want %d", i, bits[i], want[i])
		}
	}
}

func TestBitsToString_NotByteAligned(t *testing.T) {
	_, err := BitsToString([]byte{1, 0, 1})
	if !errors.Is(err, ErrNotByteAligned) {
		t.Errorf("expected ErrNotByteAligned, got %v", err)
	}
}

func TestBitsToString_InvalidUTF8(t *testing.T) {
	// 0xFF is never valid UTF-8.
	bits := []byte{1, 1, 1, 1, 1, 1, 1, 1}
	_, err := BitsToString(bits)
	if !errors.Is(err, ErrInvalidText) {
		t.Errorf("expected ErrInvalidText, got %v", err)
	}
}

func TestUintToBits_BitsToUint_RoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		value uint64
		width int
	}{
		{name: "zero", value: 0, width: 11},
		{name: "one", value: 1, width: 11},
		{name: "mid range", value: 1023, width: 11},
		{name: "max 11-bit value", value: 2047, width: 11},
		{name: "single bit field", value: 1, width: 1},
		{name: "wide field", value: 1<<32 - 1, width: 33},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bits, err := UintToBits(tc.value, tc.width)
			if err != nil {
				t.Fatalf("UintToBits failed: %v", err)
			}
			if len(bits) != tc.width {
				t.Fatalf("width mismatch: got %d, want %d", len(bits), tc.width)
			}

			got, err := BitsToUint(bits)
			if err != nil {
				t.Fatalf("BitsToUint failed: %v", err)
			}
			if got != tc.value {
				t.Errorf("round trip mismatch: got %d, want %d", got, tc.value)
			}
		})
	}
}

func TestUintToBits_Overflow(t *testing.T) {
	testCases := []struct {
		name  string
		value uint64
		width int
	}{
		{name: "one past max", value: 2048, width: 11},
		{name: "far past max", value: 1 << 20, width: 11},
		{name: "two in one bit", value: 2, width: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := UintToBits(tc.value, tc.width)
			if !errors.Is(err, ErrOverflow) {
				t.Errorf("expected ErrOverflow, got %v", err)
			}
		})
	}
}

func TestBitsToUint_FieldTooWide(t *testing.T) {
	_, err := BitsToUint(make([]byte, 65))
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}

func TestUintToBits_MSBFirst(t *testing.T) {
	// 6 in an 11-bit field: eight leading zeros then 110.
	bits, err := UintToBits(6, 11)
	if err != nil {
		t.Fatalf("UintToBits failed: %v", err)
	}

	want := []byte{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0}
	for i := range want {
		if bits[i] != want[i] {
			t.Errorf("bit %d: got %d, want %d", i, bits[i], want[i])
		}
	}
}
