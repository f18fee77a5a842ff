package stego

// Scan order shared by the encoder and decoder. Both regions are defined as
// pure functions of (index, width, height) so the two sides derive identical
// pixel addresses without any shared state.
//
// The header region is the tail of the row-major traversal: header index 0
// is the bottom-right pixel, index 1 its left neighbour, wrapping to the row
// above when a row is exhausted. The payload region is the row-major
// traversal from the top-left, which never meets the header region as long
// as capacity validation holds.

// HeaderCoord returns the (x, y) address of the i-th header pixel.
func HeaderCoord(i, width, height int) (int, int) {
	linear := width*height - 1 - i
	return linear % width, linear / width
}

// PayloadCoord returns the (x, y) address of the i-th payload pixel.
func PayloadCoord(i, width, _ int) (int, int) {
	return i % width, i / width
}
