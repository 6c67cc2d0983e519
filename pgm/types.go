// SPDX-License-Identifier: MIT

package pgm

// Sample is the set of numeric types a PGM pixel section can be decoded
// into: 32-bit signed integers, 32-bit floats and 64-bit floats.
type Sample interface {
	int32 | float32 | float64
}

// Header holds the fields of a P2 header that survive decoding.
// The magic line and comment lines are not retained.
type Header struct {
	Width    int // samples per row
	Height   int // number of rows
	MaxValue int // declared maximum intensity, stored verbatim
}

// Pixels returns the number of samples the pixel section must carry.
func (h Header) Pixels() int {
	return h.Width * h.Height
}
