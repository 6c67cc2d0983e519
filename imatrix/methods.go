// SPDX-License-Identifier: MIT

package imatrix

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/greyscale/pgm"
)

// Width returns the number of samples per row.
// Complexity: O(1).
func (m *ImageMatrix[T]) Width() int {
	if m == nil {
		return 0
	}

	return m.width
}

// Height returns the number of rows.
// Complexity: O(1).
func (m *ImageMatrix[T]) Height() int {
	if m == nil {
		return 0
	}

	return m.height
}

// MaxValue returns the declared maximum sample value.
// Complexity: O(1).
func (m *ImageMatrix[T]) MaxValue() int {
	if m == nil {
		return 0
	}

	return m.maxValue
}

// At returns the sample at (row, col); row 0 is the top row.
// Returns ErrOutOfRange if either index is outside the grid.
// Complexity: O(1).
func (m *ImageMatrix[T]) At(row, col int) (T, error) {
	var zero T
	if m == nil {
		return zero, fmt.Errorf("At(%d,%d): %w", row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		return zero, fmt.Errorf("At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.samples[row][col], nil
}

// Row returns a copy of row i.
// Complexity: O(width).
func (m *ImageMatrix[T]) Row(i int) ([]T, error) {
	if m == nil {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrNilMatrix)
	}
	if i < 0 || i >= m.height {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrOutOfRange)
	}

	return slices.Clone(m.samples[i]), nil
}

// Samples returns a deep copy of the grid, height rows of width samples.
// Complexity: O(width·height).
func (m *ImageMatrix[T]) Samples() [][]T {
	if m == nil {
		return nil
	}
	flat := make([]T, 0, m.width*m.height)
	for _, row := range m.samples {
		flat = append(flat, row...)
	}

	return split(flat, m.width, m.height)
}

// Clone returns a deep copy of m.
// Complexity: O(width·height).
func (m *ImageMatrix[T]) Clone() *ImageMatrix[T] {
	if m == nil {
		return nil
	}

	return &ImageMatrix[T]{
		samples:  m.Samples(),
		width:    m.width,
		height:   m.height,
		maxValue: m.maxValue,
	}
}

// Equal reports whether m and other have the same width, height and max
// value, and identical samples at every position. Floats are compared
// exactly, without tolerance. Two nil matrices are equal.
// Complexity: O(width·height).
func (m *ImageMatrix[T]) Equal(other *ImageMatrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m == other {
		return true
	}
	if m.width != other.width || m.height != other.height || m.maxValue != other.maxValue {
		return false
	}
	for i := range m.samples {
		if !slices.Equal(m.samples[i], other.samples[i]) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging: one "[a, b, c]" line per row.
// Complexity: O(width·height).
func (m *ImageMatrix[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for _, row := range m.samples {
		sb.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(pgm.FormatSample(v, pgm.DefaultFloatPrecision))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
