// SPDX-License-Identifier: MIT

package imatrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dense returns a Height×Width gonum matrix holding every sample converted
// to float64; element (i, j) is the sample at row i, column j. Values are
// not rescaled by the max value. The result does not share storage with m.
//
// Returns ErrEmpty for a matrix with no samples, since gonum does not
// allow zero-sized dense matrices.
// Complexity: O(width·height) time and memory.
func (m *ImageMatrix[T]) Dense() (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("Dense: %w", ErrNilMatrix)
	}
	if m.width == 0 || m.height == 0 {
		return nil, fmt.Errorf("Dense(%d×%d): %w", m.height, m.width, ErrEmpty)
	}

	data := make([]float64, 0, m.width*m.height)
	for _, row := range m.samples {
		for _, v := range row {
			data = append(data, float64(v))
		}
	}

	return mat.NewDense(m.height, m.width, data), nil
}
