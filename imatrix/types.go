// SPDX-License-Identifier: MIT

package imatrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/greyscale/pgm"
)

// Sample is the set of supported pixel types: int32, float32, float64.
type Sample = pgm.Sample

// ImageMatrix is a rectangular, row-major grid of greyscale samples plus
// the max value declared by the PGM header it came from.
//
// Invariants:
//   - len(samples) == height and every row has exactly width samples.
//   - maxValue is stored verbatim; samples are never checked against it.
//
// The zero value is an empty 0×0 matrix ready for ReadImage or Decode.
// A matrix owns its storage exclusively: accessors hand out copies.
// Concurrent reads are safe; ReadImage/Decode on a matrix that is being
// read concurrently needs external synchronization.
type ImageMatrix[T Sample] struct {
	samples  [][]T // height rows of width samples
	width    int
	height   int
	maxValue int
}

// New returns an empty matrix.
func New[T Sample]() *ImageMatrix[T] {
	return &ImageMatrix[T]{}
}

// FromSamples builds a matrix from a deep copy of samples.
// Stage 1 (Validate): maxValue >= 0, rows rectangular, floats finite.
// Stage 2 (Prepare): copy rows into one flat backing slice.
// Stage 3 (Finalize): return the matrix.
// An empty samples slice yields a 0×0 matrix.
// Complexity: O(rows·cols) time and memory.
func FromSamples[T Sample](samples [][]T, maxValue int) (*ImageMatrix[T], error) {
	if maxValue < 0 {
		return nil, fmt.Errorf("FromSamples(%d): %w", maxValue, ErrNegativeMaxValue)
	}

	height := len(samples)
	width := 0
	if height > 0 {
		width = len(samples[0])
	}
	for i, row := range samples {
		if len(row) != width {
			return nil, fmt.Errorf("FromSamples: row %d has %d samples, want %d: %w",
				i, len(row), width, ErrNonRectangular)
		}
		for j, v := range row {
			if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, fmt.Errorf("FromSamples: (%d,%d): %w", i, j, ErrNaNInf)
			}
		}
	}

	flat := make([]T, 0, width*height)
	for _, row := range samples {
		flat = append(flat, row...)
	}

	return &ImageMatrix[T]{
		samples:  split(flat, width, height),
		width:    width,
		height:   height,
		maxValue: maxValue,
	}, nil
}

// split slices a flat row-major buffer into height rows of width samples;
// sample i*width+j becomes row i, column j. Row capacities are capped so
// an append on one row can never spill into the next.
func split[T Sample](flat []T, width, height int) [][]T {
	rows := make([][]T, height)
	for i := range rows {
		lo, hi := i*width, (i+1)*width
		rows[i] = flat[lo:hi:hi]
	}

	return rows
}
