// SPDX-License-Identifier: MIT
// Package imatrix: sentinel error set.
// Operations return these sentinels (or the pgm decode sentinels aliased
// below) wrapped with method context; tests match them via errors.Is.
// OS causes are kept in the chain, so errors.Is(err, fs.ErrNotExist)
// also works on a failed ReadImage.

package imatrix

import (
	"errors"

	"github.com/katalvlaran/greyscale/pgm"
)

var (
	// ErrFileOpen indicates the input path cannot be opened for reading.
	ErrFileOpen = errors.New("imatrix: cannot open image")

	// ErrFileWrite indicates the output path cannot be created, written or
	// closed.
	ErrFileWrite = errors.New("imatrix: could not write image")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("imatrix: all rows must have the same length")

	// ErrOutOfRange indicates a row or column index outside the grid.
	ErrOutOfRange = errors.New("imatrix: index out of range")

	// ErrNaNInf indicates a NaN or ±Inf sample handed to FromSamples.
	// Such samples never compare equal to themselves and cannot be decoded
	// back, so they are refused at construction.
	ErrNaNInf = errors.New("imatrix: NaN or Inf sample")

	// ErrNegativeMaxValue indicates a max value below zero.
	ErrNegativeMaxValue = errors.New("imatrix: max value must be >= 0")

	// ErrEmpty indicates an operation that needs at least one sample.
	ErrEmpty = errors.New("imatrix: matrix has no samples")

	// ErrNilMatrix indicates a nil *ImageMatrix receiver.
	ErrNilMatrix = errors.New("imatrix: nil receiver")
)

// Decode failures are reported with the codec's sentinels; they are
// re-exported so the whole taxonomy is reachable from this package.
var (
	// ErrHeaderParse aliases pgm.ErrHeaderParse.
	ErrHeaderParse = pgm.ErrHeaderParse

	// ErrPixelCountMismatch aliases pgm.ErrPixelCountMismatch.
	ErrPixelCountMismatch = pgm.ErrPixelCountMismatch
)
