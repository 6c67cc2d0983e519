// SPDX-License-Identifier: MIT
// Package pgm: sentinel error set.
// Every codec failure is reported through one of these sentinels, wrapped
// with operation context via fmt.Errorf("...: %w", ErrX). Callers match
// with errors.Is; messages are prefixed "pgm: ..." for easy grepping.

package pgm

import "errors"

var (
	// ErrHeaderParse indicates a malformed magic, comment, dimension or
	// max-value section, including an empty line inside the comment block.
	ErrHeaderParse = errors.New("pgm: malformed header")

	// ErrPixelCountMismatch indicates that the number of parsed samples
	// differs from width*height.
	ErrPixelCountMismatch = errors.New("pgm: pixel count does not match image dimensions")

	// ErrShapeMismatch indicates that the rows handed to Encode do not
	// form a Height×Width grid.
	ErrShapeMismatch = errors.New("pgm: rows do not match header dimensions")

	// ErrWrite indicates that the destination rejected encoded bytes.
	ErrWrite = errors.New("pgm: write failed")
)
