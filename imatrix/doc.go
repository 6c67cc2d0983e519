// Package imatrix provides ImageMatrix, an in-memory greyscale image
// container generic over its sample type, backed by the plain PGM ("P2")
// text format.
//
// What:
//
//   - ImageMatrix[T] holds a rectangular, row-major grid of samples
//     (T is int32, float32 or float64) plus the header's max value.
//   - Open / ReadImage / Decode fill a matrix from a file or stream.
//   - WriteImage / Encode write it back as P2 text.
//   - Equal compares two matrices exactly: dimensions, max value and
//     every sample.
//   - Dense exposes the grid as a gonum *mat.Dense for numeric work.
//
// Guarantees:
//
//   - Decoding is atomic: on error the target matrix is unchanged.
//   - Write failures (create, write, close) are always returned.
//   - Samples are stored as read; values above MaxValue are kept.
//
// Usage:
//
//	img, err := imatrix.Open[int32]("lena.pgm")
//	if err != nil {
//		return err
//	}
//	v, _ := img.At(0, 0)
//	err = img.WriteImage("copy.pgm")
//
// Errors:
//
//   - ErrFileOpen: input path cannot be opened.
//   - ErrHeaderParse: malformed header (aliases pgm.ErrHeaderParse).
//   - ErrPixelCountMismatch: sample count ≠ width·height.
//   - ErrFileWrite: output path cannot be created, written or closed.
//   - ErrNonRectangular, ErrNaNInf, ErrNegativeMaxValue: FromSamples input.
//   - ErrOutOfRange, ErrEmpty, ErrNilMatrix: accessors and Dense.
package imatrix
