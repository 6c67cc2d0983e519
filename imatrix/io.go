// SPDX-License-Identifier: MIT

package imatrix

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/greyscale/pgm"
)

// Open constructs a matrix by decoding the PGM file at path.
// It is New followed by ReadImage; on error no matrix is returned.
func Open[T Sample](path string) (*ImageMatrix[T], error) {
	m := New[T]()
	if err := m.ReadImage(path); err != nil {
		return nil, err
	}

	return m, nil
}

// ReadImage replaces the contents of m with the PGM image at path.
//
// Errors:
//   - ErrFileOpen (wrapping the OS error) if path cannot be opened.
//   - ErrHeaderParse / ErrPixelCountMismatch from decoding.
//
// On any error m is left exactly as it was. The file is always closed.
func (m *ImageMatrix[T]) ReadImage(path string) error {
	if m == nil {
		return fmt.Errorf("ReadImage(%q): %w", path, ErrNilMatrix)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("ReadImage(%q): %w: %w", path, ErrFileOpen, err)
	}
	defer f.Close()

	if err := m.Decode(f); err != nil {
		return fmt.Errorf("ReadImage(%q): %w", path, err)
	}

	return nil
}

// Decode replaces the contents of m with the PGM image read from r.
// Decoding happens into locals; the four fields are committed together
// only once the whole image has been validated.
// Complexity: O(n) in the stream size.
func (m *ImageMatrix[T]) Decode(r io.Reader) error {
	if m == nil {
		return fmt.Errorf("Decode: %w", ErrNilMatrix)
	}

	h, flat, err := pgm.Decode[T](r)
	if err != nil {
		return err
	}

	*m = ImageMatrix[T]{
		samples:  split(flat, h.Width, h.Height),
		width:    h.Width,
		height:   h.Height,
		maxValue: h.MaxValue,
	}

	return nil
}

// WriteImage writes m to path as a P2 image, creating or truncating the
// file. Failure to create, write or close the file is ErrFileWrite.
// opts configure the encoder (see pgm.WithComment, pgm.WithFloatPrecision).
func (m *ImageMatrix[T]) WriteImage(path string, opts ...pgm.Option) (err error) {
	if m == nil {
		return fmt.Errorf("WriteImage(%q): %w", path, ErrNilMatrix)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteImage(%q): %w: %w", path, ErrFileWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("WriteImage(%q): %w: %w", path, ErrFileWrite, cerr)
		}
	}()

	if err := m.Encode(f, opts...); err != nil {
		return fmt.Errorf("WriteImage(%q): %w: %w", path, ErrFileWrite, err)
	}

	return nil
}

// Encode writes m to w as a P2 image. Write failures are pgm.ErrWrite.
func (m *ImageMatrix[T]) Encode(w io.Writer, opts ...pgm.Option) error {
	if m == nil {
		return fmt.Errorf("Encode: %w", ErrNilMatrix)
	}

	return pgm.Encode(w, m.header(), m.samples, opts...)
}

// header returns the codec view of m's metadata.
func (m *ImageMatrix[T]) header() pgm.Header {
	return pgm.Header{Width: m.width, Height: m.height, MaxValue: m.maxValue}
}
