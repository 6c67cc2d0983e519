// SPDX-License-Identifier: MIT

package pgm

import (
	"bufio"
	"fmt"
	"io"
)

// Magic is the magic-number line written for every image.
const Magic = "P2"

// separator follows every sample, including the last one in a row.
const separator = "  "

// Encode writes h and rows to w as a plain PGM (P2) image:
//
//	P2
//	# <comment>
//	<width>  <height>
//	<maxValue>
//	<sample>  <sample>  ...  (one line per row)
//
// rows must hold exactly h.Height rows of h.Width samples, otherwise
// ErrShapeMismatch is returned before anything is written. Output is
// buffered; any failure of w is reported as ErrWrite.
// Complexity: O(Width·Height).
func Encode[T Sample](w io.Writer, h Header, rows [][]T, opts ...Option) error {
	if err := validateShape(h, rows); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	o := gatherOptions(opts...)

	bw := bufio.NewWriter(w)
	// bufio.Writer errors are sticky; Flush reports the first one.
	_, _ = fmt.Fprintf(bw, "%s\n# %s\n%d%s%d\n%d\n",
		Magic, o.comment, h.Width, separator, h.Height, h.MaxValue)

	var line []byte
	for _, row := range rows {
		line = line[:0]
		for _, v := range row {
			line = AppendSample(line, v, o.floatPrec)
			line = append(line, separator...)
		}
		line = append(line, '\n')
		_, _ = bw.Write(line)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Encode: %w: %w", ErrWrite, err)
	}

	return nil
}

// validateShape checks that rows form an h.Height×h.Width grid.
func validateShape[T Sample](h Header, rows [][]T) error {
	if len(rows) != h.Height {
		return fmt.Errorf("%w: %d rows, header says %d", ErrShapeMismatch, len(rows), h.Height)
	}
	for i, row := range rows {
		if len(row) != h.Width {
			return fmt.Errorf("%w: row %d has %d samples, header says %d",
				ErrShapeMismatch, i, len(row), h.Width)
		}
	}

	return nil
}
