// SPDX-License-Identifier: MIT

package pgm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxPrealloc caps the sample buffer reserved up front from header values,
// so an oversized header cannot force a large allocation before any pixel
// data has been read.
const maxPrealloc = 1 << 20

// decodeErrorf wraps err with the failing decode stage.
func decodeErrorf(stage string, err error) error {
	return fmt.Errorf("Decode(%s): %w", stage, err)
}

// Decode reads a plain PGM (P2) stream and returns its header together
// with the pixel samples in row-major order.
//
// Stages:
//  1. The first line (magic number) is read and discarded unvalidated.
//  2. Lines starting with '#' are skipped. An empty line or end of stream
//     inside this block is ErrHeaderParse.
//  3. The first non-comment line holds "width height"; fewer than two
//     non-negative integers is ErrHeaderParse.
//  4. The next whitespace-delimited token is the max value, followed by
//     exactly one consumed delimiter byte.
//  5. Remaining tokens are parsed as T until end of stream or the first
//     token that is not a valid T. That token and everything after it are
//     ignored.
//  6. A sample count other than width*height is ErrPixelCountMismatch.
//
// Sample values are not checked against MaxValue.
// Complexity: O(n) time and memory in the size of the stream.
func Decode[T Sample](r io.Reader) (Header, []T, error) {
	br := bufio.NewReader(r)

	// magic number
	if _, err := readLine(br); err != nil {
		return Header{}, nil, decodeErrorf("magic", err)
	}

	line, err := skipComments(br)
	if err != nil {
		return Header{}, nil, decodeErrorf("comments", err)
	}

	var h Header
	h.Width, h.Height, err = parseDimensions(line)
	if err != nil {
		return Header{}, nil, decodeErrorf("dimensions", err)
	}

	h.MaxValue, err = readMaxValue(br)
	if err != nil {
		return Header{}, nil, decodeErrorf("maxval", err)
	}

	samples, err := scanSamples[T](br, h.Pixels())
	if err != nil {
		return Header{}, nil, decodeErrorf("samples", err)
	}
	if len(samples) != h.Pixels() {
		return Header{}, nil, decodeErrorf("samples",
			fmt.Errorf("want %d, got %d: %w", h.Pixels(), len(samples), ErrPixelCountMismatch))
	}

	return h, samples, nil
}

// readLine returns the next line without its terminator. A final line
// lacking '\n' is returned as-is; a stream with nothing left is
// ErrHeaderParse.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %w", ErrHeaderParse, err)
		}
		if line == "" {
			return "", fmt.Errorf("%w: unexpected end of stream", ErrHeaderParse)
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}

// skipComments returns the first line after the magic that does not start
// with '#'.
func skipComments(br *bufio.Reader) (string, error) {
	for {
		line, err := readLine(br)
		if err != nil {
			return "", err
		}
		if line == "" {
			return "", fmt.Errorf("%w: empty line in header", ErrHeaderParse)
		}
		if line[0] != '#' {
			return line, nil
		}
	}
}

// parseDimensions reads "width height" from the head of line; trailing
// tokens are ignored.
func parseDimensions(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: want width and height, got %q", ErrHeaderParse, line)
	}
	w, err := parseCount(fields[0])
	if err != nil {
		return 0, 0, err
	}
	h, err := parseCount(fields[1])
	if err != nil {
		return 0, 0, err
	}
	if w != 0 && h > math.MaxInt/w {
		return 0, 0, fmt.Errorf("%w: %d×%d overflows pixel count", ErrHeaderParse, w, h)
	}
	// A zero-width image needs no samples, so its row count is not bounded
	// by the input size; cap it like the sample reservation.
	if w == 0 && h > maxPrealloc {
		return 0, 0, fmt.Errorf("%w: %d empty rows exceeds limit %d", ErrHeaderParse, h, maxPrealloc)
	}

	return w, h, nil
}

// parseCount parses a non-negative base-10 integer header field.
func parseCount(tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %q is not a non-negative integer", ErrHeaderParse, tok)
	}

	return v, nil
}

// readMaxValue skips leading whitespace, reads one token and consumes the
// single delimiter byte that ends it.
func readMaxValue(br *bufio.Reader) (int, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("%w: %w", ErrHeaderParse, err)
			}
			if len(tok) == 0 {
				return 0, fmt.Errorf("%w: missing max value", ErrHeaderParse)
			}
			break
		}
		if isSpace(b) {
			if len(tok) == 0 {
				continue // leading whitespace
			}
			break // delimiter consumed
		}
		tok = append(tok, b)
	}

	return parseCount(string(tok))
}

// scanSamples parses whitespace-delimited tokens as T until the stream
// ends or a token fails to parse.
func scanSamples[T Sample](br *bufio.Reader, hint int) ([]T, error) {
	sc := bufio.NewScanner(br)
	sc.Split(bufio.ScanWords)

	samples := make([]T, 0, min(hint, maxPrealloc))
	for sc.Scan() {
		v, ok := ParseSample[T](sc.Text())
		if !ok {
			break
		}
		samples = append(samples, v)
	}
	// An overlong token can never be a sample; it ends the scan like any
	// other unparsable token.
	if err := sc.Err(); err != nil && !errors.Is(err, bufio.ErrTooLong) {
		return nil, err
	}

	return samples, nil
}

// isSpace reports whether b is an ASCII whitespace delimiter.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}
