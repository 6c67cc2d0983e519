// SPDX-License-Identifier: MIT

package pgm

import (
	"math"
	"strconv"
)

// ParseSample converts a single pixel token into T.
// It reports false when tok is not a valid T: integers must be base-10 and
// fit in 32 bits, floats must be finite at the target bit size. NaN and
// Inf spellings are rejected so that decoded matrices always compare equal
// to themselves.
// Complexity: O(len(tok)).
func ParseSample[T Sample](tok string) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case int32:
		v, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return zero, false
		}

		return T(v), true
	case float32:
		v, err := strconv.ParseFloat(tok, 32)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return zero, false
		}

		return T(v), true
	case float64:
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return zero, false
		}

		return T(v), true
	}

	return zero, false
}

// AppendSample appends the decimal text form of v to dst and returns the
// extended slice. prec is the 'g' precision used for float samples; -1
// selects the shortest form that parses back to the same value.
func AppendSample[T Sample](dst []byte, v T, prec int) []byte {
	switch s := any(v).(type) {
	case int32:
		return strconv.AppendInt(dst, int64(s), 10)
	case float32:
		return strconv.AppendFloat(dst, float64(s), 'g', prec, 32)
	case float64:
		return strconv.AppendFloat(dst, s, 'g', prec, 64)
	}

	return dst
}

// FormatSample returns the decimal text form of v. See AppendSample.
func FormatSample[T Sample](v T, prec int) string {
	return string(AppendSample(nil, v, prec))
}
