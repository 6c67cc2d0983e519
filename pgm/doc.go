// Package pgm reads and writes the plain-text Portable Gray Map ("P2")
// image format.
//
// What:
//
//   - Decode parses a P2 stream into a Header and a flat, row-major
//     slice of samples of type int32, float32 or float64.
//   - Encode writes a Header and a grid of samples back as P2 text.
//   - ParseSample / AppendSample / FormatSample expose the single-token
//     conversions shared by both directions.
//
// Format:
//
//	P2
//	# zero or more comment lines, each starting with '#'
//	<width> <height>
//	<maxValue>
//	<width*height whitespace-separated samples>
//
// The magic line is read but never validated. Sample values are never
// checked against maxValue. The encoder always writes a single comment
// line and follows every sample with two spaces, including the last
// sample of a row.
//
// Options:
//
//   - WithComment: replaces the encoder's comment text (DefaultComment).
//   - WithFloatPrecision: 'g' precision for float samples
//     (DefaultFloatPrecision = -1, shortest round-trip form).
//
// Errors:
//
//   - ErrHeaderParse: malformed magic/comment/dimension/max-value section.
//   - ErrPixelCountMismatch: sample count differs from width*height.
//   - ErrShapeMismatch: Encode rows do not match the header.
//   - ErrWrite: the destination writer failed.
//
// Complexity:
//
//   - Decode: O(n) in the stream size, Memory: O(width·height).
//   - Encode: O(width·height), Memory: O(width) per buffered row.
package pgm
