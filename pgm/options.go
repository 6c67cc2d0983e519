// SPDX-License-Identifier: MIT

// Package pgm: functional configuration for the encoder.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// The decoder takes no options: everything it accepts is fixed by the format.
package pgm

import "strings"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultComment is the text of the single comment line written after
	// the magic number. It is emitted as "# " + DefaultComment.
	DefaultComment = "pgm image written by IMatrix"

	// DefaultFloatPrecision selects the shortest text form that parses back
	// to the identical float value, so float images round-trip exactly.
	DefaultFloatPrecision = -1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCommentInvalid   = "pgm: WithComment: comment must be a single line"
	panicPrecisionInvalid = "pgm: WithFloatPrecision: prec must be >= -1"
)

// ---------- Public option type (functional) ----------

// Option mutates encoder options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective encoder configuration after applying
// Option setters. Fields are unexported; public entry points accept
// ...Option and resolve them via gatherOptions.
type Options struct {
	comment   string // DefaultComment
	floatPrec int    // DefaultFloatPrecision
}

// WithComment replaces the writer's comment text.
// Panics if text spans more than one line, since a second line would not
// start with '#' and would corrupt the header.
func WithComment(text string) Option {
	if strings.ContainsAny(text, "\r\n") {
		panic(panicCommentInvalid)
	}

	return func(o *Options) { o.comment = text }
}

// WithFloatPrecision sets the 'g' precision used for float samples.
// -1 restores the shortest round-trip form. Integer samples are unaffected.
// Panics if prec < -1.
func WithFloatPrecision(prec int) Option {
	if prec < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.floatPrec = prec }
}

// gatherOptions applies user setters over the defaults, in order;
// last-writer-wins. Nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		comment:   DefaultComment,
		floatPrec: DefaultFloatPrecision,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
