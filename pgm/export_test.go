// SPDX-License-Identifier: MIT

package pgm

// White-box bridge for pgm_test: exposes panic messages and the resolved
// encoder options without widening the production API.

const (
	PanicCommentInvalid_TestOnly   = panicCommentInvalid
	PanicPrecisionInvalid_TestOnly = panicPrecisionInvalid
)

// OptionsSnapshot is a read-only view of the internal Options.
type OptionsSnapshot struct {
	Comment   string
	FloatPrec int
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly as Encode does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Comment: o.comment, FloatPrec: o.floatPrec}
}
