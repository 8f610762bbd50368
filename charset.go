package charsetruntime

// Outcome is the result of one conversion step.
// The values are stable small integers so callers that marshal them across
// an FFI or wire boundary can rely on the numbering.
type Outcome int32

const (
	// OutcomeOK means all requested source was consumed without error.
	OutcomeOK Outcome = iota

	// OutcomeUnmappableInput means a valid sequence with no representation
	// in the target encoding was seen under the REPORT policy.
	OutcomeUnmappableInput

	// OutcomeMalformedInput means an ill-formed sequence was seen under the
	// REPORT policy.
	OutcomeMalformedInput

	// OutcomeBufferOverflow means the target buffer filled before the source
	// was exhausted. The caller drains the target and calls again.
	OutcomeBufferOverflow

	// OutcomeIllegalArgument means a nil/closed handle, bad buffer bounds,
	// or an oversized substitution sequence.
	OutcomeIllegalArgument
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeUnmappableInput:
		return "unmappable_input"
	case OutcomeMalformedInput:
		return "malformed_input"
	case OutcomeBufferOverflow:
		return "buffer_overflow"
	case OutcomeIllegalArgument:
		return "illegal_argument"
	}
	return "unknown"
}

// Recoverable reports whether the outcome is a routine condition the caller
// is expected to handle by retrying with adjusted buffers or policy.
func (o Outcome) Recoverable() bool {
	switch o {
	case OutcomeUnmappableInput, OutcomeMalformedInput, OutcomeBufferOverflow:
		return true
	}
	return false
}

// Policy selects how a converter reacts to malformed or unmappable input.
// The numbering matches the legacy callback codes: 0=report, 1=ignore,
// 2=replace.
type Policy int32

const (
	// PolicyReport halts conversion and surfaces the condition as an Outcome.
	PolicyReport Policy = iota

	// PolicyIgnore skips the offending sequence and continues silently.
	PolicyIgnore

	// PolicyReplace emits the configured substitution sequence in place of
	// the offending sequence and continues.
	PolicyReplace
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case PolicyReport:
		return "report"
	case PolicyIgnore:
		return "ignore"
	case PolicyReplace:
		return "replace"
	}
	return "unknown"
}

// Valid reports whether p is one of the defined policies.
func (p Policy) Valid() bool {
	return p >= PolicyReport && p <= PolicyReplace
}

// Substitution sequence bounds. A REPLACE substitute longer than these is
// rejected with OutcomeIllegalArgument.
const (
	// MaxSubstitutionBytes bounds the encode-side (byte) substitute.
	MaxSubstitutionBytes = 10

	// MaxSubstitutionChars bounds the decode-side (UTF-16 unit) substitute.
	MaxSubstitutionChars = 32
)

// Cursor threads position bookkeeping across repeated step calls. The caller
// owns it; every step writes all four fields back.
//
// Source and Target are starting offsets on entry and per-call deltas on
// return: after a step they hold how many source units were consumed and how
// many target units were produced during that call only, not absolute
// positions. Callers accumulate across calls themselves. This mirrors the
// legacy int[4] cursor convention and is relied on by resumption loops; the
// converter package works with absolute positions internally and adapts to
// this convention at the boundary.
type Cursor struct {
	// Source is the starting source offset on entry, and on return the
	// number of source units consumed by this step.
	Source int

	// Target is the starting target offset on entry, and on return the
	// number of target units produced by this step.
	Target int

	// InvalidLength is the length of the offending sequence, in source
	// units. Meaningful only when the step returned OutcomeMalformedInput
	// or OutcomeUnmappableInput.
	InvalidLength int

	// PendingCount is the number of trailing source units left unconsumed,
	// either because they form an incomplete sequence on a non-flush step
	// or because the step stopped at an error or a full target.
	PendingCount int
}
