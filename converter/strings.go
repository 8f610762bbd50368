package converter

import (
	"unicode/utf16"
)

// stringChunk is the working buffer size for the whole-string helpers. Small
// on purpose: it forces the helpers through the same overflow-and-resume
// path incremental callers use.
const stringChunk = 256

// EncodeString converts s to bytes in the bound encoding by looping the step
// protocol to completion, including the trailing flush. The active callback
// policies apply; under PolicyReport the first offending sequence stops the
// conversion and its outcome is returned with a nil slice.
func (c *Converter) EncodeString(s string) ([]byte, Outcome) {
	if !c.usable() {
		return nil, OutcomeIllegalArgument
	}

	src := utf16.Encode([]rune(s))
	buf := make([]byte, stringChunk)
	out := make([]byte, 0, len(s))
	consumed := 0

	for {
		cur := Cursor{Source: consumed}
		o := c.EncodeStep(src, len(src), buf, len(buf), &cur, true)
		out = append(out, buf[:cur.Target]...)
		consumed += cur.Source

		switch o {
		case OutcomeOK:
			return out, OutcomeOK
		case OutcomeBufferOverflow:
			continue
		default:
			return nil, o
		}
	}
}

// DecodeString converts b from the bound encoding into a string, looping the
// step protocol to completion.
func (c *Converter) DecodeString(b []byte) (string, Outcome) {
	if !c.usable() {
		return "", OutcomeIllegalArgument
	}

	buf := make([]uint16, stringChunk)
	out := make([]uint16, 0, len(b))
	consumed := 0

	for {
		cur := Cursor{Source: consumed}
		o := c.DecodeStep(b, len(b), buf, len(buf), &cur, true)
		out = append(out, buf[:cur.Target]...)
		consumed += cur.Source

		switch o {
		case OutcomeOK:
			return string(utf16.Decode(out)), OutcomeOK
		case OutcomeBufferOverflow:
			continue
		default:
			return "", o
		}
	}
}
