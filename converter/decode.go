package converter

import (
	"github.com/wippyai/charset-runtime/engine"
)

// DecodeStep converts bytes to UTF-16 units, one bounded step. It mirrors
// EncodeStep with the directions swapped; see that method for the cursor and
// outcome contract.
//
// A trailing partial multi-byte sequence on a non-flush step is left
// unconsumed and reported via cur.PendingCount; resubmitting it with more
// bytes appended resumes cleanly. Under PolicyReport, cur.InvalidLength is
// the length of the offending sequence in bytes.
func (c *Converter) DecodeStep(src []byte, srcEnd int, dst []uint16, dstEnd int, cur *Cursor, flush bool) Outcome {
	if !c.usable() || !checkStep(cur, len(src), srcEnd, len(dst), dstEnd) {
		return OutcomeIllegalArgument
	}

	ctx := c.decodeContext()
	srcStart, dstStart := cur.Source, cur.Target
	sp, dp := srcStart, dstStart
	outcome := OutcomeOK
	invalid := 0

loop:
	for sp < srcEnd {
		runes, size, st := c.decSt.DecodeWindow(src[sp:srcEnd], flush)
		switch st {
		case engine.StatusOK:
			need := 0
			for _, r := range runes {
				need += utf16Len(r)
			}
			if dstEnd-dp < need {
				outcome = OutcomeBufferOverflow
				break loop
			}
			for _, r := range runes {
				dp = writeUTF16(dst, dp, r)
			}
			sp += size
		case engine.StatusStateOnly:
			sp += size
		case engine.StatusShortSrc:
			break loop // incomplete trailing sequence, reported as pending
		case engine.StatusInvalid:
			switch ctx.onMalformed {
			case PolicyIgnore:
				sp += size
			case PolicyReplace:
				if dstEnd-dp < len(ctx.subChars) {
					outcome = OutcomeBufferOverflow
					break loop
				}
				for i, u := range ctx.subChars {
					dst[dp+i] = u
				}
				dp += len(ctx.subChars)
				sp += size
			default: // PolicyReport
				outcome = OutcomeMalformedInput
				invalid = size
				break loop
			}
		default:
			outcome = OutcomeIllegalArgument
			break loop
		}
	}

	if outcome == OutcomeOK && flush && sp == srcEnd {
		runes, st := c.decSt.Flush()
		if st == engine.StatusOK {
			need := 0
			for _, r := range runes {
				need += utf16Len(r)
			}
			if dstEnd-dp < need {
				outcome = OutcomeBufferOverflow
			} else {
				for _, r := range runes {
					dp = writeUTF16(dst, dp, r)
				}
			}
		}
	}

	cur.Source = sp - srcStart
	cur.Target = dp - dstStart
	cur.InvalidLength = invalid
	cur.PendingCount = srcEnd - sp
	return outcome
}

// FlushDecode drains any decode-side end state without new input. Byte
// decoders in the supported set carry none, so this normally produces
// nothing; it exists for symmetry with FlushEncode and for callers that
// treat both directions uniformly.
func (c *Converter) FlushDecode(dst []uint16, dstEnd int, cur *Cursor) Outcome {
	if cur == nil {
		return OutcomeIllegalArgument
	}
	cur.Source = 0
	return c.DecodeStep(nil, 0, dst, dstEnd, cur, true)
}
