package converter

import (
	"github.com/wippyai/charset-runtime/engine"
)

// EncodeStep converts UTF-16 units to bytes, one bounded step.
//
// Conversion runs from cur.Source up to srcEnd within src, writing into dst
// from cur.Target up to dstEnd. On return cur.Source and cur.Target hold the
// units consumed and bytes produced by this call only (see Cursor). flush
// signals end of input and permits the engine to emit any final shift-state
// bytes.
//
// OutcomeBufferOverflow means dst filled first: drain it and call again with
// the same source and accumulated offsets. Under PolicyReport, malformed or
// unmappable input halts the step with cur.InvalidLength set to the length
// of the offending sequence in source units and the cursor stopped at it.
func (c *Converter) EncodeStep(src []uint16, srcEnd int, dst []byte, dstEnd int, cur *Cursor, flush bool) Outcome {
	if !c.usable() || !checkStep(cur, len(src), srcEnd, len(dst), dstEnd) {
		return OutcomeIllegalArgument
	}

	ctx := c.encodeContext()
	srcStart, dstStart := cur.Source, cur.Target
	sp, dp := srcStart, dstStart
	outcome := OutcomeOK
	invalid := 0

loop:
	for sp < srcEnd {
		r, units, ok := decodeUTF16(src[sp:srcEnd], flush)
		if units == 0 {
			break // trailing lead surrogate, resumable with more input
		}
		if !ok {
			switch ctx.onMalformed {
			case PolicyIgnore:
				sp += units
				continue
			case PolicyReplace:
				if dstEnd-dp < len(ctx.subBytes) {
					outcome = OutcomeBufferOverflow
					break loop
				}
				copy(dst[dp:], ctx.subBytes)
				dp += len(ctx.subBytes)
				sp += units
				continue
			default: // PolicyReport
				outcome = OutcomeMalformedInput
				invalid = units
				break loop
			}
		}

		n, st := c.encSt.EncodeRune(dst[dp:dstEnd], r)
		switch st {
		case engine.StatusOK:
			dp += n
			sp += units
		case engine.StatusNoRoom:
			outcome = OutcomeBufferOverflow
			break loop
		case engine.StatusInvalid:
			switch ctx.onUnmappable {
			case PolicyIgnore:
				sp += units
			case PolicyReplace:
				if dstEnd-dp < len(ctx.subBytes) {
					outcome = OutcomeBufferOverflow
					break loop
				}
				copy(dst[dp:], ctx.subBytes)
				dp += len(ctx.subBytes)
				sp += units
			default: // PolicyReport
				outcome = OutcomeUnmappableInput
				invalid = units
				break loop
			}
		default:
			outcome = OutcomeIllegalArgument
			break loop
		}
	}

	if outcome == OutcomeOK && flush && sp == srcEnd {
		n, st := c.encSt.Flush(dst[dp:dstEnd])
		dp += n
		switch st {
		case engine.StatusOK:
		case engine.StatusNoRoom:
			outcome = OutcomeBufferOverflow
		default:
			outcome = OutcomeIllegalArgument
		}
	}

	cur.Source = sp - srcStart
	cur.Target = dp - dstStart
	cur.InvalidLength = invalid
	cur.PendingCount = srcEnd - sp
	return outcome
}

// FlushEncode drains trailing shift state without new input. Stateful
// multi-byte encodings (the ISO-2022 family) emit a final byte sequence that
// depends on accumulated state, not on any further input; this is the
// one-shot call that produces it.
func (c *Converter) FlushEncode(dst []byte, dstEnd int, cur *Cursor) Outcome {
	if cur == nil {
		return OutcomeIllegalArgument
	}
	cur.Source = 0
	return c.EncodeStep(nil, 0, dst, dstEnd, cur, true)
}
