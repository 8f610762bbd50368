package converter

import "unicode/utf16"

// checkStep validates the shared step preconditions: a non-nil cursor,
// limits within the buffers, and starting offsets within the limits.
func checkStep(cur *Cursor, srcLen, srcEnd, dstLen, dstEnd int) bool {
	if cur == nil {
		return false
	}
	if srcEnd < 0 || srcEnd > srcLen {
		return false
	}
	if dstEnd < 0 || dstEnd > dstLen {
		return false
	}
	if cur.Source < 0 || cur.Source > srcEnd {
		return false
	}
	if cur.Target < 0 || cur.Target > dstEnd {
		return false
	}
	return true
}

// decodeUTF16 decodes the first code point of src.
//
// units==0 means src ends with an unpaired lead surrogate that more input
// may still complete; this is only returned when flush is false. ok==false
// means the leading unit is malformed and units is the length of the bad
// prefix (always 1: a stray or truncated surrogate half).
func decodeUTF16(src []uint16, flush bool) (r rune, units int, ok bool) {
	u := src[0]
	switch {
	case u >= 0xD800 && u <= 0xDBFF:
		if len(src) < 2 {
			if flush {
				return 0, 1, false // truncated pair at end of input
			}
			return 0, 0, false
		}
		u2 := src[1]
		if u2 >= 0xDC00 && u2 <= 0xDFFF {
			return utf16.DecodeRune(rune(u), rune(u2)), 2, true
		}
		return 0, 1, false // lead without trail
	case u >= 0xDC00 && u <= 0xDFFF:
		return 0, 1, false // stray trail
	default:
		return rune(u), 1, true
	}
}

// writeUTF16 appends r to dst at dp and returns the new position. The caller
// has already checked there is room.
func writeUTF16(dst []uint16, dp int, r rune) int {
	if r <= 0xFFFF {
		dst[dp] = uint16(r)
		return dp + 1
	}
	hi, lo := utf16.EncodeRune(r)
	dst[dp] = uint16(hi)
	dst[dp+1] = uint16(lo)
	return dp + 2
}

// utf16Len returns the number of UTF-16 units r occupies.
func utf16Len(r rune) int {
	if r <= 0xFFFF {
		return 1
	}
	return 2
}
