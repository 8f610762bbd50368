package engine

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Status is the per-unit result of one codec step. It is the engine-level
// vocabulary; the converter layer maps it, together with the active policy,
// into caller-facing outcomes.
type Status int

const (
	// StatusOK means a unit was converted and output written.
	StatusOK Status = iota

	// StatusNoRoom means the destination lacks space for the next unit.
	// Nothing was consumed or written; the step is retryable after the
	// caller drains the destination.
	StatusNoRoom

	// StatusShortSrc means the source ends in the middle of a sequence.
	// Nothing was consumed; more source bytes are needed.
	StatusShortSrc

	// StatusInvalid means the sequence at the current position is malformed
	// or has no mapping in the destination encoding.
	StatusInvalid

	// StatusStateOnly means bytes were consumed that only changed codec
	// state (a byte order mark, an escape sequence) and produced no output.
	StatusStateOnly
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoRoom:
		return "no_room"
	case StatusShortSrc:
		return "short_src"
	case StatusInvalid:
		return "invalid"
	case StatusStateOnly:
		return "state_only"
	}
	return "unknown"
}

// EncodeState drives rune-to-bytes conversion for one Encoding. It owns the
// persistent transformer, so shift-state encodings keep their mode across
// calls until Flush or Reset.
//
// Encoded units are staged before they reach the caller's buffer: some
// x/text encoders (the UTF-8 passthrough in particular) copy byte-wise and
// would otherwise split a unit across a destination boundary. A staged unit
// that does not fit is carried until the caller retries with room, keeping
// unit writes atomic and the step resumable.
type EncodeState struct {
	e           *Encoding
	tr          transform.Transformer
	scratch     [utf8.UTFMax]byte
	stage       [32]byte
	pending     []byte
	pendingRune rune
}

// NewEncodeState returns a fresh encode-direction state for e.
func (e *Encoding) NewEncodeState() *EncodeState {
	return &EncodeState{e: e, tr: e.enc.NewEncoder()}
}

// Encoding returns the encoding this state converts to.
func (s *EncodeState) Encoding() *Encoding { return s.e }

// EncodeRune converts one rune into dst and returns the number of bytes
// written. StatusInvalid means r has no mapping and nothing was consumed;
// the caller decides per policy. StatusNoRoom means dst is too small for the
// encoded unit (including any shift-state prefix); the unit is carried and
// the same rune must be retried once the caller has room.
func (s *EncodeState) EncodeRune(dst []byte, r rune) (int, Status) {
	if len(s.pending) > 0 {
		if r != s.pendingRune {
			// retry protocol broken (for example a Reset raced the
			// carry); drop the stale unit and re-encode
			s.pending = nil
		} else {
			if len(dst) < len(s.pending) {
				return 0, StatusNoRoom
			}
			n := copy(dst, s.pending)
			s.pending = nil
			return n, StatusOK
		}
	}

	n := utf8.EncodeRune(s.scratch[:], r)
	nDst, nSrc, err := s.tr.Transform(s.stage[:], s.scratch[:n], false)
	if err != nil || nSrc != n {
		// The raw x/text encoder reports an unsupported rune as a
		// repertoire error without consuming it.
		return 0, StatusInvalid
	}
	if nDst <= len(dst) {
		copy(dst, s.stage[:nDst])
		return nDst, StatusOK
	}
	s.pending = s.stage[:nDst]
	s.pendingRune = r
	return 0, StatusNoRoom
}

// Flush drains any carried unit plus accumulated shift state into dst (for
// example the ISO-2022-JP shift-back escape) and returns the bytes written.
func (s *EncodeState) Flush(dst []byte) (int, Status) {
	written := 0
	if len(s.pending) > 0 {
		if len(dst) < len(s.pending) {
			return 0, StatusNoRoom
		}
		written = copy(dst, s.pending)
		s.pending = nil
	}

	nDst, _, err := s.tr.Transform(s.stage[:], nil, true)
	if err != nil {
		return written, StatusInvalid
	}
	if nDst > len(dst)-written {
		s.pending = s.stage[:nDst]
		s.pendingRune = -1
		return written, StatusNoRoom
	}
	copy(dst[written:], s.stage[:nDst])
	return written + nDst, StatusOK
}

// Reset clears conversion state only; the caller's policies are untouched.
func (s *EncodeState) Reset() {
	s.pending = nil
	s.tr.Reset()
}

// DecodeState drives bytes-to-runes conversion for one Encoding.
type DecodeState struct {
	e       *Encoding
	tr      transform.Transformer
	scratch [64]byte
	runes   []rune
}

// NewDecodeState returns a fresh decode-direction state for e.
func (e *Encoding) NewDecodeState() *DecodeState {
	return &DecodeState{e: e, tr: e.enc.NewDecoder(), runes: make([]rune, 0, 8)}
}

// Encoding returns the encoding this state converts from.
func (s *DecodeState) Encoding() *Encoding { return s.e }

// DecodeWindow consumes the smallest prefix of src that yields progress and
// returns the decoded runes (valid until the next call), the number of
// source bytes consumed, and a status:
//
//   - StatusOK: runes decoded, size bytes consumed.
//   - StatusStateOnly: size bytes consumed with no output (BOM, escape).
//   - StatusInvalid: the size-byte prefix is a malformed sequence. The bytes
//     were consumed by the underlying decoder; the caller applies its policy.
//   - StatusShortSrc: src ends mid-sequence, nothing consumed. Only possible
//     when atEOF is false.
//
// The x/text decoders never report bad input as an error: they substitute
// U+FFFD. A decoded U+FFFD whose source prefix is not this encoding's own
// representation of U+FFFD is therefore classified as StatusInvalid.
func (s *DecodeState) DecodeWindow(src []byte, atEOF bool) ([]rune, int, Status) {
	if len(src) == 0 {
		return nil, 0, StatusShortSrc
	}

	for n := 1; n <= len(src); n++ {
		eof := atEOF && n == len(src)
		nDst, nSrc, err := s.tr.Transform(s.scratch[:], src[:n], eof)

		if nDst > 0 {
			s.runes = s.runes[:0]
			for off := 0; off < nDst; {
				r, sz := utf8.DecodeRune(s.scratch[off:nDst])
				s.runes = append(s.runes, r)
				off += sz
			}
			if s.runes[0] == utf8.RuneError && !s.genuineReplacement(src[:nSrc]) {
				return nil, nSrc, StatusInvalid
			}
			return s.runes, nSrc, StatusOK
		}

		if nSrc > 0 {
			return nil, nSrc, StatusStateOnly
		}

		if err == nil || errors.Is(err, transform.ErrShortSrc) {
			continue // widen the window
		}
		if errors.Is(err, transform.ErrShortDst) {
			// scratch comfortably exceeds any single decoded unit
			return nil, n, StatusInvalid
		}
		return nil, n, StatusInvalid
	}

	return nil, 0, StatusShortSrc
}

// Flush signals end of input to the decoder with no further source bytes and
// returns any runes it drains. Most byte encodings carry no decode-side end
// state, so the result is usually empty.
func (s *DecodeState) Flush() ([]rune, Status) {
	nDst, _, err := s.tr.Transform(s.scratch[:], nil, true)
	if err != nil && !errors.Is(err, transform.ErrShortDst) {
		return nil, StatusInvalid
	}
	s.runes = s.runes[:0]
	for off := 0; off < nDst; {
		r, sz := utf8.DecodeRune(s.scratch[off:nDst])
		s.runes = append(s.runes, r)
		off += sz
	}
	return s.runes, StatusOK
}

// genuineReplacement reports whether the consumed prefix really encodes
// U+FFFD rather than marking a decode failure.
func (s *DecodeState) genuineReplacement(prefix []byte) bool {
	return len(s.e.fffd) > 0 && bytes.Equal(prefix, s.e.fffd)
}

// Reset clears conversion state only; the caller's policies are untouched.
func (s *DecodeState) Reset() {
	s.tr.Reset()
}

// CanEncode probes whether a single code point has a representation in e,
// using a throwaway transformer so no session state is disturbed. Surrogate
// halves and out-of-range values are never encodable.
func (e *Encoding) CanEncode(r rune) bool {
	if r >= 0xD800 && r <= 0xDFFF {
		return false
	}
	if !utf8.ValidRune(r) {
		return false
	}

	var src [utf8.UTFMax]byte
	n := utf8.EncodeRune(src[:], r)

	var dst [16]byte
	tr := e.enc.NewEncoder()
	_, nSrc, err := tr.Transform(dst[:], src[:n], true)
	return err == nil && nSrc == n
}
