package converter

import (
	"go.uber.org/zap"

	"github.com/wippyai/charset-runtime/engine"
	"github.com/wippyai/charset-runtime/errors"
)

// defaultSubBytes is the encode-side substitute used under PolicyReplace
// before SetCallbackEncode installs one.
var defaultSubBytes = []byte{'?'}

// defaultSubChars is the decode-side substitute: a single U+FFFD unit.
var defaultSubChars = []uint16{0xFFFD}

// callbackContext holds the per-direction policies and the substitution
// sequence. One variant carries bytes (encode), the other UTF-16 units
// (decode); the unused slice stays nil. Allocated lazily on the first
// SetCallback call and replaced wholesale on subsequent calls.
type callbackContext struct {
	onMalformed  Policy
	onUnmappable Policy
	subBytes     []byte
	subChars     []uint16
}

// Converter is an exclusively-owned handle to one open codec instance bound
// to one named encoding. It is a two-state machine: Open until Close, Closed
// after. Any operation on a closed converter reports OutcomeIllegalArgument
// (or an error, for the error-returning operations) rather than touching
// released engine state.
//
// A Converter is not safe for concurrent use: the engine holds mutable shift
// state that a concurrent step would corrupt. Use one converter per logical
// stream.
type Converter struct {
	enc    *engine.Encoding
	encSt  *engine.EncodeState
	decSt  *engine.DecodeState
	encCtx *callbackContext
	decCtx *callbackContext
	closed bool
}

// Open resolves name against the engine's encoding registry and returns a
// fresh converter. Unrecognized names fail with an unsupported_charset error.
func Open(name string) (*Converter, error) {
	enc, err := engine.Lookup(name)
	if err != nil {
		engine.Logger().Debug("open failed", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return &Converter{
		enc:   enc,
		encSt: enc.NewEncodeState(),
		decSt: enc.NewDecodeState(),
	}, nil
}

// Close releases the converter. A second Close fails with a closed_handle
// error instead of being undefined behavior.
func (c *Converter) Close() error {
	if c == nil {
		return errors.NilHandle(errors.PhaseClose)
	}
	if c.closed {
		return errors.ClosedHandle(errors.PhaseClose)
	}
	c.closed = true
	c.encCtx = nil
	c.decCtx = nil
	c.encSt = nil
	c.decSt = nil
	return nil
}

// Name returns the engine's internal canonical name of the bound encoding.
func (c *Converter) Name() string {
	if c == nil || c.closed {
		return ""
	}
	return c.enc.Name()
}

// usable reports whether the handle may be dereferenced.
func (c *Converter) usable() bool {
	return c != nil && !c.closed
}

// encodeContext returns the encode-side callback context, falling back to
// report-everything defaults when none has been installed.
func (c *Converter) encodeContext() callbackContext {
	if c.encCtx != nil {
		return *c.encCtx
	}
	return callbackContext{
		onMalformed:  PolicyReport,
		onUnmappable: PolicyReport,
		subBytes:     defaultSubBytes,
	}
}

func (c *Converter) decodeContext() callbackContext {
	if c.decCtx != nil {
		return *c.decCtx
	}
	return callbackContext{
		onMalformed:  PolicyReport,
		onUnmappable: PolicyReport,
		subChars:     defaultSubChars,
	}
}

// SetCallbackEncode installs the encode-direction policies and, for
// PolicyReplace, the substitution byte sequence. Passing an empty substitute
// keeps the current one. The previous context, if any, is discarded in place.
func (c *Converter) SetCallbackEncode(onMalformed, onUnmappable Policy, substitute []byte) Outcome {
	if !c.usable() || !onMalformed.Valid() || !onUnmappable.Valid() {
		return OutcomeIllegalArgument
	}
	if len(substitute) > MaxSubstitutionBytes {
		return OutcomeIllegalArgument
	}

	sub := c.encodeContext().subBytes
	if len(substitute) > 0 {
		sub = make([]byte, len(substitute))
		copy(sub, substitute)
	}
	c.encCtx = &callbackContext{
		onMalformed:  onMalformed,
		onUnmappable: onUnmappable,
		subBytes:     sub,
	}
	return OutcomeOK
}

// SetCallbackDecode installs the decode-direction policies and, for
// PolicyReplace, the substitution UTF-16 sequence.
func (c *Converter) SetCallbackDecode(onMalformed, onUnmappable Policy, substitute []uint16) Outcome {
	if !c.usable() || !onMalformed.Valid() || !onUnmappable.Valid() {
		return OutcomeIllegalArgument
	}
	if len(substitute) > MaxSubstitutionChars {
		return OutcomeIllegalArgument
	}

	sub := c.decodeContext().subChars
	if len(substitute) > 0 {
		sub = make([]uint16, len(substitute))
		copy(sub, substitute)
	}
	c.decCtx = &callbackContext{
		onMalformed:  onMalformed,
		onUnmappable: onUnmappable,
		subChars:     sub,
	}
	return OutcomeOK
}

// SubstitutionBytes returns a copy of the encode-side substitution sequence.
func (c *Converter) SubstitutionBytes() []byte {
	if !c.usable() {
		return nil
	}
	sub := c.encodeContext().subBytes
	out := make([]byte, len(sub))
	copy(out, sub)
	return out
}

// CanEncode probes whether a single code point has a representation in the
// bound encoding. The probe uses a throwaway engine state and never disturbs
// cursor state or callback policies.
func (c *Converter) CanEncode(cp rune) bool {
	if !c.usable() {
		return false
	}
	return c.enc.CanEncode(cp)
}

// MinBytesPerChar returns the minimum bytes one UTF-16 unit encodes to.
func (c *Converter) MinBytesPerChar() int {
	if !c.usable() {
		return 0
	}
	return c.enc.MinBytesPerChar()
}

// MaxBytesPerChar returns the maximum bytes one UTF-16 unit encodes to.
func (c *Converter) MaxBytesPerChar() int {
	if !c.usable() {
		return 0
	}
	return c.enc.MaxBytesPerChar()
}

// AveBytesPerChar is (min+max)/2 by convention, not a measured average.
func (c *Converter) AveBytesPerChar() float64 {
	if !c.usable() {
		return 0
	}
	return float64(c.enc.MinBytesPerChar()+c.enc.MaxBytesPerChar()) / 2
}

// AveCharsPerByte is the reciprocal of AveBytesPerChar.
func (c *Converter) AveCharsPerByte() float64 {
	ave := c.AveBytesPerChar()
	if ave == 0 {
		return 0
	}
	return 1 / ave
}

// ResetEncode clears only the engine's encode-direction conversion state
// (shift state, pending bytes). Callback contexts are untouched.
func (c *Converter) ResetEncode() {
	if c.usable() {
		c.encSt.Reset()
	}
}

// ResetDecode clears only the engine's decode-direction conversion state.
func (c *Converter) ResetDecode() {
	if c.usable() {
		c.decSt.Reset()
	}
}
