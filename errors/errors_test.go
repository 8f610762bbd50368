package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseOpen,
				Kind:     KindUnsupportedCharset,
				Encoding: "X-BOGUS",
				Detail:   "no codec",
			},
			contains: []string{"[open]", "unsupported_charset", "X-BOGUS", "no codec"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindBufferBounds,
			},
			contains: []string{"[decode]", "buffer_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindInternal,
				Detail: "engine fault",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[encode]", "internal", "engine fault", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseEncode,
		Kind:  KindInternal,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:    PhaseOpen,
		Kind:     KindUnsupportedCharset,
		Encoding: "foo",
	}

	if !errors.Is(err, &Error{Phase: PhaseOpen, Kind: KindUnsupportedCharset}) {
		t.Error("Is should match on same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseClose, Kind: KindUnsupportedCharset}) {
		t.Error("Is should not match different phase")
	}
	if errors.Is(err, &Error{Phase: PhaseOpen, Kind: KindInternal}) {
		t.Error("Is should not match different kind")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseCallback, KindOversizedSubstitute).
		Encoding("Shift_JIS").
		Detail("substitute length %d exceeds limit %d", 12, 10).
		Value(12).
		Cause(cause).
		Build()

	if err.Phase != PhaseCallback || err.Kind != KindOversizedSubstitute {
		t.Fatalf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Encoding != "Shift_JIS" {
		t.Errorf("encoding not set: %q", err.Encoding)
	}
	if err.Detail != "substitute length 12 exceeds limit 10" {
		t.Errorf("detail not formatted: %q", err.Detail)
	}
	if err.Value != 12 {
		t.Errorf("value not set: %v", err.Value)
	}
	if !errors.Is(err, &Error{Phase: PhaseCallback, Kind: KindOversizedSubstitute}) {
		t.Error("built error should match phase/kind")
	}
	if !errors.Is(err, cause) {
		t.Error("built error should unwrap to cause")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if e := UnsupportedCharset("nope"); e.Kind != KindUnsupportedCharset || e.Encoding != "nope" {
		t.Errorf("UnsupportedCharset: %v", e)
	}
	if e := ClosedHandle(PhaseEncode); e.Kind != KindClosedHandle || e.Phase != PhaseEncode {
		t.Errorf("ClosedHandle: %v", e)
	}
	if e := NilHandle(PhaseDecode); e.Kind != KindInvalidArgument {
		t.Errorf("NilHandle: %v", e)
	}
	if e := OversizedSubstitute(40, 32); e.Kind != KindOversizedSubstitute || e.Value != 40 {
		t.Errorf("OversizedSubstitute: %v", e)
	}
	if e := BufferBounds(PhaseDecode, -1, 8); e.Kind != KindBufferBounds {
		t.Errorf("BufferBounds: %v", e)
	}
	if e := Internal(PhaseFlush, errors.New("x")); e.Kind != KindInternal || e.Cause == nil {
		t.Errorf("Internal: %v", e)
	}
}
