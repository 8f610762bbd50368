package converter

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeString_LongerThanChunk(t *testing.T) {
	// exceed the internal working buffer so the helper resumes at least once
	text := strings.Repeat("長い日本語の文章です。", 40)
	c := mustOpen(t, "EUC-JP")

	enc, o := c.EncodeString(text)
	if o != OutcomeOK {
		t.Fatalf("encode: %s", o)
	}
	dec, o := c.DecodeString(enc)
	if o != OutcomeOK {
		t.Fatalf("decode: %s", o)
	}
	if dec != text {
		t.Fatal("long round trip mismatch")
	}
}

func TestEncodeString_ReportStopsAtOffender(t *testing.T) {
	c := mustOpen(t, "US-ASCII")
	enc, o := c.EncodeString("ok so far €")
	if o != OutcomeUnmappableInput {
		t.Fatalf("outcome %s", o)
	}
	if enc != nil {
		t.Fatalf("partial output returned on report: % x", enc)
	}
}

func TestEncodeString_PoliciesApply(t *testing.T) {
	c := mustOpen(t, "US-ASCII")
	c.SetCallbackEncode(PolicyReport, PolicyReplace, []byte("?"))

	enc, o := c.EncodeString("a€b")
	if o != OutcomeOK {
		t.Fatalf("outcome %s", o)
	}
	if !bytes.Equal(enc, []byte("a?b")) {
		t.Fatalf("got %q", enc)
	}
}

func TestDecodeString_PoliciesApply(t *testing.T) {
	c := mustOpen(t, "US-ASCII")
	c.SetCallbackDecode(PolicyIgnore, PolicyIgnore, nil)

	dec, o := c.DecodeString([]byte{'o', 'k', 0xFF, '!'})
	if o != OutcomeOK {
		t.Fatalf("outcome %s", o)
	}
	if dec != "ok!" {
		t.Fatalf("got %q", dec)
	}
}

func TestStringHelpers_ClosedHandle(t *testing.T) {
	c, _ := Open("UTF-8")
	_ = c.Close()

	if _, o := c.EncodeString("x"); o != OutcomeIllegalArgument {
		t.Errorf("encode on closed: %s", o)
	}
	if _, o := c.DecodeString([]byte("x")); o != OutcomeIllegalArgument {
		t.Errorf("decode on closed: %s", o)
	}
}
