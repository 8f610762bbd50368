package converter

import (
	"sort"
	"testing"
)

func TestAvailableNames(t *testing.T) {
	names := AvailableNames()
	if len(names) == 0 {
		t.Fatal("no encodings registered")
	}
	if !sort.StringsAreSorted(names) {
		t.Fatal("names not sorted")
	}
	for _, want := range []string{"UTF-8", "US-ASCII", "ISO-8859-1", "Shift_JIS", "GB18030"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s missing from available names", want)
		}
	}
	// every advertised name must open
	for _, n := range names {
		c, err := Open(n)
		if err != nil {
			t.Errorf("Open(%q): %v", n, err)
			continue
		}
		_ = c.Close()
	}
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"utf8", "UTF-8"},
		{"latin1", "ISO-8859-1"},
		{"ascii", "US-ASCII"},
		{"sjis", "Shift_JIS"},
		{"euckr", "EUC-KR"},
	}
	for _, tt := range tests {
		got, err := CanonicalName(tt.in)
		if err != nil {
			t.Errorf("CanonicalName(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CanonicalName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := CanonicalName("X-NO-SUCH-CHARSET"); err == nil {
		t.Error("unknown name should fail")
	}
}

func TestAliases(t *testing.T) {
	aliases, err := Aliases("UTF-8")
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, a := range aliases {
		if a == "utf8" {
			found = true
		}
	}
	if !found {
		t.Fatalf("utf8 missing from UTF-8 aliases: %v", aliases)
	}

	if _, err := Aliases("X-NO-SUCH-CHARSET"); err == nil {
		t.Error("unknown name should fail")
	}
}
