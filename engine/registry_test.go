package engine

import (
	"sort"
	"testing"
)

func TestLookup_CanonicalAndAliases(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"UTF-8", "UTF-8"},
		{"utf8", "UTF-8"},
		{"UTF8", "UTF-8"},
		{" utf-8 ", "UTF-8"},
		{"latin1", "ISO-8859-1"},
		{"csisolatin1", "ISO-8859-1"},
		{"ascii", "US-ASCII"},
		{"ANSI_X3.4-1968", "US-ASCII"},
		{"sjis", "Shift_JIS"},
		{"ms_kanji", "Shift_JIS"},
		{"euckr", "EUC-KR"},
		{"cp936", "GBK"},
		{"big-five", "Big5"},
		{"koi8r", "KOI8-R"},
		{"cp437", "IBM437"},
	}

	for _, tt := range tests {
		e, err := Lookup(tt.query)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", tt.query, err)
			continue
		}
		if e.Name() != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.query, e.Name(), tt.want)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, name := range []string{"", "   ", "X-TOTALLY-BOGUS", "utf-99"} {
		if _, err := Lookup(name); err == nil {
			t.Errorf("Lookup(%q) should fail", name)
		}
	}
}

func TestNames_SortedAndResolvable(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no registered encodings")
	}
	if !sort.StringsAreSorted(names) {
		t.Error("Names() not sorted")
	}
	for _, n := range names {
		if _, err := Lookup(n); err != nil {
			t.Errorf("registered name %q does not resolve: %v", n, err)
		}
	}

	// the returned slice is a copy
	names[0] = "mutated"
	if Names()[0] == "mutated" {
		t.Error("Names() returned internal slice")
	}
}

func TestCanonicalName_Preference(t *testing.T) {
	// MIME-registered encodings surface their MIME name.
	tests := []struct {
		query string
		want  string
	}{
		{"utf8", "UTF-8"},
		{"latin1", "ISO-8859-1"},
		{"ascii", "US-ASCII"},
		{"big5", "Big5"},
		{"euckr", "EUC-KR"},
		{"iso-2022-jp", "ISO-2022-JP"},
	}
	for _, tt := range tests {
		e, err := Lookup(tt.query)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tt.query, err)
		}
		if e.CanonicalName() != tt.want {
			t.Errorf("CanonicalName(%q) = %q, want %q", tt.query, e.CanonicalName(), tt.want)
		}
	}

	// Every encoding resolves to some non-empty canonical name.
	for _, n := range Names() {
		e, _ := Lookup(n)
		if e.CanonicalName() == "" {
			t.Errorf("%s: empty canonical name", n)
		}
	}
}

func TestAliases_Copied(t *testing.T) {
	e, err := Lookup("UTF-8")
	if err != nil {
		t.Fatal(err)
	}
	a := e.Aliases()
	if len(a) == 0 {
		t.Fatal("UTF-8 has no aliases")
	}
	a[0] = "mutated"
	if e.Aliases()[0] == "mutated" {
		t.Error("Aliases() returned internal slice")
	}
}

func TestMetrics(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"US-ASCII", 1, 1},
		{"ISO-8859-1", 1, 1},
		{"UTF-8", 1, 3},
		{"UTF-16BE", 2, 2},
		{"Shift_JIS", 1, 2},
		{"GB18030", 1, 4},
	}
	for _, tt := range tests {
		e, err := Lookup(tt.name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tt.name, err)
		}
		if e.MinBytesPerChar() != tt.min || e.MaxBytesPerChar() != tt.max {
			t.Errorf("%s: got min=%d max=%d, want min=%d max=%d",
				tt.name, e.MinBytesPerChar(), e.MaxBytesPerChar(), tt.min, tt.max)
		}
	}
}
