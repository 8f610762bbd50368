package engine

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"

	cserrors "github.com/wippyai/charset-runtime/errors"
)

// Encoding is one registered codec: a named golang.org/x/text encoding plus
// the metadata the converter layer needs (aliases, per-char byte bounds, the
// canonical external name).
type Encoding struct {
	name      string
	canonical string
	aliases   []string
	minBytes  int
	maxBytes  int
	enc       encoding.Encoding

	// fffd holds this encoding's byte sequence for U+FFFD, or nil when the
	// replacement rune is not representable. Used to tell a genuine U+FFFD
	// in the source apart from the decoder flagging a bad sequence.
	fffd []byte
}

// Name returns the engine's internal canonical name.
func (e *Encoding) Name() string { return e.name }

// CanonicalName returns the preferred external name: MIME-registered if one
// exists, then IANA-registered, then an alias already carrying an "x-"
// prefix, then a synthesized "x-" name. The ordering is load-bearing for
// callers that persist names.
func (e *Encoding) CanonicalName() string { return e.canonical }

// Aliases returns the known alternate names, not including Name itself.
func (e *Encoding) Aliases() []string {
	out := make([]string, len(e.aliases))
	copy(out, e.aliases)
	return out
}

// MinBytesPerChar returns the minimum bytes one UTF-16 unit can encode to.
func (e *Encoding) MinBytesPerChar() int { return e.minBytes }

// MaxBytesPerChar returns the maximum bytes one UTF-16 unit can encode to.
func (e *Encoding) MaxBytesPerChar() int { return e.maxBytes }

type registry struct {
	byName map[string]*Encoding // lowercased name and aliases
	names  []string             // sorted canonical names
}

var (
	reg     *registry
	regOnce sync.Once
)

type entrySpec struct {
	name     string
	enc      encoding.Encoding
	aliases  []string
	minBytes int
	maxBytes int
}

// table lists every supported encoding. Alias sets follow the IANA registry
// entries for each coded character set.
func table() []entrySpec {
	return []entrySpec{
		{"UTF-8", unicode.UTF8, []string{"utf8", "unicode-1-1-utf-8"}, 1, 3},
		{"UTF-16", unicode.UTF16(unicode.BigEndian, unicode.UseBOM), []string{"utf16", "unicode"}, 2, 4},
		{"UTF-16BE", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), []string{"utf-16be", "x-utf-16be", "unicodebigunmarked"}, 2, 2},
		{"UTF-16LE", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), []string{"utf-16le", "x-utf-16le", "unicodelittleunmarked"}, 2, 2},
		{"US-ASCII", asciiEncoding(), []string{"ascii", "ansi_x3.4-1968", "iso-ir-6", "cp367", "ibm367", "us", "646"}, 1, 1},
		{"ISO-8859-1", charmap.ISO8859_1, []string{"latin1", "l1", "iso_8859-1", "iso-ir-100", "cp819", "ibm819", "csisolatin1"}, 1, 1},
		{"ISO-8859-2", charmap.ISO8859_2, []string{"latin2", "l2", "iso_8859-2", "iso-ir-101", "csisolatin2"}, 1, 1},
		{"ISO-8859-3", charmap.ISO8859_3, []string{"latin3", "l3", "iso_8859-3", "iso-ir-109"}, 1, 1},
		{"ISO-8859-4", charmap.ISO8859_4, []string{"latin4", "l4", "iso_8859-4", "iso-ir-110"}, 1, 1},
		{"ISO-8859-5", charmap.ISO8859_5, []string{"cyrillic", "iso_8859-5", "iso-ir-144"}, 1, 1},
		{"ISO-8859-6", charmap.ISO8859_6, []string{"arabic", "iso_8859-6", "iso-ir-127", "ecma-114"}, 1, 1},
		{"ISO-8859-7", charmap.ISO8859_7, []string{"greek", "greek8", "iso_8859-7", "iso-ir-126", "ecma-118"}, 1, 1},
		{"ISO-8859-8", charmap.ISO8859_8, []string{"hebrew", "iso_8859-8", "iso-ir-138"}, 1, 1},
		{"ISO-8859-9", charmap.ISO8859_9, []string{"latin5", "l5", "iso_8859-9", "iso-ir-148"}, 1, 1},
		{"ISO-8859-10", charmap.ISO8859_10, []string{"latin6", "l6", "iso_8859-10", "iso-ir-157"}, 1, 1},
		{"ISO-8859-13", charmap.ISO8859_13, []string{"latin7", "iso_8859-13"}, 1, 1},
		{"ISO-8859-14", charmap.ISO8859_14, []string{"latin8", "l8", "iso_8859-14", "iso-celtic"}, 1, 1},
		{"ISO-8859-15", charmap.ISO8859_15, []string{"latin9", "latin-9", "iso_8859-15"}, 1, 1},
		{"ISO-8859-16", charmap.ISO8859_16, []string{"latin10", "l10", "iso_8859-16", "iso-ir-226"}, 1, 1},
		{"windows-1250", charmap.Windows1250, []string{"cp1250"}, 1, 1},
		{"windows-1251", charmap.Windows1251, []string{"cp1251"}, 1, 1},
		{"windows-1252", charmap.Windows1252, []string{"cp1252"}, 1, 1},
		{"windows-1253", charmap.Windows1253, []string{"cp1253"}, 1, 1},
		{"windows-1254", charmap.Windows1254, []string{"cp1254"}, 1, 1},
		{"windows-1255", charmap.Windows1255, []string{"cp1255"}, 1, 1},
		{"windows-1256", charmap.Windows1256, []string{"cp1256"}, 1, 1},
		{"windows-1257", charmap.Windows1257, []string{"cp1257"}, 1, 1},
		{"windows-1258", charmap.Windows1258, []string{"cp1258"}, 1, 1},
		{"KOI8-R", charmap.KOI8R, []string{"koi8r", "cskoi8r"}, 1, 1},
		{"KOI8-U", charmap.KOI8U, []string{"koi8u"}, 1, 1},
		{"IBM437", charmap.CodePage437, []string{"cp437", "437", "cspc8codepage437"}, 1, 1},
		{"IBM850", charmap.CodePage850, []string{"cp850", "850"}, 1, 1},
		{"IBM866", charmap.CodePage866, []string{"cp866", "866"}, 1, 1},
		{"macintosh", charmap.Macintosh, []string{"macroman", "mac", "csmacintosh"}, 1, 1},
		{"Shift_JIS", japanese.ShiftJIS, []string{"sjis", "shift-jis", "ms_kanji", "csshiftjis", "x-sjis"}, 1, 2},
		{"EUC-JP", japanese.EUCJP, []string{"eucjp", "x-euc-jp", "cseucpkdfmtjapanese"}, 1, 3},
		{"ISO-2022-JP", japanese.ISO2022JP, []string{"iso2022jp", "csiso2022jp"}, 1, 6},
		{"EUC-KR", korean.EUCKR, []string{"euckr", "ksc_5601", "ks_c_5601-1987", "cseuckr"}, 1, 2},
		{"GBK", simplifiedchinese.GBK, []string{"cp936", "ms936", "windows-936", "x-mswin-936"}, 1, 2},
		{"GB18030", simplifiedchinese.GB18030, []string{"gb18030-2000"}, 1, 4},
		{"HZ-GB-2312", simplifiedchinese.HZGB2312, []string{"hz", "hzgb2312"}, 1, 4},
		{"Big5", traditionalchinese.Big5, []string{"big-5", "big-five", "csbig5", "cn-big5", "x-x-big5"}, 1, 2},
	}
}

// asciiEncoding resolves US-ASCII through the IANA index. The x/text charmap
// package carries no standalone ASCII table; the index does.
func asciiEncoding() encoding.Encoding {
	e, err := ianaindex.IANA.Encoding("US-ASCII")
	if err != nil || e == nil {
		// ISO-8859-1 is a superset; the encoder would accept Latin-1
		// bytes, so this fallback only applies if the index ever drops
		// the ASCII entry.
		return charmap.ISO8859_1
	}
	return e
}

func buildRegistry() *registry {
	specs := table()
	r := &registry{
		byName: make(map[string]*Encoding, len(specs)*4),
		names:  make([]string, 0, len(specs)),
	}

	for _, s := range specs {
		e := &Encoding{
			name:     s.name,
			aliases:  s.aliases,
			minBytes: s.minBytes,
			maxBytes: s.maxBytes,
			enc:      s.enc,
		}
		e.canonical = canonicalName(e)
		e.fffd = encodeReplacement(s.enc)

		r.byName[strings.ToLower(s.name)] = e
		for _, a := range s.aliases {
			key := strings.ToLower(a)
			if _, dup := r.byName[key]; !dup {
				r.byName[key] = e
			}
		}
		r.names = append(r.names, s.name)
	}
	sort.Strings(r.names)

	Logger().Debug("encoding registry built",
		zap.Int("encodings", len(r.names)),
		zap.Int("lookup_keys", len(r.byName)))

	return r
}

func getRegistry() *registry {
	regOnce.Do(func() {
		reg = buildRegistry()
	})
	return reg
}

// canonicalName derives the preferred external name for e. Preference order:
// MIME-registered name, IANA-registered name, an alias already prefixed with
// "x-", then a synthesized "x-" prefixed name.
func canonicalName(e *Encoding) string {
	if n, err := ianaindex.MIME.Name(e.enc); err == nil && n != "" {
		return n
	}
	if n, err := ianaindex.IANA.Name(e.enc); err == nil && n != "" {
		return n
	}
	for _, a := range e.aliases {
		if strings.HasPrefix(strings.ToLower(a), "x-") {
			return a
		}
	}
	return "x-" + strings.ToLower(e.name)
}

// encodeReplacement returns the encoding's byte sequence for U+FFFD, or nil
// when the replacement rune has no representation.
func encodeReplacement(enc encoding.Encoding) []byte {
	var src [utf8.UTFMax]byte
	var dst [16]byte
	tr := enc.NewEncoder()

	// Prime the encoder with an ASCII rune first so any byte order mark is
	// emitted and discarded; otherwise the stored sequence would carry it.
	n := utf8.EncodeRune(src[:], 'A')
	if _, nSrc, err := tr.Transform(dst[:], src[:n], false); err != nil || nSrc != n {
		return nil
	}

	n = utf8.EncodeRune(src[:], '�')
	nDst, nSrc, err := tr.Transform(dst[:], src[:n], true)
	if err != nil || nSrc != n || nDst == 0 {
		return nil
	}
	out := make([]byte, nDst)
	copy(out, dst[:nDst])
	return out
}

// Lookup resolves a name or alias (case-insensitive) to an Encoding.
func Lookup(name string) (*Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, cserrors.New(cserrors.PhaseOpen, cserrors.KindInvalidArgument).
			Detail("empty encoding name").
			Build()
	}
	if e, ok := getRegistry().byName[key]; ok {
		return e, nil
	}
	// Not in the curated table; accept anything the IANA index resolves to
	// one of our registered encodings under a different spelling.
	if ie, err := ianaindex.IANA.Encoding(name); err == nil && ie != nil {
		for _, n := range getRegistry().names {
			if e := getRegistry().byName[strings.ToLower(n)]; e.enc == ie {
				return e, nil
			}
		}
	}
	return nil, cserrors.UnsupportedCharset(name)
}

// Names returns the sorted list of supported engine canonical names.
func Names() []string {
	src := getRegistry().names
	out := make([]string, len(src))
	copy(out, src)
	return out
}
