package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	charsetruntime "github.com/wippyai/charset-runtime"
	"github.com/wippyai/charset-runtime/converter"
)

func main() {
	var (
		from        = flag.String("from", "UTF-8", "Source encoding name or alias")
		to          = flag.String("to", "UTF-8", "Target encoding name or alias")
		inFile      = flag.String("in", "", "Input file (defaults to stdin)")
		outFile     = flag.String("out", "", "Output file (defaults to stdout)")
		onMalformed = flag.String("malformed", "report", "Malformed input policy: report, ignore, replace")
		onUnmapped  = flag.String("unmappable", "report", "Unmappable input policy: report, ignore, replace")
		substitute  = flag.String("sub", "", "Substitution string for the replace policy")
		probe       = flag.String("probe", "", "Probe whether -to can encode each rune of this string and exit")
		list        = flag.Bool("list", false, "List supported encodings and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *list {
		listEncodings()
		return
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *probe != "" {
		if err := runProbe(*to, *probe); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*from, *to, *inFile, *outFile, *onMalformed, *onUnmapped, *substitute); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listEncodings() {
	for _, name := range converter.AvailableNames() {
		aliases, _ := converter.Aliases(name)
		canonical, _ := converter.CanonicalName(name)
		line := name
		if canonical != name {
			line += " (canonical: " + canonical + ")"
		}
		if len(aliases) > 0 {
			line += "  aliases: " + strings.Join(aliases, ", ")
		}
		fmt.Println(line)
	}
}

func parsePolicy(s string) (charsetruntime.Policy, error) {
	switch strings.ToLower(s) {
	case "report":
		return charsetruntime.PolicyReport, nil
	case "ignore":
		return charsetruntime.PolicyIgnore, nil
	case "replace":
		return charsetruntime.PolicyReplace, nil
	}
	return 0, fmt.Errorf("unknown policy %q (want report, ignore or replace)", s)
}

func runProbe(to, text string) error {
	conv, err := converter.Open(to)
	if err != nil {
		return err
	}
	defer conv.Close()

	fmt.Printf("Probing %s:\n", conv.Name())
	for _, r := range text {
		verdict := "yes"
		if !conv.CanEncode(r) {
			verdict = "no"
		}
		fmt.Printf("  U+%04X %q  %s\n", r, string(r), verdict)
	}
	return nil
}

// run pipes input bytes through a decoder for the source encoding and an
// encoder for the target encoding. Both directions use the bounded step
// protocol with small fixed buffers, so arbitrarily large inputs stream
// without whole-file buffering.
func run(from, to, inFile, outFile, malformedStr, unmappedStr, substitute string) error {
	onMalformed, err := parsePolicy(malformedStr)
	if err != nil {
		return err
	}
	onUnmapped, err := parsePolicy(unmappedStr)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if inFile != "" {
		f, err := os.Open(inFile)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	dec, err := converter.Open(from)
	if err != nil {
		return err
	}
	defer dec.Close()

	enc, err := converter.Open(to)
	if err != nil {
		return err
	}
	defer enc.Close()

	if o := dec.SetCallbackDecode(onMalformed, onMalformed, nil); o != charsetruntime.OutcomeOK {
		return fmt.Errorf("set decode policy: %s", o)
	}
	subBytes := []byte(nil)
	if substitute != "" {
		b, outcome := enc.EncodeString(substitute)
		if outcome != charsetruntime.OutcomeOK {
			return fmt.Errorf("substitute %q not representable in %s", substitute, enc.Name())
		}
		subBytes = b
	}
	if o := enc.SetCallbackEncode(onUnmapped, onUnmapped, subBytes); o != charsetruntime.OutcomeOK {
		return fmt.Errorf("set encode policy: %s", o)
	}

	return pipe(dec, enc, in, out)
}

func pipe(dec, enc *converter.Converter, in io.Reader, out io.Writer) error {
	src := make([]byte, 4096)
	units := make([]uint16, 4096)
	dst := make([]byte, 4096)

	filled := 0
	eof := false
	for {
		if !eof {
			n, err := in.Read(src[filled:])
			filled += n
			if err == io.EOF {
				eof = true
			} else if err != nil {
				return fmt.Errorf("read: %w", err)
			}
		}

		// decode as much of the filled window as fits the unit buffer
		consumed := 0
		for {
			cur := charsetruntime.Cursor{Source: consumed}
			o := dec.DecodeStep(src, filled, units, len(units), &cur, eof)
			consumed += cur.Source
			if err := drainEncode(enc, units[:cur.Target], dst, out, false); err != nil {
				return err
			}
			if o == charsetruntime.OutcomeOK {
				break
			}
			if o != charsetruntime.OutcomeBufferOverflow {
				return fmt.Errorf("decode at input offset %d: %s (invalid length %d)",
					consumed, o, cur.InvalidLength)
			}
		}

		// keep the trailing partial sequence for the next read
		copy(src, src[consumed:filled])
		filled -= consumed

		if eof {
			if filled > 0 {
				return fmt.Errorf("%d undecodable trailing bytes", filled)
			}
			return drainEncode(enc, nil, dst, out, true)
		}
	}
}

func drainEncode(enc *converter.Converter, units []uint16, dst []byte, out io.Writer, flush bool) error {
	consumed := 0
	for {
		cur := charsetruntime.Cursor{Source: consumed}
		o := enc.EncodeStep(units, len(units), dst, len(dst), &cur, flush)
		consumed += cur.Source
		if cur.Target > 0 {
			if _, err := out.Write(dst[:cur.Target]); err != nil {
				return fmt.Errorf("write: %w", err)
			}
		}
		switch o {
		case charsetruntime.OutcomeOK:
			return nil
		case charsetruntime.OutcomeBufferOverflow:
			continue
		default:
			return fmt.Errorf("encode: %s (invalid length %d)", o, cur.InvalidLength)
		}
	}
}
