// Package charsetruntime provides incremental character-set transcoding
// between legacy byte encodings and UTF-16, driven one bounded step at a
// time against caller-owned buffers.
//
// The heavy lifting (the actual byte<->rune mapping tables) lives in
// golang.org/x/text/encoding. This library wraps that engine with the
// session protocol real streaming callers need: resumable cursors, explicit
// flush of shift-state encodings, and pluggable handling of malformed and
// unmappable input.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	charsetruntime/      Root package with the step vocabulary (Outcome,
//	                     Policy, Cursor) shared across packages
//	├── converter/       Converter handles and the step protocol: open/close,
//	                     encode/decode steps, flush, reset, callback policies
//	├── engine/          golang.org/x/text glue: encoding registry, name
//	                     canonicalization, per-rune stepping primitives
//	├── resource/        Integer handle table backing the registry facade
//	├── errors/          Structured error types for debugging
//	└── cmd/transcode/   CLI for listing encodings and converting streams
//
// # Quick Start
//
// Open a converter and encode UTF-16 text to bytes:
//
//	conv, err := converter.Open("UTF-8")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	src := utf16.Encode([]rune("héllo"))
//	dst := make([]byte, 64)
//	var cur charsetruntime.Cursor
//	out := conv.EncodeStep(src, len(src), dst, len(dst), &cur, true)
//	fmt.Printf("%s -> %q\n", out, dst[:cur.Target])
//
// # Step Protocol
//
// Every step converts from the current source position toward a hard target
// limit and returns a small Outcome. OutcomeBufferOverflow is not a failure:
// it means the target filled, and the caller re-invokes with a drained or
// advanced target. Cursor fields report per-call deltas so resumption loops
// can accumulate absolute positions themselves.
//
// # Policies
//
// Malformed and unmappable input is handled per direction by one of three
// policies: report (halt with an Outcome), ignore (skip silently), or
// replace (emit a configured substitution sequence). Policies and
// substitutes are set per handle via SetCallbackEncode/SetCallbackDecode.
//
// # Thread Safety
//
// A Converter carries mutable shift state and is NOT safe for concurrent
// use. Use one handle per logical stream. The encoding registry and name
// lookups are safe for concurrent use.
package charsetruntime
