// Package converter implements the incremental transcoding session: open
// converter handles, drive bounded encode/decode steps with resumable
// cursors, and resolve malformed or unmappable input per configured policy.
//
// # Handles
//
// A Converter binds one named encoding for its whole open -> close lifetime.
// It owns the engine's per-direction conversion state (shift state, pending
// bytes) and two lazily-created callback contexts, one per direction. Handles
// are never shared: serialize access per handle or use one per stream.
//
// # Step Protocol
//
// One step converts as much as the supplied buffers allow:
//
//	conv, _ := converter.Open("ISO-2022-JP")
//	defer conv.Close()
//
//	cur := converter.Cursor{}
//	out := conv.EncodeStep(src, len(src), dst, len(dst), &cur, false)
//
// Cursor.Source and Cursor.Target are starting offsets going in and per-call
// deltas coming out; callers accumulate. The step vocabulary is closed:
//
//	Outcome            Meaning                        Caller reaction
//	─────────────────────────────────────────────────────────────────
//	OK                 requested source consumed      done / next chunk
//	BUFFER_OVERFLOW    target filled first            drain target, call again
//	MALFORMED_INPUT    bad sequence under REPORT      inspect InvalidLength
//	UNMAPPABLE_INPUT   unmappable under REPORT        inspect InvalidLength
//	ILLEGAL_ARGUMENT   nil/closed handle, bad bounds  fix the call
//
// Engine-internal status codes never leak: anything outside this vocabulary
// is collapsed to ILLEGAL_ARGUMENT so the caller contract stays stable even
// if the underlying codec library's error space changes.
//
// # Flush and Reset
//
// Stateful encodings (the ISO-2022 family) buffer shift state that only an
// explicit end-of-input drains. Pass flush=true on the final step, or call
// FlushEncode/FlushDecode to drain without new input. ResetEncode and
// ResetDecode clear conversion state only, never callback contexts.
//
// # Policies
//
// SetCallbackEncode and SetCallbackDecode install, per direction, a policy
// for malformed input, a policy for unmappable input, and an optional
// substitution sequence for PolicyReplace. The default is report-everything
// with "?" (encode) and U+FFFD (decode) substitutes.
//
// # Registry
//
// The Registry hands out integer handles for callers that cannot hold
// pointers. Zero and stale handles are checked errors, and closing a handle
// twice is a checked error too.
package converter
