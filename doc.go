// Package statuslist implements a compact, verifiable-credential status
// list: one small status code per credential, addressed by index, bit-packed
// at a configurable width (1, 2, 4, or 8 bits), DEFLATE-compressed, and
// rendered as either a JSON envelope (base64url, no padding) or a CBOR
// envelope (lowercase hex).
//
// # Core Features
//
//   - Closed status domain: Valid, Invalid, Suspended, and the
//     application-specific codes 3 and 11-15; everything else is rejected
//   - Sub-byte packing with the wire-mandated bit layouts for each width
//   - zlib (DEFLATE) compression at the best level
//   - JSON and CBOR envelopes carrying the bit width and an optional
//     aggregation URI
//   - Typed, non-panicking errors on every malformed-input path
//
// # Basic Usage
//
// Building a list:
//
//	builder, _ := statuslist.NewBuilder(1)
//	builder.Append(statuslist.StatusInvalid) // index 0
//	builder.Append(statuslist.StatusValid)   // index 1
//
//	list, _ := builder.Build()
//	token, _ := list.ToJSON() // {"bits":1,"lst":"..."}
//
// Reading a list:
//
//	decoder, _ := statuslist.NewDecoder(list)
//	status, _ := decoder.StatusAt(0) // statuslist.StatusInvalid
//
// # Concurrency
//
// StatusList and Decoder values are immutable and safe to share across
// goroutines. Builder.Append is atomic, so a single builder may be fed by
// concurrent appenders; note that the assignment of indices to credentials
// then depends on append interleaving.
//
// Transport, credential semantics, persistence, and signing are out of
// scope: callers move envelopes around and vouch for their integrity.
package statuslist
