// Package codec defines how logical values map to zerovec wire bytes.
//
// A codec is the per-type contract behind every sequence: it encodes a
// logical value into its canonical wire form, decodes wire bytes back, and
// validates untrusted bytes before any sequence borrows them. Validation is
// the only gate through which external bytes enter a sequence, so an invalid
// buffer is rejected at construction instead of surfacing during access.
//
// # Fixed and Variable Width
//
// Fixed[T] codecs produce exactly Size() bytes per element, little-endian,
// with no alignment requirement:
//
//	Int[T]       all integer types (Uint16, Int64, ...), plain
//	Float32/64   canonical zero and NaN, plain
//	Bool         one byte, 0 or 1
//	Rune         three bytes, Unicode scalar values only
//	Enum[E]      one byte, 0 through Max
//	Pair[A, B]   two fixed codecs back to back
//
// Var[T] codecs produce a self-delimited span whose length is recorded by the
// enclosing sequence's index table:
//
//	String       validated UTF-8, byte-wise order
//	Bytes        opaque bytes
//	FixedSlice   a nested run of fixed-width elements, decoded to []T
//	Collated     UTF-8 ordered by a golang.org/x/text/collate collator
//
// # Ordering
//
// Decoder.Compare defines the logical order used by searches. Codecs may also
// implement KeyComparer and WireComparer to compare without decoding; the
// CompareKey and CompareWire helpers pick the fast path when it exists and
// otherwise decode, and both paths must agree.
//
// # Plain Codecs
//
// Codecs whose every bit pattern is legal implement Plain. ValidateFixed then
// checks only the buffer length, so borrowing a plain buffer costs O(1).
package codec
