// Package blob persists zerovec sequences as self-describing frames.
//
// A frame is a fixed 24-byte header (see package section) followed by the
// exact wire bytes of one sequence, optionally compressed. The wire bytes
// are already the in-memory form, so loading an uncompressed frame is
// validation only: the decoded sequence borrows the frame buffer.
//
// # Encoding
//
//	enc, err := blob.NewEncoder(
//	    blob.WithCompression(format.CompressionZstd),
//	    blob.WithChecksum(true),
//	)
//	frame, err := blob.EncodeVar(enc, names)
//
// Any value exposing Len, Bytes and Codec can be encoded, which covers both
// the owned sequences (*vec.Fixed, *vec.Var) and the views (vec.FixedView,
// vec.VarView).
//
// # Decoding
//
//	names, err := blob.DecodeVar(codec.String{}, frame)
//
// Decoding checks, in order: header size and magic, reserved flag bits,
// sequence kind, element width, stored length, decompressed length,
// checksum, the sequence layout itself and finally the element count. Each
// failure wraps one of the errs.Err* sentinels so callers can match with
// errors.Is.
//
// # Lifetime
//
// A sequence decoded from an uncompressed frame aliases the frame. The
// frame must not be modified while the sequence is in use; call MakeMut or
// IntoOwned on the sequence to detach it.
//
// # Thread Safety
//
// An Encoder holds only immutable configuration and may be shared between
// goroutines. The Decode functions are stateless.
package blob
