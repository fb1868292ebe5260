// Package zerovec provides compact, zero-copy sequences of fixed-width and
// variable-width elements.
//
// A sequence's in-memory form is also its serialized form. Loading one from
// a byte buffer is validation only: no element is decoded or copied until it
// is read. A loaded sequence is borrowed from the caller's buffer and becomes
// owned, by copying once, the first time it is mutated.
//
// # Core Types
//
//   - vec.Fixed / vec.FixedView: every element occupies exactly Size() bytes
//   - vec.Var / vec.VarView: elements of differing lengths behind an index table
//   - codec.*: element codecs (integers, floats, bool, rune, enums, pairs,
//     strings, byte strings, collated strings and nested sequences)
//
// # Basic Usage
//
//	names, err := zerovec.Strings([]string{"apple", "banana", "cherry"})
//	i, found := names.BinarySearch("banana") // 1, true
//
//	loaded, err := zerovec.LoadStrings(names.Bytes())
//	loaded.Push("damson") // copies once, then mutates its own buffer
//
// # Persistence
//
// The blob package wraps sequence bytes in a small self-describing frame
// with optional compression and an xxHash64 checksum:
//
//	enc, _ := zerovec.NewDefaultEncoder()
//	frame, _ := blob.EncodeVar(enc, names)
//	back, _ := blob.DecodeVar(codec.String{}, frame)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the vec, codec
// and blob packages for the most common element types. For custom codecs and
// fine-grained control, use those packages directly.
package zerovec

import (
	"go.uber.org/zap"

	"github.com/arloliu/zerovec/blob"
	"github.com/arloliu/zerovec/codec"
	"github.com/arloliu/zerovec/format"
	"github.com/arloliu/zerovec/internal/logging"
	"github.com/arloliu/zerovec/vec"
)

// SetLogger installs the logger used by all zerovec packages.
//
// Sequence promotions and frame encode/decode events are logged at Debug
// level. Passing nil restores the default no-op logger.
func SetLogger(l *zap.Logger) {
	logging.Set(l)
}

// Strings encodes vals as an owned variable-width sequence of strings.
func Strings(vals []string) (*vec.Var[string], error) {
	return vec.VarFromSlice[string](codec.String{}, vals)
}

// LoadStrings validates b and returns a borrowed string sequence over it.
func LoadStrings(b []byte) (*vec.Var[string], error) {
	return vec.ParseVar[string](codec.String{}, b)
}

// Ints encodes vals as an owned fixed-width sequence.
func Ints[T codec.Integer](vals []T) *vec.Fixed[T] {
	return vec.FixedFromSlice[T](codec.Int[T]{}, vals)
}

// LoadInts validates b and returns a borrowed integer sequence over it.
func LoadInts[T codec.Integer](b []byte) (*vec.Fixed[T], error) {
	return vec.ParseFixed[T](codec.Int[T]{}, b)
}

// NewEncoder creates a frame encoder with the given options.
//
// Available options:
//   - blob.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - blob.WithChecksum(true|false)
func NewEncoder(opts ...blob.EncoderOption) (*blob.Encoder, error) {
	return blob.NewEncoder(opts...)
}

// NewDefaultEncoder creates a frame encoder with recommended settings:
// no compression, so decoded sequences borrow the frame, and checksums on.
func NewDefaultEncoder() (*blob.Encoder, error) {
	return blob.NewEncoder(
		blob.WithCompression(format.CompressionNone),
		blob.WithChecksum(true),
	)
}

// NewCompactEncoder creates a frame encoder for storage-bound use:
// zstd compression and checksums on.
func NewCompactEncoder() (*blob.Encoder, error) {
	return blob.NewEncoder(
		blob.WithCompression(format.CompressionZstd),
		blob.WithChecksum(true),
	)
}
