package codec

import (
	"fmt"

	"github.com/arloliu/zerovec/errs"
)

// Decoder turns validated wire bytes into logical values and orders those values.
//
// Compare defines the logical ordering used by binary search and ascending
// checks. It is the extension point for custom orderings such as locale-aware
// or case-insensitive string comparison.
type Decoder[T any] interface {
	// Decode converts wire bytes to a logical value.
	//
	// src must have passed Validate. Decoding bytes that were never validated
	// is a programmer error.
	Decode(src []byte) T

	// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b.
	Compare(a, b T) int
}

// Fixed is the codec contract for fixed-width elements.
//
// Every element occupies exactly Size() bytes, little-endian, with no
// alignment requirement.
type Fixed[T any] interface {
	Decoder[T]

	// Size returns the wire width of one element in bytes. Always > 0.
	Size() int

	// Encode writes the canonical wire form of v into dst. len(dst) == Size().
	Encode(dst []byte, v T)

	// Validate checks a single element's bytes. len(src) == Size().
	// Returns an error wrapping errs.ErrInvalidValue for illegal bit patterns.
	Validate(src []byte) error
}

// Var is the codec contract for variable-width elements.
type Var[T any] interface {
	Decoder[T]

	// EncodedLen returns the number of bytes Encode writes for v.
	EncodedLen(v T) int

	// Encode writes the canonical wire form of v into dst. len(dst) == EncodedLen(v).
	Encode(dst []byte, v T)

	// Validate checks a single element's bytes.
	// Returns an error wrapping errs.ErrInvalidValue for illegal content.
	Validate(src []byte) error
}

// Plain is implemented by codecs whose every bit pattern of the right length
// is a legal value. Validation of plain fixed-width buffers is O(1).
//
// A variable-width codec may only be plain if every byte string of every
// length is legal; plain variable-width elements are not validated at all.
type Plain interface {
	IsPlain() bool
}

// KeyComparer is an optional fast path comparing a logical key against wire
// bytes without decoding them.
//
// Implementations must return exactly Compare(key, Decode(wire)).
type KeyComparer[T any] interface {
	CompareKey(key T, wire []byte) int
}

// WireComparer is an optional fast path comparing two wire elements without
// decoding them.
//
// Implementations must return exactly Compare(Decode(a), Decode(b)).
type WireComparer interface {
	CompareWire(a, b []byte) int
}

// IsPlain reports whether c declares every bit pattern legal.
func IsPlain(c any) bool {
	p, ok := c.(Plain)
	return ok && p.IsPlain()
}

// CompareKey compares a logical key with a wire element.
//
// It uses the codec's KeyComparer fast path when available and falls back to
// decoding the wire element otherwise. Both paths yield the same result.
func CompareKey[T any](c Decoder[T], key T, wire []byte) int {
	if kc, ok := c.(KeyComparer[T]); ok {
		return kc.CompareKey(key, wire)
	}

	return c.Compare(key, c.Decode(wire))
}

// CompareWire compares two wire elements.
//
// It uses the codec's WireComparer fast path when available and falls back to
// decoding both sides otherwise.
func CompareWire[T any](c Decoder[T], a, b []byte) int {
	if wc, ok := c.(WireComparer); ok {
		return wc.CompareWire(a, b)
	}

	return c.Compare(c.Decode(a), c.Decode(b))
}

// ValidateFixed checks that b is a whole number of fixed-width elements and
// that every element is legal.
//
// It runs in O(1) for plain codecs and O(n) otherwise.
//
// Returns:
//   - error: wrapping errs.ErrInvalidLength or errs.ErrInvalidValue
func ValidateFixed[T any](c Fixed[T], b []byte) error {
	size := c.Size()
	if len(b)%size != 0 {
		return fmt.Errorf("%w: %d bytes is not a multiple of element width %d", errs.ErrInvalidLength, len(b), size)
	}

	if IsPlain(c) {
		return nil
	}

	for i, off := 0, 0; off < len(b); i, off = i+1, off+size {
		if err := c.Validate(b[off : off+size]); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}

// EncodeFixed appends the wire form of vals to dst and returns the extended slice.
func EncodeFixed[T any](c Fixed[T], dst []byte, vals ...T) []byte {
	size := c.Size()
	start := len(dst)
	dst = growBytes(dst, len(vals)*size)
	for i, v := range vals {
		off := start + i*size
		c.Encode(dst[off:off+size], v)
	}

	return dst
}

// EncodeVar returns the wire form of a single variable-width value.
func EncodeVar[T any](c Var[T], v T) []byte {
	b := make([]byte, c.EncodedLen(v))
	c.Encode(b, v)

	return b
}

// growBytes extends b by n bytes, reallocating at most once.
func growBytes(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b[:len(b)+n]
	}

	nb := make([]byte, len(b)+n, 2*len(b)+n)
	copy(nb, b)

	return nb
}
