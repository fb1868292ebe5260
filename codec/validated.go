package codec

import (
	"cmp"
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/zerovec/endian"
	"github.com/arloliu/zerovec/errs"
	"github.com/arloliu/zerovec/internal/assert"
)

// Bool encodes a boolean as a single byte, 0 or 1. Any other byte is rejected.
type Bool struct{}

var _ Fixed[bool] = Bool{}

func (Bool) Size() int { return 1 }

func (Bool) Encode(dst []byte, v bool) {
	if v {
		dst[0] = 1
	} else {
		dst[0] = 0
	}
}

// Decode reports whether src[0] is nonzero. src must have passed Validate.
func (Bool) Decode(src []byte) bool {
	assert.True(src[0] <= 1, "bool byte out of range")
	return src[0] != 0
}

// Validate rejects any byte other than 0 or 1 with errs.ErrInvalidValue.
func (Bool) Validate(src []byte) error {
	if src[0] > 1 {
		return fmt.Errorf("%w: bool byte 0x%02x", errs.ErrInvalidValue, src[0])
	}

	return nil
}

// Compare orders false before true.
func (Bool) Compare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// RuneSize is the wire width of a Unicode scalar value.
const RuneSize = 3

// Rune encodes a Unicode scalar value in 3 little-endian bytes.
//
// Surrogates and values above U+10FFFF are rejected by Validate. Encoding an
// invalid rune writes utf8.RuneError, matching utf8.EncodeRune.
type Rune struct{}

var _ Fixed[rune] = Rune{}

func (Rune) Size() int { return RuneSize }

// Encode writes v in 3 little-endian bytes. A surrogate or a value above
// U+10FFFF is written as utf8.RuneError instead, so Encode never produces
// bytes that Validate rejects.
func (Rune) Encode(dst []byte, v rune) {
	if !utf8.ValidRune(v) {
		v = utf8.RuneError
	}
	endian.PutUint24(dst, uint32(v)) //nolint:gosec
}

// Decode reads a scalar value from src, which must have passed Validate.
// An invalid value panics under the zerovec_debug build tag and decodes as
// utf8.RuneError otherwise.
func (Rune) Decode(src []byte) rune {
	r := rune(endian.Uint24(src)) //nolint:gosec
	if !utf8.ValidRune(r) {
		assert.Unreachable("rune decoded from unvalidated bytes")
		return utf8.RuneError
	}

	return r
}

// Validate rejects surrogates and values above U+10FFFF with errs.ErrInvalidValue.
func (Rune) Validate(src []byte) error {
	v := endian.Uint24(src)
	if !utf8.ValidRune(rune(v)) { //nolint:gosec
		return fmt.Errorf("%w: U+%04X is not a scalar value", errs.ErrInvalidValue, v)
	}

	return nil
}

func (Rune) Compare(a, b rune) int { return cmp.Compare(a, b) }

// CompareWire orders two encoded runes by code point without decoding.
func (Rune) CompareWire(a, b []byte) int {
	return cmp.Compare(endian.Uint24(a), endian.Uint24(b))
}

// Enum encodes a one-byte enumeration whose legal values are 0 through Max.
type Enum[E ~uint8] struct {
	Max E
}

// NewEnum creates an enum codec accepting values 0 through maxValue.
func NewEnum[E ~uint8](maxValue E) Enum[E] {
	return Enum[E]{Max: maxValue}
}

// Size is always 1.
func (Enum[E]) Size() int { return 1 }

// Encode writes v as one byte without checking it against Max. A value above
// Max is written as is and fails Validate when the bytes are parsed.
func (Enum[E]) Encode(dst []byte, v E) { dst[0] = uint8(v) }

// Decode returns src[0] as E. src must have passed Validate: a byte above Max
// panics under the zerovec_debug build tag and is returned unchanged otherwise.
func (c Enum[E]) Decode(src []byte) E {
	assert.True(E(src[0]) <= c.Max, "enum byte out of range")
	return E(src[0])
}

// Validate rejects a byte above Max with errs.ErrInvalidValue.
func (c Enum[E]) Validate(src []byte) error {
	if E(src[0]) > c.Max {
		return fmt.Errorf("%w: enum value %d exceeds maximum %d", errs.ErrInvalidValue, src[0], c.Max)
	}

	return nil
}

func (Enum[E]) Compare(a, b E) int { return cmp.Compare(a, b) }

// Tuple is a pair of logical values encoded back to back.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Pair is the fixed-width codec for Tuple, the concatenation of two fixed codecs.
//
// Ordering is lexicographic: First, then Second.
type Pair[A, B any] struct {
	first  Fixed[A]
	second Fixed[B]
}

// NewPair creates a codec for Tuple[A, B] from the codecs of its parts.
func NewPair[A, B any](first Fixed[A], second Fixed[B]) Pair[A, B] {
	return Pair[A, B]{first: first, second: second}
}

// Size is the sum of both part widths.
func (c Pair[A, B]) Size() int { return c.first.Size() + c.second.Size() }

func (c Pair[A, B]) Encode(dst []byte, v Tuple[A, B]) {
	n := c.first.Size()
	c.first.Encode(dst[:n], v.First)
	c.second.Encode(dst[n:], v.Second)
}

func (c Pair[A, B]) Decode(src []byte) Tuple[A, B] {
	n := c.first.Size()
	return Tuple[A, B]{First: c.first.Decode(src[:n]), Second: c.second.Decode(src[n:])}
}

// Validate checks both parts and reports which one failed.
func (c Pair[A, B]) Validate(src []byte) error {
	n := c.first.Size()
	if err := c.first.Validate(src[:n]); err != nil {
		return fmt.Errorf("first: %w", err)
	}
	if err := c.second.Validate(src[n:]); err != nil {
		return fmt.Errorf("second: %w", err)
	}

	return nil
}

func (c Pair[A, B]) Compare(a, b Tuple[A, B]) int {
	if r := c.first.Compare(a.First, b.First); r != 0 {
		return r
	}

	return c.second.Compare(a.Second, b.Second)
}

// IsPlain reports whether both parts are plain.
func (c Pair[A, B]) IsPlain() bool {
	return IsPlain(c.first) && IsPlain(c.second)
}
