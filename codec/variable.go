package codec

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/arloliu/zerovec/errs"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// String encodes a string as its raw UTF-8 bytes.
//
// Validate rejects malformed UTF-8. Ordering is byte-wise, which for valid
// UTF-8 equals code point order, so wire comparisons never decode.
type String struct{}

var (
	_ Var[string]         = String{}
	_ KeyComparer[string] = String{}
	_ WireComparer        = String{}
)

func (String) EncodedLen(v string) int { return len(v) }

func (String) Encode(dst []byte, v string) { copy(dst, v) }

// Decode copies src into a new string.
func (String) Decode(src []byte) string { return string(src) }

// Validate rejects malformed UTF-8 with errs.ErrInvalidValue.
func (String) Validate(src []byte) error {
	if !utf8.Valid(src) {
		return fmt.Errorf("%w: malformed UTF-8", errs.ErrInvalidValue)
	}

	return nil
}

func (String) Compare(a, b string) int { return strings.Compare(a, b) }

// CompareKey orders key against an encoded element byte-wise.
func (String) CompareKey(key string, wire []byte) int {
	return compareStringBytes(key, wire)
}

func (String) CompareWire(a, b []byte) int { return bytes.Compare(a, b) }

// Bytes encodes an opaque byte string. Every byte pattern is legal.
//
// Decode returns a private copy of the element.
type Bytes struct{}

var _ Var[[]byte] = Bytes{}

func (Bytes) EncodedLen(v []byte) int { return len(v) }

func (Bytes) Encode(dst []byte, v []byte) { copy(dst, v) }

func (Bytes) Decode(src []byte) []byte { return append([]byte{}, src...) }

// Validate accepts every byte string.
func (Bytes) Validate([]byte) error { return nil }

func (Bytes) Compare(a, b []byte) int { return bytes.Compare(a, b) }

func (Bytes) CompareKey(key []byte, wire []byte) int { return bytes.Compare(key, wire) }

func (Bytes) CompareWire(a, b []byte) int { return bytes.Compare(a, b) }

func (Bytes) IsPlain() bool { return true }

// FixedSlice encodes a run of fixed-width elements as one variable-width element.
//
// The element is decoded into a freshly allocated []T. Ordering is
// lexicographic by the inner codec, shorter prefixes first.
type FixedSlice[T any] struct {
	Inner Fixed[T]
}

// NewFixedSlice creates a codec for []T using inner for each element.
func NewFixedSlice[T any](inner Fixed[T]) FixedSlice[T] {
	return FixedSlice[T]{Inner: inner}
}

// EncodedLen is len(v) times the inner width.
func (c FixedSlice[T]) EncodedLen(v []T) int { return len(v) * c.Inner.Size() }

func (c FixedSlice[T]) Encode(dst []byte, v []T) {
	size := c.Inner.Size()
	for i, e := range v {
		c.Inner.Encode(dst[i*size:(i+1)*size], e)
	}
}

func (c FixedSlice[T]) Decode(src []byte) []T {
	size := c.Inner.Size()
	out := make([]T, len(src)/size)
	for i := range out {
		out[i] = c.Inner.Decode(src[i*size : (i+1)*size])
	}

	return out
}

// Validate rejects a length that is not a multiple of the inner width with
// errs.ErrInvalidLength, then validates every inner element.
func (c FixedSlice[T]) Validate(src []byte) error {
	return ValidateFixed(c.Inner, src)
}

func (c FixedSlice[T]) Compare(a, b []T) int {
	return slices.CompareFunc(a, b, c.Inner.Compare)
}

// Collated encodes UTF-8 strings ordered by a locale collator.
//
// It is the comparator hook for locale-aware and case-insensitive orderings:
//
//	c := codec.NewCollated(language.German, collate.IgnoreCase)
//
// Collators keep internal buffers and are not safe for concurrent use, so
// Collated draws them from a pool. A Collated value itself is safe for
// concurrent use.
type Collated struct {
	tag  language.Tag
	pool *sync.Pool
}

var (
	_ Var[string]         = (*Collated)(nil)
	_ KeyComparer[string] = (*Collated)(nil)
	_ WireComparer        = (*Collated)(nil)
)

// NewCollated creates a collated string codec for the given language.
func NewCollated(tag language.Tag, opts ...collate.Option) *Collated {
	return &Collated{
		tag: tag,
		pool: &sync.Pool{
			New: func() any {
				return collate.New(tag, opts...)
			},
		},
	}
}

// Tag returns the collation language.
func (c *Collated) Tag() language.Tag { return c.tag }

func (c *Collated) EncodedLen(v string) int { return len(v) }

func (c *Collated) Encode(dst []byte, v string) { copy(dst, v) }

func (c *Collated) Decode(src []byte) string { return string(src) }

// Validate rejects malformed UTF-8 with errs.ErrInvalidValue.
func (c *Collated) Validate(src []byte) error {
	return String{}.Validate(src)
}

// Compare orders a and b with a pooled collator.
func (c *Collated) Compare(a, b string) int {
	col, _ := c.pool.Get().(*collate.Collator)
	defer c.pool.Put(col)

	return col.CompareString(a, b)
}

func (c *Collated) CompareKey(key string, wire []byte) int {
	col, _ := c.pool.Get().(*collate.Collator)
	defer c.pool.Put(col)

	return col.Compare([]byte(key), wire)
}

// CompareWire orders two encoded elements with a pooled collator without decoding.
func (c *Collated) CompareWire(a, b []byte) int {
	col, _ := c.pool.Get().(*collate.Collator)
	defer c.pool.Put(col)

	return col.Compare(a, b)
}

// compareStringBytes orders s against b byte-wise without converting either side.
func compareStringBytes(s string, b []byte) int {
	n := min(len(s), len(b))
	for i := range n {
		switch {
		case s[i] < b[i]:
			return -1
		case s[i] > b[i]:
			return 1
		}
	}

	switch {
	case len(s) < len(b):
		return -1
	case len(s) > len(b):
		return 1
	default:
		return 0
	}
}
