package vec

import (
	"cmp"

	"github.com/arloliu/zerovec/codec"
)

// VarSliceCodec is a variable-width codec whose elements are themselves
// variable-width sequences.
//
// Decode returns a VarView borrowing the enclosing buffer, so a
// Var[VarView[string]] reads a nested string without copying anything.
// Encode always writes the canonical layout with the narrowest index width.
type VarSliceCodec[T any] struct {
	Inner codec.Var[T]
}

var _ codec.Var[VarView[string]] = VarSliceCodec[string]{}

// NewVarSliceCodec creates a nested codec using inner for the inner elements.
func NewVarSliceCodec[T any](inner codec.Var[T]) VarSliceCodec[T] {
	return VarSliceCodec[T]{Inner: inner}
}

// EncodedLen is the size of v re-encoded with its narrowest index width.
func (c VarSliceCodec[T]) EncodedLen(v VarView[T]) int {
	n := v.Len()
	if n == 0 {
		return 0
	}

	payload := v.PayloadLen()

	return VarHeaderSize + n*widthFor(payload) + payload
}

// Encode writes v in canonical form. An empty view encodes as zero bytes.
func (c VarSliceCodec[T]) Encode(dst []byte, v VarView[T]) {
	n := v.Len()
	if n == 0 {
		return
	}

	payload := v.b[v.layout.payloadStart:]
	width := widthFor(len(payload))
	writeHeader(dst, width, n)
	for i := range n {
		putEnd(dst, width, i, v.layout.end(v.b, i))
	}
	copy(dst[VarHeaderSize+n*width:], payload)
}

// Decode returns a view borrowing src. src must have passed Validate.
func (c VarSliceCodec[T]) Decode(src []byte) VarView[T] {
	return newVarView(c.Inner, src)
}

// Validate checks src as a complete variable-width sequence, elements included.
func (c VarSliceCodec[T]) Validate(src []byte) error {
	_, err := validateVar(c.Inner, src)
	return err
}

// Compare orders nested sequences lexicographically by the inner codec,
// shorter prefixes first.
func (c VarSliceCodec[T]) Compare(a, b VarView[T]) int {
	n := min(a.Len(), b.Len())
	for i := range n {
		if r := codec.CompareWire(c.Inner, a.at(i), b.at(i)); r != 0 {
			return r
		}
	}

	return cmp.Compare(a.Len(), b.Len())
}

// FixedSliceCodec is a variable-width codec whose elements are fixed-width
// sequences. Decode returns a FixedView borrowing the enclosing buffer.
type FixedSliceCodec[T any] struct {
	Inner codec.Fixed[T]
}

var _ codec.Var[FixedView[uint32]] = FixedSliceCodec[uint32]{}

// NewFixedSliceCodec creates a nested codec using inner for the inner elements.
func NewFixedSliceCodec[T any](inner codec.Fixed[T]) FixedSliceCodec[T] {
	return FixedSliceCodec[T]{Inner: inner}
}

func (c FixedSliceCodec[T]) EncodedLen(v FixedView[T]) int { return len(v.b) }

func (c FixedSliceCodec[T]) Encode(dst []byte, v FixedView[T]) { copy(dst, v.b) }

func (c FixedSliceCodec[T]) Decode(src []byte) FixedView[T] {
	return FixedView[T]{codec: c.Inner, b: src}
}

// Validate rejects a length that is not a multiple of the inner width, then
// validates every inner element.
func (c FixedSliceCodec[T]) Validate(src []byte) error {
	return codec.ValidateFixed(c.Inner, src)
}

// Compare orders nested sequences lexicographically by the inner codec.
func (c FixedSliceCodec[T]) Compare(a, b FixedView[T]) int {
	n := min(a.Len(), b.Len())
	for i := range n {
		if r := codec.CompareWire(c.Inner, a.at(i), b.at(i)); r != 0 {
			return r
		}
	}

	return cmp.Compare(a.Len(), b.Len())
}
