package vec

import (
	"iter"

	"github.com/arloliu/zerovec/codec"
)

// VarView is a read-only, permanently borrowed variable-width sequence.
//
// Get costs two index lookups and one decode. Like FixedView, a VarView is a
// small value and copying it never copies elements.
type VarView[T any] struct {
	codec  codec.Var[T]
	b      []byte
	layout varLayout
}

// ParseVarView validates the index table and every element of b and returns
// a view over it without copying.
//
// Returns:
//   - error: wrapping errs.ErrIndexTableCorrupt or errs.ErrInvalidValue
func ParseVarView[T any](c codec.Var[T], b []byte) (VarView[T], error) {
	l, err := validateVar(c, b)
	if err != nil {
		return VarView[T]{}, err
	}

	return VarView[T]{codec: c, b: b[:len(b):len(b)], layout: l}, nil
}

// newVarView wraps bytes that are already known to be valid.
func newVarView[T any](c codec.Var[T], b []byte) VarView[T] {
	return VarView[T]{codec: c, b: b, layout: readLayout(b)}
}

// Codec returns the element codec.
func (v VarView[T]) Codec() codec.Var[T] { return v.codec }

// Len returns the number of elements.
func (v VarView[T]) Len() int { return v.layout.count }

// IsEmpty reports whether the view has no elements.
func (v VarView[T]) IsEmpty() bool { return v.layout.count == 0 }

// ByteLen returns the size of the wire representation.
func (v VarView[T]) ByteLen() int { return len(v.b) }

// Bytes returns the wire representation.
func (v VarView[T]) Bytes() []byte { return v.b }

// IndexWidth returns the width in bytes of each index table entry.
func (v VarView[T]) IndexWidth() int { return v.layout.width }

// PayloadLen returns the size of the concatenated element payload.
func (v VarView[T]) PayloadLen() int {
	if len(v.b) == 0 {
		return 0
	}

	return v.layout.payloadLen(v.b)
}

func (v VarView[T]) at(i int) []byte {
	return v.layout.element(v.b, i)
}

// Get decodes element i.
func (v VarView[T]) Get(i int) (T, bool) {
	if i < 0 || i >= v.layout.count {
		var zero T
		return zero, false
	}

	return v.codec.Decode(v.at(i)), true
}

// RawAt returns the wire bytes of element i.
func (v VarView[T]) RawAt(i int) ([]byte, bool) {
	if i < 0 || i >= v.layout.count {
		return nil, false
	}

	return v.at(i), true
}

// BorrowAt returns the wire bytes of element i as a slice of the source buffer.
func (v VarView[T]) BorrowAt(i int) ([]byte, bool) {
	return v.RawAt(i)
}

// First returns the first element.
func (v VarView[T]) First() (T, bool) { return v.Get(0) }

// Last returns the last element.
func (v VarView[T]) Last() (T, bool) { return v.Get(v.layout.count - 1) }

// All iterates the decoded elements in order.
func (v VarView[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range v.layout.count {
			if !yield(v.codec.Decode(v.at(i))) {
				return
			}
		}
	}
}

// Backward iterates index-element pairs from last to first.
func (v VarView[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.layout.count - 1; i >= 0; i-- {
			if !yield(i, v.codec.Decode(v.at(i))) {
				return
			}
		}
	}
}

// ToSlice decodes every element into a new slice.
func (v VarView[T]) ToSlice() []T {
	out := make([]T, v.layout.count)
	for i := range out {
		out[i] = v.codec.Decode(v.at(i))
	}

	return out
}

// CompareKey compares a logical key with a wire element.
func (v VarView[T]) CompareKey(key T, wire []byte) int {
	return codec.CompareKey(v.codec, key, wire)
}

// CompareWire compares two wire elements.
func (v VarView[T]) CompareWire(a, b []byte) int {
	return codec.CompareWire(v.codec, a, b)
}

// BinarySearch finds key in an ascending view.
func (v VarView[T]) BinarySearch(key T) (int, bool) {
	return searchBy(v.layout.count, v.at, keyCompare(v.codec, key))
}

// BinarySearchBy searches with a custom element-versus-target comparison.
func (v VarView[T]) BinarySearchBy(cmp func(wire []byte) int) (int, bool) {
	return searchBy(v.layout.count, v.at, cmp)
}

// BinarySearchInRange searches elements [lo, hi).
func (v VarView[T]) BinarySearchInRange(key T, lo, hi int) (int, bool, bool) {
	return searchInRange(v.layout.count, lo, hi, v.at, keyCompare(v.codec, key))
}

// BinarySearchInRangeBy searches elements [lo, hi) with a custom comparison.
func (v VarView[T]) BinarySearchInRangeBy(cmp func(wire []byte) int, lo, hi int) (int, bool, bool) {
	return searchInRange(v.layout.count, lo, hi, v.at, cmp)
}

// IsAscending reports whether elements are strictly ascending.
func (v VarView[T]) IsAscending() bool {
	return isAscending(v.codec, v.layout.count, v.at)
}

// AsView returns v.
func (v VarView[T]) AsView() VarView[T] { return v }

// AsBorrowed returns v as a View.
func (v VarView[T]) AsBorrowed() View[T] { return v }
