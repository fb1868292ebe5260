package vec

import (
	"iter"

	"github.com/arloliu/zerovec/codec"
)

// FixedView is a read-only, permanently borrowed fixed-width sequence.
//
// A FixedView is a small value: copying it copies two words and never the
// elements. It is safe for concurrent reads as long as the source buffer is
// not modified.
type FixedView[T any] struct {
	codec codec.Fixed[T]
	b     []byte
}

// ParseFixedView validates b and returns a view over it without copying.
//
// Returns:
//   - error: wrapping errs.ErrInvalidLength or errs.ErrInvalidValue
func ParseFixedView[T any](c codec.Fixed[T], b []byte) (FixedView[T], error) {
	if err := codec.ValidateFixed(c, b); err != nil {
		return FixedView[T]{}, err
	}

	return FixedView[T]{codec: c, b: b[:len(b):len(b)]}, nil
}

// Codec returns the element codec.
func (v FixedView[T]) Codec() codec.Fixed[T] { return v.codec }

// Len returns the number of elements.
func (v FixedView[T]) Len() int {
	if len(v.b) == 0 {
		return 0
	}

	return len(v.b) / v.codec.Size()
}

// IsEmpty reports whether the view has no elements.
func (v FixedView[T]) IsEmpty() bool { return len(v.b) == 0 }

// ByteLen returns the size of the wire representation.
func (v FixedView[T]) ByteLen() int { return len(v.b) }

// Bytes returns the wire representation.
func (v FixedView[T]) Bytes() []byte { return v.b }

func (v FixedView[T]) at(i int) []byte {
	size := v.codec.Size()
	off := i * size

	return v.b[off : off+size : off+size]
}

// Get decodes element i.
func (v FixedView[T]) Get(i int) (T, bool) {
	if i < 0 || i >= v.Len() {
		var zero T
		return zero, false
	}

	return v.codec.Decode(v.at(i)), true
}

// RawAt returns the wire bytes of element i.
func (v FixedView[T]) RawAt(i int) ([]byte, bool) {
	if i < 0 || i >= v.Len() {
		return nil, false
	}

	return v.at(i), true
}

// BorrowAt returns the wire bytes of element i as a slice of the source buffer.
func (v FixedView[T]) BorrowAt(i int) ([]byte, bool) {
	return v.RawAt(i)
}

// First returns the first element.
func (v FixedView[T]) First() (T, bool) { return v.Get(0) }

// Last returns the last element.
func (v FixedView[T]) Last() (T, bool) { return v.Get(v.Len() - 1) }

// All iterates the decoded elements in order.
func (v FixedView[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, n := 0, v.Len(); i < n; i++ {
			if !yield(v.codec.Decode(v.at(i))) {
				return
			}
		}
	}
}

// Backward iterates index-element pairs from last to first.
func (v FixedView[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.Len() - 1; i >= 0; i-- {
			if !yield(i, v.codec.Decode(v.at(i))) {
				return
			}
		}
	}
}

// ToSlice decodes every element into a new slice.
func (v FixedView[T]) ToSlice() []T {
	n := v.Len()
	out := make([]T, n)
	for i := range n {
		out[i] = v.codec.Decode(v.at(i))
	}

	return out
}

// Slice returns the view of elements [lo, hi) without copying.
func (v FixedView[T]) Slice(lo, hi int) (FixedView[T], bool) {
	if lo < 0 || hi > v.Len() || lo > hi {
		return FixedView[T]{}, false
	}

	size := v.codec.Size()

	return FixedView[T]{codec: v.codec, b: v.b[lo*size : hi*size : hi*size]}, true
}

// CompareKey compares a logical key with a wire element.
func (v FixedView[T]) CompareKey(key T, wire []byte) int {
	return codec.CompareKey(v.codec, key, wire)
}

// CompareWire compares two wire elements.
func (v FixedView[T]) CompareWire(a, b []byte) int {
	return codec.CompareWire(v.codec, a, b)
}

// BinarySearch finds key in an ascending view.
func (v FixedView[T]) BinarySearch(key T) (int, bool) {
	return searchBy(v.Len(), v.at, keyCompare(v.codec, key))
}

// BinarySearchBy searches with a custom element-versus-target comparison.
func (v FixedView[T]) BinarySearchBy(cmp func(wire []byte) int) (int, bool) {
	return searchBy(v.Len(), v.at, cmp)
}

// BinarySearchInRange searches elements [lo, hi).
func (v FixedView[T]) BinarySearchInRange(key T, lo, hi int) (int, bool, bool) {
	return searchInRange(v.Len(), lo, hi, v.at, keyCompare(v.codec, key))
}

// BinarySearchInRangeBy searches elements [lo, hi) with a custom comparison.
func (v FixedView[T]) BinarySearchInRangeBy(cmp func(wire []byte) int, lo, hi int) (int, bool, bool) {
	return searchInRange(v.Len(), lo, hi, v.at, cmp)
}

// IsAscending reports whether elements are strictly ascending.
func (v FixedView[T]) IsAscending() bool {
	return isAscending(v.codec, v.Len(), v.at)
}

// AsView returns v.
func (v FixedView[T]) AsView() FixedView[T] { return v }

// AsBorrowed returns v as a View.
func (v FixedView[T]) AsBorrowed() View[T] { return v }
