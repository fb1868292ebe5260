package vec

import (
	"bytes"
	"iter"
)

// Collection is the read contract shared by every sequence and view.
//
// Generic containers are written against Collection so they need not know
// whether a fixed-width or variable-width layout, or an owned or borrowed
// buffer, backs a given instance.
type Collection[T any] interface {
	// Len returns the number of elements.
	Len() int
	// IsEmpty reports whether the collection has no elements.
	IsEmpty() bool
	// Get decodes element i. It returns false when i is out of range.
	Get(i int) (T, bool)
	// RawAt returns the wire bytes of element i. It returns false when i is
	// out of range. The bytes are valid until the next mutation.
	RawAt(i int) ([]byte, bool)
	// All iterates the decoded elements in order.
	All() iter.Seq[T]

	// CompareKey compares a logical key with a wire element.
	CompareKey(key T, wire []byte) int
	// CompareWire compares two wire elements.
	CompareWire(a, b []byte) int

	// BinarySearch finds key in an ascending collection.
	//
	// It returns the index of key and true when present, otherwise the index
	// at which key would be inserted to keep the collection ascending.
	BinarySearch(key T) (int, bool)
	// BinarySearchBy searches with cmp, which orders an element's wire bytes
	// against the target.
	BinarySearchBy(cmp func(wire []byte) int) (int, bool)
	// BinarySearchInRange searches elements [lo, hi) and reports the position
	// relative to lo. The last result is false when the range exceeds the
	// collection's bounds.
	BinarySearchInRange(key T, lo, hi int) (pos int, found bool, ok bool)
	// BinarySearchInRangeBy is BinarySearchInRange with a custom comparison.
	BinarySearchInRangeBy(cmp func(wire []byte) int, lo, hi int) (pos int, found bool, ok bool)
	// IsAscending reports whether elements are strictly ascending.
	IsAscending() bool

	// AsBorrowed returns a view over the collection's current bytes.
	AsBorrowed() View[T]
}

// View is a collection that is permanently borrowed from a caller buffer.
//
// Bytes handed out by a view stay valid as long as the source buffer does,
// independent of the view value itself.
type View[T any] interface {
	Collection[T]

	// BorrowAt returns the wire bytes of element i as a slice of the source buffer.
	BorrowAt(i int) ([]byte, bool)
	// Bytes returns the view's full wire representation.
	Bytes() []byte
}

// Mutable is a collection that can be changed in place.
//
// Every mutation first promotes a borrowed sequence to an owned one.
// Mutations given an out-of-range index report false and leave the sequence
// unchanged.
type Mutable[T any] interface {
	Collection[T]

	Insert(i int, v T) bool
	Remove(i int) (T, bool)
	Replace(i int, v T) (T, bool)
	Push(v T) bool
	Clear()
	Reserve(n int)

	// MakeMut promotes a borrowed sequence to an owned one. It is idempotent.
	MakeMut()
	// IsOwned reports whether the sequence holds a private buffer.
	IsOwned() bool
	// Bytes returns the sequence's full wire representation.
	Bytes() []byte
}

var (
	_ Mutable[uint16] = (*Fixed[uint16])(nil)
	_ Mutable[string] = (*Var[string])(nil)
	_ View[uint16]    = FixedView[uint16]{}
	_ View[string]    = VarView[string]{}
)

// Equal reports whether a and b hold equal elements under the codec's ordering.
//
// Identical wire bytes are accepted without decoding. Anything else is
// compared with CompareWire, since a parsed buffer need not be canonical:
// a nested sequence may use a wider index than necessary and a float may
// hold -0 or a NaN payload. Any two collections may be compared, regardless
// of their backing.
func Equal[T any](a, b Collection[T]) bool {
	n := a.Len()
	if n != b.Len() {
		return false
	}

	for i := range n {
		ra, _ := a.RawAt(i)
		rb, _ := b.RawAt(i)
		if !bytes.Equal(ra, rb) && a.CompareWire(ra, rb) != 0 {
			return false
		}
	}

	return true
}

// Collect decodes every element of c into a new slice.
func Collect[T any](c Collection[T]) []T {
	out := make([]T, 0, c.Len())
	for v := range c.All() {
		out = append(out, v)
	}

	return out
}
