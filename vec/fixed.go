package vec

import (
	"iter"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arloliu/zerovec/codec"
	"github.com/arloliu/zerovec/internal/logging"
	"github.com/arloliu/zerovec/internal/pool"
)

// Fixed is a sequence of fixed-width elements that either borrows a caller
// buffer or owns a private one.
//
// A sequence returned by ParseFixed or FixedFromView is borrowed: reads go
// straight to the caller's bytes and nothing is copied. The first mutation
// promotes it to owned by copying the bytes into a private buffer, after
// which the caller's buffer is never touched again. Sequences built from Go
// values are owned from the start.
//
// The caller must not modify a buffer while a borrowed sequence refers to it.
// A Fixed is not safe for concurrent use when any goroutine mutates it.
type Fixed[T any] struct {
	codec    codec.Fixed[T]
	borrowed []byte
	owned    *pool.ByteBuffer
}

// ParseFixed validates b and returns a borrowed sequence over it.
//
// Validation is O(1) for plain codecs and O(n) otherwise. b is not copied.
//
// Returns:
//   - error: wrapping errs.ErrInvalidLength or errs.ErrInvalidValue
func ParseFixed[T any](c codec.Fixed[T], b []byte) (*Fixed[T], error) {
	v, err := ParseFixedView(c, b)
	if err != nil {
		return nil, err
	}

	return FixedFromView(v), nil
}

// FixedFromView returns a borrowed sequence over the bytes of v.
func FixedFromView[T any](v FixedView[T]) *Fixed[T] {
	return &Fixed[T]{codec: v.codec, borrowed: v.b}
}

// NewFixed returns an empty owned sequence.
func NewFixed[T any](c codec.Fixed[T]) *Fixed[T] {
	return NewFixedWithCapacity(c, 0)
}

// NewFixedWithCapacity returns an empty owned sequence with room for n elements.
func NewFixedWithCapacity[T any](c codec.Fixed[T], n int) *Fixed[T] {
	return &Fixed[T]{codec: c, owned: pool.NewByteBuffer(max(n, 0) * c.Size())}
}

// FixedFromSlice encodes vals into a new owned sequence.
func FixedFromSlice[T any](c codec.Fixed[T], vals []T) *Fixed[T] {
	b := codec.EncodeFixed(c, make([]byte, 0, len(vals)*c.Size()), vals...)
	return &Fixed[T]{codec: c, owned: &pool.ByteBuffer{B: b}}
}

// view returns a view over the current bytes, owned or borrowed.
func (s *Fixed[T]) view() FixedView[T] {
	return FixedView[T]{codec: s.codec, b: s.Bytes()}
}

// Codec returns the element codec.
func (s *Fixed[T]) Codec() codec.Fixed[T] { return s.codec }

// IsOwned reports whether the sequence holds a private buffer.
func (s *Fixed[T]) IsOwned() bool { return s.owned != nil }

// Bytes returns the wire representation.
//
// For an owned sequence the slice aliases the private buffer and is valid
// until the next mutation.
func (s *Fixed[T]) Bytes() []byte {
	if s.owned != nil {
		return s.owned.B
	}

	return s.borrowed
}

// ByteLen returns the size of the wire representation.
func (s *Fixed[T]) ByteLen() int { return len(s.Bytes()) }

// Len returns the number of elements.
func (s *Fixed[T]) Len() int { return s.view().Len() }

// IsEmpty reports whether the sequence has no elements.
func (s *Fixed[T]) IsEmpty() bool { return s.ByteLen() == 0 }

// Get decodes element i. It returns false when i is out of range.
func (s *Fixed[T]) Get(i int) (T, bool) { return s.view().Get(i) }

// RawAt returns the wire bytes of element i.
func (s *Fixed[T]) RawAt(i int) ([]byte, bool) { return s.view().RawAt(i) }

// First returns the first element.
func (s *Fixed[T]) First() (T, bool) { return s.view().First() }

// Last returns the last element.
func (s *Fixed[T]) Last() (T, bool) { return s.view().Last() }

// All iterates the decoded elements in order.
//
// The sequence must not be mutated during iteration.
func (s *Fixed[T]) All() iter.Seq[T] { return s.view().All() }

// Backward iterates index-element pairs from last to first.
func (s *Fixed[T]) Backward() iter.Seq2[int, T] { return s.view().Backward() }

// ToSlice decodes every element into a new slice.
func (s *Fixed[T]) ToSlice() []T { return s.view().ToSlice() }

// CompareKey compares a logical key with a wire element.
func (s *Fixed[T]) CompareKey(key T, wire []byte) int {
	return codec.CompareKey(s.codec, key, wire)
}

// CompareWire compares two wire elements.
func (s *Fixed[T]) CompareWire(a, b []byte) int {
	return codec.CompareWire(s.codec, a, b)
}

// BinarySearch finds key in an ascending sequence.
func (s *Fixed[T]) BinarySearch(key T) (int, bool) { return s.view().BinarySearch(key) }

// BinarySearchBy searches with a custom element-versus-target comparison.
func (s *Fixed[T]) BinarySearchBy(cmp func(wire []byte) int) (int, bool) {
	return s.view().BinarySearchBy(cmp)
}

// BinarySearchInRange searches elements [lo, hi).
func (s *Fixed[T]) BinarySearchInRange(key T, lo, hi int) (int, bool, bool) {
	return s.view().BinarySearchInRange(key, lo, hi)
}

// BinarySearchInRangeBy searches elements [lo, hi) with a custom comparison.
func (s *Fixed[T]) BinarySearchInRangeBy(cmp func(wire []byte) int, lo, hi int) (int, bool, bool) {
	return s.view().BinarySearchInRangeBy(cmp, lo, hi)
}

// IsAscending reports whether elements are strictly ascending.
func (s *Fixed[T]) IsAscending() bool { return s.view().IsAscending() }

// AsView returns a view over the current bytes. The view is invalidated by
// the next mutation of an owned sequence.
func (s *Fixed[T]) AsView() FixedView[T] { return s.view() }

// AsBorrowed returns AsView as a View.
func (s *Fixed[T]) AsBorrowed() View[T] { return s.view() }

// MakeMut promotes a borrowed sequence to an owned one by copying its bytes.
// It does nothing if the sequence is already owned.
func (s *Fixed[T]) MakeMut() {
	if s.owned != nil {
		return
	}

	s.owned = pool.NewByteBufferFrom(s.borrowed)
	s.borrowed = nil
	logPromotion("fixed", s.Len(), s.owned.Len())
}

// replace installs b as the owned buffer. A borrowed sequence is promoted
// without first copying the bytes b supersedes.
func (s *Fixed[T]) replace(b []byte) {
	if s.owned != nil {
		s.owned.B = b
		return
	}

	s.owned = &pool.ByteBuffer{B: b}
	s.borrowed = nil
	logPromotion("fixed", s.Len(), len(b))
}

// IntoOwned promotes the sequence and returns it.
func (s *Fixed[T]) IntoOwned() *Fixed[T] {
	s.MakeMut()
	return s
}

// Clone returns an owned deep copy.
func (s *Fixed[T]) Clone() *Fixed[T] {
	return &Fixed[T]{codec: s.codec, owned: pool.NewByteBufferFrom(s.Bytes())}
}

// Insert places v at index i, shifting later elements right.
// i may equal Len to append.
func (s *Fixed[T]) Insert(i int, v T) bool {
	if i < 0 || i > s.Len() {
		return false
	}

	s.MakeMut()
	size := s.codec.Size()
	s.codec.Encode(s.owned.InsertGap(i*size, size), v)

	return true
}

// Remove deletes element i and returns it.
func (s *Fixed[T]) Remove(i int) (T, bool) {
	old, ok := s.Get(i)
	if !ok {
		return old, false
	}

	s.MakeMut()
	size := s.codec.Size()
	s.owned.Delete(i*size, (i+1)*size)

	return old, true
}

// Replace overwrites element i with v and returns the previous value.
func (s *Fixed[T]) Replace(i int, v T) (T, bool) {
	old, ok := s.Get(i)
	if !ok {
		return old, false
	}

	s.MakeMut()
	size := s.codec.Size()
	s.codec.Encode(s.owned.B[i*size:(i+1)*size], v)

	return old, true
}

// Push appends v. It always succeeds.
func (s *Fixed[T]) Push(v T) bool {
	s.MakeMut()
	s.codec.Encode(s.owned.ExtendOrGrow(s.codec.Size()), v)

	return true
}

// Clear removes all elements. A borrowed sequence becomes an empty owned one
// without copying.
func (s *Fixed[T]) Clear() {
	if s.owned == nil {
		s.owned = pool.NewByteBuffer(0)
		s.borrowed = nil

		return
	}

	s.owned.Reset()
}

// Reserve ensures room for n more elements without reallocating.
func (s *Fixed[T]) Reserve(n int) {
	if n <= 0 {
		return
	}

	s.MakeMut()
	s.owned.Grow(n * s.codec.Size())
}

// Permute reorders elements so that the new element i is the old element perm[i].
//
// It returns false and leaves the sequence unchanged unless perm is a
// permutation of [0, Len).
func (s *Fixed[T]) Permute(perm []int) bool {
	n := s.Len()
	if !isPermutation(perm, n) {
		return false
	}

	size := s.codec.Size()
	src := s.Bytes()
	out := make([]byte, len(src))
	for i, from := range perm {
		copy(out[i*size:(i+1)*size], src[from*size:(from+1)*size])
	}

	s.replace(out)

	return true
}

// ForEachMut replaces every element with fn(i, element).
func (s *Fixed[T]) ForEachMut(fn func(i int, v T) T) {
	s.MakeMut()

	size := s.codec.Size()
	for i, n := 0, s.Len(); i < n; i++ {
		dst := s.owned.B[i*size : (i+1)*size]
		s.codec.Encode(dst, fn(i, s.codec.Decode(dst)))
	}
}

func isPermutation(perm []int, n int) bool {
	if len(perm) != n {
		return false
	}

	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return false
		}
		seen[p] = true
	}

	return true
}

func logPromotion(kind string, elements, size int) {
	if ce := logging.Logger().Check(zapcore.DebugLevel, "sequence promoted to owned"); ce != nil {
		ce.Write(
			zap.String("kind", kind),
			zap.Int("elements", elements),
			zap.Int("bytes", size),
		)
	}
}
