package vec

import (
	"bytes"
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/zerovec/codec"
	"github.com/arloliu/zerovec/errs"
	"github.com/arloliu/zerovec/internal/pool"
)

// Var is a sequence of variable-width elements that either borrows a caller
// buffer or owns a private one.
//
// The buffer holds a small header, an index table of end offsets and the
// concatenated element payload, so any element is located in O(1). Mutations
// splice the payload and renumber the offsets after the mutation point, which
// costs O(n) in the number of following elements. The index table is widened
// automatically when the payload outgrows it.
//
// Promotion and concurrency follow the same rules as Fixed.
type Var[T any] struct {
	codec    codec.Var[T]
	borrowed []byte
	owned    *pool.ByteBuffer
}

// ParseVar validates b and returns a borrowed sequence over it.
//
// Returns:
//   - error: wrapping errs.ErrIndexTableCorrupt or errs.ErrInvalidValue
func ParseVar[T any](c codec.Var[T], b []byte) (*Var[T], error) {
	v, err := ParseVarView(c, b)
	if err != nil {
		return nil, err
	}

	return VarFromView(v), nil
}

// VarFromView returns a borrowed sequence over the bytes of v.
func VarFromView[T any](v VarView[T]) *Var[T] {
	return &Var[T]{codec: v.codec, borrowed: v.b}
}

// NewVar returns an empty owned sequence.
func NewVar[T any](c codec.Var[T]) *Var[T] {
	return &Var[T]{codec: c, owned: pool.NewByteBuffer(0)}
}

// VarFromSlice encodes vals into a new owned sequence in a single pass.
//
// The index table uses the narrowest width able to address the payload
// unless WithIndexWidth says otherwise.
//
// Returns:
//   - error: wrapping errs.ErrPayloadTooLarge or errs.ErrInvalidIndexWidth
func VarFromSlice[T any](c codec.Var[T], vals []T, opts ...VarOption) (*Var[T], error) {
	cfg, err := newVarConfig(opts)
	if err != nil {
		return nil, err
	}

	b, err := encodeVar(c, vals, cfg.indexWidth)
	if err != nil {
		return nil, err
	}

	return &Var[T]{codec: c, owned: &pool.ByteBuffer{B: b}}, nil
}

// VarFromSorted builds an owned sequence from values that must be strictly
// ascending under the codec's ordering.
//
// Returns:
//   - error: wrapping errs.ErrNotSorted, errs.ErrPayloadTooLarge or errs.ErrInvalidIndexWidth
func VarFromSorted[T any](c codec.Var[T], seq iter.Seq[T], opts ...VarOption) (*Var[T], error) {
	var vals []T
	for v := range seq {
		if n := len(vals); n > 0 && c.Compare(vals[n-1], v) >= 0 {
			return nil, fmt.Errorf("%w: element %d is not greater than element %d", errs.ErrNotSorted, n, n-1)
		}
		vals = append(vals, v)
	}

	return VarFromSlice(c, vals, opts...)
}

func (s *Var[T]) view() VarView[T] {
	return newVarView(s.codec, s.Bytes())
}

// Codec returns the element codec.
func (s *Var[T]) Codec() codec.Var[T] { return s.codec }

// IsOwned reports whether the sequence holds a private buffer.
func (s *Var[T]) IsOwned() bool { return s.owned != nil }

// Bytes returns the wire representation.
func (s *Var[T]) Bytes() []byte {
	if s.owned != nil {
		return s.owned.B
	}

	return s.borrowed
}

// ByteLen returns the size of the wire representation.
func (s *Var[T]) ByteLen() int { return len(s.Bytes()) }

// IndexWidth returns the width in bytes of each index table entry.
func (s *Var[T]) IndexWidth() int { return s.view().IndexWidth() }

// Len returns the number of elements.
func (s *Var[T]) Len() int { return s.view().Len() }

// IsEmpty reports whether the sequence has no elements.
func (s *Var[T]) IsEmpty() bool { return s.Len() == 0 }

// Get decodes element i. It returns false when i is out of range.
//
// Codecs that decode without copying return values that alias the sequence's
// buffer. Use Remove or Replace results, or copy, when the value must
// outlive the next mutation.
func (s *Var[T]) Get(i int) (T, bool) { return s.view().Get(i) }

// RawAt returns the wire bytes of element i.
func (s *Var[T]) RawAt(i int) ([]byte, bool) { return s.view().RawAt(i) }

// First returns the first element.
func (s *Var[T]) First() (T, bool) { return s.view().First() }

// Last returns the last element.
func (s *Var[T]) Last() (T, bool) { return s.view().Last() }

// All iterates the decoded elements in order.
func (s *Var[T]) All() iter.Seq[T] { return s.view().All() }

// Backward iterates index-element pairs from last to first.
func (s *Var[T]) Backward() iter.Seq2[int, T] { return s.view().Backward() }

// ToSlice decodes every element into a new slice.
func (s *Var[T]) ToSlice() []T { return s.view().ToSlice() }

// CompareKey compares a logical key with a wire element.
func (s *Var[T]) CompareKey(key T, wire []byte) int {
	return codec.CompareKey(s.codec, key, wire)
}

// CompareWire compares two wire elements.
func (s *Var[T]) CompareWire(a, b []byte) int {
	return codec.CompareWire(s.codec, a, b)
}

// BinarySearch finds key in an ascending sequence.
func (s *Var[T]) BinarySearch(key T) (int, bool) { return s.view().BinarySearch(key) }

// BinarySearchBy searches with a custom element-versus-target comparison.
func (s *Var[T]) BinarySearchBy(cmp func(wire []byte) int) (int, bool) {
	return s.view().BinarySearchBy(cmp)
}

// BinarySearchInRange searches elements [lo, hi).
func (s *Var[T]) BinarySearchInRange(key T, lo, hi int) (int, bool, bool) {
	return s.view().BinarySearchInRange(key, lo, hi)
}

// BinarySearchInRangeBy searches elements [lo, hi) with a custom comparison.
func (s *Var[T]) BinarySearchInRangeBy(cmp func(wire []byte) int, lo, hi int) (int, bool, bool) {
	return s.view().BinarySearchInRangeBy(cmp, lo, hi)
}

// IsAscending reports whether elements are strictly ascending.
func (s *Var[T]) IsAscending() bool { return s.view().IsAscending() }

// AsView returns a view over the current bytes. The view is invalidated by
// the next mutation of an owned sequence.
func (s *Var[T]) AsView() VarView[T] { return s.view() }

// AsBorrowed returns AsView as a View.
func (s *Var[T]) AsBorrowed() View[T] { return s.view() }

// MakeMut promotes a borrowed sequence to an owned one by copying its bytes.
//
// A borrowed header with no elements becomes the canonical empty buffer.
func (s *Var[T]) MakeMut() {
	if s.owned != nil {
		return
	}

	if readLayout(s.borrowed).count == 0 {
		s.owned = pool.NewByteBuffer(0)
	} else {
		s.owned = pool.NewByteBufferFrom(s.borrowed)
	}
	s.borrowed = nil
	logPromotion("var", s.Len(), s.owned.Len())
}

// replace installs b as the owned buffer. A borrowed sequence is promoted
// without first copying the bytes b supersedes.
func (s *Var[T]) replace(b []byte) {
	if s.owned != nil {
		s.owned.B = b
		return
	}

	s.owned = &pool.ByteBuffer{B: b}
	s.borrowed = nil
	logPromotion("var", s.Len(), len(b))
}

// IntoOwned promotes the sequence and returns it.
func (s *Var[T]) IntoOwned() *Var[T] {
	s.MakeMut()
	return s
}

// Clone returns an owned deep copy.
func (s *Var[T]) Clone() *Var[T] {
	return &Var[T]{codec: s.codec, owned: pool.NewByteBufferFrom(s.Bytes())}
}

// fits reports whether a sequence of count elements and payloadLen bytes can be addressed.
func fits(count, payloadLen int) bool {
	return uint64(count) <= math.MaxUint32 && uint64(payloadLen) <= maxPayload
}

// ensureWidth widens the owned index table so it can address payloadLen bytes.
func (s *Var[T]) ensureWidth(l *varLayout, payloadLen int) {
	w := widthFor(payloadLen)
	if w <= l.width {
		return
	}

	s.owned.B = rewidth(s.owned.B, *l, w)
	l.width = w
	l.payloadStart = VarHeaderSize + l.count*w
}

// Insert places v at index i, shifting later elements right.
//
// It returns false if i is out of range or the grown payload could not be
// addressed by any index width.
func (s *Var[T]) Insert(i int, v T) bool {
	cur := s.view()
	if i < 0 || i > cur.Len() {
		return false
	}

	n := s.codec.EncodedLen(v)
	if !fits(cur.Len()+1, cur.PayloadLen()+n) {
		return false
	}

	s.MakeMut()
	l := readLayout(s.owned.B)
	if l.count == 0 {
		b, err := encodeVar(s.codec, []T{v}, 0)
		if err != nil {
			return false
		}
		s.owned.Reset()
		s.owned.MustWrite(b)

		return true
	}

	s.ensureWidth(&l, l.payloadLen(s.owned.B)+n)

	start := 0
	if i > 0 {
		start = l.end(s.owned.B, i-1)
	}

	s.codec.Encode(s.owned.InsertGap(l.payloadStart+start, n), v)
	s.owned.InsertGap(VarHeaderSize+i*l.width, l.width)
	l.count++

	b := s.owned.B
	putEnd(b, l.width, i, start+n)
	for j := i + 1; j < l.count; j++ {
		putEnd(b, l.width, j, l.end(b, j)+n)
	}
	writeHeader(b, l.width, l.count)

	return true
}

// Remove deletes element i and returns an independent copy of it.
func (s *Var[T]) Remove(i int) (T, bool) {
	raw, ok := s.RawAt(i)
	if !ok {
		var zero T
		return zero, false
	}

	old := s.codec.Decode(bytes.Clone(raw))

	s.MakeMut()
	l := readLayout(s.owned.B)
	if l.count == 1 {
		s.owned.Reset()
		return old, true
	}

	start, end := l.bounds(s.owned.B, i)
	n := end - start
	s.owned.Delete(l.payloadStart+start, l.payloadStart+end)
	s.owned.Delete(VarHeaderSize+i*l.width, VarHeaderSize+(i+1)*l.width)
	l.count--

	b := s.owned.B
	for j := i; j < l.count; j++ {
		putEnd(b, l.width, j, l.end(b, j)-n)
	}
	writeHeader(b, l.width, l.count)

	return old, true
}

// Replace overwrites element i with v and returns an independent copy of
// the previous value.
func (s *Var[T]) Replace(i int, v T) (T, bool) {
	var zero T

	cur := s.view()
	raw, ok := cur.RawAt(i)
	if !ok {
		return zero, false
	}

	n := s.codec.EncodedLen(v)
	delta := n - len(raw)
	if !fits(cur.Len(), cur.PayloadLen()+delta) {
		return zero, false
	}

	old := s.codec.Decode(bytes.Clone(raw))

	s.MakeMut()
	l := readLayout(s.owned.B)
	s.ensureWidth(&l, l.payloadLen(s.owned.B)+delta)

	start, end := l.bounds(s.owned.B, i)
	s.codec.Encode(s.owned.Resize(l.payloadStart+start, l.payloadStart+end, n), v)

	if delta != 0 {
		b := s.owned.B
		for j := i; j < l.count; j++ {
			putEnd(b, l.width, j, l.end(b, j)+delta)
		}
	}

	return old, true
}

// Push appends v. It returns false only if the payload could not be addressed.
func (s *Var[T]) Push(v T) bool {
	return s.Insert(s.Len(), v)
}

// Clear removes all elements. A borrowed sequence becomes an empty owned one
// without copying.
func (s *Var[T]) Clear() {
	if s.owned == nil {
		s.owned = pool.NewByteBuffer(0)
		s.borrowed = nil

		return
	}

	s.owned.Reset()
}

// Reserve ensures index table room for n more elements. Payload space is
// not reserved because element sizes are unknown.
func (s *Var[T]) Reserve(n int) {
	if n <= 0 {
		return
	}

	s.MakeMut()
	s.owned.Grow(n * readLayout(s.owned.B).width)
}

// Permute reorders elements so that the new element i is the old element perm[i].
//
// It returns false and leaves the sequence unchanged unless perm is a
// permutation of [0, Len).
func (s *Var[T]) Permute(perm []int) bool {
	cur := s.view()
	if !isPermutation(perm, cur.Len()) {
		return false
	}
	if len(perm) == 0 {
		return true
	}

	elems := make([][]byte, len(perm))
	for i, from := range perm {
		elems[i] = cur.at(from)
	}
	out := encodeVarRaw(elems, cur.IndexWidth())

	s.replace(out)

	return true
}

// ForEachMut replaces every element with fn(i, element) and rebuilds the
// buffer with the narrowest index width.
//
// It returns false and leaves the sequence unchanged if the rewritten
// payload could not be addressed.
func (s *Var[T]) ForEachMut(fn func(i int, v T) T) bool {
	vals := s.ToSlice()
	for i, v := range vals {
		vals[i] = fn(i, v)
	}

	b, err := encodeVar(s.codec, vals, 0)
	if err != nil {
		return false
	}

	s.replace(b)

	return true
}

// rewidth rebuilds b with index entries of the given width.
func rewidth(b []byte, l varLayout, width int) []byte {
	payload := b[l.payloadStart:]
	indexEnd := VarHeaderSize + l.count*width

	out := make([]byte, indexEnd+len(payload), indexEnd+len(payload)+len(payload)/4)
	writeHeader(out, width, l.count)
	for i := range l.count {
		putEnd(out, width, i, l.end(b, i))
	}
	copy(out[indexEnd:], payload)

	return out
}
