// Package pool provides the growable byte buffer behind owned sequences and
// a sync.Pool of scratch buffers used while assembling persisted frames.
package pool

import (
	"io"
	"sync"
)

const (
	// FrameBufferDefaultSize is the default capacity of pooled frame buffers.
	FrameBufferDefaultSize = 1024 * 4 // 4KiB
	// FrameBufferMaxThreshold is the largest buffer the frame pool retains.
	FrameBufferMaxThreshold = 1024 * 256 // 256KiB

	// smallGrowthLimit is the capacity below which Grow doubles the buffer.
	smallGrowthLimit = 1024 * 4
	minGrowth        = 16
)

// ByteBuffer is a growable byte slice with in-place splice helpers.
//
// It backs the owned state of a sequence. A ByteBuffer is not safe for
// concurrent use.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new empty ByteBuffer with the given capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// NewByteBufferFrom creates a ByteBuffer holding a private copy of data.
func NewByteBufferFrom(data []byte) *ByteBuffer {
	b := make([]byte, len(data))
	copy(b, data)

	return &ByteBuffer{B: b}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its allocation.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)
}

// Write appends the contents of data to the buffer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.MustWrite(data)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// The growth strategy is as follows:
//   - Small buffers (<4KiB) at least double, so appending one element at a time stays amortized O(1).
//   - Larger buffers grow by 25% of current capacity to balance memory usage and reallocation cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := cap(bb.B)
	if cap(bb.B) > smallGrowthLimit {
		growBy = cap(bb.B) / 4
	}
	if growBy < minGrowth {
		growBy = minGrowth
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ExtendOrGrow extends the buffer length by n bytes, growing it if necessary,
// and returns the newly exposed tail.
func (bb *ByteBuffer) ExtendOrGrow(n int) []byte {
	bb.Grow(n)
	start := len(bb.B)
	bb.B = bb.B[:start+n]

	return bb.B[start : start+n]
}

// InsertGap opens n bytes at offset at, shifting the tail right, and returns
// the gap for the caller to fill.
//
// Panics if at is outside [0, Len()].
func (bb *ByteBuffer) InsertGap(at, n int) []byte {
	if at < 0 || at > len(bb.B) {
		panic("InsertGap: invalid offset")
	}

	oldLen := len(bb.B)
	bb.ExtendOrGrow(n)
	copy(bb.B[at+n:], bb.B[at:oldLen])

	return bb.B[at : at+n]
}

// Delete removes bytes [from, to), shifting the tail left.
//
// Panics if the range is invalid.
func (bb *ByteBuffer) Delete(from, to int) {
	if from < 0 || to < from || to > len(bb.B) {
		panic("Delete: invalid range")
	}

	n := copy(bb.B[from:], bb.B[to:])
	bb.B = bb.B[:from+n]
}

// Resize replaces bytes [from, to) with a gap of n bytes and returns the gap.
func (bb *ByteBuffer) Resize(from, to, n int) []byte {
	old := to - from
	switch {
	case n > old:
		bb.InsertGap(to, n-old)
	case n < old:
		bb.Delete(from+n, to)
	}

	return bb.B[from : from+n]
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// Buffers whose capacity exceeds maxThreshold are dropped on Put instead of
// being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var frameDefaultPool = NewByteBufferPool(FrameBufferDefaultSize, FrameBufferMaxThreshold)

// GetFrameBuffer retrieves a scratch buffer for frame assembly.
func GetFrameBuffer() *ByteBuffer {
	return frameDefaultPool.Get()
}

// PutFrameBuffer returns a scratch buffer to the frame pool.
func PutFrameBuffer(bb *ByteBuffer) {
	frameDefaultPool.Put(bb)
}
