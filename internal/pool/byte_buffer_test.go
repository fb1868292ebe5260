package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewByteBufferFrom_Copies(t *testing.T) {
	src := []byte{1, 2, 3}
	bb := NewByteBufferFrom(src)
	require.Equal(t, src, bb.Bytes())

	bb.B[0] = 9
	require.Equal(t, byte(1), src[0], "buffer must not alias its source")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity is a no-op", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(10)
		require.Equal(t, 64, bb.Cap())
	})

	t.Run("small buffers double", func(t *testing.T) {
		bb := NewByteBuffer(32)
		bb.B = bb.B[:32]
		bb.Grow(1)
		require.Equal(t, 64, bb.Cap())
	})

	t.Run("empty buffer gets minimum growth", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(1)
		require.Equal(t, minGrowth, bb.Cap())
	})

	t.Run("large buffers grow by a quarter", func(t *testing.T) {
		bb := NewByteBuffer(8 * 1024)
		bb.B = bb.B[:8*1024]
		bb.Grow(1)
		require.Equal(t, 10*1024, bb.Cap())
	})

	t.Run("grows at least the required amount", func(t *testing.T) {
		bb := NewByteBuffer(16)
		bb.Grow(1000)
		require.GreaterOrEqual(t, bb.Cap(), 1000)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(4)
		bb.MustWrite([]byte("abcd"))
		bb.Grow(100)
		require.Equal(t, []byte("abcd"), bb.Bytes())
	})
}

func TestByteBuffer_InsertGap(t *testing.T) {
	bb := NewByteBufferFrom([]byte("xyz"))

	gap := bb.InsertGap(1, 3)
	copy(gap, "abc")
	require.Equal(t, "xabcyz", string(bb.Bytes()))

	gap = bb.InsertGap(bb.Len(), 1)
	gap[0] = '!'
	require.Equal(t, "xabcyz!", string(bb.Bytes()))

	gap = bb.InsertGap(0, 2)
	copy(gap, ">>")
	require.Equal(t, ">>xabcyz!", string(bb.Bytes()))

	require.Panics(t, func() { bb.InsertGap(-1, 1) })
	require.Panics(t, func() { bb.InsertGap(bb.Len()+1, 1) })
}

func TestByteBuffer_Delete(t *testing.T) {
	bb := NewByteBufferFrom([]byte("xabcyz"))
	bb.Delete(1, 4)
	require.Equal(t, "xyz", string(bb.Bytes()))

	bb.Delete(0, 0)
	require.Equal(t, "xyz", string(bb.Bytes()))

	bb.Delete(2, 3)
	require.Equal(t, "xy", string(bb.Bytes()))

	require.Panics(t, func() { bb.Delete(1, 0) })
	require.Panics(t, func() { bb.Delete(0, 5) })
}

func TestByteBuffer_Resize(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		fill     string
		want     string
	}{
		{"grow", 1, 2, "BBB", "aBBBc"},
		{"shrink", 0, 3, "Z", "Z"},
		{"same size", 2, 3, "Q", "abQ"},
		{"insert at empty range", 1, 1, "--", "a--bc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bb := NewByteBufferFrom([]byte("abc"))
			gap := bb.Resize(tt.from, tt.to, len(tt.fill))
			copy(gap, tt.fill)
			require.Equal(t, tt.want, string(bb.Bytes()))
		})
	}
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(0)
	n, err := bb.Write([]byte("frame"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	var out bytes.Buffer
	written, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(5), written)
	require.Equal(t, "frame", out.String())
}

func TestFrameBufferPool(t *testing.T) {
	bb := GetFrameBuffer()
	require.NotNil(t, bb)
	require.Zero(t, bb.Len())

	bb.MustWrite([]byte("header"))
	PutFrameBuffer(bb)
	PutFrameBuffer(nil)

	again := GetFrameBuffer()
	require.Zero(t, again.Len(), "pooled buffers come back empty")
	PutFrameBuffer(again)
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(8, 16)

	large := NewByteBuffer(1024)
	p.Put(large)

	for range 10 {
		got := p.Get()
		require.LessOrEqual(t, got.Cap(), 16, "oversized buffers must not be retained")
	}
}

func TestByteBufferPool_Concurrent(t *testing.T) {
	p := NewByteBufferPool(16, 0)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for range 100 {
				bb := p.Get()
				bb.MustWrite([]byte{byte(id)})
				if bb.Len() != 1 {
					t.Errorf("pooled buffer not reset: len=%d", bb.Len())
				}
				p.Put(bb)
			}
		}(i)
	}
	wg.Wait()
}
