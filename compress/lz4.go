package compress

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4MaxRatio bounds how far an LZ4 block can expand: every input byte
// yields at most 255 output bytes.
const lz4MaxRatio = 255

// LZ4Compressor provides LZ4 block compression, the fastest to decompress.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using a pooled lz4.Compressor.
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses an LZ4 block into a buffer of exactly rawLen bytes.
//
// LZ4 blocks do not record their decompressed size, so the length from the
// frame header is what bounds the output.
func (c LZ4Compressor) Decompress(data []byte, rawLen int) ([]byte, error) {
	if len(data) == 0 {
		return checkLen("lz4", nil, rawLen)
	}

	if uint64(rawLen) > uint64(len(data))*lz4MaxRatio {
		return nil, fmt.Errorf("lz4 block of %d bytes cannot hold %d bytes", len(data), rawLen)
	}

	buf := make([]byte, rawLen)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	return checkLen("lz4", buf[:n], rawLen)
}
