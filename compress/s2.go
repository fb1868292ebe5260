package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor provides S2 block compression, a fast Snappy successor.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 compression.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses the input data using S2 decompression.
//
// The block's own length prefix must agree with rawLen before any output is allocated.
func (c S2Compressor) Decompress(data []byte, rawLen int) ([]byte, error) {
	if len(data) == 0 {
		return checkLen("s2", nil, rawLen)
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n != rawLen {
		return nil, fmt.Errorf("s2 block holds %d bytes, want %d", n, rawLen)
	}

	out, err := s2.Decode(make([]byte, rawLen), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return checkLen("s2", out, rawLen)
}
