//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// Compress compresses the input data using Zstandard compression.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses Zstd-compressed data.
func (c ZstdCompressor) Decompress(data []byte, rawLen int) ([]byte, error) {
	if len(data) == 0 {
		return checkLen("zstd", nil, rawLen)
	}

	hasSize, err := checkZstdContentSize(data, rawLen)
	if err != nil {
		return nil, err
	}

	var dst []byte
	if hasSize {
		dst = make([]byte, 0, rawLen)
	}

	out, err := gozstd.Decompress(dst, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return checkLen("zstd", out, rawLen)
}
