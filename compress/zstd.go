package compress

import (
	"fmt"
	"math"

	"github.com/klauspost/compress/zstd"
)

// maxDecodedSize is the largest payload a frame header can describe.
const maxDecodedSize = math.MaxUint32

// checkZstdContentSize compares the content size recorded in a zstd frame
// header with rawLen before any output buffer is allocated.
//
// It reports whether the frame records its content size at all.
func checkZstdContentSize(data []byte, rawLen int) (bool, error) {
	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return false, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if !h.HasFCS {
		return false, nil
	}
	if h.FrameContentSize != uint64(rawLen) {
		return false, fmt.Errorf("zstd frame holds %d bytes, want %d", h.FrameContentSize, rawLen)
	}

	return true, nil
}

// ZstdCompressor provides Zstandard compression for frame payloads.
//
// It gives the best ratio of the built-in codecs and suits cold storage of
// large string tables. The pure Go implementation from klauspost/compress is
// used by default; building with the cgo and gozstd tags switches to the
// valyala/gozstd bindings, which produce the same format.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
