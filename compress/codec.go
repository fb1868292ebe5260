package compress

import (
	"fmt"

	"github.com/arloliu/zerovec/errs"
	"github.com/arloliu/zerovec/format"
)

// Compressor compresses the payload of a persisted sequence frame.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The input is the complete wire form of one sequence.
	//
	// Memory management:
	//   - Returned slice may alias the input for the no-op codec, otherwise it is newly allocated
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a frame payload produced by the matching Compressor.
//
// Example:
//
//	decompressor := NewZstdCompressor()
//	raw, err := decompressor.Decompress(payload, int(header.RawLength))
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Implementations are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses the input data.
	//
	// rawLen is the uncompressed length recorded in the frame header. It
	// sizes the output buffer up front, and a result of any other length is
	// reported as an error.
	//
	// Error conditions:
	//   - Returns error if input data is corrupted or invalid
	//   - Returns error if data was compressed with incompatible algorithm
	//   - Returns error if the output length differs from rawLen
	Decompress(data []byte, rawLen int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Compressor instance for the specified type
//   - error: wrapping errs.ErrInvalidCompression
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %d", errs.ErrInvalidCompression, target, uint8(compressionType))
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: unsupported compression type %d", errs.ErrInvalidCompression, uint8(compressionType))
}

// checkLen verifies a decompressed payload against the recorded raw length.
func checkLen(algo string, out []byte, rawLen int) ([]byte, error) {
	if len(out) != rawLen {
		return nil, fmt.Errorf("%s decompression produced %d bytes, want %d", algo, len(out), rawLen)
	}

	return out, nil
}
