package compress

// NoOpCompressor stores frame payloads uncompressed.
//
// Decoding an uncompressed frame borrows the payload straight from the frame
// buffer, so this is the codec to use when zero-copy loading matters more
// than size.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is, without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without copying.
func (c NoOpCompressor) Decompress(data []byte, rawLen int) ([]byte, error) {
	return checkLen("noop", data, rawLen)
}
