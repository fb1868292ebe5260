// Package compress provides the payload codecs for persisted sequence frames.
//
// A frame payload is the exact wire form of one sequence. Fixed-width
// sequences of small integers and variable-width string tables both carry
// plenty of redundancy, so the blob encoder can optionally compress the
// payload before writing it.
//
// # Supported Algorithms
//
//	format.CompressionNone  NoOpCompressor   payload stored as-is, decoded without copying
//	format.CompressionZstd  ZstdCompressor   best ratio, moderate speed
//	format.CompressionS2    S2Compressor     balanced speed and ratio
//	format.CompressionLZ4   LZ4Compressor    fastest decompression
//
// Only uncompressed frames can be loaded zero-copy: a decoded sequence then
// borrows the frame buffer directly. Every other codec decompresses into a
// fresh buffer, and the sequence borrows that buffer instead.
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte, rawLen int) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Decompress receives the uncompressed length recorded in the frame header.
// Output buffers are allocated once at that size, and a payload that
// decompresses to any other length is rejected, so a corrupt header can
// never trigger an unbounded allocation loop.
//
// # Zstd Backends
//
// The default build uses the pure Go klauspost/compress implementation with
// pooled encoders and decoders. Building with
//
//	go build -tags gozstd
//
// and cgo enabled switches to the valyala/gozstd bindings. Both produce
// standard Zstandard frames, so payloads are interchangeable.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(seq.Bytes())
//	raw, err := codec.Decompress(packed, seq.ByteLen())
//
// Most users configure compression through blob.WithCompression instead.
package compress
