package blob

import (
	"bytes"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/arloliu/zerovec/codec"
	"github.com/arloliu/zerovec/compress"
	"github.com/arloliu/zerovec/errs"
	"github.com/arloliu/zerovec/format"
	"github.com/arloliu/zerovec/internal/hash"
	"github.com/arloliu/zerovec/internal/logging"
	"github.com/arloliu/zerovec/internal/options"
	"github.com/arloliu/zerovec/internal/pool"
	"github.com/arloliu/zerovec/section"
)

// FixedSource is a fixed-width sequence that can be written to a frame.
//
// *vec.Fixed and vec.FixedView both satisfy it.
type FixedSource[T any] interface {
	Len() int
	Bytes() []byte
	Codec() codec.Fixed[T]
}

// VarSource is a variable-width sequence that can be written to a frame.
//
// *vec.Var and vec.VarView both satisfy it.
type VarSource[T any] interface {
	Len() int
	Bytes() []byte
	Codec() codec.Var[T]
}

// Encoder writes sequences as frames.
//
// An Encoder is immutable after construction and safe for concurrent use.
type Encoder struct {
	compression format.CompressionType
	checksum    bool
	codec       compress.Codec
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression sets the payload compression. The default is
// format.CompressionNone, which keeps decoded sequences zero-copy.
func WithCompression(ct format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		if !ct.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, uint8(ct))
		}
		e.compression = ct

		return nil
	})
}

// WithChecksum enables or disables the xxHash64 payload checksum.
// It is enabled by default.
func WithChecksum(enabled bool) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.checksum = enabled
	})
}

// NewEncoder creates an Encoder.
//
// Returns:
//   - *Encoder: encoder ready for use
//   - error: wrapping errs.ErrInvalidCompression for an unknown compression type
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		compression: format.CompressionNone,
		checksum:    true,
	}

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	c, err := compress.CreateCodec(e.compression, "frame")
	if err != nil {
		return nil, err
	}
	e.codec = c

	return e, nil
}

// Compression returns the configured payload compression.
func (e *Encoder) Compression() format.CompressionType { return e.compression }

// Checksum reports whether frames carry a payload checksum.
func (e *Encoder) Checksum() bool { return e.checksum }

// EncodeFixed returns s as a new frame.
func EncodeFixed[T any](e *Encoder, s FixedSource[T]) ([]byte, error) {
	hdr, err := fixedHeader(s)
	if err != nil {
		return nil, err
	}

	return e.encode(hdr, s.Len(), s.Bytes())
}

// EncodeVar returns s as a new frame.
func EncodeVar[T any](e *Encoder, s VarSource[T]) ([]byte, error) {
	return e.encode(section.NewFrameHeader(format.KindVar), s.Len(), s.Bytes())
}

// EncodeFixedTo writes s as a frame to w.
//
// Returns:
//   - int64: number of bytes written
//   - error: encoding or write error
func EncodeFixedTo[T any](w io.Writer, e *Encoder, s FixedSource[T]) (int64, error) {
	hdr, err := fixedHeader(s)
	if err != nil {
		return 0, err
	}

	return e.encodeTo(w, hdr, s.Len(), s.Bytes())
}

// EncodeVarTo writes s as a frame to w.
func EncodeVarTo[T any](w io.Writer, e *Encoder, s VarSource[T]) (int64, error) {
	return e.encodeTo(w, section.NewFrameHeader(format.KindVar), s.Len(), s.Bytes())
}

func fixedHeader[T any](s FixedSource[T]) (*section.FrameHeader, error) {
	width := s.Codec().Size()
	if width <= 0 || width > section.MaxElemWidth {
		return nil, fmt.Errorf("%w: element width %d cannot be recorded in a frame", errs.ErrInvalidHeaderFlags, width)
	}

	hdr := section.NewFrameHeader(format.KindFixed)
	hdr.ElemWidth = uint8(width)

	return hdr, nil
}

func (e *Encoder) encode(hdr *section.FrameHeader, count int, raw []byte) ([]byte, error) {
	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	if err := e.build(buf, hdr, count, raw); err != nil {
		return nil, err
	}

	return bytes.Clone(buf.Bytes()), nil
}

func (e *Encoder) encodeTo(w io.Writer, hdr *section.FrameHeader, count int, raw []byte) (int64, error) {
	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	if err := e.build(buf, hdr, count, raw); err != nil {
		return 0, err
	}

	return buf.WriteTo(w)
}

// build fills in hdr and assembles the frame in buf.
func (e *Encoder) build(buf *pool.ByteBuffer, hdr *section.FrameHeader, count int, raw []byte) error {
	if uint64(len(raw)) > section.MaxPayloadSize {
		return fmt.Errorf("%w: %d payload bytes", errs.ErrPayloadTooLarge, len(raw))
	}

	stored, err := e.codec.Compress(raw)
	if err != nil {
		return fmt.Errorf("compress frame payload: %w", err)
	}
	if uint64(len(stored)) > section.MaxPayloadSize {
		return fmt.Errorf("%w: %d compressed bytes", errs.ErrPayloadTooLarge, len(stored))
	}

	hdr.Flag.SetCompression(e.compression)
	hdr.Flag.SetChecksum(e.checksum)
	hdr.Count = uint32(count)
	hdr.RawLength = uint32(len(raw))
	hdr.StoredLength = uint32(len(stored))
	if e.checksum {
		hdr.Checksum = hash.Checksum(raw)
	}

	buf.Grow(section.HeaderSize + len(stored))
	if err := hdr.WriteToSlice(buf.ExtendOrGrow(section.HeaderSize)); err != nil {
		return err
	}
	buf.MustWrite(stored)

	if ce := logging.Logger().Check(zap.DebugLevel, "frame encoded"); ce != nil {
		ce.Write(
			zap.Stringer("kind", hdr.Flag.Kind()),
			zap.Uint32("count", hdr.Count),
			zap.Uint32("raw", hdr.RawLength),
			zap.Uint32("stored", hdr.StoredLength),
			zap.Stringer("compression", e.compression),
		)
	}

	return nil
}
