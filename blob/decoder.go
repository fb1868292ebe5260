package blob

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/zerovec/codec"
	"github.com/arloliu/zerovec/compress"
	"github.com/arloliu/zerovec/errs"
	"github.com/arloliu/zerovec/format"
	"github.com/arloliu/zerovec/internal/hash"
	"github.com/arloliu/zerovec/internal/logging"
	"github.com/arloliu/zerovec/internal/options"
	"github.com/arloliu/zerovec/section"
	"github.com/arloliu/zerovec/vec"
)

// DefaultMaxRawLength is the largest uncompressed payload a compressed frame
// may declare unless WithMaxRawLength says otherwise.
const DefaultMaxRawLength = 256 << 20

type decodeConfig struct {
	maxRawLength uint64
}

// DecoderOption configures DecodeFixed and DecodeVar.
type DecoderOption = options.Option[*decodeConfig]

// WithMaxRawLength caps the uncompressed size a compressed frame may declare.
// The cap is checked before any output buffer is allocated. Uncompressed
// frames are not affected since their payload is already in memory.
func WithMaxRawLength(n int) DecoderOption {
	return options.New(func(c *decodeConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: negative raw length limit %d", errs.ErrPayloadTooLarge, n)
		}
		c.maxRawLength = uint64(n)

		return nil
	})
}

func newDecodeConfig(opts []DecoderOption) (*decodeConfig, error) {
	cfg := &decodeConfig{maxRawLength: DefaultMaxRawLength}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DecodeFixed loads a fixed-width sequence from a frame.
//
// The returned sequence is borrowed: over frame itself when the payload is
// uncompressed, over a freshly decompressed buffer otherwise.
//
// Returns:
//   - *vec.Fixed[T]: borrowed sequence
//   - error: wrapping one of the errs frame or element sentinels
func DecodeFixed[T any](c codec.Fixed[T], frame []byte, opts ...DecoderOption) (*vec.Fixed[T], error) {
	cfg, err := newDecodeConfig(opts)
	if err != nil {
		return nil, err
	}

	hdr, raw, err := openFrame(frame, format.KindFixed, c.Size(), cfg)
	if err != nil {
		return nil, logDecodeError(err)
	}

	s, err := vec.ParseFixed(c, raw)
	if err != nil {
		return nil, logDecodeError(err)
	}
	if err := checkCount(hdr, s.Len()); err != nil {
		return nil, logDecodeError(err)
	}

	return s, nil
}

// DecodeVar loads a variable-width sequence from a frame.
//
// The returned sequence is borrowed: over frame itself when the payload is
// uncompressed, over a freshly decompressed buffer otherwise.
func DecodeVar[T any](c codec.Var[T], frame []byte, opts ...DecoderOption) (*vec.Var[T], error) {
	cfg, err := newDecodeConfig(opts)
	if err != nil {
		return nil, err
	}

	hdr, raw, err := openFrame(frame, format.KindVar, 0, cfg)
	if err != nil {
		return nil, logDecodeError(err)
	}

	s, err := vec.ParseVar(c, raw)
	if err != nil {
		return nil, logDecodeError(err)
	}
	if err := checkCount(hdr, s.Len()); err != nil {
		return nil, logDecodeError(err)
	}

	return s, nil
}

// ReadHeader parses and validates the header of a frame without touching its payload.
func ReadHeader(frame []byte) (section.FrameHeader, error) {
	return section.ParseFrameHeader(frame)
}

// openFrame validates the header against the expected kind and width and
// returns the uncompressed, checksum-verified sequence bytes.
func openFrame(frame []byte, kind format.SequenceKind, width int, cfg *decodeConfig) (section.FrameHeader, []byte, error) {
	hdr, err := section.ParseFrameHeader(frame)
	if err != nil {
		return hdr, nil, err
	}

	if got := hdr.Flag.Kind(); got != kind {
		return hdr, nil, fmt.Errorf("%w: frame holds %s, want %s", errs.ErrKindMismatch, got, kind)
	}
	if kind == format.KindFixed && int(hdr.ElemWidth) != width {
		return hdr, nil, fmt.Errorf("%w: frame width %d, codec width %d", errs.ErrWidthMismatch, hdr.ElemWidth, width)
	}

	stored := frame[section.PayloadOffset:]
	if uint64(len(stored)) != uint64(hdr.StoredLength) {
		return hdr, nil, fmt.Errorf("%w: %d payload bytes, header says %d", errs.ErrPayloadSize, len(stored), hdr.StoredLength)
	}

	ct := hdr.Flag.Compression()
	if ct != format.CompressionNone && uint64(hdr.RawLength) > cfg.maxRawLength {
		return hdr, nil, fmt.Errorf("%w: frame declares %d raw bytes, limit %d",
			errs.ErrPayloadTooLarge, hdr.RawLength, cfg.maxRawLength)
	}

	dc, err := compress.GetCodec(ct)
	if err != nil {
		return hdr, nil, err
	}

	raw, err := dc.Decompress(stored, int(hdr.RawLength))
	if err != nil {
		return hdr, nil, fmt.Errorf("%w: %w", errs.ErrPayloadSize, err)
	}

	if hdr.Flag.HasChecksum() && !hash.Verify(raw, hdr.Checksum) {
		return hdr, nil, fmt.Errorf("%w: want %#016x", errs.ErrChecksumMismatch, hdr.Checksum)
	}

	return hdr, raw, nil
}

func checkCount(hdr section.FrameHeader, n int) error {
	if uint64(n) != uint64(hdr.Count) {
		return fmt.Errorf("%w: sequence holds %d elements, header says %d", errs.ErrCountMismatch, n, hdr.Count)
	}

	return nil
}

func logDecodeError(err error) error {
	logging.Logger().Debug("frame decode failed", zap.Error(err))
	return err
}
