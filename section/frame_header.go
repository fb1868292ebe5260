package section

import (
	"fmt"

	"github.com/arloliu/zerovec/endian"
	"github.com/arloliu/zerovec/errs"
	"github.com/arloliu/zerovec/format"
)

// FrameHeader represents the fixed-size header at the start of a persisted sequence frame.
type FrameHeader struct {
	// Flag is a packed field for the kind, options, compression and magic number.
	Flag FrameFlag // byte offset 0-2
	// ElemWidth is the element width of a fixed-width sequence, 0 for variable-width.
	ElemWidth uint8 // byte offset 3
	// Count is the number of elements in the sequence.
	Count uint32 // byte offset 4-7
	// RawLength is the length of the uncompressed sequence bytes.
	RawLength uint32 // byte offset 8-11
	// StoredLength is the length of the payload as stored after the header.
	StoredLength uint32 // byte offset 12-15
	// Checksum is the xxHash64 of the uncompressed sequence bytes, 0 when disabled.
	Checksum uint64 // byte offset 16-23
}

// NewFrameHeader creates a new FrameHeader for the given sequence kind.
// Lengths, count and checksum are set by the encoder.
func NewFrameHeader(kind format.SequenceKind) *FrameHeader {
	return &FrameHeader{
		Flag: NewFrameFlag(kind),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 24 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 24 bytes, or flag validation errors
func (h *FrameHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	engine := endian.Wire()

	h.Flag.Options = engine.Uint16(data[0:2])
	h.Flag.CompressionType = data[2]
	h.ElemWidth = data[3]
	h.Count = engine.Uint32(data[4:8])
	h.RawLength = engine.Uint32(data[8:12])
	h.StoredLength = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	switch h.Flag.Kind() {
	case format.KindFixed:
		if h.ElemWidth == 0 {
			return fmt.Errorf("%w: fixed-width frame with zero element width", errs.ErrInvalidHeaderFlags)
		}
	case format.KindVar:
		if h.ElemWidth != 0 {
			return fmt.Errorf("%w: variable-width frame with element width %d", errs.ErrInvalidHeaderFlags, h.ElemWidth)
		}
	}

	return nil
}

// WriteToSlice serializes the header into the first 24 bytes of b.
func (h *FrameHeader) WriteToSlice(b []byte) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(b), HeaderSize)
	}

	engine := endian.Wire()

	engine.PutUint16(b[0:2], h.Flag.Options)
	b[2] = h.Flag.CompressionType
	b[3] = h.ElemWidth
	engine.PutUint32(b[4:8], h.Count)
	engine.PutUint32(b[8:12], h.RawLength)
	engine.PutUint32(b[12:16], h.StoredLength)
	engine.PutUint64(b[16:24], h.Checksum)

	return nil
}

// Bytes serializes the FrameHeader into a new byte slice.
func (h *FrameHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	_ = h.WriteToSlice(b)

	return b
}

// ParseFrameHeader parses a FrameHeader from the start of a byte slice.
//
// Parameters:
//   - data: Byte slice starting with a header (must be at least 24 bytes)
//
// Returns:
//   - FrameHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseFrameHeader(data []byte) (FrameHeader, error) {
	if len(data) < HeaderSize {
		return FrameHeader{}, fmt.Errorf("%w: got %d bytes, want at least %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h := FrameHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return FrameHeader{}, err
	}

	return h, nil
}
