package section

import (
	"fmt"

	"github.com/arloliu/zerovec/errs"
	"github.com/arloliu/zerovec/format"
)

// FrameFlag represents the packed flag field at the start of a frame header.
type FrameFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the sequence kind, 0 means fixed-width, 1 means variable-width.
	// Bit 1 is the checksum flag, 1 means the header carries an xxHash64 of the payload.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are magic number to identify the frame format:
	//   - 0xEC10 (0b1110_1100_0001_0000): sequence frame format v1
	Options uint16

	// CompressionType is an enum indicating the compression applied to the payload.
	CompressionType uint8
}

// NewFrameFlag creates a new FrameFlag for the given sequence kind, with no
// compression and no checksum.
func NewFrameFlag(kind format.SequenceKind) FrameFlag {
	flag := FrameFlag{
		Options:         MagicSequenceV1Opt,
		CompressionType: uint8(format.CompressionNone),
	}
	flag.SetKind(kind)

	return flag
}

// Kind returns the sequence kind from bit 0 of Options.
func (f FrameFlag) Kind() format.SequenceKind {
	if f.Options&KindMask != 0 {
		return format.KindVar
	}

	return format.KindFixed
}

// SetKind sets the sequence kind in bit 0 of Options.
func (f *FrameFlag) SetKind(kind format.SequenceKind) {
	if kind == format.KindVar {
		f.Options |= KindMask
	} else {
		f.Options &^= KindMask
	}
}

// HasChecksum returns whether the header carries a payload checksum.
func (f FrameFlag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// SetChecksum enables or disables the payload checksum.
func (f *FrameFlag) SetChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// GetMagicNumber returns the magic number from the Options field.
func (f FrameFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Compression returns the payload compression type.
func (f FrameFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *FrameFlag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// IsValidMagicNumber checks if the magic number is valid.
func (f FrameFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicSequenceV1Opt
}

// Validate checks if the flag contains valid values.
func (f FrameFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagic, f.GetMagicNumber())
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set in 0x%04X", errs.ErrInvalidHeaderFlags, f.Options)
	}

	if !f.Compression().IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, f.CompressionType)
	}

	return nil
}
