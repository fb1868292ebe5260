package section

import (
	"math"

	"github.com/arloliu/zerovec/format"
)

const (
	// Bit masks
	KindMask         = 0x0001 // Mask for sequence kind bit (bit 0)
	ChecksumMask     = 0x0002 // Mask for checksum present bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicSequenceV1Opt = 0xEC10 // MagicSequenceV1Opt is a version 1 magic number for sequence frames.

	KindFixedBit = uint16(format.KindFixed) // KindFixedBit marks a fixed-width frame.
	KindVarBit   = uint16(format.KindVar)   // KindVarBit marks a variable-width frame.
)

// offset and section sizes in the frame
const (
	HeaderSize     = 24             // fixed header size in bytes
	PayloadOffset  = HeaderSize     // byte offset where the payload starts
	MaxElemWidth   = math.MaxUint8  // largest fixed element width a header can record
	MaxPayloadSize = math.MaxUint32 // largest payload a header can record
)
