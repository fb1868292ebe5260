// Package section defines the binary header of a persisted zerovec frame.
//
// A frame wraps the exact wire bytes of one sequence so that a data pipeline
// can store it and load it back without re-encoding:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (24 bytes, fixed)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (StoredLength bytes)                            │
//	│  - Sequence bytes, optionally compressed                │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
// All header fields are little-endian:
//
//	Bytes  | Field          | Type   | Description
//	-------|----------------|--------|----------------------------------
//	0-1    | Options        | uint16 | Kind, checksum bit, magic number
//	2      | Compression    | uint8  | format.CompressionType
//	3      | ElemWidth      | uint8  | Fixed element width, 0 for var
//	4-7    | Count          | uint32 | Number of elements
//	8-11   | RawLength      | uint32 | Uncompressed sequence length
//	12-15  | StoredLength   | uint32 | Payload length after the header
//	16-23  | Checksum       | uint64 | xxHash64 of the sequence bytes
//
// # Flag Format
//
//	Options (16 bits):
//	  Bit 0: Sequence kind (0=fixed, 1=var)
//	  Bit 1: Checksum present
//	  Bits 2-3: Reserved (must be 0)
//	  Bits 4-15: Magic number (0xEC10)
//
// Example:
//
//	header := section.NewFrameHeader(format.KindVar)
//	header.Flag.SetCompression(format.CompressionZstd)
//	header.Flag.SetChecksum(true)
//	buf := header.Bytes()
//
//	parsed, err := section.ParseFrameHeader(buf)
//
// Most users should use the blob package instead of this package directly.
package section
