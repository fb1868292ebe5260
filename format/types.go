// Package format holds the enumerations recorded in persisted sequence frames.
package format

type (
	CompressionType uint8
	SequenceKind    uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	KindFixed SequenceKind = 0x0 // KindFixed is a fixed-width sequence.
	KindVar   SequenceKind = 0x1 // KindVar is a variable-width sequence with an index table.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is a known compression type.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (k SequenceKind) String() string {
	switch k {
	case KindFixed:
		return "Fixed"
	case KindVar:
		return "Var"
	default:
		return "Unknown"
	}
}
