package codec

import (
	"cmp"
	"math"
	"unsafe"

	"github.com/arloliu/zerovec/endian"
)

// Integer is the set of integer types with a plain fixed-width encoding.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Int is the plain little-endian codec for integer types.
//
// The wire width equals the in-memory size of T. Every bit pattern is legal,
// so Int also serves enum-like types whose every value is defined. For enums
// with a restricted domain use Enum.
type Int[T Integer] struct{}

// Shorthands for the built-in integer codecs.
type (
	Uint8  = Int[uint8]
	Uint16 = Int[uint16]
	Uint32 = Int[uint32]
	Uint64 = Int[uint64]
	Int8   = Int[int8]
	Int16  = Int[int16]
	Int32  = Int[int32]
	Int64  = Int[int64]
)

var (
	_ Fixed[uint16]  = Int[uint16]{}
	_ Fixed[int64]   = Int[int64]{}
	_ Plain          = Int[uint8]{}
	_ Fixed[float64] = Float64{}
)

// Size returns the in-memory size of T in bytes.
func (Int[T]) Size() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Encode writes v little-endian into dst[:Size()].
func (c Int[T]) Encode(dst []byte, v T) {
	putUint(dst, c.Size(), uint64(v)) //nolint:gosec
}

// Decode reads a little-endian value from src[:Size()].
func (c Int[T]) Decode(src []byte) T {
	return T(getUint(src, c.Size())) //nolint:gosec
}

// Validate accepts every bit pattern.
func (Int[T]) Validate([]byte) error { return nil }

func (Int[T]) Compare(a, b T) int { return cmp.Compare(a, b) }

// IsPlain reports true: element validation can be skipped.
func (Int[T]) IsPlain() bool { return true }

// CompareKey orders key against an encoded element without a full decode of the sequence.
func (c Int[T]) CompareKey(key T, wire []byte) int {
	return cmp.Compare(key, c.Decode(wire))
}

func (c Int[T]) CompareWire(a, b []byte) int {
	return cmp.Compare(c.Decode(a), c.Decode(b))
}

// Float32 is the plain codec for IEEE 754 single-precision values.
//
// Encoding is canonical: negative zero is written as positive zero and every
// NaN is written as the same quiet NaN. Ordering follows cmp.Compare, so NaN
// sorts before every other value.
type Float32 struct{}

func (Float32) Size() int { return 4 }

// Encode writes the canonical bits of v.
func (Float32) Encode(dst []byte, v float32) {
	switch {
	case v == 0:
		v = 0
	case v != v:
		v = float32(math.NaN())
	}
	endian.Wire().PutUint32(dst, math.Float32bits(v))
}

// Decode returns the stored bits unchanged, so non-canonical zeros and NaNs
// read back as written.
func (Float32) Decode(src []byte) float32 {
	return math.Float32frombits(endian.Wire().Uint32(src))
}

func (Float32) Validate([]byte) error { return nil }

// Compare orders values with cmp.Compare.
func (Float32) Compare(a, b float32) int { return cmp.Compare(a, b) }

func (Float32) IsPlain() bool { return true }

// Float64 is the plain codec for IEEE 754 double-precision values.
//
// Encoding canonicalizes zero and NaN the same way as Float32.
type Float64 struct{}

func (Float64) Size() int { return 8 }

// Encode writes the canonical bits of v.
func (Float64) Encode(dst []byte, v float64) {
	switch {
	case v == 0:
		v = 0
	case math.IsNaN(v):
		v = math.NaN()
	}
	endian.Wire().PutUint64(dst, math.Float64bits(v))
}

// Decode returns the stored bits unchanged.
func (Float64) Decode(src []byte) float64 {
	return math.Float64frombits(endian.Wire().Uint64(src))
}

func (Float64) Validate([]byte) error { return nil }

func (Float64) Compare(a, b float64) int { return cmp.Compare(a, b) }

func (Float64) IsPlain() bool { return true }

func putUint(dst []byte, size int, v uint64) {
	engine := endian.Wire()
	switch size {
	case 1:
		dst[0] = byte(v)
	case 2:
		engine.PutUint16(dst, uint16(v)) //nolint:gosec
	case 4:
		engine.PutUint32(dst, uint32(v)) //nolint:gosec
	case 8:
		engine.PutUint64(dst, v)
	}
}

func getUint(src []byte, size int) uint64 {
	engine := endian.Wire()
	switch size {
	case 1:
		return uint64(src[0])
	case 2:
		return uint64(engine.Uint16(src))
	case 4:
		return uint64(engine.Uint32(src))
	default:
		return engine.Uint64(src)
	}
}
