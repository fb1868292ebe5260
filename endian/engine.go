// Package endian provides byte order utilities for zerovec wire data.
//
// Every zerovec wire buffer is little-endian regardless of the host byte order,
// so a buffer produced on one machine can be borrowed unchanged on any other.
// Decoders never reinterpret memory through pointer casts; they assemble values
// byte by byte through the engine, which is portable across alignment-sensitive
// targets and performs the byte swap on big-endian hosts.
//
// # Basic Usage
//
//	engine := endian.Wire()
//	v := engine.Uint16(b[0:2])
//	buf = engine.AppendUint32(buf, 42)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Wire returns the engine used for all zerovec wire data.
func Wire() EndianEngine {
	return binary.LittleEndian
}

// Uint24 decodes a little-endian 24-bit unsigned value from b[0:3].
//
// encoding/binary has no 3-byte accessor; 3-byte wire elements (scalar values,
// compact offsets) go through this helper instead.
func Uint24(b []byte) uint32 {
	_ = b[2] // bounds check hint to compiler
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

// PutUint24 encodes the low 24 bits of v into b[0:3] in little-endian order.
func PutUint24(b []byte, v uint32) {
	_ = b[2]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
}

// UintN decodes a little-endian unsigned value of width 1, 2 or 4 bytes.
//
// Panics if width is not one of the supported widths.
func UintN(b []byte, width int) uint32 {
	switch width {
	case 1:
		return uint32(b[0])
	case 2:
		return uint32(binary.LittleEndian.Uint16(b))
	case 4:
		return binary.LittleEndian.Uint32(b)
	default:
		panic("endian: unsupported width")
	}
}

// PutUintN encodes v into b using a little-endian width of 1, 2 or 4 bytes.
//
// The caller must ensure v fits in width bytes.
func PutUintN(b []byte, width int, v uint32) {
	switch width {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v)) //nolint:gosec
	case 4:
		binary.LittleEndian.PutUint32(b, v)
	default:
		panic("endian: unsupported width")
	}
}
