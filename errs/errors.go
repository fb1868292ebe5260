// Package errs defines the sentinel errors returned by zerovec.
//
// Call sites wrap these values with context using fmt.Errorf("%w: ...").
// Use errors.Is to test for a specific condition.
package errs

import "errors"

// Element and sequence parsing errors.
var (
	// ErrInvalidLength means a fixed-width buffer is not a whole multiple of the element width.
	ErrInvalidLength = errors.New("invalid buffer length")
	// ErrInvalidValue means an element's bytes are outside the logical type's valid domain.
	ErrInvalidValue = errors.New("invalid element value")
	// ErrIndexTableCorrupt means a variable-width index table is malformed.
	ErrIndexTableCorrupt = errors.New("index table corrupt")
	// ErrPayloadTooLarge means a variable-width payload cannot be addressed by the index width.
	ErrPayloadTooLarge = errors.New("payload too large")
	// ErrNotSorted means an input expected to be ascending was not.
	ErrNotSorted = errors.New("input not sorted")
	// ErrInvalidIndexWidth means a requested index width is not 1, 2 or 4.
	ErrInvalidIndexWidth = errors.New("invalid index width")
)

// Frame errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	ErrKindMismatch       = errors.New("sequence kind mismatch")
	ErrWidthMismatch      = errors.New("element width mismatch")
	ErrCountMismatch      = errors.New("element count mismatch")
	ErrPayloadSize        = errors.New("payload size mismatch")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
	ErrInvalidCompression = errors.New("invalid compression type")
)
