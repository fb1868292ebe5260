package vec

import (
	"fmt"
	"math"

	"github.com/arloliu/zerovec/codec"
	"github.com/arloliu/zerovec/endian"
	"github.com/arloliu/zerovec/errs"
)

// Variable-width wire layout, all integers little-endian:
//
//	[0]              index width w: 1, 2 or 4 bytes per offset
//	[1:5]            element count n
//	[5 : 5+n*w]      index table: end offset of each element within the payload
//	[5+n*w :]        payload: concatenated element bytes
//
// Element i occupies payload[end(i-1) : end(i)] with end(-1) = 0. Offsets are
// non-decreasing and the last equals the payload length. The empty sequence
// is the empty byte string.
const (
	// VarHeaderSize is the size of the width byte plus the element count.
	VarHeaderSize = 5

	widthOffset = 0
	countOffset = 1
)

// varLayout locates the regions of a variable-width buffer.
type varLayout struct {
	width        int
	count        int
	payloadStart int
}

// end returns the end offset of element i within the payload.
func (l varLayout) end(b []byte, i int) int {
	off := VarHeaderSize + i*l.width
	return int(endian.UintN(b[off:off+l.width], l.width))
}

// bounds returns the payload-relative byte range of element i.
func (l varLayout) bounds(b []byte, i int) (int, int) {
	start := 0
	if i > 0 {
		start = l.end(b, i-1)
	}

	return start, l.end(b, i)
}

// element returns the bytes of element i.
func (l varLayout) element(b []byte, i int) []byte {
	start, end := l.bounds(b, i)
	return b[l.payloadStart+start : l.payloadStart+end : l.payloadStart+end]
}

func (l varLayout) payloadLen(b []byte) int {
	return len(b) - l.payloadStart
}

// readLayout reads the layout of a buffer that has already been validated.
func readLayout(b []byte) varLayout {
	if len(b) == 0 {
		return varLayout{width: 1}
	}

	width := int(b[widthOffset])
	count := int(endian.Wire().Uint32(b[countOffset:VarHeaderSize]))

	return varLayout{width: width, count: count, payloadStart: VarHeaderSize + count*width}
}

// parseLayout validates the structure of an untrusted buffer.
//
// Returns an error wrapping errs.ErrIndexTableCorrupt when the header is
// truncated, the width is unsupported, the index table overruns the buffer,
// offsets decrease, or the last offset does not match the payload length.
func parseLayout(b []byte) (varLayout, error) {
	if len(b) == 0 {
		return varLayout{width: 1}, nil
	}

	if len(b) < VarHeaderSize {
		return varLayout{}, fmt.Errorf("%w: %d bytes is shorter than the %d byte header",
			errs.ErrIndexTableCorrupt, len(b), VarHeaderSize)
	}

	width := int(b[widthOffset])
	if !validWidth(width) {
		return varLayout{}, fmt.Errorf("%w: unsupported index width %d", errs.ErrIndexTableCorrupt, width)
	}

	count := uint64(endian.Wire().Uint32(b[countOffset:VarHeaderSize]))
	indexEnd := uint64(VarHeaderSize) + count*uint64(width)
	if indexEnd > uint64(len(b)) {
		return varLayout{}, fmt.Errorf("%w: index table of %d entries overruns %d byte buffer",
			errs.ErrIndexTableCorrupt, count, len(b))
	}

	l := varLayout{width: width, count: int(count), payloadStart: int(indexEnd)} //nolint:gosec
	payloadLen := l.payloadLen(b)

	prev := 0
	for i := range l.count {
		end := l.end(b, i)
		if end < prev {
			return varLayout{}, fmt.Errorf("%w: offset %d of element %d precedes offset %d",
				errs.ErrIndexTableCorrupt, end, i, prev)
		}
		if end > payloadLen {
			return varLayout{}, fmt.Errorf("%w: offset %d of element %d is outside %d byte payload",
				errs.ErrIndexTableCorrupt, end, i, payloadLen)
		}
		prev = end
	}

	if prev != payloadLen {
		return varLayout{}, fmt.Errorf("%w: index table ends at %d but payload has %d bytes",
			errs.ErrIndexTableCorrupt, prev, payloadLen)
	}

	return l, nil
}

// validateVar checks both the layout and every element of an untrusted buffer.
func validateVar[T any](c codec.Var[T], b []byte) (varLayout, error) {
	l, err := parseLayout(b)
	if err != nil {
		return varLayout{}, err
	}

	if codec.IsPlain(c) {
		return l, nil
	}

	for i := range l.count {
		if err := c.Validate(l.element(b, i)); err != nil {
			return varLayout{}, fmt.Errorf("element %d: %w", i, err)
		}
	}

	return l, nil
}

func validWidth(w int) bool {
	return w == 1 || w == 2 || w == 4
}

// widthFor returns the narrowest index width able to address payloadLen bytes.
func widthFor(payloadLen int) int {
	switch {
	case payloadLen <= math.MaxUint8:
		return 1
	case payloadLen <= math.MaxUint16:
		return 2
	default:
		return 4
	}
}

// maxPayload is the largest payload any index width can address.
const maxPayload = math.MaxUint32

// encodeVarRaw builds a variable-width buffer from already encoded elements.
func encodeVarRaw(elems [][]byte, width int) []byte {
	if len(elems) == 0 {
		return nil
	}

	total := 0
	for _, e := range elems {
		total += len(e)
	}

	payloadStart := VarHeaderSize + len(elems)*width
	b := make([]byte, payloadStart+total)
	writeHeader(b, width, len(elems))

	end := 0
	for i, e := range elems {
		copy(b[payloadStart+end:], e)
		end += len(e)
		putEnd(b, width, i, end)
	}

	return b
}

// encodeVar builds a variable-width buffer from logical values in one pass.
//
// A width of 0 selects the narrowest width for the payload. A forced width
// too narrow for the payload fails with errs.ErrPayloadTooLarge.
func encodeVar[T any](c codec.Var[T], vals []T, width int) ([]byte, error) {
	if len(vals) == 0 {
		return nil, nil
	}

	lens := make([]int, len(vals))
	total := 0
	for i, v := range vals {
		lens[i] = c.EncodedLen(v)
		total += lens[i]
	}

	if uint64(total) > maxPayload || uint64(len(vals)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes in %d elements", errs.ErrPayloadTooLarge, total, len(vals))
	}

	need := widthFor(total)
	if width == 0 {
		width = need
	}
	if width < need {
		return nil, fmt.Errorf("%w: %d byte payload needs index width %d, got %d",
			errs.ErrPayloadTooLarge, total, need, width)
	}

	payloadStart := VarHeaderSize + len(vals)*width
	b := make([]byte, payloadStart+total)
	writeHeader(b, width, len(vals))

	end := 0
	for i, v := range vals {
		c.Encode(b[payloadStart+end:payloadStart+end+lens[i]], v)
		end += lens[i]
		putEnd(b, width, i, end)
	}

	return b, nil
}

func writeHeader(b []byte, width, count int) {
	b[widthOffset] = byte(width)
	endian.Wire().PutUint32(b[countOffset:VarHeaderSize], uint32(count)) //nolint:gosec
}

func putEnd(b []byte, width, i, end int) {
	off := VarHeaderSize + i*width
	endian.PutUintN(b[off:off+width], width, uint32(end)) //nolint:gosec
}
