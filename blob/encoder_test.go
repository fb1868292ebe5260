package blob

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/zerovec/codec"
	"github.com/arloliu/zerovec/errs"
	"github.com/arloliu/zerovec/format"
	"github.com/arloliu/zerovec/internal/hash"
	"github.com/arloliu/zerovec/section"
	"github.com/arloliu/zerovec/vec"
)

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func newTestEncoder(t *testing.T, opts ...EncoderOption) *Encoder {
	t.Helper()
	enc, err := NewEncoder(opts...)
	require.NoError(t, err)

	return enc
}

func testStrings(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("locale/en-US/key-%05d", i)
	}

	return out
}

func TestNewEncoder_Defaults(t *testing.T) {
	enc := newTestEncoder(t)
	require.Equal(t, format.CompressionNone, enc.Compression())
	require.True(t, enc.Checksum())
}

func TestNewEncoder_Options(t *testing.T) {
	enc := newTestEncoder(t, WithCompression(format.CompressionS2), WithChecksum(false))
	require.Equal(t, format.CompressionS2, enc.Compression())
	require.False(t, enc.Checksum())

	_, err := NewEncoder(WithCompression(format.CompressionType(0x7)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestEncodeFixed_Header(t *testing.T) {
	seq := vec.FixedFromSlice[uint16](codec.Uint16{}, []uint16{211, 281, 421, 461})
	frame, err := EncodeFixed[uint16](newTestEncoder(t), seq)
	require.NoError(t, err)
	require.Len(t, frame, section.HeaderSize+8)

	hdr, err := ReadHeader(frame)
	require.NoError(t, err)
	require.Equal(t, format.KindFixed, hdr.Flag.Kind())
	require.Equal(t, format.CompressionNone, hdr.Flag.Compression())
	require.True(t, hdr.Flag.HasChecksum())
	require.Equal(t, uint8(2), hdr.ElemWidth)
	require.Equal(t, uint32(4), hdr.Count)
	require.Equal(t, uint32(8), hdr.RawLength)
	require.Equal(t, uint32(8), hdr.StoredLength)
	require.Equal(t, hash.Checksum(seq.Bytes()), hdr.Checksum)
	require.Equal(t, seq.Bytes(), frame[section.PayloadOffset:])
}

func TestEncodeVar_Header(t *testing.T) {
	seq, err := vec.VarFromSlice[string](codec.String{}, testStrings(50))
	require.NoError(t, err)

	frame, err := EncodeVar[string](newTestEncoder(t, WithChecksum(false)), seq)
	require.NoError(t, err)

	hdr, err := ReadHeader(frame)
	require.NoError(t, err)
	require.Equal(t, format.KindVar, hdr.Flag.Kind())
	require.False(t, hdr.Flag.HasChecksum())
	require.Equal(t, uint8(0), hdr.ElemWidth)
	require.Equal(t, uint32(50), hdr.Count)
	require.Equal(t, uint32(seq.ByteLen()), hdr.RawLength)
	require.Zero(t, hdr.Checksum)
}

func TestEncode_CompressionShrinksRepetitivePayload(t *testing.T) {
	seq, err := vec.VarFromSlice[string](codec.String{}, testStrings(1000))
	require.NoError(t, err)

	for _, ct := range allCompressions[1:] {
		t.Run(ct.String(), func(t *testing.T) {
			frame, err := EncodeVar[string](newTestEncoder(t, WithCompression(ct)), seq)
			require.NoError(t, err)

			hdr, err := ReadHeader(frame)
			require.NoError(t, err)
			require.Equal(t, ct, hdr.Flag.Compression())
			require.Less(t, hdr.StoredLength, hdr.RawLength)
		})
	}
}

func TestEncode_AcceptsViews(t *testing.T) {
	seq := vec.FixedFromSlice[int64](codec.Int64{}, []int64{-3, 0, 9})
	enc := newTestEncoder(t)

	fromSeq, err := EncodeFixed[int64](enc, seq)
	require.NoError(t, err)
	fromView, err := EncodeFixed[int64](enc, seq.AsView())
	require.NoError(t, err)
	require.Equal(t, fromSeq, fromView)
}

func TestEncodeTo(t *testing.T) {
	enc := newTestEncoder(t, WithCompression(format.CompressionLZ4))

	fixed := vec.FixedFromSlice[uint32](codec.Uint32{}, []uint32{1, 2, 3, 4, 5})
	want, err := EncodeFixed[uint32](enc, fixed)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := EncodeFixedTo[uint32](&buf, enc, fixed)
	require.NoError(t, err)
	require.Equal(t, int64(len(want)), n)
	require.Equal(t, want, buf.Bytes())

	strs, err := vec.VarFromSlice[string](codec.String{}, []string{"a", "bc", "def"})
	require.NoError(t, err)
	want, err = EncodeVar[string](enc, strs)
	require.NoError(t, err)

	buf.Reset()
	n, err = EncodeVarTo[string](&buf, enc, strs)
	require.NoError(t, err)
	require.Equal(t, int64(len(want)), n)
	require.Equal(t, want, buf.Bytes())
}

type wideCodec struct{ codec.Uint8 }

func (wideCodec) Size() int { return 300 }

func TestEncodeFixed_WidthTooLarge(t *testing.T) {
	seq := vec.NewFixed[uint8](wideCodec{})
	_, err := EncodeFixed[uint8](newTestEncoder(t), seq)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
}
