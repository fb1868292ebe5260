package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/zerovec/errs"
	"github.com/arloliu/zerovec/format"
)

func TestNewFrameFlag(t *testing.T) {
	flag := NewFrameFlag(format.KindFixed)
	require.True(t, flag.IsValidMagicNumber())
	require.Equal(t, format.KindFixed, flag.Kind())
	require.Equal(t, format.CompressionNone, flag.Compression())
	require.False(t, flag.HasChecksum())
	require.NoError(t, flag.Validate())

	flag.SetKind(format.KindVar)
	require.Equal(t, format.KindVar, flag.Kind())
	require.Equal(t, uint16(MagicSequenceV1Opt|KindMask), flag.Options)

	flag.SetChecksum(true)
	require.True(t, flag.HasChecksum())
	flag.SetChecksum(false)
	require.False(t, flag.HasChecksum())
	require.Equal(t, uint16(MagicSequenceV1Opt), flag.GetMagicNumber())
}

func TestFrameFlag_Validate(t *testing.T) {
	flag := NewFrameFlag(format.KindVar)
	flag.Options |= 0x0004
	require.ErrorIs(t, flag.Validate(), errs.ErrInvalidHeaderFlags)

	flag = NewFrameFlag(format.KindVar)
	flag.SetCompression(format.CompressionType(9))
	require.ErrorIs(t, flag.Validate(), errs.ErrInvalidCompression)

	flag = FrameFlag{Options: 0xEA10, CompressionType: uint8(format.CompressionNone)}
	require.ErrorIs(t, flag.Validate(), errs.ErrInvalidMagic)
}

func TestFrameHeader_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		header *FrameHeader
	}{
		{
			name: "fixed uncompressed",
			header: &FrameHeader{
				Flag:         NewFrameFlag(format.KindFixed),
				ElemWidth:    2,
				Count:        4,
				RawLength:    8,
				StoredLength: 8,
			},
		},
		{
			name: "var compressed with checksum",
			header: func() *FrameHeader {
				h := NewFrameHeader(format.KindVar)
				h.Flag.SetCompression(format.CompressionZstd)
				h.Flag.SetChecksum(true)
				h.Count = 3
				h.RawLength = 11
				h.StoredLength = 20
				h.Checksum = 0x69275f7f7ee59dbd

				return h
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.header.Bytes()
			require.Len(t, data, HeaderSize)

			parsed, err := ParseFrameHeader(append(data, 0xAA, 0xBB))
			require.NoError(t, err)
			require.Equal(t, *tt.header, parsed)
		})
	}
}

func TestFrameHeader_Layout(t *testing.T) {
	h := NewFrameHeader(format.KindFixed)
	h.ElemWidth = 2
	h.Count = 0x01020304
	h.RawLength = 8
	h.StoredLength = 8
	h.Checksum = 0x1122334455667788

	b := h.Bytes()
	require.Equal(t, []byte{0x10, 0xEC}, b[0:2])
	require.Equal(t, byte(format.CompressionNone), b[2])
	require.Equal(t, byte(2), b[3])
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b[4:8])
	require.Equal(t, []byte{0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}, b[16:24])
}

func TestFrameHeader_ParseErrors(t *testing.T) {
	_, err := ParseFrameHeader([]byte{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	h := &FrameHeader{}
	require.ErrorIs(t, h.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidHeaderSize)
	require.ErrorIs(t, h.Parse(make([]byte, HeaderSize)), errs.ErrInvalidMagic)

	fixed := NewFrameHeader(format.KindFixed)
	_, err = ParseFrameHeader(fixed.Bytes())
	require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags, "fixed frame needs an element width")

	v := NewFrameHeader(format.KindVar)
	v.ElemWidth = 4
	_, err = ParseFrameHeader(v.Bytes())
	require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)

	require.ErrorIs(t, v.WriteToSlice(make([]byte, 10)), errs.ErrInvalidHeaderSize)
}
