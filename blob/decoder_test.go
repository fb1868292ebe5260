package blob

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arloliu/zerovec/codec"
	"github.com/arloliu/zerovec/endian"
	"github.com/arloliu/zerovec/errs"
	"github.com/arloliu/zerovec/format"
	"github.com/arloliu/zerovec/internal/logging"
	"github.com/arloliu/zerovec/section"
	"github.com/arloliu/zerovec/vec"
)

func fixedFrame(t *testing.T, opts ...EncoderOption) []byte {
	t.Helper()
	seq := vec.FixedFromSlice[uint16](codec.Uint16{}, []uint16{211, 281, 421, 461})
	frame, err := EncodeFixed[uint16](newTestEncoder(t, opts...), seq)
	require.NoError(t, err)

	return frame
}

func varFrame(t *testing.T, vals []string, opts ...EncoderOption) []byte {
	t.Helper()
	seq, err := vec.VarFromSlice[string](codec.String{}, vals)
	require.NoError(t, err)
	frame, err := EncodeVar[string](newTestEncoder(t, opts...), seq)
	require.NoError(t, err)

	return frame
}

func TestDecode_RoundTrip(t *testing.T) {
	strs := testStrings(300)
	ints := []int64{-1 << 40, -7, 0, 3, 1 << 50}

	for _, ct := range allCompressions {
		for _, checksum := range []bool{true, false} {
			opts := []EncoderOption{WithCompression(ct), WithChecksum(checksum)}
			t.Run(ct.String(), func(t *testing.T) {
				fixed := vec.FixedFromSlice[int64](codec.Int64{}, ints)
				frame, err := EncodeFixed[int64](newTestEncoder(t, opts...), fixed)
				require.NoError(t, err)

				gotFixed, err := DecodeFixed[int64](codec.Int64{}, frame)
				require.NoError(t, err)
				require.Equal(t, ints, gotFixed.ToSlice())
				require.False(t, gotFixed.IsOwned())
				require.True(t, vec.Equal[int64](fixed, gotFixed))

				gotVar, err := DecodeVar[string](codec.String{}, varFrame(t, strs, opts...))
				require.NoError(t, err)
				require.Equal(t, strs, gotVar.ToSlice())
				require.False(t, gotVar.IsOwned())

				pos, found := gotVar.BinarySearch(strs[123])
				require.True(t, found)
				require.Equal(t, 123, pos)
			})
		}
	}
}

func TestDecode_Empty(t *testing.T) {
	for _, ct := range allCompressions {
		t.Run(ct.String(), func(t *testing.T) {
			enc := newTestEncoder(t, WithCompression(ct))

			frame, err := EncodeFixed[uint16](enc, vec.NewFixed[uint16](codec.Uint16{}))
			require.NoError(t, err)
			require.Len(t, frame, section.HeaderSize)
			fixed, err := DecodeFixed[uint16](codec.Uint16{}, frame)
			require.NoError(t, err)
			require.True(t, fixed.IsEmpty())

			frame, err = EncodeVar[string](enc, vec.NewVar[string](codec.String{}))
			require.NoError(t, err)
			strs, err := DecodeVar[string](codec.String{}, frame)
			require.NoError(t, err)
			require.True(t, strs.IsEmpty())
		})
	}
}

func TestDecode_UncompressedBorrowsFrame(t *testing.T) {
	frame := fixedFrame(t)
	seq, err := DecodeFixed[uint16](codec.Uint16{}, frame)
	require.NoError(t, err)
	require.Same(t, &frame[section.PayloadOffset], &seq.Bytes()[0])

	// Promotion detaches the sequence from the frame.
	before := bytes.Clone(frame)
	require.True(t, seq.Push(500))
	require.Equal(t, before, frame)
	require.Equal(t, 5, seq.Len())

	strs := []string{"xyz", "ab", "c"}
	frame = varFrame(t, strs)
	vs, err := DecodeVar[string](codec.String{}, frame)
	require.NoError(t, err)
	require.Same(t, &frame[section.PayloadOffset], &vs.Bytes()[0])
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		frame  func(t *testing.T) []byte
		decode func(frame []byte) error
		want   error
	}{
		{
			name:   "short header",
			frame:  func(t *testing.T) []byte { return fixedFrame(t)[:10] },
			decode: decodeUint16,
			want:   errs.ErrInvalidHeaderSize,
		},
		{
			name: "bad magic",
			frame: func(t *testing.T) []byte {
				f := fixedFrame(t)
				f[1] ^= 0xFF
				return f
			},
			decode: decodeUint16,
			want:   errs.ErrInvalidMagic,
		},
		{
			name: "reserved bits",
			frame: func(t *testing.T) []byte {
				f := fixedFrame(t)
				f[0] |= 0x04
				return f
			},
			decode: decodeUint16,
			want:   errs.ErrInvalidHeaderFlags,
		},
		{
			name: "unknown compression",
			frame: func(t *testing.T) []byte {
				f := fixedFrame(t)
				f[2] = 0x9
				return f
			},
			decode: decodeUint16,
			want:   errs.ErrInvalidCompression,
		},
		{
			name:   "var frame as fixed",
			frame:  func(t *testing.T) []byte { return varFrame(t, []string{"a"}) },
			decode: decodeUint16,
			want:   errs.ErrKindMismatch,
		},
		{
			name:   "fixed frame as var",
			frame:  func(t *testing.T) []byte { return fixedFrame(t) },
			decode: decodeString,
			want:   errs.ErrKindMismatch,
		},
		{
			name:  "width mismatch",
			frame: func(t *testing.T) []byte { return fixedFrame(t) },
			decode: func(frame []byte) error {
				_, err := DecodeFixed[uint32](codec.Uint32{}, frame)
				return err
			},
			want: errs.ErrWidthMismatch,
		},
		{
			name:   "truncated payload",
			frame:  func(t *testing.T) []byte { f := fixedFrame(t); return f[:len(f)-1] },
			decode: decodeUint16,
			want:   errs.ErrPayloadSize,
		},
		{
			name: "raw length mismatch",
			frame: func(t *testing.T) []byte {
				f := fixedFrame(t, WithCompression(format.CompressionS2))
				endian.Wire().PutUint32(f[8:12], 10)
				return f
			},
			decode: decodeUint16,
			want:   errs.ErrPayloadSize,
		},
		{
			name: "payload tampered",
			frame: func(t *testing.T) []byte {
				f := fixedFrame(t)
				f[section.PayloadOffset+3] ^= 0x01
				return f
			},
			decode: decodeUint16,
			want:   errs.ErrChecksumMismatch,
		},
		{
			name: "count mismatch",
			frame: func(t *testing.T) []byte {
				f := fixedFrame(t)
				endian.Wire().PutUint32(f[4:8], 5)
				return f
			},
			decode: decodeUint16,
			want:   errs.ErrCountMismatch,
		},
		{
			name: "corrupt index table",
			frame: func(t *testing.T) []byte {
				f := varFrame(t, []string{"ab", "cd"}, WithChecksum(false))
				// first end offset past the payload
				f[section.PayloadOffset+vec.VarHeaderSize] = 0x7F
				return f
			},
			decode: decodeString,
			want:   errs.ErrIndexTableCorrupt,
		},
		{
			name: "odd fixed payload",
			frame: func(t *testing.T) []byte {
				f := fixedFrame(t, WithChecksum(false))
				f = append(f, 0x00)
				endian.Wire().PutUint32(f[8:12], 9)
				endian.Wire().PutUint32(f[12:16], 9)
				return f
			},
			decode: decodeUint16,
			want:   errs.ErrInvalidLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode(tt.frame(t))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_HugeRawLength(t *testing.T) {
	for _, ct := range allCompressions[1:] {
		t.Run(ct.String(), func(t *testing.T) {
			frame := varFrame(t, []string{"a"}, WithCompression(ct))
			endian.Wire().PutUint32(frame[8:12], 1<<30)

			_, err := DecodeVar[string](codec.String{}, frame)
			require.ErrorIs(t, err, errs.ErrPayloadTooLarge)

			// Past the cap, the codec itself refuses before allocating.
			var before, after runtime.MemStats
			runtime.ReadMemStats(&before)
			_, err = DecodeVar[string](codec.String{}, frame, WithMaxRawLength(1<<30))
			runtime.ReadMemStats(&after)
			require.ErrorIs(t, err, errs.ErrPayloadSize)
			require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(16<<20))
		})
	}
}

func TestDecode_MaxRawLengthOption(t *testing.T) {
	frame := varFrame(t, testStrings(100), WithCompression(format.CompressionS2))
	hdr, err := ReadHeader(frame)
	require.NoError(t, err)

	_, err = DecodeVar[string](codec.String{}, frame, WithMaxRawLength(int(hdr.RawLength)))
	require.NoError(t, err)

	_, err = DecodeVar[string](codec.String{}, frame, WithMaxRawLength(int(hdr.RawLength)-1))
	require.ErrorIs(t, err, errs.ErrPayloadTooLarge)

	_, err = DecodeVar[string](codec.String{}, frame, WithMaxRawLength(-1))
	require.Error(t, err)

	// The cap does not apply to uncompressed frames.
	plain := varFrame(t, testStrings(100))
	_, err = DecodeVar[string](codec.String{}, plain, WithMaxRawLength(1))
	require.NoError(t, err)
}

func TestDecode_InvalidElements(t *testing.T) {
	seq, err := vec.VarFromSlice[[]byte](codec.Bytes{}, [][]byte{[]byte("ok"), {0xFF, 0xFE}})
	require.NoError(t, err)
	frame, err := EncodeVar[[]byte](newTestEncoder(t), seq)
	require.NoError(t, err)

	// The bytes are valid for codec.Bytes but not UTF-8 strings.
	_, err = DecodeVar[string](codec.String{}, frame)
	require.ErrorIs(t, err, errs.ErrInvalidValue)
}

func TestDecode_LogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logging.Set(zap.New(core))
	t.Cleanup(func() { logging.Set(nil) })

	_, err := DecodeFixed[uint16](codec.Uint16{}, []byte{1, 2, 3})
	require.Error(t, err)

	entries := logs.FilterMessage("frame decode failed").All()
	require.Len(t, entries, 1)
	require.Contains(t, entries[0].ContextMap()["error"], "invalid header size")
}

func decodeUint16(frame []byte) error {
	_, err := DecodeFixed[uint16](codec.Uint16{}, frame)
	return err
}

func decodeString(frame []byte) error {
	_, err := DecodeVar[string](codec.String{}, frame)
	return err
}
