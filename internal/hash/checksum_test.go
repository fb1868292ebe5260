package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		sum  uint64
	}{
		{"empty", nil, 0xef46db3751d8e999},
		{"short", []byte("test"), 0x4fdcca5ddb678139},
		{"longer", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.sum, Checksum(tt.data))
			require.True(t, Verify(tt.data, tt.sum))
			require.False(t, Verify(tt.data, tt.sum^1))
		})
	}
}

func TestChecksum_DetectsSingleBitFlip(t *testing.T) {
	data := []byte{0xD3, 0x00, 0x19, 0x01, 0xA5, 0x01, 0xCD, 0x01}
	sum := Checksum(data)

	for i := range data {
		flipped := append([]byte(nil), data...)
		flipped[i] ^= 0x01
		require.NotEqual(t, sum, Checksum(flipped), "byte %d", i)
	}
}
