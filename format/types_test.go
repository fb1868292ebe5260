package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType(t *testing.T) {
	tests := []struct {
		c     CompressionType
		name  string
		valid bool
	}{
		{CompressionNone, "None", true},
		{CompressionZstd, "Zstd", true},
		{CompressionS2, "S2", true},
		{CompressionLZ4, "LZ4", true},
		{0, "Unknown", false},
		{0x5, "Unknown", false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.name, tt.c.String())
		require.Equal(t, tt.valid, tt.c.IsValid())
	}
}

func TestSequenceKind(t *testing.T) {
	require.Equal(t, "Fixed", KindFixed.String())
	require.Equal(t, "Var", KindVar.String())
	require.Equal(t, "Unknown", SequenceKind(7).String())
}
