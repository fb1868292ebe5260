package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_DefaultsToNop(t *testing.T) {
	require.NotNil(t, Logger())
	require.False(t, Logger().Core().Enabled(zapcore.ErrorLevel))
}

func TestSet(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(nil) })

	Logger().Debug("promoted", zap.Int("elements", 3))
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "promoted", logs.All()[0].Message)

	Set(nil)
	require.False(t, Logger().Core().Enabled(zapcore.ErrorLevel))
}
