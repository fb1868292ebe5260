package assert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrue(t *testing.T) {
	require.NotPanics(t, func() { True(true, "holds") })

	if Enabled {
		require.Panics(t, func() { True(false, "broken") })
		require.Panics(t, func() { Unreachable("here") })
	} else {
		require.NotPanics(t, func() { True(false, "broken") })
		require.NotPanics(t, func() { Unreachable("here") })
	}
}
