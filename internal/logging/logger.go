// Package logging holds the zap logger shared by zerovec packages.
package logging

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger returns the current logger. It is a no-op logger until Set is called.
func Logger() *zap.Logger {
	return logger.Load()
}

// Set installs l as the package logger. A nil logger restores the no-op logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}
