package rc

import (
	"go.uber.org/zap"
)

var logger *zap.Logger

// Logger returns the rc package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// SetLogger configures the rc package's logger. Block lifecycle events
// are logged at debug level. This must be called before any handle
// operations.
func SetLogger(l *zap.Logger) {
	logger = l
}
