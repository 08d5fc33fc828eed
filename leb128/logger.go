package leb128

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the leb128 package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the leb128 package's logger.
// This must be called before any codec operations.
func SetLogger(l *zap.Logger) {
	logger = l
}

func logDecodeFailure(w Width, consumed int, err error) {
	if ce := Logger().Check(zap.DebugLevel, "leb128 decode failed"); ce != nil {
		ce.Write(
			zap.Stringer("width", w),
			zap.Int("consumed", consumed),
			zap.Error(err),
		)
	}
}
