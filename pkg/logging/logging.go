// Package logging holds the logger shared by the fractal packages.
//
// Nothing is logged by default. Binaries install a logger with SetLogger.
package logging

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger replaces the shared logger. Passing nil silences logging again.
// It is safe to call while other goroutines are logging.
//
// Levels in use:
//   - Debug: per-frame diagnostics such as grid size, workers and timings.
//   - Info: lifecycle events such as an image being written.
//   - Warn: parameters that will render but probably not as intended.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the shared logger.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}

// New builds the logger used by the command line tools: human-readable
// development output when verbose, console lines at info level otherwise.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
