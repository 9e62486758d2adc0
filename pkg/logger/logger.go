package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs a sugared zap logger for the named service. Output is
// JSON on stdout at info level and above.
func New(service string) *zap.SugaredLogger {
	config := zap.NewProductionEncoderConfig()
	config.TimeKey = "timestamp"
	config.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(config),
		zapcore.AddSync(os.Stdout),
		zap.NewAtomicLevelAt(zapcore.InfoLevel),
	)

	return zap.New(core).Named(service).Sugar()
}

// NewNop returns a logger that discards everything. Useful in tests and
// for callers that don't care about diagnostics.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
