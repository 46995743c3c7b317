package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap logger writing to stderr. At the default level only
// warnings and errors surface, so log lines do not fight the interactive
// prompt or the progress bar; verbose lowers the threshold to debug.
func New(verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core)
}

// MustSync flushes buffered log entries, ignoring the EINVAL stderr gives
// on some platforms.
func MustSync(log *zap.Logger) {
	_ = log.Sync()
}
