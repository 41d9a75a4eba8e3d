package logger

import (
	"os"
	"path/filepath"

	config "github.com/inference-gateway/keychord/config"
	zap "go.uber.org/zap"
	zapcore "go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// Init builds the process logger. Debug output is enabled by --verbose or
// logging.debug; logging.dir redirects output to keychord.log in that directory.
func Init(verbose bool, cfg *config.Config) {
	level := zapcore.WarnLevel
	if verbose || (cfg != nil && cfg.Logging.Debug) {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = "json"
	zcfg.EncoderConfig.TimeKey = "time"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	if cfg != nil && cfg.Logging.Dir != "" {
		if err := os.MkdirAll(cfg.Logging.Dir, 0755); err == nil {
			zcfg.OutputPaths = []string{filepath.Join(cfg.Logging.Dir, "keychord.log")}
		}
	}

	l, err := zcfg.Build()
	if err != nil {
		l = zap.NewNop()
	}

	logger = l
	zap.ReplaceGlobals(l)
}

// Close flushes buffered log entries
func Close() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// Debug logs a debug message
func Debug(msg string, keysAndValues ...any) {
	zap.S().Debugw(msg, keysAndValues...)
}

// Info logs an info message
func Info(msg string, keysAndValues ...any) {
	zap.S().Infow(msg, keysAndValues...)
}

// Warn logs a warning message
func Warn(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

// Error logs an error message
func Error(msg string, keysAndValues ...any) {
	zap.S().Errorw(msg, keysAndValues...)
}
