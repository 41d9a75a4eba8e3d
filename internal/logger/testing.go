package logger

import (
	"context"

	zap "go.uber.org/zap"
	observer "go.uber.org/zap/zaptest/observer"
)

// TestLogger returns a debug-level logger whose entries can be asserted on
func TestLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

// TestContext returns a context carrying a TestLogger
func TestContext() (context.Context, *observer.ObservedLogs) {
	l, logs := TestLogger()
	return ContextWithLogger(context.Background(), l), logs
}

// NopContext returns a context carrying a no-op logger
func NopContext() context.Context {
	return ContextWithLogger(context.Background(), zap.NewNop())
}
