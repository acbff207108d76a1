// Package logging configures the shared zap logger for the warefleet
// processes. Every process builds one root logger at startup and hands
// named child loggers ("registry", "warehouse", "robot", "grpc") to its
// components.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format selects the log output encoding.
type Format string

const (
	// FormatConsole is a human-readable single-line encoding.
	FormatConsole Format = "console"
	// FormatJSON is a structured JSON encoding.
	FormatJSON Format = "json"
)

// New builds the root logger for a process. Level accepts the usual zap
// level names (debug, info, warn, error); format is "console" or "json".
func New(level string, format Format) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	switch format {
	case FormatJSON:
		cfg.Encoding = "json"
	case FormatConsole, "":
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return cfg.Build()
}

// Nop returns a logger that discards everything. Used by tests and as a
// fallback when a component is constructed without a logger.
func Nop() *zap.Logger {
	return zap.NewNop()
}
