// internal/logging/logger.go
package logging

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go-stealth/internal/config"
)

var l = zap.NewNop()

// Init builds the process logger. Every entry carries the run session id.
func Init(cfg config.LoggerSettings) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	l = logger.With(zap.String("session", uuid.NewString()))
	zap.RedirectStdLog(l)
	return l, nil
}

// L returns the process logger, a no-op one before Init.
func L() *zap.Logger {
	return l
}

// Set replaces the process logger (tests use zaptest/observer loggers).
func Set(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	l = logger
}

// ParseLevel accepts debug, info, warn and error in any case. An empty
// string means info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("logger level %q invalid, must be one of: debug, info, warn, error", s)
	}
}
