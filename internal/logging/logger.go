// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

// Logger is a thin wrapper over the zap sugared logger carrying a security sub-logger.
type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

func levelFromString(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.ErrorLevel
	}
}

// NewLogger creates a JSON production logger at the given level, unknown levels fall back to error.
func NewLogger(l string) *Logger {
	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(levelFromString(l))
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	c.EncoderConfig.TimeKey = "@timestamp"

	lgr, err := c.Build()
	if err != nil {
		panic(err)
	}

	logger := new(Logger)
	logger.SugaredLogger = lgr.Sugar()
	logger.security = newSecurityLogger(lgr)

	return logger
}
