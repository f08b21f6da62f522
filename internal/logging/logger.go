// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a new default logger
// it will need to be closed with
// ```
// defer logger.Desugar().Sync()
// ```
// to make sure all has been piped out before terminating
func NewLogger(l string) *Logger {
	var lvl string

	val := strings.ToLower(l)

	switch val {
	case "debug", "error", "warn", "info":
		lvl = val
	default:
		lvl = "info"
	}

	c := zap.NewProductionConfig()

	c.Level = zap.NewAtomicLevelAt(zapcore.Level(levelToInt(lvl)))
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: logger.Sugar(),
		security:      NewSecurityLogger(logger),
	}
}

func levelToInt(l string) int {
	switch l {
	case "debug":
		return int(zapcore.DebugLevel)
	case "warn":
		return int(zapcore.WarnLevel)
	case "error":
		return int(zapcore.ErrorLevel)
	default:
		return int(zapcore.InfoLevel)
	}
}
