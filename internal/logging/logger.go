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
	case "debug", "info", "warn", "error":
		lvl = val
	default:
		lvl = "error"
	}

	c := zap.NewProductionConfig()

	c.Level, _ = zap.ParseAtomicLevel(lvl)
	c.EncoderConfig.TimeKey = "timestamp"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	lgr, err := c.Build()
	if err != nil {
		panic(err)
	}

	logger := new(Logger)
	logger.SugaredLogger = lgr.Sugar()
	logger.security = newSecurityLogger(lgr)

	logger.Debugf("Logger created with level %s", lvl)

	return logger
}
