package types

import (
	"go.uber.org/zap"
)

// Logger wraps a sugared zap logger so callers depend on one local type.
type Logger struct {
	*zap.SugaredLogger
}

func NewLogger(l *zap.Logger) *Logger {
	return &Logger{SugaredLogger: l.Sugar()}
}
