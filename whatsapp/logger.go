package whatsapp

import (
	waLog "go.mau.fi/whatsmeow/util/log"
	"go.uber.org/zap"
)

type zapWaLogger struct {
	sugar *zap.SugaredLogger
}

// NewWaLogger routes whatsmeow logs into zap.
func NewWaLogger(logger *zap.Logger) waLog.Logger {
	return &zapWaLogger{sugar: logger.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (l *zapWaLogger) Errorf(msg string, args ...interface{}) { l.sugar.Errorf(msg, args...) }
func (l *zapWaLogger) Warnf(msg string, args ...interface{})  { l.sugar.Warnf(msg, args...) }
func (l *zapWaLogger) Infof(msg string, args ...interface{})  { l.sugar.Infof(msg, args...) }
func (l *zapWaLogger) Debugf(msg string, args ...interface{}) { l.sugar.Debugf(msg, args...) }

func (l *zapWaLogger) Sub(module string) waLog.Logger {
	return &zapWaLogger{sugar: l.sugar.Named(module)}
}
