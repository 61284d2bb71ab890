// Package logger provides the zap-backed implementation of ports.Logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger routes structured log output through uber-go/zap.
type ZapLogger struct {
	l *zap.SugaredLogger
}

// New creates a ZapLogger for the given level name (debug, info, warn,
// error). Unknown names fall back to info; verbose forces debug.
func New(level string, verbose bool) *ZapLogger {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}
	if verbose {
		parsed = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	core, err := cfg.Build(zap.WithCaller(false))
	if err != nil {
		core = zap.NewNop()
	}
	return &ZapLogger{l: core.Sugar()}
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() *ZapLogger {
	return &ZapLogger{l: zap.NewNop().Sugar()}
}

func (z *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	z.l.Debugw(msg, flatten(fields)...)
}

func (z *ZapLogger) Info(msg string, fields map[string]interface{}) {
	z.l.Infow(msg, flatten(fields)...)
}

func (z *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	z.l.Warnw(msg, flatten(fields)...)
}

func (z *ZapLogger) Error(msg string, err error, fields map[string]interface{}) {
	kv := flatten(fields)
	if err != nil {
		kv = append(kv, "error", err.Error())
	}
	z.l.Errorw(msg, kv...)
}

func flatten(fields map[string]interface{}) []interface{} {
	kv := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		kv = append(kv, k, v)
	}
	return kv
}
