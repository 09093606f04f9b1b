// Package logger is a thin zap facade. Call sites pass a ctx with every
// message so trace correlation can be added in one place later.
package logger

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field aliases so call sites never import zap directly.
type Field = zap.Field

var (
	String = zap.String
	Int    = zap.Int
	ErrorF = zap.Error
)

var global = &Logger{l: zap.NewNop()}

type Logger struct {
	l *zap.Logger
}

// Init builds the process-wide logger. level is a zap level name
// ("debug", "info", ...); asJSON selects the production JSON encoder,
// otherwise a console encoder for local runs.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger.Init: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if asJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), lvl)
	global = &Logger{l: zap.New(core, zap.AddCaller())}
	return nil
}

func L() *Logger { return global }

func With(fields ...Field) *Logger {
	return &Logger{l: global.l.With(fields...)}
}

func (lg *Logger) With(fields ...Field) *Logger {
	return &Logger{l: lg.l.With(fields...)}
}

func (lg *Logger) Debug(_ context.Context, msg string, fields ...Field) {
	lg.l.Debug(msg, fields...)
}

func (lg *Logger) Info(_ context.Context, msg string, fields ...Field) {
	lg.l.Info(msg, fields...)
}

func (lg *Logger) Warn(_ context.Context, msg string, fields ...Field) {
	lg.l.Warn(msg, fields...)
}

func (lg *Logger) Error(_ context.Context, msg string, fields ...Field) {
	lg.l.Error(msg, fields...)
}

func Debug(ctx context.Context, msg string, fields ...Field) { global.Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { global.Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { global.Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { global.Error(ctx, msg, fields...) }

func Sync() { _ = global.l.Sync() }
