package main

import (
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a sugared console logger that writes to w.
func newLogger(verbosity string, w io.Writer) (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	// Timestamp format (ISO8601) and time zone (UTC)
	config.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format("2006-01-02T15:04:05Z0700"))
	}

	level, err := zapcore.ParseLevel(verbosity)
	if err != nil {
		return nil, err
	}
	config.Level.SetLevel(level)

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(config.EncoderConfig),
		zapcore.AddSync(w),
		config.Level,
	)
	return zap.New(core).Sugar(), nil
}
