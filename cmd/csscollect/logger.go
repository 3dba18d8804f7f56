package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the console logger. Level "none" disables logging, "normal"
// logs per-file progress and "debug" traces every tag and group.
func newLogger(level string, useColors bool) (*zap.Logger, error) {
	var enabled zapcore.Level
	switch level {
	case "", "none":
		return zap.NewNop(), nil
	case "normal":
		enabled = zapcore.InfoLevel
	case "debug":
		enabled = zapcore.DebugLevel
	default:
		return nil, fmt.Errorf("unknown log level %q (want none, normal or debug)", level)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if useColors {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), enabled)
	return zap.New(core), nil
}
