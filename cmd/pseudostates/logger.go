package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is the process logger, installed as zap's global logger so the
// shared warn-once sink writes through it too.
var logger = zap.NewNop()

// setupLogger builds a console logger on stderr. Verbose enables debug
// output, quiet silences everything but errors.
func setupLogger(verbose, quiet bool) error {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if enableColorOutput(os.Stderr) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	level := zapcore.InfoLevel
	switch {
	case quiet:
		level = zapcore.ErrorLevel
	case verbose:
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level)
	logger = zap.New(core)
	zap.ReplaceGlobals(logger)

	return nil
}

// syncLogger flushes buffered log entries
func syncLogger() {
	_ = logger.Sync()
}

// enableColorOutput reports whether f is a terminal
func enableColorOutput(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
