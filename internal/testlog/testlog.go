// Package testlog builds zap loggers for tests: a console core on stdout for
// humans, tee'd with an in-memory observer core for assertions.
package testlog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func New() (*zap.Logger, *observer.ObservedLogs) {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	observedCore, logs := observer.New(zap.DebugLevel)
	return zap.New(zapcore.NewTee(consoleCore, observedCore)), logs
}
