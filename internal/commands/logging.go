package commands

import (
	"github.com/stahnma/gh-repopick/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a JSON file logger. The terminal belongs to the picker,
// so nothing is logged to stdout or stderr; without a usable file the logger
// discards everything.
func NewLogger(cfg config.Config) *zap.Logger {
	if cfg.LogFile == "" {
		return zap.NewNop()
	}
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}
	if cfg.DebugMode {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
