// Package mlog builds the zap loggers used by the soll command line
// tool.
package mlog

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig configures the logger. The zero value logs info and
// above in the human readable console format.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string `yaml:"level"`

	// Production switches to the JSON encoder with sampling.
	Production bool `yaml:"production"`
}

var global atomic.Pointer[zap.Logger]

func init() { global.Store(zap.NewNop()) }

// NewLogger builds a logger from the config.
func NewLogger(lc *LogConfig) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if lc.Level != "" {
		var err error
		if lvl, err = zapcore.ParseLevel(lc.Level); err != nil {
			return nil, fmt.Errorf("invalid log level %q, %w", lc.Level, err)
		}
	}

	var cfg zap.Config
	if lc.Production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}

// L returns the process wide logger. It discards everything until
// SetLogger is called.
func L() *zap.Logger { return global.Load() }

// SetLogger replaces the process wide logger. A nil logger restores
// the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	global.Store(l)
}
