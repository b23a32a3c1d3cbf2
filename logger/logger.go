// Package logger holds the process wide zap logger. Until Initialize is called
// every call is discarded.
package logger

import (
	"sync/atomic"

	"github.com/expki/go-vectormath/config"
	"go.uber.org/zap"
)

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// Initialize replaces the global logger with a production logger at the configured level.
func Initialize(cfg config.Config) error {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = cfg.Log.Zap()
	l, err := zapConfig.Build()
	if err != nil {
		return err
	}
	Set(l)
	return nil
}

// Set replaces the global logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	global.Store(l)
}

func Logger() *zap.Logger {
	return global.Load()
}

func Sugar() *zap.SugaredLogger {
	return global.Load().Sugar()
}

// Sync flushes any buffered log entries.
func Sync() error {
	return global.Load().Sync()
}
