// Package logger holds the process-wide zap logger. Init once from main;
// everything else reaches it through L().
package logger

import (
	"sync"

	"go.uber.org/zap"

	"github.com/mtharrison/fitlog/backend/config"
)

var (
	global *zap.Logger
	once   sync.Once
)

// Init builds the global logger. Production gets JSON output, everything
// else the development console encoder.
func Init() *zap.Logger {
	once.Do(func() {
		var (
			l   *zap.Logger
			err error
		)
		if config.IsProduction() {
			l, err = zap.NewProduction()
		} else {
			l, err = zap.NewDevelopment()
		}
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
		global = l
	})
	return global
}

// L returns the global logger, initializing it on first use.
func L() *zap.Logger {
	if global == nil {
		return Init()
	}
	return global
}

// Sync flushes buffered log entries. Call before exit.
func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}
