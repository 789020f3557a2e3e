package logging

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global atomic.Pointer[zap.SugaredLogger]

// Init builds the process-wide JSON logger. Production uses info level;
// every other environment logs at debug.
func Init(appEnv string) error {
	var config zap.Config
	if appEnv == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}
	config.Encoding = "json"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	global.Store(logger.Sugar())
	return nil
}

// L returns the global logger. Before Init it discards everything.
func L() *zap.SugaredLogger {
	if l := global.Load(); l != nil {
		return l
	}
	return zap.NewNop().Sugar()
}

// Set replaces the global logger.
func Set(l *zap.SugaredLogger) {
	global.Store(l)
}

// Sync flushes buffered entries.
func Sync() error {
	if l := global.Load(); l != nil {
		return l.Sync()
	}
	return nil
}
