package logger

import (
	"go.uber.org/zap"
	"sync"
)

var lock sync.RWMutex
var instance *zap.Logger

// CreateLogger builds the process logger from cfg. It panics when cfg cannot be built.
func CreateLogger(cfg zap.Config) {
	tmp, err := cfg.Build()
	if err != nil {
		panic("log init error:" + err.Error())
	}
	SetLogger(tmp)
}

// SetLogger replaces the process logger.
func SetLogger(l *zap.Logger) {
	lock.Lock()
	defer lock.Unlock()
	instance = l
}

// Logger returns the process logger, or a no-op logger if none was created.
func Logger() *zap.Logger {
	lock.RLock()
	defer lock.RUnlock()
	if instance == nil {
		return zap.NewNop()
	}
	return instance
}

func Sugar() *zap.SugaredLogger {
	return Logger().Sugar()
}

// ConfigFor returns the zap config used by the command line for the given level.
func ConfigFor(level string, dev bool) (zap.Config, error) {
	cfg := zap.NewProductionConfig()
	if dev {
		cfg = zap.NewDevelopmentConfig()
	}
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return cfg, err
	}
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	return cfg, nil
}
