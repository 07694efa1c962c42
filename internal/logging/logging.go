package logging

import (
	"go.uber.org/zap"
)

// New builds a console logger. Debug mode uses the development config,
// otherwise production config at info level. The logger is returned rather
// than stored in a package global so callers own its lifetime.
func New(debug bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
