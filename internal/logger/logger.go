package logger

import (
	"go.uber.org/zap"

	"github.com/abhisek/pmpquiz/internal/config"
)

// New builds the application logger. The terminal belongs to the UI
// while the program runs, so logs go to the configured file; with no
// file configured the logger is a no-op.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}
	return zc.Build()
}
