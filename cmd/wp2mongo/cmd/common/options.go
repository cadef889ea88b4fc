package common

import (
	"go.uber.org/zap"

	"wp2mongo/internal/app/logging"
	"wp2mongo/internal/config"
)

// Options carries what every command needs: the configuration read at
// startup and the global flags.
type Options struct {
	Config  *config.Config
	EnvFile string
	Verbose bool
}

// Logger builds the logger for one run, tagged with a fresh run id
func (o *Options) Logger() *zap.Logger {
	logger := logging.WithRunID(logging.MustNewLogger(o.Verbose))
	if o.EnvFile != "" {
		logger.Debug("Loaded environment variables", zap.String("file", o.EnvFile))
	}
	return logger
}
