package logger

import (
	"github.com/aleister1102/stalewatch/internal/config"
	"github.com/rs/zerolog"
)

// New creates a new logger instance from application log configuration
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(fromLogConfig(cfg)).Build()
}

// NewWithRunID creates a new logger instance tagged with a run ID
func NewWithRunID(cfg config.LogConfig, runID string) (zerolog.Logger, error) {
	return NewLoggerBuilder().
		WithConfig(fromLogConfig(cfg)).
		WithRunID(runID).
		Build()
}

// fromLogConfig converts application log configuration into builder configuration
func fromLogConfig(cfg config.LogConfig) LoggerConfig {
	loggerConfig := DefaultLoggerConfig()
	loggerConfig.Level = ParseLogLevel(cfg.LogLevel)
	loggerConfig.Format = ParseLogFormat(cfg.LogFormat)

	if cfg.LogFile != "" {
		loggerConfig.EnableFile = true
		loggerConfig.FilePath = cfg.LogFile
	}
	if cfg.MaxLogSizeMB > 0 {
		loggerConfig.MaxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		loggerConfig.MaxBackups = cfg.MaxLogBackups
	}

	return loggerConfig
}
