package logger

import (
	"strings"

	"github.com/rs/zerolog"
)

// ParseLogLevel converts a string log level to a zerolog.Level.
// Unknown or empty values fall back to info.
func ParseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}

// ParseLogFormat converts a string log format to a LogFormat.
// Unknown or empty values fall back to console.
func ParseLogFormat(format string) LogFormat {
	switch strings.ToLower(format) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	case "console", "":
		return FormatConsole
	default:
		return FormatConsole
	}
}
