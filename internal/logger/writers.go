package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterFactory creates log output writers based on configuration
type WriterFactory struct{}

// NewWriterFactory creates a new writer factory
func NewWriterFactory() *WriterFactory {
	return &WriterFactory{}
}

// CreateConsoleWriter creates a writer for stderr output
func (wf *WriterFactory) CreateConsoleWriter(format LogFormat) io.Writer {
	if format == FormatJSON {
		return os.Stderr
	}
	return wf.wrapConsole(os.Stderr, false)
}

// CreateFileWriter creates a rotating file writer
func (wf *WriterFactory) CreateFileWriter(config LoggerConfig) io.Writer {
	finalPath := config.FilePath
	if config.RunID != "" {
		dir, base := filepath.Split(config.FilePath)
		finalPath = filepath.Join(dir, config.RunID, base)
	}

	if err := os.MkdirAll(filepath.Dir(finalPath), 0755); err != nil {
		// Fall back to the configured path when the run directory cannot be created
		finalPath = config.FilePath
	}

	rotating := &lumberjack.Logger{
		Filename:   finalPath,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		LocalTime:  true,
	}

	if config.Format == FormatJSON {
		return rotating
	}
	return wf.wrapConsole(rotating, true)
}

func (wf *WriterFactory) wrapConsole(out io.Writer, noColor bool) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: time.RFC3339,
	}
}
