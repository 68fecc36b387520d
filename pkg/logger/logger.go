// Package logger holds the session logger. The console stays plain text
// for the operator; the log file is the structured record of the run.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init opens the session log file and installs it as the global logger.
// The returned closer is the log file handle.
func Init(logFile string, level string) (io.Closer, error) {
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, err
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(file).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()

	return file, nil
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug logs at debug level.
func Debug() *zerolog.Event {
	return log.Debug()
}

// Info logs at info level.
func Info() *zerolog.Event {
	return log.Info()
}

// Warn logs at warn level.
func Warn() *zerolog.Event {
	return log.Warn()
}

// Error logs at error level.
func Error() *zerolog.Event {
	return log.Error()
}
