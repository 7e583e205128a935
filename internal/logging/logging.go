// Package logging provides the client's debug logger. The TUI owns stdout,
// so logs go to a file under the state dir.
package logging

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const logFile = "vestra.log"

// Open returns a zerolog logger appending JSON lines to <dir>/vestra.log and
// the file handle for closing at shutdown. A logger that cannot open its
// file falls back to a no-op rather than failing startup.
func Open(dir, level string) (zerolog.Logger, *os.File) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if err := os.MkdirAll(dir, 0700); err != nil {
		return zerolog.Nop(), nil
	}
	f, err := os.OpenFile(filepath.Join(dir, logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return zerolog.Nop(), nil
	}

	logger := zerolog.New(f).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
	return logger, f
}

// parseLevel converts a config string to a zerolog.Level, defaulting to info.
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
