package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const logDir = "logs"

// newLogger creates a logger with timestamp formatting at the given
// level. Timestamps are formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// openLogFile opens the named debug log for appending, creating the
// log directory as needed.
func openLogFile(name string) (*os.File, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(logDir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
