// Package logging builds the application's charmbracelet logger.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w at the given level, with timestamps
// formatted as "HH:MM:SS.ms".
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "tracks",
	})
}

// Level picks the level New should use: debug when debug is set, info otherwise.
func Level(debug bool) log.Level {
	if debug {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
