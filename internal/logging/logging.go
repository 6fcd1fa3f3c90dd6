// Package logging builds the *slog.Logger handed to every operation. Records
// are rendered by charmbracelet/log so terminal output stays readable.
package logging

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w with the given prefix. Verbose lowers
// the level from info to debug.
func New(w io.Writer, prefix string, verbose bool) *slog.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  level,
	})
	return slog.New(handler)
}
