// Package logging builds the logger handle passed explicitly into each
// scaffolding stage.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options configures logger construction.
type Options struct {
	// Quiet limits output to errors.
	Quiet bool
	// Verbose enables debug-level output with timestamps.
	Verbose bool
	// NoColor switches to the plain logfmt formatter.
	NoColor bool
	// Writer receives log output. Defaults to stderr.
	Writer io.Writer
}

// New builds a logger from the options. The logger is handed to each
// stage explicitly; no package-level logger state exists.
func New(opts Options) *log.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := log.InfoLevel
	switch {
	case opts.Quiet:
		level = log.ErrorLevel
	case opts.Verbose:
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: opts.Verbose,
	})
	if opts.NoColor {
		logger.SetFormatter(log.LogfmtFormatter)
	}
	return logger
}
