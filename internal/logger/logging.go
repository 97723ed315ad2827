// Package logger builds the charm loggers suffixserve writes diagnostics
// with: a stamped stdout default for the CLI and index plumbing, and a
// configurable variant for surfaces like the version banner that pick their
// own writer and shape.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates the default charm log on stdout at the process log level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a charm log on w with explicit reporting options.
func NewWithConfig(w io.Writer, prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}
