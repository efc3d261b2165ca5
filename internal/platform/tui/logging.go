package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// NewLogger returns a timestamped logger writing to w.
func NewLogger(w io.Writer, prefix string, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// OpenLogFile returns a logger appending to path, or a discarding logger when
// path is empty. Interactive play cannot log to the terminal Bubble Tea owns.
// The returned closer must be called on exit.
func OpenLogFile(path, prefix string, debug bool) (*log.Logger, io.Closer, error) {
	if path == "" {
		return NewLogger(io.Discard, prefix, debug), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}
	return NewLogger(f, prefix, debug), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
