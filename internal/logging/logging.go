// Package logging wires charmbracelet/log for the whole application. The TUI
// owns the terminal, so its logs go to a file; the proxy server logs to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu     sync.RWMutex
	output io.Writer = os.Stderr
	level            = log.InfoLevel
)

// Options controls where and how much is logged
type Options struct {
	Level     string
	File      string
	Timestamp bool
}

// Setup routes all loggers to the configured destination. The returned
// closer releases the log file, if one was opened.
func Setup(opts Options) (io.Closer, error) {
	lvl := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		lvl = parsed
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	mu.Lock()
	output, level = w, lvl
	mu.Unlock()

	log.SetDefault(log.NewWithOptions(w, log.Options{
		ReportTimestamp: opts.Timestamp || opts.File != "",
		Formatter:       log.TextFormatter,
		Level:           lvl,
	}))

	return closer, nil
}

// New creates a prefixed logger writing to the configured destination
func New(prefix string) *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log.NewWithOptions(output, log.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           level,
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
