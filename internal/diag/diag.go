// Package diag provides diagnostic sinks and the logger they write to.
package diag

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/mcdonaldj/filecheck/internal/ports"
)

// NewLogger builds a logrus logger writing to out.
// format is "text" or "json"; level is any logrus level name.
func NewLogger(out io.Writer, level, format string) (*log.Logger, error) {
	logger := log.New()
	logger.SetOutput(out)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	logger.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", "text":
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return logger, nil
}

// LogrusSink sends diagnostic lines to a logrus logger at info level.
type LogrusSink struct {
	entry *log.Entry
}

// NewLogrusSink creates a sink tagging every line with the given component.
func NewLogrusSink(logger *log.Logger, component string) *LogrusSink {
	return &LogrusSink{entry: logger.WithField("component", component)}
}

// Emit logs the line.
func (s *LogrusSink) Emit(line string) {
	s.entry.Info(line)
}

// WriterSink writes each diagnostic line to an io.Writer.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a sink writing one line per Emit to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit writes the line followed by a newline.
func (s *WriterSink) Emit(line string) {
	fmt.Fprintln(s.w, line)
}

var (
	_ ports.DiagnosticSink = (*LogrusSink)(nil)
	_ ports.DiagnosticSink = (*WriterSink)(nil)
)
