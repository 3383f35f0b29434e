package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvVar names the environment variable holding a log spec.
const EnvVar = "XDNA_LOG"

// Format is the log output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses "text" or "json"; empty means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatText, fmt.Errorf("unknown log format: %q", s)
}

// Options configures New. Specs are consulted in the order CLISpec,
// EnvSpec, ConfigSpec; the first non-empty one wins.
type Options struct {
	CLISpec    string
	EnvSpec    string
	ConfigSpec string
	Format     Format
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New builds a logger with component filtering. The returned Filter
// can be used to change verbosity later.
func New(opts Options) (*slog.Logger, *Filter, error) {
	var s string
	switch {
	case opts.CLISpec != "":
		s = opts.CLISpec
	case opts.EnvSpec != "":
		s = opts.EnvSpec
	default:
		s = opts.ConfigSpec
	}
	spec, err := ParseSpec(s)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log spec: %w", err)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	// The inner handler accepts everything; the filter decides.
	hopts := &slog.HandlerOptions{Level: LevelTrace.ToSlog(), ReplaceAttr: replaceLevel}
	var inner slog.Handler
	if opts.Format == FormatJSON {
		inner = slog.NewJSONHandler(out, hopts)
	} else {
		inner = slog.NewTextHandler(out, hopts)
	}

	filter := NewFilter(spec)
	return slog.New(NewFilteringHandler(inner, filter)), filter, nil
}

// FromEnv builds a text logger on stderr from $XDNA_LOG.
func FromEnv() (*slog.Logger, error) {
	logger, _, err := New(Options{EnvSpec: os.Getenv(EnvVar)})
	return logger, err
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// replaceLevel renders the trace level by name instead of "DEBUG-4".
func replaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if l, ok := a.Value.Any().(slog.Level); ok && l == LevelTrace.ToSlog() {
			a.Value = slog.StringValue("TRACE")
		}
	}
	return a
}
