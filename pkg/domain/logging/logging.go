// pkg/domain/logging/logging.go

// Package logging defines the structured logging interfaces used by the
// matching engine, the CLI and the HTTP service.
package logging

import (
	"context"
	"fmt"
	"net/http"

	"github.com/damianoneill/bestmatch/pkg/domain/options"
)

//go:generate mockgen -destination=mocks/mock_logger.go -package=mocks github.com/damianoneill/bestmatch/pkg/domain/logging Logger,LeveledLogger,Factory

// Level represents logging severity levels.
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// ParseLevel validates a level name.
func ParseLevel(s string) (Level, error) {
	switch l := Level(s); l {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
		return l, nil
	default:
		return "", fmt.Errorf("unknown log level %q", s)
	}
}

// Encoding selects the log line format.
type Encoding string

const (
	// AutoEncoding picks console output for terminals and JSON otherwise.
	AutoEncoding    Encoding = "auto"
	JSONEncoding    Encoding = "json"
	ConsoleEncoding Encoding = "console"
)

// ParseEncoding validates an encoding name.
func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(s); e {
	case AutoEncoding, JSONEncoding, ConsoleEncoding:
		return e, nil
	default:
		return "", fmt.Errorf("unknown log encoding %q", s)
	}
}

// Fields represents structured logging key-value pairs.
type Fields map[string]interface{}

// LoggerOptions holds configuration for logger implementations.
type LoggerOptions struct {
	// Level sets the minimum logging level
	Level Level

	// ServiceName identifies the process in log output
	ServiceName string

	// Fields are added to every entry
	Fields Fields

	// Encoding selects the line format. Default is AutoEncoding.
	Encoding Encoding

	// OutputPaths are zap-style sinks ("stderr", "stdout", file paths).
	// Default is stderr so that stdout stays free for results.
	OutputPaths []string
}

// Option is a function that modifies LoggerOptions
type Option = options.Option[LoggerOptions]

// DefaultOptions returns the default logger options
func DefaultOptions() LoggerOptions {
	return LoggerOptions{
		Level:       InfoLevel,
		Encoding:    AutoEncoding,
		OutputPaths: []string{"stderr"},
	}
}

// WithLevel sets the minimum logging level.
func WithLevel(level Level) Option {
	return options.OptionFunc[LoggerOptions](func(o *LoggerOptions) error {
		if _, err := ParseLevel(string(level)); err != nil {
			return err
		}
		o.Level = level
		return nil
	})
}

// WithServiceName sets the name included in all log entries.
func WithServiceName(name string) Option {
	return options.OptionFunc[LoggerOptions](func(o *LoggerOptions) error {
		o.ServiceName = name
		return nil
	})
}

// WithFields sets default fields included in all log entries.
func WithFields(fields Fields) Option {
	return options.OptionFunc[LoggerOptions](func(o *LoggerOptions) error {
		o.Fields = fields
		return nil
	})
}

// WithEncoding sets the line format.
func WithEncoding(encoding Encoding) Option {
	return options.OptionFunc[LoggerOptions](func(o *LoggerOptions) error {
		if _, err := ParseEncoding(string(encoding)); err != nil {
			return err
		}
		o.Encoding = encoding
		return nil
	})
}

// WithOutputPaths sets the log sinks.
func WithOutputPaths(paths ...string) Option {
	return options.OptionFunc[LoggerOptions](func(o *LoggerOptions) error {
		if len(paths) == 0 {
			return fmt.Errorf("at least one output path is required")
		}
		o.OutputPaths = paths
		return nil
	})
}

// Logger defines the core logging interface.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)

	DebugWith(msg string, fields Fields)
	InfoWith(msg string, fields Fields)
	WarnWith(msg string, fields Fields)
	ErrorWith(msg string, fields Fields)

	// With returns a new Logger with additional default fields
	With(fields Fields) Logger

	// WithContext returns a Logger carrying trace identifiers from ctx
	WithContext(ctx context.Context) Logger
}

// LeveledLogger extends Logger with level management and flushing.
type LeveledLogger interface {
	Logger

	SetLevel(level Level)
	GetLevel() Level

	// Sync flushes buffered entries. Short-lived processes call it on exit.
	Sync() error
}

// RuntimeConfigurable is a logger whose level can be changed over HTTP.
type RuntimeConfigurable interface {
	GetConfigHandler() http.Handler
}

// Factory creates new logger instances
type Factory interface {
	NewLogger(opts ...Option) (LeveledLogger, error)
}
