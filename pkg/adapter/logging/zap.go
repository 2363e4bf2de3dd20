// pkg/adapter/logging/zap.go

// Package logging implements the logging domain interfaces with zap.
package logging

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/mattn/go-isatty"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	domainlog "github.com/damianoneill/bestmatch/pkg/domain/logging"
	"github.com/damianoneill/bestmatch/pkg/domain/options"
)

// Verify interface implementation
var (
	_ domainlog.LeveledLogger       = (*ZapLogger)(nil)
	_ domainlog.RuntimeConfigurable = (*ZapLogger)(nil)
	_ domainlog.Factory             = (*Factory)(nil)
)

type ZapLogger struct {
	logger *zap.Logger
	level  domainlog.Level
	atom   zap.AtomicLevel
}

type ZapOptions struct {
	domainlog.LoggerOptions
	Development bool
}

type ZapOption = options.Option[ZapOptions]

// WithDevelopment enables caller-rich development output with stack traces
func WithDevelopment(enabled bool) ZapOption {
	return options.OptionFunc[ZapOptions](func(o *ZapOptions) error {
		o.Development = enabled
		return nil
	})
}

type Factory struct {
	// isTerminal decides AutoEncoding; replaced in tests.
	isTerminal func(fd uintptr) bool
}

func NewFactory() *Factory {
	return &Factory{isTerminal: stderrIsTerminal}
}

func stderrIsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (f *Factory) NewLogger(opts ...domainlog.Option) (domainlog.LeveledLogger, error) {
	return f.NewLoggerWithOptions(opts, nil)
}

// NewLoggerWithOptions creates a logger with both domain and zap options
func (f *Factory) NewLoggerWithOptions(dopts []domainlog.Option, zopts []ZapOption) (domainlog.LeveledLogger, error) {
	lopts, err := options.Build(domainlog.DefaultOptions(), dopts...)
	if err != nil {
		return nil, fmt.Errorf("applying domain options: %w", err)
	}

	zo, err := options.Build(ZapOptions{LoggerOptions: lopts}, zopts...)
	if err != nil {
		return nil, fmt.Errorf("applying zap options: %w", err)
	}

	return f.createLogger(zo)
}

// resolveEncoding maps AutoEncoding to console for terminals and json for
// everything else (pipes, files, log collectors).
func (f *Factory) resolveEncoding(zo ZapOptions) string {
	switch zo.Encoding {
	case domainlog.JSONEncoding:
		return "json"
	case domainlog.ConsoleEncoding:
		return "console"
	}

	if len(zo.OutputPaths) == 1 && zo.OutputPaths[0] == "stderr" && f.isTerminal != nil && f.isTerminal(os.Stderr.Fd()) {
		return "console"
	}
	return "json"
}

func (f *Factory) createLogger(zo ZapOptions) (*ZapLogger, error) {
	encoding := f.resolveEncoding(zo)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if encoding == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(convertToZapLevel(zo.Level)),
		Development:       zo.Development,
		DisableStacktrace: !zo.Development,
		Encoding:          encoding,
		EncoderConfig:     encoderConfig,
		OutputPaths:       zo.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := config.Build(
		zap.AddCallerSkip(1),
		zap.AddCaller(),
	)
	if err != nil {
		return nil, fmt.Errorf("building zap logger: %w", err)
	}

	if zo.ServiceName != "" {
		logger = logger.With(zap.String("service", zo.ServiceName))
	}
	if len(zo.Fields) > 0 {
		logger = logger.With(convertFields(zo.Fields)...)
	}

	return &ZapLogger{
		logger: logger,
		level:  zo.Level,
		atom:   config.Level,
	}, nil
}

func (l *ZapLogger) Debug(msg string) { l.logger.Debug(msg) }
func (l *ZapLogger) Info(msg string)  { l.logger.Info(msg) }
func (l *ZapLogger) Warn(msg string)  { l.logger.Warn(msg) }
func (l *ZapLogger) Error(msg string) { l.logger.Error(msg) }

func (l *ZapLogger) DebugWith(msg string, fields domainlog.Fields) {
	l.logger.Debug(msg, convertFields(fields)...)
}

func (l *ZapLogger) InfoWith(msg string, fields domainlog.Fields) {
	l.logger.Info(msg, convertFields(fields)...)
}

func (l *ZapLogger) WarnWith(msg string, fields domainlog.Fields) {
	l.logger.Warn(msg, convertFields(fields)...)
}

func (l *ZapLogger) ErrorWith(msg string, fields domainlog.Fields) {
	l.logger.Error(msg, convertFields(fields)...)
}

func (l *ZapLogger) With(fields domainlog.Fields) domainlog.Logger {
	return l.derive(l.logger.With(convertFields(fields)...))
}

func (l *ZapLogger) WithContext(ctx context.Context) domainlog.Logger {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.HasTraceID() {
		return l
	}

	logger := l.logger.With(
		zap.String("trace_id", spanCtx.TraceID().String()),
		zap.String("span_id", spanCtx.SpanID().String()),
	)
	if spanCtx.IsSampled() {
		logger = logger.With(zap.Bool("sampled", true))
	}
	return l.derive(logger)
}

func (l *ZapLogger) derive(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{
		logger: logger,
		level:  l.level,
		atom:   l.atom,
	}
}

func (l *ZapLogger) SetLevel(level domainlog.Level) {
	l.level = level
	l.atom.SetLevel(convertToZapLevel(level))
}

func (l *ZapLogger) GetLevel() domainlog.Level {
	return l.level
}

// Sync flushes the underlying core. Errors from syncing a terminal or pipe
// (EINVAL, ENOTTY) are expected and ignored by callers on exit.
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

// GetConfigHandler exposes zap's atomic level: GET reports it, PUT changes it.
func (l *ZapLogger) GetConfigHandler() http.Handler {
	return l.atom
}

func convertToZapLevel(level domainlog.Level) zapcore.Level {
	switch level {
	case domainlog.DebugLevel:
		return zapcore.DebugLevel
	case domainlog.InfoLevel:
		return zapcore.InfoLevel
	case domainlog.WarnLevel:
		return zapcore.WarnLevel
	case domainlog.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func convertFields(fields domainlog.Fields) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// NewObserved wraps an existing zap logger, typically one built on
// zaptest/observer, so tests of other packages can assert on entries.
func NewObserved(logger *zap.Logger, level domainlog.Level) *ZapLogger {
	return &ZapLogger{
		logger: logger,
		level:  level,
		atom:   zap.NewAtomicLevelAt(convertToZapLevel(level)),
	}
}
