// Package http provides domain interfaces for the HTTP service mode: a
// chi based router with probe, logging level and metrics endpoints, and
// the handler that runs one batch per request.
package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/damianoneill/bestmatch/pkg/domain/logging"
	"github.com/damianoneill/bestmatch/pkg/domain/metrics"
	"github.com/damianoneill/bestmatch/pkg/domain/options"
	"github.com/damianoneill/bestmatch/pkg/domain/tracing"
)

// Router extends chi.Router with the service endpoints.
type Router interface {
	chi.Router
}

// Default exclusion patterns, in the same wildcard form as the matcher:
// "*" stands for exactly one path segment.
var (
	DefaultLoggingExclusions = []string{"/internal/*", "/metrics"}
	DefaultTracingExclusions = []string{"/internal/*", "/metrics"}
)

// DefaultRequestTimeout bounds a single request when nothing else is set.
const DefaultRequestTimeout = 30 * time.Second

// RouterOptions configures router behavior and service capabilities.
type RouterOptions struct {
	// ServiceName identifies the service in logs and traces.
	ServiceName string

	// ServiceVersion identifies the version of the service.
	ServiceVersion string

	// Logger provides structured request logging.
	// If not set, logging will be disabled.
	Logger logging.Logger

	// LogLevelHandler is mounted at /internal/logging when set.
	LogLevelHandler http.Handler

	// TracingProvider enables request tracing.
	// If not set, tracing will be disabled.
	TracingProvider tracing.Provider

	// MetricsCollector records request metrics and serves /metrics.
	// If not set, both are disabled.
	MetricsCollector metrics.Collector

	// ProbeHandlers configures Kubernetes probe endpoints.
	// If not set, default handlers returning healthy will be used.
	ProbeHandlers *ProbeHandlers

	// ExcludeFromLogging lists wildcard path patterns that are not logged
	// and not counted in request metrics.
	ExcludeFromLogging []string

	// ExcludeFromTracing lists wildcard path patterns that are not traced.
	ExcludeFromTracing []string

	// RequestTimeout cancels the request context after the given duration.
	RequestTimeout time.Duration
}

// DefaultRouterOptions returns options with healthy probes and the default
// exclusions.
func DefaultRouterOptions() RouterOptions {
	return RouterOptions{
		ServiceName:        "bestmatch",
		ProbeHandlers:      DefaultProbeHandlers(),
		ExcludeFromLogging: DefaultLoggingExclusions,
		ExcludeFromTracing: DefaultTracingExclusions,
		RequestTimeout:     DefaultRequestTimeout,
	}
}

// Option is a function that modifies RouterOptions following the
// functional options pattern.
type Option = options.Option[RouterOptions]

// WithService sets the service name and version for identification in
// logs, traces, and metrics.
func WithService(name, version string) Option {
	return options.OptionFunc[RouterOptions](func(o *RouterOptions) error {
		if name == "" {
			return fmt.Errorf("service name cannot be empty")
		}
		o.ServiceName = name
		o.ServiceVersion = version
		return nil
	})
}

// WithLogger sets the logger for request logging.
func WithLogger(logger logging.Logger) Option {
	return options.OptionFunc[RouterOptions](func(o *RouterOptions) error {
		o.Logger = logger
		return nil
	})
}

// WithLogLevelHandler mounts a runtime log level handler.
func WithLogLevelHandler(handler http.Handler) Option {
	return options.OptionFunc[RouterOptions](func(o *RouterOptions) error {
		o.LogLevelHandler = handler
		return nil
	})
}

// WithTracingProvider sets the tracing provider for request tracing.
func WithTracingProvider(provider tracing.Provider) Option {
	return options.OptionFunc[RouterOptions](func(o *RouterOptions) error {
		o.TracingProvider = provider
		return nil
	})
}

// WithMetricsCollector sets the collector for request metrics.
func WithMetricsCollector(collector metrics.Collector) Option {
	return options.OptionFunc[RouterOptions](func(o *RouterOptions) error {
		o.MetricsCollector = collector
		return nil
	})
}

// WithProbeHandlers sets custom probe handler functions for
// Kubernetes liveness, readiness, and startup probes.
func WithProbeHandlers(handlers *ProbeHandlers) Option {
	return options.OptionFunc[RouterOptions](func(o *RouterOptions) error {
		if handlers == nil {
			return fmt.Errorf("probe handlers cannot be nil")
		}
		o.ProbeHandlers = handlers
		return nil
	})
}

// WithObservabilityExclusions sets paths to exclude from both
// logging and tracing.
func WithObservabilityExclusions(loggingPaths []string, tracingPaths []string) Option {
	return options.OptionFunc[RouterOptions](func(o *RouterOptions) error {
		if err := validateExclusions("logging", loggingPaths); err != nil {
			return err
		}
		if err := validateExclusions("tracing", tracingPaths); err != nil {
			return err
		}
		o.ExcludeFromLogging = loggingPaths
		o.ExcludeFromTracing = tracingPaths
		return nil
	})
}

// WithLoggingExclusions sets paths to exclude from request logging.
// "/internal/*" matches "/internal/health" but not "/internal".
func WithLoggingExclusions(paths []string) Option {
	return options.OptionFunc[RouterOptions](func(o *RouterOptions) error {
		if err := validateExclusions("logging", paths); err != nil {
			return err
		}
		o.ExcludeFromLogging = paths
		return nil
	})
}

// WithTracingExclusions sets paths to exclude from tracing.
func WithTracingExclusions(paths []string) Option {
	return options.OptionFunc[RouterOptions](func(o *RouterOptions) error {
		if err := validateExclusions("tracing", paths); err != nil {
			return err
		}
		o.ExcludeFromTracing = paths
		return nil
	})
}

func validateExclusions(kind string, paths []string) error {
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("path must start with /: %s", p)
		}
		if _, ok := seen[p]; ok {
			return fmt.Errorf("duplicate %s path: %s", kind, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// WithRequestTimeout bounds each request.
func WithRequestTimeout(d time.Duration) Option {
	return options.OptionFunc[RouterOptions](func(o *RouterOptions) error {
		if d <= 0 {
			return fmt.Errorf("request timeout must be positive")
		}
		o.RequestTimeout = d
		return nil
	})
}

// Factory creates new router instances with the specified options.
type Factory interface {
	// NewRouter creates a new router with the given options.
	// It will apply service configuration and set up middleware based on the options.
	NewRouter(opts ...Option) (Router, error)
}
