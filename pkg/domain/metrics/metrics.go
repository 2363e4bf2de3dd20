// pkg/domain/metrics/metrics.go
package metrics

import (
	"net/http"
	"time"

	"github.com/damianoneill/bestmatch/pkg/domain/options"
)

//go:generate mockgen -destination=mocks/mock_metrics.go -package=mocks github.com/damianoneill/bestmatch/pkg/domain/metrics Collector,Factory

// Outcome labels a completed batch
type Outcome string

const (
	OutcomeOK    Outcome = "ok"
	OutcomeError Outcome = "error"
)

// Collector records batch, path and HTTP request metrics
type Collector interface {
	// ObserveBatch records a finished batch. patterns is the number of
	// patterns the batch carried, zero when decoding failed.
	ObserveBatch(outcome Outcome, patterns int, duration time.Duration)

	// ObservePath records the outcome of matching one path
	ObservePath(matched bool)

	// CollectRequestMetrics records metrics for a completed HTTP request
	CollectRequestMetrics(method, path string, status int, duration float64)

	// Handler exposes the collector's registry in the Prometheus text format
	Handler() http.Handler

	// WriteTextfile writes the current state of the registry to path,
	// for consumption by a node exporter textfile collector
	WriteTextfile(path string) error

	// Close performs any cleanup of the metrics collector
	Close() error
}

// Options configures the behavior of a metrics collector
type Options struct {
	// ServiceName identifies the service in the metrics
	ServiceName string

	// Namespace prefixes the batch metrics, namespace_metric_name
	Namespace string

	// Buckets defines custom histogram buckets for latency metrics
	// If empty, default buckets will be used
	Buckets []float64

	// Labels are additional fixed labels to add to all metrics
	Labels map[string]string

	// Subsystem is an optional name added after the metrics namespace
	// For example: namespace_subsystem_metric_name
	Subsystem string

	// RuntimeMetrics adds the Go runtime and process collectors
	RuntimeMetrics bool
}

// Option is a function that modifies Options
type Option = options.Option[Options]

// DefaultOptions returns the default metrics options
func DefaultOptions() Options {
	return Options{
		ServiceName: "bestmatch",
		Namespace:   "bestmatch",
	}
}

// WithServiceName sets the service name that will be included
// in all metrics labels for identification.
func WithServiceName(name string) Option {
	return options.OptionFunc[Options](func(o *Options) error {
		o.ServiceName = name
		return nil
	})
}

// WithNamespace sets the prefix of the batch metrics.
func WithNamespace(namespace string) Option {
	return options.OptionFunc[Options](func(o *Options) error {
		o.Namespace = namespace
		return nil
	})
}

// WithBuckets sets custom histogram buckets for latency metrics.
// The buckets should be in ascending order.
func WithBuckets(buckets []float64) Option {
	return options.OptionFunc[Options](func(o *Options) error {
		o.Buckets = buckets
		return nil
	})
}

// WithLabels sets additional labels that will be included
// in all metrics from this collector.
func WithLabels(labels map[string]string) Option {
	return options.OptionFunc[Options](func(o *Options) error {
		o.Labels = labels
		return nil
	})
}

// WithSubsystem sets an optional subsystem name that will be included
// in metric names between the namespace and metric name.
func WithSubsystem(subsystem string) Option {
	return options.OptionFunc[Options](func(o *Options) error {
		o.Subsystem = subsystem
		return nil
	})
}

// WithRuntimeMetrics registers Go runtime and process metrics as well.
func WithRuntimeMetrics(enabled bool) Option {
	return options.OptionFunc[Options](func(o *Options) error {
		o.RuntimeMetrics = enabled
		return nil
	})
}

// Factory creates new metrics collector instances
type Factory interface {
	// NewCollector creates a new metrics collector with the given options
	NewCollector(opts ...Option) (Collector, error)
}
