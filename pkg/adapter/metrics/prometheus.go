// pkg/adapter/metrics/prometheus.go

// Package metrics implements the metrics domain interfaces with the
// Prometheus client. Every collector owns its registry.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/damianoneill/bestmatch/pkg/domain/metrics"
	"github.com/damianoneill/bestmatch/pkg/domain/options"
)

var (
	_ metrics.Collector = (*prometheusCollector)(nil)
	_ metrics.Factory   = (*PrometheusFactory)(nil)
)

type prometheusCollector struct {
	batchesTotal  *prometheus.CounterVec
	pathsTotal    *prometheus.CounterVec
	batchDuration prometheus.Histogram
	patterns      prometheus.Gauge

	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec

	reg *prometheus.Registry
	mu  sync.RWMutex
}

func NewMetricsFactory() metrics.Factory {
	return &PrometheusFactory{}
}

type PrometheusFactory struct{}

func (f *PrometheusFactory) NewCollector(opts ...metrics.Option) (metrics.Collector, error) {
	o, err := options.Build(metrics.DefaultOptions(), opts...)
	if err != nil {
		return nil, fmt.Errorf("applying option: %w", err)
	}

	if o.ServiceName == "" {
		return nil, fmt.Errorf("service name is required")
	}

	labels := prometheus.Labels{
		"service": o.ServiceName,
	}
	for k, v := range o.Labels {
		labels[k] = v
	}

	buckets := o.Buckets
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}
	for i := 1; i < len(buckets); i++ {
		if buckets[i] <= buckets[i-1] {
			return nil, fmt.Errorf("buckets must be in increasing order: %v", buckets)
		}
	}

	c := &prometheusCollector{
		reg: prometheus.NewRegistry(),
		batchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   o.Namespace,
				Subsystem:   o.Subsystem,
				Name:        "batches_total",
				Help:        "Total number of processed batches",
				ConstLabels: labels,
			},
			[]string{"outcome"},
		),
		pathsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   o.Namespace,
				Subsystem:   o.Subsystem,
				Name:        "paths_total",
				Help:        "Total number of matched paths by result",
				ConstLabels: labels,
			},
			[]string{"result"},
		),
		batchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace:   o.Namespace,
				Subsystem:   o.Subsystem,
				Name:        "batch_duration_seconds",
				Help:        "Batch processing duration in seconds",
				Buckets:     buckets,
				ConstLabels: labels,
			},
		),
		patterns: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace:   o.Namespace,
				Subsystem:   o.Subsystem,
				Name:        "patterns",
				Help:        "Number of patterns in the last batch",
				ConstLabels: labels,
			},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				Buckets:     buckets,
				ConstLabels: labels,
			},
			[]string{"method", "path", "status"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: labels,
			},
			[]string{"method", "path", "status"},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_errors_total",
				Help:        "Total number of HTTP errors",
				ConstLabels: labels,
			},
			[]string{"method", "path", "status"},
		),
	}

	cs := []prometheus.Collector{
		c.batchesTotal,
		c.pathsTotal,
		c.batchDuration,
		c.patterns,
		c.requestDuration,
		c.requestsTotal,
		c.errorsTotal,
	}
	if o.RuntimeMetrics {
		cs = append(cs,
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	for _, col := range cs {
		if err := c.reg.Register(col); err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}

	return c, nil
}

func (c *prometheusCollector) ObserveBatch(outcome metrics.Outcome, patterns int, duration time.Duration) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	c.batchesTotal.WithLabelValues(string(outcome)).Inc()
	c.batchDuration.Observe(duration.Seconds())
	if outcome == metrics.OutcomeOK {
		c.patterns.Set(float64(patterns))
	}
}

func (c *prometheusCollector) ObservePath(matched bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := "no_match"
	if matched {
		result = "matched"
	}
	c.pathsTotal.WithLabelValues(result).Inc()
}

func (c *prometheusCollector) CollectRequestMetrics(method, path string, status int, duration float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	labels := prometheus.Labels{
		"method": method,
		"path":   path,
		"status": strconv.Itoa(status),
	}

	c.requestDuration.With(labels).Observe(duration)
	c.requestsTotal.With(labels).Inc()

	if status >= 400 {
		c.errorsTotal.With(labels).Inc()
	}
}

func (c *prometheusCollector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{Registry: c.reg})
}

func (c *prometheusCollector) WriteTextfile(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := prometheus.WriteToTextfile(path, c.reg); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}

func (c *prometheusCollector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reg.Unregister(c.batchesTotal)
	c.reg.Unregister(c.pathsTotal)
	c.reg.Unregister(c.batchDuration)
	c.reg.Unregister(c.patterns)
	c.reg.Unregister(c.requestDuration)
	c.reg.Unregister(c.requestsTotal)
	c.reg.Unregister(c.errorsTotal)

	return nil
}
