// pkg/adapter/tracing/otel.go

// Package tracing provides an OpenTelemetry implementation of the tracing domain interfaces
package tracing

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/damianoneill/bestmatch/pkg/domain/options"
	"github.com/damianoneill/bestmatch/pkg/domain/tracing"
)

var (
	_ tracing.Provider = (*Provider)(nil)
	_ tracing.Factory  = (*Factory)(nil)
)

// Provider implements the domain Provider interface using OpenTelemetry
type Provider struct {
	provider *sdktrace.TracerProvider
	enabled  bool
}

// Factory creates OpenTelemetry-based Provider instances
type Factory struct{}

// NewFactory creates a new OpenTelemetry factory
func NewFactory() *Factory {
	return &Factory{}
}

// NewProvider implements Factory.NewProvider. Without a collector endpoint,
// or with the noop exporter, the provider is disabled and hands out no-op
// tracers.
func (f *Factory) NewProvider(opts ...tracing.Option) (tracing.Provider, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	if o.ExporterType == tracing.NoopExporter || o.CollectorEndpoint == "" {
		return &Provider{enabled: false}, nil
	}

	exporter, err := f.createExporter(context.Background(), &o)
	if err != nil {
		return nil, fmt.Errorf("creating exporter: %w", err)
	}

	p, err := f.newProvider(exporter, &o)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// NewProviderWithExporter builds an enabled provider around a caller
// supplied exporter, such as an in-memory exporter.
func (f *Factory) NewProviderWithExporter(exporter sdktrace.SpanExporter, opts ...tracing.Option) (*Provider, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return f.newProvider(exporter, &o)
}

func buildOptions(opts []tracing.Option) (tracing.Options, error) {
	o, err := options.Build(tracing.DefaultOptions(), opts...)
	if err != nil {
		return o, fmt.Errorf("applying option: %w", err)
	}

	if o.ServiceName == "" {
		return o, fmt.Errorf("service name is required")
	}
	if _, err := tracing.ParseExporterType(string(o.ExporterType)); err != nil {
		return o, err
	}
	return o, nil
}

func (f *Factory) newProvider(exporter sdktrace.SpanExporter, o *tracing.Options) (*Provider, error) {
	res, err := f.createResource(o)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(f.createSampler(o)),
	)

	// otelhttp picks up the global provider and propagators
	otel.SetTracerProvider(tp)
	f.setupPropagators(o)

	return &Provider{
		provider: tp,
		enabled:  true,
	}, nil
}

// HTTPMiddleware creates an http.Handler that adds tracing
func (f *Factory) HTTPMiddleware(operation string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, operation)
	}
}

// Tracer implements Provider.Tracer
func (p *Provider) Tracer(name string) trace.Tracer {
	if !p.enabled || p.provider == nil {
		return noop.NewTracerProvider().Tracer(name)
	}
	return p.provider.Tracer(name)
}

// Shutdown implements Provider.Shutdown
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.enabled || p.provider == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}

// ForceFlush exports every finished span that is still buffered
func (p *Provider) ForceFlush(ctx context.Context) error {
	if !p.enabled || p.provider == nil {
		return nil
	}
	return p.provider.ForceFlush(ctx)
}

// IsEnabled implements Provider.IsEnabled
func (p *Provider) IsEnabled() bool {
	return p.enabled
}

// createExporter creates an OTLP exporter based on the configuration
func (f *Factory) createExporter(ctx context.Context, opts *tracing.Options) (sdktrace.SpanExporter, error) {
	switch opts.ExporterType {
	case tracing.HTTPExporter:
		httpOpts := []otlptracehttp.Option{
			otlptracehttp.WithEndpoint(opts.CollectorEndpoint),
		}

		if opts.Insecure {
			httpOpts = append(httpOpts, otlptracehttp.WithInsecure())
		}

		if len(opts.Headers) > 0 {
			httpOpts = append(httpOpts, otlptracehttp.WithHeaders(opts.Headers))
		}

		return otlptracehttp.New(ctx, httpOpts...)

	case tracing.GRPCExporter:
		grpcOpts := []otlptracegrpc.Option{
			otlptracegrpc.WithEndpoint(opts.CollectorEndpoint),
		}

		if opts.Insecure {
			grpcOpts = append(grpcOpts, otlptracegrpc.WithInsecure())
		}

		if len(opts.Headers) > 0 {
			grpcOpts = append(grpcOpts, otlptracegrpc.WithHeaders(opts.Headers))
		}

		return otlptracegrpc.New(ctx, grpcOpts...)

	default:
		return nil, fmt.Errorf("unsupported exporter type: %s", opts.ExporterType)
	}
}

// createResource creates a resource with service information
func (f *Factory) createResource(opts *tracing.Options) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(opts.ServiceName),
			semconv.ServiceVersion(opts.ServiceVersion),
		),
	)
}

// createSampler creates a sampler based on the configuration
func (f *Factory) createSampler(opts *tracing.Options) sdktrace.Sampler {
	if opts.SamplingRate >= 1.0 {
		return sdktrace.AlwaysSample()
	}
	if opts.SamplingRate <= 0.0 {
		return sdktrace.NeverSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opts.SamplingRate))
}

// setupPropagators configures the global propagators
func (f *Factory) setupPropagators(opts *tracing.Options) {
	propagators := make([]propagation.TextMapPropagator, 0, len(opts.PropagatorTypes))
	for _, pType := range opts.PropagatorTypes {
		switch pType {
		case tracing.PropagatorTraceContext:
			propagators = append(propagators, propagation.TraceContext{})
		case tracing.PropagatorBaggage:
			propagators = append(propagators, propagation.Baggage{})
		}
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagators...))
}
