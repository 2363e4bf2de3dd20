// pkg/domain/tracing/tracing_test.go
package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damianoneill/bestmatch/pkg/domain/options"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, "bestmatch", o.ServiceName)
	assert.Equal(t, GRPCExporter, o.ExporterType)
	assert.Equal(t, []string{PropagatorTraceContext, PropagatorBaggage}, o.PropagatorTypes)
	assert.Equal(t, 1.0, o.SamplingRate)
	assert.Empty(t, o.CollectorEndpoint, "export is off until an endpoint is configured")
}

func TestParseExporterType(t *testing.T) {
	for _, name := range []string{"http", "grpc", "noop"} {
		got, err := ParseExporterType(name)
		require.NoError(t, err)
		assert.Equal(t, ExporterType(name), got)
	}

	_, err := ParseExporterType("zipkin")
	assert.ErrorContains(t, err, `unsupported exporter type: "zipkin"`)
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		check   func(t *testing.T, o Options)
		wantErr string
	}{
		{
			name: "collector settings",
			opts: []Option{
				WithServiceName("matcher"),
				WithServiceVersion("1.2.3"),
				WithCollectorEndpoint("otel:4318"),
				WithExporterType(HTTPExporter),
				WithInsecure(true),
				WithHeaders(map[string]string{"Authorization": "Bearer token"}),
			},
			check: func(t *testing.T, o Options) {
				assert.Equal(t, "matcher", o.ServiceName)
				assert.Equal(t, "1.2.3", o.ServiceVersion)
				assert.Equal(t, "otel:4318", o.CollectorEndpoint)
				assert.Equal(t, HTTPExporter, o.ExporterType)
				assert.True(t, o.Insecure)
				assert.Equal(t, "Bearer token", o.Headers["Authorization"])
			},
		},
		{
			name: "sampling bounds are inclusive",
			opts: []Option{WithSamplingRate(0), WithSamplingRate(1)},
			check: func(t *testing.T, o Options) {
				assert.Equal(t, 1.0, o.SamplingRate)
			},
		},
		{
			name:    "negative sampling rate",
			opts:    []Option{WithSamplingRate(-0.1)},
			wantErr: "sampling rate must be between 0.0 and 1.0",
		},
		{
			name:    "sampling rate above one",
			opts:    []Option{WithSamplingRate(1.1)},
			wantErr: "sampling rate must be between 0.0 and 1.0",
		},
		{
			name: "w3c propagators only",
			opts: []Option{WithPropagatorTypes([]string{PropagatorBaggage})},
			check: func(t *testing.T, o Options) {
				assert.Equal(t, []string{PropagatorBaggage}, o.PropagatorTypes)
			},
		},
		{
			name:    "b3 is not supported",
			opts:    []Option{WithPropagatorTypes([]string{PropagatorTraceContext, "b3"})},
			wantErr: `unsupported propagator: "b3"`,
		},
		{
			name: "later options win",
			opts: []Option{WithExporterType(HTTPExporter), WithExporterType(NoopExporter)},
			check: func(t *testing.T, o Options) {
				assert.Equal(t, NoopExporter, o.ExporterType)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := options.Build(DefaultOptions(), tt.opts...)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestSpanNames(t *testing.T) {
	names := []string{SpanBatch, SpanParse, SpanRank, SpanMatch, SpanEncode}
	seen := map[string]bool{}
	for _, n := range names {
		assert.Regexp(t, `^bestmatch\.[a-z]+$`, n)
		assert.False(t, seen[n], "duplicate span name %s", n)
		seen[n] = true
	}
}
