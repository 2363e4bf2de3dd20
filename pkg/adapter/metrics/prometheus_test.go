// pkg/adapter/metrics/prometheus_test.go
package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damianoneill/bestmatch/pkg/domain/metrics"
)

func newCollector(t *testing.T, opts ...metrics.Option) *prometheusCollector {
	t.Helper()
	c, err := NewMetricsFactory().NewCollector(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c.(*prometheusCollector)
}

func family(t *testing.T, c *prometheusCollector, name string) *dto.MetricFamily {
	t.Helper()
	families, err := c.reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("metric family %q not found", name)
	return nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}

func TestPrometheusFactory(t *testing.T) {
	tests := []struct {
		name       string
		options    []metrics.Option
		wantErrMsg string
	}{
		{
			name: "creates collector with default options",
		},
		{
			name: "creates collector with custom options",
			options: []metrics.Option{
				metrics.WithServiceName("custom-service"),
				metrics.WithLabels(map[string]string{"environment": "test"}),
				metrics.WithBuckets([]float64{0.1, 0.5, 1.0}),
				metrics.WithRuntimeMetrics(true),
			},
		},
		{
			name:       "fails with empty service name",
			options:    []metrics.Option{metrics.WithServiceName("")},
			wantErrMsg: "service name is required",
		},
		{
			name:       "fails with invalid bucket values",
			options:    []metrics.Option{metrics.WithBuckets([]float64{2.0, 1.0})},
			wantErrMsg: "buckets must be in increasing order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector, err := NewMetricsFactory().NewCollector(tt.options...)

			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				assert.Nil(t, collector)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, collector)
			assert.NoError(t, collector.Close())
		})
	}
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := newCollector(t)
	b := newCollector(t)

	a.ObservePath(true)

	mf := family(t, a, "bestmatch_paths_total")
	require.Len(t, mf.GetMetric(), 1)
	assert.Equal(t, 1.0, mf.GetMetric()[0].GetCounter().GetValue())

	families, err := b.reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		assert.NotEqual(t, "bestmatch_paths_total", f.GetName())
	}
}

func TestObserveBatch(t *testing.T) {
	c := newCollector(t, metrics.WithServiceName("bestmatch-test"))

	c.ObserveBatch(metrics.OutcomeOK, 4, 20*time.Millisecond)
	c.ObserveBatch(metrics.OutcomeOK, 7, 10*time.Millisecond)
	c.ObserveBatch(metrics.OutcomeError, 0, time.Millisecond)

	batches := family(t, c, "bestmatch_batches_total")
	counts := map[string]float64{}
	for _, m := range batches.GetMetric() {
		counts[labelValue(m, "outcome")] = m.GetCounter().GetValue()
		assert.Equal(t, "bestmatch-test", labelValue(m, "service"))
	}
	assert.Equal(t, map[string]float64{"ok": 2, "error": 1}, counts)

	gauge := family(t, c, "bestmatch_patterns")
	assert.Equal(t, 7.0, gauge.GetMetric()[0].GetGauge().GetValue(), "failed batches leave the gauge alone")

	hist := family(t, c, "bestmatch_batch_duration_seconds")
	assert.Equal(t, uint64(3), hist.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestObservePath(t *testing.T) {
	c := newCollector(t)

	c.ObservePath(true)
	c.ObservePath(false)
	c.ObservePath(false)

	mf := family(t, c, "bestmatch_paths_total")
	counts := map[string]float64{}
	for _, m := range mf.GetMetric() {
		counts[labelValue(m, "result")] = m.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{"matched": 1, "no_match": 2}, counts)
}

func TestCollectRequestMetrics(t *testing.T) {
	c := newCollector(t)

	c.CollectRequestMetrics(http.MethodPost, "/v1/match", 200, 0.01)
	c.CollectRequestMetrics(http.MethodPost, "/v1/match", 400, 0.02)

	requests := family(t, c, "http_requests_total")
	assert.Len(t, requests.GetMetric(), 2)

	errs := family(t, c, "http_errors_total")
	require.Len(t, errs.GetMetric(), 1)
	assert.Equal(t, "400", labelValue(errs.GetMetric()[0], "status"))
}

func TestHandler(t *testing.T) {
	c := newCollector(t)
	c.ObservePath(false)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `bestmatch_paths_total{result="no_match",service="bestmatch"} 1`)
}

func TestWriteTextfile(t *testing.T) {
	c := newCollector(t)
	c.ObserveBatch(metrics.OutcomeOK, 2, time.Millisecond)

	path := filepath.Join(t.TempDir(), "bestmatch.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `bestmatch_batches_total{outcome="ok",service="bestmatch"} 1`)
	assert.Contains(t, string(data), "bestmatch_patterns")

	err = c.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "bestmatch.prom"))
	assert.Error(t, err)
}

func TestCollectorConcurrency(t *testing.T) {
	c := newCollector(t)

	const goroutines = 10
	const iterations = 100

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				c.ObservePath(j%2 == 0)
				c.CollectRequestMetrics(http.MethodPost, "/v1/match", 200, float64(j)*0.001)
			}
		}()
	}
	wg.Wait()

	mf := family(t, c, "bestmatch_paths_total")
	var total float64
	for _, m := range mf.GetMetric() {
		total += m.GetCounter().GetValue()
	}
	assert.Equal(t, float64(goroutines*iterations), total)
}
