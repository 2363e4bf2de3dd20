// pkg/adapter/http/router_test.go
package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainhttp "github.com/damianoneill/bestmatch/pkg/domain/http"
	"github.com/damianoneill/bestmatch/pkg/domain/logging"
	mocklog "github.com/damianoneill/bestmatch/pkg/domain/logging/mocks"
	mockmetrics "github.com/damianoneill/bestmatch/pkg/domain/metrics/mocks"
	mocktracing "github.com/damianoneill/bestmatch/pkg/domain/tracing/mocks"
)

func TestNewFactory(t *testing.T) {
	factory := NewFactory()
	assert.NotNil(t, factory)
}

func TestNewRouter(t *testing.T) {
	tests := []struct {
		name    string
		options []domainhttp.Option
		wantErr bool
	}{
		{
			name:    "success with defaults",
			options: nil,
		},
		{
			name: "success with service",
			options: []domainhttp.Option{
				domainhttp.WithService("test-service", "1.0"),
			},
		},
		{
			name: "error with empty service name",
			options: []domainhttp.Option{
				domainhttp.WithService("", "1.0"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, err := NewFactory().NewRouter(tt.options...)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, router)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, router)
		})
	}
}

func TestRouterProbeEndpoints(t *testing.T) {
	var lc domainhttp.Lifecycle
	router, err := NewFactory().NewRouter(
		domainhttp.WithService("test-service", "1.0"),
		domainhttp.WithProbeHandlers(lc.Probes()),
	)
	require.NoError(t, err)

	probe := func(path string) (int, string) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		var got domainhttp.ProbeResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		return w.Code, got.Status
	}

	code, status := probe("/internal/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, domainhttp.StatusOK, status)

	code, status = probe("/internal/ready")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, domainhttp.StatusStarting, status)

	lc.MarkStarted()
	code, _ = probe("/internal/ready")
	assert.Equal(t, http.StatusOK, code)
	code, _ = probe("/internal/startup")
	assert.Equal(t, http.StatusOK, code)

	lc.MarkDraining()
	code, status = probe("/internal/ready")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, domainhttp.StatusDraining, status)
}

func TestRouterLogLevelEndpoint(t *testing.T) {
	levelHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"level":"info"}`)
	})

	router, err := NewFactory().NewRouter(domainhttp.WithLogLevelHandler(levelHandler))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/internal/logging", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"level":"info"}`, w.Body.String())

	withoutHandler, err := NewFactory().NewRouter()
	require.NoError(t, err)
	w = httptest.NewRecorder()
	withoutHandler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/internal/logging", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterMetricsEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)

	collector := mockmetrics.NewMockCollector(ctrl)
	collector.EXPECT().Handler().Return(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "bestmatch_batches_total 0\n")
	}))

	router, err := NewFactory().NewRouter(domainhttp.WithMetricsCollector(collector))
	require.NoError(t, err)

	// /metrics is excluded by default, so no request metrics are recorded
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "bestmatch_batches_total"))
}

func TestRouterMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)

	logger := mocklog.NewMockLogger(ctrl)
	logger.EXPECT().WithContext(gomock.Any()).Return(logger)
	logger.EXPECT().InfoWith("HTTP Request", gomock.Any()).Do(func(_ string, fields logging.Fields) {
		assert.Equal(t, "/v1/match", fields["path"])
		assert.Equal(t, http.StatusOK, fields["status"])
	})

	collector := mockmetrics.NewMockCollector(ctrl)
	collector.EXPECT().Handler().Return(http.NotFoundHandler())
	collector.EXPECT().CollectRequestMetrics(http.MethodPost, "/v1/match", http.StatusOK, gomock.Any())

	tracingProvider := mocktracing.NewMockProvider(ctrl)
	tracingProvider.EXPECT().IsEnabled().Return(false)

	router, err := NewFactory().NewRouter(
		domainhttp.WithService("test-service", "1.0"),
		domainhttp.WithLogger(logger),
		domainhttp.WithMetricsCollector(collector),
		domainhttp.WithTracingProvider(tracingProvider),
	)
	require.NoError(t, err)

	router.Post("/v1/match", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/match", strings.NewReader("0\n0\n")))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterObservabilityExclusions(t *testing.T) {
	ctrl := gomock.NewController(t)

	logger := mocklog.NewMockLogger(ctrl)
	logger.EXPECT().WithContext(gomock.Any()).Return(logger).Times(1)
	logger.EXPECT().InfoWith(gomock.Any(), gomock.Any()).Times(1)

	collector := mockmetrics.NewMockCollector(ctrl)
	collector.EXPECT().Handler().Return(http.NotFoundHandler())
	collector.EXPECT().CollectRequestMetrics(http.MethodGet, "/test", http.StatusOK, gomock.Any()).Times(1)

	tracingProvider := mocktracing.NewMockProvider(ctrl)
	tracingProvider.EXPECT().IsEnabled().Return(true)

	router, err := NewFactory().NewRouter(
		domainhttp.WithService("test-service", "1.0"),
		domainhttp.WithLogger(logger),
		domainhttp.WithMetricsCollector(collector),
		domainhttp.WithTracingProvider(tracingProvider),
		domainhttp.WithObservabilityExclusions(
			[]string{"/excluded/*"},
			[]string{"/excluded/*"},
		),
	)
	require.NoError(t, err)

	router.Get("/test", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/excluded/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, path := range []string{"/test", "/excluded/1", "/excluded/2"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
