// Package http provides a Chi-based implementation of the HTTP routing domain interfaces.
package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	domainhttp "github.com/damianoneill/bestmatch/pkg/domain/http"
	"github.com/damianoneill/bestmatch/pkg/domain/logging"
	"github.com/damianoneill/bestmatch/pkg/domain/options"
)

// Verify interface implementation
var _ domainhttp.Factory = (*Factory)(nil)

// Router implements the domain Router interface using Chi
type Router struct {
	chi.Router
	opts            domainhttp.RouterOptions
	logExclusions   *exclusionMatcher
	traceExclusions *exclusionMatcher
}

// Factory creates Chi-based router instances
type Factory struct{}

// NewFactory creates a new Chi router factory
func NewFactory() *Factory {
	return &Factory{}
}

// NewRouter implements the domain Factory interface
func (f *Factory) NewRouter(opts ...domainhttp.Option) (domainhttp.Router, error) {
	o, err := options.Build(domainhttp.DefaultRouterOptions(), opts...)
	if err != nil {
		return nil, fmt.Errorf("applying router option: %w", err)
	}

	if o.ServiceName == "" {
		return nil, fmt.Errorf("service name is required")
	}

	return newRouter(o), nil
}

func newRouter(opts domainhttp.RouterOptions) *Router {
	r := &Router{
		Router:          chi.NewRouter(),
		opts:            opts,
		logExclusions:   newMatcher(opts.ExcludeFromLogging),
		traceExclusions: newMatcher(opts.ExcludeFromTracing),
	}

	r.configureMiddleware()
	r.configureRoutes()

	return r
}

// configureMiddleware sets up all middleware in the correct order
func (r *Router) configureMiddleware() {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Timeout(r.opts.RequestTimeout),
	)

	if r.opts.TracingProvider != nil && r.opts.TracingProvider.IsEnabled() {
		r.Use(r.tracingMiddleware())
	}

	if r.opts.Logger != nil {
		r.Use(r.loggingMiddleware())
	}

	if r.opts.MetricsCollector != nil {
		r.Use(r.metricsMiddleware())
	}
}

// configureRoutes sets up probe, log level and metrics endpoints
func (r *Router) configureRoutes() {
	internal := chi.NewRouter()

	internal.Get("/health", r.probeHandler(r.opts.ProbeHandlers.LivenessCheck))
	internal.Get("/ready", r.probeHandler(r.opts.ProbeHandlers.ReadinessCheck))
	internal.Get("/startup", r.probeHandler(r.opts.ProbeHandlers.StartupCheck))

	if r.opts.LogLevelHandler != nil {
		internal.Handle("/logging", r.opts.LogLevelHandler)
	}

	r.Mount("/internal", internal)

	if r.opts.MetricsCollector != nil {
		r.Handle("/metrics", r.opts.MetricsCollector.Handler())
	}
}

// probeHandler creates a handler for probe endpoints
func (r *Router) probeHandler(check domainhttp.ProbeCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		resp := check()
		if err := r.writeProbeResponse(w, resp); err != nil {
			if r.opts.Logger != nil {
				r.opts.Logger.ErrorWith("Failed to write probe response", logging.Fields{
					"error": err.Error(),
				})
			}
		}
	}
}

// writeProbeResponse writes a probe response with appropriate status code
func (r *Router) writeProbeResponse(w http.ResponseWriter, resp domainhttp.ProbeResponse) error {
	w.Header().Set("Content-Type", "application/json")

	if resp.Status != domainhttp.StatusOK {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	return json.NewEncoder(w).Encode(resp)
}

// loggingMiddleware creates a middleware for request logging
func (r *Router) loggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if r.logExclusions.Matches(req.URL.Path) {
				next.ServeHTTP(w, req)
				return
			}

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)

			defer func() {
				r.opts.Logger.WithContext(req.Context()).InfoWith("HTTP Request", logging.Fields{
					"method":     req.Method,
					"path":       req.URL.Path,
					"status":     ww.Status(),
					"duration":   time.Since(start).String(),
					"size":       ww.BytesWritten(),
					"request_id": middleware.GetReqID(req.Context()),
				})
			}()

			next.ServeHTTP(ww, req)
		})
	}
}

// tracingMiddleware creates a middleware for request tracing
func (r *Router) tracingMiddleware() func(http.Handler) http.Handler {
	service := r.opts.ServiceName
	return func(next http.Handler) http.Handler {
		traced := otelhttp.NewHandler(
			next,
			service,
			otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
				return fmt.Sprintf("%s.http %s %s", service, req.Method, req.URL.Path)
			}),
		)
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if r.traceExclusions.Matches(req.URL.Path) {
				next.ServeHTTP(w, req)
				return
			}
			traced.ServeHTTP(w, req)
		})
	}
}

// metricsMiddleware creates a middleware for collecting request metrics
func (r *Router) metricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if r.logExclusions.Matches(req.URL.Path) {
				next.ServeHTTP(w, req)
				return
			}

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			next.ServeHTTP(ww, req)

			r.opts.MetricsCollector.CollectRequestMetrics(
				req.Method, r.normalizePath(req), ww.Status(), time.Since(start).Seconds(),
			)
		})
	}
}

// normalizePath returns the route pattern so that label cardinality stays bounded
func (r *Router) normalizePath(req *http.Request) string {
	if rctx := chi.RouteContext(req.Context()); rctx != nil && rctx.RoutePattern() != "" {
		return rctx.RoutePattern()
	}
	return req.URL.Path
}
