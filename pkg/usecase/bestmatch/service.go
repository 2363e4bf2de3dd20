// pkg/usecase/bestmatch/service.go

// Package bestmatch wires configuration, logging, tracing, metrics and the
// batch codecs into a matching service usable from the CLI and over HTTP.
package bestmatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	domainconfig "github.com/damianoneill/bestmatch/pkg/domain/config"
	domainhttp "github.com/damianoneill/bestmatch/pkg/domain/http"
	domainlog "github.com/damianoneill/bestmatch/pkg/domain/logging"
	domainmetrics "github.com/damianoneill/bestmatch/pkg/domain/metrics"
	domaintracing "github.com/damianoneill/bestmatch/pkg/domain/tracing"
)

// Service represents a configured matcher with its observability stack.
type Service struct {
	deps      Dependencies
	opts      Options
	hooks     *ServerHooks
	config    domainconfig.Store
	settings  Settings
	logger    domainlog.LeveledLogger
	tracer    domaintracing.Provider
	metrics   domainmetrics.Collector
	engine    *Engine
	lifecycle domainhttp.Lifecycle
	startTime time.Time

	mu        sync.Mutex
	server    *http.Server
	listener  net.Listener
	ready     chan struct{}
	readyOnce sync.Once
}

// NewService loads configuration and builds every component a batch run
// needs. Serving HTTP additionally requires Dependencies.RouterFactory.
func NewService(opts Options, deps Dependencies, hooks *ServerHooks) (*Service, error) {
	if err := validateOptions(&opts); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := deps.validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies: %w", err)
	}

	svc := &Service{
		deps:      deps,
		opts:      opts,
		hooks:     hooks,
		startTime: time.Now(),
		ready:     make(chan struct{}),
	}

	if err := svc.initConfig(opts); err != nil {
		return nil, err
	}
	if err := svc.initLogger(opts); err != nil {
		return nil, err
	}
	if err := svc.initTracing(opts); err != nil {
		return nil, err
	}
	if err := svc.initMetrics(opts); err != nil {
		svc.releaseTelemetry()
		return nil, err
	}
	if err := svc.initEngine(); err != nil {
		svc.releaseTelemetry()
		return nil, err
	}

	return svc, nil
}

// releaseTelemetry undoes a partial initialisation.
func (s *Service) releaseTelemetry() {
	if s.metrics != nil {
		_ = s.metrics.Close()
	}
	if s.tracer != nil {
		if err := s.tracer.Shutdown(context.Background()); err != nil {
			s.logger.WarnWith("Tracer shutdown failed", domainlog.Fields{
				"error": err.Error(),
			})
		}
	}
}

// RunBatch processes one batch from in and writes results to out.
func (s *Service) RunBatch(ctx context.Context, in io.Reader, out io.Writer) error {
	return s.engine.Run(ctx, in, out)
}

// Serve listens on the configured port and serves batches until ctx is
// cancelled, then shuts down gracefully.
func (s *Service) Serve(ctx context.Context) error {
	router, err := s.initRouter(s.opts)
	if err != nil {
		return err
	}

	h := s.settings.Server.HTTP
	server := &http.Server{
		Addr:         net.JoinHostPort("", strconv.Itoa(h.Port)),
		Handler:      router,
		ReadTimeout:  h.ReadTimeout,
		WriteTimeout: h.WriteTimeout,
	}

	listen := func(addr string) (net.Listener, error) { return net.Listen("tcp", addr) }
	if s.hooks != nil && s.hooks.Listen != nil {
		listen = s.hooks.Listen
	}
	ln, err := listen(server.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", server.Addr, err)
	}

	s.mu.Lock()
	s.server = server
	s.listener = ln
	s.mu.Unlock()

	s.lifecycle.MarkStarted()
	s.readyOnce.Do(func() { close(s.ready) })
	s.logger.InfoWith("Starting server", domainlog.Fields{
		"address": ln.Addr().String(),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.ShutdownTimeout)
	defer cancel()
	if err := s.shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Ready is closed once the server accepts connections.
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the listening address, or nil before Serve has started.
func (s *Service) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Service) shutdown(ctx context.Context) error {
	s.logger.Info("Starting graceful shutdown")
	s.lifecycle.MarkDraining()

	s.mu.Lock()
	server := s.server
	s.mu.Unlock()

	if err := server.Shutdown(ctx); err != nil {
		s.logger.ErrorWith("Shutdown error", domainlog.Fields{
			"error": err.Error(),
		})
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.logger.InfoWith("Server stopped", domainlog.Fields{
		"uptime": time.Since(s.startTime).String(),
	})
	return nil
}

// Close flushes telemetry: it writes the metrics textfile when one is
// configured, shuts the tracer down and syncs the logger.
func (s *Service) Close(ctx context.Context) error {
	var errs []error

	if path := s.settings.Metrics.Textfile; path != "" {
		if err := s.metrics.WriteTextfile(path); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.metrics.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing metrics collector: %w", err))
	}
	if err := s.tracer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
	}
	// Sync returns EINVAL for terminals on Linux
	_ = s.logger.Sync()

	return errors.Join(errs...)
}

// Settings returns the validated configuration.
func (s *Service) Settings() Settings {
	return s.settings
}

// Config returns the service's configuration store
func (s *Service) Config() domainconfig.Store {
	return s.config
}

// Logger returns the service's logger
func (s *Service) Logger() domainlog.LeveledLogger {
	return s.logger
}

// Engine returns the batch engine
func (s *Service) Engine() *Engine {
	return s.engine
}

// validateOptions ensures all required options are set and defaults are applied
func validateOptions(opts *Options) error {
	if opts.ServiceName == "" {
		return fmt.Errorf("service name is required")
	}

	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.EnvPrefix == "" {
		opts.EnvPrefix = "BESTMATCH"
	}
	if opts.DefaultLogLevel == "" {
		opts.DefaultLogLevel = domainlog.WarnLevel
	}
	if _, err := domainlog.ParseLevel(string(opts.DefaultLogLevel)); err != nil {
		return err
	}
	return nil
}
