// pkg/usecase/bestmatch/init.go

package bestmatch

import (
	"fmt"

	domainconfig "github.com/damianoneill/bestmatch/pkg/domain/config"
	domainhttp "github.com/damianoneill/bestmatch/pkg/domain/http"
	domainlog "github.com/damianoneill/bestmatch/pkg/domain/logging"
	domainmetrics "github.com/damianoneill/bestmatch/pkg/domain/metrics"
	domaintracing "github.com/damianoneill/bestmatch/pkg/domain/tracing"
)

func (s *Service) initConfig(opts Options) error {
	defaults := DefaultConfig()
	defaults["logging.level"] = string(opts.DefaultLogLevel)

	cfgOpts := []domainconfig.Option{
		domainconfig.WithEnvPrefix(opts.EnvPrefix),
		domainconfig.WithDefaults(defaults),
	}
	if opts.ConfigFile != "" {
		cfgOpts = append(cfgOpts, domainconfig.WithConfigFile(opts.ConfigFile))
	}
	if opts.OptionalConfigFile != "" {
		cfgOpts = append(cfgOpts, domainconfig.WithOptionalConfigFile(opts.OptionalConfigFile))
	}

	store, err := s.deps.ConfigFactory.NewStore(cfgOpts...)
	if err != nil {
		return fmt.Errorf("creating config store: %w", err)
	}
	for key, value := range opts.Overrides {
		if err := store.Set(key, value); err != nil {
			return fmt.Errorf("overriding %s: %w", key, err)
		}
	}

	var settings Settings
	if err := store.Unmarshal(&settings); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	s.config = store
	s.settings = settings
	return nil
}

func (s *Service) initLogger(opts Options) error {
	logger, err := s.deps.LoggerFactory.NewLogger(
		domainlog.WithLevel(domainlog.Level(s.settings.Logging.Level)),
		domainlog.WithEncoding(domainlog.Encoding(s.settings.Logging.Encoding)),
		domainlog.WithServiceName(opts.ServiceName),
		domainlog.WithFields(domainlog.Fields{
			"version": opts.Version,
		}),
	)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	s.logger = logger

	if file := s.config.ConfigFileUsed(); file != "" {
		s.logger.DebugWith("Loaded config file", domainlog.Fields{"path": file})
	}
	return nil
}

func (s *Service) initTracing(opts Options) error {
	t := s.settings.Tracing
	provider, err := s.deps.TracerFactory.NewProvider(
		domaintracing.WithServiceName(opts.ServiceName),
		domaintracing.WithServiceVersion(opts.Version),
		domaintracing.WithCollectorEndpoint(t.Endpoint),
		domaintracing.WithExporterType(domaintracing.ExporterType(t.Exporter)),
		domaintracing.WithInsecure(t.Insecure),
		domaintracing.WithSamplingRate(t.SampleRate),
	)
	if err != nil {
		return fmt.Errorf("creating tracer: %w", err)
	}
	s.tracer = provider
	return nil
}

func (s *Service) initMetrics(opts Options) error {
	collector, err := s.deps.MetricsFactory.NewCollector(
		domainmetrics.WithServiceName(opts.ServiceName),
		domainmetrics.WithLabels(map[string]string{
			"version": opts.Version,
		}),
		domainmetrics.WithRuntimeMetrics(opts.RuntimeMetrics),
	)
	if err != nil {
		return fmt.Errorf("creating metrics collector: %w", err)
	}
	s.metrics = collector
	return nil
}

func (s *Service) initEngine() error {
	engine, err := NewEngine(EngineDeps{
		Codecs:  s.deps.CodecFactory,
		Logger:  s.logger,
		Tracer:  s.tracer.Tracer(TracerName),
		Metrics: s.metrics,
	}, s.settings.CodecOptions()...)
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}
	s.engine = engine
	return nil
}

func (s *Service) initRouter(opts Options) (domainhttp.Router, error) {
	if s.deps.RouterFactory == nil {
		return nil, fmt.Errorf("router factory is required to serve")
	}

	routerOpts := []domainhttp.Option{
		domainhttp.WithService(opts.ServiceName, opts.Version),
		domainhttp.WithLogger(s.logger),
		domainhttp.WithProbeHandlers(s.lifecycle.Probes()),
		domainhttp.WithTracingProvider(s.tracer),
		domainhttp.WithMetricsCollector(s.metrics),
		domainhttp.WithRequestTimeout(s.settings.Server.HTTP.WriteTimeout),
		domainhttp.WithObservabilityExclusions(
			domainhttp.DefaultLoggingExclusions,
			domainhttp.DefaultTracingExclusions,
		),
	}

	if configurable, ok := s.logger.(domainlog.RuntimeConfigurable); ok {
		routerOpts = append(routerOpts, domainhttp.WithLogLevelHandler(configurable.GetConfigHandler()))
	}

	router, err := s.deps.RouterFactory.NewRouter(routerOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating router: %w", err)
	}

	router.Post(domainhttp.MatchRoute, domainhttp.NewBatchHandler(
		s.engine, s.settings.Server.HTTP.MaxBodyBytes, s.logger,
	))
	return router, nil
}
