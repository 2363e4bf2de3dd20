// pkg/usecase/bestmatch/types.go

package bestmatch

import (
	"fmt"
	"net"
	"time"

	"github.com/damianoneill/bestmatch/pkg/domain/batch"
	domainconfig "github.com/damianoneill/bestmatch/pkg/domain/config"
	domainhttp "github.com/damianoneill/bestmatch/pkg/domain/http"
	domainlog "github.com/damianoneill/bestmatch/pkg/domain/logging"
	domainmetrics "github.com/damianoneill/bestmatch/pkg/domain/metrics"
	domaintracing "github.com/damianoneill/bestmatch/pkg/domain/tracing"
)

// Dependencies contains all external dependencies required by the service.
// RouterFactory is only needed to serve HTTP.
type Dependencies struct {
	ConfigFactory  domainconfig.Factory
	LoggerFactory  domainlog.Factory
	CodecFactory   batch.Factory
	MetricsFactory domainmetrics.Factory
	TracerFactory  domaintracing.Factory
	RouterFactory  domainhttp.Factory
}

func (d Dependencies) validate() error {
	switch {
	case d.ConfigFactory == nil:
		return fmt.Errorf("config factory is required")
	case d.LoggerFactory == nil:
		return fmt.Errorf("logger factory is required")
	case d.CodecFactory == nil:
		return fmt.Errorf("codec factory is required")
	case d.MetricsFactory == nil:
		return fmt.Errorf("metrics factory is required")
	case d.TracerFactory == nil:
		return fmt.Errorf("tracer factory is required")
	}
	return nil
}

// Options configures the service.
type Options struct {
	// Service identity
	ServiceName string
	Version     string

	// ConfigFile must exist when set
	ConfigFile string

	// OptionalConfigFile is read only when present
	OptionalConfigFile string

	// EnvPrefix for environment overrides. Default is "BESTMATCH".
	EnvPrefix string

	// Overrides win over every other configuration source; the CLI
	// passes explicitly set flags here.
	Overrides map[string]interface{}

	// DefaultLogLevel is the level used when nothing is configured.
	// Default is warn; the HTTP service passes info.
	DefaultLogLevel domainlog.Level

	// RuntimeMetrics adds Go runtime and process metrics
	RuntimeMetrics bool
}

// ServerHooks replaces server primitives in tests
type ServerHooks struct {
	Listen func(addr string) (net.Listener, error)
}

// Settings is the typed view of the merged configuration.
type Settings struct {
	Logging LoggingSettings `mapstructure:"logging"`
	Input   InputSettings   `mapstructure:"input"`
	Metrics MetricsSettings `mapstructure:"metrics"`
	Tracing TracingSettings `mapstructure:"tracing"`
	Server  ServerSettings  `mapstructure:"server"`
}

type LoggingSettings struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type InputSettings struct {
	Format       string `mapstructure:"format"`
	MaxLineBytes int    `mapstructure:"max_line_bytes"`
}

type MetricsSettings struct {
	// Textfile receives the Prometheus exposition when the service closes
	Textfile string `mapstructure:"textfile"`
}

type TracingSettings struct {
	Endpoint   string  `mapstructure:"endpoint"`
	Exporter   string  `mapstructure:"exporter"`
	SampleRate float64 `mapstructure:"sample_rate"`
	Insecure   bool    `mapstructure:"insecure"`
}

type ServerSettings struct {
	HTTP HTTPSettings `mapstructure:"http"`
}

type HTTPSettings struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

// DefaultConfig returns the default value of every configuration key.
func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"logging.level":                string(domainlog.WarnLevel),
		"logging.encoding":             string(domainlog.AutoEncoding),
		"input.format":                 string(batch.TextFormat),
		"input.max_line_bytes":         batch.DefaultMaxLineBytes,
		"metrics.textfile":             "",
		"tracing.endpoint":             "",
		"tracing.exporter":             string(domaintracing.GRPCExporter),
		"tracing.sample_rate":          1.0,
		"tracing.insecure":             false,
		"server.http.port":             8080,
		"server.http.read_timeout":     "15s",
		"server.http.write_timeout":    "15s",
		"server.http.shutdown_timeout": "15s",
		"server.http.max_body_bytes":   8 << 20,
	}
}

// Validate reports the first invalid setting.
func (s Settings) Validate() error {
	if _, err := domainlog.ParseLevel(s.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if _, err := domainlog.ParseEncoding(s.Logging.Encoding); err != nil {
		return fmt.Errorf("logging.encoding: %w", err)
	}
	if _, err := batch.ParseFormat(s.Input.Format); err != nil {
		return fmt.Errorf("input.format: %w", err)
	}
	if s.Input.MaxLineBytes <= 0 {
		return fmt.Errorf("input.max_line_bytes must be positive, got %d", s.Input.MaxLineBytes)
	}
	if _, err := domaintracing.ParseExporterType(s.Tracing.Exporter); err != nil {
		return fmt.Errorf("tracing.exporter: %w", err)
	}
	if s.Tracing.SampleRate < 0 || s.Tracing.SampleRate > 1 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", s.Tracing.SampleRate)
	}

	h := s.Server.HTTP
	if h.Port < 0 || h.Port > 65535 {
		return fmt.Errorf("server.http.port out of range: %d", h.Port)
	}
	if h.ReadTimeout <= 0 || h.WriteTimeout <= 0 || h.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.http timeouts must be positive")
	}
	if h.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.http.max_body_bytes must be positive, got %d", h.MaxBodyBytes)
	}
	return nil
}

// CodecOptions converts the input settings into codec options.
func (s Settings) CodecOptions() []batch.Option {
	return []batch.Option{
		batch.WithFormat(batch.Format(s.Input.Format)),
		batch.WithMaxLineBytes(s.Input.MaxLineBytes),
	}
}
