// pkg/domain/config/config.go

// Package config defines layered key/value configuration: defaults, an
// optional YAML file, environment variables and explicit overrides.
package config

import (
	"time"

	"github.com/damianoneill/bestmatch/pkg/domain/options"
)

//go:generate mockgen -destination=mocks/mock_config.go -package=mocks github.com/damianoneill/bestmatch/pkg/domain/config Store,Factory

// Store defines the core configuration operations
type Store interface {
	// Get methods return zero value and false if not found
	GetString(key string) (string, bool)
	GetInt(key string) (int, bool)
	GetBool(key string) (bool, bool)
	GetDuration(key string) (time.Duration, bool)
	GetFloat64(key string) (float64, bool)
	GetStringSlice(key string) ([]string, bool)

	// Set overrides a value; overrides win over every other source
	Set(key string, value interface{}) error

	IsSet(key string) bool

	// ConfigFileUsed returns the file that was loaded, or "" if none
	ConfigFileUsed() string

	UnmarshalKey(key string, target interface{}) error
	Unmarshal(target interface{}) error
}

// StoreOptions holds configuration for stores
type StoreOptions struct {
	// ConfigFile is read at construction; a missing file is an error
	ConfigFile string

	// OptionalConfigFile is read when it exists and skipped otherwise
	OptionalConfigFile string

	// EnvPrefix enables environment lookups; "a.b" reads PREFIX_A_B
	EnvPrefix string

	Defaults map[string]interface{}
}

// Option is a store option
type Option = options.Option[StoreOptions]

// WithConfigFile sets a config file that must exist
func WithConfigFile(path string) Option {
	return options.OptionFunc[StoreOptions](func(o *StoreOptions) error {
		o.ConfigFile = path
		return nil
	})
}

// WithOptionalConfigFile sets a config file that is only read when present
func WithOptionalConfigFile(path string) Option {
	return options.OptionFunc[StoreOptions](func(o *StoreOptions) error {
		o.OptionalConfigFile = path
		return nil
	})
}

// WithEnvPrefix sets the environment variable prefix
func WithEnvPrefix(prefix string) Option {
	return options.OptionFunc[StoreOptions](func(o *StoreOptions) error {
		o.EnvPrefix = prefix
		return nil
	})
}

// WithDefaults sets default configuration values
func WithDefaults(defaults map[string]interface{}) Option {
	return options.OptionFunc[StoreOptions](func(o *StoreOptions) error {
		o.Defaults = defaults
		return nil
	})
}

// Factory creates new store instances
type Factory interface {
	NewStore(opts ...Option) (Store, error)
}
