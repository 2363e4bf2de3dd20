// pkg/adapter/config/viper.go

// Package config implements the configuration domain interfaces with viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	domainconfig "github.com/damianoneill/bestmatch/pkg/domain/config"
	"github.com/damianoneill/bestmatch/pkg/domain/options"
)

// Verify interface implementation
var (
	_ domainconfig.Store   = (*ViperStore)(nil)
	_ domainconfig.Factory = (*Factory)(nil)
)

// ViperStore implements the Store interface using Viper
type ViperStore struct {
	v  *viper.Viper
	mu sync.RWMutex
}

// Factory creates Viper-backed stores
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) NewStore(opts ...domainconfig.Option) (domainconfig.Store, error) {
	o, err := options.Build(domainconfig.StoreOptions{}, opts...)
	if err != nil {
		return nil, fmt.Errorf("applying option: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if o.EnvPrefix != "" {
		v.SetEnvPrefix(o.EnvPrefix)
		v.AutomaticEnv()
	}
	for key, value := range o.Defaults {
		v.SetDefault(key, value)
	}

	store := &ViperStore{v: v}

	file, err := resolveFile(o)
	if err != nil {
		return nil, err
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := store.readConfig(); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// resolveFile picks the required file when set, otherwise the optional
// file if it exists.
func resolveFile(o domainconfig.StoreOptions) (string, error) {
	if o.ConfigFile != "" {
		return o.ConfigFile, nil
	}
	if o.OptionalConfigFile == "" {
		return "", nil
	}

	_, err := os.Stat(o.OptionalConfigFile)
	switch {
	case err == nil:
		return o.OptionalConfigFile, nil
	case errors.Is(err, fs.ErrNotExist):
		return "", nil
	default:
		return "", fmt.Errorf("checking config file: %w", err)
	}
}

func (s *ViperStore) readConfig() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func (s *ViperStore) GetString(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}

func (s *ViperStore) GetInt(key string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.v.IsSet(key) {
		return 0, false
	}
	return s.v.GetInt(key), true
}

func (s *ViperStore) GetBool(key string) (bool, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.v.IsSet(key) {
		return false, false
	}
	return s.v.GetBool(key), true
}

func (s *ViperStore) GetDuration(key string) (time.Duration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.v.IsSet(key) {
		return 0, false
	}
	return s.v.GetDuration(key), true
}

func (s *ViperStore) GetFloat64(key string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.v.IsSet(key) {
		return 0, false
	}
	return s.v.GetFloat64(key), true
}

func (s *ViperStore) GetStringSlice(key string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.v.IsSet(key) {
		return nil, false
	}
	return s.v.GetStringSlice(key), true
}

func (s *ViperStore) Set(key string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.Set(key, value)
	return nil
}

func (s *ViperStore) IsSet(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.v.IsSet(key)
}

func (s *ViperStore) ConfigFileUsed() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.v.ConfigFileUsed()
}

func (s *ViperStore) UnmarshalKey(key string, target interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.v.UnmarshalKey(key, target)
}

// Unmarshal decodes the merged configuration. Durations accept strings
// such as "15s".
func (s *ViperStore) Unmarshal(target interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.v.Unmarshal(target)
}
