// pkg/adapter/config/viper_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainconfig "github.com/damianoneill/bestmatch/pkg/domain/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFactory_NewStore_WithFile(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
input:
  format: yaml
  max_line_bytes: 4096
server:
  http:
    read_timeout: 3s
tracing:
  sample_rate: 0.25
  headers_allow:
    - traceparent
    - baggage
metrics:
  enabled: true
`)

	store, err := NewFactory().NewStore(domainconfig.WithConfigFile(path))
	require.NoError(t, err)
	assert.Equal(t, path, store.ConfigFileUsed())

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "string values",
			testFunc: func(t *testing.T) {
				val, ok := store.GetString("logging.level")
				assert.True(t, ok)
				assert.Equal(t, "debug", val)
			},
		},
		{
			name: "integer values",
			testFunc: func(t *testing.T) {
				val, ok := store.GetInt("input.max_line_bytes")
				assert.True(t, ok)
				assert.Equal(t, 4096, val)
			},
		},
		{
			name: "duration values",
			testFunc: func(t *testing.T) {
				val, ok := store.GetDuration("server.http.read_timeout")
				assert.True(t, ok)
				assert.Equal(t, 3*time.Second, val)
			},
		},
		{
			name: "float values",
			testFunc: func(t *testing.T) {
				val, ok := store.GetFloat64("tracing.sample_rate")
				assert.True(t, ok)
				assert.Equal(t, 0.25, val)
			},
		},
		{
			name: "bool values",
			testFunc: func(t *testing.T) {
				val, ok := store.GetBool("metrics.enabled")
				assert.True(t, ok)
				assert.True(t, val)
			},
		},
		{
			name: "slice values",
			testFunc: func(t *testing.T) {
				val, ok := store.GetStringSlice("tracing.headers_allow")
				assert.True(t, ok)
				assert.Equal(t, []string{"traceparent", "baggage"}, val)
			},
		},
		{
			name: "missing key",
			testFunc: func(t *testing.T) {
				_, ok := store.GetString("server.http.tls")
				assert.False(t, ok)
				assert.False(t, store.IsSet("server.http.tls"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestFactory_NewStore_MissingRequiredFile(t *testing.T) {
	_, err := NewFactory().NewStore(domainconfig.WithConfigFile(filepath.Join(t.TempDir(), "nope.yaml")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestFactory_NewStore_OptionalFile(t *testing.T) {
	t.Run("missing optional file is skipped", func(t *testing.T) {
		store, err := NewFactory().NewStore(
			domainconfig.WithOptionalConfigFile(filepath.Join(t.TempDir(), "config.yaml")),
			domainconfig.WithDefaults(map[string]interface{}{"input.format": "text"}),
		)
		require.NoError(t, err)
		assert.Empty(t, store.ConfigFileUsed())

		val, ok := store.GetString("input.format")
		assert.True(t, ok)
		assert.Equal(t, "text", val)
	})

	t.Run("present optional file is read", func(t *testing.T) {
		path := writeConfig(t, "input:\n  format: yaml\n")
		store, err := NewFactory().NewStore(domainconfig.WithOptionalConfigFile(path))
		require.NoError(t, err)

		val, _ := store.GetString("input.format")
		assert.Equal(t, "yaml", val)
	})

	t.Run("required file wins over optional", func(t *testing.T) {
		required := writeConfig(t, "input:\n  format: yaml\n")
		optional := writeConfig(t, "input:\n  format: text\n")

		store, err := NewFactory().NewStore(
			domainconfig.WithConfigFile(required),
			domainconfig.WithOptionalConfigFile(optional),
		)
		require.NoError(t, err)
		assert.Equal(t, required, store.ConfigFileUsed())
	})
}

func TestFactory_NewStore_WithEnv(t *testing.T) {
	t.Setenv("BESTMATCH_LOGGING_LEVEL", "error")

	store, err := NewFactory().NewStore(
		domainconfig.WithEnvPrefix("BESTMATCH"),
		domainconfig.WithDefaults(map[string]interface{}{"logging.level": "warn"}),
	)
	require.NoError(t, err)

	val, ok := store.GetString("logging.level")
	assert.True(t, ok)
	assert.Equal(t, "error", val)
}

func TestStore_SetOverridesDefaults(t *testing.T) {
	store, err := NewFactory().NewStore(domainconfig.WithDefaults(map[string]interface{}{
		"input.format": "text",
	}))
	require.NoError(t, err)

	require.NoError(t, store.Set("input.format", "yaml"))

	val, ok := store.GetString("input.format")
	assert.True(t, ok)
	assert.Equal(t, "yaml", val)
}

func TestStore_Unmarshal(t *testing.T) {
	path := writeConfig(t, `
server:
  http:
    port: 9090
    shutdown_timeout: 5s
`)
	t.Setenv("BESTMATCH_SERVER_HTTP_PORT", "9191")

	store, err := NewFactory().NewStore(
		domainconfig.WithConfigFile(path),
		domainconfig.WithEnvPrefix("BESTMATCH"),
		domainconfig.WithDefaults(map[string]interface{}{
			"server.http.port":             8080,
			"server.http.shutdown_timeout": "15s",
			"server.http.max_body_bytes":   1024,
		}),
	)
	require.NoError(t, err)

	type httpConfig struct {
		Port            int           `mapstructure:"port"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
		MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	}

	var cfg httpConfig
	require.NoError(t, store.UnmarshalKey("server.http", &cfg))
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)

	var all struct {
		Server struct {
			HTTP httpConfig `mapstructure:"http"`
		} `mapstructure:"server"`
	}
	require.NoError(t, store.Unmarshal(&all))
	assert.Equal(t, 9191, all.Server.HTTP.Port)
	assert.Equal(t, 5*time.Second, all.Server.HTTP.ShutdownTimeout)
	assert.Equal(t, int64(1024), all.Server.HTTP.MaxBodyBytes)
}
