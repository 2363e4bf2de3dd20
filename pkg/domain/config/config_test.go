// pkg/domain/config/config_test.go
package config

import (
	"testing"

	"github.com/damianoneill/bestmatch/pkg/domain/options"
)

func TestStoreOptions(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		check func(t *testing.T, o StoreOptions)
	}{
		{
			name: "required file",
			opts: []Option{WithConfigFile("/etc/bestmatch/config.yaml")},
			check: func(t *testing.T, o StoreOptions) {
				if o.ConfigFile != "/etc/bestmatch/config.yaml" {
					t.Errorf("ConfigFile = %q", o.ConfigFile)
				}
				if o.OptionalConfigFile != "" {
					t.Errorf("OptionalConfigFile = %q, want empty", o.OptionalConfigFile)
				}
			},
		},
		{
			name: "optional file",
			opts: []Option{WithOptionalConfigFile("/home/u/.config/bestmatch/config.yaml")},
			check: func(t *testing.T, o StoreOptions) {
				if o.OptionalConfigFile != "/home/u/.config/bestmatch/config.yaml" {
					t.Errorf("OptionalConfigFile = %q", o.OptionalConfigFile)
				}
			},
		},
		{
			name: "env prefix",
			opts: []Option{WithEnvPrefix("BESTMATCH")},
			check: func(t *testing.T, o StoreOptions) {
				if o.EnvPrefix != "BESTMATCH" {
					t.Errorf("EnvPrefix = %q", o.EnvPrefix)
				}
			},
		},
		{
			name: "defaults",
			opts: []Option{WithDefaults(map[string]interface{}{"input.format": "text", "input.max_line_bytes": 64})},
			check: func(t *testing.T, o StoreOptions) {
				if len(o.Defaults) != 2 {
					t.Fatalf("Defaults len = %d, want 2", len(o.Defaults))
				}
				if o.Defaults["input.format"] != "text" {
					t.Errorf("Defaults[input.format] = %v", o.Defaults["input.format"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o StoreOptions
			if err := options.Apply(&o, tt.opts...); err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			tt.check(t, o)
		})
	}
}
