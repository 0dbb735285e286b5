// Package sconfig loads engine configuration via viper, grounded on the
// teacher's nested mapstructure-tagged config structs (firestige-Otus
// internal/config).
package sconfig

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/firestige/stalkermap/internal/sink"
	"github.com/firestige/stalkermap/internal/stalklog"
)

// Config is the root configuration object for the cmd/stalkermap demo
// harness and for any embedder that wants config-file-driven setup
// instead of constructing options by hand.
type Config struct {
	BatchSize int              `mapstructure:"batch_size"`
	TimeoutMS int64            `mapstructure:"timeout_ms"`
	Log       stalklog.Config  `mapstructure:"log"`
	Sinks     sink.ConfigGroup `mapstructure:"sinks"`

	// Actions is a list of generic option blobs, one per action to run
	// against every target, decoded by BuildActions. Left as
	// map[string]any here (rather than a typed slice) so viper's own
	// Unmarshal pass doesn't need to know about action-specific shapes.
	Actions []map[string]any `mapstructure:"actions"`
}

// Default returns a Config populated with the engine's documented
// defaults (batch_size=100, timeout_ms=500, per spec.md §4.G).
func Default() Config {
	return Config{
		BatchSize: 100,
		TimeoutMS: 500,
		Log:       stalklog.Config{Level: "info"},
	}
}

// Load reads configuration from path (if non-empty), overlaying Default().
// An environment variable prefixed STALKERMAP_ overrides a key only when
// the config file also sets that key: no defaults are registered with
// viper, so without a config file the environment is not consulted.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix("stalkermap")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
