// Package config holds the process-wide settings of the operator engine: the
// serialization schema version it writes and accepts, the sparse matrix size limit and
// logging. Values come from defaults, an optional file and QOP_* environment variables.
//
// Get loads the configuration once per process; the returned value is a copy and never
// changes afterwards.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. QOP_SCHEMA_MAJOR_VERSION.
const EnvPrefix = "QOP"

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Schema is the serialization version stamp written by this build. Data with a larger
// major version is rejected.
type Schema struct {
	MajorVersion uint32 `mapstructure:"major_version"`
	MinorVersion uint32 `mapstructure:"minor_version"`
}

// Matrix bounds sparse matrix conversion.
type Matrix struct {
	// MaxModes caps the number of spins/modes: operators are 2^n×2^n and
	// super-operators 4^n×4^n.
	MaxModes int `mapstructure:"max_modes"`
}

// Log configures the zerolog logger.
type Log struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Config is the full configuration.
type Config struct {
	Schema Schema `mapstructure:"schema"`
	Matrix Matrix `mapstructure:"matrix"`
	Log    Log    `mapstructure:"log"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Schema: Schema{MajorVersion: 2, MinorVersion: 0},
		Matrix: Matrix{MaxModes: 12},
		Log:    Log{Level: "info"},
	}
}

// Load reads defaults, then the file at path (skipped when empty), then the environment.
func Load(path string) (Config, error) {
	v := viper.New()
	d := Defaults()
	v.SetDefault("schema.major_version", d.Schema.MajorVersion)
	v.SetDefault("schema.minor_version", d.Schema.MinorVersion)
	v.SetDefault("matrix.max_modes", d.Matrix.MaxModes)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.pretty", d.Log.Pretty)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Matrix.MaxModes < 0 || c.Matrix.MaxModes > 31 {
		return fmt.Errorf("%w: matrix.max_modes %d not in [0, 31]", ErrInvalidConfig, c.Matrix.MaxModes)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}

	return nil
}

var (
	once    sync.Once
	current Config
)

// Get returns the process configuration, loading it from the environment on first use.
// An invalid environment falls back to Defaults.
func Get() Config {
	once.Do(func() {
		cfg, err := Load("")
		if err != nil {
			cfg = Defaults()
		}
		current = cfg
	})

	return current
}
