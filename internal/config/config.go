// Package config loads hexcast settings from .hexcast.yaml, HEXCAST_* env
// vars, and CLI flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/papapumpkin/hexcast/internal/logging"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidConfig indicates a setting with an unrecognised value.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all runtime configuration for a casting session.
type Config struct {
	LexiconPath string         `mapstructure:"lexicon"`
	Prompt      bool           `mapstructure:"prompt"`
	Color       bool           `mapstructure:"color"`
	Format      string         `mapstructure:"format"`
	LogLevel    string         `mapstructure:"log_level"`
	LogFormat   logging.Format `mapstructure:"log_format"`
}

// SetDefaults registers built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("lexicon", "")
	v.SetDefault("prompt", true)
	v.SetDefault("color", true)
	v.SetDefault("format", FormatText)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", string(logging.FormatText))
}

// Load reads configuration from the global viper instance.
func Load() (Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags.
func LoadFrom(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Format = strings.ToLower(cfg.Format)

	if cfg.Format != FormatText && cfg.Format != FormatJSON {
		return Config{}, fmt.Errorf("%w: format %q (want text or json)", ErrInvalidConfig, cfg.Format)
	}
	logFormat, err := logging.ParseFormat(string(cfg.LogFormat))
	if err != nil {
		return Config{}, fmt.Errorf("%w: log_format: %w", ErrInvalidConfig, err)
	}
	cfg.LogFormat = logFormat
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level parses LogLevel into a slog level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}
