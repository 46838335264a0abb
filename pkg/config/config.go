// Package config loads roughdraw settings from a TOML file.
//
// The file is looked up in this order:
//
//  1. the path passed with --config
//  2. $XDG_CONFIG_HOME/roughdraw/config.toml
//  3. ~/.config/roughdraw/config.toml
//
// A missing file at the default locations yields [Default]. Keys that are
// absent from the file keep their default values, and command-line flags
// override both.
//
//	[render]
//	background = "#ffffff"
//	dpi = 192
//
//	[cache]
//	redis_url = "redis://localhost:6379/0"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/roughdraw/pkg/errors"
)

const (
	appName  = "roughdraw"
	fileName = "config.toml"
)

// Default values.
const (
	DefaultQuality      = 75
	DefaultDPI          = 96.0
	DefaultPrecision    = 2
	DefaultAddr         = ":8080"
	DefaultMaxBodyBytes = 10 << 20
	DefaultTTL          = 24 * time.Hour
)

// Config is the full configuration file.
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// RenderConfig holds output settings.
type RenderConfig struct {
	Background string  `toml:"background"`
	Quality    int     `toml:"quality"`
	DPI        float64 `toml:"dpi"`
	Legacy     bool    `toml:"legacy"`
	Precision  int     `toml:"precision"`
	Workers    int     `toml:"workers"`
	FontsDir   string  `toml:"fonts_dir"`
}

// CacheConfig holds artifact cache settings.
type CacheConfig struct {
	Enabled  bool     `toml:"enabled"`
	RedisURL string   `toml:"redis_url"`
	TTL      Duration `toml:"ttl"`
}

// ServerConfig holds HTTP service settings.
type ServerConfig struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

// Duration is a time.Duration written as a string such as "24h" or "90m".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Quality:   DefaultQuality,
			DPI:       DefaultDPI,
			Precision: DefaultPrecision,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     Duration{DefaultTTL},
		},
		Server: ServerConfig{
			Addr:         DefaultAddr,
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
	}
}

// DefaultPath returns the config file location following the XDG standard.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the configuration at path. An empty path uses [DefaultPath],
// where a missing file is not an error; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if err := errors.ValidateColor(c.Render.Background); err != nil {
		return err
	}
	if err := errors.ValidateQuality(c.Render.Quality); err != nil {
		return err
	}
	if err := errors.ValidateDPI(c.Render.DPI); err != nil {
		return err
	}
	if c.Render.Precision < 0 || c.Render.Precision > 8 {
		return errors.New(errors.ErrCodeInvalidInput, "precision must be between 0 and 8, got %d", c.Render.Precision)
	}
	if c.Render.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "workers must not be negative")
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache ttl must not be negative")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_body_bytes must be positive")
	}
	return nil
}

// Write encodes the configuration as TOML to path, creating parent
// directories.
func (c *Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}
