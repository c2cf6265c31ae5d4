// Package config loads CLI settings.
//
// Settings are layered, later layers overriding earlier ones:
//
//  1. built-in defaults
//  2. the TOML config file ($XDG_CONFIG_HOME/rex/config.toml unless a path
//     is given)
//  3. REX_* environment variables (REX_ENGINE, REX_COLOR, ...)
//
// Command-line flags are applied on top by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"go.dw1.io/rex/regexp"
)

// EnvPrefix prefixes every environment variable read by [Load].
const EnvPrefix = "REX_"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the CLI settings.
type Config struct {
	Engine  string        `koanf:"engine"`
	Color   string        `koanf:"color"`
	Longest bool          `koanf:"longest"`
	Timeout time.Duration `koanf:"timeout"`
}

func defaults() map[string]any {
	return map[string]any{
		"engine":  regexp.EngineAuto.String(),
		"color":   ColorAuto,
		"longest": false,
		"timeout": "0s",
	}
}

// DefaultPath returns the config file location under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "rex", "config.toml")
}

// Load reads the configuration. An empty path means [DefaultPath], which may
// be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil || explicit {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the engine name and color mode.
func (c *Config) Validate() error {
	if _, err := regexp.ParseEngine(c.Engine); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("config: color must be %s, %s or %s, got %q", ColorAuto, ColorAlways, ColorNever, c.Color)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("config: negative timeout %s", c.Timeout)
	}

	return nil
}

// Options converts the settings into compile options. The engine option is
// left out when the engine is auto, so a recipe's own engine still applies.
func (c *Config) Options() []regexp.Option {
	opts := []regexp.Option{regexp.WithTimeout(c.Timeout)}
	if engine, _ := regexp.ParseEngine(c.Engine); engine != regexp.EngineAuto {
		opts = append(opts, regexp.WithEngine(engine))
	}
	if c.Longest {
		opts = append(opts, regexp.WithLongest())
	}

	return opts
}
