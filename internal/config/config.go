// Package config loads and watches gestured's TOML configuration.
package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the runtime settings. The gesture action table itself is
// fixed; configuration only selects where actions are aimed and how the
// tools log.
type Config struct {
	// TargetApp is the application id browser-style actions are gated on.
	TargetApp string `toml:"target_app"`

	// Ydotool is the name or path of the key-injection binary.
	Ydotool string `toml:"ydotool"`

	// LogLevel is the tool logging level: debug, info, warn, or error.
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		TargetApp: "google-chrome",
		Ydotool:   "ydotool",
		LogLevel:  "info",
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.TargetApp == "" {
		return ErrNoTargetApp
	}
	if c.Ydotool == "" {
		return ErrNoInjector
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}
	return nil
}

// DefaultPath returns the standard config file location under the XDG
// config home.
func DefaultPath() (string, error) {
	return xdg.ConfigFile("gestured/config.toml")
}

// Load reads the configuration at path on top of the defaults. A missing
// file yields the defaults, not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // file doesn't exist, not an error
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}
