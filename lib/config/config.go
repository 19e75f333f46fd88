// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the master configuration for a RocketWelder UI session.
type Config struct {
	// SessionID scopes the event stream the engine subscribes to.
	// Required when loading from a file; commands may override it
	// with a flag.
	SessionID string `yaml:"session_id"`

	// TickInterval is how often the engine synchronizes, as a
	// time.ParseDuration string. Default: 100ms.
	TickInterval string `yaml:"tick_interval"`

	// Journal configures command/event stream recording.
	Journal JournalConfig `yaml:"journal"`

	// Log configures structured logging.
	Log LogConfig `yaml:"log"`
}

// JournalConfig configures the on-disk stream journal.
type JournalConfig struct {
	// Path is where the journal file is written. Empty disables
	// journaling.
	Path string `yaml:"path"`

	// Compression selects the frame codec: "zstd", "lz4" or "none".
	// Default: zstd.
	Compression string `yaml:"compression"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Level is the minimum level emitted: "debug", "info", "warn"
	// or "error". Default: info.
	Level string `yaml:"level"`
}

// Default returns the default configuration. These defaults ensure
// all fields have sensible zero-values before a file is merged in;
// SessionID has no default and must come from the file or a flag.
func Default() *Config {
	return &Config{
		TickInterval: "100ms",
		Journal: JournalConfig{
			Compression: "zstd",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the ROCKETWELDER_CONFIG environment
// variable. There are no fallbacks: if the variable is not set, Load
// fails.
func Load() (*Config, error) {
	path := os.Getenv("ROCKETWELDER_CONFIG")
	if path == "" {
		return nil, fmt.Errorf("ROCKETWELDER_CONFIG environment variable not set; " +
			"set it to the path of your rocketwelder.yaml config file, or use --config flag")
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path, merging it
// over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values that have a closed domain.
func (c *Config) Validate() error {
	if _, err := c.TickDuration(); err != nil {
		return err
	}
	switch c.Journal.Compression {
	case "zstd", "lz4", "none":
	default:
		return fmt.Errorf("invalid journal compression %q (want zstd, lz4 or none)", c.Journal.Compression)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (want debug, info, warn or error)", c.Log.Level)
	}
	return nil
}

// TickDuration parses TickInterval. Zero and negative intervals are
// rejected: the engine has no meaningful free-running mode.
func (c *Config) TickDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid tick_interval %q: %w", c.TickInterval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid tick_interval %q: must be positive", c.TickInterval)
	}
	return d, nil
}
