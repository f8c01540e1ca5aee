package config

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

const DefaultPath = "configs/aoc.yaml"

var ErrInvalidConfig = errors.New("invalid config")

var supportedFormats = map[string]bool{"text": true, "json": true}

// Load reads the config from AOC_CONFIG_PATH, falling back to DefaultPath.
func Load() (*Config, error) {
	path := os.Getenv("AOC_CONFIG_PATH")
	if path == "" {
		path = DefaultPath
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default is the config used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.InputsDir == "" {
		cfg.InputsDir = "inputs"
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}

	for i := range cfg.Days {
		d := &cfg.Days[i]
		if d.Input == "" {
			d.Input = InputName(d.Day)
		}
		if d.Sample != nil && d.Sample.Input == "" {
			d.Sample.Input = InputName(d.Day) + "_test"
		}
	}
}

func (c *Config) Validate() error {
	if !supportedFormats[c.Format] {
		return fmt.Errorf("%w: unsupported format %q", ErrInvalidConfig, c.Format)
	}

	seen := make(map[int]bool, len(c.Days))
	for _, d := range c.Days {
		if d.Day < 1 || d.Day > 25 {
			return fmt.Errorf("%w: day %d out of range 1..25", ErrInvalidConfig, d.Day)
		}
		if seen[d.Day] {
			return fmt.Errorf("%w: duplicate day %d", ErrInvalidConfig, d.Day)
		}
		seen[d.Day] = true
	}

	return nil
}

// Lookup returns the configured entry for day, or a default entry with
// conventional input names when the day is not listed.
func (c *Config) Lookup(day int) Day {
	for _, d := range c.Days {
		if d.Day == day {
			return d
		}
	}
	return Day{Day: day, Input: InputName(day)}
}

func InputName(day int) string {
	return fmt.Sprintf("Day%02d", day)
}
