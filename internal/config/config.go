// Package config loads the benchmark configuration from built-in defaults,
// an optional YAML file and SKIRMISH_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config controls the benchmark sweep.
type Config struct {
	// EntityCounts is the sweep of population sizes, one report row each.
	EntityCounts []int `yaml:"entity_counts"`
	// Repetitions is the number of full runs averaged per population size.
	Repetitions int `yaml:"repetitions"`
	// Frames is the number of simulation steps per run.
	Frames int `yaml:"frames"`
	// Seed feeds the deterministic generator; runs with the same seed and
	// population size are reproducible.
	Seed uint32 `yaml:"seed"`
	// DeltaTime is the simulated time step in seconds.
	DeltaTime float32 `yaml:"delta_time"`
	// Profile selects an optional profile around the whole sweep: "cpu",
	// "mem" or empty.
	Profile string `yaml:"profile"`

	Load LoadConfig `yaml:"load"`
}

// LoadConfig controls the optional background CPU load. Enabling it
// measures frame times under contention and perturbs absolute numbers, so
// it is off by default.
type LoadConfig struct {
	Enabled bool `yaml:"enabled"`
	Workers int  `yaml:"workers"`
}

// Default returns the reference sweep configuration.
func Default() Config {
	return Config{
		EntityCounts: []int{500, 1000, 5000, 10000, 15000, 25000, 50000, 100000},
		Repetitions:  5,
		Frames:       60,
		Seed:         12345,
		DeltaTime:    0.016,
	}
}

// FromEnv builds the configuration from defaults, the optional YAML file
// named by SKIRMISH_CONFIG, and SKIRMISH_* variable overrides, in that
// order.
func FromEnv() (Config, error) {
	cfg := Default()
	if path := os.Getenv("SKIRMISH_CONFIG"); path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads a YAML configuration file over the defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SKIRMISH_SEED"); v != "" {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			cfg.Seed = uint32(parsed)
		}
	}
	if v := os.Getenv("SKIRMISH_REPETITIONS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Repetitions = parsed
		}
	}
	if v := os.Getenv("SKIRMISH_FRAMES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Frames = parsed
		}
	}
	if v := os.Getenv("SKIRMISH_ENTITY_COUNTS"); v != "" {
		if counts, err := parseCounts(v); err == nil {
			cfg.EntityCounts = counts
		}
	}
	if v := os.Getenv("SKIRMISH_PROFILE"); v != "" {
		cfg.Profile = strings.ToLower(v)
	}
	if v := os.Getenv("SKIRMISH_LOAD"); v != "" {
		cfg.Load.Enabled = strings.EqualFold(v, "true")
	}
	if v := os.Getenv("SKIRMISH_LOAD_WORKERS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Load.Workers = parsed
		}
	}
}

func parseCounts(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	counts := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid entity count %q: %w", p, err)
		}
		counts = append(counts, n)
	}
	return counts, nil
}

// Validate rejects configurations the benchmark cannot run.
func (c *Config) Validate() error {
	if len(c.EntityCounts) == 0 {
		return fmt.Errorf("entity_counts must not be empty")
	}
	for _, n := range c.EntityCounts {
		if n < 0 {
			return fmt.Errorf("entity counts must be non-negative, got %d", n)
		}
	}
	if c.Repetitions <= 0 {
		return fmt.Errorf("repetitions must be positive, got %d", c.Repetitions)
	}
	if c.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", c.Frames)
	}
	if c.DeltaTime <= 0 {
		return fmt.Errorf("delta_time must be positive, got %v", c.DeltaTime)
	}
	switch c.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("unknown profile mode %q", c.Profile)
	}
	if c.Load.Workers < 0 {
		return fmt.Errorf("load workers must be non-negative, got %d", c.Load.Workers)
	}
	return nil
}
