// Package config loads wordpath configuration from a YAML file with
// environment-variable overrides. CLI flags are applied on top by cmd.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordpath/builder"
	"github.com/katalvlaran/wordpath/cost"
)

// ErrInvalid indicates a configuration that fails Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WORDPATH_"

// Config is the top-level configuration.
type Config struct {
	Dictionary string        `yaml:"dictionary"`
	Start      string        `yaml:"start"`
	Goal       string        `yaml:"goal"`
	Graph      GraphConfig   `yaml:"graph"`
	Cost       CostConfig    `yaml:"cost"`
	Logging    LoggingConfig `yaml:"logging"`
	Render     RenderConfig  `yaml:"render"`
	Metrics    MetricsConfig `yaml:"metrics"`
}

// GraphConfig controls random graph construction.
type GraphConfig struct {
	MinDegree int   `yaml:"minDegree"`
	MaxDegree int   `yaml:"maxDegree"`
	Seed      int64 `yaml:"seed"`
	// RandomSeed ignores Seed and seeds from the clock.
	RandomSeed bool `yaml:"randomSeed"`
}

// CostConfig controls the step-cost memo.
type CostConfig struct {
	CacheSize int `yaml:"cacheSize"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RenderConfig selects the visualizer output.
type RenderConfig struct {
	// Format is one of "text", "dot", "mermaid", "none".
	Format string `yaml:"format"`
	// Output is a file path; empty writes to stdout.
	Output  string `yaml:"output"`
	NoColor bool   `yaml:"noColor"`
}

// MetricsConfig controls the Prometheus text dump printed after a run.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Render formats accepted by Validate.
var renderFormats = map[string]bool{"text": true, "dot": true, "mermaid": true, "none": true}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Dictionary: "datos.txt",
		Start:      "casa",
		Goal:       "perro",
		Graph: GraphConfig{
			MinDegree: builder.DefaultMinDegree,
			MaxDegree: builder.DefaultMaxDegree,
			Seed:      42,
		},
		Cost:    CostConfig{CacheSize: cost.DefaultMemoSize},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Render:  RenderConfig{Format: "text"},
	}
}

// Load reads path (if non-empty) over the defaults, then applies
// environment overrides. A missing file is an error only when path is set.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyEnv overrides fields from WORDPATH_* variables.
func applyEnv(cfg *Config) error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}
	integer := func(key string, dst *int) error {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("config: %s%s=%q: %w", EnvPrefix, key, v, err)
			}
			*dst = n
		}
		return nil
	}
	boolean := func(key string, dst *bool) error {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("config: %s%s=%q: %w", EnvPrefix, key, v, err)
			}
			*dst = b
		}
		return nil
	}

	str("DICTIONARY", &cfg.Dictionary)
	str("START", &cfg.Start)
	str("GOAL", &cfg.Goal)
	str("LOG_LEVEL", &cfg.Logging.Level)
	str("LOG_FORMAT", &cfg.Logging.Format)
	str("RENDER_FORMAT", &cfg.Render.Format)
	str("RENDER_OUTPUT", &cfg.Render.Output)

	if v, ok := os.LookupEnv(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %sSEED=%q: %w", EnvPrefix, v, err)
		}
		cfg.Graph.Seed = n
	}

	for _, step := range []func() error{
		func() error { return integer("MIN_DEGREE", &cfg.Graph.MinDegree) },
		func() error { return integer("MAX_DEGREE", &cfg.Graph.MaxDegree) },
		func() error { return integer("COST_CACHE_SIZE", &cfg.Cost.CacheSize) },
		func() error { return boolean("RANDOM_SEED", &cfg.Graph.RandomSeed) },
		func() error { return boolean("NO_COLOR", &cfg.Render.NoColor) },
		func() error { return boolean("METRICS", &cfg.Metrics.Enabled) },
	} {
		if err := step(); err != nil {
			return err
		}
	}

	return nil
}

// Validate checks the parts of cfg that do not depend on the dictionary.
// The upper degree bound against the label count is checked by the builder.
func (c Config) Validate() error {
	var problems []string
	if c.Dictionary == "" {
		problems = append(problems, "dictionary is empty")
	}
	if c.Start == "" || c.Goal == "" {
		problems = append(problems, "start and goal must be set")
	}
	if c.Graph.MinDegree < 1 {
		problems = append(problems, fmt.Sprintf("graph.minDegree=%d < 1", c.Graph.MinDegree))
	}
	if c.Graph.MaxDegree < c.Graph.MinDegree {
		problems = append(problems, fmt.Sprintf("graph.maxDegree=%d < graph.minDegree=%d", c.Graph.MaxDegree, c.Graph.MinDegree))
	}
	if !renderFormats[strings.ToLower(c.Render.Format)] {
		problems = append(problems, fmt.Sprintf("render.format=%q is not one of text, dot, mermaid, none", c.Render.Format))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}

	return nil
}
