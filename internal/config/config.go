// Package config loads the CLI configuration: defaults and FREQ_-prefixed
// environment variables first, then an optional YAML file on top, then
// struct-tag validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/freqassign/experiment"
	"github.com/katalvlaran/freqassign/greedy"
	"github.com/katalvlaran/freqassign/instance"
	"github.com/katalvlaran/freqassign/localsearch"
)

// EnvPrefix prefixes every environment variable.
const EnvPrefix = "FREQ_"

// KindRandom selects instance.Random; every other kind is instance.Special.
const KindRandom = experiment.KindRandom

// ErrInvalidConfig wraps every parse and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full CLI configuration.
type Config struct {
	Environment string `env:"ENV" envDefault:"development" yaml:"environment" validate:"oneof=development production"`
	// LogLevel overrides the environment's default level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Seed     int64  `env:"SEED" envDefault:"42" yaml:"seed"`

	Instance InstanceConfig `envPrefix:"INSTANCE_" yaml:"instance"`
	Solver   SolverConfig   `envPrefix:"SOLVER_" yaml:"solver"`
	Output   OutputConfig   `envPrefix:"OUTPUT_" yaml:"output"`
	Metrics  MetricsConfig  `envPrefix:"METRICS_" yaml:"metrics"`
}

// InstanceConfig shapes the generated problem.
type InstanceConfig struct {
	Nodes       int     `env:"NODES" envDefault:"15" yaml:"nodes" validate:"min=1"`
	Frequencies int     `env:"FREQUENCIES" envDefault:"4" yaml:"frequencies" validate:"min=1"`
	Density     float64 `env:"DENSITY" envDefault:"0.3" yaml:"density" validate:"gte=0,lte=1"`
	Kind        string  `env:"KIND" envDefault:"random" yaml:"kind" validate:"kind"`
}

// SolverConfig selects and tunes the pipeline stages.
type SolverConfig struct {
	Strategy        string  `env:"STRATEGY" envDefault:"mixed" yaml:"strategy" validate:"strategy"`
	GreedyAttempts  int     `env:"GREEDY_ATTEMPTS" envDefault:"5" yaml:"greedy_attempts" validate:"min=1"`
	Method          string  `env:"METHOD" envDefault:"hill-conflicts" yaml:"method" validate:"method"`
	Iterations      int     `env:"ITERATIONS" envDefault:"500" yaml:"iterations" validate:"min=0"`
	Restarts        int     `env:"RESTARTS" envDefault:"0" yaml:"restarts" validate:"min=0"`
	TabuTenure      int     `env:"TABU_TENURE" envDefault:"10" yaml:"tabu_tenure" validate:"min=1"`
	TabuPenalty     float64 `env:"TABU_PENALTY" envDefault:"1000" yaml:"tabu_penalty" validate:"gt=0"`
	ConflictPenalty float64 `env:"CONFLICT_PENALTY" envDefault:"50" yaml:"conflict_penalty" validate:"gt=0"`
}

// OutputConfig controls the report file. An empty Path writes no file.
type OutputConfig struct {
	Path   string `env:"PATH" yaml:"path"`
	Format string `env:"FORMAT" envDefault:"json" yaml:"format" validate:"oneof=json yaml"`
}

// MetricsConfig controls the Prometheus endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `env:"ADDR" yaml:"addr" validate:"omitempty,hostname_port"`
}

var validate = newValidator()

// newValidator registers the name checks backed by the solver parsers.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	parses := func(parse func(string) error) validator.Func {
		return func(fl validator.FieldLevel) bool { return parse(fl.Field().String()) == nil }
	}
	_ = v.RegisterValidation("strategy", parses(func(s string) error {
		_, err := greedy.ParseStrategy(s)
		return err
	}))
	_ = v.RegisterValidation("method", parses(func(s string) error {
		_, err := localsearch.ParseMethod(s)
		return err
	}))
	_ = v.RegisterValidation("kind", parses(func(s string) error {
		if strings.EqualFold(strings.TrimSpace(s), KindRandom) {
			return nil
		}
		_, err := instance.ParseKind(s)
		return err
	}))

	return v
}

// Load reads the process environment and, when path is non-empty, the YAML
// file at path.
func Load(path string) (*Config, error) {
	return LoadFrom(nil, path)
}

// LoadFrom is Load over an explicit environment; nil means the process
// environment.
func LoadFrom(environ map[string]string, path string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			err = aggErr.Errors[0]
		}
		return nil, fmt.Errorf("Load: env: %w: %w", ErrInvalidConfig, err)
	}

	if path != "" {
		if err := cfg.overlay(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration with every default and no overrides.
func Default() *Config {
	cfg, err := LoadFrom(map[string]string{}, "")
	if err != nil {
		panic(err)
	}

	return cfg
}

// overlay decodes the YAML file at path over c. Unknown keys are rejected.
func (c *Config) overlay(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil {
		return fmt.Errorf("Load: %s: %w: %w", path, ErrInvalidConfig, err)
	}

	return nil
}

// Validate checks every field tag.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("Validate: %w: %w", ErrInvalidConfig, err)
	}

	return nil
}
