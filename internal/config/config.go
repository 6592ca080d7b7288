package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metapop/internal/logger"
	"github.com/katalvlaran/metapop/markov"
	"github.com/katalvlaran/metapop/report"
)

// Config holds the model parameters and run settings.
type Config struct {
	// SmallExtinction is e_s, the per-year extinction probability of the small patch.
	SmallExtinction float64 `yaml:"small_extinction" env:"SMALL_EXTINCTION"`
	// LargeExtinction is e_l, the per-year extinction probability of the large patch.
	LargeExtinction float64 `yaml:"large_extinction" env:"LARGE_EXTINCTION"`
	// Recolonization is r, the per-year recolonization probability of an empty patch.
	Recolonization float64 `yaml:"recolonization" env:"RECOLONIZATION"`
	// Years is the horizon T in annual steps.
	Years int `yaml:"years" env:"YEARS"`
	// Tolerance is the absolute row-sum tolerance of the stochasticity check.
	Tolerance float64 `yaml:"tolerance" env:"TOLERANCE"`
	// Method is the propagation method: iterate or squaring.
	Method string `yaml:"method" env:"METHOD"`
	// Format is the output format: text or yaml.
	Format string `yaml:"format" env:"FORMAT"`
	// Curve additionally prints the per-year extinction curve.
	Curve bool `yaml:"curve" env:"CURVE"`
	// LogLevel is the minimum diagnostic level written to stderr.
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
}

const (
	// EnvPrefix prefixes every environment variable read by ApplyEnv.
	EnvPrefix = "METAPOP_"

	// DefaultSmallExtinction is the reference e_s.
	DefaultSmallExtinction = 0.13
	// DefaultLargeExtinction is the reference e_l.
	DefaultLargeExtinction = 0.03
	// DefaultRecolonization is the reference r.
	DefaultRecolonization = 0.02
	// DefaultYears is the reference horizon.
	DefaultYears = 50
	// DefaultLogLevel keeps stderr quiet unless something goes wrong.
	DefaultLogLevel = "warn"

	// DefaultFilePermissions is the file permission used by Save.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNegativeYears is returned for a negative horizon.
	errNegativeYears = errors.New("years must be non-negative")
	// errUnknownLogLevel is returned for log levels zap does not know.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Default returns the reference scenario.
func Default() *Config {
	return &Config{
		SmallExtinction: DefaultSmallExtinction,
		LargeExtinction: DefaultLargeExtinction,
		Recolonization:  DefaultRecolonization,
		Years:           DefaultYears,
		Tolerance:       markov.DefaultTolerance,
		Method:          string(markov.DefaultMethod),
		Format:          string(report.FormatText),
		LogLevel:        DefaultLogLevel,
	}
}

// Load reads the YAML file at path on top of Default. Keys absent from the
// file keep their default. An empty path returns Default unchanged.
// The result is not validated; call Validate once every layer is applied.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overlays METAPOP_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	return applyEnv(cfg, env.Options{Prefix: EnvPrefix})
}

// ApplyEnvFrom overlays variables from environ instead of the process environment.
func ApplyEnvFrom(cfg *Config, environ map[string]string) error {
	return applyEnv(cfg, env.Options{Prefix: EnvPrefix, Environment: environ})
}

func applyEnv(cfg *Config, opts env.Options) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks every field against the domain rules. Model errors keep
// their markov sentinels so callers can match ErrInvalidParameter.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if _, err := markov.NewParams(cfg.SmallExtinction, cfg.LargeExtinction, cfg.Recolonization); err != nil {
		return fmt.Errorf("invalid model parameters: %w", err)
	}

	if cfg.Years < 0 {
		return fmt.Errorf("years=%d: %w: %w", cfg.Years, errNegativeYears, markov.ErrInvalidParameter)
	}

	if err := markov.ValidateTolerance(cfg.Tolerance); err != nil {
		return fmt.Errorf("invalid tolerance: %w", err)
	}

	if _, err := markov.ParseMethod(cfg.Method); err != nil {
		return fmt.Errorf("invalid method: %w", err)
	}

	if _, err := report.ParseFormat(cfg.Format); err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, errUnknownLogLevel)
	}

	return nil
}
