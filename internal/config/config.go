// Package config loads ls-orbitor settings from an optional TOML file and
// ORBITOR_* environment variables.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/litescript/ls-orbitor/internal/errors"
	"github.com/litescript/ls-orbitor/internal/logging"
	"github.com/litescript/ls-orbitor/internal/orbit"
	"github.com/litescript/ls-orbitor/internal/zodiac"
)

// EnvPrefix is prepended to every environment override, with dots in keys
// replaced by underscores (ORBITOR_SEARCH_REFINE).
const EnvPrefix = "ORBITOR"

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Config holds application configuration.
type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Bodies   []string     `mapstructure:"bodies"`
	Output   string       `mapstructure:"output"`
	Kepler   KeplerConfig `mapstructure:"kepler"`
	Search   SearchConfig `mapstructure:"search"`
	Orrery   OrreryConfig `mapstructure:"orrery"`
}

// KeplerConfig tunes the Kepler solver.
type KeplerConfig struct {
	Tolerance     float64 `mapstructure:"tolerance"`
	MaxIterations int     `mapstructure:"max_iterations"`
}

// SearchConfig tunes sign searches.
type SearchConfig struct {
	StepsPerPeriod int           `mapstructure:"steps_per_period"`
	HorizonPeriods float64       `mapstructure:"horizon_periods"`
	Refine         bool          `mapstructure:"refine"`
	Precision      time.Duration `mapstructure:"precision"`
}

// OrreryConfig tunes the interactive view.
type OrreryConfig struct {
	// Step is how far one keypress moves the clock.
	Step time.Duration `mapstructure:"step"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	bodies := make([]string, len(orbit.Bodies))
	for i, b := range orbit.Bodies {
		bodies[i] = strings.ToLower(b.String())
	}
	return &Config{
		LogLevel: "warn",
		Bodies:   bodies,
		Output:   OutputTable,
		Kepler: KeplerConfig{
			Tolerance:     orbit.DefaultTolerance,
			MaxIterations: orbit.DefaultMaxIterations,
		},
		Search: SearchConfig{
			StepsPerPeriod: zodiac.DefaultStepsPerPeriod,
			HorizonPeriods: zodiac.DefaultHorizonPeriods,
			Refine:         true,
			Precision:      time.Minute,
		},
		Orrery: OrreryConfig{
			Step: 24 * time.Hour,
		},
	}
}

// DefaultDir returns ~/.ls-orbitor, or "" if the home directory is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ls-orbitor")
}

// Load reads configuration. An explicit path must exist; with an empty path
// the default directory is searched for config.toml and a missing file
// yields the defaults. Environment variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if dir := DefaultDir(); dir != "" {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !stderrors.As(err, &notFound) {
				return nil, fmt.Errorf("read config in %s: %w", dir, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("bodies", d.Bodies)
	v.SetDefault("output", d.Output)
	v.SetDefault("kepler.tolerance", d.Kepler.Tolerance)
	v.SetDefault("kepler.max_iterations", d.Kepler.MaxIterations)
	v.SetDefault("search.steps_per_period", d.Search.StepsPerPeriod)
	v.SetDefault("search.horizon_periods", d.Search.HorizonPeriods)
	v.SetDefault("search.refine", d.Search.Refine)
	v.SetDefault("search.precision", d.Search.Precision)
	v.SetDefault("orrery.step", d.Orrery.Step)
}

// Validate checks every field and reports the first problem as an
// INVALID_REQUEST error.
func (c *Config) Validate() error {
	if _, ok := logging.LookupLevel(c.LogLevel); !ok {
		return errors.NewInvalidRequest(fmt.Sprintf("log_level %q: want debug, info, warn or error", c.LogLevel))
	}
	if c.Output != OutputTable && c.Output != OutputJSON {
		return errors.NewInvalidRequest(fmt.Sprintf("output %q: want table or json", c.Output))
	}
	if _, err := orbit.ParseBodies(c.Bodies); err != nil {
		return err
	}
	if c.Kepler.Tolerance <= 0 || c.Kepler.Tolerance > 1e-3 {
		return errors.NewInvalidRequest(fmt.Sprintf("kepler.tolerance %g: want (0, 1e-3]", c.Kepler.Tolerance))
	}
	if c.Kepler.MaxIterations < 1 || c.Kepler.MaxIterations > 1000 {
		return errors.NewInvalidRequest(fmt.Sprintf("kepler.max_iterations %d: want 1..1000", c.Kepler.MaxIterations))
	}
	if c.Search.StepsPerPeriod < zodiac.SignCount {
		return errors.NewInvalidRequest(fmt.Sprintf("search.steps_per_period %d: want at least %d", c.Search.StepsPerPeriod, zodiac.SignCount))
	}
	if c.Search.HorizonPeriods <= 0 {
		return errors.NewInvalidRequest(fmt.Sprintf("search.horizon_periods %g: want > 0", c.Search.HorizonPeriods))
	}
	if c.Search.Precision <= 0 {
		return errors.NewInvalidRequest(fmt.Sprintf("search.precision %s: want > 0", c.Search.Precision))
	}
	if c.Orrery.Step <= 0 {
		return errors.NewInvalidRequest(fmt.Sprintf("orrery.step %s: want > 0", c.Orrery.Step))
	}
	return nil
}

// EngineConfig returns the solver settings for orbit.NewEngine.
func (c *Config) EngineConfig() orbit.Config {
	return orbit.Config{
		Tolerance:     c.Kepler.Tolerance,
		MaxIterations: c.Kepler.MaxIterations,
	}
}

// SearchOptions returns the settings for zodiac.NewSearcher.
func (c *Config) SearchOptions() zodiac.Options {
	return zodiac.Options{
		StepsPerPeriod: c.Search.StepsPerPeriod,
		HorizonPeriods: c.Search.HorizonPeriods,
		Refine:         c.Search.Refine,
		Precision:      durationDays(c.Search.Precision),
	}
}

// BodyList returns the configured default bodies.
func (c *Config) BodyList() []orbit.Body {
	bodies, err := orbit.ParseBodies(c.Bodies)
	if err != nil {
		return orbit.Bodies
	}
	return bodies
}

// OrreryStepDays returns the orrery step in days.
func (c *Config) OrreryStepDays() float64 {
	return durationDays(c.Orrery.Step)
}

func durationDays(d time.Duration) float64 {
	return d.Hours() / 24
}
