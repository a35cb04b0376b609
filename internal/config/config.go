package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Version is the crease release version.
const Version = "0.3.0"

// Accepted values for the enumerated settings.
var (
	Formats     = []string{"text", "json", "yaml"}
	Verbosities = []string{"minimal", "standard", "full"}
	LogLevels   = []string{"debug", "info", "warn", "warning", "error"}
)

// Config holds all crease configuration.
type Config struct {
	Source   SourceConfig
	Output   OutputConfig
	LogLevel string `env:"CREASE_LOG_LEVEL" envDefault:"info"`
}

// SourceConfig selects how batch input is read.
type SourceConfig struct {
	Provider string `env:"CREASE_SOURCE" envDefault:"lines"` // "lines", "yaml", "json"
}

// OutputConfig holds output rendering settings.
type OutputConfig struct {
	Format    string `env:"CREASE_FORMAT" envDefault:"text"`         // "text", "json", "yaml"
	Verbosity string `env:"CREASE_VERBOSITY" envDefault:"standard"` // "minimal", "standard", "full"
	Pretty    bool   `env:"CREASE_PRETTY"`                          // indent JSON output
	File      string `env:"CREASE_OUTPUT_FILE"`                     // NDJSON results archive, appended
}

// Load reads configuration from environment variables with defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Source.Provider) == "" {
		errs = append(errs, errors.New("CREASE_SOURCE must not be empty"))
	}
	if !slices.Contains(Formats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("CREASE_FORMAT %q: format must be one of %s", c.Output.Format, strings.Join(Formats, ", ")))
	}
	if !slices.Contains(Verbosities, c.Output.Verbosity) {
		errs = append(errs, fmt.Errorf("CREASE_VERBOSITY %q: verbosity must be one of %s", c.Output.Verbosity, strings.Join(Verbosities, ", ")))
	}
	if !slices.Contains(LogLevels, strings.ToLower(c.LogLevel)) {
		errs = append(errs, fmt.Errorf("CREASE_LOG_LEVEL %q: unknown log level", c.LogLevel))
	}
	return errors.Join(errs...)
}
