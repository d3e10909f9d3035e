package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LEAGUE_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LEAGUE_LOG_FORMAT" env-default:"text"`
}

// OutputConfig selects how the standings are rendered.
type OutputConfig struct {
	Format string `yaml:"format" env:"LEAGUE_FORMAT" env-default:"text"`
}

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
)

var (
	logLevels     = []string{"debug", "info", "warn", "error"}
	logFormats    = []string{"text", "json"}
	outputFormats = []string{FormatText, FormatTable}
)

// Load reads configuration from environment variables and defaults.
// If LEAGUE_CONFIG names a YAML file it is read first; ENV still wins.
// The result is not validated: callers apply their overrides, then call Validate.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("LEAGUE_CONFIG"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	return &cfg, nil
}

// Validate checks that every enumerated setting holds a known value.
func (c *Config) Validate() error {
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}
	if !slices.Contains(outputFormats, c.Output.Format) {
		return fmt.Errorf("output.format must be one of %v (got %q)", outputFormats, c.Output.Format)
	}
	return nil
}
