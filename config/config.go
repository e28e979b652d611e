// Package config loads the pfa configuration.
//
// Values come, in increasing priority, from the defaults, the TOML files given
// to Load, and the PFA_* environment variables (a .env file in the working
// directory is loaded first and never overrides the environment).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for pfa.
type Config struct {
	Currency      string        `toml:"currency"`       // ISO code of brokerage amounts
	ExportFile    string        `toml:"export_file"`    // default output of the export command
	TopN          int           `toml:"top_n"`          // size of the top gainers and losers lists
	AnalysisDelay string        `toml:"analysis_delay"` // processing time of an uploaded export
	Logging       LoggingConfig `toml:"logging"`
	Charts        ChartsConfig  `toml:"charts"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // console or json
}

// ChartsConfig holds the size of rendered charts in pixels.
type ChartsConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// NewDefaultConfig returns the configuration used when nothing is set.
func NewDefaultConfig() *Config {
	return &Config{
		Currency:      "INR",
		ExportFile:    "portfolio_analysis.csv",
		TopN:          5,
		AnalysisDelay: "2s",
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Charts: ChartsConfig{
			Width:  800,
			Height: 500,
		},
	}
}

// GetAnalysisDelay parses and returns the analysis delay.
func (c *Config) GetAnalysisDelay() time.Duration {
	d, err := time.ParseDuration(c.AnalysisDelay)
	if err != nil || d < 0 {
		return 2 * time.Second
	}
	return d
}

// Load loads configuration from files with environment overrides.
// Missing files are skipped, later files override earlier ones.
func Load(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()
	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("PFA_CURRENCY"); v != "" {
		config.Currency = strings.ToUpper(v)
	}
	if v := os.Getenv("PFA_EXPORT_FILE"); v != "" {
		config.ExportFile = v
	}
	if v := os.Getenv("PFA_TOP_N"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.TopN = n
		}
	}
	if v := os.Getenv("PFA_ANALYSIS_DELAY"); v != "" {
		config.AnalysisDelay = v
	}
	if v := os.Getenv("PFA_LOG_LEVEL"); v != "" {
		config.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("PFA_LOG_FORMAT"); v != "" {
		config.Logging.Format = strings.ToLower(v)
	}
	if v := os.Getenv("PFA_CHART_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Charts.Width = n
		}
	}
	if v := os.Getenv("PFA_CHART_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Charts.Height = n
		}
	}
}

// Validate checks values that cannot be defaulted silently.
func (c *Config) Validate() error {
	if len(c.Currency) != 3 {
		return fmt.Errorf("invalid currency %q: want a 3 letters ISO code", c.Currency)
	}
	if c.TopN < 0 {
		return fmt.Errorf("invalid top_n %d: must not be negative", c.TopN)
	}
	if _, err := time.ParseDuration(c.AnalysisDelay); err != nil {
		return fmt.Errorf("invalid analysis_delay %q: %w", c.AnalysisDelay, err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging format %q: want console or json", c.Logging.Format)
	}
	if c.Charts.Width <= 0 || c.Charts.Height <= 0 {
		return fmt.Errorf("invalid chart size %dx%d", c.Charts.Width, c.Charts.Height)
	}
	return nil
}
