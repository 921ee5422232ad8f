package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/harrison/aoc/internal/cubes"
)

// HistoryConfig represents answer history configuration
type HistoryConfig struct {
	// Enabled records every answer in the history database
	Enabled bool `yaml:"enabled"`

	// DBPath is the path to the history database
	DBPath string `yaml:"db_path"`
}

// CubesConfig holds the bag content used by day two part one
type CubesConfig struct {
	Red   int `yaml:"red"`
	Green int `yaml:"green"`
	Blue  int `yaml:"blue"`
}

// Limits converts the configured bag into a cubes.Set.
func (c CubesConfig) Limits() cubes.Set {
	return cubes.Set{Red: c.Red, Green: c.Green, Blue: c.Blue}
}

// Config represents aoc configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where run logs are written
	LogDir string `yaml:"log_dir"`

	// LogToFile enables the per-run log file in LogDir
	LogToFile bool `yaml:"log_to_file"`

	// NoColor disables colored console output
	NoColor bool `yaml:"no_color"`

	// History contains answer history configuration
	History HistoryConfig `yaml:"history"`

	// Cubes contains the day two bag limits
	Cubes CubesConfig `yaml:"cubes"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogDir:    filepath.Join(Home(), "logs"),
		LogToFile: false,
		NoColor:   false,
		History: HistoryConfig{
			Enabled: true,
			DBPath:  filepath.Join(Home(), "history.db"),
		},
		Cubes: CubesConfig{
			Red:   cubes.DefaultLimits.Red,
			Green: cubes.DefaultLimits.Green,
			Blue:  cubes.DefaultLimits.Blue,
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Top-level scalars: non-zero values override defaults
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}
	if fileCfg.LogToFile {
		cfg.LogToFile = true
	}
	if fileCfg.NoColor {
		cfg.NoColor = true
	}

	// Nested sections: only keys present in the file override defaults,
	// so "enabled: false" is honored
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if section, ok := rawMap["history"].(map[string]interface{}); ok {
			if _, exists := section["enabled"]; exists {
				cfg.History.Enabled = fileCfg.History.Enabled
			}
			if _, exists := section["db_path"]; exists {
				cfg.History.DBPath = fileCfg.History.DBPath
			}
		}
		if section, ok := rawMap["cubes"].(map[string]interface{}); ok {
			if _, exists := section["red"]; exists {
				cfg.Cubes.Red = fileCfg.Cubes.Red
			}
			if _, exists := section["green"]; exists {
				cfg.Cubes.Green = fileCfg.Cubes.Green
			}
			if _, exists := section["blue"]; exists {
				cfg.Cubes.Blue = fileCfg.Cubes.Blue
			}
		}
	}

	return cfg, nil
}

// Environment variables read by ApplyEnv
const (
	EnvLogLevel  = "AOC_LOG_LEVEL"
	EnvLogDir    = "AOC_LOG_DIR"
	EnvHistoryDB = "AOC_HISTORY_DB"
)

// ApplyEnv loads envFile (ignored when missing) into the process environment
// and applies AOC_* overrides. Variables already set in the environment win
// over the file. A malformed envFile is an error.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogDir)); v != "" {
		c.LogDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvHistoryDB)); v != "" {
		c.History.DBPath = v
	}
	return nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string, logDir *string, noHistory *bool, noColor *bool) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
		c.LogToFile = true
	}
	if noHistory != nil && *noHistory {
		c.History.Enabled = false
	}
	if noColor != nil && *noColor {
		c.NoColor = true
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.LogToFile && c.LogDir == "" {
		return fmt.Errorf("log_dir cannot be empty when log_to_file is enabled")
	}

	if c.History.Enabled && c.History.DBPath == "" {
		return fmt.Errorf("history.db_path cannot be empty when history is enabled")
	}

	if c.Cubes.Red < 0 || c.Cubes.Green < 0 || c.Cubes.Blue < 0 {
		return fmt.Errorf("cubes limits must be >= 0, got red=%d green=%d blue=%d", c.Cubes.Red, c.Cubes.Green, c.Cubes.Blue)
	}

	return nil
}
