package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the aoc home directory.
const EnvHome = "AOC_HOME"

// Home returns the directory holding config, logs and history.
// Priority order:
//  1. AOC_HOME environment variable (if set)
//  2. .aoc in the current working directory
func Home() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	return ".aoc"
}

// DefaultConfigPath returns the config file used when --config is not given.
func DefaultConfigPath() string {
	return filepath.Join(Home(), "config.yaml")
}

// DefaultEnvFile returns the dotenv file read before environment overrides.
func DefaultEnvFile() string {
	return ".env"
}
