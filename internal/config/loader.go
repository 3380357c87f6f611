package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/coral-mesh/profattr/internal/constants"
	"github.com/coral-mesh/profattr/internal/safe"
)

// Loader handles loading configuration files.
type Loader struct {
	homeDir string
}

// NewLoader creates a new config loader.
// The base directory is resolved in this order:
//  1. PROFATTR_CONFIG environment variable.
//  2. User home directory (~/).
//
// Without either, the loader still works and Load returns defaults with
// environment overrides applied.
func NewLoader() *Loader {
	if baseDir := os.Getenv(constants.ConfigDirEnv); baseDir != "" {
		return &Loader{homeDir: baseDir}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return &Loader{}
	}
	return &Loader{homeDir: homeDir}
}

// NewLoaderWithDir creates a loader rooted at dir.
func NewLoaderWithDir(dir string) *Loader {
	return &Loader{homeDir: dir}
}

// ConfigPath returns the path to the config file, or "" when no base
// directory could be resolved.
func (l *Loader) ConfigPath() string {
	if l.homeDir == "" {
		return ""
	}
	return filepath.Join(l.homeDir, constants.DefaultDir, constants.ConfigFile)
}

// Load loads the configuration.
// Returns the default config if the file doesn't exist, then applies
// environment variable overrides and validates the result.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if path := l.ConfigPath(); path != "" {
		data, err := safe.ReadFile(path, nil)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := MergeFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
