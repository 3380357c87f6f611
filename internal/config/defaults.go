package config

import "github.com/coral-mesh/profattr/internal/constants"

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Format:   constants.DefaultFormat,
		LogLevel: constants.DefaultLogLevel,
		Extract: ExtractConfig{
			Columns:     append([]string(nil), constants.DefaultFlatColumns...),
			DiffColumns: append([]string(nil), constants.DefaultDiffColumns...),
			SortBy:      "total_time",
			Limit:       20,
		},
	}
}
