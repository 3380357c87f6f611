// Package config provides configuration loading for profattr.
package config

// Config is the profattr configuration, read from
// ~/.profattr/config.yaml and overlaid with PROFATTR_* environment variables.
type Config struct {
	// Format is the output format: table, json or csv.
	Format string `yaml:"format" env:"PROFATTR_FORMAT"`

	// LogLevel is the zerolog level name.
	LogLevel string `yaml:"log_level" env:"PROFATTR_LOG_LEVEL"`

	// Extract holds defaults for the extract command.
	Extract ExtractConfig `yaml:"extract"`
}

// ExtractConfig holds defaults for the extract command. Columns and SortBy
// name attributes by key or label.
type ExtractConfig struct {
	Columns     []string `yaml:"columns" env:"PROFATTR_COLUMNS"`
	DiffColumns []string `yaml:"diff_columns" env:"PROFATTR_DIFF_COLUMNS"`
	SortBy      string   `yaml:"sort_by" env:"PROFATTR_SORT_BY"`
	Limit       int      `yaml:"limit" env:"PROFATTR_LIMIT"`
	SampleType  string   `yaml:"sample_type" env:"PROFATTR_SAMPLE_TYPE"`
}
