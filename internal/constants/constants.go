// Package constants defines shared configuration constants.
package constants

var (
	ConfigFile = "config.yaml"

	DefaultDir = ".profattr"

	// ConfigDirEnv overrides the base directory DefaultDir is resolved in.
	ConfigDirEnv = "PROFATTR_CONFIG"

	// DefaultFormat is the output format used when none is configured.
	DefaultFormat = "table"

	// DefaultLogLevel keeps the CLI quiet unless asked otherwise.
	DefaultLogLevel = "warn"
)

// DefaultFlatColumns are shown for entry and node views.
var DefaultFlatColumns = []string{
	"fqmn", "self_time", "self_time_pct", "total_time", "total_time_pct",
}

// DefaultDiffColumns are shown for diff-entry and diff-node views.
var DefaultDiffColumns = []string{
	"fqmn", "base_total_time", "new_total_time", "total_time_diff", "total_time_pct_diff",
}
