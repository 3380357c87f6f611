package helpers

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/coral-mesh/profattr/internal/logging"
)

// LogLevelFlag is the persistent flag overriding the configured log level.
const LogLevelFlag = "log-level"

// CommandLogger creates the logger for a command. The --log-level flag, when
// set on the command or a parent, takes precedence over level.
func CommandLogger(cmd *cobra.Command, level, component string) zerolog.Logger {
	if f := cmd.Flag(LogLevelFlag); f != nil && f.Changed {
		level = f.Value.String()
	}

	cfg := logging.DefaultConfig()
	cfg.Level = level
	cfg.Output = cmd.ErrOrStderr()
	return logging.NewWithComponent(cfg, component)
}
