// Package cli wires the profattr commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/coral-mesh/profattr/internal/cli/attributes"
	"github.com/coral-mesh/profattr/internal/cli/extract"
	"github.com/coral-mesh/profattr/internal/cli/helpers"
	"github.com/coral-mesh/profattr/pkg/version"
)

// NewRootCmd creates the profattr command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "profattr",
		Short: "profattr - typed attribute extraction for pprof profiles",
		Long: `Aggregate pprof profiles per method and extract typed attributes from
the results: self and total time, sample counts, their shares of the profile,
and base/new/diff comparisons between two profiles.

Attributes are defined per result representation (entry, node, diff-entry,
diff-node). Asking for an attribute a view does not define is an error.

Configuration is read from ~/.profattr/config.yaml and PROFATTR_* environment
variables; command-line flags take precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(helpers.LogLevelFlag, "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(extract.NewExtractCmd())
	rootCmd.AddCommand(attributes.NewAttributesCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("profattr version %s\n", version.Version)
			cmd.Printf("Git commit: %s\n", version.GitCommit)
			cmd.Printf("Build date: %s\n", version.BuildDate)
			cmd.Printf("Go version: %s\n", version.GoVersion)
		},
	}
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
