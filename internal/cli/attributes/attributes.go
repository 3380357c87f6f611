// Package attributes implements the attributes command.
package attributes

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coral-mesh/profattr/internal/aggregation/attribute"
	"github.com/coral-mesh/profattr/internal/cli/helpers"
	"github.com/coral-mesh/profattr/internal/config"
)

// Row is one catalog entry as printed by the attributes command.
type Row struct {
	Key             string `header:"Key" json:"key"`
	Label           string `header:"Label" json:"label"`
	Kind            string `header:"Kind" json:"kind"`
	Representations string `header:"Representations" json:"representations"`
}

// NewAttributesCmd creates the attributes command.
func NewAttributesCmd() *cobra.Command {
	var (
		representation string
		format         string
	)

	cmd := &cobra.Command{
		Use:   "attributes",
		Short: "List the attributes that can be extracted",
		Long: `List every attribute with its value kind and the result representations
it is defined for.

Examples:
  # Full catalog
  profattr attributes

  # Attributes usable in a diff tree view
  profattr attributes --representation diff-node`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				cfg, err := config.NewLoader().Load()
				if err != nil {
					return err
				}
				format = cfg.Format
			}
			return Run(representation, helpers.OutputFormat(format), cmd.OutOrStdout())
		},
	}

	reps := make([]string, 0, len(attribute.Representations()))
	for _, r := range attribute.Representations() {
		reps = append(reps, r.String())
	}

	cmd.Flags().StringVarP(&representation, "representation", "r", "",
		fmt.Sprintf("Only list attributes defined for a representation (%s)", strings.Join(reps, ", ")))
	helpers.AddFormatFlag(cmd, &format, helpers.FormatTable, helpers.SupportedFormats)

	_ = cmd.RegisterFlagCompletionFunc("representation", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return reps, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// Run writes the catalog, optionally filtered to one representation.
func Run(representation string, format helpers.OutputFormat, out io.Writer) error {
	if err := helpers.ValidateFormat(string(format), helpers.SupportedFormats); err != nil {
		return err
	}

	rows, err := Catalog(representation)
	if err != nil {
		return err
	}

	formatter, err := helpers.FormatterFor(format, out)
	if err != nil {
		return err
	}
	return formatter.Format(rows, out)
}

// Catalog returns the catalog rows in declaration order. A non-empty
// representation keeps only the attributes defined for it.
func Catalog(representation string) ([]Row, error) {
	var filter *attribute.Representation
	if representation != "" {
		r, err := attribute.ParseRepresentation(representation)
		if err != nil {
			return nil, err
		}
		filter = &r
	}

	var rows []Row
	for _, a := range attribute.Attributes() {
		if filter != nil && !attribute.Supports(a, *filter) {
			continue
		}

		reps := a.Representations()
		names := make([]string, len(reps))
		for i, r := range reps {
			names[i] = r.String()
		}

		rows = append(rows, Row{
			Key:             a.Key(),
			Label:           a.Label(),
			Kind:            a.Kind().String(),
			Representations: strings.Join(names, ","),
		})
	}
	return rows, nil
}
