// Package extract implements the extract command.
package extract

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/coral-mesh/profattr/internal/aggregation/attribute"
	"github.com/coral-mesh/profattr/internal/aggregation/pprofsource"
	"github.com/coral-mesh/profattr/internal/aggregation/result"
	"github.com/coral-mesh/profattr/internal/cli/helpers"
	"github.com/coral-mesh/profattr/internal/config"
)

// View selects between the flat method list and the call tree.
type View string

const (
	ViewFlat View = "flat"
	ViewTree View = "tree"
)

// Options holds the resolved settings of one extraction.
type Options struct {
	Profile    string
	Base       string
	View       View
	Columns    []string
	SortBy     string
	Limit      int
	Format     helpers.OutputFormat
	SampleType string
	// Filter is a CEL expression over attribute keys, e.g.
	// "self_time_pct > 0.05 && fqmn.startsWith('main.')".
	Filter string

	// sortExplicit is set when the sort attribute came from the command line,
	// making an unsupported one an error instead of falling back to the
	// natural order.
	sortExplicit bool
}

// Representation returns the result representation the options select.
func (o Options) Representation() attribute.Representation {
	switch {
	case o.Base != "" && o.View == ViewTree:
		return attribute.DiffNode
	case o.Base != "":
		return attribute.DiffEntry
	case o.View == ViewTree:
		return attribute.Node
	default:
		return attribute.Entry
	}
}

// NewExtractCmd creates the extract command.
func NewExtractCmd() *cobra.Command {
	var (
		base       string
		view       string
		columns    []string
		sortBy     string
		limit      int
		format     string
		sampleType string
		filter     string
	)

	cmd := &cobra.Command{
		Use:   "extract PROFILE",
		Short: "Extract attributes from a pprof profile",
		Long: `Aggregate a pprof profile per method and print the selected attributes.

With --base, the profile is compared against a baseline profile and the
diff attributes (base_*, new_*, *_diff) become available.

Examples:
  # Hottest methods by total time
  profattr extract cpu.pb.gz

  # Call tree with counts
  profattr extract cpu.pb.gz --view tree --columns fqmn,self_count,total_count

  # Methods that use more than 5% of the CPU on their own
  profattr extract cpu.pb.gz --filter "self_time_pct > 0.05"

  # What changed since the last release
  profattr extract new.pb.gz --base old.pb.gz --sort total_time_pct_diff

  # List the attributes available for a view
  profattr attributes --representation diff-node`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader().Load()
			if err != nil {
				return err
			}

			opts := Options{
				Profile:    args[0],
				Base:       base,
				View:       View(view),
				Columns:    columns,
				SortBy:     sortBy,
				Limit:      limit,
				Format:     helpers.OutputFormat(format),
				SampleType: sampleType,
				Filter:     filter,
			}
			opts.sortExplicit = cmd.Flags().Changed("sort")
			applyConfig(cmd, &opts, cfg)

			logger := helpers.CommandLogger(cmd, cfg.LogLevel, "cli")
			return Run(opts, cmd.OutOrStdout(), logger)
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "Baseline profile to compare against")
	cmd.Flags().StringVar(&view, "view", string(ViewFlat), "Result view (flat, tree)")
	cmd.Flags().StringSliceVarP(&columns, "columns", "c", nil, "Attributes to print, by key or label")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Attribute to sort flat views by")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of rows (0 for no limit)")
	cmd.Flags().StringVar(&filter, "filter", "", "CEL expression rows must satisfy, e.g. \"self_time_pct > 0.05\"")
	cmd.Flags().StringVar(&sampleType, "sample-type", "", "Sample type to read time from (e.g. cpu)")
	helpers.AddFormatFlag(cmd, &format, helpers.FormatTable, helpers.SupportedFormats)

	helpers.RegisterAttributeCompletion(cmd, "columns")
	helpers.RegisterAttributeCompletion(cmd, "sort")
	_ = cmd.RegisterFlagCompletionFunc("view", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(ViewFlat), string(ViewTree)}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// applyConfig fills the options the command line left unset.
func applyConfig(cmd *cobra.Command, opts *Options, cfg *config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("format") {
		opts.Format = helpers.OutputFormat(cfg.Format)
	}
	if !flags.Changed("columns") {
		if opts.Base != "" {
			opts.Columns = cfg.Extract.DiffColumns
		} else {
			opts.Columns = cfg.Extract.Columns
		}
	}
	if !flags.Changed("sort") {
		opts.SortBy = cfg.Extract.SortBy
	}
	if !flags.Changed("limit") {
		opts.Limit = cfg.Extract.Limit
	}
	if !flags.Changed("sample-type") {
		opts.SampleType = cfg.Extract.SampleType
	}
}

// Run loads the profiles named by opts and writes the extracted table to out.
func Run(opts Options, out io.Writer, logger zerolog.Logger) error {
	if opts.View != ViewFlat && opts.View != ViewTree {
		return fmt.Errorf("unsupported view %q, must be one of: %s, %s", opts.View, ViewFlat, ViewTree)
	}
	if opts.Limit < 0 {
		return fmt.Errorf("limit must be non-negative, got %d", opts.Limit)
	}
	if err := helpers.ValidateFormat(string(opts.Format), helpers.SupportedFormats); err != nil {
		return err
	}

	rep := opts.Representation()
	attrs, err := helpers.ParseAttributes(opts.Columns, rep)
	if err != nil {
		return fmt.Errorf("invalid column: %w", err)
	}
	if len(attrs) == 0 {
		return fmt.Errorf("no columns selected")
	}

	sortAttr, sortOK, err := resolveSort(opts, rep)
	if err != nil {
		return err
	}
	if !sortOK && opts.SortBy != "" && opts.View == ViewFlat {
		logger.Debug().
			Str("sort_by", opts.SortBy).
			Stringer("representation", rep).
			Msg("Sort attribute not defined for representation, keeping natural order")
	}

	loader := pprofsource.NewLoader(pprofsource.Options{SampleType: opts.SampleType}, logger)
	agg, err := loader.LoadFile(opts.Profile)
	if err != nil {
		return err
	}

	var rows []row
	if opts.Base == "" {
		rows, err = flatRows(agg, opts, attrs, sortAttr, sortOK)
	} else {
		baseAgg, loadErr := loader.LoadFile(opts.Base)
		if loadErr != nil {
			return loadErr
		}
		rows, err = diffRows(result.Diff(baseAgg, agg), opts, attrs, sortAttr, sortOK)
	}
	if err != nil {
		return err
	}

	if opts.Limit > 0 && len(rows) > opts.Limit {
		rows = rows[:opts.Limit]
	}

	logger.Debug().
		Stringer("representation", rep).
		Int("columns", len(attrs)).
		Int("rows", len(rows)).
		Msg("Extracted attributes")

	formatter, err := helpers.FormatterFor(opts.Format, out)
	if err != nil {
		return err
	}
	return formatter.Format(buildTable(attrs, rows, opts.View == ViewTree), out)
}

// resolveSort returns the attribute flat rows are ordered by. Tree views
// keep call-tree order and never sort.
func resolveSort(opts Options, rep attribute.Representation) (attribute.Attribute, bool, error) {
	if opts.SortBy == "" || opts.View == ViewTree {
		return 0, false, nil
	}

	a, err := attribute.ParseAttribute(opts.SortBy)
	if err != nil {
		return 0, false, fmt.Errorf("invalid sort attribute: %w", err)
	}
	if err := attribute.Check(a, rep); err != nil {
		if opts.sortExplicit {
			return 0, false, fmt.Errorf("invalid sort attribute: %w", err)
		}
		return 0, false, nil
	}
	return a, true, nil
}

func flatRows(agg *result.Aggregate, opts Options, attrs []attribute.Attribute, sortAttr attribute.Attribute, sorted bool) ([]row, error) {
	if opts.View == ViewTree {
		var items []attribute.Flat
		var depths []int
		agg.Walk(func(n *result.Node, depth int) {
			items = append(items, n)
			depths = append(depths, depth)
		})
		return extractRows(attribute.NodeShape, attrs, items, depths, opts.Filter, sortAttr, false)
	}

	items := make([]attribute.Flat, len(agg.Entries))
	for i, e := range agg.Entries {
		items[i] = e
	}
	return extractRows(attribute.EntryShape, attrs, items, nil, opts.Filter, sortAttr, sorted)
}

func diffRows(diff *result.DiffAggregate, opts Options, attrs []attribute.Attribute, sortAttr attribute.Attribute, sorted bool) ([]row, error) {
	if opts.View == ViewTree {
		var items []attribute.Diffed
		var depths []int
		diff.Walk(func(d *result.DiffNode, depth int) {
			items = append(items, d)
			depths = append(depths, depth)
		})
		return extractRows(attribute.DiffNodeShape, attrs, items, depths, opts.Filter, sortAttr, false)
	}

	items := make([]attribute.Diffed, len(diff.Entries))
	for i, d := range diff.Entries {
		items[i] = d
	}
	return extractRows(attribute.DiffEntryShape, attrs, items, nil, opts.Filter, sortAttr, sorted)
}
