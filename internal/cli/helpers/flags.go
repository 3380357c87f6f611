package helpers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coral-mesh/profattr/internal/aggregation/attribute"
)

// AddFormatFlag adds a standard --format/-o flag to a command.
func AddFormatFlag(cmd *cobra.Command, formatVar *string, defaultFormat OutputFormat, supportedFormats []OutputFormat) {
	formatNames := make([]string, len(supportedFormats))
	for i, f := range supportedFormats {
		formatNames[i] = string(f)
	}

	description := fmt.Sprintf("Output format (%s)", strings.Join(formatNames, ", "))
	cmd.Flags().StringVarP(formatVar, "format", "o", string(defaultFormat), description)

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return formatNames, cobra.ShellCompDirectiveNoFileComp
	})
}

// ValidateFormat checks if the format is in the supported list.
func ValidateFormat(format string, supported []OutputFormat) error {
	for _, s := range supported {
		if format == string(s) {
			return nil
		}
	}

	supportedNames := make([]string, len(supported))
	for i, s := range supported {
		supportedNames[i] = string(s)
	}

	return fmt.Errorf("unsupported format %q, must be one of: %s",
		format, strings.Join(supportedNames, ", "))
}

// RegisterAttributeCompletion completes flagName with attribute keys,
// optionally restricted to those defined for a representation.
func RegisterAttributeCompletion(cmd *cobra.Command, flagName string, reps ...attribute.Representation) {
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var keys []string
		for _, a := range attribute.Attributes() {
			if supportsAll(a, reps) {
				keys = append(keys, a.Key()+"\t"+a.Label())
			}
		}
		return keys, cobra.ShellCompDirectiveNoFileComp
	})
}

func supportsAll(a attribute.Attribute, reps []attribute.Representation) bool {
	for _, r := range reps {
		if !attribute.Supports(a, r) {
			return false
		}
	}
	return true
}

// ParseAttributes resolves attribute names, as given on the command line
// or in config, and checks each against rep.
func ParseAttributes(names []string, rep attribute.Representation) ([]attribute.Attribute, error) {
	attrs := make([]attribute.Attribute, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		a, err := attribute.ParseAttribute(name)
		if err != nil {
			return nil, err
		}
		if err := attribute.Check(a, rep); err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}
