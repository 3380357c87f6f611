package config

import (
	"fmt"

	"github.com/coral-mesh/profattr/internal/aggregation/attribute"
)

var validFormats = map[string]bool{"table": true, "json": true, "csv": true}

// Validate checks that the configuration is usable. Attribute names are
// only checked for existence; whether they apply to a given view is decided
// when the view is known.
func (c *Config) Validate() error {
	if !validFormats[c.Format] {
		return fmt.Errorf("unsupported format %q (expected table, json or csv)", c.Format)
	}

	if c.Extract.Limit < 0 {
		return fmt.Errorf("extract.limit must not be negative, got %d", c.Extract.Limit)
	}

	for _, name := range append(append([]string(nil), c.Extract.Columns...), c.Extract.DiffColumns...) {
		if _, err := attribute.ParseAttribute(name); err != nil {
			return fmt.Errorf("extract columns: %w", err)
		}
	}

	if c.Extract.SortBy != "" {
		if _, err := attribute.ParseAttribute(c.Extract.SortBy); err != nil {
			return fmt.Errorf("extract.sort_by: %w", err)
		}
	}

	return nil
}
