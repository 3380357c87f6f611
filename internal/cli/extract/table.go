package extract

import (
	"sort"

	"github.com/coral-mesh/profattr/internal/aggregation/attribute"
	"github.com/coral-mesh/profattr/internal/cli/helpers"
)

type row struct {
	values []attribute.Value
	depth  int
	sortBy attribute.Value
}

// extractRows applies one extractor per column to every item matching the
// filter expression. When sorted is set, rows are ordered by sortAttr:
// numbers descending, text ascending.
func extractRows[T any](shape attribute.Shape[T], attrs []attribute.Attribute, items []T, depths []int, filter string, sortAttr attribute.Attribute, sorted bool) ([]row, error) {
	keep, err := newRowFilter(filter, shape)
	if err != nil {
		return nil, err
	}

	extractors := make([]attribute.Extractor[T], len(attrs))
	for i, a := range attrs {
		ext, err := attribute.Lookup(a, shape)
		if err != nil {
			return nil, err
		}
		extractors[i] = ext
	}

	var sortExt attribute.Extractor[T]
	if sorted {
		ext, err := attribute.Lookup(sortAttr, shape)
		if err != nil {
			return nil, err
		}
		sortExt = ext
	}

	rows := make([]row, 0, len(items))
	for i, item := range items {
		ok, err := keep.match(item)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		r := row{values: make([]attribute.Value, len(extractors))}
		for j, ext := range extractors {
			r.values[j] = ext(item)
		}
		if depths != nil {
			r.depth = depths[i]
		}
		if sortExt != nil {
			r.sortBy = sortExt(item)
		}
		rows = append(rows, r)
	}

	if sorted {
		descending := sortAttr.Kind() != attribute.Text
		sort.SliceStable(rows, func(i, j int) bool {
			c := helpers.CompareValues(rows[i].sortBy, rows[j].sortBy)
			if descending {
				return c > 0
			}
			return c < 0
		})
	}

	return rows, nil
}

func buildTable(attrs []attribute.Attribute, rows []row, indent bool) *helpers.Table {
	table := &helpers.Table{Columns: make([]helpers.Column, len(attrs))}
	for i, a := range attrs {
		table.Columns[i] = helpers.Column{Header: a.Label(), Key: a.Key()}
	}

	table.Rows = make([][]helpers.Cell, len(rows))
	for i, r := range rows {
		cells := make([]helpers.Cell, len(r.values))
		for j, v := range r.values {
			display := helpers.FormatValue(v)
			if indent && attrs[j] == attribute.FQMN {
				display = helpers.IndentKey(display, r.depth)
			}
			cells[j] = helpers.Cell{Display: display, Raw: helpers.RawValue(v)}
		}
		table.Rows[i] = cells
	}
	return table
}
