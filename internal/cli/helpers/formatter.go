package helpers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"
)

// OutputFormat represents the desired output format.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatCSV   OutputFormat = "csv"
)

// SupportedFormats lists every format NewFormatter accepts.
var SupportedFormats = []OutputFormat{FormatTable, FormatJSON, FormatCSV}

// Formatter defines the interface for formatting command results.
// Data is either a *Table or a slice of structs whose exported fields carry
// a `header` tag.
type Formatter interface {
	Format(data interface{}, writer io.Writer) error
}

// NewFormatter creates a new Formatter for the given format.
func NewFormatter(format OutputFormat) (Formatter, error) {
	switch format {
	case FormatTable:
		return &TableFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatCSV:
		return &CSVFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Column describes one column of a Table.
type Column struct {
	// Header is shown in table and CSV output.
	Header string
	// Key names the field in JSON output.
	Key string
}

// Cell is one table value: its display text and the raw value used for JSON.
type Cell struct {
	Display string
	Raw     interface{}
}

// Table is a result set whose columns are only known at run time.
type Table struct {
	Columns []Column
	Rows    [][]Cell
}

// JSONFormatter formats data as JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(data interface{}, writer io.Writer) error {
	if t, ok := data.(*Table); ok {
		records := make([]map[string]interface{}, 0, len(t.Rows))
		for _, row := range t.Rows {
			rec := make(map[string]interface{}, len(row))
			for i, cell := range row {
				rec[t.Columns[i].Key] = cell.Raw
			}
			records = append(records, rec)
		}
		data = records
	}

	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// TableFormatter formats data as an aligned text table. With Styled set the
// header row is rendered with HeaderStyle.
type TableFormatter struct {
	Styled bool
}

func (f *TableFormatter) Format(data interface{}, writer io.Writer) error {
	headers, rows, err := tabulate(data)
	if err != nil {
		return err
	}
	if headers == nil {
		return nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', 0)
	if _, err := fmt.Fprintln(w, strings.Join(headers, "\t")); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	out := buf.String()
	if f.Styled {
		// Style after alignment so escape codes do not skew column widths.
		header, rest, _ := strings.Cut(out, "\n")
		out = HeaderStyle.Render(header) + "\n" + rest
	}

	_, err = io.WriteString(writer, out)
	return err
}

// CSVFormatter formats data as CSV.
type CSVFormatter struct{}

func (f *CSVFormatter) Format(data interface{}, writer io.Writer) error {
	headers, rows, err := tabulate(data)
	if err != nil {
		return err
	}
	if headers == nil {
		return nil
	}

	w := csv.NewWriter(writer)
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// tabulate flattens data into display strings. It returns nil headers for
// an empty result.
func tabulate(data interface{}) ([]string, [][]string, error) {
	if t, ok := data.(*Table); ok {
		if len(t.Columns) == 0 {
			return nil, nil, nil
		}
		headers := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			headers[i] = c.Header
		}
		rows := make([][]string, 0, len(t.Rows))
		for _, row := range t.Rows {
			line := make([]string, len(row))
			for i, cell := range row {
				line[i] = cell.Display
			}
			rows = append(rows, line)
		}
		return headers, rows, nil
	}

	val := reflect.ValueOf(data)
	if val.Kind() != reflect.Slice {
		return nil, nil, fmt.Errorf("data must be a slice or *Table")
	}
	if val.Len() == 0 {
		return nil, nil, nil
	}

	headers := getHeaders(val.Index(0).Type())
	rows := make([][]string, 0, val.Len())
	for i := 0; i < val.Len(); i++ {
		rows = append(rows, getRowValues(val.Index(i)))
	}
	return headers, rows, nil
}

func getHeaders(t reflect.Type) []string {
	var headers []string
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("header"); tag != "" {
			headers = append(headers, tag)
		}
	}
	return headers
}

func getRowValues(v reflect.Value) []string {
	var values []string
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		if t.Field(i).Tag.Get("header") != "" {
			values = append(values, fmt.Sprintf("%v", v.Field(i).Interface()))
		}
	}
	return values
}
