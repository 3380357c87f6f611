package helpers

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// HeaderStyle is applied to table headers written to a terminal.
var HeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// FormatterFor creates the formatter for format, styling table headers when
// out is a terminal.
func FormatterFor(format OutputFormat, out io.Writer) (Formatter, error) {
	f, err := NewFormatter(format)
	if err != nil {
		return nil, err
	}
	if tf, ok := f.(*TableFormatter); ok {
		tf.Styled = IsTerminal(out)
	}
	return f, nil
}
