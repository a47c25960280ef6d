// Package table outputs rows as space aligned columns.
package table

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Formatter converts Rows into an ASCII table format with space separated
// columns
type Formatter struct {
	tabWriter *tabwriter.Writer
}

// New returns a new tabwriter, if headers is not empty it's written as first
// row to the output
func New(headers []string, out io.Writer) *Formatter {
	f := Formatter{
		tabWriter: tabwriter.NewWriter(out, 0, 0, 4, ' ', 0),
	}

	if len(headers) > 0 {
		_, _ = fmt.Fprintln(f.tabWriter, strings.Join(headers, "\t"))
	}

	return &f
}

// WriteRow writes a row to the tabwriter buffer
func (f *Formatter) WriteRow(row ...any) error {
	var sb strings.Builder

	for i, col := range row {
		if col != nil {
			fmt.Fprintf(&sb, "%v", col)
		}

		if i+1 < len(row) {
			sb.WriteByte('\t')
		}
	}

	_, err := fmt.Fprintln(f.tabWriter, sb.String())
	return err
}

// Flush flushes the tabwriter buffer, should be called after all rows were
// written, otherwise the column width might be incorrect. See tabwriter.Flush()
// documentation.
func (f *Formatter) Flush() error {
	return f.tabWriter.Flush()
}
