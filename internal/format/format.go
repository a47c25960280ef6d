// Package format outputs rows in table, CSV or JSON format.
package format

// Formatter is an interface for formatters
type Formatter interface {
	WriteRow(row ...any) error
	Flush() error
}
