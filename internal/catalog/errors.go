package catalog

import (
	"fmt"
	"strings"
)

// IOError reports an unreadable catalog file. Fatal to the caller.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("catalog %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// FormatError reports a catalog whose header could not be resolved
// against the expected schema.
type FormatError struct {
	Path    string
	Kind    Kind
	Column  string   // canonical column that could not be resolved
	Headers []string // headers actually present
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("catalog %s: missing required %s column %q (available: %s)",
		e.Path, e.Kind, e.Column, strings.Join(e.Headers, ", "))
}

// RangeError reports that too many rows were skipped for the load to be
// trusted. Individual bad rows are skipped and counted; this error fires
// only when the skipped fraction exceeds the configured limit.
type RangeError struct {
	Path        string
	Skipped     int
	RowsRead    int
	MaxFraction float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("catalog %s: %d of %d rows invalid (%.1f%%), exceeds limit of %.1f%%",
		e.Path, e.Skipped, e.RowsRead,
		100*float64(e.Skipped)/float64(e.RowsRead), 100*e.MaxFraction)
}
