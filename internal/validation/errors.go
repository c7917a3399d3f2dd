// Package validation provides schema checking for the gift log and the typed
// errors the ingestion layer surfaces. All validation failures are fatal for
// the run; no row is ever skipped.
package validation

import (
	"fmt"
	"strings"
)

// SchemaError reports input that does not match the expected column schema.
type SchemaError struct {
	Missing  []string
	Expected []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf(
		"input does not match expected schema: missing columns [%s]; expected at minimum [%s]",
		strings.Join(e.Missing, ", "), strings.Join(e.Expected, ", "),
	)
}

// ParseError reports an unparseable cell value. Row is 1-indexed over data
// rows, excluding the header.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: failed to parse %s value %q: %v", e.Row, e.Column, e.Value, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
