package util

import (
	"errors"
	"fmt"
)

var ErrDegreeNotFound = errors.New("degree not found")

// SchemaError reports a dataset missing a required column. Fatal to dataset
// load; nothing is served from a partially valid source.
type SchemaError struct {
	Dataset string
	Column  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset %s: missing required column %q", e.Dataset, e.Column)
}

// ParseError reports a cell that could not be converted to its declared type.
type ParseError struct {
	Dataset string
	Column  string
	Row     int
	Value   string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dataset %s: row %d column %q: cannot parse %q: %v",
		e.Dataset, e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidProfileError reports a student profile that violates the request
// preconditions. Recoverable: the caller re-prompts, the catalog is untouched.
type InvalidProfileError struct {
	Reason string
}

func (e *InvalidProfileError) Error() string {
	return "invalid profile: " + e.Reason
}
