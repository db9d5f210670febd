package loader

import (
	"fmt"
)

// NotFoundError is returned when the source path does not resolve to a
// readable file.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction source %s not found: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ParseError is returned when the source is syntactically invalid or a record
// is structurally invalid. Record is the 1-based record index, or 0 when the
// problem is not tied to a single record (e.g. malformed JSON or a missing
// header column).
type ParseError struct {
	Path   string
	Record int
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Record > 0 && e.Field != "":
		return fmt.Sprintf("%s: record %d: field %q: %v", e.Path, e.Record, e.Field, e.Err)
	case e.Record > 0:
		return fmt.Sprintf("%s: record %d: %v", e.Path, e.Record, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s: field %q: %v", e.Path, e.Field, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError is returned when the input format cannot be
// determined or is not one of json and csv.
type UnsupportedFormatError struct {
	Path   string
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("unable to determine input format of %s: supported extensions are .json and .csv", e.Path)
	}
	return fmt.Sprintf("unsupported input format %q for %s: supported formats are json and csv", e.Format, e.Path)
}
