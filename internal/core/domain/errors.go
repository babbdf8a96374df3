package domain

import (
	"errors"
	"fmt"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrUnsupportedType = errors.New("unsupported data type")
	ErrParse           = errors.New("unable to parse input")
	ErrFormat          = errors.New("invalid format")
)

// UnsupportedTypeError is returned when no rule set exists for a type.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported data type %q", e.Type)
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// ParseError is returned when the input does not match the given or
// inferred input format.
type ParseError struct {
	Type   DataType
	Input  string
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("cannot parse %s %q", e.Type, e.Input)
	if e.Format != "" {
		msg += fmt.Sprintf(" with format %q", e.Format)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// FormatError is returned when an input or output format string is
// itself malformed.
type FormatError struct {
	Type   DataType
	Format string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s format %q: %s", e.Type, e.Format, e.Reason)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
