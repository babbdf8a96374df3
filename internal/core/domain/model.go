package domain

import (
	"strings"
)

// DataType selects the rule set used to normalize a value.
type DataType string

const (
	// Phone normalizes telephone numbers to a digit string.
	Phone DataType = "phone"
	// Date normalizes calendar dates to ISO 8601 by default.
	Date DataType = "date"
	// String trims, collapses whitespace and case-maps free text.
	String DataType = "string"
)

// SupportedTypes lists every built-in data type in CLI help order.
var SupportedTypes = []DataType{Phone, Date, String}

// ParseDataType resolves a type name case-insensitively.
func ParseDataType(name string) (DataType, error) {
	t := DataType(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range SupportedTypes {
		if t == known {
			return t, nil
		}
	}
	return "", &UnsupportedTypeError{Type: name}
}

// Request is a single normalization call. Empty formats select the
// type default.
type Request struct {
	Type         DataType
	Input        string
	InputFormat  string
	OutputFormat string
}

// Result holds the outcome of a normalization.
type Result struct {
	Type  DataType
	Input string
	// Value is the canonical representation.
	Value string
	// InputFormat is the format that actually matched the input.
	InputFormat  string
	OutputFormat string
	// Details holds additional diagnostic information.
	Details map[string]interface{}
}
