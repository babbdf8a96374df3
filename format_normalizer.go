// format_normalizer.go
// Package formatnormalizer rewrites data values into a predefined canonical
// format so that equal values cannot be told apart by how they were typed:
//
//	"(555) 123-4567", "555.123.4567", "+1 555 123 4567"  ->  "5551234567"
//	"03/14/2024" (MM/DD/YYYY), "14-03-2024" (DD-MM-YYYY) ->  "2024-03-14"
//
// For configurable use, see the pkg/normalizer package.
package formatnormalizer

import (
	"context"
	"sync"

	"github.com/baditaflorin/go_format_normalizer/pkg/normalizer"
)

var (
	defaultOnce       sync.Once
	defaultNormalizer *normalizer.Normalizer
	defaultErr        error
)

// NormalizeWithDefaults normalizes input as typeName using the default
// configuration: US phone region, UTC dates, no logging. Empty formats
// select the type defaults.
func NormalizeWithDefaults(typeName, input, inputFormat, outputFormat string) (string, error) {
	defaultOnce.Do(func() {
		defaultNormalizer, defaultErr = normalizer.New()
	})
	if defaultErr != nil {
		return "", defaultErr
	}
	return defaultNormalizer.NormalizeString(context.Background(), typeName, input, inputFormat, outputFormat)
}
