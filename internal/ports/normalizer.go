package ports

import (
	"context"

	"github.com/baditaflorin/go_format_normalizer/internal/core/domain"
)

// TypeNormalizer normalizes values of a single data type.
type TypeNormalizer interface {
	Type() domain.DataType
	Normalize(ctx context.Context, req domain.Request) (domain.Result, error)
}

// Normalizer routes a request to the rule set for its type.
type Normalizer interface {
	Normalize(ctx context.Context, req domain.Request) (domain.Result, error)
}
