package registry

import (
	"context"
	"fmt"
	"slices"

	"github.com/baditaflorin/go_format_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_format_normalizer/internal/ports"
)

// Registry dispatches requests to the normalizer registered for their type.
type Registry struct {
	normalizers map[domain.DataType]ports.TypeNormalizer
	logger      ports.Logger
}

// New creates a registry holding the given normalizers. A later entry
// replaces an earlier one for the same type.
func New(logger ports.Logger, normalizers ...ports.TypeNormalizer) *Registry {
	r := &Registry{
		normalizers: make(map[domain.DataType]ports.TypeNormalizer, len(normalizers)),
		logger:      logger,
	}
	for _, n := range normalizers {
		r.normalizers[n.Type()] = n
	}
	return r
}

// Types lists the built-in types first, in SupportedTypes order, then any
// other registered type by name.
func (r *Registry) Types() []domain.DataType {
	var types, extra []domain.DataType
	for _, t := range domain.SupportedTypes {
		if _, ok := r.normalizers[t]; ok {
			types = append(types, t)
		}
	}
	for t := range r.normalizers {
		if !slices.Contains(domain.SupportedTypes, t) {
			extra = append(extra, t)
		}
	}
	slices.Sort(extra)
	return append(types, extra...)
}

// Normalize routes req to its type's normalizer.
func (r *Registry) Normalize(ctx context.Context, req domain.Request) (domain.Result, error) {
	r.logger.Debug("Normalizing value",
		"type", req.Type,
		"input", req.Input,
		"input_format", req.InputFormat,
		"output_format", req.OutputFormat,
	)

	if err := ctx.Err(); err != nil {
		return domain.Result{}, fmt.Errorf("normalization cancelled: %w", err)
	}

	n, ok := r.normalizers[req.Type]
	if !ok {
		err := &domain.UnsupportedTypeError{Type: string(req.Type)}
		r.logger.Error("Unsupported data type", "type", req.Type)
		return domain.Result{}, err
	}

	res, err := n.Normalize(ctx, req)
	if err != nil {
		r.logger.Error("Normalization failed", "type", req.Type, "input", req.Input, "error", err)
		return domain.Result{}, err
	}

	r.logger.Debug("Normalized value", "type", req.Type, "value", res.Value)
	return res, nil
}
