package registry

import (
	"context"
	"strings"
	"testing"

	"github.com/baditaflorin/go_format_normalizer/internal/adapters/logger"
	"github.com/baditaflorin/go_format_normalizer/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reverser is a stand-in rule set for a custom type.
type reverser struct{ typ domain.DataType }

func (r reverser) Type() domain.DataType { return r.typ }

func (r reverser) Normalize(_ context.Context, req domain.Request) (domain.Result, error) {
	runes := []rune(strings.TrimSpace(req.Input))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return domain.Result{Type: r.typ, Input: req.Input, Value: string(runes)}, nil
}

func TestRegistryDispatch(t *testing.T) {
	r := New(logger.NewNop(), reverser{typ: domain.String}, reverser{typ: "sku"})

	res, err := r.Normalize(context.Background(), domain.Request{Type: "sku", Input: " abc "})
	require.NoError(t, err)
	assert.Equal(t, "cba", res.Value)

	assert.Equal(t, []domain.DataType{domain.String, "sku"}, r.Types())
}

func TestRegistryUnsupportedType(t *testing.T) {
	r := New(logger.NewNop(), reverser{typ: domain.String})

	_, err := r.Normalize(context.Background(), domain.Request{Type: "email", Input: "a@b.c"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	assert.Contains(t, err.Error(), `"email"`)
}

func TestRegistryCancelled(t *testing.T) {
	r := New(logger.NewNop(), reverser{typ: domain.String})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Normalize(ctx, domain.Request{Type: domain.String, Input: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}
