package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataType(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want DataType
	}{
		{"lower", "phone", Phone},
		{"upper", "DATE", Date},
		{"padded", "  string ", String},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDataType(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseDataType("email")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedType)
		var ute *UnsupportedTypeError
		require.True(t, errors.As(err, &ute))
		assert.Equal(t, "email", ute.Type)
	})
}

func TestParseErrorWrapping(t *testing.T) {
	cause := errors.New("bad month")
	err := fmt.Errorf("normalize: %w", &ParseError{Type: Date, Input: "13/01/2024", Format: "MM/DD/YYYY", Err: cause})

	assert.ErrorIs(t, err, ErrParse)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), `with format "MM/DD/YYYY"`)
}

func TestFormatErrorMessage(t *testing.T) {
	err := &FormatError{Type: Phone, Format: "###", Reason: "expected 10 digit slots"}
	assert.ErrorIs(t, err, ErrFormat)
	assert.Equal(t, `invalid phone format "###": expected 10 digit slots`, err.Error())
}
