package normalizer

import (
	"context"
	"errors"
	"strings"

	"github.com/baditaflorin/go_format_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_format_normalizer/internal/ports"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Case mappings accepted as output formats for free text.
const (
	CaseLower = "lower"
	CaseUpper = "upper"
	CaseFold  = "fold"
	CaseTitle = "title"
)

// TextNormalizer implements the string rule set: trim, NFC, collapse
// whitespace, then case-map.
type TextNormalizer struct {
	logger ports.Logger
}

// NewTextNormalizer creates a new text normalizer.
func NewTextNormalizer(logger ports.Logger) *TextNormalizer {
	return &TextNormalizer{logger: logger}
}

// Type reports domain.String.
func (n *TextNormalizer) Type() domain.DataType { return domain.String }

// Normalize applies Unicode NFC and the requested case mapping, lower by
// default.
func (n *TextNormalizer) Normalize(ctx context.Context, req domain.Request) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}
	if req.InputFormat != "" {
		n.logger.Warn("Input format is ignored for strings", "input_format", req.InputFormat)
	}

	outputFormat := strings.ToLower(req.OutputFormat)
	if outputFormat == "" {
		outputFormat = CaseLower
	}
	caser, err := caserFor(outputFormat)
	if err != nil {
		return domain.Result{}, &domain.FormatError{Type: domain.String, Format: req.OutputFormat, Reason: err.Error()}
	}

	text := norm.NFC.String(req.Input)
	text = strings.Join(strings.Fields(text), " ")
	text = caser.String(text)

	return domain.Result{
		Type:         domain.String,
		Input:        req.Input,
		Value:        text,
		OutputFormat: outputFormat,
	}, nil
}

func caserFor(format string) (cases.Caser, error) {
	switch format {
	case CaseLower:
		return cases.Lower(language.Und), nil
	case CaseUpper:
		return cases.Upper(language.Und), nil
	case CaseFold:
		return cases.Fold(), nil
	case CaseTitle:
		return cases.Title(language.Und), nil
	}
	return cases.Caser{}, errUnknownCase
}

var errUnknownCase = errors.New("expected lower, upper, fold or title")
