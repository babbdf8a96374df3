package date

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/baditaflorin/go_format_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_format_normalizer/internal/ports"
	"github.com/ncruces/go-strftime"
)

// DefaultOutputFormat renders ISO 8601 calendar dates.
const DefaultOutputFormat = "%Y-%m-%d"

// DefaultLayouts are tried in order when no input format is given. US
// month-first order wins over day-first for slash-separated dates.
var DefaultLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/1/2",
	"1/2/2006",
	"2.1.2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	time.RFC1123,
	"20060102",
}

// Config holds configuration for the date rule set.
type Config struct {
	// Layouts are the Go layouts tried when the request has no input format.
	Layouts []string
	// Location interprets inputs that carry no zone.
	Location *time.Location
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Layouts:  DefaultLayouts,
		Location: time.UTC,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if len(c.Layouts) == 0 {
		return errors.New("at least one default date layout is required")
	}
	if c.Location == nil {
		return errors.New("location must not be nil")
	}
	return nil
}

// Normalizer implements the date rule set.
type Normalizer struct {
	config Config
	logger ports.Logger
}

// NewNormalizer creates a new date normalizer.
func NewNormalizer(config Config, logger ports.Logger) (*Normalizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Normalizer{config: config, logger: logger}, nil
}

// Type reports domain.Date.
func (n *Normalizer) Type() domain.DataType { return domain.Date }

// Normalize parses req.Input with the requested or a default input format
// and renders it with the output format, ISO 8601 by default.
func (n *Normalizer) Normalize(ctx context.Context, req domain.Request) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}

	outputFormat := req.OutputFormat
	if outputFormat == "" {
		outputFormat = DefaultOutputFormat
	}
	out, err := resolve(outputFormat)
	if err != nil {
		return domain.Result{}, &domain.FormatError{Type: domain.Date, Format: outputFormat, Reason: err.Error()}
	}

	t, used, err := n.Parse(req.Input, req.InputFormat)
	if err != nil {
		return domain.Result{}, err
	}
	n.logger.Debug("Parsed date",
		"input", req.Input,
		"format", used,
		"time", t.Format(time.RFC3339),
	)

	return domain.Result{
		Type:         domain.Date,
		Input:        req.Input,
		Value:        render(t, out),
		InputFormat:  used,
		OutputFormat: outputFormat,
		Details: map[string]interface{}{
			"unix": t.Unix(),
		},
	}, nil
}

// Parse reads input under format, or under each configured layout in turn
// when format is empty. It returns the format that matched.
func (n *Normalizer) Parse(input, format string) (time.Time, string, error) {
	value := strings.TrimSpace(input)

	if format == "" {
		for _, layout := range n.config.Layouts {
			if t, err := time.ParseInLocation(layout, value, n.config.Location); err == nil {
				return t, layout, nil
			}
		}
		return time.Time{}, "", &domain.ParseError{
			Type:  domain.Date,
			Input: input,
			Err:   errors.New("no default layout matched"),
		}
	}

	in, err := resolve(format)
	if err != nil {
		return time.Time{}, "", &domain.FormatError{Type: domain.Date, Format: format, Reason: err.Error()}
	}
	if in.kind == kindStrftime && in.layout == "" {
		return time.Time{}, "", &domain.FormatError{Type: domain.Date, Format: format, Reason: "format can only be used for output"}
	}
	if !in.dated {
		return time.Time{}, "", &domain.FormatError{Type: domain.Date, Format: format, Reason: "input formats must include a year"}
	}
	t, err := n.parseWith(value, in)
	if err != nil {
		return time.Time{}, "", &domain.ParseError{Type: domain.Date, Input: input, Format: format, Err: err}
	}
	return t, format, nil
}

func (n *Normalizer) parseWith(value string, s parsedFormat) (time.Time, error) {
	switch s.kind {
	case kindUnix, kindUnixMilli:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("expected an integer epoch: %w", err)
		}
		if s.kind == kindUnixMilli {
			return time.UnixMilli(v).In(n.config.Location), nil
		}
		return time.Unix(v, 0).In(n.config.Location), nil
	case kindStrftime:
		// strptime semantics: numeric fields accept one or two digits.
		t, err := strftime.Parse(s.source, value)
		if err != nil || s.zoned {
			return t, err
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), n.config.Location), nil
	}

	return time.ParseInLocation(s.layout, value, n.config.Location)
}

func render(t time.Time, s parsedFormat) string {
	switch s.kind {
	case kindUnix:
		return strconv.FormatInt(t.Unix(), 10)
	case kindUnixMilli:
		return strconv.FormatInt(t.UnixMilli(), 10)
	case kindStrftime:
		return strftime.Format(s.source, t)
	}
	return t.Format(s.layout)
}
