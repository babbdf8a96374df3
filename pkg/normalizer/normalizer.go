// Package normalizer rewrites phone numbers, dates and free text into a
// single canonical representation, removing formatting differences that
// could otherwise tell equal values apart.
package normalizer

import (
	"context"
	"time"

	"github.com/baditaflorin/go_format_normalizer/internal/adapters/logger"
	textnorm "github.com/baditaflorin/go_format_normalizer/internal/adapters/normalizer"
	"github.com/baditaflorin/go_format_normalizer/internal/core/date"
	"github.com/baditaflorin/go_format_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_format_normalizer/internal/core/phone"
	"github.com/baditaflorin/go_format_normalizer/internal/core/registry"
	"github.com/baditaflorin/go_format_normalizer/internal/ports"
	"github.com/baditaflorin/l"
)

type (
	DataType = domain.DataType
	Request  = domain.Request
	Result   = domain.Result

	UnsupportedTypeError = domain.UnsupportedTypeError
	ParseError           = domain.ParseError
	FormatError          = domain.FormatError

	// TypeNormalizer can be registered with WithTypeNormalizer to add or
	// replace a rule set.
	TypeNormalizer = ports.TypeNormalizer
	Logger         = ports.Logger
)

const (
	Phone  = domain.Phone
	Date   = domain.Date
	String = domain.String
)

var (
	ErrUnsupportedType = domain.ErrUnsupportedType
	ErrParse           = domain.ErrParse
	ErrFormat          = domain.ErrFormat
)

// ParseDataType resolves a type name case-insensitively.
func ParseDataType(name string) (DataType, error) {
	return domain.ParseDataType(name)
}

// Option defines a functional option for configuring a Normalizer.
type Option func(*config)

type config struct {
	Region      string
	DateLayouts []string
	Location    *time.Location
	Logger      ports.Logger
	Extra       []ports.TypeNormalizer
}

// WithRegion sets the region assumed for phone numbers written without a
// leading '+'.
func WithRegion(region string) Option {
	return func(cfg *config) {
		cfg.Region = region
	}
}

// WithDateLayouts replaces the Go layouts tried for dates without an input
// format.
func WithDateLayouts(layouts ...string) Option {
	return func(cfg *config) {
		cfg.DateLayouts = layouts
	}
}

// WithLocation sets the zone used for dates that carry none.
func WithLocation(loc *time.Location) Option {
	return func(cfg *config) {
		cfg.Location = loc
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithPortsLogger sets a logger already satisfying ports.Logger.
func WithPortsLogger(lg Logger) Option {
	return func(cfg *config) {
		cfg.Logger = lg
	}
}

// WithTypeNormalizer registers an additional rule set. It replaces the
// built-in one if the type matches.
func WithTypeNormalizer(n TypeNormalizer) Option {
	return func(cfg *config) {
		cfg.Extra = append(cfg.Extra, n)
	}
}

// Normalizer normalizes values of every registered type.
type Normalizer struct {
	registry *registry.Registry
}

// New creates a Normalizer with the phone, date and string rule sets.
// Without WithLogger nothing is logged.
func New(opts ...Option) (*Normalizer, error) {
	phoneDefaults := phone.DefaultConfig()
	dateDefaults := date.DefaultConfig()

	cfg := &config{
		Region:      phoneDefaults.Region,
		DateLayouts: dateDefaults.Layouts,
		Location:    dateDefaults.Location,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNop()
	}

	phoneNormalizer, err := phone.NewNormalizer(phone.Config{Region: cfg.Region}, cfg.Logger)
	if err != nil {
		return nil, err
	}
	dateNormalizer, err := date.NewNormalizer(date.Config{Layouts: cfg.DateLayouts, Location: cfg.Location}, cfg.Logger)
	if err != nil {
		return nil, err
	}

	normalizers := []ports.TypeNormalizer{
		phoneNormalizer,
		dateNormalizer,
		textnorm.NewTextNormalizer(cfg.Logger),
	}
	normalizers = append(normalizers, cfg.Extra...)

	return &Normalizer{
		registry: registry.New(cfg.Logger, normalizers...),
	}, nil
}

// Normalize runs req through the rule set for its type.
func (n *Normalizer) Normalize(ctx context.Context, req Request) (Result, error) {
	return n.registry.Normalize(ctx, req)
}

// NormalizeString resolves typeName and returns only the canonical value.
func (n *Normalizer) NormalizeString(ctx context.Context, typeName, input, inputFormat, outputFormat string) (string, error) {
	typ := DataType(typeName)
	if parsed, err := domain.ParseDataType(typeName); err == nil {
		typ = parsed
	}
	res, err := n.Normalize(ctx, Request{
		Type:         typ,
		Input:        input,
		InputFormat:  inputFormat,
		OutputFormat: outputFormat,
	})
	if err != nil {
		return "", err
	}
	return res.Value, nil
}

// Types lists the registered data types.
func (n *Normalizer) Types() []DataType {
	return n.registry.Types()
}
