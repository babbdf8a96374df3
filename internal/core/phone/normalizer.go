package phone

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/baditaflorin/go_format_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_format_normalizer/internal/pool"
	"github.com/baditaflorin/go_format_normalizer/internal/ports"
	"github.com/nyaruka/phonenumbers"
)

// Named input and output formats.
const (
	FormatDigits        = "digits"
	FormatE164          = "e164"
	FormatInternational = "international"
	FormatNational      = "national"
	FormatRFC3966       = "rfc3966"
)

// E.164 bounds for numbers written with a leading '+'.
const (
	minInternationalDigits = 7
	maxInternationalDigits = 15
)

const nanpCountryCode = 1

const rfc3966Scheme = "tel:"

// unknownRegion is what phonenumbers reports for an unassigned country code.
const unknownRegion = "ZZ"

// Config holds configuration for the phone rule set.
type Config struct {
	// Region is the ISO 3166-1 region assumed for numbers written
	// without a leading '+'.
	Region string
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{Region: "US"}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if phonenumbers.GetCountryCodeForRegion(strings.ToUpper(c.Region)) == 0 {
		return fmt.Errorf("unknown phone region %q", c.Region)
	}
	return nil
}

// Number is a parsed telephone number.
type Number struct {
	CountryCode int
	// National is the national significant number, without trunk prefix.
	National string
}

// E164 renders the number as +<country code><national number>.
func (n Number) E164() string {
	return "+" + strconv.Itoa(n.CountryCode) + n.National
}

// Normalizer implements the phone rule set.
type Normalizer struct {
	region     string
	regionCode int
	logger     ports.Logger
}

// NewNormalizer creates a new phone normalizer.
func NewNormalizer(config Config, logger ports.Logger) (*Normalizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	region := strings.ToUpper(config.Region)

	return &Normalizer{
		region:     region,
		regionCode: phonenumbers.GetCountryCodeForRegion(region),
		logger:     logger,
	}, nil
}

// Type reports domain.Phone.
func (n *Normalizer) Type() domain.DataType { return domain.Phone }

// Normalize strips formatting from a phone number and renders it in the
// requested output format, digits only by default.
func (n *Normalizer) Normalize(ctx context.Context, req domain.Request) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}

	num, err := n.Parse(req.Input, req.InputFormat)
	if err != nil {
		return domain.Result{}, err
	}
	n.logger.Debug("Parsed phone number",
		"input", req.Input,
		"country_code", num.CountryCode,
		"national", num.National,
	)

	value, err := n.Render(num, req.OutputFormat)
	if err != nil {
		return domain.Result{}, err
	}

	outputFormat := req.OutputFormat
	if outputFormat == "" {
		outputFormat = FormatDigits
	}
	return domain.Result{
		Type:         domain.Phone,
		Input:        req.Input,
		Value:        value,
		InputFormat:  req.InputFormat,
		OutputFormat: outputFormat,
		Details: map[string]interface{}{
			"country_code":    num.CountryCode,
			"national_number": num.National,
			"e164":            num.E164(),
		},
	}, nil
}

// Parse extracts a Number from input. An empty format accepts any
// separators and "e164" additionally demands a leading '+'. "digits" takes
// digits only, while "national", "international", "rfc3966" and '#'
// templates must match the rendering exactly.
func (n *Normalizer) Parse(input, format string) (Number, error) {
	trimmed := strings.TrimSpace(input)
	international := strings.HasPrefix(trimmed, "+")

	var digits string
	switch f := strings.ToLower(format); {
	case f == "":
		digits = extractDigits(trimmed)
	case f == FormatDigits:
		return n.parseDigits(input, format, trimmed)
	case f == FormatNational || f == FormatInternational || f == FormatRFC3966:
		return n.parseRendered(input, format, trimmed)
	case f == FormatE164:
		if !international {
			return Number{}, n.parseError(input, format, errors.New("E.164 numbers must start with '+'"))
		}
		digits = extractDigits(trimmed)
	case isTemplate(format):
		if err := matchTemplate(format, trimmed); err != nil {
			return Number{}, n.parseError(input, format, err)
		}
		// Literal digits in the template, such as a country code, count too.
		digits = extractDigits(trimmed)
	default:
		return Number{}, &domain.FormatError{
			Type:   domain.Phone,
			Format: format,
			Reason: "expected digits, e164, international, national, rfc3966 or a template using '#' for digits",
		}
	}

	if digits == "" {
		return Number{}, n.parseError(input, format, errors.New("no digits found"))
	}
	if international {
		return n.parseInternational(input, format, digits)
	}
	num, err := n.parseNational(input, format, digits)
	if err != nil {
		n.logger.Warn("Could not determine country code for phone number", "input", input, "digits", len(digits))
	}
	return num, err
}

// parseDigits reads the canonical digit form. Digits that do not form a
// national number are tried with a country code, as rendered for numbers
// outside the configured region.
func (n *Normalizer) parseDigits(input, format, digits string) (Number, error) {
	if digits == "" || strings.TrimFunc(digits, isDigit) != "" {
		return Number{}, n.parseError(input, format, errors.New("expected digits without separators"))
	}
	num, err := n.parseNational(input, format, digits)
	if err == nil {
		return num, nil
	}
	if intl, ierr := n.parseInternational(input, format, digits); ierr == nil {
		return intl, nil
	}
	return Number{}, err
}

// parseRendered reads a number written in one of the phonenumbers styles
// and checks it against the rendering of the parsed number.
func (n *Normalizer) parseRendered(input, format, trimmed string) (Number, error) {
	style := strings.ToLower(format)

	var num Number
	if style == FormatNational {
		if strings.HasPrefix(trimmed, "+") {
			return Number{}, n.parseError(input, format, errors.New("national numbers carry no '+' prefix"))
		}
		parsed, err := phonenumbers.Parse(trimmed, n.region)
		if err != nil {
			return Number{}, n.parseError(input, format, err)
		}
		num = Number{
			CountryCode: int(parsed.GetCountryCode()),
			National:    phonenumbers.GetNationalSignificantNumber(parsed),
		}
	} else {
		body := trimmed
		if style == FormatRFC3966 {
			if len(body) < len(rfc3966Scheme) || !strings.EqualFold(body[:len(rfc3966Scheme)], rfc3966Scheme) {
				return Number{}, n.parseError(input, format, fmt.Errorf("expected the %q scheme", rfc3966Scheme))
			}
			body = body[len(rfc3966Scheme):]
		}
		if !strings.HasPrefix(body, "+") {
			return Number{}, n.parseError(input, format, errors.New("international numbers must start with '+'"))
		}
		var err error
		if num, err = n.parseInternational(input, format, extractDigits(body)); err != nil {
			return Number{}, err
		}
	}

	want, err := n.Render(num, style)
	if err != nil {
		return Number{}, err
	}
	if !strings.EqualFold(want, trimmed) {
		return Number{}, n.parseError(input, format, fmt.Errorf("not in %s form, expected %q", style, want))
	}
	return num, nil
}

func (n *Normalizer) parseInternational(input, format, digits string) (Number, error) {
	if len(digits) < minInternationalDigits || len(digits) > maxInternationalDigits {
		return Number{}, n.parseError(input, format,
			fmt.Errorf("international numbers need %d to %d digits, got %d", minInternationalDigits, maxInternationalDigits, len(digits)))
	}

	parsed, err := phonenumbers.Parse("+"+digits, "")
	if err != nil {
		return Number{}, n.parseError(input, format, err)
	}
	cc := int(parsed.GetCountryCode())
	if phonenumbers.GetRegionCodeForCountryCode(cc) == unknownRegion {
		return Number{}, n.parseError(input, format, fmt.Errorf("unknown country code %d", cc))
	}

	if cc == nanpCountryCode {
		if len(digits) != 11 {
			return Number{}, n.parseError(input, format,
				fmt.Errorf("NANP numbers need 10 digits after +1, got %d", len(digits)-1))
		}
		return Number{CountryCode: cc, National: digits[1:]}, nil
	}
	return Number{CountryCode: cc, National: phonenumbers.GetNationalSignificantNumber(parsed)}, nil
}

func (n *Normalizer) parseNational(input, format, digits string) (Number, error) {
	if n.regionCode == nanpCountryCode {
		switch {
		case len(digits) == 10:
			return Number{CountryCode: nanpCountryCode, National: digits}, nil
		case len(digits) == 11 && digits[0] == '1':
			return Number{CountryCode: nanpCountryCode, National: digits[1:]}, nil
		}
		return Number{}, n.parseError(input, format,
			fmt.Errorf("expected 10 digits, or 11 starting with 1, got %d", len(digits)))
	}

	parsed, err := phonenumbers.Parse(digits, n.region)
	if err != nil {
		return Number{}, n.parseError(input, format, err)
	}
	return Number{
		CountryCode: int(parsed.GetCountryCode()),
		National:    phonenumbers.GetNationalSignificantNumber(parsed),
	}, nil
}

// Render formats num. The canonical digit form omits the country code when
// it matches the configured region.
func (n *Normalizer) Render(num Number, format string) (string, error) {
	switch f := strings.ToLower(format); {
	case f == "" || f == FormatDigits:
		return n.canonicalDigits(num), nil
	case f == FormatE164:
		return num.E164(), nil
	case f == FormatInternational:
		return n.renderWith(num, format, phonenumbers.INTERNATIONAL)
	case f == FormatNational:
		return n.renderWith(num, format, phonenumbers.NATIONAL)
	case f == FormatRFC3966:
		return n.renderWith(num, format, phonenumbers.RFC3966)
	case isTemplate(format):
		out, err := fillTemplate(format, n.canonicalDigits(num))
		if err != nil {
			return "", &domain.FormatError{Type: domain.Phone, Format: format, Reason: err.Error()}
		}
		return out, nil
	}
	return "", &domain.FormatError{
		Type:   domain.Phone,
		Format: format,
		Reason: "expected digits, e164, international, national, rfc3966 or a '#' template",
	}
}

func (n *Normalizer) renderWith(num Number, format string, style phonenumbers.PhoneNumberFormat) (string, error) {
	parsed, err := phonenumbers.Parse(num.E164(), "")
	if err != nil {
		return "", n.parseError(num.E164(), format, err)
	}
	return phonenumbers.Format(parsed, style), nil
}

func (n *Normalizer) canonicalDigits(num Number) string {
	if num.CountryCode == n.regionCode {
		return num.National
	}
	return strconv.Itoa(num.CountryCode) + num.National
}

func (n *Normalizer) parseError(input, format string, err error) error {
	return &domain.ParseError{Type: domain.Phone, Input: input, Format: format, Err: err}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// extractDigits drops every rune that is not an ASCII digit.
func extractDigits(s string) string {
	buf := pool.Digits.Get()
	defer pool.Digits.Put(buf)

	for _, r := range s {
		if isDigit(r) {
			*buf = append(*buf, byte(r))
		}
	}
	return string(*buf)
}
