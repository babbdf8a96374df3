package date

import (
	"fmt"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

type formatKind int

const (
	kindLayout formatKind = iota
	kindStrftime
	kindUnix
	kindUnixMilli
)

// parsedFormat is a resolved date format.
type parsedFormat struct {
	kind formatKind
	// layout is the Go reference layout used for parsing, and for
	// formatting unless kind is kindStrftime.
	layout string
	// source is the format as the caller wrote it.
	source string
	// dated reports whether the format carries a year, which parsing needs.
	dated bool
	// zoned reports whether a strftime format reads its own zone.
	zoned bool
}

// Named formats accepted on both sides.
var namedFormats = map[string]parsedFormat{
	"iso":       {kind: kindLayout, layout: "2006-01-02", dated: true},
	"iso8601":   {kind: kindLayout, layout: "2006-01-02", dated: true},
	"rfc3339":   {kind: kindLayout, layout: time.RFC3339, dated: true},
	"rfc1123":   {kind: kindLayout, layout: time.RFC1123, dated: true},
	"unix":      {kind: kindUnix, dated: true},
	"unixmilli": {kind: kindUnixMilli, dated: true},
}

// tokens maps pattern tokens to Go layout elements, longest first so that
// "YYYY" wins over "YY" and "MMMM" over "MM".
var tokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"dddd", "Monday"},
	{"MMM", "Jan"},
	{"ddd", "Mon"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"hh", "03"},
	{"mm", "04"},
	{"ss", "05"},
	{"ZZ", "-0700"},
	{"M", "1"},
	{"D", "2"},
	{"H", "15"},
	{"h", "3"},
	{"A", "PM"},
	{"a", "pm"},
	{"Z", "Z07:00"},
}

// literals are the non-token characters a pattern may contain. Letters
// and digits other than these would be read as layout elements by the
// time package.
const literals = " -/.,:T()"

// strftimeDirectives are the conversion characters understood after '%'.
const strftimeDirectives = "aAbBcCdDeFgGhHIjklmMnpPrRSTuUVwWxXyYzZ%"

// Directives that yield a year, and those that read a zone.
const (
	yearDirectives = "yYFDxcgG"
	zoneDirectives = "zZ"
)

// resolve turns a caller-supplied format into a parsedFormat. It accepts named
// formats, strftime strings (anything containing '%') and token patterns.
func resolve(format string) (parsedFormat, error) {
	if named, ok := namedFormats[strings.ToLower(format)]; ok {
		named.source = format
		return named, nil
	}
	if strings.ContainsRune(format, '%') {
		return resolveStrftime(format)
	}
	layout, err := tokenLayout(format)
	if err != nil {
		return parsedFormat{}, err
	}
	return parsedFormat{
		kind:   kindLayout,
		layout: layout,
		source: format,
		dated:  strings.Contains(format, "YY"),
	}, nil
}

func resolveStrftime(format string) (parsedFormat, error) {
	var dated, zoned bool
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 == len(format) {
			return parsedFormat{}, fmt.Errorf("dangling '%%' at end of format")
		}
		i++
		// Skip the '-' (no padding) and ':' flags.
		if (format[i] == '-' || format[i] == ':') && i+1 < len(format) {
			i++
		}
		d := rune(format[i])
		if !strings.ContainsRune(strftimeDirectives, d) {
			return parsedFormat{}, fmt.Errorf("unknown directive %%%c", d)
		}
		dated = dated || strings.ContainsRune(yearDirectives, d)
		zoned = zoned || strings.ContainsRune(zoneDirectives, d)
	}

	// Some directives only format; Layout refuses them, and such formats
	// cannot be used for parsing.
	layout, err := strftime.Layout(format)
	if err != nil {
		layout = ""
	}
	return parsedFormat{
		kind:   kindStrftime,
		layout: layout,
		source: format,
		dated:  dated,
		zoned:  zoned,
	}, nil
}

// tokenLayout translates a pattern such as "DD-MM-YYYY" into the Go layout
// "02-01-2006".
func tokenLayout(pattern string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("empty pattern")
	}

	var sb strings.Builder
	rest := pattern
next:
	for rest != "" {
		for _, tk := range tokens {
			if strings.HasPrefix(rest, tk.token) {
				sb.WriteString(tk.layout)
				rest = rest[len(tk.token):]
				continue next
			}
		}
		c := rest[0]
		if !strings.ContainsRune(literals, rune(c)) {
			return "", fmt.Errorf("unexpected %q at offset %d", c, len(pattern)-len(rest))
		}
		sb.WriteByte(c)
		rest = rest[1:]
	}
	return sb.String(), nil
}
