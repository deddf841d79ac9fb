package dashboard

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// leadingNumber matches the decimal literal at the start of a cleaned value; trailing garbage is ignored.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// orderDateLayouts are tried in order once the date/time separator has been normalized to "T".
var orderDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseBrazilianNumber reads a currency value such as "R$ 1.234,56".
// When a comma is present it is the decimal separator and every period is a thousands separator;
// otherwise the value is read as is. Unreadable input yields 0.
func ParseBrazilianNumber(val string) float64 {
	s := strings.Map(func(r rune) rune {
		if r == 'R' || r == '$' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, val)
	if s == "" {
		return 0
	}
	f, ok := parseLeadingFloat(normalizeDecimalSeparator(s))
	if !ok {
		return 0
	}
	return f
}

// ParsePercent reads a rate such as "12,5%". Empty or unreadable input yields nil, which is
// distinct from a recorded 0%.
func ParsePercent(val string) *float64 {
	s := strings.TrimSpace(val)
	if s == "" {
		return nil
	}
	s = strings.Replace(s, "%", "", 1)
	f, ok := parseLeadingFloat(normalizeDecimalSeparator(s))
	if !ok {
		return nil
	}
	return &f
}

// ParseOrderDate reads an order timestamp such as "2024-03-15 14:22:10" in loc.
// Values carrying their own offset (RFC 3339) keep it. Unreadable input yields nil.
func ParseOrderDate(val string, loc *time.Location) *time.Time {
	s := strings.TrimSpace(val)
	if s == "" {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}
	s = strings.Replace(s, " ", "T", 1)

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return &t
	}
	for _, layout := range orderDateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t
		}
	}
	return nil
}

func normalizeDecimalSeparator(s string) string {
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return s
}

func parseLeadingFloat(s string) (float64, bool) {
	m := leadingNumber.FindString(strings.TrimLeftFunc(s, unicode.IsSpace))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
