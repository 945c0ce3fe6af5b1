// Package numbers coerces heterogeneous cell values into floating-point numbers,
// tolerant of locale punctuation and suffix notations. Failure is a returned value,
// never an error or panic, so callers can decide whether to drop, null out or keep the
// original cell.
package numbers

import (
	"strconv"
	"strings"
)

// Coerce converts a cell value that is already numeric, or a string that is a plain
// number, without any cleanup.
func Coerce(value any) (float64, bool) {
	switch value := value.(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case string:
		number, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		return number, err == nil
	default:
		return 0, false
	}
}

// CoerceLenient first tries Coerce, then falls back to ParseLenient on the string form
// of the value.
func CoerceLenient(value any) (float64, bool) {
	if number, ok := Coerce(value); ok {
		return number, true
	}
	if text, isText := value.(string); isText {
		return ParseLenient(text)
	}
	return 0, false
}

// ParseLenient strips everything but digits, separators and a leading minus sign, then
// parses what remains. Both "1234.56" and the comma-decimal form "1.234,56" parse to
// 1234.56.
func ParseLenient(text string) (float64, bool) {
	cleaned, negative := cleanNumericText(text, false)
	if cleaned == "" {
		return 0, false
	}

	number, err := strconv.ParseFloat(normalizeSeparators(cleaned), 64)
	if err != nil {
		return 0, false
	}
	if negative {
		number = -number
	}
	return number, true
}

// ParseSuffixed is ParseLenient plus support for a trailing k/K suffix, which multiplies
// the parsed value by 1000 ("2k" parses to 2000).
func ParseSuffixed(text string) (float64, bool) {
	cleaned, negative := cleanNumericText(text, true)
	if cleaned == "" {
		return 0, false
	}

	multiplier := 1.0
	if last := cleaned[len(cleaned)-1]; last == 'k' || last == 'K' {
		multiplier = 1000
		cleaned = cleaned[:len(cleaned)-1]
	}
	// k/K anywhere else is malformed.
	if strings.ContainsAny(cleaned, "kK") {
		return 0, false
	}
	if cleaned == "" {
		return 0, false
	}

	number, err := strconv.ParseFloat(normalizeSeparators(cleaned), 64)
	if err != nil {
		return 0, false
	}
	if negative {
		number = -number
	}
	return number * multiplier, true
}

// cleanNumericText drops every rune that cannot be part of a number, remembering
// whether the text started with a minus sign.
func cleanNumericText(text string, keepSuffix bool) (cleaned string, negative bool) {
	text = strings.TrimSpace(text)
	negative = strings.HasPrefix(text, "-")

	var builder strings.Builder
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',':
			builder.WriteRune(r)
		case keepSuffix && (r == 'k' || r == 'K'):
			builder.WriteRune(r)
		}
	}
	return builder.String(), negative
}

// normalizeSeparators converts locale punctuation to a single dot decimal separator.
// When both separators appear, dots are assumed to group thousands and the comma to
// mark decimals.
func normalizeSeparators(text string) string {
	hasDot := strings.Contains(text, ".")
	hasComma := strings.Contains(text, ",")

	switch {
	case hasDot && hasComma:
		text = strings.ReplaceAll(text, ".", "")
		return strings.ReplaceAll(text, ",", ".")
	case hasComma:
		return strings.ReplaceAll(text, ",", ".")
	default:
		return text
	}
}

// Column name substrings suggesting the column holds a quantity, in both Portuguese and
// English (matching the bilingual schema vocabulary).
var quantityColumnTokens = []string{
	"valor", "total", "count", "sum", "soma", "amount", "quant", "qtd", "num", "value",
}

// IsQuantityColumn reports whether a column name suggests numeric content, making the
// column a target for generic numeric promotion.
func IsQuantityColumn(name string) bool {
	name = strings.ToLower(name)
	for _, token := range quantityColumnTokens {
		if strings.Contains(name, token) {
			return true
		}
	}
	return false
}
