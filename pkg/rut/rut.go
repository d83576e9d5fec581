// Package rut validates and normalises Chilean national IDs (RUT).
package rut

import (
	"strings"
	"unicode"
)

// Clean strips dots and dashes and upper-cases the check digit, matching the
// format stored in the database ("12345678K").
func Clean(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r == '.' || r == '-' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Valid reports whether the cleaned RUT has a correct modulo-11 check digit.
func Valid(raw string) bool {
	cleaned := Clean(raw)
	if len(cleaned) < 2 {
		return false
	}

	body := cleaned[:len(cleaned)-1]
	check := cleaned[len(cleaned)-1]

	sum := 0
	factor := 2
	for i := len(body) - 1; i >= 0; i-- {
		d := body[i]
		if d < '0' || d > '9' {
			return false
		}
		sum += int(d-'0') * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}

	rest := 11 - sum%11
	var expected byte
	switch rest {
	case 11:
		expected = '0'
	case 10:
		expected = 'K'
	default:
		expected = byte('0' + rest)
	}

	return check == expected
}

// Format renders a cleaned RUT in display form ("12.345.678-K").
func Format(raw string) string {
	cleaned := Clean(raw)
	if len(cleaned) < 2 {
		return cleaned
	}
	body := cleaned[:len(cleaned)-1]
	check := cleaned[len(cleaned)-1:]

	var b strings.Builder
	for i, d := range body {
		if i > 0 && (len(body)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteByte('-')
	b.WriteString(check)
	return b.String()
}
