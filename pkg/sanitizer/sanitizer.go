package sanitizer

import (
	"regexp"
	"strings"
)

// Pre-compiled regular expressions for performance
var (
	nonDigitRegex   = regexp.MustCompile(`\D`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// NormalizeDigits strips everything except digit characters.
func NormalizeDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// NormalizeWhitespace collapses runs of whitespace into single spaces and
// trims the ends, preventing layout issues from tabs and newlines.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// FormatCardNumber groups card digits in blocks of four separated by spaces,
// truncated to 19 characters (16 digits plus 3 separators). Partial input is
// formatted progressively so the transform can run on every keystroke, and
// re-applying it to already-formatted input yields the same result.
func FormatCardNumber(s string) string {
	digits := NormalizeDigits(s)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}

	formatted := b.String()
	if len(formatted) > 19 {
		formatted = formatted[:19]
	}
	return formatted
}

// FormatExpiry shapes expiry input into MM/YY, inserting the slash after the
// second digit and truncating to 5 characters. Idempotent.
func FormatExpiry(s string) string {
	digits := NormalizeDigits(s)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) < 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

// FormatCVV strips non-digits and truncates to 4 characters. Idempotent.
func FormatCVV(s string) string {
	digits := NormalizeDigits(s)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits
}

// MaskCardNumber follows the PCI pattern of exposing only the last 4 digits,
// e.g. for the order summary shown after a successful checkout.
func MaskCardNumber(s string) string {
	digits := NormalizeDigits(s)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}
	return "****" + digits[len(digits)-4:]
}
