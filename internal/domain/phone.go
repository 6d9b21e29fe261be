package domain

import (
	"strings"
	"unicode"
)

// NormalizePhone canonicalizes a Russian phone number into "+7XXXXXXXXXX".
// It accepts 10-digit local numbers and 11-digit numbers starting with 7 or 8,
// with any punctuation mixed in. An empty string is returned for anything
// else; the result of a successful call is stable under a second pass.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) == 11 && (digits[0] == '7' || digits[0] == '8'):
		return "+7" + digits[1:]
	case len(digits) == 10:
		return "+7" + digits
	default:
		return ""
	}
}
