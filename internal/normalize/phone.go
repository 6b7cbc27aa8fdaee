package normalize

import "regexp"

var nonDigitRE = regexp.MustCompile(`\D`)

// Phone reduces a channel address or free-text number to a 10-digit string.
// All non-digits are stripped; when 10 or more digits remain the last 10 win,
// which drops a leading country code. Fewer digits are returned as-is; this
// is lossy canonicalization, not validation. Returns "" when no digit
// survives.
func Phone(value string) string {
	digits := nonDigitRE.ReplaceAllString(value, "")
	if len(digits) >= 10 {
		return digits[len(digits)-10:]
	}
	return digits
}
