// Package redact strips sensitive substrings from user-submitted text
// before it is stored as a public-facing description.
package redact

import "regexp"

const (
	PhonePlaceholder = "[PHONE_REDACTED]"
	EmailPlaceholder = "[EMAIL_REDACTED]"
	CardPlaceholder  = "[CARD_REDACTED]"
	IDPlaceholder    = "[ID_REDACTED]"
)

var (
	// Ghanaian phone numbers: +233 country code or a leading zero,
	// followed by exactly nine digits.
	phonePattern = regexp.MustCompile(`(\+233|0)\d{9}`)
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	cardPattern  = regexp.MustCompile(`\b\d{4}\s*\d{4}\s*\d{4}\s*\d{4}\b`)
	// Ghana Card IDs: GHA-XXXXXXXXX-X.
	idPattern = regexp.MustCompile(`GHA-\d{9}-\d`)
)

// Redact replaces phone numbers, email addresses, card-like numbers and
// Ghana Card IDs with fixed placeholder tokens. Each rule is applied as
// an independent pass over the output of the previous one, so text
// matching several rules is redacted by all of them. Pure and
// deterministic; non-matching text is returned unchanged.
func Redact(text string) string {
	text = phonePattern.ReplaceAllString(text, PhonePlaceholder)
	text = emailPattern.ReplaceAllString(text, EmailPlaceholder)
	text = cardPattern.ReplaceAllString(text, CardPlaceholder)
	text = idPattern.ReplaceAllString(text, IDPlaceholder)
	return text
}
