package redact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty string",
			in:   "",
			want: "",
		},
		{
			name: "no sensitive content",
			in:   "The service at the shop was excellent and staff were friendly.",
			want: "The service at the shop was excellent and staff were friendly.",
		},
		{
			name: "local phone number",
			in:   "Call me on 0244123456 to discuss.",
			want: "Call me on [PHONE_REDACTED] to discuss.",
		},
		{
			name: "international phone number",
			in:   "Reach him at +233244123456 anytime.",
			want: "Reach him at [PHONE_REDACTED] anytime.",
		},
		{
			name: "email address",
			in:   "Contact kwame.asante@example.com for refunds.",
			want: "Contact [EMAIL_REDACTED] for refunds.",
		},
		{
			name: "card number with spaces",
			in:   "They charged my card 4242 4242 4242 4242 twice.",
			want: "They charged my card [CARD_REDACTED] twice.",
		},
		{
			name: "card number without spaces",
			in:   "Card 4242424242424242 was debited.",
			want: "Card [CARD_REDACTED] was debited.",
		},
		{
			name: "ghana card id",
			in:   "He showed ID GHA-123456789-0 at the counter.",
			want: "He showed ID [ID_REDACTED] at the counter.",
		},
		{
			name: "multiple categories in one text",
			in:   "Phone 0244123456, email ama@shop.com.gh, ID GHA-987654321-1.",
			want: "Phone [PHONE_REDACTED], email [EMAIL_REDACTED], ID [ID_REDACTED].",
		},
		{
			name: "repeated phone numbers",
			in:   "0244123456 or 0209876543",
			want: "[PHONE_REDACTED] or [PHONE_REDACTED]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Redact(tt.in))
		})
	}
}

func TestRedactIdempotent(t *testing.T) {
	inputs := []string{
		"Call 0244123456 now",
		"Mail boss@fraudco.com today",
		"Card 1234 5678 9012 3456 stolen",
		"ID GHA-123456789-0 presented",
		"mixed 0244123456 and a@b.co and 1111 2222 3333 4444",
	}
	for _, in := range inputs {
		once := Redact(in)
		assert.Equal(t, once, Redact(once), "redaction must be stable over its own output")
	}
}

func TestRedactRemovesRawDigits(t *testing.T) {
	out := Redact("My number is 0244123456, please call.")
	assert.NotContains(t, out, "0244123456")
	assert.Contains(t, out, PhonePlaceholder)
}

func TestRedactLongDescriptionScenario(t *testing.T) {
	desc := "They promised delivery within two days but never showed up. Call 0244123456 for proof."
	out := Redact(desc)

	assert.GreaterOrEqual(t, len(desc), 60)
	assert.Contains(t, out, PhonePlaceholder)
	assert.False(t, strings.Contains(out, "0244123456"))
}
