package orders

import (
	"net/url"
	"strings"

	pkgerrors "github.com/obinnaeze/emart-backend/pkg/errors"
)

const waHost = "https://wa.me/"

// Digits strips everything but 0-9 from a phone number, the form wa.me
// expects in its path segment.
func Digits(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsAppLink builds the outbound messaging URL. The message is
// percent-encoded here and nowhere else. A number without digits means the
// store has no usable WhatsApp contact configured.
func WhatsAppLink(number, message string) (string, error) {
	digits := Digits(number)
	if digits == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "whatsapp number is not configured")
	}

	query := url.Values{"text": {message}}
	return waHost + digits + "?" + query.Encode(), nil
}
