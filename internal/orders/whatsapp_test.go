package orders

import (
	"net/url"
	"strings"
	"testing"

	pkgerrors "github.com/obinnaeze/emart-backend/pkg/errors"
)

func TestDigitsStripsSymbols(t *testing.T) {
	if got := Digits("+1 (234) 567-8900"); got != "12345678900" {
		t.Fatalf("unexpected digits %q", got)
	}
	if got := Digits("no digits"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestWhatsAppLinkEncodesOnce(t *testing.T) {
	link, err := WhatsAppLink("+123 456", "Hi Acme, 100% sure\nNew line")
	if err != nil {
		t.Fatalf("build link: %v", err)
	}

	if !strings.HasPrefix(link, "https://wa.me/123456?") {
		t.Fatalf("unexpected link prefix: %s", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if got := parsed.Query().Get("text"); got != "Hi Acme, 100% sure\nNew line" {
		t.Fatalf("message does not round-trip the encoding: %q", got)
	}
}

func TestWhatsAppLinkRequiresDigits(t *testing.T) {
	_, err := WhatsAppLink("call me", "msg")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
