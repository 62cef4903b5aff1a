package orders

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/obinnaeze/emart-backend/internal/cart"
	"github.com/obinnaeze/emart-backend/internal/catalog"
	"github.com/obinnaeze/emart-backend/pkg/types"
)

const (
	codePrefix   = "ORD-"
	codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeTokenLen = 3

	// The total line pads with dots so the amount right-aligns inside a
	// 20-column window; never fewer than 3 dots.
	totalLineWidth = 20
	minTotalDots   = 3

	emptyCommentsPlaceholder = "None"
)

// Order is the result of building a transcript: a practically-unique code
// and the plain-text message. The message is raw text; percent-encoding
// happens exactly once, in WhatsAppLink.
type Order struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Build renders the order transcript for the given cart snapshot. It never
// mutates its inputs; clearing the cart after a successful send is the
// caller's job. Required customer fields are validated upstream.
func Build(lines []cart.Line, settings catalog.StoreSettings, customer types.CustomerInfo) Order {
	return build(lines, settings, customer, time.Now())
}

func build(lines []cart.Line, settings catalog.StoreSettings, customer types.CustomerInfo, now time.Time) Order {
	code := generateCode(now)

	details := make([]string, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		variant := ""
		if line.SelectedVariant != nil && *line.SelectedVariant != "" {
			variant = fmt.Sprintf(" (%s)", *line.SelectedVariant)
		}
		subtotal := line.Subtotal()
		total = total.Add(subtotal)
		details = append(details, fmt.Sprintf("%d x %s%s ..... %s%s",
			line.Quantity, line.Name, variant, settings.Currency, subtotal.StringFixed(2)))
	}

	comments := customer.Comments
	if comments == "" {
		comments = emptyCommentsPlaceholder
	}

	totalAmount := settings.Currency + total.StringFixed(2)
	dots := totalLineWidth - utf8.RuneCountInString(totalAmount)
	if dots < minTotalDots {
		dots = minTotalDots
	}

	message := fmt.Sprintf(`Hi %s, I would like to place an order.

I want it delivered to: %s

Name: %s
Phone: %s
Comments: %s

***

%s

***

## Total: %s %s

Order code: %s`,
		settings.StoreName,
		customer.Address,
		customer.Name,
		customer.Phone,
		comments,
		strings.Join(details, "\n"),
		strings.Repeat(".", dots),
		totalAmount,
		code,
	)

	return Order{Code: code, Message: message}
}

// generateCode stamps a fresh code on every call: a fixed prefix, a short
// random alphanumeric token and the last six digits of the current
// unix-millisecond clock. Collisions are negligible at demo scale.
func generateCode(now time.Time) string {
	token := make([]byte, codeTokenLen)
	for i := range token {
		token[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}

	millis := fmt.Sprintf("%d", now.UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}

	return codePrefix + string(token) + millis
}
