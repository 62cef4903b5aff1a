package orders

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/obinnaeze/emart-backend/internal/cart"
	"github.com/obinnaeze/emart-backend/internal/catalog"
	"github.com/obinnaeze/emart-backend/pkg/types"
)

var codePattern = regexp.MustCompile(`^ORD-[A-Z0-9]{3}\d{6}$`)

func fixtureLine(name string, qty int, price float64, variant string) cart.Line {
	line := cart.Line{
		Product: catalog.Product{
			ID:    "p-" + name,
			Name:  name,
			Price: decimal.NewFromFloat(price),
		},
		Quantity: qty,
	}
	if variant != "" {
		line.SelectedVariant = &variant
	}
	return line
}

func fixtureSettings() catalog.StoreSettings {
	return catalog.StoreSettings{StoreName: "Acme", Currency: "$"}
}

func fixtureCustomer() types.CustomerInfo {
	return types.CustomerInfo{Name: "Jo", Phone: "555", Address: "1 Rd"}
}

func TestBuildTranscriptLayout(t *testing.T) {
	lines := []cart.Line{fixtureLine("Widget", 2, 10.00, "Red")}

	order := Build(lines, fixtureSettings(), fixtureCustomer())

	if !codePattern.MatchString(order.Code) {
		t.Fatalf("order code %q does not match pattern", order.Code)
	}
	if !strings.Contains(order.Message, "2 x Widget (Red) ..... $20.00") {
		t.Fatalf("missing item line in:\n%s", order.Message)
	}
	if !strings.Contains(order.Message, "## Total: .............. $20.00") {
		t.Fatalf("missing padded total line in:\n%s", order.Message)
	}
	if !strings.Contains(order.Message, "Hi Acme, I would like to place an order.") {
		t.Fatalf("missing greeting in:\n%s", order.Message)
	}
	if !strings.Contains(order.Message, "I want it delivered to: 1 Rd") {
		t.Fatalf("missing delivery address in:\n%s", order.Message)
	}
	if !strings.Contains(order.Message, "Name: Jo\nPhone: 555\nComments: None") {
		t.Fatalf("missing customer block in:\n%s", order.Message)
	}
	if !strings.Contains(order.Message, "Order code: "+order.Code) {
		t.Fatalf("message does not embed its own code:\n%s", order.Message)
	}
}

func TestBuildVariantOmittedWhenAbsent(t *testing.T) {
	lines := []cart.Line{fixtureLine("Widget", 1, 5, "")}

	order := Build(lines, fixtureSettings(), fixtureCustomer())

	if !strings.Contains(order.Message, "1 x Widget ..... $5.00") {
		t.Fatalf("expected variant-free line in:\n%s", order.Message)
	}
	if strings.Contains(order.Message, "Widget (") {
		t.Fatalf("unexpected variant parentheses in:\n%s", order.Message)
	}
}

func TestBuildCommentsPassThrough(t *testing.T) {
	customer := fixtureCustomer()
	customer.Comments = "ring twice"

	order := Build(nil, fixtureSettings(), customer)

	if !strings.Contains(order.Message, "Comments: ring twice") {
		t.Fatalf("comments not carried through:\n%s", order.Message)
	}
}

func TestBuildTotalDotsMinimumThree(t *testing.T) {
	// "$99999999999999.90" is 18 characters, wider than the padding
	// window, so the clamp kicks in.
	line := cart.Line{
		Product: catalog.Product{
			ID:    "p-bulk",
			Name:  "Bulk",
			Price: decimal.RequireFromString("9999999999999.99"),
		},
		Quantity: 10,
	}

	order := Build([]cart.Line{line}, fixtureSettings(), fixtureCustomer())

	if !strings.Contains(order.Message, "## Total: ... $99999999999999.90") {
		t.Fatalf("expected exactly 3 dots for oversized amount in:\n%s", order.Message)
	}
}

func TestBuildMultiByteCurrencyPadsByRuneCount(t *testing.T) {
	settings := fixtureSettings()
	settings.Currency = "₦"
	lines := []cart.Line{fixtureLine("Widget", 2, 10.00, "")}

	order := Build(lines, settings, fixtureCustomer())

	// "₦20.00" is 6 visible characters, so the pad is 14 dots.
	if !strings.Contains(order.Message, "## Total: .............. ₦20.00") {
		t.Fatalf("unexpected padding for multi-byte currency:\n%s", order.Message)
	}
}

func TestCodeRegeneratedPerCall(t *testing.T) {
	settings := fixtureSettings()
	customer := fixtureCustomer()

	seen := map[string]struct{}{}
	for i := 0; i < 20; i++ {
		order := Build(nil, settings, customer)
		if !codePattern.MatchString(order.Code) {
			t.Fatalf("bad code %q", order.Code)
		}
		seen[order.Code] = struct{}{}
	}
	if len(seen) < 2 {
		t.Fatal("codes must vary across calls")
	}
}

func TestBuildDeterministicGivenClock(t *testing.T) {
	now := time.UnixMilli(1712345678901)
	order := build([]cart.Line{fixtureLine("Widget", 2, 10, "Red")}, fixtureSettings(), fixtureCustomer(), now)

	if !strings.HasSuffix(order.Code, "678901") {
		t.Fatalf("code %q must end with the last six clock digits", order.Code)
	}
}

func TestBuildDoesNotMutateInputs(t *testing.T) {
	lines := []cart.Line{fixtureLine("Widget", 2, 10, "Red")}
	settings := fixtureSettings()
	customer := fixtureCustomer()

	_ = Build(lines, settings, customer)

	if lines[0].Quantity != 2 || !lines[0].Price.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("cart line mutated: %+v", lines[0])
	}
	if settings.StoreName != "Acme" || customer.Name != "Jo" {
		t.Fatal("settings or customer mutated")
	}
}
