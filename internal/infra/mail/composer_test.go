package mail

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"light3d/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *entity.Order {
	return &entity.Order{
		Reference: "GD-2026-A1B2C3",
		CustomerInfo: entity.CustomerInfo{
			FirstName: "Maria",
			LastName:  "Georgiou",
			Email:     "maria@example.com",
			Phone:     "+357 99 123456",
		},
		ShippingAddress: entity.ShippingAddress{
			Street:  "12 Ledra Street",
			City:    "Nicosia",
			ZipCode: "1011",
			Country: "Cyprus",
		},
		DeliveryMethod: "ACS Cash on Delivery",
		Lines: []*entity.CartLine{
			{
				ItemID:            "lamp-01-pla-white-medium-1700000000000",
				Product:           entity.Product{ID: "lamp-01", Name: "Moon Lamp", BasePrice: decimal.RequireFromString("20")},
				Quantity:          2,
				SelectedMaterial:  entity.MaterialOption{ID: "pla", Name: "PLA", PriceModifier: decimal.RequireFromString("2")},
				SelectedColor:     entity.ColorOption{ID: "white", Name: "White"},
				SelectedSize:      entity.SizeOption{ID: "medium", Name: "Medium", PriceModifier: decimal.RequireFromString("3")},
				CustomizationNote: "Engrave 'M&G' on the base",
			},
		},
		Subtotal:       decimal.RequireFromString("50"),
		DeliveryCharge: decimal.RequireFromString("3"),
		Total:          decimal.RequireFromString("53"),
		CreatedAt:      time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestComposeOrderRequest_Body(t *testing.T) {
	composer := NewMailComposer("orders@example.com", "EUR")

	draft := composer.ComposeOrderRequest(testOrder())

	assert.Equal(t, "orders@example.com", draft.To)
	assert.Equal(t, "Order Request GD-2026-A1B2C3", draft.Subject)

	assert.True(t, strings.HasPrefix(draft.Body, "Order Request: GD-2026-A1B2C3\n\n"))
	assert.Contains(t, draft.Body, "Customer Information:\nMaria Georgiou\nmaria@example.com\n+357 99 123456\n")
	assert.Contains(t, draft.Body, "Shipping Address:\n12 Ledra Street\nNicosia 1011\nCyprus\n")
	assert.Contains(t, draft.Body, "Delivery Method: ACS Cash on Delivery\n")
	assert.Contains(t, draft.Body, "- Moon Lamp x2\n  Material: PLA\n  Color: White\n  Size: Medium\n  Note: Engrave 'M&G' on the base\n")
	assert.Contains(t, draft.Body, "Subtotal: €50.00\n")
	assert.Contains(t, draft.Body, "ACS Delivery Charge: €3.00\n")
	assert.Contains(t, draft.Body, "Total: €53.00\n")
	assert.True(t, strings.HasSuffix(draft.Body, "Note: Payment will be collected by ACS upon delivery (cash only)."))
}

func TestComposeOrderRequest_OmitsEmptyNote(t *testing.T) {
	composer := NewMailComposer("orders@example.com", "EUR")
	order := testOrder()
	order.Lines[0].CustomizationNote = ""

	draft := composer.ComposeOrderRequest(order)

	assert.NotContains(t, draft.Body, "Note: Engrave")
	assert.Contains(t, draft.Body, "  Size: Medium\n")
}

func TestComposeOrderRequest_MailtoEncoding(t *testing.T) {
	composer := NewMailComposer("orders@example.com", "EUR")

	draft := composer.ComposeOrderRequest(testOrder())

	require.True(t, strings.HasPrefix(draft.MailtoURI, "mailto:orders@example.com?subject="))
	// Spaces must be %20; form-style plus signs leak into mail clients as text.
	assert.NotContains(t, draft.MailtoURI, "+357")
	assert.NotContains(t, strings.SplitN(draft.MailtoURI, "?", 2)[1], "+")

	// Round-trip: the encoded body must decode back to the plain body.
	parsed, err := url.Parse(draft.MailtoURI)
	require.NoError(t, err)
	query := parsed.Query()
	assert.Equal(t, draft.Subject, query.Get("subject"))
	assert.Equal(t, draft.Body, query.Get("body"))
}

func TestComposeContactMessage(t *testing.T) {
	composer := NewMailComposer("hello@example.com", "EUR")

	draft := composer.ComposeContactMessage("Andreas", "andreas@example.com", "Custom lithophane", "Can you print from my photo?")

	assert.Equal(t, "hello@example.com", draft.To)
	assert.Equal(t, "Contact Form: Custom lithophane", draft.Subject)
	assert.Equal(t, "Name: Andreas\nEmail: andreas@example.com\nSubject: Custom lithophane\n\nMessage:\nCan you print from my photo?", draft.Body)
	assert.True(t, strings.HasPrefix(draft.MailtoURI, "mailto:hello@example.com?subject=Contact%20Form"))
}

func TestFormatPrice_Currencies(t *testing.T) {
	tests := []struct {
		currency string
		want     string
	}{
		{"EUR", "€12.50"},
		{"USD", "$12.50"},
		{"GBP", "£12.50"},
		{"SEK", "SEK 12.50"},
	}

	for _, tt := range tests {
		t.Run(tt.currency, func(t *testing.T) {
			c := NewMailComposer("x@example.com", tt.currency).(*mailComposer)
			assert.Equal(t, tt.want, c.formatPrice(decimal.RequireFromString("12.5")))
		})
	}
}
