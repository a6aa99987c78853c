// Package mail composes the plain-text email drafts the storefront prepares
// for the visitor. Nothing is sent server-side; the draft is returned with a
// percent-encoded mailto link the visitor opens in their own client.
package mail

import (
	"fmt"
	"net/url"
	"strings"

	"light3d/internal/domain/entity"
	"light3d/internal/domain/service"

	"github.com/shopspring/decimal"
)

type mailComposer struct {
	contactEmail string
	currency     string
}

// NewMailComposer creates a composer addressing all drafts to the shop's
// contact address.
func NewMailComposer(contactEmail, currency string) service.MailComposer {
	return &mailComposer{
		contactEmail: contactEmail,
		currency:     currency,
	}
}

// ComposeOrderRequest renders the submitted order as an email request.
func (c *mailComposer) ComposeOrderRequest(order *entity.Order) *service.MailDraft {
	var b strings.Builder

	fmt.Fprintf(&b, "Order Request: %s\n\n", order.Reference)
	b.WriteString("Customer Information:\n")
	fmt.Fprintf(&b, "%s %s\n", order.CustomerInfo.FirstName, order.CustomerInfo.LastName)
	fmt.Fprintf(&b, "%s\n", order.CustomerInfo.Email)
	fmt.Fprintf(&b, "%s\n\n", order.CustomerInfo.Phone)
	b.WriteString("Shipping Address:\n")
	fmt.Fprintf(&b, "%s\n", order.ShippingAddress.Street)
	fmt.Fprintf(&b, "%s %s\n", order.ShippingAddress.City, order.ShippingAddress.ZipCode)
	fmt.Fprintf(&b, "%s\n\n", order.ShippingAddress.Country)
	fmt.Fprintf(&b, "Delivery Method: %s\n", order.DeliveryMethod)
	b.WriteString("Payment: Cash on Delivery (pay at ACS)\n\n")
	b.WriteString("Items:\n")
	for _, line := range order.Lines {
		fmt.Fprintf(&b, "- %s x%d\n", line.Product.Name, line.Quantity)
		fmt.Fprintf(&b, "  Material: %s\n", line.SelectedMaterial.Name)
		fmt.Fprintf(&b, "  Color: %s\n", line.SelectedColor.Name)
		fmt.Fprintf(&b, "  Size: %s\n", line.SelectedSize.Name)
		if line.CustomizationNote != "" {
			fmt.Fprintf(&b, "  Note: %s\n", line.CustomizationNote)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nSubtotal: %s\n", c.formatPrice(order.Subtotal))
	fmt.Fprintf(&b, "ACS Delivery Charge: %s\n", c.formatPrice(order.DeliveryCharge))
	fmt.Fprintf(&b, "Total: %s\n\n", c.formatPrice(order.Total))
	b.WriteString("Note: Payment will be collected by ACS upon delivery (cash only).")

	subject := fmt.Sprintf("Order Request %s", order.Reference)

	return c.draft(subject, b.String())
}

// ComposeContactMessage renders a contact-form submission as an email.
func (c *mailComposer) ComposeContactMessage(name, email, subject, message string) *service.MailDraft {
	var b strings.Builder

	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Email: %s\n", email)
	fmt.Fprintf(&b, "Subject: %s\n\n", subject)
	b.WriteString("Message:\n")
	b.WriteString(message)

	return c.draft(fmt.Sprintf("Contact Form: %s", subject), b.String())
}

func (c *mailComposer) draft(subject, body string) *service.MailDraft {
	return &service.MailDraft{
		To:      c.contactEmail,
		Subject: subject,
		Body:    body,
		MailtoURI: fmt.Sprintf("mailto:%s?subject=%s&body=%s",
			c.contactEmail, encodeMailtoComponent(subject), encodeMailtoComponent(body)),
	}
}

// formatPrice renders an amount with its currency symbol and two decimals,
// matching the storefront's own price formatting.
func (c *mailComposer) formatPrice(amount decimal.Decimal) string {
	return currencySymbol(c.currency) + amount.StringFixed(2)
}

func currencySymbol(currency string) string {
	switch strings.ToUpper(currency) {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	default:
		return currency + " "
	}
}

// encodeMailtoComponent percent-encodes a mailto query component. Spaces must
// be %20, not the form-encoding +, or mail clients render literal pluses.
func encodeMailtoComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
