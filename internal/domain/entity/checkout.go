package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutStep is one state of the linear checkout wizard.
type CheckoutStep int

const (
	// StepCustomerInfo collects name, email and phone.
	StepCustomerInfo CheckoutStep = iota + 1
	// StepShippingAddress collects the delivery address.
	StepShippingAddress
	// StepReview shows the order for final confirmation.
	StepReview
)

// CustomerInfo holds the checkout contact fields.
type CustomerInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ShippingAddress holds the delivery address fields. Country is fixed to the
// single supported destination and is not user-editable.
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// CheckoutDraft is the transient state of one session's checkout wizard.
// It is held in memory only and lost on restart; the cart itself lives in
// the separately persisted cart store.
type CheckoutDraft struct {
	Step            CheckoutStep      `json:"step"`
	CustomerInfo    CustomerInfo      `json:"customer_info"`
	ShippingAddress ShippingAddress   `json:"shipping_address"`
	FieldErrors     map[string]string `json:"field_errors,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// Validate checks the step-1 gate: all contact fields non-empty and the
// email shaped like local@domain. It returns per-field messages, empty on
// success.
func (ci *CustomerInfo) Validate() map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(ci.FirstName) == "" {
		errs["first_name"] = "First name is required"
	}
	if strings.TrimSpace(ci.LastName) == "" {
		errs["last_name"] = "Last name is required"
	}
	if strings.TrimSpace(ci.Email) == "" {
		errs["email"] = "Email is required"
	} else if !validEmailShape(ci.Email) {
		errs["email"] = "Invalid email address"
	}
	if strings.TrimSpace(ci.Phone) == "" {
		errs["phone"] = "Phone number is required"
	}

	return errs
}

// validEmailShape accepts anything of the basic local@domain.tld shape.
// Deliverability is not checked; the address is only used to prepare a
// mail draft the customer sends themselves.
func validEmailShape(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")

	return dot > 0 && dot < len(domain)-1 && !strings.ContainsAny(email, " \t")
}

// Validate checks the step-2 gate: street, city and ZIP code non-empty.
func (sa *ShippingAddress) Validate() map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(sa.Street) == "" {
		errs["street"] = "Address is required"
	}
	if strings.TrimSpace(sa.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(sa.ZipCode) == "" {
		errs["zip_code"] = "ZIP code is required"
	}

	return errs
}

// Order is the immutable snapshot taken when a checkout draft is submitted.
// It exists only to label and fill the prepared email request; no backend
// order processing happens.
type Order struct {
	Reference       string          `json:"reference"`
	CustomerInfo    CustomerInfo    `json:"customer_info"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	DeliveryMethod  string          `json:"delivery_method"`
	Lines           []*CartLine     `json:"lines"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryCharge  decimal.Decimal `json:"delivery_charge"`
	Total           decimal.Decimal `json:"total"`
	CreatedAt       time.Time       `json:"created_at"`
}
