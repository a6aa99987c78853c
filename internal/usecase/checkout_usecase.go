package usecase

import (
	"context"

	"light3d/internal/domain/entity"
	"light3d/internal/domain/service"

	"github.com/shopspring/decimal"
)

// CheckoutState is the wizard state returned after every checkout transition.
type CheckoutState struct {
	Step            entity.CheckoutStep    `json:"step"`
	CustomerInfo    entity.CustomerInfo    `json:"customer_info"`
	ShippingAddress entity.ShippingAddress `json:"shipping_address"`
	FieldErrors     map[string]string      `json:"field_errors,omitempty"`
	Country         string                 `json:"country"`
	DeliveryMethod  string                 `json:"delivery_method"`
	DeliveryCharge  decimal.Decimal        `json:"delivery_charge"`
}

// OrderConfirmation mirrors the confirmation view shown after a successful
// submit: the reference, the order summary, the prepared email and a QR
// rendering of its mailto link for sending from another device.
type OrderConfirmation struct {
	Reference       string                 `json:"reference"`
	CustomerInfo    entity.CustomerInfo    `json:"customer_info"`
	ShippingAddress entity.ShippingAddress `json:"shipping_address"`
	DeliveryMethod  string                 `json:"delivery_method"`
	Lines           []*CartLineView        `json:"lines"`
	Subtotal        decimal.Decimal        `json:"subtotal"`
	DeliveryCharge  decimal.Decimal        `json:"delivery_charge"`
	Total           decimal.Decimal        `json:"total"`
	Mail            *service.MailDraft     `json:"mail"`
	MailtoQRPNG     []byte                 `json:"mailto_qr_png,omitempty"`
}

// CheckoutUsecase defines the interface for the 3-step checkout wizard.
// Wizard state is per session, held in memory only.
type CheckoutUsecase interface {
	// GetState returns the session's current wizard state, starting a
	// fresh draft at the customer-info step when none exists.
	GetState(ctx context.Context, sessionID string) (*CheckoutState, error)

	// SubmitCustomerInfo validates step 1 and, on success, advances to
	// the shipping-address step. On failure the state carries per-field
	// error messages and the step does not advance.
	SubmitCustomerInfo(ctx context.Context, sessionID string, info *entity.CustomerInfo) (*CheckoutState, error)

	// SubmitShippingAddress validates step 2 and, on success, advances to
	// the review step. The country is fixed and never taken from input.
	SubmitShippingAddress(ctx context.Context, sessionID string, addr *entity.ShippingAddress) (*CheckoutState, error)

	// GoBack steps the wizard backward. Backward transitions are always
	// permitted and never re-validate.
	GoBack(ctx context.Context, sessionID string) (*CheckoutState, error)

	// Submit finalizes the order from the review step: generates the
	// reference, snapshots the cart, composes the email draft, publishes
	// the analytics event and clears the cart.
	Submit(ctx context.Context, sessionID string) (*OrderConfirmation, error)
}
