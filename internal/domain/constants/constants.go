// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Analytics event names emitted by the storefront.
const (
	EventAddToCart          = "add_to_cart"
	EventSubmitOrderRequest = "submit_order_request"
	EventContactForm        = "contact_form"
)
