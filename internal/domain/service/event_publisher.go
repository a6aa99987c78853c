// Package service declares the infrastructure-facing contracts the domain
// consumes: event publishing, QR generation and mail draft composition.
package service

import (
	"context"
	"time"
)

// AnalyticsEvent is a storefront usage event (add_to_cart,
// submit_order_request, contact_form). Events are fire-and-forget; a failed
// publish never fails the user-facing operation.
type AnalyticsEvent struct {
	EventID    string         `json:"event_id"`
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	Name       string         `json:"name"`
	Params     map[string]any `json:"params,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing analytics events
// to a message queue or collector endpoint.
type EventPublisher interface {
	// PublishAnalyticsEvent publishes a storefront usage event for async processing
	PublishAnalyticsEvent(ctx context.Context, event *AnalyticsEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
