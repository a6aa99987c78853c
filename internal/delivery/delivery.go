// Package delivery defines the transport-facing contract every server
// implementation satisfies.
package delivery

import "context"

// Delivery is a long-running transport server. Serve blocks until the server
// stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
