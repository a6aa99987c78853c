// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup and graceful-shutdown work such as
// storage pings and HTTP server drain.
const DefaultTimeout = 10 * time.Second
