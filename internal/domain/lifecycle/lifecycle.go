// Package lifecycle holds shared constants for process start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of deliveries.
const DefaultTimeout = 10 * time.Second
